package optdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceBool(t *testing.T) {
	for _, s := range []string{"true", "TRUE", "True"} {
		v, err := Coerce(s, Type{Kind: KindBool})
		require.NoError(t, err)
		assert.Equal(t, true, v)
	}
	v, err := Coerce("false", Type{Kind: KindBool})
	require.NoError(t, err)
	assert.Equal(t, false, v)
	_, err = Coerce("yes", Type{Kind: KindBool})
	assert.EqualValues(t, userError{`cannot parse "yes" as bool`}, err)
}

func TestCoerceNumbers(t *testing.T) {
	v, err := Coerce("5", Type{Kind: KindInt})
	require.NoError(t, err)
	assert.Equal(t, 5, v)
	_, err = Coerce("5x", Type{Kind: KindInt})
	assert.EqualValues(t, userError{`cannot parse "5x" as int`}, err)
	_, err = Coerce("99999999999999999999999", Type{Kind: KindInt})
	assert.Error(t, err)

	v, err = Coerce("2.5", Type{Kind: KindFloat})
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)
	_, err = Coerce("2.5.1", Type{Kind: KindFloat})
	assert.EqualValues(t, userError{`cannot parse "2.5.1" as float`}, err)
}

func TestCoerceEnum(t *testing.T) {
	mode := Type{Kind: KindEnum, Values: []string{"fast", "slow"}}
	v, err := Coerce("fast", mode)
	require.NoError(t, err)
	assert.Equal(t, "fast", v)
	// Matching is case-sensitive and the error lists the legal values.
	_, err = Coerce("Fast", mode)
	assert.EqualValues(t, userError{`bad value "Fast" (expected one of: fast, slow)`}, err)
}

func TestCoerceList(t *testing.T) {
	listInt := Type{Kind: KindList, Elem: &Type{Kind: KindInt}}
	v, err := Coerce("3,4,5", listInt)
	require.NoError(t, err)
	assert.EqualValues(t, []int{3, 4, 5}, v)

	v, err = Coerce("", listInt)
	require.NoError(t, err)
	assert.EqualValues(t, []int{}, v)

	_, err = Coerce("3,x", listInt)
	assert.EqualValues(t, userError{`cannot parse "x" as int`}, err)
}

func TestCoerceListSeparator(t *testing.T) {
	v, err := Coerce("a;b;c", Type{Kind: KindList, Elem: &Type{Kind: KindString}, Sep: ';'})
	require.NoError(t, err)
	assert.EqualValues(t, []string{"a", "b", "c"}, v)
}

func TestCoerceUnregisteredCustom(t *testing.T) {
	_, err := Coerce("x", Type{Kind: KindCustom, Name: "nope"})
	assert.EqualValues(t, declError{`no parser registered for type "nope"`}, err)
}

func TestTypeDisplay(t *testing.T) {
	assert.Equal(t, "bool", Type{Kind: KindBool}.display())
	assert.Equal(t, "[]int", Type{Kind: KindList, Elem: &Type{Kind: KindInt}}.display())
	assert.Equal(t, "string", Type{Kind: KindEnum}.display())
	assert.Equal(t, "Mode", Type{Kind: KindEnum, Name: "Mode"}.display())
}
