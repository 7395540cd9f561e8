package optdoc

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type parseCase struct {
	args     []string
	err      error
	rest     []string
	expected interface{}
}

func runParseCases(t *testing.T, cases []parseCase, newCmd func() (*Registry, interface{})) {
	for _, _case := range cases {
		r, cfg := newCmd()
		rest, err := r.Parse(_case.args)
		assert.EqualValues(t, _case.err, err, "%q", _case.args)
		if _case.err != nil {
			// The value we got doesn't matter.
			continue
		}
		assert.EqualValues(t, _case.rest, rest, "%q", _case.args)
		assert.EqualValues(t, _case.expected, reflect.ValueOf(cfg).Elem().Interface(), "%q", _case.args)
	}
}
