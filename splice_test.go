package optdoc

import (
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func diffStrings(expected, actual string) string {
	d, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  2,
	})
	return d
}

func TestSpliceReplacesInterior(t *testing.T) {
	doc := strings.Join([]string{
		"<h1>Manual</h1>",
		StartSentinel,
		"stale line one",
		"stale line two",
		EndSentinel,
		"<p>tail</p>",
		"",
	}, "\n")
	got, err := Splice(doc, "fresh", SpliceOpts{})
	require.NoError(t, err)
	expected := strings.Join([]string{
		"<h1>Manual</h1>",
		StartSentinel,
		"fresh",
		EndSentinel,
		"<p>tail</p>",
		"",
	}, "\n")
	assert.Equal(t, expected, got, diffStrings(expected, got))
}

func TestSpliceIndentedSentinels(t *testing.T) {
	// Sentinel matching trims the line, but surrounding lines stay
	// byte-identical.
	doc := "  " + StartSentinel + "\nold\n\t" + EndSentinel + "\n"
	got, err := Splice(doc, "new", SpliceOpts{})
	require.NoError(t, err)
	assert.Equal(t, "  "+StartSentinel+"\nnew\n\t"+EndSentinel+"\n", got)
}

func TestSpliceMissingStart(t *testing.T) {
	doc := "line one\nline two"
	got, err := Splice(doc, "block", SpliceOpts{})
	assert.ErrorIs(t, err, ErrNoStartSentinel)
	assert.Equal(t, "line one\nline two\nblock", got)
}

func TestSpliceMissingEnd(t *testing.T) {
	doc := strings.Join([]string{"head", StartSentinel, "kept one", "kept two"}, "\n")
	got, err := Splice(doc, "block", SpliceOpts{})
	assert.ErrorIs(t, err, ErrNoEndSentinel)
	assert.Equal(t, strings.Join([]string{
		"head", StartSentinel, "block", "kept one", "kept two",
	}, "\n"), got)
}

func TestSpliceReplacesAtMostOnce(t *testing.T) {
	doc := strings.Join([]string{
		StartSentinel, "old", EndSentinel,
		StartSentinel, "second region", EndSentinel,
	}, "\n")
	got, err := Splice(doc, "new", SpliceOpts{})
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		StartSentinel, "new", EndSentinel,
		StartSentinel, "second region", EndSentinel,
	}, "\n"), got)
}

func TestSpliceOwnOutput(t *testing.T) {
	doc := strings.Join([]string{"head", StartSentinel, "old", EndSentinel, "tail"}, "\n")
	once, err := Splice(doc, "block", SpliceOpts{})
	require.NoError(t, err)
	twice, err := Splice(once, "block", SpliceOpts{})
	require.NoError(t, err)
	assert.Equal(t, once, twice, diffStrings(once, twice))
}

func TestSpliceJavadoc(t *testing.T) {
	doc := strings.Join([]string{
		"/**",
		"   * Header.",
		"   * " + StartSentinel,
		"   * old",
		"   * " + EndSentinel,
		"   */",
	}, "\n")
	got, err := Splice(doc, "* <ul>\n* </ul>", SpliceOpts{Javadoc: true})
	require.NoError(t, err)
	expected := strings.Join([]string{
		"/**",
		"   * Header.",
		"   * " + StartSentinel,
		"   * <ul>",
		"   * </ul>",
		"   * " + EndSentinel,
		"   */",
	}, "\n")
	assert.Equal(t, expected, got, diffStrings(expected, got))
}

func TestSpliceCustomSentinels(t *testing.T) {
	doc := "a\nBEGIN\nx\nEND\nb"
	got, err := Splice(doc, "y", SpliceOpts{Start: "BEGIN", End: "END"})
	require.NoError(t, err)
	assert.Equal(t, "a\nBEGIN\ny\nEND\nb", got)
}
