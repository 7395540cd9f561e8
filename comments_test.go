package optdoc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const commentedSource = `// Package lookup searches files.
package lookup

// Lookup searches files for matching lines.
type Lookup struct {
	// Whether to print progress information.
	Verbose bool

	// Stop after this many matches.
	MaxCount int

	Quiet bool
}
`

func TestParseGoComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lookup.go")
	require.NoError(t, os.WriteFile(path, []byte(commentedSource), 0o644))

	m, err := ParseGoComments(path)
	require.NoError(t, err)
	assert.Equal(t, "Lookup searches files for matching lines.", m.TypeComment("Lookup"))
	assert.Equal(t, "Whether to print progress information.", m.FieldComment("Lookup", "Verbose"))
	assert.Equal(t, "Stop after this many matches.", m.FieldComment("Lookup", "MaxCount"))
	assert.Equal(t, "", m.FieldComment("Lookup", "Quiet"))
}

func TestCommentMapLookup(t *testing.T) {
	m := CommentMap{
		"Lookup":         "type comment",
		"Lookup.verbose": "field comment",
	}
	assert.Equal(t, "type comment", m.TypeComment("Lookup"))
	assert.Equal(t, "field comment", m.FieldComment("Lookup", "verbose"))
	assert.Equal(t, "", m.FieldComment("Lookup", "missing"))
}
