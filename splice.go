package optdoc

import (
	"strings"

	"golang.org/x/xerrors"
)

// Sentinel lines delimiting the generated region of a spliced document.
const (
	StartSentinel = "<!-- start options doc (DO NOT EDIT BY HAND) -->"
	EndSentinel   = "<!-- end options doc -->"
)

// Reported by Splice alongside its fallback result; see Splice.
var (
	ErrNoStartSentinel = xerrors.New("start sentinel not found")
	ErrNoEndSentinel   = xerrors.New("end sentinel not found")
)

// SpliceOpts configure a Splice call. Zero values select the default
// sentinels and plain insertion.
type SpliceOpts struct {
	Start string
	End   string
	// Javadoc matches the "* "-prefixed form of the sentinels and indents
	// the inserted block to the start line's '*' column.
	Javadoc bool
}

func (o SpliceOpts) sentinels() (start, end string) {
	start, end = o.Start, o.End
	if start == "" {
		start = StartSentinel
	}
	if end == "" {
		end = EndSentinel
	}
	if o.Javadoc {
		start = "* " + start
		end = "* " + end
	}
	return
}

// Splice replaces the region of doc between the first trimmed match of the
// start sentinel and the following end sentinel with block, leaving every
// other line byte-identical. It is a single forward pass making at most one
// replacement; a second start sentinel later in the document is ordinary
// text.
//
// When the start sentinel never appears, the result is doc with block
// appended once and the error is ErrNoStartSentinel. When the start
// sentinel appears but no end sentinel follows, the result is doc with
// block inserted after the start line and the error is ErrNoEndSentinel.
// Both fallback results are well-formed; callers may ignore the error.
func Splice(doc, block string, opts SpliceOpts) (string, error) {
	start, end := opts.sentinels()
	var (
		out       []string
		withheld  []string
		replacing bool
		replaced  bool
	)
	for _, line := range strings.Split(doc, "\n") {
		if replacing {
			if strings.TrimSpace(line) != end {
				withheld = append(withheld, line)
				continue
			}
			replacing = false
			withheld = nil
		}
		out = append(out, line)
		if !replaced && strings.TrimSpace(line) == start {
			out = append(out, blockLines(block, line, opts)...)
			replaced = true
			replacing = true
		}
	}
	switch {
	case !replaced:
		out = append(out, blockLines(block, "", opts)...)
		return strings.Join(out, "\n"), ErrNoStartSentinel
	case replacing:
		out = append(out, withheld...)
		return strings.Join(out, "\n"), ErrNoEndSentinel
	}
	return strings.Join(out, "\n"), nil
}

// blockLines splits the rendered block, indenting each line to the start
// sentinel's '*' column in Javadoc mode.
func blockLines(block, startLine string, opts SpliceOpts) []string {
	lines := strings.Split(block, "\n")
	if !opts.Javadoc {
		return lines
	}
	padding := strings.IndexByte(startLine, '*')
	if padding <= 0 {
		return lines
	}
	indent := strings.Repeat(" ", padding)
	indented := make([]string, len(lines))
	for i, line := range lines {
		indented[i] = indent + line
	}
	return indented
}
