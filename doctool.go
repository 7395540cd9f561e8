package optdoc

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/xerrors"
)

// DocTool is the documentation tool's command surface: it renders a
// registry's option set and writes it to stdout, to a file, or spliced
// into an existing document.
type DocTool struct {
	// Docfile is the document whose sentinel-delimited region receives the
	// rendered output.
	Docfile string
	// Outfile is the write destination. Mutually exclusive with InPlace,
	// and must differ from Docfile.
	Outfile string
	// InPlace rewrites the docfile itself.
	InPlace bool
	// Format is "javadoc" for comment-embedded output, empty for HTML.
	Format string
	// ClassDoc prepends the first configuration holder's own comment.
	ClassDoc bool
	// SingleDash renders long options with a single leading dash.
	SingleDash bool
}

// RegisterOptions declares the tool's own flags on r, which should be a
// single-dash registry so the surface reads -docfile, -outfile, -i and so
// on.
func (t *DocTool) RegisterOptions(r *Registry) error {
	return r.Add("DocTool",
		String("docfile", &t.Docfile).
			Help("file into which options documentation is inserted"),
		String("outfile", &t.Outfile).
			Help("destination for resulting output"),
		Bool("i", &t.InPlace).
			Help("edit the docfile in-place"),
		Enum("format", &t.Format, "javadoc").
			Help("format output as a Javadoc comment"),
		Bool("classdoc", &t.ClassDoc).
			Help("include 'main' class documentation in output"),
		Bool("singledash", &t.SingleDash).
			Help("use single dashes for long options"),
	)
}

// validate rejects conflicting flag combinations before any file is
// touched.
func (t *DocTool) validate() error {
	if t.InPlace && t.Outfile != "" {
		return userError{"-i and -outfile can not be used at the same time"}
	}
	if t.InPlace && t.Docfile == "" {
		return userError{"-i requires -docfile"}
	}
	if t.Docfile != "" && t.Docfile == t.Outfile {
		return userError{"docfile must be different from outfile"}
	}
	return nil
}

// Output renders documentation for r, splicing it into the docfile's text
// when one is given.
func (t *DocTool) Output(r *Registry, src CommentSource) (string, error) {
	if err := t.validate(); err != nil {
		return "", err
	}
	if t.SingleDash {
		r.SetSingleDash(true)
	}
	javadoc := t.Format == "javadoc"
	opts := RenderOpts{ClassDoc: t.ClassDoc}
	if javadoc {
		opts.Format = Javadoc
	}
	block := Render(r, src, opts)
	if t.Docfile == "" {
		return block, nil
	}
	doc, err := os.ReadFile(t.Docfile)
	if err != nil {
		return "", errors.Wrap(err, "reading docfile")
	}
	out, err := Splice(string(doc), block, SpliceOpts{Javadoc: javadoc})
	if err != nil && !xerrors.Is(err, ErrNoStartSentinel) && !xerrors.Is(err, ErrNoEndSentinel) {
		return "", err
	}
	return out, nil
}

// Run writes the tool's output to the configured destination.
func (t *DocTool) Run(r *Registry, src CommentSource, stdout io.Writer) error {
	out, err := t.Output(r, src)
	if err != nil {
		return err
	}
	dest := ""
	switch {
	case t.Outfile != "":
		dest = t.Outfile
	case t.InPlace:
		dest = t.Docfile
	default:
		_, err = fmt.Fprintln(stdout, out)
		return err
	}
	return errors.Wrap(os.WriteFile(dest, []byte(out+"\n"), 0o644), "writing output")
}
