package optdoc

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/anacrolix/missinggo"
)

// WriteUsage writes the help text for the registry's option set.
// Unpublicized options, and groups declared unpublicized, are omitted.
func (r *Registry) WriteUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage:\n  %s", r.program)
	if len(r.options) != 0 {
		fmt.Fprintf(w, " [OPTIONS...]")
	}
	fmt.Fprintf(w, "\n")
	if r.description != "" {
		fmt.Fprintf(w, "\n%s\n", missinggo.Unchomp(r.description))
	}
	r.writeOptionsUsage(w, "", r.ungrouped())
	for _, g := range r.groups {
		if g.unpublicized {
			continue
		}
		r.writeOptionsUsage(w, g.name, g.options)
	}
}

func newUsageTabwriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 8, 2, 3, ' ', 0)
}

func (r *Registry) writeOptionsUsage(w io.Writer, heading string, opts []*Option) {
	var shown []*Option
	for _, o := range opts {
		if !o.unpublicized {
			shown = append(shown, o)
		}
	}
	if len(shown) == 0 {
		return
	}
	if heading != "" {
		fmt.Fprintf(w, "%s ", heading)
	}
	fmt.Fprintf(w, "Options:\n")
	tw := newUsageTabwriter(w)
	for _, o := range shown {
		fmt.Fprint(tw, "  ")
		if o.short != 0 {
			fmt.Fprintf(tw, "-%c, ", o.short)
		}
		fmt.Fprintf(tw, "%s%s", r.prefix(), o.long)
		fmt.Fprintf(tw, "\t%s", o.help)
		if o.hasDefault {
			fmt.Fprintf(tw, " (default: %s)", o.defaultText)
		}
		fmt.Fprintf(tw, "\n")
	}
	tw.Flush()
}
