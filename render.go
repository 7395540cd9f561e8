package optdoc

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/bradfitz/iter"
	"github.com/mitchellh/go-wordwrap"
)

// Format selects the renderer's output shape.
type Format int

const (
	// HTML is a structured HTML list, suitable for splicing into a manual.
	HTML Format = iota
	// Javadoc is the same content line-wrapped and prefixed so it reads as
	// an embedded source comment.
	Javadoc
)

// RenderOpts control one Render call.
type RenderOpts struct {
	Format Format
	// ClassDoc prepends the first configuration holder's own top-level
	// comment to the output.
	ClassDoc bool
	// Padding is the indentation applied to Javadoc-format lines. The
	// splicer supplies it from the start sentinel's position.
	Padding int
}

// CommentSource supplies raw source comments for a declaring configuration
// holder and its fields. How comments are extracted is the caller's
// business; a nil source behaves as if every comment were empty.
type CommentSource interface {
	FieldComment(owner, field string) string
	TypeComment(owner string) string
}

// Render emits documentation for the registry's option set. It is a pure
// function of the registry's current state and the supplied comments, and
// may be called repeatedly against the same registry.
//
// Options are listed grouped in group declaration order when the registry
// declares groups, else flat in option declaration order. Unpublicized
// options are skipped, as is any group with no publicized member.
func Render(r *Registry, src CommentSource, opts RenderOpts) string {
	out := renderHTML(r, src, opts)
	if opts.Format == Javadoc {
		return javadocLines(out, opts.Padding)
	}
	return out
}

func renderHTML(r *Registry, src CommentSource, opts RenderOpts) string {
	var lines []string
	if opts.ClassDoc && r.firstOwner != "" {
		if doc := typeComment(src, r.firstOwner); doc != "" {
			lines = append(lines, doc)
		}
		lines = append(lines, "<p>Command line options: </p>")
	}
	lines = append(lines, "<ul>")
	if !r.usingGroups {
		lines = appendOptionList(lines, r, src, r.options, 2)
	} else {
		lines = appendOptionList(lines, r, src, r.ungrouped(), 2)
		for _, g := range r.groups {
			if !g.containsPublicized() {
				continue
			}
			lines = append(lines, "  <li>"+g.name)
			lines = append(lines, "    <ul>")
			lines = appendOptionList(lines, r, src, g.options, 6)
			lines = append(lines, "    </ul>")
			lines = append(lines, "  </li>")
		}
	}
	lines = append(lines, "</ul>")
	return strings.Join(lines, "\n")
}

func appendOptionList(lines []string, r *Registry, src CommentSource, opts []*Option, padding int) []string {
	for _, o := range opts {
		if o.unpublicized {
			continue
		}
		var b strings.Builder
		pad(&b, padding)
		b.WriteString("<li>")
		b.WriteString(r.optionHTML(o, src))
		b.WriteString("</li>")
		lines = append(lines, b.String())
	}
	return lines
}

// optionHTML emits the line of HTML describing one option: short name and
// aliases, the prefixed long name, type display name, resolved description
// and default-value text.
func (r *Registry) optionHTML(o *Option, src CommentSource) string {
	var b strings.Builder
	if o.short != 0 {
		fmt.Fprintf(&b, "<b>-%c</b> ", o.short)
	}
	for _, a := range o.aliases {
		fmt.Fprintf(&b, "<b>%s%s</b> ", r.prefix(), a)
	}
	fmt.Fprintf(&b, "<b>%s%s=</b><i>%s</i>. ", r.prefix(), o.long, o.typ.display())
	defaultStr := "no default"
	if o.hasDefault {
		defaultStr = "default " + o.defaultText
	}
	// The declared help text and the default come from plain strings rather
	// than markup, so they must be escaped.
	doc := ""
	if src != nil {
		doc = strings.TrimSpace(src.FieldComment(o.owner, o.field))
	}
	if doc == "" {
		doc = html.EscapeString(o.help)
	} else {
		doc = flattenInline(doc)
	}
	fmt.Fprintf(&b, "%s [%s]", doc, html.EscapeString(defaultStr))
	return b.String()
}

func typeComment(src CommentSource, owner string) string {
	if src == nil {
		return ""
	}
	return flattenInline(strings.TrimSpace(src.TypeComment(owner)))
}

var (
	inlineTagRe = regexp.MustCompile(`\{@(?:link|linkplain|code)\s+([^}]+)\}`)
	seeTagRe    = regexp.MustCompile(`(?m)^\s*@see\s+(.+?)\s*$`)
)

// flattenInline reduces a comment's cross-reference tags to code-styled
// text, keeping the information while staying presentable without a
// hyperlink target.
func flattenInline(text string) string {
	var sees []string
	for _, m := range seeTagRe.FindAllStringSubmatch(text, -1) {
		sees = append(sees, "<code>"+m[1]+"</code>")
	}
	text = strings.TrimSpace(seeTagRe.ReplaceAllString(text, ""))
	text = inlineTagRe.ReplaceAllString(text, "<code>$1</code>")
	if len(sees) != 0 {
		text += " See: " + strings.Join(sees, ", ") + "."
	}
	return text
}

const javadocWrapColumn = 78

// javadocLines re-emits rendered output with each line wrapped and
// prefixed to read as a source comment at the given indentation.
func javadocLines(out string, padding int) string {
	width := javadocWrapColumn - padding
	if width < 20 {
		width = 20
	}
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		wrapped := wordwrap.WrapString(line, uint(width))
		for _, w := range strings.Split(wrapped, "\n") {
			var b strings.Builder
			pad(&b, padding)
			b.WriteString("* ")
			b.WriteString(w)
			lines = append(lines, b.String())
		}
	}
	return strings.Join(lines, "\n")
}

func pad(b *strings.Builder, n int) {
	for range iter.N(n) {
		b.WriteByte(' ')
	}
}
