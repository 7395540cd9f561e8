package optdoc

import (
	"fmt"
	"strconv"
	"strings"
)

// Option is the metadata for one declared option. The record itself is
// read-only after registration; parsed values land in the bound
// configuration field, not here.
type Option struct {
	field        string // declared identifier, the long name is derived from it
	long         string
	short        byte
	aliases      []string
	typ          Type
	repeatable   bool
	defaultText  string
	hasDefault   bool
	help         string
	unpublicized bool
	group        *Group
	owner        string

	// marshal coerces text and writes it through the binding. store is the
	// typed setter marshal defaults to; Var-backed options replace marshal
	// wholesale.
	marshal      func(s string) error
	store        func(v interface{})
	explicitOnly bool
	seen         int
}

// Bool declares a boolean option bound to p. It supports a bare --name form
// implying true as well as --name=false.
func Bool(field string, p *bool) *Option {
	o := &Option{field: field, typ: Type{Kind: KindBool}}
	o.store = func(v interface{}) { *p = v.(bool) }
	if *p {
		o.setDefault("true")
	}
	return o
}

// Int declares an integer option bound to p.
func Int(field string, p *int) *Option {
	o := &Option{field: field, typ: Type{Kind: KindInt}}
	o.store = func(v interface{}) { *p = v.(int) }
	if *p != 0 {
		o.setDefault(strconv.Itoa(*p))
	}
	return o
}

// Float declares a floating-point option bound to p.
func Float(field string, p *float64) *Option {
	o := &Option{field: field, typ: Type{Kind: KindFloat}}
	o.store = func(v interface{}) { *p = v.(float64) }
	if *p != 0 {
		o.setDefault(strconv.FormatFloat(*p, 'g', -1, 64))
	}
	return o
}

// String declares a string option bound to p.
func String(field string, p *string) *Option {
	o := &Option{field: field, typ: Type{Kind: KindString}}
	o.store = func(v interface{}) { *p = v.(string) }
	if *p != "" {
		o.setDefault(*p)
	}
	return o
}

// Enum declares a string option restricted to the given constants. Matching
// is case-sensitive and exact.
func Enum(field string, p *string, values ...string) *Option {
	o := &Option{field: field, typ: Type{Kind: KindEnum, Values: values}}
	o.store = func(v interface{}) { *p = v.(string) }
	if *p != "" {
		o.setDefault(*p)
	}
	return o
}

// Strings declares a repeatable string-list option bound to p. Each
// occurrence is split on the list separator and appended.
func Strings(field string, p *[]string) *Option {
	o := &Option{
		field:      field,
		typ:        Type{Kind: KindList, Elem: &Type{Kind: KindString}},
		repeatable: true,
	}
	o.store = func(v interface{}) { *p = append(*p, v.([]string)...) }
	if len(*p) != 0 {
		o.setDefault(strings.Join(*p, ","))
	}
	return o
}

// Ints declares a repeatable integer-list option bound to p.
func Ints(field string, p *[]int) *Option {
	o := &Option{
		field:      field,
		typ:        Type{Kind: KindList, Elem: &Type{Kind: KindInt}},
		repeatable: true,
	}
	o.store = func(v interface{}) { *p = append(*p, v.([]int)...) }
	if len(*p) != 0 {
		ss := make([]string, len(*p))
		for i, n := range *p {
			ss[i] = strconv.Itoa(n)
		}
		o.setDefault(strings.Join(ss, ","))
	}
	return o
}

// Floats declares a repeatable float-list option bound to p.
func Floats(field string, p *[]float64) *Option {
	o := &Option{
		field:      field,
		typ:        Type{Kind: KindList, Elem: &Type{Kind: KindFloat}},
		repeatable: true,
	}
	o.store = func(v interface{}) { *p = append(*p, v.([]float64)...) }
	return o
}

// Custom declares an option of a custom type. typeName must have a
// constructor installed with RegisterParser; this is checked when the
// option is added to a registry, not at parse time. set receives the
// constructed value.
func Custom(field, typeName string, set func(v interface{})) *Option {
	o := &Option{field: field, typ: Type{Kind: KindCustom, Name: typeName}}
	o.store = set
	return o
}

// Var declares an option whose target knows how to parse itself.
func Var(field, typeName string, m Marshaler) *Option {
	o := &Option{
		field:        field,
		typ:          Type{Kind: KindCustom, Name: typeName},
		explicitOnly: m.RequiresExplicitValue(),
	}
	o.marshal = m.Marshal
	return o
}

// Builder methods. Each returns the option for chaining.

// Long overrides the long name derived from the field identifier.
func (o *Option) Long(name string) *Option {
	o.long = name
	return o
}

// Short sets the single-character -x alias.
func (o *Option) Short(c byte) *Option {
	o.short = c
	return o
}

// Alias adds additional accepted long spellings.
func (o *Option) Alias(names ...string) *Option {
	o.aliases = append(o.aliases, names...)
	return o
}

// Help sets the declared description text, used in usage output and as the
// documentation fallback when the field's source comment is empty.
func (o *Option) Help(text string) *Option {
	o.help = text
	return o
}

// Default overrides the default-value text captured from the bound field's
// initial value. A field starting at its zero value otherwise documents as
// having no default.
func (o *Option) Default(text string) *Option {
	o.setDefault(text)
	return o
}

// Unpublicized excludes the option from usage output and generated
// documentation while leaving it parseable.
func (o *Option) Unpublicized() *Option {
	o.unpublicized = true
	return o
}

// Sep overrides the list separator for this option.
func (o *Option) Sep(c byte) *Option {
	o.typ.Sep = c
	return o
}

// Repeatable marks the option as accumulating across occurrences.
func (o *Option) Repeatable() *Option {
	o.repeatable = true
	return o
}

// TypeName overrides the type's display name in generated documentation.
func (o *Option) TypeName(name string) *Option {
	o.typ.Name = name
	return o
}

func (o *Option) setDefault(text string) {
	o.defaultText = text
	o.hasDefault = true
}

func (o *Option) set(text string) error {
	if err := o.marshal(text); err != nil {
		return userError{fmt.Sprintf("error setting option %q: %s", o.long, err)}
	}
	return nil
}

// Group is a named collection of options rendered together. A group is
// publicized if it contains at least one publicized option; a group can
// also be unpublicized wholesale, which hides it from usage output.
type Group struct {
	name         string
	unpublicized bool
	options      []*Option
	r            *Registry
}

// Unpublicized hides the whole group from usage output.
func (g *Group) Unpublicized() *Group {
	g.unpublicized = true
	return g
}

// Add registers options as members of the group, in declaration order.
func (g *Group) Add(owner string, opts ...*Option) error {
	for _, o := range opts {
		o.group = g
		if err := g.r.add(owner, o); err != nil {
			return err
		}
		g.options = append(g.options, o)
	}
	return nil
}

func (g *Group) containsPublicized() bool {
	if g.unpublicized {
		return false
	}
	for _, o := range g.options {
		if !o.unpublicized {
			return true
		}
	}
	return false
}
