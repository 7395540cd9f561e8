package optdoc

import (
	"fmt"
	"strings"

	"github.com/huandu/xstrings"
)

// Registry holds the option set for one command invocation. It is built
// once from the configuration holders' declarations and then only read,
// except by Parse, which writes parsed values through the bound fields.
type Registry struct {
	byLong  map[string]*Option
	byShort map[byte]*Option
	options []*Option // declaration order, grouped and ungrouped
	groups  []*Group  // insertion order

	usingGroups   bool
	singleDash    bool
	rejectRepeats bool
	noDefaultHelp bool
	wordSep       byte
	program       string
	description   string
	firstOwner    string
}

type registryOpt func(r *Registry)

// SingleDash renders and parses long options with a single leading dash.
func SingleDash() registryOpt {
	return func(r *Registry) {
		r.singleDash = true
	}
}

// RejectRepeated makes a repeated non-repeatable option a parse error
// instead of last-write-wins.
func RejectRepeated() registryOpt {
	return func(r *Registry) {
		r.rejectRepeats = true
	}
}

// NoDefaultHelp disables the built-in -h and --help handling.
func NoDefaultHelp() registryOpt {
	return func(r *Registry) {
		r.noDefaultHelp = true
	}
}

// WordSeparator sets the character substituted for underscores when long
// names are derived from field identifiers. The default is '-'.
func WordSeparator(c byte) registryOpt {
	return func(r *Registry) {
		r.wordSep = c
	}
}

// Sets the program name shown in usage output.
func Program(program string) registryOpt {
	return func(r *Registry) {
		r.program = program
	}
}

// Writes a program description between usage and option help.
func Description(desc string) registryOpt {
	return func(r *Registry) {
		r.description = desc
	}
}

func NewRegistry(opts ...registryOpt) *Registry {
	r := &Registry{
		byLong:  make(map[string]*Option),
		byShort: make(map[byte]*Option),
		program: "program",
		wordSep: '-',
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetSingleDash switches the long-option prefix after construction. The
// documentation tool uses this for its -singledash flag.
func (r *Registry) SetSingleDash(v bool) {
	r.singleDash = v
}

// Add registers ungrouped options declared by the named configuration
// holder, in declaration order.
func (r *Registry) Add(owner string, opts ...*Option) error {
	for _, o := range opts {
		if err := r.add(owner, o); err != nil {
			return err
		}
	}
	return nil
}

// Group creates (or returns) the named option group. Groups render in the
// order they are first mentioned.
func (r *Registry) Group(name string) *Group {
	for _, g := range r.groups {
		if g.name == name {
			return g
		}
	}
	g := &Group{name: name, r: r}
	r.groups = append(r.groups, g)
	r.usingGroups = true
	return g
}

func (r *Registry) add(owner string, o *Option) error {
	o.owner = owner
	if r.firstOwner == "" {
		r.firstOwner = owner
	}
	if o.long == "" {
		if o.field == "" {
			return declError{"option declared with empty name"}
		}
		o.long = r.deriveLong(o.field)
	}
	if _, ok := r.byLong[o.long]; ok {
		return declError{fmt.Sprintf("option %q defined more than once", o.long)}
	}
	if err := r.checkCoercible(o); err != nil {
		return err
	}
	r.byLong[o.long] = o
	for _, a := range o.aliases {
		if _, ok := r.byLong[a]; ok {
			return declError{fmt.Sprintf("alias %q of option %q already taken", a, o.long)}
		}
		r.byLong[a] = o
	}
	if o.short != 0 {
		if _, ok := r.byShort[o.short]; ok {
			return declError{fmt.Sprintf("short name %q of option %q already taken", string(o.short), o.long)}
		}
		r.byShort[o.short] = o
	}
	if o.marshal == nil {
		o.marshal = func(s string) error {
			v, err := Coerce(s, o.typ)
			if err != nil {
				return err
			}
			o.store(v)
			return nil
		}
	}
	r.options = append(r.options, o)
	return nil
}

// A custom type without a registered constructor is rejected here, at
// declaration time.
func (r *Registry) checkCoercible(o *Option) error {
	t := o.typ
	if t.Kind == KindList {
		t = *t.Elem
	}
	if t.Kind != KindCustom || o.marshal != nil {
		return nil
	}
	if _, ok := parsers[t.Name]; !ok {
		return declError{fmt.Sprintf(
			"option %q has type %q with no registered parser", o.long, t.Name)}
	}
	return nil
}

// Long names come from the declared identifier: snake case, then
// underscores replaced with the configured word separator.
func (r *Registry) deriveLong(field string) string {
	return strings.ReplaceAll(xstrings.ToSnakeCase(field), "_", string(r.wordSep))
}

func (r *Registry) prefix() string {
	if r.singleDash {
		return "-"
	}
	return "--"
}

func (r *Registry) ungrouped() (ret []*Option) {
	for _, o := range r.options {
		if o.group == nil {
			ret = append(ret, o)
		}
	}
	return
}
