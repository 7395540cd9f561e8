package optdoc

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind tags the coercion strategy for an option's target type.
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindFloat
	KindString
	KindEnum
	KindList
	KindCustom
)

// Type describes an option's target type to the coercer and the renderer.
type Type struct {
	Kind   Kind
	Elem   *Type    // list element type
	Values []string // legal enumeration constants
	Name   string   // custom parser key, doubles as the display name
	Sep    byte     // list separator, 0 means ','
}

func (t Type) sep() string {
	if t.Sep == 0 {
		return ","
	}
	return string(t.Sep)
}

func (t Type) display() string {
	if t.Name != "" {
		return t.Name
	}
	switch t.Kind {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString, KindEnum:
		return "string"
	case KindList:
		return "[]" + t.Elem.display()
	default:
		return "custom"
	}
}

// Single-argument string constructors for custom target types, keyed by
// type name. Populated at startup; lookups at option-declaration time.
var parsers = map[string]func(string) (interface{}, error){}

// RegisterParser installs the string constructor for the named custom type.
// Declaring an option of an unregistered custom type is a registry
// construction error.
func RegisterParser(name string, ctor func(string) (interface{}, error)) {
	parsers[name] = ctor
}

// Coerce converts text into a value of the target type. It is a pure
// function of its inputs and the custom parser registry.
func Coerce(s string, t Type) (interface{}, error) {
	switch t.Kind {
	case KindBool:
		if strings.EqualFold(s, "true") {
			return true, nil
		}
		if strings.EqualFold(s, "false") {
			return false, nil
		}
		return nil, userError{fmt.Sprintf("cannot parse %q as bool", s)}
	case KindInt:
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, userError{fmt.Sprintf("cannot parse %q as int", s)}
		}
		return n, nil
	case KindFloat:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, userError{fmt.Sprintf("cannot parse %q as float", s)}
		}
		return f, nil
	case KindString:
		return s, nil
	case KindEnum:
		for _, v := range t.Values {
			if s == v {
				return s, nil
			}
		}
		return nil, userError{fmt.Sprintf(
			"bad value %q (expected one of: %s)", s, strings.Join(t.Values, ", "))}
	case KindList:
		return coerceList(s, t)
	case KindCustom:
		ctor, ok := parsers[t.Name]
		if !ok {
			return nil, declError{fmt.Sprintf("no parser registered for type %q", t.Name)}
		}
		return ctor(s)
	default:
		return nil, declError{fmt.Sprintf("unhandled kind: %v", t.Kind)}
	}
}

// An empty input yields an empty sequence, not an error.
func coerceList(s string, t Type) (interface{}, error) {
	var tokens []string
	if s != "" {
		tokens = strings.Split(s, t.sep())
	}
	switch t.Elem.Kind {
	case KindBool:
		out := make([]bool, 0, len(tokens))
		for _, tok := range tokens {
			v, err := Coerce(tok, *t.Elem)
			if err != nil {
				return nil, err
			}
			out = append(out, v.(bool))
		}
		return out, nil
	case KindInt:
		out := make([]int, 0, len(tokens))
		for _, tok := range tokens {
			v, err := Coerce(tok, *t.Elem)
			if err != nil {
				return nil, err
			}
			out = append(out, v.(int))
		}
		return out, nil
	case KindFloat:
		out := make([]float64, 0, len(tokens))
		for _, tok := range tokens {
			v, err := Coerce(tok, *t.Elem)
			if err != nil {
				return nil, err
			}
			out = append(out, v.(float64))
		}
		return out, nil
	case KindString, KindEnum:
		out := make([]string, 0, len(tokens))
		for _, tok := range tokens {
			v, err := Coerce(tok, *t.Elem)
			if err != nil {
				return nil, err
			}
			out = append(out, v.(string))
		}
		return out, nil
	default:
		out := make([]interface{}, 0, len(tokens))
		for _, tok := range tokens {
			v, err := Coerce(tok, *t.Elem)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	}
}
