package optdoc

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Default help flag was provided, and should be handled.
var ErrHelp = errors.New("help requested")

// Parse scans args left to right, coercing option values into their bound
// fields. Scanning stops at the first token that is not an option, or at a
// literal "--" (which is dropped); the remaining tokens are returned
// verbatim in their original order.
//
// Fields are mutated in token order as options are matched. On error no
// rollback is attempted: this is a single-pass command-line parse, not a
// transaction.
func (r *Registry) Parse(args []string) (rest []string, err error) {
	for len(args) != 0 {
		a := args[0]
		if a == "--" {
			rest = append(rest, args[1:]...)
			return
		}
		if !strings.HasPrefix(a, "-") || len(a) == 1 {
			rest = append(rest, args...)
			return
		}
		args = args[1:]
		args, err = r.parseOption(a, args)
		if err != nil {
			return
		}
	}
	return
}

// parseOption resolves one option token and consumes its value, taking the
// next token from args when the value is not attached with '='.
func (r *Registry) parseOption(a string, args []string) ([]string, error) {
	body := a[1:]
	longForm := r.singleDash
	if strings.HasPrefix(body, "-") {
		body = body[1:]
		longForm = true
	}
	name := body
	value := ""
	explicit := false
	if i := strings.IndexByte(body, '='); i != -1 {
		name = body[:i]
		value = body[i+1:]
		explicit = true
	}

	o := r.resolve(name, longForm)
	if o == nil {
		if (name == "help" || name == "h") && !r.noDefaultHelp {
			return args, ErrHelp
		}
		return args, userError{fmt.Sprintf("unknown option: %q", a)}
	}
	if !o.repeatable && o.seen > 0 && r.rejectRepeats {
		return args, userError{fmt.Sprintf("option %q given more than once", o.long)}
	}

	if !explicit {
		if o.typ.Kind == KindBool {
			value = "true"
		} else if o.explicitOnly {
			return args, userError{fmt.Sprintf(
				"explicit value required (%s%s=VALUE)", r.prefix(), o.long)}
		} else {
			if len(args) == 0 {
				return args, userError{fmt.Sprintf("option %q requires a value", a)}
			}
			value = args[0]
			args = args[1:]
		}
	}
	if err := o.set(value); err != nil {
		return args, err
	}
	o.seen++
	return args, nil
}

func (r *Registry) resolve(name string, longForm bool) *Option {
	if longForm {
		if o, ok := r.byLong[name]; ok {
			return o
		}
	}
	if len(name) == 1 {
		if o, ok := r.byShort[name[0]]; ok {
			return o
		}
	}
	return nil
}

// ParseOrExit parses os.Args-style arguments, printing usage and exiting on
// the default help flag, and reporting any other error to stderr.
func ParseOrExit(r *Registry, args []string) []string {
	if r.program == "program" && len(os.Args) > 0 {
		r.program = filepath.Base(os.Args[0])
	}
	rest, err := r.Parse(args)
	if err == ErrHelp {
		r.WriteUsage(os.Stdout)
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", r.program, err)
		if _, ok := err.(userError); ok {
			r.WriteUsage(os.Stderr)
			os.Exit(2)
		}
		os.Exit(1)
	}
	return rest
}
