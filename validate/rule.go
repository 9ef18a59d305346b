// Package validate checks CSV and JSON record files against field rules.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Rule constrains a single field across all records of an input.
type Rule struct {
	Field    string
	Required bool
	Type     string
	Pattern  *regexp.Regexp
	Min      *float64
	Max      *float64
	Unique   bool
	Message  string

	prog *vm.Program
}

var ErrBadRule = errors.New("bad rule")

// ParseRule parses a colon-separated rule spec of the form
//
//	field:required:type=email:pattern=^x:min=0:max=10:unique:msg=text:expr=len(value)>2
//
// The expr= clause compiles an expr-lang predicate over the variable
// "value" (the field's string value).
func ParseRule(spec string) (*Rule, error) {
	parts := strings.Split(spec, ":")
	if parts[0] == "" {
		return nil, fmt.Errorf("%w: empty field in %q", ErrBadRule, spec)
	}
	rule := &Rule{Field: parts[0]}
	for _, part := range parts[1:] {
		switch {
		case part == "required":
			rule.Required = true
		case part == "unique":
			rule.Unique = true
		case strings.HasPrefix(part, "type="):
			t := part[len("type="):]
			if _, ok := typeValidators[t]; !ok {
				return nil, fmt.Errorf("%w: unknown type %q", ErrBadRule, t)
			}
			rule.Type = t
		case strings.HasPrefix(part, "pattern="):
			// anchored at the start, like the prefix-match semantics
			// these rule files historically used
			re, err := regexp.Compile("^(?:" + part[len("pattern="):] + ")")
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrBadRule, err)
			}
			rule.Pattern = re
		case strings.HasPrefix(part, "min="):
			v, err := strconv.ParseFloat(part[len("min="):], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrBadRule, err)
			}
			rule.Min = &v
		case strings.HasPrefix(part, "max="):
			v, err := strconv.ParseFloat(part[len("max="):], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrBadRule, err)
			}
			rule.Max = &v
		case strings.HasPrefix(part, "msg="):
			rule.Message = part[len("msg="):]
		case strings.HasPrefix(part, "expr="):
			prog, err := expr.Compile(part[len("expr="):],
				expr.Env(exprEnv("")),
				expr.AsBool())
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrBadRule, err)
			}
			rule.prog = prog
		default:
			return nil, fmt.Errorf("%w: unknown clause %q in %q", ErrBadRule, part, spec)
		}
	}
	return rule, nil
}

// ParseRules parses all specs, failing on the first bad one.
func ParseRules(specs []string) ([]*Rule, error) {
	rules := make([]*Rule, 0, len(specs))
	for _, spec := range specs {
		rule, err := ParseRule(spec)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func exprEnv(value string) map[string]any {
	return map[string]any{"value": value}
}

func (r *Rule) runExpr(value string) (bool, error) {
	out, err := expr.Run(r.prog, exprEnv(value))
	if err != nil {
		return false, err
	}
	ok, isBool := out.(bool)
	return isBool && ok, nil
}
