// Package envtpl generates .env.template files with sensitive values
// masked out.
package envtpl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// DefaultPlaceholder replaces masked values.
const DefaultPlaceholder = "YOUR_VALUE_HERE"

var defaultSensitive = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^.*password.*`),
	regexp.MustCompile(`(?i)^.*secret.*`),
	regexp.MustCompile(`(?i)^.*token.*`),
	regexp.MustCompile(`(?i)^.*key.*`),
	regexp.MustCompile(`(?i)^.*api.*`),
	regexp.MustCompile(`(?i)^.*auth.*`),
	regexp.MustCompile(`(?i)^.*credential.*`),
	regexp.MustCompile(`(?i)^.*private.*`),
}

// Options control template generation.  Patterns, when set, replaces the
// built-in sensitive-key patterns.
type Options struct {
	Placeholder string
	Patterns    []*regexp.Regexp
	KeepValues  bool
}

// CompilePatterns compiles user-supplied sensitive-key regexps,
// case-insensitive and anchored at the start like the built-ins.
func CompilePatterns(exprs []string) ([]*regexp.Regexp, error) {
	res := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		re, err := regexp.Compile("(?i)^(?:" + e + ")")
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", e, err)
		}
		res = append(res, re)
	}
	return res, nil
}

// Sensitive reports whether key matches any of the patterns (or the
// built-in ones when patterns is nil).
func Sensitive(key string, patterns []*regexp.Regexp) bool {
	if patterns == nil {
		patterns = defaultSensitive
	}
	keyLower := strings.ToLower(key)
	for _, re := range patterns {
		if re.MatchString(keyLower) {
			return true
		}
	}
	return false
}

// Generate reads env-file lines from r and returns the template text.
// Blank lines and comments pass through untouched.  KEY=VALUE lines keep
// the key; the value is unquoted and, for sensitive keys, replaced with
// the placeholder.
func Generate(r io.Reader, opts Options) (string, error) {
	placeholder := opts.Placeholder
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		stripped := strings.TrimSpace(line)

		if stripped == "" || strings.HasPrefix(stripped, "#") {
			lines = append(lines, line)
			continue
		}

		key, value, ok := strings.Cut(stripped, "=")
		if !ok {
			lines = append(lines, line)
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `'"`)

		switch {
		case opts.KeepValues:
			lines = append(lines, key+"="+value)
		case Sensitive(key, opts.Patterns):
			lines = append(lines, key+"="+placeholder)
		default:
			lines = append(lines, key+"="+value)
		}
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return strings.Join(lines, "\n") + "\n", nil
}

// GenerateFile reads input and writes the template to output; with an
// empty output the template is only returned.
func GenerateFile(input, output string, opts Options) (string, error) {
	f, err := os.Open(input)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("environment file not found: %s", input)
		}
		return "", err
	}
	defer f.Close()
	tpl, err := Generate(f, opts)
	if err != nil {
		return "", err
	}
	if output != "" {
		if err := os.WriteFile(output, []byte(tpl), 0644); err != nil {
			return "", err
		}
	}
	return tpl, nil
}

// TemplatePath derives the default output path for input, replacing its
// suffix with ".template".  A leading dot in the base name, as in ".env",
// is part of the name rather than a suffix.
func TemplatePath(input string) string {
	base := input[strings.LastIndexByte(input, '/')+1:]
	if i := strings.LastIndex(base, "."); i > 0 {
		return input[:len(input)-len(base)+i] + ".template"
	}
	return input + ".template"
}
