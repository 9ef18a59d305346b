package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	good := map[string]Format{
		"j":    JSONFormat,
		"json": JSONFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
		"yml":  YAMLFormat,
	}
	for in, want := range good {
		got, err := ParseFormat(in)
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseFormat(%q) = %v, want %v", in, got, want)
		}
	}
	for _, in := range []string{"", "JSON", "xml", "jsonl"} {
		if _, err := ParseFormat(in); !errors.Is(err, ErrBadFormat) {
			t.Errorf("ParseFormat(%q): got %v, want %v", in, err, ErrBadFormat)
		}
	}
}

func TestFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
		err  bool
	}{
		{"config.json", JSONFormat, false},
		{"a/b/values.YAML", YAMLFormat, false},
		{"deploy.yml", YAMLFormat, false},
		{"noext", 0, true},
		{"data.csv", 0, true},
	}
	for _, tt := range tests {
		got, err := FromPath(tt.path)
		if tt.err {
			if err == nil {
				t.Errorf("FromPath(%q): expected error", tt.path)
			}
			continue
		}
		if err != nil {
			t.Errorf("FromPath(%q): %v", tt.path, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FromPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestTextRoundtrip(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var g Format
		if err := g.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if g != f {
			t.Errorf("roundtrip %v != %v", g, f)
		}
	}
}
