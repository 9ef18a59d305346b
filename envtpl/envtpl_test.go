package envtpl

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGenerate(t *testing.T) {
	in := `# database
DB_HOST=localhost
DB_PASSWORD="hunter2"
API_KEY='abc123'

# app
DEBUG=true
AUTH_TOKEN=xyz
`
	want := `# database
DB_HOST=localhost
DB_PASSWORD=YOUR_VALUE_HERE
API_KEY=YOUR_VALUE_HERE

# app
DEBUG=true
AUTH_TOKEN=YOUR_VALUE_HERE
`
	got, err := Generate(strings.NewReader(in), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("template (-want +got):\n%s", d)
	}
}

func TestGenerateOptions(t *testing.T) {
	in := "SECRET=a\nCUSTOM_FIELD=b\nOTHER=c\n"

	got, err := Generate(strings.NewReader(in), Options{KeepValues: true})
	if err != nil {
		t.Fatal(err)
	}
	if got != in {
		t.Errorf("keep: got %q", got)
	}

	got, err = Generate(strings.NewReader(in), Options{Placeholder: "<redacted>"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "SECRET=<redacted>") {
		t.Errorf("placeholder: got %q", got)
	}

	pats, err := CompilePatterns([]string{"custom_.*"})
	if err != nil {
		t.Fatal(err)
	}
	got, err = Generate(strings.NewReader(in), Options{Patterns: pats})
	if err != nil {
		t.Fatal(err)
	}
	// explicit patterns replace the built-ins entirely
	if !strings.Contains(got, "SECRET=a") || !strings.Contains(got, "CUSTOM_FIELD="+DefaultPlaceholder) {
		t.Errorf("patterns: got %q", got)
	}
}

func TestSensitive(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"DB_PASSWORD", true},
		{"password", true},
		{"MY_SECRET_VALUE", true},
		{"ACCESS_TOKEN", true},
		{"SSH_KEY", true},
		{"API_URL", true},
		{"OAUTH_CLIENT", true},
		{"AWS_CREDENTIALS", true},
		{"PRIVATE_ENDPOINT", true},
		{"DB_HOST", false},
		{"DEBUG", false},
		{"PORT", false},
	}
	for _, tt := range tests {
		if got := Sensitive(tt.key, nil); got != tt.want {
			t.Errorf("Sensitive(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestGenerateFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, ".env")
	if err := os.WriteFile(input, []byte("TOKEN=abc\nHOST=db\n"), 0644); err != nil {
		t.Fatal(err)
	}
	output := filepath.Join(dir, ".env.template")
	tpl, err := GenerateFile(input, output, Options{})
	if err != nil {
		t.Fatal(err)
	}
	d, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != tpl {
		t.Error("written template differs from returned one")
	}
	if !strings.Contains(tpl, "TOKEN="+DefaultPlaceholder) || !strings.Contains(tpl, "HOST=db") {
		t.Errorf("template: %q", tpl)
	}

	if _, err := GenerateFile(filepath.Join(dir, "missing.env"), "", Options{}); err == nil {
		t.Error("expected error for missing input")
	}
}

func TestTemplatePath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{".env", ".env.template"},
		{"config.env", "config.template"},
		{"a/b/.env", "a/b/.env.template"},
		{"a/b/prod.env", "a/b/prod.template"},
		{"noext", "noext.template"},
	}
	for _, tt := range tests {
		if got := TemplatePath(tt.in); got != tt.want {
			t.Errorf("TemplatePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
