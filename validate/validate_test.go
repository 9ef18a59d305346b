package validate

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseRule(t *testing.T) {
	r, err := ParseRule("age:required:type=int:min=0:max=120:unique")
	if err != nil {
		t.Fatal(err)
	}
	if r.Field != "age" || !r.Required || r.Type != "int" || !r.Unique {
		t.Errorf("rule: %+v", r)
	}
	if r.Min == nil || *r.Min != 0 || r.Max == nil || *r.Max != 120 {
		t.Errorf("bounds: %+v", r)
	}

	r, err = ParseRule("code:pattern=[A-Z]{3}")
	if err != nil {
		t.Fatal(err)
	}
	if !r.Pattern.MatchString("ABC1") {
		t.Error("pattern should match at the start")
	}
	if r.Pattern.MatchString("xABC") {
		t.Error("pattern must be anchored at the start")
	}

	for _, bad := range []string{
		"",
		":required",
		"f:type=quaternion",
		"f:pattern=[",
		"f:min=low",
		"f:frobnicate",
	} {
		if _, err := ParseRule(bad); !errors.Is(err, ErrBadRule) {
			t.Errorf("ParseRule(%q): got %v, want %v", bad, err, ErrBadRule)
		}
	}
}

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func mustRules(t *testing.T, specs ...string) []*Rule {
	t.Helper()
	rules, err := ParseRules(specs)
	if err != nil {
		t.Fatal(err)
	}
	return rules
}

func TestCSV(t *testing.T) {
	path := writeFile(t, "users.csv",
		"name,email,age\n"+
			"ann,ann@example.com,30\n"+
			",bad-email,200\n"+
			"bob,ann@example.com,abc\n")
	rules := mustRules(t,
		"name:required",
		"email:required:type=email:unique",
		"age:type=int:min=0:max=120")

	report, err := CSV(path, rules)
	if err != nil {
		t.Fatal(err)
	}
	if report.Valid {
		t.Error("report should not be valid")
	}
	if report.TotalRows != 3 || report.ValidRows != 1 || report.InvalidRows != 2 {
		t.Errorf("counts: %+v", report)
	}
	if len(report.Duplicates) != 1 || report.Duplicates[0].Row != 3 {
		t.Errorf("duplicates: %+v", report.Duplicates)
	}
	wantRow2 := []string{
		"Field 'name' is required",
		"Field 'email' must be a valid email",
		"Field 'age' must be <= 120",
	}
	if len(report.Errors) != 2 {
		t.Fatalf("errors: %+v", report.Errors)
	}
	if d := cmp.Diff(wantRow2, report.Errors[0].Errors); d != "" {
		t.Errorf("row 2 errors (-want +got):\n%s", d)
	}
	if report.Errors[1].Row != 3 {
		t.Errorf("row 3: %+v", report.Errors[1])
	}
}

func TestJSON(t *testing.T) {
	path := writeFile(t, "users.json",
		`[{"name": "ann", "age": 30}, {"name": "", "age": -1}]`)
	rules := mustRules(t, "name:required", "age:type=int:min=0")

	report, err := JSON(path, rules)
	if err != nil {
		t.Fatal(err)
	}
	if report.Valid || report.InvalidRows != 1 {
		t.Errorf("report: %+v", report)
	}
	want := []string{
		"Field 'name' is required",
		"Field 'age' must be >= 0",
	}
	if d := cmp.Diff(want, report.Errors[0].Errors); d != "" {
		t.Errorf("errors (-want +got):\n%s", d)
	}

	bad := writeFile(t, "obj.json", `{"a": 1}`)
	if _, err := JSON(bad, rules); err == nil {
		t.Error("expected error for non-array root")
	}
}

func TestExprRule(t *testing.T) {
	path := writeFile(t, "codes.csv", "code\nabc\nabcdef\n")
	rules := mustRules(t, `code:msg=code too short:expr=len(value) > 3`)

	report, err := CSV(path, rules)
	if err != nil {
		t.Fatal(err)
	}
	if report.InvalidRows != 1 {
		t.Fatalf("report: %+v", report)
	}
	if got := report.Errors[0].Errors[0]; got != "code too short" {
		t.Errorf("message: %q", got)
	}
}

func TestUniqueDoesNotInvalidateRow(t *testing.T) {
	path := writeFile(t, "d.csv", "id\n1\n1\n")
	report, err := CSV(path, mustRules(t, "id:unique"))
	if err != nil {
		t.Fatal(err)
	}
	if report.InvalidRows != 0 {
		t.Errorf("duplicate rows are not invalid rows: %+v", report)
	}
	if report.Valid {
		t.Error("duplicates still fail the report")
	}
}

func TestReportNode(t *testing.T) {
	path := writeFile(t, "r.csv", "name,age\nann,30\n,40\n")
	report, err := CSV(path, mustRules(t, "name:required"))
	if err != nil {
		t.Fatal(err)
	}
	node := report.Node("r.csv")
	if got := node.Get("file").String; got != "r.csv" {
		t.Errorf("file: %q", got)
	}
	if got := *node.Get("invalid_rows").Int64; got != 1 {
		t.Errorf("invalid_rows: %d", got)
	}
	errs := node.Get("errors")
	if errs.Len() != 1 || *errs.Values[0].Get("row").Int64 != 2 {
		t.Errorf("errors node: %+v", errs)
	}
}
