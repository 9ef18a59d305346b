package decode

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dx-tools/go-dx/format"
	"github.com/dx-tools/go-dx/ir"
)

func TestJSONKeepsFieldOrder(t *testing.T) {
	y, err := Bytes([]byte(`{"z": 1, "a": {"m": 1, "b": 2}, "k": [true, null]}`), format.JSONFormat)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"z", "a", "k"}
	for i, f := range want {
		if y.Fields[i].String != f {
			t.Errorf("field %d: got %q, want %q", i, y.Fields[i].String, f)
		}
	}
	inner := y.Get("a")
	if inner.Fields[0].String != "m" || inner.Fields[1].String != "b" {
		t.Errorf("inner order lost: %v, %v", inner.Fields[0].String, inner.Fields[1].String)
	}
}

func TestJSONDuplicateKeys(t *testing.T) {
	y, err := Bytes([]byte(`{"a": 1, "a": 2}`), format.JSONFormat)
	if err != nil {
		t.Fatal(err)
	}
	if y.Len() != 1 {
		t.Fatalf("got %d fields, want 1", y.Len())
	}
	if got := y.Get("a"); *got.Int64 != 2 {
		t.Errorf("got %d, want last value 2", *got.Int64)
	}
}

func TestJSONNumbers(t *testing.T) {
	y, err := Bytes([]byte(`{"i": 42, "f": 3.14, "e": 1e3, "big": 123456789012345678901234567890}`),
		format.JSONFormat)
	if err != nil {
		t.Fatal(err)
	}
	i := y.Get("i")
	if i.Int64 == nil || *i.Int64 != 42 {
		t.Errorf("i: %+v", i)
	}
	f := y.Get("f")
	if f.Float64 == nil || *f.Float64 != 3.14 {
		t.Errorf("f: %+v", f)
	}
	if got := y.Get("e").NumberString(); got != "1e3" {
		t.Errorf("e literal: got %q", got)
	}
	if got := y.Get("big").NumberString(); got != "123456789012345678901234567890" {
		t.Errorf("big literal: got %q", got)
	}
}

func TestJSONTrailingData(t *testing.T) {
	if _, err := Bytes([]byte(`{"a": 1} {"b": 2}`), format.JSONFormat); err == nil {
		t.Error("expected error on trailing data")
	}
	if _, err := Bytes([]byte(`{"a": `), format.JSONFormat); err == nil {
		t.Error("expected error on truncated document")
	}
}

func TestYAMLKeepsFieldOrder(t *testing.T) {
	doc := `
z: 1
a:
  m: one
  b: two
k:
- true
- null
`
	y, err := Bytes([]byte(doc), format.YAMLFormat)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"z", "a", "k"}
	for i, f := range want {
		if y.Fields[i].String != f {
			t.Errorf("field %d: got %q, want %q", i, y.Fields[i].String, f)
		}
	}
	k := y.Get("k")
	if k.Type != ir.ArrayType || k.Len() != 2 {
		t.Fatalf("k: %+v", k)
	}
	if k.Values[0].Type != ir.BoolType || k.Values[1].Type != ir.NullType {
		t.Errorf("k element types: %v, %v", k.Values[0].Type, k.Values[1].Type)
	}
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.json")
	if err := os.WriteFile(path, []byte(`{"a": 1}`), 0644); err != nil {
		t.Fatal(err)
	}
	y, err := File(path, format.JSONFormat)
	if err != nil {
		t.Fatal(err)
	}
	if *y.Get("a").Int64 != 1 {
		t.Errorf("got %+v", y)
	}
	if _, err := File(filepath.Join(dir, "missing.json"), format.JSONFormat); err == nil {
		t.Error("expected error for missing file")
	}
}
