package ir

import (
	"testing"
)

func TestTypeText(t *testing.T) {
	for _, typ := range Types() {
		d, err := typ.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != typ {
			t.Errorf("%s roundtripped to %s", typ, back)
		}
	}
	var typ Type
	if err := typ.UnmarshalText([]byte("Tuple")); err == nil {
		t.Error("expected error for unknown type name")
	}
}

func TestTypeKinds(t *testing.T) {
	for _, typ := range Types() {
		isContainer := typ == ArrayType || typ == ObjectType
		if typ.IsContainer() != isContainer {
			t.Errorf("%s.IsContainer() = %v", typ, typ.IsContainer())
		}
		if typ.IsLeaf() == isContainer {
			t.Errorf("%s.IsLeaf() = %v", typ, typ.IsLeaf())
		}
	}
}
