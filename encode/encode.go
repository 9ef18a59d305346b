package encode

import (
	"bytes"
	"io"
	"strings"

	"github.com/dx-tools/go-dx/format"
	"github.com/dx-tools/go-dx/ir"
)

type EncState struct {
	indent int
	wire   bool

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w in the configured format, ending with a
// newline unless wire output is selected.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	if es.format.IsYAML() {
		return encodeYAML(node, w, es)
	}
	if err := encodeJSON(node, w, 0, es); err != nil {
		return err
	}
	if es.wire {
		return nil
	}
	_, err := w.Write(newline)
	return err
}

var newline = []byte("\n")

// MustString renders node as pretty JSON, panicking on writer errors.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
