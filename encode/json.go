package encode

import (
	"encoding/json"
	"io"

	"github.com/dx-tools/go-dx/ir"
)

func encodeJSON(node *ir.Node, w io.Writer, depth int, es *EncState) error {
	switch node.Type {
	case ir.ObjectType:
		return encodeJSONObject(node, w, depth, es)
	case ir.ArrayType:
		return encodeJSONArray(node, w, depth, es)
	case ir.StringType:
		return writeColored(w, es, ir.StringType, ValueColor, jsonString(node.String))
	case ir.NumberType:
		return writeColored(w, es, ir.NumberType, ValueColor, node.NumberString())
	case ir.BoolType:
		v := "false"
		if node.Bool {
			v = "true"
		}
		return writeColored(w, es, ir.BoolType, ValueColor, v)
	case ir.NullType:
		return writeColored(w, es, ir.NullType, ValueColor, "null")
	default:
		panic("impossible production")
	}
}

func encodeJSONObject(node *ir.Node, w io.Writer, depth int, es *EncState) error {
	if len(node.Fields) == 0 {
		return writeString(w, "{}")
	}
	if err := writeString(w, "{"); err != nil {
		return err
	}
	for i := range node.Fields {
		if i > 0 {
			if err := writeString(w, ","); err != nil {
				return err
			}
		}
		if err := writeEntrySep(w, depth+1, es); err != nil {
			return err
		}
		key := jsonString(node.Fields[i].String)
		if err := writeColored(w, es, ir.ObjectType, FieldColor, key); err != nil {
			return err
		}
		sep := ": "
		if es.wire {
			sep = ":"
		}
		if err := writeString(w, sep); err != nil {
			return err
		}
		if err := encodeJSON(node.Values[i], w, depth+1, es); err != nil {
			return err
		}
	}
	if err := writeEntrySep(w, depth, es); err != nil {
		return err
	}
	return writeString(w, "}")
}

func encodeJSONArray(node *ir.Node, w io.Writer, depth int, es *EncState) error {
	if len(node.Values) == 0 {
		return writeString(w, "[]")
	}
	if err := writeString(w, "["); err != nil {
		return err
	}
	for i, elt := range node.Values {
		if i > 0 {
			if err := writeString(w, ","); err != nil {
				return err
			}
		}
		if err := writeEntrySep(w, depth+1, es); err != nil {
			return err
		}
		if err := encodeJSON(elt, w, depth+1, es); err != nil {
			return err
		}
	}
	if err := writeEntrySep(w, depth, es); err != nil {
		return err
	}
	return writeString(w, "]")
}

// writeEntrySep writes the newline and indentation before an entry, or
// nothing in wire mode.
func writeEntrySep(w io.Writer, depth int, es *EncState) error {
	if es.wire {
		return nil
	}
	pad := make([]byte, 1+depth*es.indent)
	pad[0] = '\n'
	for i := 1; i < len(pad); i++ {
		pad[i] = ' '
	}
	_, err := w.Write(pad)
	return err
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func writeColored(w io.Writer, es *EncState, t ir.Type, attr ColorAttr, s string) error {
	if es.Color != nil {
		s = es.Color(t, attr, s)
	}
	return writeString(w, s)
}

func jsonString(s string) string {
	d, err := json.Marshal(s)
	if err != nil {
		// strings always marshal
		panic(err)
	}
	return string(d)
}
