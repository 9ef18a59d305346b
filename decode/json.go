package decode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/dx-tools/go-dx/ir"
)

func decodeJSON(d []byte) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	node, err := jsonValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing data after document")
	}
	return node, nil
}

func jsonValue(dec *json.Decoder) (*ir.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return jsonObject(dec)
		case '[':
			return jsonArray(dec)
		default:
			return nil, fmt.Errorf("unexpected %q", t)
		}
	case string:
		return ir.FromString(t), nil
	case json.Number:
		return numberNode(t), nil
	case bool:
		return ir.FromBool(t), nil
	case nil:
		return ir.Null(), nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func jsonObject(dec *json.Decoder) (*ir.Node, error) {
	res := ir.Object()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key %v is not a string", keyTok)
		}
		val, err := jsonValue(dec)
		if err != nil {
			return nil, err
		}
		// duplicate keys: last writer wins, as encoding/json does
		res.Set(key, val)
	}
	if _, err := dec.Token(); err != nil { // closing brace
		return nil, err
	}
	return res, nil
}

func jsonArray(dec *json.Decoder) (*ir.Node, error) {
	res := ir.Array()
	for dec.More() {
		val, err := jsonValue(dec)
		if err != nil {
			return nil, err
		}
		res.Append(val)
	}
	if _, err := dec.Token(); err != nil { // closing bracket
		return nil, err
	}
	return res, nil
}

func numberNode(n json.Number) *ir.Node {
	if i, err := n.Int64(); err == nil {
		res := ir.FromInt(i)
		res.Number = n.String()
		return res
	}
	if f, err := n.Float64(); err == nil {
		res := ir.FromFloat(f)
		res.Number = n.String()
		return res
	}
	return &ir.Node{Type: ir.NumberType, Number: n.String()}
}
