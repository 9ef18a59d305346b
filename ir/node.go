package ir

import "strconv"

// Node is a dynamically typed tree value.  The Type field selects which of
// the remaining fields are meaningful:
//
//   - ObjectType: Fields and Values, index-aligned; Fields are StringType
//     nodes holding the keys in insertion order.
//   - ArrayType: Values in index order.
//   - StringType: String.
//   - NumberType: exactly one of Int64 or Float64, plus the source literal
//     in Number when the node came from text.
//   - BoolType: Bool.
//   - NullType: nothing.
type Node struct {
	Type   Type
	Fields []*Node
	Values []*Node

	String  string
	Bool    bool
	Number  string
	Int64   *int64
	Float64 *float64
}

func Null() *Node {
	return &Node{Type: NullType}
}

// Object returns a new empty object node.
func Object() *Node {
	return &Node{Type: ObjectType}
}

// Array returns a new empty array node.
func Array() *Node {
	return &Node{Type: ArrayType}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Int64: &v}
}

func FromFloat(f float64) *Node {
	return &Node{Type: NumberType, Float64: &f}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromSlice(vs []*Node) *Node {
	res := &Node{Type: ArrayType}
	res.Values = append(res.Values, vs...)
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := Object()
	for _, kv := range kvs {
		res.Set(kv.Key, kv.Val)
	}
	return res
}

// IndexOf returns the position of field in an object node, or -1.
func (y *Node) IndexOf(field string) int {
	for i := range y.Fields {
		if y.Fields[i].String == field {
			return i
		}
	}
	return -1
}

// Get returns the value of field in an object node, or nil.
func (y *Node) Get(field string) *Node {
	if i := y.IndexOf(field); i != -1 {
		return y.Values[i]
	}
	return nil
}

// Set assigns field to v in an object node.  An existing field keeps its
// position; a new field is appended, preserving insertion order.
func (y *Node) Set(field string, v *Node) {
	if i := y.IndexOf(field); i != -1 {
		y.Values[i] = v
		return
	}
	y.Fields = append(y.Fields, FromString(field))
	y.Values = append(y.Values, v)
}

// Append adds v to an array node.
func (y *Node) Append(v *Node) {
	y.Values = append(y.Values, v)
}

// Len returns the number of entries of a container node, 0 otherwise.
func (y *Node) Len() int {
	switch y.Type {
	case ObjectType:
		return len(y.Fields)
	case ArrayType:
		return len(y.Values)
	default:
		return 0
	}
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.String = y.String
	dst.Bool = y.Bool
	dst.Number = y.Number
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Fields != nil {
		dst.Fields = make([]*Node, len(y.Fields))
		for i, yf := range y.Fields {
			dst.Fields[i] = yf.Clone()
		}
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = yv.Clone()
		}
	}
	return dst
}

// Visit walks the tree in pre and post order.  f is called with isPost
// false before a node's children and true after; returning false from the
// pre call skips the children.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

// NumberString returns the literal form of a number node.  A node decoded
// from text keeps its source spelling.
func (y *Node) NumberString() string {
	if y.Number != "" {
		return y.Number
	}
	if y.Int64 != nil {
		return strconv.FormatInt(*y.Int64, 10)
	}
	if y.Float64 != nil {
		return strconv.FormatFloat(*y.Float64, 'g', -1, 64)
	}
	return "0"
}
