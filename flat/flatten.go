package flat

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/dx-tools/go-dx/debug"
	"github.com/dx-tools/go-dx/ir"
)

var (
	// ErrInvalidInputShape is returned when the input root is not an
	// object node.
	ErrInvalidInputShape = errors.New("input must be an object")

	// ErrBadSeparator is returned for an empty separator.
	ErrBadSeparator = errors.New("separator must be non-empty")
)

// Flatten transforms a tree rooted at an object into a single-level object
// mapping separator-joined path keys to leaf values.  Array elements are
// keyed by their index.  With MaxDepth set, subtrees at the limit are kept
// verbatim as values.  The result shares no structure with the input.
func Flatten(root *ir.Node, opts ...Option) (*ir.Node, error) {
	fo := newOpts(opts)
	if fo.sep == "" {
		return nil, ErrBadSeparator
	}
	if root == nil || root.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidInputShape, nodeType(root))
	}
	res := ir.Object()
	flattenObject(root, "", 0, fo, res)
	if debug.Flat() {
		debug.Logf("flatten: %d keys from %d top-level fields\n", res.Len(), root.Len())
	}
	return res, nil
}

func flattenObject(obj *ir.Node, prefix string, depth int, fo *flatOpts, res *ir.Node) {
	for i := range obj.Fields {
		key := obj.Fields[i].String
		val := obj.Values[i]
		newKey := key
		if prefix != "" {
			newKey = prefix + fo.sep + key
		}
		switch {
		case fo.limited(depth):
			res.Set(newKey, val.Clone())
		case val.Type == ir.ObjectType:
			flattenObject(val, newKey, depth+1, fo, res)
		case val.Type == ir.ArrayType:
			flattenArray(val, newKey, depth, fo, res)
		default:
			res.Set(newKey, val.Clone())
		}
	}
}

func flattenArray(arr *ir.Node, newKey string, depth int, fo *flatOpts, res *ir.Node) {
	for i, elt := range arr.Values {
		listKey := newKey + fo.sep + strconv.Itoa(i)
		switch elt.Type {
		case ir.ObjectType:
			flattenObject(elt, listKey, depth+1, fo, res)
		case ir.ArrayType:
			// a nested array recurses through a synthetic single-field
			// object keyed by the index, with the outer array's key as
			// the prefix, so the index becomes the final differentiating
			// segment
			wrapped := ir.FromKeyVals([]ir.KeyVal{
				{Key: strconv.Itoa(i), Val: elt},
			})
			flattenObject(wrapped, newKey, depth+1, fo, res)
		default:
			res.Set(listKey, elt.Clone())
		}
	}
}

func nodeType(y *ir.Node) string {
	if y == nil {
		return "nil"
	}
	return y.Type.String()
}
