package flat

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dx-tools/go-dx/debug"
	"github.com/dx-tools/go-dx/ir"
)

// Unflatten reconstructs a tree from a flat object of path keys.  A
// digit-only segment denotes an array index; any other segment an object
// field.  Arrays are padded with nulls up to the highest index seen.
//
// A key whose path conflicts with the container kind already established
// at that position is not an error: processing stops and the tree built
// from the entries before it is returned as-is.  Callers feeding
// untrusted flat keys rely on this lenient recovery, so it is part of the
// contract rather than a defect.
func Unflatten(flatObj *ir.Node, opts ...Option) (*ir.Node, error) {
	fo := newOpts(opts)
	if fo.sep == "" {
		return nil, ErrBadSeparator
	}
	if flatObj == nil || flatObj.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidInputShape, nodeType(flatObj))
	}
	res := ir.Object()
	for i := range flatObj.Fields {
		key := flatObj.Fields[i].String
		val := flatObj.Values[i]
		// entries are staged on a copy so a conflicting key leaves no
		// partial mutation behind
		staged := res.Clone()
		if !applyEntry(staged, strings.Split(key, fo.sep), val) {
			if debug.Flat() {
				debug.Logf("unflatten: conflict at %q, stopping after %d of %d entries\n",
					key, i, flatObj.Len())
			}
			return res, nil
		}
		res = staged
	}
	return res, nil
}

// applyEntry walks root along parts, creating containers as needed, and
// places val at the final segment.  It reports false on a structural
// conflict, in which case root is in an unspecified partial state and
// must be discarded.
func applyEntry(root *ir.Node, parts []string, val *ir.Node) bool {
	current := root
	last := len(parts) - 1
	for i := 0; i < last; i++ {
		part := parts[i]
		_, nextIsIndex := segIndex(parts[i+1])
		idx, ok := segIndex(part)
		if ok {
			if current.Type != ir.ArrayType {
				return false
			}
			for len(current.Values) <= idx {
				current.Append(emptyContainer(nextIsIndex))
			}
			elt := current.Values[idx]
			if wantType(nextIsIndex) != elt.Type {
				elt = emptyContainer(nextIsIndex)
				current.Values[idx] = elt
			}
			current = elt
			continue
		}
		if current.Type != ir.ObjectType {
			return false
		}
		child := current.Get(part)
		if child == nil {
			child = emptyContainer(nextIsIndex)
			current.Set(part, child)
		}
		current = child
	}

	lastPart := parts[last]
	if idx, ok := segIndex(lastPart); ok {
		if current.Type != ir.ArrayType {
			return false
		}
		for len(current.Values) <= idx {
			current.Append(ir.Null())
		}
		current.Values[idx] = val.Clone()
		return true
	}
	if current.Type != ir.ObjectType {
		return false
	}
	current.Set(lastPart, val.Clone())
	return true
}

func emptyContainer(isArray bool) *ir.Node {
	if isArray {
		return ir.Array()
	}
	return ir.Object()
}

func wantType(isArray bool) ir.Type {
	if isArray {
		return ir.ArrayType
	}
	return ir.ObjectType
}

// segIndex parses a digit-only segment as a non-negative array index.
// Segments too large for int are treated as plain field names.
func segIndex(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
