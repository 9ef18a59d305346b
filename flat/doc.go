// Package flat implements the bidirectional transform between nested tree
// values and flat mappings of separator-joined path keys.
//
// # Usage
//
//	// {"user": {"name": "alice"}} -> {"user.name": "alice"}
//	flatObj, err := flat.Flatten(node)
//
//	// {"items.0": "a", "items.1": "b"} -> {"items": ["a", "b"]}
//	tree, err := flat.Unflatten(flatObj)
//
//	// custom separator and depth limit
//	flatObj, err := flat.Flatten(node, flat.Separator("/"), flat.MaxDepth(2))
//
// Flatten and Unflatten are inverses for trees whose keys do not contain
// the separator.  A separator occurring inside a key collides with segment
// boundaries and the round trip is lossy there; this is documented
// behavior, not a defect.
//
// # Related Packages
//
//   - github.com/dx-tools/go-dx/ir - the tree value representation
package flat
