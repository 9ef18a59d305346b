// Package ir defines the tree values the dx tools operate on.
//
// A *ir.Node is a JSON-like value: null, bool, number, string, array or
// object.  Objects keep their fields in insertion order using parallel
// Fields/Values slices, so encoding and the flat transforms are
// deterministic and independent of map iteration order.
//
// # Related Packages
//
//   - github.com/dx-tools/go-dx/flat - flatten/unflatten path transforms
//   - github.com/dx-tools/go-dx/decode - decode JSON/YAML text to nodes
//   - github.com/dx-tools/go-dx/encode - encode nodes to JSON/YAML text
package ir
