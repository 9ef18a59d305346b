// Package encode renders IR nodes as JSON or YAML text.
//
// # Usage
//
//	// pretty JSON to a writer
//	err := encode.Encode(node, w)
//
//	// YAML, compact JSON, custom indent
//	err := encode.Encode(node, w, encode.EncodeFormat(format.YAMLFormat))
//	err := encode.Encode(node, w, encode.EncodeWire(true))
//	err := encode.Encode(node, w, encode.Indent(4))
//
// Object field order is preserved in both formats.
//
// # Related Packages
//
//   - github.com/dx-tools/go-dx/ir - the tree value representation
//   - github.com/dx-tools/go-dx/decode - the inverse direction
package encode
