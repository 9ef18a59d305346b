// Package decode reads JSON and YAML documents into IR nodes.
//
// Object field order in the source text is preserved: JSON is read from
// the token stream and YAML through goccy's ordered map mode.
//
// # Related Packages
//
//   - github.com/dx-tools/go-dx/ir - the tree value representation
//   - github.com/dx-tools/go-dx/encode - the inverse direction
package decode
