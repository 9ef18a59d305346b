package decode

import (
	"fmt"
	"os"

	"github.com/dx-tools/go-dx/debug"
	"github.com/dx-tools/go-dx/format"
	"github.com/dx-tools/go-dx/ir"
)

// Bytes decodes a document in the given format.
func Bytes(d []byte, f format.Format) (*ir.Node, error) {
	if debug.Decode() {
		debug.Logf("decode: %d bytes of %s\n", len(d), f)
	}
	switch f {
	case format.JSONFormat:
		return decodeJSON(d)
	case format.YAMLFormat:
		return decodeYAML(d)
	default:
		return nil, fmt.Errorf("%w: %d", format.ErrBadFormat, f)
	}
}

// File reads and decodes path in the given format.
func File(path string, f format.Format) (*ir.Node, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	node, err := Bytes(d, f)
	if err != nil {
		return nil, fmt.Errorf("error decoding %q: %w", path, err)
	}
	return node, nil
}
