package decode

import (
	"github.com/goccy/go-yaml"

	"github.com/dx-tools/go-dx/ir"
)

func decodeYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return ir.FromAny(v)
}
