package encode

import (
	"io"

	"github.com/goccy/go-yaml"

	"github.com/dx-tools/go-dx/ir"
)

func encodeYAML(node *ir.Node, w io.Writer, es *EncState) error {
	d, err := yaml.MarshalWithOptions(ir.ToAny(node), yaml.Indent(es.indent))
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}
