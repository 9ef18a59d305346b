package main

import (
	"fmt"

	"github.com/dx-tools/go-dx/decode"
	"github.com/dx-tools/go-dx/encode"
	"github.com/dx-tools/go-dx/format"
	"github.com/dx-tools/go-dx/ir"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch needs a patch file and a document", cli.ErrUsage)
	}
	p, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	doc, err := getObjFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	// both go through the wire form so YAML inputs patch the same as JSON
	wire := func(n *ir.Node) []byte {
		return []byte(encode.MustString(n, encode.EncodeFormat(format.JSONFormat), encode.EncodeWire(true)))
	}
	var patched []byte
	switch p.Type {
	case ir.ArrayType:
		ops, err := jsonpatch.DecodePatch(wire(p))
		if err != nil {
			return fmt.Errorf("bad patch %s: %w", args[0], err)
		}
		patched, err = ops.Apply(wire(doc))
		if err != nil {
			return fmt.Errorf("applying %s: %w", args[0], err)
		}
	case ir.ObjectType:
		patched, err = jsonpatch.MergePatch(wire(doc), wire(p))
		if err != nil {
			return fmt.Errorf("applying %s: %w", args[0], err)
		}
	default:
		return fmt.Errorf("patch %s must be an operation array or a merge object", args[0])
	}
	res, err := decode.Bytes(patched, format.JSONFormat)
	if err != nil {
		return err
	}
	return encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...)
}
