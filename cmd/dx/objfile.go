package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dx-tools/go-dx/decode"
	"github.com/dx-tools/go-dx/ir"

	"github.com/scott-cotton/cli"
)

// getObjFile reads and decodes a document from path, or from the
// command's input when path is "-".
func getObjFile(cfg *MainConfig, cc *cli.Context, path string) (*ir.Node, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	node, err := decode.Bytes(d, cfg.inFormat(path))
	if err != nil {
		return nil, fmt.Errorf("error decoding %q: %w", path, err)
	}
	return node, nil
}

// inputArgs defaults to stdin when no files are given.
func inputArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
