package main

import (
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/dx-tools/go-dx/encode"
	"github.com/dx-tools/go-dx/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Wire   bool `cli:"name=wire desc='output in compact format'"`
	Indent int  `cli:"name=indent desc='output indentation width'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// inFormat resolves the input format for path: explicit flags win, then
// the file suffix, then JSON.
func (cfg *MainConfig) inFormat(path string) format.Format {
	switch {
	case cfg.J:
		return format.JSONFormat
	case cfg.Y:
		return format.YAMLFormat
	}
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if path != "" && path != "-" {
		if f, err := format.FromPath(path); err == nil {
			return f
		}
	}
	return format.JSONFormat
}

func (cfg *MainConfig) outFormat() format.Format {
	switch {
	case cfg.J:
		return format.JSONFormat
	case cfg.Y:
		return format.YAMLFormat
	}
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return format.JSONFormat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.EncodeWire(cfg.Wire),
	}
	if cfg.Indent > 0 {
		res = append(res, encode.Indent(cfg.Indent))
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

type FlattenConfig struct {
	*MainConfig

	Sep      string `cli:"name=s aliases=sep desc='key separator'"`
	MaxDepth int    `cli:"name=d aliases=depth desc='maximum depth for flattening'"`

	Flatten *cli.Command
}

type UnflattenConfig struct {
	*MainConfig

	Sep string `cli:"name=s aliases=sep desc='key separator'"`

	Unflatten *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}

type BatchConfig struct {
	*MainConfig

	From, To *format.Format

	Batch *cli.Command
}

type MergeConfig struct {
	*MainConfig

	Mode   string `cli:"name=mode desc='merge mode: rows (append) or columns (join)'"`
	Source bool   `cli:"name=source desc='add source file column'"`
	Dedup  bool   `cli:"name=dedup desc='remove duplicate rows'"`

	Merge *cli.Command
}

type ValidateConfig struct {
	*MainConfig

	F      string `cli:"name=f aliases=format desc='file format: csv or json (default by suffix)'"`
	Report string `cli:"name=report desc='write JSON error report to file'"`
	Strict bool   `cli:"name=strict desc='fail on any error'"`

	Rules []string

	Validate *cli.Command
}

type EnvTplConfig struct {
	*MainConfig

	Placeholder string `cli:"name=p aliases=placeholder desc='placeholder text for sensitive values'"`
	Keep        bool   `cli:"name=keep desc='keep all values unmasked'"`

	Patterns []*regexp.Regexp

	EnvTpl *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Patch *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}
