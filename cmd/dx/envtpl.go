package main

import (
	"fmt"

	"github.com/dx-tools/go-dx/envtpl"

	"github.com/scott-cotton/cli"
)

func envTplPattern(cfg *EnvTplConfig, a string) (any, error) {
	res, err := envtpl.CompilePatterns([]string{a})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Patterns = append(cfg.Patterns, res...)
	return a, nil
}

func envTpl(cfg *EnvTplConfig, cc *cli.Context, args []string) error {
	args, err := cfg.EnvTpl.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := envtpl.Options{
		Placeholder: cfg.Placeholder,
		Patterns:    cfg.Patterns,
		KeepValues:  cfg.Keep,
	}
	if len(args) == 0 || args[0] == "-" {
		tpl, err := envtpl.Generate(cc.In, opts)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cc.Out, tpl)
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: envtpl takes at most one input file", cli.ErrUsage)
	}
	input := args[0]
	if cfg.Out != "" && cfg.Out != "-" {
		// -o already opened cc.Out, stream the template there
		tpl, err := envtpl.GenerateFile(input, "", opts)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cc.Out, tpl)
		return err
	}
	output := envtpl.TemplatePath(input)
	if _, err := envtpl.GenerateFile(input, output, opts); err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "Template written to %s\n", output)
	return nil
}
