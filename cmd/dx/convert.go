package main

import (
	"fmt"

	"github.com/dx-tools/go-dx/batch"
	"github.com/dx-tools/go-dx/format"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: convert <input> <output>", cli.ErrUsage)
	}
	input, output := args[0], args[1]
	from, err := format.FromPath(input)
	if err != nil {
		return err
	}
	to, err := format.FromPath(output)
	if err != nil {
		return err
	}
	if from == to {
		return fmt.Errorf("unsupported conversion %s -> %s", from, to)
	}
	if err := batch.ConvertFile(input, output, from, to, cfg.Indent); err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "Converted: %s -> %s\n", input, output)
	return nil
}

func batchRun(cfg *BatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Batch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: batch -from (format) -to (format) <inputdir> <outputdir>", cli.ErrUsage)
	}
	if cfg.From == nil || cfg.To == nil {
		return fmt.Errorf("%w: -from and -to are required", cli.ErrUsage)
	}
	stats, err := batch.Convert(args[0], args[1], *cfg.From, *cfg.To, cfg.Indent)
	if err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "Files processed: %d\n", stats.Processed)
	fmt.Fprintf(cc.Out, "Files failed: %d\n", stats.Failed)
	if len(stats.Errors) > 0 {
		fmt.Fprintf(cc.Out, "\nErrors:\n")
		for _, e := range stats.Errors {
			fmt.Fprintf(cc.Out, "  - %s\n", e)
		}
	}
	return nil
}
