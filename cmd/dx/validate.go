package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dx-tools/go-dx/encode"
	"github.com/dx-tools/go-dx/validate"

	"github.com/scott-cotton/cli"
)

func validateRun(cfg *ValidateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Validate.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: validate needs one input file", cli.ErrUsage)
	}
	if len(cfg.Rules) == 0 {
		return fmt.Errorf("%w: validate needs at least one -r rule", cli.ErrUsage)
	}
	rules, err := validate.ParseRules(cfg.Rules)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	file := args[0]
	kind := cfg.F
	if kind == "" {
		if strings.HasSuffix(file, ".json") {
			kind = "json"
		} else {
			kind = "csv"
		}
	}
	var report *validate.Report
	switch kind {
	case "csv":
		report, err = validate.CSV(file, rules)
	case "json":
		report, err = validate.JSON(file, rules)
	default:
		return fmt.Errorf("%w: unknown format %q", cli.ErrUsage, kind)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cc.Out, "Validated %d rows: %d valid, %d invalid\n",
		report.TotalRows, report.ValidRows, report.InvalidRows)
	if n := len(report.Duplicates); n > 0 {
		fmt.Fprintf(cc.Out, "Duplicates: %d\n", n)
	}
	for i, re := range report.Errors {
		if i == 10 {
			fmt.Fprintf(cc.Out, "... and %d more rows with errors\n", len(report.Errors)-10)
			break
		}
		fmt.Fprintf(cc.Out, "Row %d:\n", re.Row)
		for _, msg := range re.Errors {
			fmt.Fprintf(cc.Out, "  - %s\n", msg)
		}
	}
	for i, dup := range report.Duplicates {
		if i == 10 {
			fmt.Fprintf(cc.Out, "... and %d more duplicates\n", len(report.Duplicates)-10)
			break
		}
		fmt.Fprintf(cc.Out, "Row %d: duplicate %s=%q\n", dup.Row, dup.Field, dup.Value)
	}

	if cfg.Report != "" && !report.Valid {
		f, err := os.OpenFile(cfg.Report, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := encode.Encode(report.Node(file), f, encode.Indent(cfg.Indent)); err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "Report written to %s\n", cfg.Report)
	}
	if cfg.Strict && !report.Valid {
		return fmt.Errorf("validation failed for %s", file)
	}
	return nil
}
