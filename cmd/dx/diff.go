package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dx-tools/go-dx/encode"
	"github.com/dx-tools/go-dx/format"
	"github.com/dx-tools/go-dx/ir"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff needs two files", cli.ErrUsage)
	}
	a, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	b, err := getObjFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	if ir.Equal(a, b) {
		fmt.Fprintf(cc.Out, "%s and %s are equal\n", args[0], args[1])
		return nil
	}
	// normalized rendering so formatting differences don't show up
	sa := encode.MustString(a, encode.EncodeFormat(format.JSONFormat), encode.Indent(cfg.Indent))
	sb := encode.MustString(b, encode.EncodeFormat(format.JSONFormat), encode.Indent(cfg.Indent))

	useColor := cfg.Color
	if !useColor {
		if f, ok := cc.Out.(*os.File); ok {
			useColor = isatty.IsTerminal(f.Fd())
		}
	}
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(sa, sb)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	for _, d := range diffs {
		for _, line := range splitDiffLines(d.Text) {
			switch d.Type {
			case diffpatch.DiffDelete:
				if useColor {
					fmt.Fprintln(cc.Out, color.RedString("- %s", line))
				} else {
					fmt.Fprintf(cc.Out, "- %s\n", line)
				}
			case diffpatch.DiffInsert:
				if useColor {
					fmt.Fprintln(cc.Out, color.GreenString("+ %s", line))
				} else {
					fmt.Fprintf(cc.Out, "+ %s\n", line)
				}
			case diffpatch.DiffEqual:
				fmt.Fprintf(cc.Out, "  %s\n", line)
			}
		}
	}
	return nil
}

func splitDiffLines(text string) []string {
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
