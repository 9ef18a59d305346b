package main

import (
	"fmt"
	"os"

	"github.com/dx-tools/go-dx/csvmerge"

	"github.com/scott-cotton/cli"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: merge needs input files", cli.ErrUsage)
	}
	mode, err := csvmerge.ParseMode(cfg.Mode)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	stats, err := csvmerge.Merge(args, cc.Out, csvmerge.Options{
		Mode:      mode,
		AddSource: cfg.Source,
		Dedup:     cfg.Dedup,
	})
	if err != nil {
		return err
	}
	// stats go to stderr so piped CSV output stays clean
	fmt.Fprintf(os.Stderr, "Files processed: %d\n", stats.FilesProcessed)
	fmt.Fprintf(os.Stderr, "Total rows read: %d\n", stats.RowsTotal)
	fmt.Fprintf(os.Stderr, "Rows written: %d\n", stats.RowsWritten)
	if stats.DuplicatesRemoved > 0 {
		fmt.Fprintf(os.Stderr, "Duplicates removed: %d\n", stats.DuplicatesRemoved)
	}
	return nil
}
