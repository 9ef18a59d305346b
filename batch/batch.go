// Package batch converts directories of documents between formats.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dx-tools/go-dx/debug"
	"github.com/dx-tools/go-dx/decode"
	"github.com/dx-tools/go-dx/encode"
	"github.com/dx-tools/go-dx/format"
)

type Stats struct {
	Processed int
	Failed    int
	Errors    []string
}

// Convert decodes every document of the source format under inputDir and
// writes it in the target format under outputDir, which is created if
// needed.  Per-file failures are collected in the stats rather than
// aborting the batch.
func Convert(inputDir, outputDir string, from, to format.Format, indent int) (*Stats, error) {
	var files []string
	for _, glob := range from.Globs() {
		matches, err := filepath.Glob(filepath.Join(inputDir, glob))
		if err != nil {
			return nil, err
		}
		files = append(files, matches...)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, err
	}

	stats := &Stats{}
	for _, in := range files {
		out := filepath.Join(outputDir, stem(in)+to.Suffix())
		if err := convertFile(in, out, from, to, indent); err != nil {
			stats.Failed++
			stats.Errors = append(stats.Errors, fmt.Sprintf("%s: %v", in, err))
			continue
		}
		stats.Processed++
	}
	if debug.Batch() {
		debug.Logf("batch: %d processed, %d failed\n", stats.Processed, stats.Failed)
	}
	return stats, nil
}

// ConvertFile converts a single document between formats.
func ConvertFile(input, output string, from, to format.Format, indent int) error {
	return convertFile(input, output, from, to, indent)
}

func convertFile(input, output string, from, to format.Format, indent int) error {
	node, err := decode.File(input, from)
	if err != nil {
		return err
	}
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	err = encode.Encode(node, f,
		encode.EncodeFormat(to),
		encode.Indent(indent))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
