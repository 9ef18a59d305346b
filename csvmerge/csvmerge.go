// Package csvmerge merges CSV files by rows or by columns.
package csvmerge

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

type Mode int

const (
	// Rows appends records from all inputs under the first input's header.
	Rows Mode = iota
	// Columns joins inputs positionally, row i with row i.
	Columns
)

var ErrBadMode = errors.New("bad merge mode")

func ParseMode(v string) (Mode, error) {
	switch v {
	case "rows":
		return Rows, nil
	case "columns":
		return Columns, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadMode, v)
	}
}

func (m Mode) String() string {
	switch m {
	case Rows:
		return "rows"
	case Columns:
		return "columns"
	default:
		return "<unknown mode>"
	}
}

// Options control a merge.  The zero value merges by rows with no source
// column and no deduplication.
type Options struct {
	Mode      Mode
	AddSource bool
	Dedup     bool
}

type Stats struct {
	FilesProcessed    int
	RowsTotal         int
	RowsWritten       int
	DuplicatesRemoved int
}

const (
	sourceField     = "_source_file"
	mergeIndexField = "_merge_index"
)

var errNoInputs = errors.New("no input files provided")

// Merge reads the input CSV files and writes the merged result to w.
func Merge(inputs []string, w io.Writer, opts Options) (*Stats, error) {
	if len(inputs) == 0 {
		return nil, errNoInputs
	}
	for _, in := range inputs {
		if _, err := os.Stat(in); err != nil {
			return nil, fmt.Errorf("file not found: %s", in)
		}
	}
	switch opts.Mode {
	case Rows:
		return mergeRows(inputs, w, opts)
	case Columns:
		return mergeColumns(inputs, w, opts)
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadMode, opts.Mode)
	}
}

type table struct {
	name   string
	header []string
	rows   [][]string
}

func readTable(path string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	t := &table{name: filepath.Base(path)}
	if len(records) > 0 {
		t.header = records[0]
		t.rows = records[1:]
	}
	return t, nil
}

// cell returns row's value under column named col of t's header.
func (t *table) cell(row []string, col int) string {
	if col < len(row) {
		return row[col]
	}
	return ""
}

func mergeRows(inputs []string, w io.Writer, opts Options) (*Stats, error) {
	stats := &Stats{}
	var (
		header []string
		out    [][]string
		seen   map[string]bool
	)
	if opts.Dedup {
		seen = map[string]bool{}
	}
	for _, in := range inputs {
		t, err := readTable(in)
		if err != nil {
			return nil, err
		}
		if header == nil {
			header = t.header
			if opts.AddSource {
				header = append([]string{sourceField}, header...)
			}
		}
		for _, row := range t.rows {
			stats.RowsTotal++
			rec := make([]string, 0, len(header))
			if opts.AddSource {
				rec = append(rec, t.name)
			}
			for i := range t.header {
				rec = append(rec, t.cell(row, i))
			}
			if opts.Dedup {
				sig := rowSignature(header, rec)
				if seen[sig] {
					stats.DuplicatesRemoved++
					continue
				}
				seen[sig] = true
			}
			out = append(out, rec)
		}
		stats.FilesProcessed++
	}
	if err := writeCSV(w, header, out); err != nil {
		return nil, err
	}
	stats.RowsWritten = len(out)
	return stats, nil
}

func mergeColumns(inputs []string, w io.Writer, opts Options) (*Stats, error) {
	stats := &Stats{}
	var (
		tables   []*table
		rowCount = -1
	)
	for _, in := range inputs {
		t, err := readTable(in)
		if err != nil {
			return nil, err
		}
		if rowCount == -1 {
			rowCount = len(t.rows)
		} else if len(t.rows) != rowCount {
			return nil, fmt.Errorf("row count mismatch: %s has %d rows, expected %d",
				in, len(t.rows), rowCount)
		}
		tables = append(tables, t)
		stats.FilesProcessed++
	}
	if rowCount == -1 {
		rowCount = 0
	}

	prefixed := len(tables) > 1
	var header []string
	for _, t := range tables {
		for _, col := range t.header {
			header = append(header, columnName(t.name, col, prefixed))
		}
	}
	if opts.AddSource {
		header = append(header, mergeIndexField)
	}

	var (
		out  [][]string
		seen map[string]bool
	)
	if opts.Dedup {
		seen = map[string]bool{}
	}
	for i := 0; i < rowCount; i++ {
		rec := make([]string, 0, len(header))
		for _, t := range tables {
			for col := range t.header {
				rec = append(rec, t.cell(t.rows[i], col))
			}
		}
		if opts.AddSource {
			rec = append(rec, strconv.Itoa(i+1))
		}
		if opts.Dedup {
			sig := rowSignature(header, rec)
			if seen[sig] {
				stats.DuplicatesRemoved++
				continue
			}
			seen[sig] = true
		}
		out = append(out, rec)
		stats.RowsTotal++
	}
	if err := writeCSV(w, header, out); err != nil {
		return nil, err
	}
	stats.RowsWritten = len(out)
	return stats, nil
}

func columnName(file, col string, prefixed bool) string {
	if !prefixed {
		return col
	}
	stem := strings.TrimSuffix(file, filepath.Ext(file))
	return stem + "." + col
}

// rowSignature is a key-order-independent identity for deduplication.
func rowSignature(header, rec []string) string {
	pairs := make([]string, len(header))
	for i := range header {
		v := ""
		if i < len(rec) {
			v = rec[i]
		}
		pairs[i] = header[i] + "\x00" + v
	}
	sort.Strings(pairs)
	return strings.Join(pairs, "\x01")
}

func writeCSV(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if header == nil {
		header = []string{}
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
