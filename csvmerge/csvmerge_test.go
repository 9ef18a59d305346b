package csvmerge

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestMergeRows(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.csv": "name,age\nann,30\nbob,40\n",
		"b.csv": "name,age\ncid,50\n",
	})
	buf := bytes.NewBuffer(nil)
	stats, err := Merge([]string{
		filepath.Join(dir, "a.csv"),
		filepath.Join(dir, "b.csv"),
	}, buf, Options{Mode: Rows})
	if err != nil {
		t.Fatal(err)
	}
	want := "name,age\nann,30\nbob,40\ncid,50\n"
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Errorf("merged output (-want +got):\n%s", d)
	}
	if stats.FilesProcessed != 2 || stats.RowsTotal != 3 || stats.RowsWritten != 3 {
		t.Errorf("stats: %+v", stats)
	}
}

func TestMergeRowsSourceAndDedup(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.csv": "name\nann\nbob\n",
		"b.csv": "name\nbob\ncid\n",
	})
	inputs := []string{filepath.Join(dir, "a.csv"), filepath.Join(dir, "b.csv")}

	buf := bytes.NewBuffer(nil)
	stats, err := Merge(inputs, buf, Options{Mode: Rows, Dedup: true})
	if err != nil {
		t.Fatal(err)
	}
	want := "name\nann\nbob\ncid\n"
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Errorf("dedup output (-want +got):\n%s", d)
	}
	if stats.DuplicatesRemoved != 1 || stats.RowsWritten != 3 {
		t.Errorf("stats: %+v", stats)
	}

	buf.Reset()
	if _, err := Merge(inputs, buf, Options{Mode: Rows, AddSource: true}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "_source_file,name" {
		t.Errorf("header: %q", lines[0])
	}
	if lines[1] != "a.csv,ann" || lines[3] != "b.csv,bob" {
		t.Errorf("rows: %q", lines)
	}
}

func TestMergeColumns(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"left.csv":  "id,name\n1,ann\n2,bob\n",
		"right.csv": "score\n9\n7\n",
	})
	inputs := []string{filepath.Join(dir, "left.csv"), filepath.Join(dir, "right.csv")}

	buf := bytes.NewBuffer(nil)
	stats, err := Merge(inputs, buf, Options{Mode: Columns, AddSource: true})
	if err != nil {
		t.Fatal(err)
	}
	want := "left.id,left.name,right.score,_merge_index\n1,ann,9,1\n2,bob,7,2\n"
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Errorf("columns output (-want +got):\n%s", d)
	}
	if stats.RowsWritten != 2 {
		t.Errorf("stats: %+v", stats)
	}
}

func TestMergeColumnsRowCountMismatch(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.csv": "x\n1\n2\n",
		"b.csv": "y\n1\n",
	})
	_, err := Merge([]string{
		filepath.Join(dir, "a.csv"),
		filepath.Join(dir, "b.csv"),
	}, bytes.NewBuffer(nil), Options{Mode: Columns})
	if err == nil || !strings.Contains(err.Error(), "row count mismatch") {
		t.Errorf("got %v, want row count mismatch", err)
	}
}

func TestMergeMissingFile(t *testing.T) {
	_, err := Merge([]string{"nope.csv"}, bytes.NewBuffer(nil), Options{})
	if err == nil || !strings.Contains(err.Error(), "file not found") {
		t.Errorf("got %v, want file not found", err)
	}
	if _, err := Merge(nil, bytes.NewBuffer(nil), Options{}); err == nil {
		t.Error("expected error for no inputs")
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode("rows"); err != nil || m != Rows {
		t.Errorf("rows: %v %v", m, err)
	}
	if m, err := ParseMode("columns"); err != nil || m != Columns {
		t.Errorf("columns: %v %v", m, err)
	}
	if _, err := ParseMode("diagonal"); err == nil {
		t.Error("expected error")
	}
}
