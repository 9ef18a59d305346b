package validate

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dx-tools/go-dx/debug"
	"github.com/dx-tools/go-dx/decode"
	"github.com/dx-tools/go-dx/format"
	"github.com/dx-tools/go-dx/ir"
)

// RowErrors collects the failures of one record, numbered from 1.
type RowErrors struct {
	Row    int
	Errors []string
}

// Duplicate records a repeated value under a unique-constrained field.
type Duplicate struct {
	Row   int
	Field string
	Value string
}

type Report struct {
	Valid       bool
	TotalRows   int
	ValidRows   int
	InvalidRows int
	Errors      []RowErrors
	Duplicates  []Duplicate
}

// record is one row's field values as strings; missing fields are absent.
type record map[string]string

// CSV validates the rows of a CSV file (first line is the header).
func CSV(path string, rules []*Rule) (*Report, error) {
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
	var rows []record
	if len(records) > 0 {
		header := records[0]
		for _, rec := range records[1:] {
			row := record{}
			for i, col := range header {
				if i < len(rec) {
					row[col] = rec[i]
				}
			}
			rows = append(rows, row)
		}
	}
	return check(rows, rules)
}

// JSON validates an array of objects.
func JSON(path string, rules []*Rule) (*Report, error) {
	node, err := decode.File(path, format.JSONFormat)
	if err != nil {
		return nil, err
	}
	if node == nil || node.Type != ir.ArrayType {
		return nil, fmt.Errorf("JSON must be an array of objects")
	}
	var rows []record
	for _, elt := range node.Values {
		row := record{}
		if elt.Type == ir.ObjectType {
			for i := range elt.Fields {
				if v, ok := scalarString(elt.Values[i]); ok {
					row[elt.Fields[i].String] = v
				}
			}
		}
		rows = append(rows, row)
	}
	return check(rows, rules)
}

// scalarString renders a leaf value the way rules see it.  Containers and
// nulls read as absent.
func scalarString(y *ir.Node) (string, bool) {
	switch y.Type {
	case ir.StringType:
		return y.String, true
	case ir.NumberType:
		return y.NumberString(), true
	case ir.BoolType:
		return strconv.FormatBool(y.Bool), true
	default:
		return "", false
	}
}

func check(rows []record, rules []*Rule) (*Report, error) {
	report := &Report{Valid: true}
	seen := map[string]map[string]bool{}

	for i, row := range rows {
		rowNum := i + 1
		report.TotalRows++
		var rowErrs []string

		for _, rule := range rules {
			value, present := row[rule.Field]
			empty := !present || strings.TrimSpace(value) == ""

			if rule.Required && empty {
				rowErrs = append(rowErrs, fmt.Sprintf("Field '%s' is required", rule.Field))
				continue
			}
			if empty {
				continue
			}

			if rule.Type != "" && !typeValidators[rule.Type](value) {
				rowErrs = append(rowErrs, fmt.Sprintf("Field '%s' must be a valid %s", rule.Field, rule.Type))
			}

			if rule.Pattern != nil && !rule.Pattern.MatchString(value) {
				rowErrs = append(rowErrs, fmt.Sprintf("Field '%s' does not match pattern", rule.Field))
			}

			if rule.Type == "int" || rule.Type == "float" {
				if num, err := strconv.ParseFloat(value, 64); err == nil {
					if rule.Min != nil && num < *rule.Min {
						rowErrs = append(rowErrs, fmt.Sprintf("Field '%s' must be >= %v", rule.Field, *rule.Min))
					}
					if rule.Max != nil && num > *rule.Max {
						rowErrs = append(rowErrs, fmt.Sprintf("Field '%s' must be <= %v", rule.Field, *rule.Max))
					}
				}
			}

			if rule.Unique {
				values := seen[rule.Field]
				if values == nil {
					values = map[string]bool{}
					seen[rule.Field] = values
				}
				if values[value] {
					report.Duplicates = append(report.Duplicates, Duplicate{
						Row:   rowNum,
						Field: rule.Field,
						Value: value,
					})
				}
				values[value] = true
			}

			if rule.prog != nil {
				ok, err := rule.runExpr(value)
				if err != nil {
					return nil, fmt.Errorf("rule %s: %w", rule.Field, err)
				}
				if !ok {
					msg := rule.Message
					if msg == "" {
						msg = fmt.Sprintf("Field '%s' failed custom validation", rule.Field)
					}
					rowErrs = append(rowErrs, msg)
				}
			}
		}

		if len(rowErrs) == 0 {
			report.ValidRows++
		} else {
			report.InvalidRows++
			report.Errors = append(report.Errors, RowErrors{Row: rowNum, Errors: rowErrs})
		}
	}

	report.Valid = report.InvalidRows == 0 && len(report.Duplicates) == 0
	if debug.Validate() {
		debug.Logf("validate: %d rows, %d invalid, %d duplicates\n",
			report.TotalRows, report.InvalidRows, len(report.Duplicates))
	}
	return report, nil
}

// Node renders the report as an ordered tree for serialization.
func (r *Report) Node(file string) *ir.Node {
	res := ir.Object()
	res.Set("file", ir.FromString(file))
	res.Set("total_rows", ir.FromInt(int64(r.TotalRows)))
	res.Set("valid_rows", ir.FromInt(int64(r.ValidRows)))
	res.Set("invalid_rows", ir.FromInt(int64(r.InvalidRows)))

	dups := ir.Array()
	for _, dup := range r.Duplicates {
		y := ir.Object()
		y.Set("row", ir.FromInt(int64(dup.Row)))
		y.Set("field", ir.FromString(dup.Field))
		y.Set("value", ir.FromString(dup.Value))
		dups.Append(y)
	}
	res.Set("duplicates", dups)

	errs := ir.Array()
	for _, re := range r.Errors {
		y := ir.Object()
		y.Set("row", ir.FromInt(int64(re.Row)))
		msgs := ir.Array()
		for _, msg := range re.Errors {
			msgs.Append(ir.FromString(msg))
		}
		y.Set("errors", msgs)
		errs.Append(y)
	}
	res.Set("errors", errs)
	return res
}
