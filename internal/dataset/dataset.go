package dataset

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/lwalden/chartview-backend/internal/errs"
)

// Dataset is the structured in-memory form of an uploaded CSV. Row values
// are float64 for numeric columns, string for categorical ones, and nil
// where the source cell was empty.
type Dataset struct {
	Columns            []string
	NumericColumns     []string
	CategoricalColumns []string
	Rows               []map[string]any

	numeric map[string]bool
}

// Parse decodes raw CSV bytes into a Dataset. The first record is the
// header; every data record must have the same field count. A column is
// numeric when every non-empty value parses as a number; empty cells do
// not disqualify a column, but a column with no values at all is
// categorical.
func Parse(raw []byte) (*Dataset, error) {
	if !utf8.Valid(raw) {
		return nil, errs.NewParseError("CSV is not valid UTF-8 text", nil)
	}

	reader := csv.NewReader(bytes.NewReader(raw))
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errs.NewParseError("malformed CSV", err)
	}
	if len(records) == 0 {
		return nil, errs.NewParseError("CSV has no header row", nil)
	}

	header := records[0]
	data := records[1:]

	ds := &Dataset{
		Columns: header,
		numeric: make(map[string]bool, len(header)),
	}

	for ci, name := range header {
		if columnIsNumeric(data, ci) {
			ds.numeric[name] = true
			ds.NumericColumns = append(ds.NumericColumns, name)
		} else {
			ds.CategoricalColumns = append(ds.CategoricalColumns, name)
		}
	}

	ds.Rows = make([]map[string]any, 0, len(data))
	for _, rec := range data {
		row := make(map[string]any, len(header))
		for ci, name := range header {
			row[name] = parseValue(rec[ci], ds.numeric[name])
		}
		ds.Rows = append(ds.Rows, row)
	}

	return ds, nil
}

func columnIsNumeric(data [][]string, ci int) bool {
	seen := false
	for _, rec := range data {
		v := strings.TrimSpace(rec[ci])
		if v == "" {
			continue
		}
		seen = true
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return false
		}
	}
	return seen
}

func parseValue(cell string, numeric bool) any {
	v := strings.TrimSpace(cell)
	if v == "" {
		return nil
	}
	if numeric {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil
		}
		return f
	}
	return cell
}

func (d *Dataset) Len() int { return len(d.Rows) }

func (d *Dataset) Has(name string) bool {
	for _, c := range d.Columns {
		if c == name {
			return true
		}
	}
	return false
}

func (d *Dataset) IsNumeric(name string) bool { return d.numeric[name] }

// Float returns the numeric value of a cell. ok is false for missing
// cells and for categorical columns.
func (d *Dataset) Float(i int, name string) (float64, bool) {
	f, ok := d.Rows[i][name].(float64)
	return f, ok
}

// Floats returns every non-missing value of a numeric column in row order.
func (d *Dataset) Floats(name string) []float64 {
	out := make([]float64, 0, len(d.Rows))
	for i := range d.Rows {
		if f, ok := d.Float(i, name); ok {
			out = append(out, f)
		}
	}
	return out
}

// Label returns the display form of a cell: numbers are formatted
// compactly, strings pass through. ok is false for missing cells.
func (d *Dataset) Label(i int, name string) (string, bool) {
	switch v := d.Rows[i][name].(type) {
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	case string:
		return v, true
	default:
		return "", false
	}
}
