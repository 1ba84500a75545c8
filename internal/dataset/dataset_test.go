package dataset

import (
	"errors"
	"strings"
	"testing"

	"github.com/lwalden/chartview-backend/internal/errs"
)

const employeesCSV = `Department,Salary,Age
Engineering,95000,34
Sales,61000,41
Engineering,88000,29
Marketing,57000,38
Sales,64000,45
`

func TestInferClassifiesColumns(t *testing.T) {
	sum, err := Infer([]byte(employeesCSV))
	if err != nil {
		t.Fatalf("Infer error: %v", err)
	}

	if got := sum.NumericColumns; len(got) != 2 || got[0] != "Salary" || got[1] != "Age" {
		t.Fatalf("numeric columns mismatch: %v", got)
	}
	if got := sum.CategoricalColumns; len(got) != 1 || got[0] != "Department" {
		t.Fatalf("categorical columns mismatch: %v", got)
	}
	if sum.RowCount != 5 {
		t.Fatalf("row count mismatch: %d", sum.RowCount)
	}
	if sum.ColumnCount != 3 {
		t.Fatalf("column count mismatch: %d", sum.ColumnCount)
	}
}

func TestInferPartitionsEveryColumn(t *testing.T) {
	csv := "a,b,c,d\n1,x,,2.5\n2,y,,-1\n3,,z,0\n"
	sum, err := Infer([]byte(csv))
	if err != nil {
		t.Fatalf("Infer error: %v", err)
	}

	classified := map[string]int{}
	for _, c := range sum.NumericColumns {
		classified[c]++
	}
	for _, c := range sum.CategoricalColumns {
		classified[c]++
	}
	for _, c := range sum.Columns {
		if classified[c] != 1 {
			t.Fatalf("column %q classified %d times", c, classified[c])
		}
	}
	if len(classified) != len(sum.Columns) {
		t.Fatalf("classification covers %d columns, want %d", len(classified), len(sum.Columns))
	}
}

func TestInferPreviewLength(t *testing.T) {
	var b strings.Builder
	b.WriteString("n\n")
	for i := 0; i < 25; i++ {
		b.WriteString("1\n")
	}

	sum, err := Infer([]byte(b.String()))
	if err != nil {
		t.Fatalf("Infer error: %v", err)
	}
	if len(sum.Preview) != 10 {
		t.Fatalf("preview length mismatch: %d", len(sum.Preview))
	}

	sum, err = Infer([]byte("n\n1\n2\n"))
	if err != nil {
		t.Fatalf("Infer error: %v", err)
	}
	if len(sum.Preview) != 2 {
		t.Fatalf("short preview length mismatch: %d", len(sum.Preview))
	}
}

func TestInferPreviewValues(t *testing.T) {
	sum, err := Infer([]byte("name,score\nalice,12.5\nbob,\n"))
	if err != nil {
		t.Fatalf("Infer error: %v", err)
	}

	if v, ok := sum.Preview[0]["score"].(float64); !ok || v != 12.5 {
		t.Fatalf("expected numeric preview value, got %#v", sum.Preview[0]["score"])
	}
	if v, ok := sum.Preview[0]["name"].(string); !ok || v != "alice" {
		t.Fatalf("expected string preview value, got %#v", sum.Preview[0]["name"])
	}
	if sum.Preview[1]["score"] != nil {
		t.Fatalf("expected nil for missing value, got %#v", sum.Preview[1]["score"])
	}
}

func TestInferAllMissingColumnIsCategorical(t *testing.T) {
	sum, err := Infer([]byte("a,b\n1,\n2,\n"))
	if err != nil {
		t.Fatalf("Infer error: %v", err)
	}
	if len(sum.CategoricalColumns) != 1 || sum.CategoricalColumns[0] != "b" {
		t.Fatalf("expected b categorical, got %v", sum.CategoricalColumns)
	}
}

func TestParseMalformedCSV(t *testing.T) {
	_, err := Parse([]byte("a,b\n1,2,3\n"))
	if err == nil {
		t.Fatal("expected error for ragged row")
	}
	var parseErr *errs.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %T", err)
	}
}

func TestParseInvalidUTF8(t *testing.T) {
	_, err := Parse([]byte{0xff, 0xfe, 0x41})
	if err == nil {
		t.Fatal("expected error for invalid UTF-8")
	}
	var parseErr *errs.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %T", err)
	}
}

func TestParseEmptyInput(t *testing.T) {
	_, err := Parse(nil)
	var parseErr *errs.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestDatasetAccessors(t *testing.T) {
	ds, err := Parse([]byte(employeesCSV))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if !ds.Has("Salary") || ds.Has("Bonus") {
		t.Fatal("Has mismatch")
	}
	if !ds.IsNumeric("Age") || ds.IsNumeric("Department") {
		t.Fatal("IsNumeric mismatch")
	}

	salaries := ds.Floats("Salary")
	if len(salaries) != 5 || salaries[0] != 95000 {
		t.Fatalf("Floats mismatch: %v", salaries)
	}

	if label, ok := ds.Label(0, "Salary"); !ok || label != "95000" {
		t.Fatalf("numeric label mismatch: %q %v", label, ok)
	}
	if label, ok := ds.Label(1, "Department"); !ok || label != "Sales" {
		t.Fatalf("string label mismatch: %q %v", label, ok)
	}
}
