package render

import (
	"testing"
)

func TestCountValuesPreservesDistinctValues(t *testing.T) {
	ds := mustParse(t, employeesCSV)
	groups := countValues(ds, "Department")

	want := map[string]float64{"Engineering": 2, "Sales": 2, "Marketing": 1}
	if len(groups) != len(want) {
		t.Fatalf("group count mismatch: got %d, want %d", len(groups), len(want))
	}

	var total float64
	for _, g := range groups {
		if want[g.label] != g.value {
			t.Fatalf("count for %q is %v, want %v", g.label, g.value, want[g.label])
		}
		total += g.value
	}
	if total != float64(ds.Len()) {
		t.Fatalf("counts sum to %v, want %d", total, ds.Len())
	}
}

func TestCountValuesOrder(t *testing.T) {
	ds := mustParse(t, "c\nb\na\na\nb\nz\na\n")
	groups := countValues(ds, "c")

	// a has 3, b has 2, z has 1
	if groups[0].label != "a" || groups[1].label != "b" || groups[2].label != "z" {
		t.Fatalf("order mismatch: %+v", groups)
	}
}

func TestCountValuesTiesKeepFirstSeen(t *testing.T) {
	ds := mustParse(t, "c\ny\nx\ny\nx\n")
	groups := countValues(ds, "c")
	if groups[0].label != "y" {
		t.Fatalf("expected first-seen value first on tie, got %+v", groups)
	}
}

func TestCountValuesSkipsMissing(t *testing.T) {
	ds := mustParse(t, "c\nx\n\nx\n")
	groups := countValues(ds, "c")
	if len(groups) != 1 || groups[0].value != 2 {
		t.Fatalf("missing values must be skipped: %+v", groups)
	}
}

func TestSumByGroupMatchesRecomputation(t *testing.T) {
	ds := mustParse(t, employeesCSV)
	groups := sumByGroup(ds, "Department", "Salary")

	want := map[string]float64{
		"Engineering": 95000 + 88000,
		"Marketing":   57000,
		"Sales":       61000 + 64000,
	}
	if len(groups) != len(want) {
		t.Fatalf("group count mismatch: got %d", len(groups))
	}
	for _, g := range groups {
		if want[g.label] != g.value {
			t.Fatalf("sum for %q is %v, want %v", g.label, g.value, want[g.label])
		}
	}

	// ordered by label
	for i := 1; i < len(groups); i++ {
		if groups[i-1].label > groups[i].label {
			t.Fatalf("groups not sorted by label: %+v", groups)
		}
	}
}

func TestSumByGroupSkipsIncompleteRows(t *testing.T) {
	ds := mustParse(t, "k,v\na,1\na,\nb,2\n,3\n")
	groups := sumByGroup(ds, "k", "v")
	want := map[string]float64{"a": 1, "b": 2}
	if len(groups) != 2 {
		t.Fatalf("group count mismatch: %+v", groups)
	}
	for _, g := range groups {
		if want[g.label] != g.value {
			t.Fatalf("sum for %q is %v, want %v", g.label, g.value, want[g.label])
		}
	}
}
