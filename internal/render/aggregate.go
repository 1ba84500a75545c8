package render

import (
	"sort"

	"github.com/lwalden/chartview-backend/internal/dataset"
)

type group struct {
	label string
	value float64
}

// countValues returns the frequency of each distinct value of a column,
// most frequent first, ties in first-seen order. Missing cells are
// skipped.
func countValues(ds *dataset.Dataset, col string) []group {
	counts := make(map[string]float64)
	var order []string

	for i := 0; i < ds.Len(); i++ {
		label, ok := ds.Label(i, col)
		if !ok {
			continue
		}
		if _, seen := counts[label]; !seen {
			order = append(order, label)
		}
		counts[label]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	out := make([]group, 0, len(order))
	for _, label := range order {
		out = append(out, group{label: label, value: counts[label]})
	}
	return out
}

// sumByGroup sums y over the distinct values of x, groups ordered by
// label. Rows where either cell is missing are skipped.
func sumByGroup(ds *dataset.Dataset, x, y string) []group {
	sums := make(map[string]float64)
	var labels []string

	for i := 0; i < ds.Len(); i++ {
		label, ok := ds.Label(i, x)
		if !ok {
			continue
		}
		v, ok := ds.Float(i, y)
		if !ok {
			continue
		}
		if _, seen := sums[label]; !seen {
			labels = append(labels, label)
		}
		sums[label] += v
	}

	sort.Strings(labels)

	out := make([]group, 0, len(labels))
	for _, label := range labels {
		out = append(out, group{label: label, value: sums[label]})
	}
	return out
}
