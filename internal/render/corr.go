package render

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/lwalden/chartview-backend/internal/dataset"
)

// correlationMatrix computes pairwise Pearson correlations across the
// given numeric columns, using pairwise-complete observations: for each
// column pair only rows with values in both columns contribute. Pairs
// with fewer than two complete observations (or zero variance) are NaN.
// The diagonal is 1 by definition.
func correlationMatrix(ds *dataset.Dataset, cols []string) [][]float64 {
	n := len(cols)
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		m[i][i] = 1
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r := pairwiseCorrelation(ds, cols[i], cols[j])
			m[i][j], m[j][i] = r, r
		}
	}
	return m
}

func pairwiseCorrelation(ds *dataset.Dataset, a, b string) float64 {
	xs := make([]float64, 0, ds.Len())
	ys := make([]float64, 0, ds.Len())

	for i := 0; i < ds.Len(); i++ {
		x, ok := ds.Float(i, a)
		if !ok {
			continue
		}
		y, ok := ds.Float(i, b)
		if !ok {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}

	if len(xs) < 2 {
		return math.NaN()
	}
	return stat.Correlation(xs, ys, nil)
}
