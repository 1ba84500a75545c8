package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/wcharczuk/go-chart"
	"gonum.org/v1/gonum/floats"

	"github.com/lwalden/chartview-backend/internal/dataset"
	"github.com/lwalden/chartview-backend/internal/errs"
	"github.com/lwalden/chartview-backend/internal/models"
)

const histogramBins = 30

type histogramRenderer struct{}

// render bins the x column into 30 fixed-width bins spanning its observed
// min/max. Missing values are dropped before binning.
func (histogramRenderer) render(ds *dataset.Dataset, cfg models.ChartConfig, out io.Writer) error {
	if err := requireColumn(ds, cfg.XColumn); err != nil {
		return err
	}
	if err := requireNumeric(ds, cfg.XColumn); err != nil {
		return err
	}
	pal, err := lookupPalette(cfg.ColorScheme)
	if err != nil {
		return err
	}

	values := ds.Floats(cfg.XColumn)
	if len(values) == 0 {
		return errs.NewValidationError(fmt.Sprintf("column %q has no values to bin", cfg.XColumn))
	}

	lo := floats.Min(values)
	hi := floats.Max(values)
	binWidth := (hi - lo) / histogramBins

	counts := make([]float64, histogramBins)
	for _, v := range values {
		idx := 0
		if binWidth > 0 {
			idx = int((v - lo) / binWidth)
			// the max lands exactly on the upper edge of the last bin
			if idx >= histogramBins {
				idx = histogramBins - 1
			}
		}
		counts[idx]++
	}

	fill := pal.at(0.5).WithAlpha(180)
	bars := make([]chart.Value, histogramBins)
	for i := range bars {
		bars[i] = chart.Value{
			Label: strconv.FormatFloat(lo+float64(i)*binWidth, 'g', 3, 64),
			Value: counts[i],
			Style: chart.Style{FillColor: fill, StrokeColor: fill},
		}
	}

	bc := chart.BarChart{
		Title:      cfg.Title,
		TitleStyle: chart.StyleShow(),
		Width:      cfg.Width,
		Height:     cfg.Height,
		BarWidth:   barWidth(cfg.Width, histogramBins),
		BarSpacing: 1,
		XAxis: chart.Style{
			Show:                true,
			TextRotationDegrees: 45.0,
		},
		YAxis: chart.YAxis{
			Name:      "Frequency",
			NameStyle: chart.StyleShow(),
			Style:     chart.StyleShow(),
		},
		Bars: bars,
	}
	return bc.Render(chart.PNG, out)
}
