package render

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart"

	"github.com/lwalden/chartview-backend/internal/dataset"
	"github.com/lwalden/chartview-backend/internal/errs"
	"github.com/lwalden/chartview-backend/internal/models"
)

type barRenderer struct{}

// render draws x-vs-y bars when a y column is configured, otherwise a
// frequency count of the distinct x values.
func (barRenderer) render(ds *dataset.Dataset, cfg models.ChartConfig, out io.Writer) error {
	if err := requireColumn(ds, cfg.XColumn); err != nil {
		return err
	}
	pal, err := lookupPalette(cfg.ColorScheme)
	if err != nil {
		return err
	}
	fill := pal.at(0.5)

	var bars []chart.Value
	yLabel := "Count"
	if cfg.YColumn != "" {
		if err := requireColumn(ds, cfg.YColumn); err != nil {
			return err
		}
		if err := requireNumeric(ds, cfg.YColumn); err != nil {
			return err
		}
		for i := 0; i < ds.Len(); i++ {
			label, ok := ds.Label(i, cfg.XColumn)
			if !ok {
				continue
			}
			v, ok := ds.Float(i, cfg.YColumn)
			if !ok {
				continue
			}
			bars = append(bars, chart.Value{
				Label: label,
				Value: v,
				Style: chart.Style{FillColor: fill, StrokeColor: fill},
			})
		}
		yLabel = cfg.YColumn
	} else {
		for _, g := range countValues(ds, cfg.XColumn) {
			bars = append(bars, chart.Value{
				Label: g.label,
				Value: g.value,
				Style: chart.Style{FillColor: fill, StrokeColor: fill},
			})
		}
	}
	if len(bars) == 0 {
		return errs.NewValidationError(fmt.Sprintf("column %q has no values to plot", cfg.XColumn))
	}

	bc := chart.BarChart{
		Title:      cfg.Title,
		TitleStyle: chart.StyleShow(),
		Width:      cfg.Width,
		Height:     cfg.Height,
		BarWidth:   barWidth(cfg.Width, len(bars)),
		XAxis: chart.Style{
			Show:                true,
			TextRotationDegrees: 45.0,
		},
		YAxis: chart.YAxis{
			Name:      yLabel,
			NameStyle: chart.StyleShow(),
			Style:     chart.StyleShow(),
		},
		Bars: bars,
	}
	return bc.Render(chart.PNG, out)
}

func barWidth(chartWidth, bars int) int {
	w := (chartWidth - 120) / bars
	if w < 4 {
		return 4
	}
	if w > 60 {
		return 60
	}
	return w
}
