package render

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart"

	"github.com/lwalden/chartview-backend/internal/dataset"
	"github.com/lwalden/chartview-backend/internal/errs"
	"github.com/lwalden/chartview-backend/internal/models"
)

type lineRenderer struct{}

// render draws x-vs-y as an ordered line with point markers. Without a y
// column it plots the row index against the x values.
func (lineRenderer) render(ds *dataset.Dataset, cfg models.ChartConfig, out io.Writer) error {
	if err := requireColumn(ds, cfg.XColumn); err != nil {
		return err
	}
	pal, err := lookupPalette(cfg.ColorScheme)
	if err != nil {
		return err
	}

	var xs, ys []float64
	var xName, yName string
	if cfg.YColumn != "" {
		if err := requireColumn(ds, cfg.YColumn); err != nil {
			return err
		}
		if err := requireNumeric(ds, cfg.XColumn); err != nil {
			return err
		}
		if err := requireNumeric(ds, cfg.YColumn); err != nil {
			return err
		}
		for i := 0; i < ds.Len(); i++ {
			x, ok := ds.Float(i, cfg.XColumn)
			if !ok {
				continue
			}
			y, ok := ds.Float(i, cfg.YColumn)
			if !ok {
				continue
			}
			xs = append(xs, x)
			ys = append(ys, y)
		}
		xName, yName = cfg.XColumn, cfg.YColumn
	} else {
		if err := requireNumeric(ds, cfg.XColumn); err != nil {
			return err
		}
		for i := 0; i < ds.Len(); i++ {
			v, ok := ds.Float(i, cfg.XColumn)
			if !ok {
				continue
			}
			xs = append(xs, float64(i))
			ys = append(ys, v)
		}
		xName, yName = "Index", cfg.XColumn
	}
	if len(xs) == 0 {
		return errs.NewValidationError(fmt.Sprintf("column %q has no values to plot", cfg.XColumn))
	}

	c := pal.at(0.5)
	graph := &chart.Chart{
		Title:      cfg.Title,
		TitleStyle: chart.StyleShow(),
		Width:      cfg.Width,
		Height:     cfg.Height,
		XAxis: chart.XAxis{
			Name:      xName,
			NameStyle: chart.StyleShow(),
			Style:     chart.StyleShow(),
		},
		YAxis: chart.YAxis{
			Name:      yName,
			NameStyle: chart.StyleShow(),
			Style:     chart.StyleShow(),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Style: chart.Style{
					Show:        true,
					StrokeColor: c,
					StrokeWidth: 2,
					DotColor:    c,
					DotWidth:    4,
				},
				XValues: xs,
				YValues: ys,
			},
		},
	}
	if r := degenerateRange(xs); r != nil {
		graph.XAxis.Range = r
	}
	if r := degenerateRange(ys); r != nil {
		graph.YAxis.Range = r
	}
	return graph.Render(chart.PNG, out)
}
