package render

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart"

	"github.com/lwalden/chartview-backend/internal/dataset"
	"github.com/lwalden/chartview-backend/internal/errs"
	"github.com/lwalden/chartview-backend/internal/models"
)

type scatterRenderer struct{}

// render draws an x-vs-y point cloud. Both columns are required.
func (scatterRenderer) render(ds *dataset.Dataset, cfg models.ChartConfig, out io.Writer) error {
	if cfg.YColumn == "" {
		return errs.NewValidationError("Scatter plot requires both X and Y columns")
	}
	if err := requireColumn(ds, cfg.XColumn); err != nil {
		return err
	}
	if err := requireColumn(ds, cfg.YColumn); err != nil {
		return err
	}
	if err := requireNumeric(ds, cfg.XColumn); err != nil {
		return err
	}
	if err := requireNumeric(ds, cfg.YColumn); err != nil {
		return err
	}
	pal, err := lookupPalette(cfg.ColorScheme)
	if err != nil {
		return err
	}

	var xs, ys []float64
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
	if len(xs) == 0 {
		return errs.NewValidationError(fmt.Sprintf("columns %q and %q have no complete pairs to plot", cfg.XColumn, cfg.YColumn))
	}

	graph := &chart.Chart{
		Title:      cfg.Title,
		TitleStyle: chart.StyleShow(),
		Width:      cfg.Width,
		Height:     cfg.Height,
		XAxis: chart.XAxis{
			Name:      cfg.XColumn,
			NameStyle: chart.StyleShow(),
			Style:     chart.StyleShow(),
		},
		YAxis: chart.YAxis{
			Name:      cfg.YColumn,
			NameStyle: chart.StyleShow(),
			Style:     chart.StyleShow(),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Style: chart.Style{
					Show:        true,
					StrokeWidth: chart.Disabled,
					DotColor:    pal.at(0.5).WithAlpha(180),
					DotWidth:    5,
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
