package render

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart"

	"github.com/lwalden/chartview-backend/internal/dataset"
	"github.com/lwalden/chartview-backend/internal/errs"
	"github.com/lwalden/chartview-backend/internal/models"
)

type pieRenderer struct{}

// render draws slices sized by the sum of y grouped by distinct x values,
// or by plain frequency of x when no y column is configured.
func (pieRenderer) render(ds *dataset.Dataset, cfg models.ChartConfig, out io.Writer) error {
	if err := requireColumn(ds, cfg.XColumn); err != nil {
		return err
	}
	pal, err := lookupPalette(cfg.ColorScheme)
	if err != nil {
		return err
	}

	var groups []group
	if cfg.YColumn != "" {
		if err := requireColumn(ds, cfg.YColumn); err != nil {
			return err
		}
		if err := requireNumeric(ds, cfg.YColumn); err != nil {
			return err
		}
		groups = sumByGroup(ds, cfg.XColumn, cfg.YColumn)
	} else {
		groups = countValues(ds, cfg.XColumn)
	}
	if len(groups) == 0 {
		return errs.NewValidationError(fmt.Sprintf("column %q has no values to plot", cfg.XColumn))
	}

	colors := pal.sequence(len(groups))
	values := make([]chart.Value, len(groups))
	for i, g := range groups {
		values[i] = chart.Value{
			Label: g.label,
			Value: g.value,
			Style: chart.Style{FillColor: colors[i]},
		}
	}

	pc := chart.PieChart{
		Title:      cfg.Title,
		TitleStyle: chart.StyleShow(),
		Width:      cfg.Width,
		Height:     cfg.Height,
		Values:     values,
	}
	return pc.Render(chart.PNG, out)
}
