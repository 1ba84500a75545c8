package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart"
	"gonum.org/v1/gonum/floats"

	"github.com/lwalden/chartview-backend/internal/dataset"
	"github.com/lwalden/chartview-backend/internal/errs"
	"github.com/lwalden/chartview-backend/internal/models"
)

// renderer is the common contract every chart type implements. Each
// render call draws into its own buffer; no state survives the call.
type renderer interface {
	render(ds *dataset.Dataset, cfg models.ChartConfig, out io.Writer) error
}

var renderers = map[string]renderer{
	models.ChartTypeBar:       barRenderer{},
	models.ChartTypeLine:      lineRenderer{},
	models.ChartTypeScatter:   scatterRenderer{},
	models.ChartTypePie:       pieRenderer{},
	models.ChartTypeHistogram: histogramRenderer{},
	models.ChartTypeHeatmap:   heatmapRenderer{},
}

// Render dispatches to the renderer for cfg.ChartType and returns the
// encoded PNG. User-input problems (missing columns, unknown scheme,
// unsupported type) come back as ValidationError; anything unexpected
// from the drawing layer is wrapped as RenderError.
func Render(ds *dataset.Dataset, cfg models.ChartConfig) ([]byte, error) {
	r, ok := renderers[cfg.ChartType]
	if !ok {
		return nil, errs.NewValidationError(fmt.Sprintf("unsupported chart type %q", cfg.ChartType))
	}

	var buf bytes.Buffer
	if err := r.render(ds, cfg, &buf); err != nil {
		switch err.(type) {
		case *errs.ValidationError, *errs.RenderError:
			return nil, err
		default:
			return nil, errs.NewRenderError(fmt.Sprintf("rendering %s chart failed", cfg.ChartType), err)
		}
	}
	return buf.Bytes(), nil
}

func requireColumn(ds *dataset.Dataset, name string) error {
	if name == "" {
		return errs.NewValidationError("x_column is required")
	}
	if !ds.Has(name) {
		return errs.NewValidationError(fmt.Sprintf("column %q not found in data", name))
	}
	return nil
}

func requireNumeric(ds *dataset.Dataset, name string) error {
	if !ds.IsNumeric(name) {
		return errs.NewValidationError(fmt.Sprintf("column %q is not numeric", name))
	}
	return nil
}

// degenerateRange pads an axis whose values span zero width (a single
// point, or a constant series). go-chart cannot derive ticks from a
// zero-width range; any real span keeps the library's own padding.
func degenerateRange(vs []float64) *chart.ContinuousRange {
	lo := floats.Min(vs)
	hi := floats.Max(vs)
	if lo != hi {
		return nil
	}
	return &chart.ContinuousRange{Min: lo - 1, Max: hi + 1}
}
