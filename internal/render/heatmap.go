package render

import (
	"fmt"
	"io"
	"math"

	"github.com/wcharczuk/go-chart"
	"github.com/wcharczuk/go-chart/drawing"

	"github.com/lwalden/chartview-backend/internal/dataset"
	"github.com/lwalden/chartview-backend/internal/errs"
	"github.com/lwalden/chartview-backend/internal/models"
)

// Text inside a cell flips to white once the correlation is strong enough
// that the cell color gets dark.
const heatmapTextThreshold = 0.5

var heatmapNaNColor = drawing.Color{R: 0xcc, G: 0xcc, B: 0xcc, A: 255}

type heatmapRenderer struct{}

// render draws the pairwise Pearson correlation matrix of all numeric
// columns as a color-mapped grid with each coefficient overlaid as text.
// The configured x/y columns are ignored. go-chart has no grid chart
// type, so this draws directly on its raster renderer.
func (heatmapRenderer) render(ds *dataset.Dataset, cfg models.ChartConfig, out io.Writer) error {
	cols := ds.NumericColumns
	if len(cols) < 2 {
		return errs.NewValidationError("Heatmap requires at least 2 numeric columns")
	}
	pal, err := lookupPalette(cfg.ColorScheme)
	if err != nil {
		return err
	}

	m := correlationMatrix(ds, cols)

	r, err := chart.PNG(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return err
	}

	r.SetFillColor(drawing.ColorWhite)
	fillRect(r, 0, 0, cfg.Width, cfg.Height)

	const (
		marginLeft   = 110
		marginTop    = 48
		marginRight  = 24
		marginBottom = 96
	)
	n := len(cols)
	cellW := (cfg.Width - marginLeft - marginRight) / n
	cellH := (cfg.Height - marginTop - marginBottom) / n

	r.SetFont(font)
	r.SetFontSize(14)
	r.SetFontColor(drawing.ColorBlack)
	tb := r.MeasureText(cfg.Title)
	r.Text(cfg.Title, (cfg.Width-tb.Width())/2, marginTop/2+tb.Height()/2)

	r.SetFontSize(9)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x0 := marginLeft + j*cellW
			y0 := marginTop + i*cellH
			v := m[i][j]

			r.SetFillColor(cellColor(pal, v))
			fillRect(r, x0, y0, cellW, cellH)

			label := fmt.Sprintf("%.2f", v)
			if math.Abs(v) > heatmapTextThreshold {
				r.SetFontColor(drawing.ColorWhite)
			} else {
				r.SetFontColor(drawing.ColorBlack)
			}
			lb := r.MeasureText(label)
			r.Text(label, x0+(cellW-lb.Width())/2, y0+(cellH+lb.Height())/2)
		}
	}

	r.SetFontColor(drawing.ColorBlack)
	for i, name := range cols {
		lb := r.MeasureText(name)
		r.Text(name, marginLeft-lb.Width()-8, marginTop+i*cellH+(cellH+lb.Height())/2)
	}

	r.SetTextRotation(45 * math.Pi / 180)
	for j, name := range cols {
		r.Text(name, marginLeft+j*cellW+cellW/2, cfg.Height-marginBottom+16)
	}
	r.ClearTextRotation()

	return r.Save(out)
}

func cellColor(pal palette, corr float64) drawing.Color {
	if math.IsNaN(corr) {
		return heatmapNaNColor
	}
	// map [-1,1] onto the palette range
	return pal.at((corr + 1) / 2)
}

func fillRect(r chart.Renderer, x, y, w, h int) {
	r.MoveTo(x, y)
	r.LineTo(x+w, y)
	r.LineTo(x+w, y+h)
	r.LineTo(x, y+h)
	r.Close()
	r.Fill()
}
