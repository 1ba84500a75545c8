package render

import (
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/drawing"

	"github.com/lwalden/chartview-backend/internal/errs"
)

// palette is a named colormap defined by evenly spaced anchor colors.
// Sampling interpolates linearly between anchors, so a scheme name always
// produces the same colors.
type palette struct {
	name  string
	stops []drawing.Color
}

var palettes = map[string]palette{
	"viridis": {name: "viridis", stops: []drawing.Color{
		{R: 0x44, G: 0x01, B: 0x54, A: 255},
		{R: 0x3b, G: 0x52, B: 0x8b, A: 255},
		{R: 0x21, G: 0x91, B: 0x8c, A: 255},
		{R: 0x5e, G: 0xc9, B: 0x62, A: 255},
		{R: 0xfd, G: 0xe7, B: 0x25, A: 255},
	}},
	"plasma": {name: "plasma", stops: []drawing.Color{
		{R: 0x0d, G: 0x08, B: 0x87, A: 255},
		{R: 0x7e, G: 0x03, B: 0xa8, A: 255},
		{R: 0xcc, G: 0x47, B: 0x78, A: 255},
		{R: 0xf8, G: 0x95, B: 0x40, A: 255},
		{R: 0xf0, G: 0xf9, B: 0x21, A: 255},
	}},
	"inferno": {name: "inferno", stops: []drawing.Color{
		{R: 0x00, G: 0x00, B: 0x04, A: 255},
		{R: 0x57, G: 0x10, B: 0x6e, A: 255},
		{R: 0xbc, G: 0x37, B: 0x54, A: 255},
		{R: 0xf9, G: 0x8e, B: 0x09, A: 255},
		{R: 0xfc, G: 0xff, B: 0xa4, A: 255},
	}},
	"magma": {name: "magma", stops: []drawing.Color{
		{R: 0x00, G: 0x00, B: 0x04, A: 255},
		{R: 0x51, G: 0x12, B: 0x7c, A: 255},
		{R: 0xb7, G: 0x37, B: 0x79, A: 255},
		{R: 0xfc, G: 0x89, B: 0x61, A: 255},
		{R: 0xfc, G: 0xfd, B: 0xbf, A: 255},
	}},
	"cividis": {name: "cividis", stops: []drawing.Color{
		{R: 0x00, G: 0x22, B: 0x4e, A: 255},
		{R: 0x4a, G: 0x57, B: 0x6c, A: 255},
		{R: 0x7d, G: 0x7c, B: 0x78, A: 255},
		{R: 0xb3, G: 0xa7, B: 0x72, A: 255},
		{R: 0xfe, G: 0xe8, B: 0x38, A: 255},
	}},
	"coolwarm": {name: "coolwarm", stops: []drawing.Color{
		{R: 0x3b, G: 0x4c, B: 0xc0, A: 255},
		{R: 0x8d, G: 0xb0, B: 0xfe, A: 255},
		{R: 0xdd, G: 0xdd, B: 0xdd, A: 255},
		{R: 0xf4, G: 0x9a, B: 0x7b, A: 255},
		{R: 0xb4, G: 0x04, B: 0x26, A: 255},
	}},
}

// lookupPalette resolves a scheme name. Unknown names are an input error,
// never silently defaulted.
func lookupPalette(name string) (palette, error) {
	p, ok := palettes[name]
	if !ok {
		return palette{}, errs.NewValidationError(fmt.Sprintf("unknown color scheme %q", name))
	}
	return p, nil
}

// at samples the palette at t, clamped to [0,1].
func (p palette) at(t float64) drawing.Color {
	if math.IsNaN(t) || t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	pos := t * float64(len(p.stops)-1)
	i := int(pos)
	if i >= len(p.stops)-1 {
		return p.stops[len(p.stops)-1]
	}
	return lerpColor(p.stops[i], p.stops[i+1], pos-float64(i))
}

// sequence returns n evenly spaced samples across the palette.
func (p palette) sequence(n int) []drawing.Color {
	out := make([]drawing.Color, n)
	if n == 1 {
		out[0] = p.at(0)
		return out
	}
	for i := range out {
		out[i] = p.at(float64(i) / float64(n-1))
	}
	return out
}

func lerpColor(a, b drawing.Color, t float64) drawing.Color {
	return drawing.Color{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
		A: 255,
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}
