package models

import "time"

// Supported chart types.
const (
	ChartTypeBar       = "bar"
	ChartTypeLine      = "line"
	ChartTypeScatter   = "scatter"
	ChartTypePie       = "pie"
	ChartTypeHistogram = "histogram"
	ChartTypeHeatmap   = "heatmap"
)

// ChartConfig is the set of user-chosen rendering parameters.
// YColumn is optional for every type except scatter; XColumn and YColumn
// are ignored by heatmap. Zero values for ColorScheme, Title, Width and
// Height are replaced with defaults by the chart service.
type ChartConfig struct {
	ChartType   string `firestore:"chartType" json:"chart_type"`
	XColumn     string `firestore:"xColumn" json:"x_column"`
	YColumn     string `firestore:"yColumn,omitempty" json:"y_column,omitempty"`
	ColorScheme string `firestore:"colorScheme" json:"color_scheme"`
	Title       string `firestore:"title" json:"title"`
	Width       int    `firestore:"width" json:"width"`
	Height      int    `firestore:"height" json:"height"`
}

// Chart is a persisted result of one rendering operation. Data holds the
// full original CSV payload base64-encoded, ChartImage the rendered PNG
// base64-encoded. Records are created exactly once and never updated.
type Chart struct {
	ID         string      `firestore:"id" json:"id"`
	Filename   string      `firestore:"filename" json:"filename"`
	Data       string      `firestore:"data" json:"data"`
	Config     ChartConfig `firestore:"config" json:"config"`
	ChartImage string      `firestore:"chartImage" json:"chart_image"`
	CreatedAt  time.Time   `firestore:"createdAt" json:"timestamp"`
}
