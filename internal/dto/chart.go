package dto

import (
	"github.com/lwalden/chartview-backend/internal/models"
)

// UploadResponse describes an uploaded CSV: its inferred schema, a preview
// of the first rows, and the raw bytes base64-encoded so the client can
// send them back on generate-chart.
type UploadResponse struct {
	Filename           string           `json:"filename"`
	Data               string           `json:"data"`
	Columns            []string         `json:"columns"`
	NumericColumns     []string         `json:"numeric_columns"`
	CategoricalColumns []string         `json:"categorical_columns"`
	Preview            []map[string]any `json:"preview"`
	RowCount           int              `json:"row_count"`
	ColumnCount        int              `json:"column_count"`
}

type GenerateChartRequest struct {
	Filename string             `json:"filename"`
	Data     string             `json:"data"`
	Config   models.ChartConfig `json:"config"`
}

type GenerateChartResponse struct {
	ID         string `json:"id"`
	ChartImage string `json:"chart_image"`
	Message    string `json:"message"`
}
