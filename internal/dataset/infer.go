package dataset

const previewRows = 10

// Summary is the schema description returned to the client after upload.
type Summary struct {
	Columns            []string
	NumericColumns     []string
	CategoricalColumns []string
	Preview            []map[string]any
	RowCount           int
	ColumnCount        int
}

// Infer parses raw CSV bytes and describes their schema: column order,
// numeric/categorical classification, and a preview of the first rows.
// Pure function of its input.
func Infer(raw []byte) (*Summary, error) {
	ds, err := Parse(raw)
	if err != nil {
		return nil, err
	}

	n := previewRows
	if ds.Len() < n {
		n = ds.Len()
	}

	return &Summary{
		Columns:            ds.Columns,
		NumericColumns:     ds.NumericColumns,
		CategoricalColumns: ds.CategoricalColumns,
		Preview:            ds.Rows[:n],
		RowCount:           ds.Len(),
		ColumnCount:        len(ds.Columns),
	}, nil
}
