package render

import "github.com/wonny/finstitch/internal/contracts"

// Row is one table row: the display label plus one cell per period column.
// A nil cell means the value is absent for that period.
type Row struct {
	Concept      string     `json:"concept"`
	Label        string     `json:"label"`
	Level        int        `json:"level"`
	Standardized bool       `json:"standardized"`
	Cells        []*float64 `json:"cells"`
}

// Table is the ordered rows/columns projection of a stitched statement.
// Rendering to any display format stays outside this module.
type Table struct {
	StatementType contracts.StatementType `json:"statement_type"`
	Columns       []string                `json:"columns"` // period labels, newest first
	Rows          []Row                   `json:"rows"`
}

// ToTable projects a stitched statement into ordered rows and columns
func ToTable(stitched *contracts.StitchedStatement) *Table {
	if stitched == nil {
		return &Table{}
	}

	columns := make([]string, len(stitched.Periods))
	keys := make([]string, len(stitched.Periods))
	for i, p := range stitched.Periods {
		columns[i] = p.Label()
		keys[i] = p.Key()
	}

	rows := make([]Row, 0, len(stitched.Rows))
	for _, item := range stitched.Rows {
		cells := make([]*float64, len(keys))
		for i, key := range keys {
			if value, ok := item.Values[key]; ok {
				v := value
				cells[i] = &v
			}
		}
		rows = append(rows, Row{
			Concept:      item.Concept,
			Label:        item.Label,
			Level:        item.Level,
			Standardized: item.Standardized,
			Cells:        cells,
		})
	}

	return &Table{
		StatementType: stitched.StatementType,
		Columns:       columns,
		Rows:          rows,
	}
}
