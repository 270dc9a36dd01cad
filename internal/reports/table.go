package reports

import (
	"encoding/csv"
	"fmt"
	"io"
)

// Table is a finished report: a header row plus data rows, everything
// already rendered to strings so CSV and JSON emit the same values.
type Table struct {
	Name   string     `json:"name"`
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// WriteCSV renders the table as CSV. A UTF-8 BOM is prepended so the
// Korean headers survive a double-click open in Excel.
func (t *Table) WriteCSV(w io.Writer) error {
	if _, err := io.WriteString(w, "\ufeff"); err != nil {
		return fmt.Errorf("write bom: %w", err)
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
