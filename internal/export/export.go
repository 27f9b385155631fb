// Package export writes the current table to delimited text,
// spreadsheet, JSON, SQLite, or a bundled analysis report. Every
// successful write is recorded in the store's processing log.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/chandrashekharb369/Data-cleaning-tool/internal/store"
	"github.com/chandrashekharb369/Data-cleaning-tool/pkg/dataset"
)

// CSV writes the table as comma-separated text with a header row.
// Missing cells become empty fields.
func CSV(s *store.Store, path string) error {
	t, err := s.Snapshot()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.ColumnNames()); err != nil {
		return err
	}
	for _, row := range records(t) {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	s.LogAction(fmt.Sprintf("Exported data to CSV: %s", path))
	return nil
}

// XLSX writes the table to a single-sheet workbook.
func XLSX(s *store.Store, path, sheet string) error {
	t, err := s.Snapshot()
	if err != nil {
		return err
	}
	if sheet == "" {
		sheet = "Data"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	wb := excelize.NewFile()
	defer wb.Close()
	if err := wb.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	header := make([]any, t.NumCols())
	for i, name := range t.ColumnNames() {
		header[i] = name
	}
	if err := wb.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, row := range records(t) {
		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = v
		}
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := wb.SetSheetRow(sheet, addr, &cells); err != nil {
			return err
		}
	}
	if err := wb.SaveAs(path); err != nil {
		return err
	}
	s.LogAction(fmt.Sprintf("Exported data to Excel: %s", path))
	return nil
}

// records renders every row as strings: RFC 3339 datetimes, empty for
// missing.
func records(t *dataset.Table) [][]string {
	rows := make([][]string, t.NumRows())
	cols := t.Columns()
	for i := range rows {
		row := make([]string, len(cols))
		for j, col := range cols {
			row[j] = col.Values[i].String()
		}
		rows[i] = row
	}
	return rows
}
