package export

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/chandrashekharb369/Data-cleaning-tool/internal/store"
	"github.com/chandrashekharb369/Data-cleaning-tool/pkg/dataset"
)

var identPattern = regexp.MustCompile(`[^A-Za-z0-9_]`)

// SQLite writes the table into a fresh database file: typed DDL derived
// from the column dtypes, one transaction for all inserts, missing
// cells as NULL.
func SQLite(s *store.Store, path, tableName string) error {
	t, err := s.Snapshot()
	if err != nil {
		return err
	}
	if tableName == "" {
		tableName = "data"
	}
	tableName = sanitizeIdent(tableName)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	// A stale file would leave the old table alongside the new one.
	_ = os.Remove(path)

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec(tableDDL(t, tableName)); err != nil {
		return err
	}
	if err := insertRows(db, t, tableName); err != nil {
		return err
	}

	s.LogAction(fmt.Sprintf("Exported data to SQLite: %s (table %s)", path, tableName))
	return nil
}

// tableDDL maps dtypes onto SQLite column types: REAL for numeric,
// INTEGER for bool, TEXT otherwise.
func tableDDL(t *dataset.Table, tableName string) string {
	defs := make([]string, t.NumCols())
	for i, col := range t.Columns() {
		var sqlType string
		switch col.Type {
		case dataset.TypeNumeric:
			sqlType = "REAL"
		case dataset.TypeBool:
			sqlType = "INTEGER"
		default:
			sqlType = "TEXT"
		}
		defs[i] = fmt.Sprintf("%s %s", sanitizeIdent(col.Name), sqlType)
	}
	return fmt.Sprintf("CREATE TABLE %s (\n    %s\n);", tableName, strings.Join(defs, ",\n    "))
}

func insertRows(db *sql.DB, t *dataset.Table, tableName string) error {
	cols := t.Columns()
	names := make([]string, len(cols))
	placeholders := make([]string, len(cols))
	for i, col := range cols {
		names[i] = sanitizeIdent(col.Name)
		placeholders[i] = "?"
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		tableName, strings.Join(names, ", "), strings.Join(placeholders, ", "))

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(query)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	args := make([]any, len(cols))
	for i := 0; i < t.NumRows(); i++ {
		for j, col := range cols {
			args[j] = sqlValue(col.Values[i])
		}
		if _, err := stmt.Exec(args...); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// sqlValue maps a cell to its driver representation, nil for missing.
func sqlValue(v dataset.Value) any {
	if f, ok := v.Float(); ok {
		return f
	}
	if s, ok := v.Text(); ok {
		return s
	}
	if b, ok := v.BoolVal(); ok {
		if b {
			return int64(1)
		}
		return int64(0)
	}
	if ts, ok := v.TimeVal(); ok {
		return ts.Format(time.RFC3339)
	}
	return nil
}

// sanitizeIdent rewrites a name into a safe SQL identifier.
func sanitizeIdent(name string) string {
	cleaned := identPattern.ReplaceAllString(name, "_")
	if cleaned == "" || (cleaned[0] >= '0' && cleaned[0] <= '9') {
		cleaned = "c_" + cleaned
	}
	return cleaned
}
