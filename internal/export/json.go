package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/chandrashekharb369/Data-cleaning-tool/internal/analyze"
	"github.com/chandrashekharb369/Data-cleaning-tool/internal/store"
	"github.com/chandrashekharb369/Data-cleaning-tool/pkg/dataset"
)

// JSON writes the table records-oriented: one object per row, column
// names as keys, missing cells as null, datetimes as ISO-8601 strings.
func JSON(s *store.Store, path string) error {
	t, err := s.Snapshot()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	rows := make([]map[string]any, t.NumRows())
	cols := t.Columns()
	for i := range rows {
		row := make(map[string]any, len(cols))
		for _, col := range cols {
			row[col.Name] = jsonValue(col.Values[i])
		}
		rows[i] = row
	}

	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	s.LogAction(fmt.Sprintf("Exported data to JSON: %s", path))
	return nil
}

// jsonValue maps a cell to its JSON-native representation.
func jsonValue(v dataset.Value) any {
	if f, ok := v.Float(); ok {
		return f
	}
	if s, ok := v.Text(); ok {
		return s
	}
	if b, ok := v.BoolVal(); ok {
		return b
	}
	if ts, ok := v.TimeVal(); ok {
		return ts.Format(time.RFC3339)
	}
	return nil
}

type reportShape struct {
	Rows    int `json:"rows"`
	Columns int `json:"columns"`
}

type reportAnalysis struct {
	Correlation *analyze.CorrelationResult `json:"correlation_analysis,omitempty"`
	Quality     *analyze.QualityReport     `json:"data_quality,omitempty"`
	Insights    *analyze.InsightReport     `json:"insights,omitempty"`
	Statistics  *analyze.StatisticalReport `json:"statistical_summary,omitempty"`
}

type reportDocument struct {
	ReportID      string                        `json:"report_id"`
	GeneratedAt   time.Time                     `json:"generated_at"`
	OriginalShape *reportShape                  `json:"original_shape,omitempty"`
	CurrentShape  reportShape                   `json:"current_shape"`
	ProcessingLog []string                      `json:"processing_log"`
	Summary       store.SummaryReport           `json:"data_summary"`
	ColumnInfo    map[string]store.ColumnReport `json:"column_info"`
	Analysis      *reportAnalysis               `json:"analysis,omitempty"`
}

// Report writes the JSON bundle a stakeholder reads after a cleaning
// session: shapes, processing log, summary, per-column detail, and
// optionally the four analysis payloads. Analyses that fail on this
// table (say, too few numeric columns for correlation) are omitted
// rather than failing the report.
func Report(s *store.Store, path string, includeAnalysis bool) error {
	t, err := s.Snapshot()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	doc := reportDocument{
		ReportID:      uuid.NewString(),
		GeneratedAt:   time.Now(),
		CurrentShape:  reportShape{Rows: t.NumRows(), Columns: t.NumCols()},
		ProcessingLog: s.ProcessingLog(),
		Summary:       s.Summary(),
		ColumnInfo:    s.ColumnInfo(),
	}
	if orig, err := s.OriginalSnapshot(); err == nil {
		doc.OriginalShape = &reportShape{Rows: orig.NumRows(), Columns: orig.NumCols()}
	}

	if includeAnalysis {
		an := analyze.New(s)
		doc.Analysis = &reportAnalysis{}
		if corr, err := an.Correlations(analyze.MethodPearson); err == nil {
			doc.Analysis.Correlation = &corr
		}
		if quality, err := an.QualityAssessment(); err == nil {
			doc.Analysis.Quality = &quality
		}
		if insights, err := an.Insights(); err == nil {
			doc.Analysis.Insights = &insights
		}
		if summary, err := an.StatisticalSummary(); err == nil {
			doc.Analysis.Statistics = &summary
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	s.LogAction(fmt.Sprintf("Exported summary report: %s", path))
	return nil
}
