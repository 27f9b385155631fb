package store

import (
	"fmt"

	"github.com/chandrashekharb369/Data-cleaning-tool/internal/stats"
	"github.com/chandrashekharb369/Data-cleaning-tool/pkg/dataset"
)

// SummaryReport is the shape the presentation layer renders after every
// mutation: counts, memory, and missing/duplicate totals, all derived
// from metadata.
type SummaryReport struct {
	Rows               int               `json:"rows"`
	Columns            int               `json:"columns"`
	Memory             string            `json:"memory_usage"`
	Duplicates         int               `json:"duplicates"`
	NumericColumns     int               `json:"numeric_columns"`
	CategoricalColumns int               `json:"categorical_columns"`
	TotalMissing       int               `json:"total_missing"`
	ColumnsWithMissing int               `json:"columns_with_missing"`
	DTypes             map[string]string `json:"dtypes"`
}

// NumericStats is the five-number-plus-moments block for a numeric
// column.
type NumericStats struct {
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
	Min  float64 `json:"min"`
	Q25  float64 `json:"q25"`
	Q50  float64 `json:"q50"`
	Q75  float64 `json:"q75"`
	Max  float64 `json:"max"`
}

// ColumnReport is the per-column detail block. Exactly one of Numeric or
// TopValues is populated, depending on the column's class.
type ColumnReport struct {
	DType          string               `json:"dtype"`
	MissingCount   int                  `json:"missing_count"`
	MissingPercent float64              `json:"missing_percentage"`
	UniqueValues   int                  `json:"unique_values"`
	IsNumeric      bool                 `json:"is_numeric"`
	Numeric        *NumericStats        `json:"numeric_stats,omitempty"`
	TopValues      []dataset.ValueCount `json:"top_values,omitempty"`
	MostFrequent   string               `json:"most_frequent,omitempty"`
}

// Summary builds the basic report from current metadata. Returns a zero
// report when nothing is loaded.
func (s *Store) Summary() SummaryReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return SummaryReport{}
	}
	return SummaryReport{
		Rows:               s.meta.Rows,
		Columns:            s.meta.Columns,
		Memory:             FormatBytes(s.meta.MemoryBytes),
		Duplicates:         s.meta.Duplicates,
		NumericColumns:     len(s.meta.NumericColumns),
		CategoricalColumns: len(s.meta.CategoricalColumns),
		TotalMissing:       s.meta.TotalMissing(),
		ColumnsWithMissing: s.meta.ColumnsWithMissing(),
		DTypes:             s.meta.DTypes,
	}
}

// ColumnInfo builds the per-column detail map: numeric columns get the
// quantile block, categorical columns get the top-10 value ranking.
func (s *Store) ColumnInfo() map[string]ColumnReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return map[string]ColumnReport{}
	}

	out := make(map[string]ColumnReport, s.data.NumCols())
	rows := s.data.NumRows()
	for _, c := range s.data.Columns() {
		rep := ColumnReport{
			DType:        c.Type.String(),
			MissingCount: c.MissingCount(),
			UniqueValues: c.UniqueCount(),
			IsNumeric:    c.Type.IsNumeric(),
		}
		if rows > 0 {
			rep.MissingPercent = float64(rep.MissingCount) / float64(rows) * 100
		}
		if rep.IsNumeric {
			xs := c.Floats()
			rep.Numeric = &NumericStats{
				Mean: stats.Mean(xs),
				Std:  stats.Std(xs),
				Min:  stats.Min(xs),
				Q25:  stats.Quantile(0.25, xs),
				Q50:  stats.Quantile(0.5, xs),
				Q75:  stats.Quantile(0.75, xs),
				Max:  stats.Max(xs),
			}
		} else {
			counts := c.ValueCounts()
			if len(counts) > 10 {
				counts = counts[:10]
			}
			rep.TopValues = counts
			if len(counts) > 0 {
				rep.MostFrequent = counts[0].Value
			}
		}
		out[c.Name] = rep
	}
	return out
}

// FormatBytes renders a byte count in human-readable units.
func FormatBytes(n int64) string {
	size := float64(n)
	for _, unit := range []string{"B", "KB", "MB", "GB"} {
		if size < 1024 {
			return fmt.Sprintf("%.2f %s", size, unit)
		}
		size /= 1024
	}
	return fmt.Sprintf("%.2f TB", size)
}
