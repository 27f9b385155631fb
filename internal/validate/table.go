package validate

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/chandrashekharb369/Data-cleaning-tool/internal/ingest"
	"github.com/chandrashekharb369/Data-cleaning-tool/pkg/dataset"
)

const (
	// mixedTypeSample caps how many values per string column are tested
	// for numeric content.
	mixedTypeSample = 100

	highMissingPct = 90.0

	duplicateErrorPct   = 50.0
	duplicateWarningPct = 10.0

	extremeMagnitude = 1e10
)

var specialCharPattern = regexp.MustCompile(`[^\w\s\-_.]`)

type TableStatistics struct {
	TotalRows          int     `json:"total_rows"`
	TotalColumns       int     `json:"total_columns"`
	NumericColumns     int     `json:"numeric_columns"`
	CategoricalColumns int     `json:"categorical_columns"`
	DatetimeColumns    int     `json:"datetime_columns"`
	TotalMissing       int     `json:"total_missing_values"`
	MissingPercentage  float64 `json:"missing_percentage"`
	DuplicateRows      int     `json:"duplicate_rows"`
	MemoryBytes        int64   `json:"memory_bytes"`
}

type TableResult struct {
	Valid      bool            `json:"is_valid"`
	Errors     []string        `json:"errors"`
	Warnings   []string        `json:"warnings"`
	Info       []string        `json:"info"`
	Statistics TableStatistics `json:"statistics"`
}

// Table runs the structural and content checks on a table: column
// naming, mixed types, missing-data severity, duplicate severity, and
// keyword-based range sanity.
func Table(t *dataset.Table) TableResult {
	result := TableResult{
		Errors:   []string{},
		Warnings: []string{},
		Info:     []string{},
	}
	if t == nil || t.NumRows() == 0 || t.NumCols() == 0 {
		result.Errors = append(result.Errors, "Table is empty")
		return result
	}

	checkColumnNames(t, &result)
	checkMixedTypes(t, &result)
	checkMissingData(t, &result)
	checkDuplicates(t, &result)
	checkValueRanges(t, &result)
	result.Statistics = tableStatistics(t)
	result.Valid = len(result.Errors) == 0
	return result
}

func checkColumnNames(t *dataset.Table, result *TableResult) {
	seen := make(map[string]bool, t.NumCols())
	var duplicates, blank, special []string
	for i, name := range t.ColumnNames() {
		if seen[name] {
			duplicates = append(duplicates, name)
		}
		seen[name] = true
		if strings.TrimSpace(name) == "" {
			blank = append(blank, fmt.Sprintf("position %d", i))
		}
		if specialCharPattern.MatchString(name) {
			special = append(special, name)
		}
	}
	if len(duplicates) > 0 {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Duplicate column names found: %v", duplicates))
	}
	if len(blank) > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Blank column names at: %s", strings.Join(blank, ", ")))
	}
	if len(special) > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Columns with special characters: %v", special))
	}
}

// checkMixedTypes samples each string column and flags ones that mix
// numeric and textual values.
func checkMixedTypes(t *dataset.Table, result *TableResult) {
	var mixed []string
	for _, col := range t.Columns() {
		if col.Type != dataset.TypeString {
			continue
		}
		sampled, numeric := 0, 0
		for _, v := range col.Values {
			if v.IsMissing() {
				continue
			}
			if sampled == mixedTypeSample {
				break
			}
			sampled++
			if s, ok := v.Text(); ok {
				if _, isNum := ingest.ParseNumeric(s); isNum {
					numeric++
				}
			}
		}
		if numeric > 0 && numeric < sampled {
			mixed = append(mixed, col.Name)
		}
	}
	if len(mixed) > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Columns with mixed data types: %v", mixed))
	}
}

func checkMissingData(t *dataset.Table, result *TableResult) {
	rows := t.NumRows()
	var highMissing []string
	for _, col := range t.Columns() {
		pct := float64(col.MissingCount()) / float64(rows) * 100
		if pct > highMissingPct {
			highMissing = append(highMissing, fmt.Sprintf("%s (%.1f%%)", col.Name, pct))
		}
	}
	if len(highMissing) > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Columns with >90%% missing data: %v", highMissing))
	}

	emptyRows := 0
	for i := 0; i < rows; i++ {
		allMissing := true
		for _, col := range t.Columns() {
			if !col.Values[i].IsMissing() {
				allMissing = false
				break
			}
		}
		if allMissing {
			emptyRows++
		}
	}
	if emptyRows > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Found %d completely empty rows", emptyRows))
	}
}

func checkDuplicates(t *dataset.Table, result *TableResult) {
	count := t.DuplicateCount()
	if count == 0 {
		return
	}
	pct := float64(count) / float64(t.NumRows()) * 100
	switch {
	case pct > duplicateErrorPct:
		result.Errors = append(result.Errors,
			fmt.Sprintf("High duplicate rate: %.1f%% (%d rows)", pct, count))
	case pct > duplicateWarningPct:
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Moderate duplicate rate: %.1f%% (%d rows)", pct, count))
	default:
		result.Info = append(result.Info,
			fmt.Sprintf("Found %d duplicate rows (%.1f%%)", count, pct))
	}
}

// checkValueRanges applies the keyword heuristics: ages stay in
// [0, 150], percentages in [0, 100], monetary columns non-negative.
// Infinities and magnitudes past 1e10 always warn.
func checkValueRanges(t *dataset.Table, result *TableResult) {
	var issues []string
	for _, col := range t.Columns() {
		if !col.Type.IsNumeric() {
			continue
		}
		xs := col.Floats()
		if len(xs) == 0 {
			continue
		}

		hasInf, tooLarge := false, false
		minV, maxV := xs[0], xs[0]
		negatives := 0
		for _, v := range xs {
			if math.IsInf(v, 0) {
				hasInf = true
			}
			if math.Abs(v) > extremeMagnitude {
				tooLarge = true
			}
			if v < minV {
				minV = v
			}
			if v > maxV {
				maxV = v
			}
			if v < 0 {
				negatives++
			}
		}
		if hasInf {
			issues = append(issues, fmt.Sprintf("%s: Contains infinite values", col.Name))
		}
		if tooLarge {
			issues = append(issues, fmt.Sprintf("%s: Contains extremely large values", col.Name))
		}

		name := strings.ToLower(col.Name)
		switch {
		case strings.Contains(name, "age"):
			if minV < 0 || maxV > 150 {
				issues = append(issues, fmt.Sprintf("%s: Unrealistic age values", col.Name))
			}
		case strings.Contains(name, "percent"):
			if minV < 0 || maxV > 100 {
				issues = append(issues, fmt.Sprintf("%s: Percentage values outside 0-100 range", col.Name))
			}
		case containsAny(name, "price", "cost", "amount", "salary"):
			if negatives > 0 {
				issues = append(issues, fmt.Sprintf("%s: Contains %d negative monetary values", col.Name, negatives))
			}
		}
	}
	result.Warnings = append(result.Warnings, issues...)
}

func containsAny(s string, terms ...string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}

func tableStatistics(t *dataset.Table) TableStatistics {
	rows, cols := t.NumRows(), t.NumCols()
	missing := 0
	datetime := 0
	for _, col := range t.Columns() {
		missing += col.MissingCount()
		if col.Type == dataset.TypeDatetime {
			datetime++
		}
	}
	stats := TableStatistics{
		TotalRows:          rows,
		TotalColumns:       cols,
		NumericColumns:     len(t.NumericColumns()),
		CategoricalColumns: len(t.CategoricalColumns()),
		DatetimeColumns:    datetime,
		TotalMissing:       missing,
		DuplicateRows:      t.DuplicateCount(),
		MemoryBytes:        t.MemoryFootprint(),
	}
	if rows*cols > 0 {
		stats.MissingPercentage = float64(missing) / float64(rows*cols) * 100
	}
	return stats
}
