package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/chandrashekharb369/Data-cleaning-tool/internal/ingest"
	"github.com/chandrashekharb369/Data-cleaning-tool/internal/stats"
	"github.com/chandrashekharb369/Data-cleaning-tool/pkg/dataset"
)

const (
	// criticalMissingRatio escalates a column's missing data to the
	// critical tier.
	criticalMissingRatio = 0.3

	// outlierSuggestionRatio triggers the outlier suggestion when more
	// than this fraction of rows fall outside the IQR fences.
	outlierSuggestionRatio = 0.1
)

var cleanNamePattern = regexp.MustCompile(`^[\w]+$`)

type SuggestionsReport struct {
	Critical    []string `json:"critical"`
	Recommended []string `json:"recommended"`
	Optional    []string `json:"optional"`
}

// Suggestions tiers cleanup advice: critical for heavy missing data,
// recommended for duplicates and outlier-dense columns, optional for
// convertible dtypes and column-name hygiene.
func Suggestions(t *dataset.Table) SuggestionsReport {
	report := SuggestionsReport{
		Critical:    []string{},
		Recommended: []string{},
		Optional:    []string{},
	}
	if t == nil || t.NumRows() == 0 {
		return report
	}
	rows := t.NumRows()

	var highMissing []string
	for _, col := range t.Columns() {
		if float64(col.MissingCount())/float64(rows) > criticalMissingRatio {
			highMissing = append(highMissing, col.Name)
		}
	}
	if len(highMissing) > 0 {
		report.Critical = append(report.Critical,
			fmt.Sprintf("Handle missing data in columns: %v", highMissing))
	}

	if t.DuplicateCount() > 0 {
		report.Recommended = append(report.Recommended, "Remove duplicate rows")
	}

	for _, col := range t.Columns() {
		if col.Type != dataset.TypeString {
			continue
		}
		if convertible(col, ingestNumeric) {
			report.Optional = append(report.Optional,
				fmt.Sprintf("Convert %q to numeric type", col.Name))
		}
		if convertible(col, ingestDatetime) {
			report.Optional = append(report.Optional,
				fmt.Sprintf("Convert %q to datetime type", col.Name))
		}
	}

	for _, name := range t.NumericColumns() {
		col, _ := t.Column(name)
		xs := col.Floats()
		if len(xs) == 0 {
			continue
		}
		q1 := stats.Quantile(0.25, xs)
		q3 := stats.Quantile(0.75, xs)
		iqr := q3 - q1
		lower, upper := q1-1.5*iqr, q3+1.5*iqr
		outliers := 0
		for _, v := range xs {
			if v < lower || v > upper {
				outliers++
			}
		}
		if float64(outliers) > float64(rows)*outlierSuggestionRatio {
			report.Recommended = append(report.Recommended,
				fmt.Sprintf("Investigate outliers in %q (%d values)", name, outliers))
		}
	}

	for _, name := range t.ColumnNames() {
		stripped := strings.NewReplacer("-", "", " ", "").Replace(name)
		if !cleanNamePattern.MatchString(stripped) {
			report.Optional = append(report.Optional, "Standardize column names")
			break
		}
	}
	return report
}

func ingestNumeric(s string) bool {
	_, ok := ingest.ParseNumeric(s)
	return ok
}

func ingestDatetime(s string) bool {
	_, ok := ingest.ParseDatetime(s)
	return ok
}

// convertible reports whether every present value of a column passes
// the parse predicate.
func convertible(col *dataset.Column, parses func(string) bool) bool {
	present := 0
	for _, v := range col.Values {
		if v.IsMissing() {
			continue
		}
		present++
		if !parses(v.String()) {
			return false
		}
	}
	return present > 0
}
