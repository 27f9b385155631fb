package validate

import (
	"fmt"

	"github.com/chandrashekharb369/Data-cleaning-tool/internal/ingest"
	"github.com/chandrashekharb369/Data-cleaning-tool/internal/stats"
	"github.com/chandrashekharb369/Data-cleaning-tool/pkg/dataset"
)

// Analysis kinds accepted by ColumnForAnalysis.
const (
	AnalysisCorrelation = "correlation"
	AnalysisCategorical = "categorical"
	AnalysisOutlier     = "outlier_detection"
	AnalysisTimeSeries  = "time_series"
)

const (
	// correlationMissingLimit blocks correlation when more than half the
	// column is missing.
	correlationMissingLimit = 0.5

	// categoricalMaxUnique blocks categorical analysis on near-unique
	// columns.
	categoricalMaxUnique = 50
)

type ColumnResult struct {
	Suitable        bool     `json:"is_suitable"`
	Issues          []string `json:"issues"`
	Recommendations []string `json:"recommendations"`
}

// ColumnForAnalysis decides whether a column can feed a given analysis
// kind, reporting the blocking conditions when it cannot.
func ColumnForAnalysis(t *dataset.Table, column, kind string) ColumnResult {
	result := ColumnResult{Issues: []string{}, Recommendations: []string{}}

	col, ok := t.Column(column)
	if !ok {
		result.Issues = append(result.Issues, fmt.Sprintf("Column %q not found", column))
		return result
	}

	switch kind {
	case AnalysisCorrelation:
		missingRatio := float64(col.MissingCount()) / float64(col.Len())
		switch {
		case !col.Type.IsNumeric():
			result.Issues = append(result.Issues, "Column must be numeric for correlation analysis")
		case col.UniqueCount() < 2:
			result.Issues = append(result.Issues, "Column has insufficient variation for correlation")
		case missingRatio > correlationMissingLimit:
			result.Issues = append(result.Issues, "Column has too many missing values (>50%)")
		default:
			result.Suitable = true
		}

	case AnalysisCategorical:
		unique := col.UniqueCount()
		switch {
		case unique > categoricalMaxUnique:
			result.Issues = append(result.Issues, "Column has too many unique values for categorical analysis")
			result.Recommendations = append(result.Recommendations,
				"Consider grouping values or using different analysis")
		case unique < 2:
			result.Issues = append(result.Issues, "Column has insufficient categories")
		default:
			result.Suitable = true
		}

	case AnalysisOutlier:
		switch {
		case !col.Type.IsNumeric():
			result.Issues = append(result.Issues, "Column must be numeric for outlier detection")
		case stats.Std(col.Floats()) == 0:
			result.Issues = append(result.Issues, "Column has no variation - cannot detect outliers")
		default:
			result.Suitable = true
		}

	case AnalysisTimeSeries:
		if col.Type == dataset.TypeDatetime {
			result.Suitable = true
			break
		}
		if datetimeConvertible(col) {
			result.Suitable = true
			result.Recommendations = append(result.Recommendations,
				"Column can be converted to datetime")
		} else {
			result.Issues = append(result.Issues, "Column cannot be converted to datetime")
		}

	default:
		result.Issues = append(result.Issues, fmt.Sprintf("Unknown analysis kind %q", kind))
	}
	return result
}

// datetimeConvertible reports whether every present value parses as a
// datetime.
func datetimeConvertible(col *dataset.Column) bool {
	present := 0
	for _, v := range col.Values {
		if v.IsMissing() {
			continue
		}
		present++
		if _, ok := ingest.ParseDatetime(v.String()); !ok {
			return false
		}
	}
	return present > 0
}
