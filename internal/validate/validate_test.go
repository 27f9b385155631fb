package validate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chandrashekharb369/Data-cleaning-tool/pkg/dataset"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func numCol(t *testing.T, name string, vals ...float64) *dataset.Column {
	t.Helper()
	cells := make([]dataset.Value, len(vals))
	for i, v := range vals {
		cells[i] = dataset.Num(v)
	}
	c, err := dataset.NewColumn(name, dataset.TypeNumeric, cells)
	require.NoError(t, err)
	return c
}

func strCol(t *testing.T, name string, vals ...string) *dataset.Column {
	t.Helper()
	cells := make([]dataset.Value, len(vals))
	for i, v := range vals {
		cells[i] = dataset.Str(v)
	}
	c, err := dataset.NewColumn(name, dataset.TypeString, cells)
	require.NoError(t, err)
	return c
}

func mustTable(t *testing.T, cols ...*dataset.Column) *dataset.Table {
	t.Helper()
	tab, err := dataset.New(cols...)
	require.NoError(t, err)
	return tab
}

func TestFileValid(t *testing.T) {
	path := writeFile(t, "data.csv", "a,b,c\n1,2,3\n4,5,6\n")
	result := File(path)
	assert.True(t, result.Valid)
	assert.Equal(t, "CSV", result.FileType)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestFileMissing(t *testing.T) {
	result := File(filepath.Join(t.TempDir(), "nope.csv"))
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "does not exist")
}

func TestFileUnsupportedExtension(t *testing.T) {
	path := writeFile(t, "data.parquet", "binary")
	result := File(path)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors[0], "Unsupported file format")
}

func TestFileEmpty(t *testing.T) {
	path := writeFile(t, "empty.csv", "\n\n")
	result := File(path)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors[0], "empty")
}

func TestFileInconsistentDelimiter(t *testing.T) {
	path := writeFile(t, "odd.txt", "a b c\nd e\nf\ng h i j\nk\n")
	result := File(path)
	assert.True(t, result.Valid)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "delimiter")
}

func TestTableEmpty(t *testing.T) {
	result := Table(nil)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors[0], "empty")
}

func TestTableMixedTypes(t *testing.T) {
	tab := mustTable(t, strCol(t, "mixed", "1", "two", "3", "four"))
	result := Table(tab)
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "mixed data types")
	assert.Contains(t, result.Warnings[0], "mixed")
}

func TestTableSpecialCharacterNames(t *testing.T) {
	tab := mustTable(t, numCol(t, "price($)", 1, 2))
	result := Table(tab)
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "special characters") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestTableDuplicateTiers(t *testing.T) {
	tests := []struct {
		name string
		vals []float64
		tier string
	}{
		{"error above half", []float64{1, 1, 1, 1, 2}, "error"},
		{"warning above tenth", []float64{1, 1, 2, 3, 4, 5, 6, 7, 8}, "warning"},
		{"info otherwise", make([]float64, 0), "info"},
	}

	// Build the info case: 1 duplicate out of 20 rows (5%).
	for i := 0; i < 20; i++ {
		tests[2].vals = append(tests[2].vals, float64(i))
	}
	tests[2].vals[19] = 0

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Table(mustTable(t, numCol(t, "v", tt.vals...)))
			switch tt.tier {
			case "error":
				require.NotEmpty(t, result.Errors)
				assert.Contains(t, result.Errors[0], "High duplicate rate")
				assert.False(t, result.Valid)
			case "warning":
				require.NotEmpty(t, result.Warnings)
				assert.Contains(t, result.Warnings[0], "Moderate duplicate rate")
			case "info":
				require.NotEmpty(t, result.Info)
				assert.Contains(t, result.Info[0], "duplicate rows")
			}
		})
	}
}

func TestTableKeywordRanges(t *testing.T) {
	tab := mustTable(t,
		numCol(t, "age", 30, 200),
		numCol(t, "completion_percent", 50, 120),
		numCol(t, "price", -5, 10),
	)
	result := Table(tab)
	joined := strings.Join(result.Warnings, "\n")
	assert.Contains(t, joined, "age: Unrealistic age values")
	assert.Contains(t, joined, "Percentage values outside 0-100 range")
	assert.Contains(t, joined, "price: Contains 1 negative monetary values")
}

func TestTableHighMissingAndEmptyRows(t *testing.T) {
	cells := []dataset.Value{
		dataset.Missing(), dataset.Missing(), dataset.Missing(),
		dataset.Missing(), dataset.Missing(), dataset.Missing(),
		dataset.Missing(), dataset.Missing(), dataset.Missing(),
		dataset.Missing(), dataset.Num(1),
	}
	sparse, err := dataset.NewColumn("sparse", dataset.TypeNumeric, cells)
	require.NoError(t, err)

	result := Table(mustTable(t, sparse))
	joined := strings.Join(result.Warnings, "\n")
	assert.Contains(t, joined, ">90% missing data")
	assert.Contains(t, joined, "10 completely empty rows")
}

func TestTableStatistics(t *testing.T) {
	cells := []dataset.Value{dataset.Num(1), dataset.Missing(), dataset.Num(3)}
	col, err := dataset.NewColumn("x", dataset.TypeNumeric, cells)
	require.NoError(t, err)
	tab := mustTable(t, col, strCol(t, "s", "a", "b", "c"))

	result := Table(tab)
	assert.Equal(t, 3, result.Statistics.TotalRows)
	assert.Equal(t, 2, result.Statistics.TotalColumns)
	assert.Equal(t, 1, result.Statistics.NumericColumns)
	assert.Equal(t, 1, result.Statistics.CategoricalColumns)
	assert.Equal(t, 1, result.Statistics.TotalMissing)
	assert.InDelta(t, 100.0/6, result.Statistics.MissingPercentage, 1e-9)
}

func TestColumnForAnalysisCorrelation(t *testing.T) {
	tab := mustTable(t,
		numCol(t, "good", 1, 2, 3, 4),
		numCol(t, "flat", 7, 7, 7, 7),
		strCol(t, "text", "a", "b", "c", "d"),
	)

	assert.True(t, ColumnForAnalysis(tab, "good", AnalysisCorrelation).Suitable)

	res := ColumnForAnalysis(tab, "flat", AnalysisCorrelation)
	assert.False(t, res.Suitable)
	assert.Contains(t, res.Issues[0], "insufficient variation")

	res = ColumnForAnalysis(tab, "text", AnalysisCorrelation)
	assert.False(t, res.Suitable)
	assert.Contains(t, res.Issues[0], "must be numeric")

	res = ColumnForAnalysis(tab, "absent", AnalysisCorrelation)
	assert.False(t, res.Suitable)
	assert.Contains(t, res.Issues[0], "not found")
}

func TestColumnForAnalysisCorrelationTooManyMissing(t *testing.T) {
	cells := []dataset.Value{
		dataset.Num(1), dataset.Missing(), dataset.Missing(), dataset.Num(2),
		dataset.Missing(), dataset.Missing(),
	}
	col, err := dataset.NewColumn("sparse", dataset.TypeNumeric, cells)
	require.NoError(t, err)
	res := ColumnForAnalysis(mustTable(t, col), "sparse", AnalysisCorrelation)
	assert.False(t, res.Suitable)
	assert.Contains(t, res.Issues[0], "too many missing values")
}

func TestColumnForAnalysisCategorical(t *testing.T) {
	vals := make([]string, 60)
	for i := range vals {
		vals[i] = strings.Repeat("x", i+1)
	}
	tab := mustTable(t, strCol(t, "wide", vals...))

	res := ColumnForAnalysis(tab, "wide", AnalysisCategorical)
	assert.False(t, res.Suitable)
	assert.NotEmpty(t, res.Recommendations)

	single := mustTable(t, strCol(t, "one", "a", "a", "a"))
	res = ColumnForAnalysis(single, "one", AnalysisCategorical)
	assert.False(t, res.Suitable)
	assert.Contains(t, res.Issues[0], "insufficient categories")
}

func TestColumnForAnalysisOutlier(t *testing.T) {
	tab := mustTable(t, numCol(t, "v", 1, 2, 3), numCol(t, "flat", 5, 5, 5))
	assert.True(t, ColumnForAnalysis(tab, "v", AnalysisOutlier).Suitable)

	res := ColumnForAnalysis(tab, "flat", AnalysisOutlier)
	assert.False(t, res.Suitable)
	assert.Contains(t, res.Issues[0], "no variation")
}

func TestColumnForAnalysisTimeSeries(t *testing.T) {
	tab := mustTable(t,
		strCol(t, "dates", "2024-01-01", "2024-02-01", "2024-03-01"),
		strCol(t, "words", "alpha", "beta", "gamma"),
	)

	res := ColumnForAnalysis(tab, "dates", AnalysisTimeSeries)
	assert.True(t, res.Suitable)
	assert.Contains(t, res.Recommendations[0], "converted to datetime")

	res = ColumnForAnalysis(tab, "words", AnalysisTimeSeries)
	assert.False(t, res.Suitable)
}

func TestColumnForAnalysisUnknownKind(t *testing.T) {
	tab := mustTable(t, numCol(t, "v", 1, 2))
	res := ColumnForAnalysis(tab, "v", "clustering")
	assert.False(t, res.Suitable)
	assert.Contains(t, res.Issues[0], "Unknown analysis kind")
}

func TestSuggestionsCritical(t *testing.T) {
	cells := []dataset.Value{
		dataset.Num(1), dataset.Missing(), dataset.Missing(), dataset.Missing(),
	}
	sparse, err := dataset.NewColumn("sparse", dataset.TypeNumeric, cells)
	require.NoError(t, err)

	report := Suggestions(mustTable(t, sparse))
	require.NotEmpty(t, report.Critical)
	assert.Contains(t, report.Critical[0], "sparse")
}

func TestSuggestionsRecommendedAndOptional(t *testing.T) {
	tab := mustTable(t,
		numCol(t, "dup", 1, 1, 2, 3),
		strCol(t, "codes", "10", "20", "30", "40"),
		strCol(t, "when", "2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04"),
	)
	report := Suggestions(tab)
	assert.Contains(t, report.Recommended, "Remove duplicate rows")
	assert.Contains(t, report.Optional, `Convert "codes" to numeric type`)
	assert.Contains(t, report.Optional, `Convert "when" to datetime type`)
}

func TestSuggestionsColumnNameHygiene(t *testing.T) {
	tab := mustTable(t, numCol(t, "total (%)", 1, 2))
	report := Suggestions(tab)
	assert.Contains(t, report.Optional, "Standardize column names")
}
