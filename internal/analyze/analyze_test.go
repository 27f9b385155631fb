package analyze

import (
	"io"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chandrashekharb369/Data-cleaning-tool/internal/store"
	"github.com/chandrashekharb369/Data-cleaning-tool/pkg/dataset"
)

func setupAnalyzer(t *testing.T, cols ...*dataset.Column) *Analyzer {
	t.Helper()
	tab, err := dataset.New(cols...)
	require.NoError(t, err)
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	s := store.New(logger)
	s.LoadTable(tab, "loaded test table")
	return New(s)
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

func TestCorrelationsFindsLinearPair(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	n := 50
	a := make([]float64, n)
	b := make([]float64, n)
	noise := make([]float64, n)
	for i := range a {
		a[i] = float64(i)
		b[i] = 2*float64(i) + 1
		noise[i] = rnd.Float64()
	}

	an := setupAnalyzer(t,
		numCol(t, "a", a...),
		numCol(t, "b", b...),
		numCol(t, "noise", noise...),
	)
	res, err := an.Correlations(MethodPearson)
	require.NoError(t, err)

	assert.Equal(t, MethodPearson, res.Method)
	assert.Equal(t, []string{"a", "b", "noise"}, res.Columns)
	require.NotEmpty(t, res.HighCorrelations)
	top := res.HighCorrelations[0]
	assert.Equal(t, "a", top.Variable1)
	assert.Equal(t, "b", top.Variable2)
	assert.InDelta(t, 1.0, top.Correlation, 1e-9)
	assert.InDelta(t, 1.0, res.Summary.MaxCorrelation, 1e-9)

	// Matrix is symmetric with a unit diagonal.
	for i := range res.Matrix {
		assert.Equal(t, 1.0, res.Matrix[i][i])
		for j := range res.Matrix {
			assert.Equal(t, res.Matrix[i][j], res.Matrix[j][i])
		}
	}
}

func TestCorrelationsPairsSortedByAbsValue(t *testing.T) {
	n := 40
	a := make([]float64, n)
	b := make([]float64, n)
	c := make([]float64, n)
	rnd := rand.New(rand.NewSource(9))
	for i := range a {
		a[i] = float64(i)
		b[i] = -float64(i) // perfect negative with a
		c[i] = float64(i) + rnd.Float64()*8
	}
	an := setupAnalyzer(t, numCol(t, "a", a...), numCol(t, "b", b...), numCol(t, "c", c...))
	res, err := an.Correlations(MethodSpearman)
	require.NoError(t, err)
	for i := 1; i < len(res.HighCorrelations); i++ {
		prev := res.HighCorrelations[i-1].Correlation
		cur := res.HighCorrelations[i].Correlation
		assert.GreaterOrEqual(t, abs(prev), abs(cur))
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func TestCorrelationsErrors(t *testing.T) {
	an := setupAnalyzer(t, numCol(t, "only", 1, 2, 3), strCol(t, "s", "a", "b", "c"))
	_, err := an.Correlations(MethodPearson)
	assert.ErrorIs(t, err, ErrTooFewNumeric)

	an2 := setupAnalyzer(t, numCol(t, "a", 1, 2), numCol(t, "b", 2, 4))
	_, err = an2.Correlations("cosine")
	assert.ErrorIs(t, err, ErrUnknownMethod)
}

func TestFeatureImportanceRegression(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	n := 120
	signal := make([]float64, n)
	noise := make([]float64, n)
	target := make([]float64, n)
	for i := range signal {
		signal[i] = rnd.Float64() * 10
		noise[i] = rnd.Float64()
		target[i] = 4*signal[i] + 2
	}

	an := setupAnalyzer(t,
		numCol(t, "signal", signal...),
		numCol(t, "noise", noise...),
		numCol(t, "target", target...),
	)
	res, err := an.FeatureImportance("target", ProblemAuto)
	require.NoError(t, err)

	assert.Equal(t, ProblemRegression, res.ProblemType)
	require.Len(t, res.Importance, 2)
	assert.Equal(t, "signal", res.Importance[0].Feature)
	assert.Equal(t, "signal", res.MutualInformation[0].Feature)
	assert.Equal(t, "signal", res.TopFeatures[0])
	assert.Greater(t, res.ModelScore, 0.9)
}

func TestFeatureImportanceClassificationAuto(t *testing.T) {
	rnd := rand.New(rand.NewSource(6))
	n := 100
	x := make([]float64, n)
	labels := make([]string, n)
	for i := range x {
		x[i] = rnd.Float64() * 10
		if x[i] > 5 {
			labels[i] = "high"
		} else {
			labels[i] = "low"
		}
	}
	an := setupAnalyzer(t, numCol(t, "x", x...), strCol(t, "class", labels...))
	res, err := an.FeatureImportance("class", ProblemAuto)
	require.NoError(t, err)
	assert.Equal(t, ProblemClassification, res.ProblemType)
	assert.Greater(t, res.ModelScore, 0.9)
}

func TestFeatureImportanceDeterministic(t *testing.T) {
	rnd := rand.New(rand.NewSource(8))
	n := 80
	a := make([]float64, n)
	b := make([]float64, n)
	y := make([]float64, n)
	for i := range a {
		a[i] = rnd.Float64()
		b[i] = rnd.Float64()
		y[i] = a[i] + 0.3*b[i] + rnd.Float64()*0.01
	}
	an := setupAnalyzer(t, numCol(t, "a", a...), numCol(t, "b", b...), numCol(t, "y", y...))

	first, err := an.FeatureImportance("y", ProblemRegression)
	require.NoError(t, err)
	second, err := an.FeatureImportance("y", ProblemRegression)
	require.NoError(t, err)
	assert.Equal(t, first.Importance, second.Importance)
	assert.Equal(t, first.ModelScore, second.ModelScore)
}

func TestFeatureImportanceErrors(t *testing.T) {
	an := setupAnalyzer(t, numCol(t, "y", 1, 2, 3), strCol(t, "s", "a", "b", "c"))
	_, err := an.FeatureImportance("missing", ProblemAuto)
	assert.ErrorIs(t, err, dataset.ErrColumnNotFound)

	_, err = an.FeatureImportance("y", ProblemAuto)
	assert.ErrorIs(t, err, ErrNoFeatures)

	_, err = an.FeatureImportance("y", "clustering")
	assert.ErrorIs(t, err, ErrUnknownMethod)
}

func TestQualityAssessmentCompleteness(t *testing.T) {
	cells := []dataset.Value{dataset.Num(1), dataset.Missing(), dataset.Num(3), dataset.Num(4)}
	col, err := dataset.NewColumn("x", dataset.TypeNumeric, cells)
	require.NoError(t, err)

	an := setupAnalyzer(t, col, numCol(t, "y", 1, 2, 3, 4))
	report, err := an.QualityAssessment()
	require.NoError(t, err)

	assert.Equal(t, 8, report.Completeness.TotalCells)
	assert.Equal(t, 1, report.Completeness.MissingCells)
	assert.InDelta(t, 87.5, report.Completeness.Percentage, 1e-9)
	assert.InDelta(t, 87.5, report.OverallScore, 1e-9)
}

func TestQualityAssessmentValidityNegativeAge(t *testing.T) {
	an := setupAnalyzer(t, numCol(t, "age", 30, -4, 25, 41))
	report, err := an.QualityAssessment()
	require.NoError(t, err)

	require.Len(t, report.Validity.Details, 1)
	issue := report.Validity.Details[0]
	assert.Equal(t, "age", issue.Column)
	assert.Contains(t, issue.Issues, "1 negative values")
	// One validity issue costs 3 points off a fully complete table.
	assert.InDelta(t, 97.0, report.OverallScore, 1e-9)
}

func TestQualityAssessmentConsistencySpellings(t *testing.T) {
	an := setupAnalyzer(t, strCol(t, "city",
		"new york", "New York", "york new", "boston", "boston"))
	report, err := an.QualityAssessment()
	require.NoError(t, err)

	// "new york" and "York New" fold to distinct strings whose token
	// sets are identical, so the pair is flagged.
	require.Len(t, report.Consistency.Details, 1)
	detail := report.Consistency.Details[0]
	assert.Equal(t, "city", detail.Column)
	require.NotEmpty(t, detail.SimilarValues)
}

func TestQualityAssessmentLikelyIdentifier(t *testing.T) {
	n := 150
	ids := make([]float64, n)
	for i := range ids {
		ids[i] = float64(i)
	}
	an := setupAnalyzer(t, numCol(t, "user_id", ids...))
	report, err := an.QualityAssessment()
	require.NoError(t, err)
	assert.True(t, report.Uniqueness["user_id"].LikelyIdentifier)
}

func TestQualityAssessmentScoreClampedAtZero(t *testing.T) {
	rows := 20
	mostlyMissing := func(name string, dtype dataset.DType, present ...dataset.Value) *dataset.Column {
		cells := make([]dataset.Value, rows)
		for i := range cells {
			cells[i] = dataset.Missing()
		}
		copy(cells, present)
		col, err := dataset.NewColumn(name, dtype, cells)
		require.NoError(t, err)
		return col
	}

	city := mostlyMissing("city", dataset.TypeString, dataset.Str("new york"), dataset.Str("york new"))
	age := mostlyMissing("age", dataset.TypeNumeric, dataset.Num(-5))
	price := mostlyMissing("price", dataset.TypeNumeric, dataset.Num(-10))

	an := setupAnalyzer(t, city, age, price)
	report, err := an.QualityAssessment()
	require.NoError(t, err)

	// 4 of 60 cells present, plus a consistency issue and two validity
	// issues: the raw score is negative and must clamp to zero.
	assert.InDelta(t, 100.0*4/60, report.Completeness.Percentage, 1e-9)
	require.GreaterOrEqual(t, report.Consistency.IssuesFound, 1)
	require.GreaterOrEqual(t, report.Validity.IssuesFound, 2)
	assert.Equal(t, 0.0, report.OverallScore)
}

func TestInsights(t *testing.T) {
	cells := []dataset.Value{dataset.Num(1), dataset.Missing(), dataset.Num(1), dataset.Num(1)}
	col, err := dataset.NewColumn("x", dataset.TypeNumeric, cells)
	require.NoError(t, err)
	an := setupAnalyzer(t, col, strCol(t, "cat", "a", "b", "a", "b"))

	report, err := an.Insights()
	require.NoError(t, err)
	assert.False(t, report.GeneratedAt.IsZero())
	assert.Contains(t, report.KeyInsights, "Dataset contains 4 rows and 2 columns")
	assert.Contains(t, report.KeyInsights, "Data mix: 1 numeric and 1 categorical columns")
	assert.Contains(t, report.Recommendations, "Consider handling missing values before analysis")
	assert.Contains(t, report.Recommendations, "Consider creating dummy variables for categorical data")
}

func TestStatisticalSummary(t *testing.T) {
	an := setupAnalyzer(t,
		numCol(t, "v", 1, 2, 3, 4, 5),
		strCol(t, "s", "x", "x", "y"),
	)
	report, err := an.StatisticalSummary()
	require.NoError(t, err)

	num := report.Numeric["v"]
	assert.Equal(t, 5, num.Count)
	assert.Equal(t, 3.0, num.Mean)
	assert.Equal(t, 2.0, num.Q25)
	assert.Equal(t, 4.0, num.Q75)

	cat := report.Categorical["s"]
	assert.Equal(t, 2, cat.UniqueValues)
	assert.Equal(t, "x", cat.TopValue)
	assert.Equal(t, 2, cat.TopValueFrequency)

	shape, ok := report.Distribution["v"]
	require.True(t, ok)
	assert.Contains(t, shape.Label, "approximately symmetric")
}

func TestClassifyDistribution(t *testing.T) {
	tests := []struct {
		skew, kurt float64
		want       string
	}{
		{0, 0, "approximately symmetric, mesokurtic (normal-like)"},
		{2, 3, "right-skewed, leptokurtic (peaked)"},
		{-2, -2, "left-skewed, platykurtic (flat)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, classifyDistribution(tt.skew, tt.kurt))
	}
}
