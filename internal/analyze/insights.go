package analyze

import (
	"fmt"
	"math"
	"time"

	"github.com/chandrashekharb369/Data-cleaning-tool/internal/stats"
	"github.com/chandrashekharb369/Data-cleaning-tool/internal/store"
)

// outlierShareThreshold is the fraction of rows that must exceed a
// z-score of 3 before a column is called outlier-heavy.
const outlierShareThreshold = 0.05

type InsightReport struct {
	KeyInsights     []string  `json:"key_insights"`
	Recommendations []string  `json:"recommendations"`
	GeneratedAt     time.Time `json:"timestamp"`
}

// Insights renders a heuristic plain-language readout of the table plus
// the recommendations those same heuristics trigger.
func (a *Analyzer) Insights() (InsightReport, error) {
	t, err := a.store.Snapshot()
	if err != nil {
		return InsightReport{}, err
	}
	meta := a.store.Metadata()

	report := InsightReport{GeneratedAt: time.Now()}
	add := func(format string, args ...any) {
		report.KeyInsights = append(report.KeyInsights, fmt.Sprintf(format, args...))
	}
	recommend := func(msg string) {
		report.Recommendations = append(report.Recommendations, msg)
	}

	add("Dataset contains %d rows and %d columns", meta.Rows, meta.Columns)

	if worst, count := worstMissing(meta); count > 0 {
		pct := float64(count) / float64(meta.Rows) * 100
		add("Column %q has the most missing values (%.1f%%)", worst, pct)
		recommend("Consider handling missing values before analysis")
	}

	if meta.Duplicates > 0 {
		pct := float64(meta.Duplicates) / float64(meta.Rows) * 100
		add("Found %d duplicate rows (%.1f%%)", meta.Duplicates, pct)
		recommend("Remove duplicate rows to improve data quality")
	}

	add("Data mix: %d numeric and %d categorical columns",
		len(meta.NumericColumns), len(meta.CategoricalColumns))

	if corr, err := a.Correlations(MethodPearson); err == nil && len(corr.HighCorrelations) > 0 {
		top := corr.HighCorrelations[0]
		add("Highest correlation: %s and %s (%.3f)", top.Variable1, top.Variable2, top.Correlation)
	}

	add("Dataset memory usage: %s", store.FormatBytes(meta.MemoryBytes))

	if len(meta.CategoricalColumns) > 0 {
		recommend("Consider creating dummy variables for categorical data")
	}

	for _, name := range meta.NumericColumns {
		col, ok := t.Column(name)
		if !ok {
			continue
		}
		xs := col.Floats()
		mean := stats.Mean(xs)
		std := stats.Std(xs)
		if std == 0 {
			continue
		}
		flagged := 0
		for _, v := range xs {
			if math.Abs(v-mean)/std > 3 {
				flagged++
			}
		}
		if float64(flagged) > float64(meta.Rows)*outlierShareThreshold {
			recommend(fmt.Sprintf("Column %q has many potential outliers - consider outlier treatment", name))
			break
		}
	}

	return report, nil
}

func worstMissing(meta store.Metadata) (string, int) {
	worst, count := "", 0
	for _, name := range colOrder(meta) {
		if c := meta.MissingValues[name]; c > count {
			worst, count = name, c
		}
	}
	return worst, count
}

// colOrder returns a stable iteration order over the metadata's columns
// so the worst-missing tie-break is deterministic.
func colOrder(meta store.Metadata) []string {
	out := make([]string, 0, len(meta.NumericColumns)+len(meta.CategoricalColumns))
	out = append(out, meta.NumericColumns...)
	out = append(out, meta.CategoricalColumns...)
	return out
}
