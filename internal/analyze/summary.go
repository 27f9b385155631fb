package analyze

import (
	"github.com/chandrashekharb369/Data-cleaning-tool/internal/stats"
	"github.com/chandrashekharb369/Data-cleaning-tool/pkg/dataset"
)

type NumericDescribe struct {
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	Std   float64 `json:"std"`
	Min   float64 `json:"min"`
	Q25   float64 `json:"q25"`
	Q50   float64 `json:"q50"`
	Q75   float64 `json:"q75"`
	Max   float64 `json:"max"`
}

type CategoricalDescribe struct {
	UniqueValues      int                  `json:"unique_values"`
	TopValue          string               `json:"top_value"`
	TopValueFrequency int                  `json:"top_value_frequency"`
	ValueCounts       []dataset.ValueCount `json:"value_counts"`
}

type DistributionShape struct {
	Skewness float64 `json:"skewness"`
	Kurtosis float64 `json:"kurtosis"`
	Label    string  `json:"distribution_type"`
}

type StatisticalReport struct {
	Numeric      map[string]NumericDescribe     `json:"numeric_statistics"`
	Categorical  map[string]CategoricalDescribe `json:"categorical_statistics"`
	Distribution map[string]DistributionShape   `json:"distribution_analysis"`
}

// StatisticalSummary describes every column: quantile block for numeric,
// top-10 value ranking for categorical, and a qualitative distribution
// label for each numeric column with nonzero spread.
func (a *Analyzer) StatisticalSummary() (StatisticalReport, error) {
	t, err := a.store.Snapshot()
	if err != nil {
		return StatisticalReport{}, err
	}

	report := StatisticalReport{
		Numeric:      make(map[string]NumericDescribe),
		Categorical:  make(map[string]CategoricalDescribe),
		Distribution: make(map[string]DistributionShape),
	}
	for _, col := range t.Columns() {
		if !col.Type.IsNumeric() {
			counts := col.ValueCounts()
			desc := CategoricalDescribe{UniqueValues: col.UniqueCount()}
			if len(counts) > 0 {
				desc.TopValue = counts[0].Value
				desc.TopValueFrequency = counts[0].Count
			}
			if len(counts) > 10 {
				counts = counts[:10]
			}
			desc.ValueCounts = counts
			report.Categorical[col.Name] = desc
			continue
		}

		xs := col.Floats()
		report.Numeric[col.Name] = NumericDescribe{
			Count: len(xs),
			Mean:  stats.Mean(xs),
			Std:   stats.Std(xs),
			Min:   stats.Min(xs),
			Q25:   stats.Quantile(0.25, xs),
			Q50:   stats.Quantile(0.5, xs),
			Q75:   stats.Quantile(0.75, xs),
			Max:   stats.Max(xs),
		}
		if stats.Std(xs) > 0 {
			skew := stats.Skew(xs)
			kurt := stats.ExKurtosis(xs)
			report.Distribution[col.Name] = DistributionShape{
				Skewness: skew,
				Kurtosis: kurt,
				Label:    classifyDistribution(skew, kurt),
			}
		}
	}
	return report, nil
}

// classifyDistribution labels a distribution by skewness (cutoff 0.5)
// and excess kurtosis (cutoff 1).
func classifyDistribution(skew, kurt float64) string {
	var skewLabel string
	switch {
	case skew > -0.5 && skew < 0.5:
		skewLabel = "approximately symmetric"
	case skew >= 0.5:
		skewLabel = "right-skewed"
	default:
		skewLabel = "left-skewed"
	}
	var kurtLabel string
	switch {
	case kurt < -1:
		kurtLabel = "platykurtic (flat)"
	case kurt > 1:
		kurtLabel = "leptokurtic (peaked)"
	default:
		kurtLabel = "mesokurtic (normal-like)"
	}
	return skewLabel + ", " + kurtLabel
}
