package analyze

import (
	"fmt"
	"math"
	"sort"

	"github.com/chandrashekharb369/Data-cleaning-tool/internal/stats"
	"github.com/chandrashekharb369/Data-cleaning-tool/pkg/dataset"
)

const (
	MethodPearson  = "pearson"
	MethodSpearman = "spearman"
	MethodKendall  = "kendall"

	// highCorrThreshold marks a pair as notable.
	highCorrThreshold = 0.7
)

type CorrelationPair struct {
	Variable1   string  `json:"variable1"`
	Variable2   string  `json:"variable2"`
	Correlation float64 `json:"correlation"`
}

type CorrelationSummary struct {
	TotalPairs     int     `json:"total_pairs"`
	MaxCorrelation float64 `json:"max_correlation"`
}

type CorrelationResult struct {
	Method           string             `json:"method"`
	Columns          []string           `json:"columns"`
	Matrix           [][]float64        `json:"matrix"`
	HighCorrelations []CorrelationPair  `json:"high_correlations"`
	Summary          CorrelationSummary `json:"summary"`
}

// Correlations computes the pairwise correlation matrix over the numeric
// columns. Each pair uses only rows where both cells are present. Pairs
// with |r| above the threshold are collected and sorted descending by
// |r|, ties kept in matrix order.
func (a *Analyzer) Correlations(method string) (CorrelationResult, error) {
	if method != MethodPearson && method != MethodSpearman && method != MethodKendall {
		return CorrelationResult{}, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
	t, err := a.store.Snapshot()
	if err != nil {
		return CorrelationResult{}, err
	}
	names := t.NumericColumns()
	if len(names) < 2 {
		return CorrelationResult{}, ErrTooFewNumeric
	}

	cols := make([]*dataset.Column, len(names))
	for i, name := range names {
		cols[i], _ = t.Column(name)
	}

	matrix := make([][]float64, len(cols))
	for i := range matrix {
		matrix[i] = make([]float64, len(cols))
		matrix[i][i] = 1
	}
	var pairs []CorrelationPair
	for i := 0; i < len(cols); i++ {
		for j := i + 1; j < len(cols); j++ {
			r := pairwise(cols[i], cols[j], method)
			matrix[i][j] = r
			matrix[j][i] = r
			if math.Abs(r) > highCorrThreshold {
				pairs = append(pairs, CorrelationPair{
					Variable1:   names[i],
					Variable2:   names[j],
					Correlation: r,
				})
			}
		}
	}
	sort.SliceStable(pairs, func(a, b int) bool {
		return math.Abs(pairs[a].Correlation) > math.Abs(pairs[b].Correlation)
	})

	summary := CorrelationSummary{TotalPairs: len(pairs)}
	if len(pairs) > 0 {
		summary.MaxCorrelation = math.Abs(pairs[0].Correlation)
	}
	return CorrelationResult{
		Method:           method,
		Columns:          names,
		Matrix:           matrix,
		HighCorrelations: pairs,
		Summary:          summary,
	}, nil
}

// pairwise correlates two columns over their jointly present rows.
func pairwise(a, b *dataset.Column, method string) float64 {
	va, pa := a.FloatsMask()
	vb, pb := b.FloatsMask()
	xs := make([]float64, 0, len(va))
	ys := make([]float64, 0, len(vb))
	for i := range va {
		if pa[i] && pb[i] {
			xs = append(xs, va[i])
			ys = append(ys, vb[i])
		}
	}
	if len(xs) < 2 {
		return 0
	}
	switch method {
	case MethodSpearman:
		return stats.Spearman(xs, ys)
	case MethodKendall:
		return stats.Kendall(xs, ys)
	default:
		return stats.Pearson(xs, ys)
	}
}
