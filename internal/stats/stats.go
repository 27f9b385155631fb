// Package stats wraps the gonum statistics primitives used across the
// cleaning and analysis engines with the conventions the engines need:
// quantiles interpolate between order statistics at rank (n-1)*p,
// dispersion comes in sample (n-1) and population flavors, and empty
// input yields zero rather than NaN panics.
package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Mean returns the arithmetic mean, zero for empty input.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.Mean(xs, nil)
}

// Std returns the sample standard deviation, zero for fewer than two
// values.
func Std(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	return stat.StdDev(xs, nil)
}

// PopStd returns the population (n divisor) standard deviation, zero for
// empty input.
func PopStd(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.PopStdDev(xs, nil)
}

// Min returns the smallest value, zero for empty input.
func Min(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	m := xs[0]
	for _, v := range xs[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// Max returns the largest value, zero for empty input.
func Max(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	m := xs[0]
	for _, v := range xs[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Median returns the 50th percentile.
func Median(xs []float64) float64 { return Quantile(0.5, xs) }

// Quantile returns the p-quantile (0 <= p <= 1) with linear
// interpolation between order statistics at rank (n-1)*p, so
// Quantile(0.25, [1,2,3,4,100]) is 2 and Median([1,2,3]) is 2.
// gonum's stat.Quantile interpolates the ECDF instead and lands between
// order statistics at different positions. The input is copied, never
// mutated.
func Quantile(p float64, xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	h := float64(len(sorted)-1) * p
	lo := int(math.Floor(h))
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[lo+1]-sorted[lo])
}

// Skew returns the sample skewness, zero when undefined.
func Skew(xs []float64) float64 {
	if len(xs) < 3 || Std(xs) == 0 {
		return 0
	}
	return stat.Skew(xs, nil)
}

// ExKurtosis returns the sample excess kurtosis, zero when undefined.
func ExKurtosis(xs []float64) float64 {
	if len(xs) < 4 || Std(xs) == 0 {
		return 0
	}
	return stat.ExKurtosis(xs, nil)
}

// Pearson returns the Pearson correlation coefficient, zero when either
// side has no variance.
func Pearson(x, y []float64) float64 {
	if len(x) < 2 || len(x) != len(y) {
		return 0
	}
	r := stat.Correlation(x, y, nil)
	if math.IsNaN(r) {
		return 0
	}
	return r
}

// Kendall returns Kendall's tau rank correlation.
func Kendall(x, y []float64) float64 {
	if len(x) < 2 || len(x) != len(y) {
		return 0
	}
	r := stat.Kendall(x, y, nil)
	if math.IsNaN(r) {
		return 0
	}
	return r
}

// Spearman returns the Spearman rank correlation: Pearson over
// fractional ranks, with average ranks assigned to ties. gonum has no
// Spearman of its own.
func Spearman(x, y []float64) float64 {
	if len(x) < 2 || len(x) != len(y) {
		return 0
	}
	return Pearson(ranks(x), ranks(y))
}

// ranks assigns 1-based fractional ranks; tied values share the average
// of the ranks they span.
func ranks(xs []float64) []float64 {
	n := len(xs)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return xs[idx[a]] < xs[idx[b]] })

	out := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && xs[idx[j+1]] == xs[idx[i]] {
			j++
		}
		avg := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			out[idx[k]] = avg
		}
		i = j + 1
	}
	return out
}
