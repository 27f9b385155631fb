package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuantileLinearInterpolation(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 100}
	assert.InDelta(t, 2.0, Quantile(0.25, xs), 1e-9)
	assert.InDelta(t, 3.0, Quantile(0.5, xs), 1e-9)
	assert.InDelta(t, 4.0, Quantile(0.75, xs), 1e-9)
}

func TestQuantileInterpolatesBetweenOrderStatistics(t *testing.T) {
	assert.InDelta(t, 2.0, Median([]float64{1, 2, 3}), 1e-9)
	assert.InDelta(t, 2.5, Median([]float64{1, 2, 3, 4}), 1e-9)
	assert.InDelta(t, 1.75, Quantile(0.25, []float64{1, 2, 3, 4}), 1e-9)
	assert.InDelta(t, 3.25, Quantile(0.75, []float64{1, 2, 3, 4}), 1e-9)
	assert.InDelta(t, 1.0, Quantile(0, []float64{1, 2, 3}), 1e-9)
	assert.InDelta(t, 3.0, Quantile(1, []float64{1, 2, 3}), 1e-9)
}

func TestQuantileDoesNotMutateInput(t *testing.T) {
	xs := []float64{3, 1, 2}
	Quantile(0.5, xs)
	assert.Equal(t, []float64{3, 1, 2}, xs)
}

func TestPearsonPerfectAntiCorrelation(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{10, 8, 6, 4, 2}
	assert.InDelta(t, -1.0, Pearson(x, y), 1e-9)
}

func TestPearsonConstantSeriesIsZero(t *testing.T) {
	x := []float64{1, 1, 1, 1}
	y := []float64{1, 2, 3, 4}
	assert.Equal(t, 0.0, Pearson(x, y))
}

func TestSpearmanMonotoneNonlinear(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{1, 4, 9, 16, 25}
	assert.InDelta(t, 1.0, Spearman(x, y), 1e-9)
}

func TestSpearmanHandlesTies(t *testing.T) {
	x := []float64{1, 2, 2, 3}
	y := []float64{1, 2, 2, 3}
	assert.InDelta(t, 1.0, Spearman(x, y), 1e-9)
}

func TestRanksAverageTies(t *testing.T) {
	got := ranks([]float64{10, 20, 20, 30})
	assert.Equal(t, []float64{1, 2.5, 2.5, 4}, got)
}

func TestKendallSign(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	y := []float64{4, 3, 2, 1}
	assert.InDelta(t, -1.0, Kendall(x, y), 1e-9)
}

func TestEmptyInputsAreZero(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 0.0, Std([]float64{5}))
	assert.Equal(t, 0.0, Quantile(0.5, nil))
	assert.Equal(t, 0.0, Skew([]float64{1, 1, 1, 1}))
}
