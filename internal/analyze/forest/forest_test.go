package forest

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linearData(n int) ([][]float64, []float64) {
	rnd := rand.New(rand.NewSource(7))
	X := make([][]float64, n)
	y := make([]float64, n)
	for i := range X {
		a := rnd.Float64() * 10
		noise := rnd.Float64() // pure noise feature
		X[i] = []float64{a, noise}
		y[i] = 3*a + 1
	}
	return X, y
}

func classData(n int) ([][]float64, []float64) {
	rnd := rand.New(rand.NewSource(11))
	X := make([][]float64, n)
	y := make([]float64, n)
	for i := range X {
		a := rnd.Float64() * 10
		noise := rnd.Float64()
		X[i] = []float64{a, noise}
		if a > 5 {
			y[i] = 1
		}
	}
	return X, y
}

func TestRegressionFitsLinearSignal(t *testing.T) {
	X, y := linearData(200)
	f := New(TaskRegression, DefaultConfig(42))
	require.NoError(t, f.Fit(X, y))

	score, err := f.Score(X, y)
	require.NoError(t, err)
	assert.Greater(t, score, 0.9)

	imp, err := f.Importances()
	require.NoError(t, err)
	require.Len(t, imp, 2)
	assert.Greater(t, imp[0], imp[1])
	assert.InDelta(t, 1.0, imp[0]+imp[1], 1e-9)
}

func TestClassificationSeparatesClasses(t *testing.T) {
	X, y := classData(200)
	f := New(TaskClassification, DefaultConfig(42))
	require.NoError(t, f.Fit(X, y))

	score, err := f.Score(X, y)
	require.NoError(t, err)
	assert.Greater(t, score, 0.9)

	imp, err := f.Importances()
	require.NoError(t, err)
	assert.Greater(t, imp[0], imp[1])
}

func TestDeterministicGivenSeed(t *testing.T) {
	X, y := linearData(100)

	fit := func() ([]float64, []float64) {
		f := New(TaskRegression, DefaultConfig(42))
		require.NoError(t, f.Fit(X, y))
		imp, err := f.Importances()
		require.NoError(t, err)
		pred, err := f.Predict(X[:5])
		require.NoError(t, err)
		return imp, pred
	}

	imp1, pred1 := fit()
	imp2, pred2 := fit()
	assert.Equal(t, imp1, imp2)
	assert.Equal(t, pred1, pred2)
}

func TestFitErrors(t *testing.T) {
	f := New(TaskRegression, DefaultConfig(1))
	assert.ErrorIs(t, f.Fit(nil, nil), ErrNoSamples)
	assert.ErrorIs(t, f.Fit([][]float64{{1}}, []float64{1, 2}), ErrDimMismatch)

	_, err := f.Importances()
	assert.ErrorIs(t, err, ErrNotFitted)
	_, err = f.Predict([][]float64{{1}})
	assert.ErrorIs(t, err, ErrNotFitted)
}

func TestConstantTargetImportancesAllZero(t *testing.T) {
	X := [][]float64{{1, 2}, {3, 4}, {5, 6}, {7, 8}}
	y := []float64{5, 5, 5, 5}
	f := New(TaskRegression, DefaultConfig(42))
	require.NoError(t, f.Fit(X, y))
	imp, err := f.Importances()
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, imp)
}
