// Package forest implements a small random forest over dense float64
// matrices, used to rank features by how much they reduce impurity.
// Inputs must be finite; impute missing values before fitting.
package forest

import (
	"errors"
	"math"
	"math/rand"
	"sync"
)

// Task selects the split criterion and the prediction aggregate.
type Task int

const (
	TaskRegression Task = iota
	TaskClassification
)

var (
	ErrNoSamples   = errors.New("forest: no samples")
	ErrDimMismatch = errors.New("forest: feature and target lengths differ")
	ErrNotFitted   = errors.New("forest: not fitted")
)

type Config struct {
	Trees           int
	MaxDepth        int
	MinSamplesSplit int
	MinSamplesLeaf  int
	Seed            int64
}

// DefaultConfig mirrors the usual ensemble defaults: 100 trees, depth
// capped at 10 to keep fitting bounded on wide data.
func DefaultConfig(seed int64) Config {
	return Config{
		Trees:           100,
		MaxDepth:        10,
		MinSamplesSplit: 2,
		MinSamplesLeaf:  1,
		Seed:            seed,
	}
}

type Forest struct {
	cfg       Config
	task      Task
	trees     []*tree
	nFeatures int
}

func New(task Task, cfg Config) *Forest {
	if cfg.Trees <= 0 {
		cfg.Trees = 100
	}
	if cfg.MinSamplesSplit < 2 {
		cfg.MinSamplesSplit = 2
	}
	if cfg.MinSamplesLeaf < 1 {
		cfg.MinSamplesLeaf = 1
	}
	return &Forest{cfg: cfg, task: task}
}

// Fit trains every tree on a bootstrap sample of row indices. Each tree
// seeds its own source with Seed+index, so the fit is deterministic for
// a given seed regardless of goroutine scheduling.
func (f *Forest) Fit(X [][]float64, y []float64) error {
	if len(X) == 0 {
		return ErrNoSamples
	}
	if len(y) != len(X) {
		return ErrDimMismatch
	}
	n := len(X)
	f.nFeatures = len(X[0])
	f.trees = make([]*tree, f.cfg.Trees)

	var wg sync.WaitGroup
	for i := 0; i < f.cfg.Trees; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rnd := rand.New(rand.NewSource(f.cfg.Seed + int64(i)))
			sample := make([]int, n)
			for j := range sample {
				sample[j] = rnd.Intn(n)
			}
			f.trees[i] = fitTree(X, y, sample, f.task, f.cfg, rnd)
		}(i)
	}
	wg.Wait()
	return nil
}

// Predict returns the mean tree output for regression and the majority
// vote for classification.
func (f *Forest) Predict(X [][]float64) ([]float64, error) {
	if f.trees == nil {
		return nil, ErrNotFitted
	}
	out := make([]float64, len(X))
	for i, x := range X {
		if f.task == TaskRegression {
			sum := 0.0
			for _, t := range f.trees {
				sum += t.predict(x)
			}
			out[i] = sum / float64(len(f.trees))
			continue
		}
		votes := make(map[float64]int, 4)
		for _, t := range f.trees {
			votes[t.predict(x)]++
		}
		best, bestN := math.Inf(1), -1
		for cls, c := range votes {
			if c > bestN || (c == bestN && cls < best) {
				best, bestN = cls, c
			}
		}
		out[i] = best
	}
	return out, nil
}

// Importances averages each tree's per-feature impurity decrease and
// normalizes the result to sum to one. All zeros when no tree ever
// found a split.
func (f *Forest) Importances() ([]float64, error) {
	if f.trees == nil {
		return nil, ErrNotFitted
	}
	imp := make([]float64, f.nFeatures)
	for _, t := range f.trees {
		for j, d := range t.decrease {
			imp[j] += d
		}
	}
	total := 0.0
	for _, v := range imp {
		total += v
	}
	if total > 0 {
		for j := range imp {
			imp[j] /= total
		}
	}
	return imp, nil
}

// Score reports the training fit: R² for regression, accuracy for
// classification.
func (f *Forest) Score(X [][]float64, y []float64) (float64, error) {
	pred, err := f.Predict(X)
	if err != nil {
		return 0, err
	}
	if len(y) == 0 || len(pred) != len(y) {
		return 0, ErrDimMismatch
	}
	if f.task == TaskClassification {
		hits := 0
		for i := range y {
			if pred[i] == y[i] {
				hits++
			}
		}
		return float64(hits) / float64(len(y)), nil
	}
	mean := 0.0
	for _, v := range y {
		mean += v
	}
	mean /= float64(len(y))
	var ssRes, ssTot float64
	for i := range y {
		d := y[i] - pred[i]
		ssRes += d * d
		m := y[i] - mean
		ssTot += m * m
	}
	if ssTot == 0 {
		return 0, nil
	}
	return 1 - ssRes/ssTot, nil
}
