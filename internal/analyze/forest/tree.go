package forest

import (
	"math"
	"math/rand"
	"sort"
)

type node struct {
	leaf      bool
	feature   int
	threshold float64
	left      *node
	right     *node
	value     float64
}

// tree is a single CART estimator. decrease accumulates the weighted
// impurity decrease contributed by each feature across all splits.
type tree struct {
	root     *node
	decrease []float64
}

type pair struct {
	v float64
	i int
}

func fitTree(X [][]float64, y []float64, idx []int, task Task, cfg Config, rnd *rand.Rand) *tree {
	p := len(X[0])
	t := &tree{decrease: make([]float64, p)}
	t.root = t.build(X, y, idx, 0, len(idx), task, cfg, rnd)
	return t
}

func (t *tree) build(X [][]float64, y []float64, idx []int, depth, nTotal int, task Task, cfg Config, rnd *rand.Rand) *node {
	imp := impurity(y, idx, task)
	if len(idx) < cfg.MinSamplesSplit || imp == 0 || (cfg.MaxDepth > 0 && depth >= cfg.MaxDepth) {
		return &node{leaf: true, value: leafValue(y, idx, task)}
	}

	p := len(X[0])
	feats := sampleFeatures(p, task, rnd)

	best := splitResult{feature: -1}
	for _, f := range feats {
		if r := bestSplitForFeature(X, y, idx, f, imp, task, cfg); r.gain > best.gain {
			best = r
		}
	}
	if best.feature == -1 || best.gain <= 0 {
		return &node{leaf: true, value: leafValue(y, idx, task)}
	}

	t.decrease[best.feature] += float64(len(idx)) / float64(nTotal) * best.gain

	return &node{
		feature:   best.feature,
		threshold: best.threshold,
		left:      t.build(X, y, best.leftIdx, depth+1, nTotal, task, cfg, rnd),
		right:     t.build(X, y, best.rightIdx, depth+1, nTotal, task, cfg, rnd),
	}
}

type splitResult struct {
	gain      float64
	feature   int
	threshold float64
	leftIdx   []int
	rightIdx  []int
}

// bestSplitForFeature sorts the samples by the feature value and scans
// the midpoints between adjacent distinct values.
func bestSplitForFeature(X [][]float64, y []float64, idx []int, f int, parentImp float64, task Task, cfg Config) splitResult {
	best := splitResult{feature: -1}

	pairs := make([]pair, len(idx))
	for i, ii := range idx {
		pairs[i] = pair{X[ii][f], ii}
	}
	sort.Slice(pairs, func(a, b int) bool { return pairs[a].v < pairs[b].v })

	n := len(pairs)
	for s := 1; s < n; s++ {
		if pairs[s].v == pairs[s-1].v {
			continue
		}
		if s < cfg.MinSamplesLeaf || n-s < cfg.MinSamplesLeaf {
			continue
		}
		left := indices(pairs[:s])
		right := indices(pairs[s:])
		weighted := float64(s)/float64(n)*impurity(y, left, task) +
			float64(n-s)/float64(n)*impurity(y, right, task)
		gain := parentImp - weighted
		if gain > best.gain {
			best = splitResult{
				gain:      gain,
				feature:   f,
				threshold: (pairs[s-1].v + pairs[s].v) / 2,
				leftIdx:   left,
				rightIdx:  right,
			}
		}
	}
	return best
}

// sampleFeatures picks the candidate features for a split: sqrt(p) for
// classification, p/3 for regression, at least one either way.
func sampleFeatures(p int, task Task, rnd *rand.Rand) []int {
	k := p
	if task == TaskClassification {
		k = int(math.Sqrt(float64(p)))
	} else {
		k = p / 3
	}
	if k < 1 {
		k = 1
	}
	feats := make([]int, p)
	for j := range feats {
		feats[j] = j
	}
	if k >= p {
		return feats
	}
	for i := 0; i < k; i++ {
		j := i + rnd.Intn(p-i)
		feats[i], feats[j] = feats[j], feats[i]
	}
	return feats[:k]
}

func indices(pairs []pair) []int {
	out := make([]int, len(pairs))
	for i, p := range pairs {
		out[i] = p.i
	}
	return out
}

func impurity(y []float64, idx []int, task Task) float64 {
	if task == TaskClassification {
		return gini(y, idx)
	}
	return variance(y, idx)
}

func gini(y []float64, idx []int) float64 {
	counts := make(map[float64]int, 4)
	for _, i := range idx {
		counts[y[i]]++
	}
	n := float64(len(idx))
	if n == 0 {
		return 0
	}
	res := 0.0
	for _, c := range counts {
		p := float64(c) / n
		res += p * (1 - p)
	}
	return res
}

func variance(y []float64, idx []int) float64 {
	n := float64(len(idx))
	if n == 0 {
		return 0
	}
	mean := 0.0
	for _, i := range idx {
		mean += y[i]
	}
	mean /= n
	res := 0.0
	for _, i := range idx {
		d := y[i] - mean
		res += d * d
	}
	return res / n
}

// leafValue is the mean target for regression and the majority class
// for classification. Class ties break toward the smaller class code so
// prediction stays deterministic.
func leafValue(y []float64, idx []int, task Task) float64 {
	if task == TaskRegression {
		mean := 0.0
		for _, i := range idx {
			mean += y[i]
		}
		return mean / float64(len(idx))
	}
	counts := make(map[float64]int, 4)
	for _, i := range idx {
		counts[y[i]]++
	}
	best, bestN := math.Inf(1), -1
	for cls, c := range counts {
		if c > bestN || (c == bestN && cls < best) {
			best, bestN = cls, c
		}
	}
	return best
}

func (t *tree) predict(x []float64) float64 {
	n := t.root
	for !n.leaf {
		if x[n.feature] <= n.threshold {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n.value
}
