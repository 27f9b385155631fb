package clean

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/chandrashekharb369/Data-cleaning-tool/internal/ingest"
	"github.com/chandrashekharb369/Data-cleaning-tool/internal/stats"
	"github.com/chandrashekharb369/Data-cleaning-tool/pkg/dataset"
)

// Missing-value methods. Constant fills are spelled "constant:<value>".
const (
	MethodDrop         = "drop"
	MethodMean         = "mean"
	MethodMedian       = "median"
	MethodMode         = "mode"
	MethodForwardFill  = "forward_fill"
	MethodBackwardFill = "backward_fill"
	MethodKNN          = "knn"

	constantPrefix = "constant:"
)

// MissingResult reports which strategies ran and which were skipped.
type MissingResult struct {
	Applied     map[string]string `json:"applied"`
	Skipped     map[string]string `json:"skipped,omitempty"`
	RowsDropped int               `json:"rows_dropped"`
}

// HandleMissing applies a per-column strategy. Unknown methods and
// methods misapplied to the wrong column class are skipped with a reason
// rather than failing the whole operation. Columns are processed in
// table order.
func (c *Cleaner) HandleMissing(strategy map[string]string) (MissingResult, error) {
	table, err := c.store.Snapshot()
	if err != nil {
		return MissingResult{}, err
	}

	res := MissingResult{
		Applied: make(map[string]string),
		Skipped: make(map[string]string),
	}

	for _, name := range table.ColumnNames() {
		method, ok := strategy[name]
		if !ok {
			continue
		}
		col, _ := table.Column(name)

		switch {
		case method == MethodDrop:
			keep := make([]bool, col.Len())
			for i, v := range col.Values {
				keep[i] = !v.IsMissing()
			}
			before := table.NumRows()
			table = table.FilterRows(keep)
			res.RowsDropped += before - table.NumRows()
			res.Applied[name] = method

		case method == MethodMean:
			if !col.Type.IsNumeric() {
				res.Skipped[name] = "mean requires a numeric column"
				continue
			}
			fillNumeric(col, stats.Mean(col.Floats()))
			res.Applied[name] = method

		case method == MethodMedian:
			if !col.Type.IsNumeric() {
				res.Skipped[name] = "median requires a numeric column"
				continue
			}
			fillNumeric(col, stats.Median(col.Floats()))
			res.Applied[name] = method

		case method == MethodMode:
			mode, ok := col.Mode()
			if !ok {
				res.Skipped[name] = "column has no non-missing values"
				continue
			}
			fillValue(col, mode)
			res.Applied[name] = method

		case method == MethodForwardFill:
			forwardFill(col)
			res.Applied[name] = method

		case method == MethodBackwardFill:
			backwardFill(col)
			res.Applied[name] = method

		case strings.HasPrefix(method, constantPrefix):
			raw := strings.TrimPrefix(method, constantPrefix)
			v := ingest.ParseCell(raw, col.Type)
			if v.IsMissing() {
				res.Skipped[name] = fmt.Sprintf("constant %q does not parse as %s", raw, col.Type)
				continue
			}
			fillValue(col, v)
			res.Applied[name] = method

		case method == MethodKNN:
			if !col.Type.IsNumeric() {
				res.Skipped[name] = "knn requires a numeric column"
				continue
			}
			c.knnImpute(table, col)
			res.Applied[name] = method

		default:
			res.Skipped[name] = fmt.Sprintf("unknown method %q", method)
		}
	}

	c.store.Swap(table, fmt.Sprintf("Applied missing value strategies: %v", res.Applied))
	return res, nil
}

// fillNumeric replaces missing cells with a numeric fill.
func fillNumeric(col *dataset.Column, fill float64) {
	fillValue(col, dataset.Num(fill))
}

// fillValue replaces missing cells with a fixed value.
func fillValue(col *dataset.Column, fill dataset.Value) {
	for i, v := range col.Values {
		if v.IsMissing() {
			col.Values[i] = fill
		}
	}
}

// forwardFill propagates the nearest prior non-missing value. Leading
// missing cells stay missing.
func forwardFill(col *dataset.Column) {
	last := dataset.Missing()
	for i, v := range col.Values {
		if v.IsMissing() {
			col.Values[i] = last
		} else {
			last = v
		}
	}
}

// backwardFill propagates the nearest following non-missing value.
// Trailing missing cells stay missing.
func backwardFill(col *dataset.Column) {
	next := dataset.Missing()
	for i := len(col.Values) - 1; i >= 0; i-- {
		if col.Values[i].IsMissing() {
			col.Values[i] = next
		} else {
			next = col.Values[i]
		}
	}
}

// knnImpute estimates each missing cell of target from the k most
// similar rows, with similarity measured by Euclidean distance over the
// other numeric columns present in both rows. Rows with no comparable
// features fall back to the column mean.
func (c *Cleaner) knnImpute(table *dataset.Table, target *dataset.Column) {
	k := c.KNNNeighbors
	if k <= 0 {
		k = DefaultKNNNeighbors
	}

	features := make([]*dataset.Column, 0)
	for _, name := range table.NumericColumns() {
		if name == target.Name {
			continue
		}
		col, _ := table.Column(name)
		features = append(features, col)
	}
	mean := stats.Mean(target.Floats())

	type neighbor struct {
		dist  float64
		value float64
	}

	for i, v := range target.Values {
		if !v.IsMissing() {
			continue
		}
		var candidates []neighbor
		for j, other := range target.Values {
			if j == i {
				continue
			}
			val, ok := other.Float()
			if !ok {
				continue
			}
			dist, ok := rowDistance(features, i, j)
			if !ok {
				continue
			}
			candidates = append(candidates, neighbor{dist: dist, value: val})
		}
		if len(candidates) == 0 {
			if len(target.Floats()) > 0 {
				target.Values[i] = dataset.Num(mean)
			}
			continue
		}
		sort.Slice(candidates, func(a, b int) bool { return candidates[a].dist < candidates[b].dist })
		if len(candidates) > k {
			candidates = candidates[:k]
		}
		sum := 0.0
		for _, n := range candidates {
			sum += n.value
		}
		target.Values[i] = dataset.Num(sum / float64(len(candidates)))
	}
}

// rowDistance computes the Euclidean distance between rows a and b over
// the features present in both. ok is false when no feature is shared.
func rowDistance(features []*dataset.Column, a, b int) (float64, bool) {
	sum := 0.0
	shared := 0
	for _, f := range features {
		x, okA := f.Values[a].Float()
		y, okB := f.Values[b].Float()
		if !okA || !okB {
			continue
		}
		d := x - y
		sum += d * d
		shared++
	}
	if shared == 0 {
		return 0, false
	}
	return math.Sqrt(sum), true
}
