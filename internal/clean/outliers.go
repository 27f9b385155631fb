package clean

import (
	"fmt"
	"math"

	"github.com/chandrashekharb369/Data-cleaning-tool/internal/stats"
)

// Outlier detection methods.
const (
	OutlierIQR    = "iqr"
	OutlierZScore = "zscore"
)

// zScoreThreshold flags values more than this many sample standard
// deviations from the mean.
const zScoreThreshold = 3.0

// OutlierResult reports rows removed per column.
type OutlierResult struct {
	Method       string         `json:"method"`
	Removed      map[string]int `json:"removed"`
	TotalRemoved int            `json:"total_removed"`
}

// HandleOutliers removes rows whose value in each processed column falls
// outside the method's bounds. Columns are processed sequentially in
// table order and bounds are recomputed from the shrinking table, so
// removals from earlier columns affect later bounds. Missing cells never
// mark a row for removal. A nil columns slice means all numeric columns;
// requested non-numeric columns are ignored.
func (c *Cleaner) HandleOutliers(method string, columns []string) (OutlierResult, error) {
	if method != OutlierIQR && method != OutlierZScore {
		return OutlierResult{}, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
	table, err := c.store.Snapshot()
	if err != nil {
		return OutlierResult{}, err
	}

	targets := columns
	if targets == nil {
		targets = table.NumericColumns()
	} else {
		numeric := make(map[string]bool)
		for _, n := range table.NumericColumns() {
			numeric[n] = true
		}
		filtered := make([]string, 0, len(targets))
		for _, n := range targets {
			if numeric[n] {
				filtered = append(filtered, n)
			}
		}
		targets = filtered
	}

	res := OutlierResult{Method: method, Removed: make(map[string]int)}
	for _, name := range targets {
		col, ok := table.Column(name)
		if !ok {
			continue
		}
		xs := col.Floats()
		if len(xs) == 0 {
			res.Removed[name] = 0
			continue
		}

		var lower, upper float64
		switch method {
		case OutlierIQR:
			q1 := stats.Quantile(0.25, xs)
			q3 := stats.Quantile(0.75, xs)
			iqr := q3 - q1
			lower = q1 - 1.5*iqr
			upper = q3 + 1.5*iqr
		case OutlierZScore:
			std := stats.Std(xs)
			if std == 0 {
				res.Removed[name] = 0
				continue
			}
			mean := stats.Mean(xs)
			lower = mean - zScoreThreshold*std
			upper = mean + zScoreThreshold*std
		}

		before := table.NumRows()
		keep := make([]bool, before)
		for i, v := range col.Values {
			f, present := v.Float()
			// Values exactly on a bound are not outliers.
			keep[i] = !present || (f >= lower && f <= upper && !math.IsInf(f, 0))
		}
		table = table.FilterRows(keep)
		res.Removed[name] = before - table.NumRows()
		res.TotalRemoved += res.Removed[name]
	}

	c.store.Swap(table, fmt.Sprintf("Removed outliers using %s method: %v", method, res.Removed))
	return res, nil
}
