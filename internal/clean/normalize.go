package clean

import (
	"fmt"

	"github.com/chandrashekharb369/Data-cleaning-tool/internal/stats"
	"github.com/chandrashekharb369/Data-cleaning-tool/pkg/dataset"
)

// Normalization methods.
const (
	ScaleStandard = "standard"
	ScaleMinMax   = "minmax"
)

// NormalizeResult reports which columns were rescaled.
type NormalizeResult struct {
	Method  string            `json:"method"`
	Scaled  []string          `json:"scaled"`
	Skipped map[string]string `json:"skipped,omitempty"`
}

// Normalize rescales numeric columns: standard maps to zero mean and
// unit population deviation, minmax to [0, 1]. Columns with zero deviation
// or zero range are left unscaled with a warning instead of dividing by
// zero. Missing cells stay missing. A nil columns slice means all
// numeric columns.
func (c *Cleaner) Normalize(columns []string, method string) (NormalizeResult, error) {
	if method != ScaleStandard && method != ScaleMinMax {
		return NormalizeResult{}, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
	table, err := c.store.Snapshot()
	if err != nil {
		return NormalizeResult{}, err
	}

	numeric := make(map[string]bool)
	for _, n := range table.NumericColumns() {
		numeric[n] = true
	}
	targets := columns
	if targets == nil {
		targets = table.NumericColumns()
	}

	res := NormalizeResult{Method: method, Skipped: make(map[string]string)}
	for _, name := range targets {
		if !numeric[name] {
			res.Skipped[name] = "not a numeric column"
			continue
		}
		col, _ := table.Column(name)
		xs := col.Floats()
		if len(xs) == 0 {
			res.Skipped[name] = "column has no non-missing values"
			continue
		}

		var shift, scale float64
		switch method {
		case ScaleStandard:
			shift = stats.Mean(xs)
			scale = stats.PopStd(xs)
			if scale == 0 {
				res.Skipped[name] = "zero variance, left unscaled"
				c.store.Logger().WithField("column", name).Warn("standard scaling skipped: zero variance")
				continue
			}
		case ScaleMinMax:
			shift = stats.Min(xs)
			scale = stats.Max(xs) - shift
			if scale == 0 {
				res.Skipped[name] = "zero range, left unscaled"
				c.store.Logger().WithField("column", name).Warn("minmax scaling skipped: constant column")
				continue
			}
		}

		for i, v := range col.Values {
			if f, ok := v.Float(); ok {
				col.Values[i] = dataset.Num((f - shift) / scale)
			}
		}
		res.Scaled = append(res.Scaled, name)
	}

	c.store.Swap(table, fmt.Sprintf("Normalized columns using %s scaling: %v", method, res.Scaled))
	return res, nil
}
