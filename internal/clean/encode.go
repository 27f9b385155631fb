package clean

import (
	"fmt"

	"github.com/chandrashekharb369/Data-cleaning-tool/pkg/dataset"
)

// EncodeResult reports the dummy-encoding pass.
type EncodeResult struct {
	Encoded   map[string][]string `json:"encoded"`
	Skipped   map[string]string   `json:"skipped,omitempty"`
	DropFirst bool                `json:"drop_first"`
}

// DummyEncode one-hot encodes categorical columns into 0/1 indicator
// columns named <source>_<category>, replacing each source column at its
// position. Categories are ordered by first appearance; with dropFirst
// the first category gets no indicator, avoiding collinearity. Missing
// source cells produce all-zero indicators. A nil columns slice means
// all categorical columns.
func (c *Cleaner) DummyEncode(columns []string, dropFirst bool) (EncodeResult, error) {
	table, err := c.store.Snapshot()
	if err != nil {
		return EncodeResult{}, err
	}

	categorical := make(map[string]bool)
	for _, n := range table.CategoricalColumns() {
		categorical[n] = true
	}
	targets := columns
	if targets == nil {
		targets = table.CategoricalColumns()
	}

	res := EncodeResult{
		Encoded:   make(map[string][]string),
		Skipped:   make(map[string]string),
		DropFirst: dropFirst,
	}

	for _, name := range targets {
		if !categorical[name] {
			res.Skipped[name] = "not a categorical column"
			continue
		}
		col, ok := table.Column(name)
		if !ok {
			res.Skipped[name] = "column not found"
			continue
		}

		categories := firstAppearanceCategories(col)
		if len(categories) == 0 {
			res.Skipped[name] = "column has no non-missing values"
			continue
		}
		encode := categories
		if dropFirst {
			encode = categories[1:]
		}

		replacements := make([]*dataset.Column, 0, len(encode))
		names := make([]string, 0, len(encode))
		for _, cat := range encode {
			values := make([]dataset.Value, col.Len())
			for i, v := range col.Values {
				if !v.IsMissing() && v.String() == cat {
					values[i] = dataset.Num(1)
				} else {
					values[i] = dataset.Num(0)
				}
			}
			dummyName := fmt.Sprintf("%s_%s", name, cat)
			replacements = append(replacements, &dataset.Column{
				Name:   dummyName,
				Type:   dataset.TypeNumeric,
				Values: values,
			})
			names = append(names, dummyName)
		}

		replaced, err := table.ReplaceColumns(name, replacements)
		if err != nil {
			res.Skipped[name] = fmt.Sprintf("indicator name collision: %v", err)
			continue
		}
		table = replaced
		res.Encoded[name] = names
	}

	encodedNames := make([]string, 0, len(res.Encoded))
	for n := range res.Encoded {
		encodedNames = append(encodedNames, n)
	}
	c.store.Swap(table, fmt.Sprintf("Created dummy variables for %d columns (drop_first=%t)", len(encodedNames), dropFirst))
	return res, nil
}

// firstAppearanceCategories lists distinct non-missing rendered values
// in order of first appearance.
func firstAppearanceCategories(col *dataset.Column) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, v := range col.Values {
		if v.IsMissing() {
			continue
		}
		s := v.String()
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
