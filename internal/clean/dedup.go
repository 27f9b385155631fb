package clean

import "fmt"

// Keep rules for duplicate removal.
const (
	KeepFirst = "first"
	KeepLast  = "last"
)

// DedupResult reports a duplicate-removal pass.
type DedupResult struct {
	Keep    string `json:"keep"`
	Removed int    `json:"removed"`
	Rows    int    `json:"rows"`
}

// RemoveDuplicates drops rows that exactly repeat another row across all
// columns. keep selects which occurrence survives; order among kept rows
// is preserved. Running it twice is a no-op the second time.
func (c *Cleaner) RemoveDuplicates(keep string) (DedupResult, error) {
	if keep != KeepFirst && keep != KeepLast {
		return DedupResult{}, fmt.Errorf("%w: keep=%q", ErrUnknownMethod, keep)
	}
	table, err := c.store.Snapshot()
	if err != nil {
		return DedupResult{}, err
	}

	n := table.NumRows()
	mark := make([]bool, n)
	seen := make(map[string]struct{}, n)
	if keep == KeepFirst {
		for i := 0; i < n; i++ {
			k := table.RowKey(i)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			mark[i] = true
		}
	} else {
		for i := n - 1; i >= 0; i-- {
			k := table.RowKey(i)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			mark[i] = true
		}
	}

	cleaned := table.FilterRows(mark)
	removed := n - cleaned.NumRows()
	c.store.Swap(cleaned, fmt.Sprintf("Removed %d duplicate rows (keep=%q)", removed, keep))
	return DedupResult{Keep: keep, Removed: removed, Rows: cleaned.NumRows()}, nil
}
