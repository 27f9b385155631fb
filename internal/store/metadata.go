package store

import "github.com/chandrashekharb369/Data-cleaning-tool/pkg/dataset"

// Metadata is derived from the current table and recomputed after every
// mutation, so it is always consistent with the data it describes.
type Metadata struct {
	Rows               int               `json:"rows"`
	Columns            int               `json:"columns"`
	DTypes             map[string]string `json:"dtypes"`
	MissingValues      map[string]int    `json:"missing_values"`
	NumericColumns     []string          `json:"numeric_columns"`
	CategoricalColumns []string          `json:"categorical_columns"`
	Duplicates         int               `json:"duplicates"`
	MemoryBytes        int64             `json:"memory_bytes"`
}

// computeMetadata derives fresh metadata from a table.
func computeMetadata(t *dataset.Table) Metadata {
	m := Metadata{
		Rows:               t.NumRows(),
		Columns:            t.NumCols(),
		DTypes:             make(map[string]string, t.NumCols()),
		MissingValues:      make(map[string]int, t.NumCols()),
		NumericColumns:     t.NumericColumns(),
		CategoricalColumns: t.CategoricalColumns(),
		Duplicates:         t.DuplicateCount(),
		MemoryBytes:        t.MemoryFootprint(),
	}
	for _, c := range t.Columns() {
		m.DTypes[c.Name] = c.Type.String()
		m.MissingValues[c.Name] = c.MissingCount()
	}
	return m
}

// TotalMissing sums the per-column missing counts.
func (m Metadata) TotalMissing() int {
	total := 0
	for _, n := range m.MissingValues {
		total += n
	}
	return total
}

// ColumnsWithMissing counts columns that have at least one missing cell.
func (m Metadata) ColumnsWithMissing() int {
	n := 0
	for _, c := range m.MissingValues {
		if c > 0 {
			n++
		}
	}
	return n
}
