package dataset

import "strings"

// Table is an ordered set of equally sized columns. The column slice is
// the table's identity; row access goes through column cells.
type Table struct {
	cols []*Column
}

// New builds a table from columns, enforcing unique names and equal
// lengths.
func New(cols ...*Column) (*Table, error) {
	seen := make(map[string]struct{}, len(cols))
	for i, c := range cols {
		if _, ok := seen[c.Name]; ok {
			return nil, ErrDuplicateColumn
		}
		seen[c.Name] = struct{}{}
		if i > 0 && c.Len() != cols[0].Len() {
			return nil, ErrLengthMismatch
		}
	}
	return &Table{cols: cols}, nil
}

// NumRows returns the row count. An empty table has zero rows.
func (t *Table) NumRows() int {
	if len(t.cols) == 0 {
		return 0
	}
	return t.cols[0].Len()
}

// NumCols returns the column count.
func (t *Table) NumCols() int { return len(t.cols) }

// Columns returns the column slice in table order. Callers must not
// mutate it; use Clone for a private copy.
func (t *Table) Columns() []*Column { return t.cols }

// ColumnNames returns the column names in table order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name
	}
	return names
}

// Column looks a column up by name.
func (t *Table) Column(name string) (*Column, bool) {
	for _, c := range t.cols {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// Clone returns a deep copy: mutating the clone never touches the
// original and vice versa.
func (t *Table) Clone() *Table {
	cols := make([]*Column, len(t.cols))
	for i, c := range t.cols {
		cols[i] = c.Clone()
	}
	return &Table{cols: cols}
}

// Equal reports value equality over names, dtypes, and every cell.
func (t *Table) Equal(o *Table) bool {
	if t.NumCols() != o.NumCols() || t.NumRows() != o.NumRows() {
		return false
	}
	for i, c := range t.cols {
		oc := o.cols[i]
		if c.Name != oc.Name || c.Type != oc.Type {
			return false
		}
		for j, v := range c.Values {
			if !v.Equal(oc.Values[j]) {
				return false
			}
		}
	}
	return true
}

// RowKey renders row i as an identity string across all columns, used for
// exact-duplicate detection. Missing cells participate in the key, so two
// rows that are missing in the same places compare equal.
func (t *Table) RowKey(i int) string {
	var b strings.Builder
	for ci, c := range t.cols {
		if ci > 0 {
			b.WriteByte(0x1f)
		}
		b.WriteString(c.Values[i].key())
	}
	return b.String()
}

// DuplicateCount returns the number of rows that exactly repeat an
// earlier row.
func (t *Table) DuplicateCount() int {
	seen := make(map[string]struct{}, t.NumRows())
	dups := 0
	for i := 0; i < t.NumRows(); i++ {
		k := t.RowKey(i)
		if _, ok := seen[k]; ok {
			dups++
		} else {
			seen[k] = struct{}{}
		}
	}
	return dups
}

// FilterRows builds a new table keeping rows where keep[i] is true.
// Relative order of kept rows is preserved.
func (t *Table) FilterRows(keep []bool) *Table {
	n := 0
	for _, k := range keep {
		if k {
			n++
		}
	}
	cols := make([]*Column, len(t.cols))
	for ci, c := range t.cols {
		vals := make([]Value, 0, n)
		for i, v := range c.Values {
			if keep[i] {
				vals = append(vals, v)
			}
		}
		cols[ci] = &Column{Name: c.Name, Type: c.Type, Values: vals}
	}
	return &Table{cols: cols}
}

// WithColumn returns a new table with col appended. Fails on a name
// collision or length mismatch.
func (t *Table) WithColumn(col *Column) (*Table, error) {
	if _, ok := t.Column(col.Name); ok {
		return nil, ErrDuplicateColumn
	}
	if len(t.cols) > 0 && col.Len() != t.NumRows() {
		return nil, ErrLengthMismatch
	}
	cols := make([]*Column, 0, len(t.cols)+1)
	cols = append(cols, t.cols...)
	cols = append(cols, col)
	return &Table{cols: cols}, nil
}

// ReplaceColumns substitutes the named column with replacements at the
// same position. Used by dummy encoding, where one categorical column
// becomes several indicator columns.
func (t *Table) ReplaceColumns(name string, replacements []*Column) (*Table, error) {
	pos := -1
	for i, c := range t.cols {
		if c.Name == name {
			pos = i
			break
		}
	}
	if pos < 0 {
		return nil, ErrColumnNotFound
	}
	cols := make([]*Column, 0, len(t.cols)-1+len(replacements))
	cols = append(cols, t.cols[:pos]...)
	cols = append(cols, replacements...)
	cols = append(cols, t.cols[pos+1:]...)
	return New(cols...)
}

// NumericColumns returns the names of columns in the numeric class.
func (t *Table) NumericColumns() []string {
	var out []string
	for _, c := range t.cols {
		if c.Type.IsNumeric() {
			out = append(out, c.Name)
		}
	}
	return out
}

// CategoricalColumns returns the names of columns in the categorical
// class (every column that is not numeric).
func (t *Table) CategoricalColumns() []string {
	var out []string
	for _, c := range t.cols {
		if !c.Type.IsNumeric() {
			out = append(out, c.Name)
		}
	}
	return out
}

// MemoryFootprint approximates the table's in-memory size in bytes:
// a fixed per-cell overhead plus string payload lengths.
func (t *Table) MemoryFootprint() int64 {
	const cellOverhead = 48
	var total int64
	for _, c := range t.cols {
		total += int64(len(c.Name))
		for _, v := range c.Values {
			total += cellOverhead
			if s, ok := v.Text(); ok {
				total += int64(len(s))
			}
		}
	}
	return total
}
