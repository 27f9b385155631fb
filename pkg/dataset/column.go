package dataset

// DType classifies a whole column. Cells in a column are either of the
// column's kind or missing.
type DType uint8

const (
	TypeNumeric DType = iota
	TypeString
	TypeBool
	TypeDatetime
)

func (d DType) String() string {
	switch d {
	case TypeNumeric:
		return "numeric"
	case TypeString:
		return "string"
	case TypeBool:
		return "bool"
	default:
		return "datetime"
	}
}

// Kind returns the cell kind that matches this column dtype.
func (d DType) Kind() Kind {
	switch d {
	case TypeNumeric:
		return KindNumeric
	case TypeString:
		return KindString
	case TypeBool:
		return KindBool
	default:
		return KindDatetime
	}
}

// IsNumeric reports whether columns of this dtype belong to the numeric
// class. Everything else is categorical; the two classes partition all
// columns.
func (d DType) IsNumeric() bool { return d == TypeNumeric }

// ValueCount is one entry of a value frequency ranking.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Column is a named homogeneous sequence of cells.
type Column struct {
	Name   string
	Type   DType
	Values []Value
}

// NewColumn builds a column, checking that every non-missing cell matches
// the declared dtype.
func NewColumn(name string, dtype DType, values []Value) (*Column, error) {
	for _, v := range values {
		if !v.IsMissing() && v.Kind() != dtype.Kind() {
			return nil, ErrTypeMismatch
		}
	}
	return &Column{Name: name, Type: dtype, Values: values}, nil
}

// Len returns the number of cells.
func (c *Column) Len() int { return len(c.Values) }

// Clone returns a structurally independent copy.
func (c *Column) Clone() *Column {
	vals := make([]Value, len(c.Values))
	copy(vals, c.Values)
	return &Column{Name: c.Name, Type: c.Type, Values: vals}
}

// MissingCount returns the number of missing cells.
func (c *Column) MissingCount() int {
	n := 0
	for _, v := range c.Values {
		if v.IsMissing() {
			n++
		}
	}
	return n
}

// Floats returns the non-missing numeric payloads in row order.
// Non-numeric columns yield an empty slice.
func (c *Column) Floats() []float64 {
	out := make([]float64, 0, len(c.Values))
	for _, v := range c.Values {
		if f, ok := v.Float(); ok {
			out = append(out, f)
		}
	}
	return out
}

// FloatsMask returns one float per row plus a presence mask. Missing and
// non-numeric cells report present=false with a zero payload.
func (c *Column) FloatsMask() ([]float64, []bool) {
	vals := make([]float64, len(c.Values))
	present := make([]bool, len(c.Values))
	for i, v := range c.Values {
		if f, ok := v.Float(); ok {
			vals[i] = f
			present[i] = true
		}
	}
	return vals, present
}

// UniqueCount returns the number of distinct non-missing values.
func (c *Column) UniqueCount() int {
	seen := make(map[string]struct{}, len(c.Values))
	for _, v := range c.Values {
		if v.IsMissing() {
			continue
		}
		seen[v.key()] = struct{}{}
	}
	return len(seen)
}

// ValueCounts ranks distinct non-missing values by descending frequency.
// Ties keep first-encountered order, which is also the tie-break rule for
// mode imputation.
func (c *Column) ValueCounts() []ValueCount {
	counts := make(map[string]int)
	order := make([]string, 0)
	display := make(map[string]string)
	for _, v := range c.Values {
		if v.IsMissing() {
			continue
		}
		k := v.key()
		if _, ok := counts[k]; !ok {
			order = append(order, k)
			display[k] = v.String()
		}
		counts[k]++
	}
	out := make([]ValueCount, 0, len(order))
	for _, k := range order {
		out = append(out, ValueCount{Value: display[k], Count: counts[k]})
	}
	// Stable selection sort keeps first-encountered order among ties.
	for i := 0; i < len(out); i++ {
		best := i
		for j := i + 1; j < len(out); j++ {
			if out[j].Count > out[best].Count {
				best = j
			}
		}
		if best != i {
			picked := out[best]
			copy(out[i+1:best+1], out[i:best])
			out[i] = picked
		}
	}
	return out
}

// Mode returns the most frequent non-missing value. ok is false when the
// column is entirely missing.
func (c *Column) Mode() (Value, bool) {
	counts := make(map[string]int)
	var best Value
	bestCount := 0
	for _, v := range c.Values {
		if v.IsMissing() {
			continue
		}
		k := v.key()
		counts[k]++
		if counts[k] > bestCount {
			bestCount = counts[k]
			best = v
		}
	}
	return best, bestCount > 0
}
