package clean

import (
	"fmt"

	"github.com/chandrashekharb369/Data-cleaning-tool/internal/ingest"
	"github.com/chandrashekharb369/Data-cleaning-tool/pkg/dataset"
)

// Conversion targets. "category" is accepted as an alias for
// categorical; both coerce to the string dtype.
const (
	TargetNumeric     = "numeric"
	TargetDatetime    = "datetime"
	TargetCategorical = "categorical"
	TargetCategory    = "category"
	TargetString      = "string"
)

// ConvertResult reports per-column conversion outcomes.
type ConvertResult struct {
	Converted map[string]string `json:"converted"`
	Skipped   map[string]string `json:"skipped,omitempty"`
	Coerced   map[string]int    `json:"coerced_to_missing,omitempty"`
}

// ConvertTypes coerces columns to new dtypes. Cells that do not parse
// under the target become missing rather than failing the operation;
// the per-column count of such coercions is reported. Unknown targets
// log a warning and leave the column unchanged.
func (c *Cleaner) ConvertTypes(mapping map[string]string) (ConvertResult, error) {
	table, err := c.store.Snapshot()
	if err != nil {
		return ConvertResult{}, err
	}

	res := ConvertResult{
		Converted: make(map[string]string),
		Skipped:   make(map[string]string),
		Coerced:   make(map[string]int),
	}

	for _, name := range table.ColumnNames() {
		target, ok := mapping[name]
		if !ok {
			continue
		}
		col, _ := table.Column(name)

		var dtype dataset.DType
		switch target {
		case TargetNumeric:
			dtype = dataset.TypeNumeric
		case TargetDatetime:
			dtype = dataset.TypeDatetime
		case TargetCategorical, TargetCategory, TargetString:
			dtype = dataset.TypeString
		default:
			res.Skipped[name] = fmt.Sprintf("unknown target type %q", target)
			c.store.Logger().WithField("column", name).Warnf("could not convert to %q: unknown target, column unchanged", target)
			continue
		}

		converted, coerced := convertColumn(col, dtype)
		replaced, err := table.ReplaceColumns(name, []*dataset.Column{converted})
		if err != nil {
			res.Skipped[name] = err.Error()
			continue
		}
		table = replaced
		res.Converted[name] = target
		if coerced > 0 {
			res.Coerced[name] = coerced
		}
	}

	c.store.Swap(table, fmt.Sprintf("Converted data types: %v", res.Converted))
	return res, nil
}

// convertColumn coerces every cell to the target dtype, rendering the
// current value to text and reparsing it. coerced counts previously
// present cells that became missing.
func convertColumn(col *dataset.Column, dtype dataset.DType) (*dataset.Column, int) {
	values := make([]dataset.Value, col.Len())
	coerced := 0
	for i, v := range col.Values {
		if v.IsMissing() {
			values[i] = dataset.Missing()
			continue
		}
		nv := ingest.ParseCell(v.String(), dtype)
		if nv.IsMissing() {
			coerced++
		}
		values[i] = nv
	}
	return &dataset.Column{Name: col.Name, Type: dtype, Values: values}, coerced
}
