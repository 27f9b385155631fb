package clean

import (
	"github.com/chandrashekharb369/Data-cleaning-tool/internal/ingest"
	"github.com/chandrashekharb369/Data-cleaning-tool/pkg/dataset"
)

// AutoCleanReport describes what the fixed auto-clean policy did.
type AutoCleanReport struct {
	DuplicatesRemoved int               `json:"duplicates_removed"`
	MissingStrategies map[string]string `json:"missing_strategies,omitempty"`
	OutliersRemoved   map[string]int    `json:"outliers_removed,omitempty"`
	TypesConverted    map[string]string `json:"types_converted,omitempty"`
	Completed         bool              `json:"auto_clean_completed"`
}

// AutoClean runs the fixed policy: remove duplicates; impute every
// column that has missing values (median for numeric, mode for
// categorical); run IQR outlier detection, which also removes the
// flagged rows; then coerce to numeric every categorical column whose
// non-missing values all parse as numbers.
func (c *Cleaner) AutoClean() (AutoCleanReport, error) {
	report := AutoCleanReport{}

	dedup, err := c.RemoveDuplicates(KeepFirst)
	if err != nil {
		return report, err
	}
	report.DuplicatesRemoved = dedup.Removed

	table, err := c.store.Snapshot()
	if err != nil {
		return report, err
	}
	strategy := make(map[string]string)
	for _, col := range table.Columns() {
		if col.MissingCount() == 0 {
			continue
		}
		if col.Type.IsNumeric() {
			strategy[col.Name] = MethodMedian
		} else {
			strategy[col.Name] = MethodMode
		}
	}
	if len(strategy) > 0 {
		if _, err := c.HandleMissing(strategy); err != nil {
			return report, err
		}
		report.MissingStrategies = strategy
	}

	outliers, err := c.HandleOutliers(OutlierIQR, nil)
	if err != nil {
		return report, err
	}
	report.OutliersRemoved = outliers.Removed

	table, err = c.store.Snapshot()
	if err != nil {
		return report, err
	}
	conversions := make(map[string]string)
	for _, name := range table.CategoricalColumns() {
		col, _ := table.Column(name)
		if col.Type != dataset.TypeString {
			continue
		}
		if fullyNumeric(col) {
			conversions[name] = TargetNumeric
		}
	}
	if len(conversions) > 0 {
		if _, err := c.ConvertTypes(conversions); err != nil {
			return report, err
		}
		report.TypesConverted = conversions
	}

	report.Completed = true
	c.store.LogAction("Completed automatic data cleaning")
	return report, nil
}

// fullyNumeric reports whether every non-missing cell parses as a
// number. Columns with no non-missing cells do not qualify.
func fullyNumeric(col *dataset.Column) bool {
	present := 0
	for _, v := range col.Values {
		if v.IsMissing() {
			continue
		}
		present++
		s, _ := v.Text()
		if _, ok := ingest.ParseNumeric(s); !ok {
			return false
		}
	}
	return present > 0
}
