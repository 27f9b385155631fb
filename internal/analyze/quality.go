package analyze

import (
	"fmt"
	"sort"
	"strings"

	"github.com/chandrashekharb369/Data-cleaning-tool/internal/stats"
	"github.com/chandrashekharb369/Data-cleaning-tool/pkg/dataset"
)

const (
	// jaccardThreshold marks two category spellings as near-duplicates.
	jaccardThreshold = 0.8

	maxSimilarPairs = 5

	// idRatioThreshold and idCountThreshold gate the likely-identifier
	// flag.
	idRatioThreshold = 0.95
	idCountThreshold = 100

	consistencyPenaltyPer = 5.0
	consistencyPenaltyCap = 20.0
	validityPenaltyPer    = 3.0
	validityPenaltyCap    = 15.0
)

// negativeCheckColumns are column names whose values should never be
// negative.
var negativeCheckColumns = map[string]struct{}{
	"age": {}, "price": {}, "count": {}, "quantity": {}, "amount": {},
}

type SimilarPair struct {
	Value1 string `json:"value1"`
	Value2 string `json:"value2"`
}

type ConsistencyIssue struct {
	Column        string        `json:"column"`
	SimilarValues []SimilarPair `json:"similar_values"`
}

type ValidityIssue struct {
	Column string   `json:"column"`
	Issues []string `json:"issues"`
}

type UniquenessStat struct {
	UniqueCount      int     `json:"unique_count"`
	UniqueRatio      float64 `json:"unique_ratio"`
	LikelyIdentifier bool    `json:"is_potentially_unique_id"`
}

type QualityReport struct {
	Completeness struct {
		Percentage   float64 `json:"percentage"`
		MissingCells int     `json:"missing_cells"`
		TotalCells   int     `json:"total_cells"`
	} `json:"completeness"`
	Consistency struct {
		IssuesFound int                `json:"issues_found"`
		Details     []ConsistencyIssue `json:"details"`
	} `json:"consistency"`
	Validity struct {
		IssuesFound int             `json:"issues_found"`
		Details     []ValidityIssue `json:"details"`
	} `json:"validity"`
	Uniqueness   map[string]UniquenessStat `json:"uniqueness"`
	OverallScore float64                   `json:"overall_score"`
}

// QualityAssessment scores the table on four axes. The overall score
// starts from completeness and deducts a capped penalty per consistency
// and validity issue, clamped to [0, 100].
func (a *Analyzer) QualityAssessment() (QualityReport, error) {
	t, err := a.store.Snapshot()
	if err != nil {
		return QualityReport{}, err
	}

	var report QualityReport
	rows := t.NumRows()
	total := rows * t.NumCols()
	missing := 0
	for _, c := range t.Columns() {
		missing += c.MissingCount()
	}
	report.Completeness.TotalCells = total
	report.Completeness.MissingCells = missing
	if total > 0 {
		report.Completeness.Percentage = float64(total-missing) / float64(total) * 100
	}

	for _, name := range t.CategoricalColumns() {
		col, _ := t.Column(name)
		if pairs := similarSpellings(col); len(pairs) > 0 {
			report.Consistency.Details = append(report.Consistency.Details, ConsistencyIssue{
				Column:        name,
				SimilarValues: pairs,
			})
		}
	}
	report.Consistency.IssuesFound = len(report.Consistency.Details)

	for _, col := range t.Columns() {
		if issues := validityIssues(col); len(issues) > 0 {
			report.Validity.Details = append(report.Validity.Details, ValidityIssue{
				Column: col.Name,
				Issues: issues,
			})
		}
	}
	report.Validity.IssuesFound = len(report.Validity.Details)

	report.Uniqueness = make(map[string]UniquenessStat, t.NumCols())
	for _, col := range t.Columns() {
		n := col.UniqueCount()
		ratio := 0.0
		if rows > 0 {
			ratio = float64(n) / float64(rows)
		}
		report.Uniqueness[col.Name] = UniquenessStat{
			UniqueCount:      n,
			UniqueRatio:      ratio,
			LikelyIdentifier: ratio > idRatioThreshold && n > idCountThreshold,
		}
	}

	score := report.Completeness.Percentage
	score -= min(float64(report.Consistency.IssuesFound)*consistencyPenaltyPer, consistencyPenaltyCap)
	score -= min(float64(report.Validity.IssuesFound)*validityPenaltyPer, validityPenaltyCap)
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	report.OverallScore = score
	return report, nil
}

// similarSpellings compares the case-folded distinct values of a
// categorical column pairwise by token-set Jaccard similarity, most
// frequent values first, and keeps the top pairs.
func similarSpellings(col *dataset.Column) []SimilarPair {
	counts := make(map[string]int, col.Len())
	order := make([]string, 0, col.Len())
	for _, v := range col.Values {
		if v.IsMissing() {
			continue
		}
		folded := strings.ToLower(v.String())
		if _, seen := counts[folded]; !seen {
			order = append(order, folded)
		}
		counts[folded]++
	}
	sort.SliceStable(order, func(a, b int) bool { return counts[order[a]] > counts[order[b]] })

	var pairs []SimilarPair
	for i := 0; i < len(order) && len(pairs) < maxSimilarPairs; i++ {
		for j := i + 1; j < len(order) && len(pairs) < maxSimilarPairs; j++ {
			if jaccard(order[i], order[j]) > jaccardThreshold {
				pairs = append(pairs, SimilarPair{Value1: order[i], Value2: order[j]})
			}
		}
	}
	return pairs
}

// jaccard computes token-set similarity between two strings.
func jaccard(a, b string) float64 {
	sa := tokenSet(a)
	sb := tokenSet(b)
	if len(sa) == 0 && len(sb) == 0 {
		return 0
	}
	inter := 0
	for tok := range sa {
		if _, ok := sb[tok]; ok {
			inter++
		}
	}
	union := len(sa) + len(sb) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

func tokenSet(s string) map[string]struct{} {
	out := make(map[string]struct{}, 4)
	for _, tok := range strings.Fields(s) {
		out[tok] = struct{}{}
	}
	return out
}

// validityIssues runs the per-column sanity checks: negative values on
// quantity-like names and values beyond ten times the 99th percentile.
func validityIssues(col *dataset.Column) []string {
	if !col.Type.IsNumeric() {
		return nil
	}
	var issues []string
	xs := col.Floats()
	if len(xs) == 0 {
		return nil
	}

	if _, checked := negativeCheckColumns[strings.ToLower(col.Name)]; checked {
		negatives := 0
		for _, v := range xs {
			if v < 0 {
				negatives++
			}
		}
		if negatives > 0 {
			issues = append(issues, fmt.Sprintf("%d negative values", negatives))
		}
	}

	q99 := stats.Quantile(0.99, xs)
	extreme := 0
	for _, v := range xs {
		if v > q99*10 {
			extreme++
		}
	}
	if extreme > 0 {
		issues = append(issues, fmt.Sprintf("%d extreme outliers", extreme))
	}
	return issues
}
