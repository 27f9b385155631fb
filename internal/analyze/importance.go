package analyze

import (
	"fmt"
	"sort"

	"github.com/chandrashekharb369/Data-cleaning-tool/internal/analyze/forest"
	"github.com/chandrashekharb369/Data-cleaning-tool/internal/stats"
	"github.com/chandrashekharb369/Data-cleaning-tool/pkg/dataset"
)

const (
	ProblemAuto           = "auto"
	ProblemRegression     = "regression"
	ProblemClassification = "classification"

	// forestSeed fixes the ensemble so repeated runs rank identically.
	forestSeed = 42

	// regressionCardinality is the distinct-value count above which a
	// numeric target is treated as continuous.
	regressionCardinality = 10

	topFeatureCount = 5
)

type FeatureScore struct {
	Feature string  `json:"feature"`
	Score   float64 `json:"score"`
}

type ImportanceResult struct {
	Target            string         `json:"target"`
	ProblemType       string         `json:"problem_type"`
	Importance        []FeatureScore `json:"feature_importance"`
	MutualInformation []FeatureScore `json:"mutual_information"`
	TopFeatures       []string       `json:"top_features"`
	ModelScore        float64        `json:"model_score"`
}

// FeatureImportance ranks the numeric columns by how well they predict
// the target, using a random forest for the model-based ranking and a
// binned mutual-information estimate for the model-free one. Missing
// features are mean-imputed; a missing target cell gets the column mean
// (numeric) or mode (categorical).
func (a *Analyzer) FeatureImportance(target, problemType string) (ImportanceResult, error) {
	switch problemType {
	case ProblemAuto, ProblemRegression, ProblemClassification:
	default:
		return ImportanceResult{}, fmt.Errorf("%w: %q", ErrUnknownMethod, problemType)
	}
	t, err := a.store.Snapshot()
	if err != nil {
		return ImportanceResult{}, err
	}
	targetCol, ok := t.Column(target)
	if !ok {
		return ImportanceResult{}, fmt.Errorf("%w: %q", dataset.ErrColumnNotFound, target)
	}

	features := make([]string, 0, t.NumCols())
	for _, name := range t.NumericColumns() {
		if name != target {
			features = append(features, name)
		}
	}
	if len(features) == 0 {
		return ImportanceResult{}, ErrNoFeatures
	}

	if problemType == ProblemAuto {
		if targetCol.Type.IsNumeric() && targetCol.UniqueCount() > regressionCardinality {
			problemType = ProblemRegression
		} else {
			problemType = ProblemClassification
		}
	}

	X := featureMatrix(t, features)
	y := targetVector(targetCol)

	task := forest.TaskRegression
	if problemType == ProblemClassification {
		task = forest.TaskClassification
	}
	f := forest.New(task, forest.DefaultConfig(forestSeed))
	if err := f.Fit(X, y); err != nil {
		return ImportanceResult{}, err
	}
	imp, err := f.Importances()
	if err != nil {
		return ImportanceResult{}, err
	}
	score, err := f.Score(X, y)
	if err != nil {
		return ImportanceResult{}, err
	}

	mi := make([]float64, len(features))
	for j := range features {
		col := make([]float64, len(X))
		for i := range X {
			col[i] = X[i][j]
		}
		mi[j] = mutualInfo(col, y, problemType == ProblemRegression)
	}

	result := ImportanceResult{
		Target:            target,
		ProblemType:       problemType,
		Importance:        rankScores(features, imp),
		MutualInformation: rankScores(features, mi),
		ModelScore:        score,
	}
	for i, fs := range result.Importance {
		if i == topFeatureCount {
			break
		}
		result.TopFeatures = append(result.TopFeatures, fs.Feature)
	}
	return result, nil
}

// featureMatrix builds the dense row-major matrix with per-column mean
// imputation.
func featureMatrix(t *dataset.Table, features []string) [][]float64 {
	rows := t.NumRows()
	X := make([][]float64, rows)
	for i := range X {
		X[i] = make([]float64, len(features))
	}
	for j, name := range features {
		col, _ := t.Column(name)
		vals, present := col.FloatsMask()
		mean := stats.Mean(col.Floats())
		for i := range vals {
			if present[i] {
				X[i][j] = vals[i]
			} else {
				X[i][j] = mean
			}
		}
	}
	return X
}

// targetVector encodes the target as float64. Numeric targets keep
// their values with mean imputation. Everything else becomes class
// codes assigned in sorted label order, missing mapped to the mode.
func targetVector(col *dataset.Column) []float64 {
	if col.Type.IsNumeric() {
		vals, present := col.FloatsMask()
		mean := stats.Mean(col.Floats())
		y := make([]float64, len(vals))
		for i := range vals {
			if present[i] {
				y[i] = vals[i]
			} else {
				y[i] = mean
			}
		}
		return y
	}

	labels := make(map[string]struct{}, col.Len())
	for _, v := range col.Values {
		if !v.IsMissing() {
			labels[v.String()] = struct{}{}
		}
	}
	sorted := make([]string, 0, len(labels))
	for l := range labels {
		sorted = append(sorted, l)
	}
	sort.Strings(sorted)
	codes := make(map[string]float64, len(sorted))
	for i, l := range sorted {
		codes[l] = float64(i)
	}

	fill := 0.0
	if mode, ok := col.Mode(); ok {
		fill = codes[mode.String()]
	}
	y := make([]float64, col.Len())
	for i, v := range col.Values {
		if v.IsMissing() {
			y[i] = fill
		} else {
			y[i] = codes[v.String()]
		}
	}
	return y
}

func rankScores(features []string, scores []float64) []FeatureScore {
	out := make([]FeatureScore, len(features))
	for i, f := range features {
		out[i] = FeatureScore{Feature: f, Score: scores[i]}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Score > out[b].Score })
	return out
}
