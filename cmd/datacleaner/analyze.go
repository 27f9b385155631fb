// Analyze command for the datacleaner CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/chandrashekharb369/Data-cleaning-tool/internal/analyze"
	"github.com/chandrashekharb369/Data-cleaning-tool/pkg/dataset"
	"github.com/spf13/cobra"
)

// Analyze command flag values.
var (
	flagMethod      string
	flagTarget      string
	flagProblemType string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file> <kind>",
	Short: "Run an analysis over a dataset",
	Long: `Analyze loads a dataset and runs one analysis kind:

  correlation  pairwise correlation matrix over numeric columns
  importance   random-forest feature importance toward --target
  quality      data quality assessment with an overall score
  insights     key findings and cleaning recommendations
  summary      per-column statistical summary and distribution shapes`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		s := loadStore(args[0])
		analyzer := analyze.New(s)

		var (
			result any
			err    error
		)
		switch kind := args[1]; kind {
		case "correlation":
			result, err = analyzer.Correlations(flagMethod)
		case "importance":
			if flagTarget == "" {
				userError("analyze importance requires --target")
			}
			result, err = analyzer.FeatureImportance(flagTarget, flagProblemType)
		case "quality":
			result, err = analyzer.QualityAssessment()
		case "insights":
			result, err = analyzer.Insights()
		case "summary":
			result, err = analyzer.StatisticalSummary()
		default:
			userError("unknown analysis kind %q (want correlation, importance, quality, insights, or summary)", kind)
		}
		if err != nil {
			analyzeError(args[1], err)
		}

		if flagJSON {
			printJSON(result)
			return
		}
		printAnalysis(result)
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&flagMethod, "method", "pearson", "correlation method (pearson|spearman|kendall)")
	analyzeCmd.Flags().StringVar(&flagTarget, "target", "", "target column for feature importance")
	analyzeCmd.Flags().StringVar(&flagProblemType, "problem-type", "auto", "problem type for feature importance (auto|regression|classification)")
}

// analyzeError classifies an analysis failure as a user or system error.
func analyzeError(kind string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", kind, err)
	if errors.Is(err, analyze.ErrUnknownMethod) ||
		errors.Is(err, analyze.ErrTooFewNumeric) ||
		errors.Is(err, analyze.ErrNoFeatures) ||
		errors.Is(err, dataset.ErrColumnNotFound) ||
		errors.Is(err, dataset.ErrNoData) {
		os.Exit(exitUserError)
	}
	os.Exit(exitSysError)
}

// printAnalysis renders an analysis result as text. Each result type has
// its own shape, so rendering dispatches on the concrete type.
func printAnalysis(result any) {
	switch r := result.(type) {
	case analyze.CorrelationResult:
		fmt.Printf("Correlation (%s) over %d columns, %d pairs\n", r.Method, len(r.Columns), r.Summary.TotalPairs)
		for _, pair := range r.HighCorrelations {
			fmt.Printf("  %s and %s: %.3f\n", pair.Variable1, pair.Variable2, pair.Correlation)
		}
		if len(r.HighCorrelations) == 0 {
			fmt.Println("  no strongly correlated pairs")
		}
	case analyze.ImportanceResult:
		fmt.Printf("Feature importance toward %q (%s, model score %.3f)\n", r.Target, r.ProblemType, r.ModelScore)
		for _, score := range r.Importance {
			fmt.Printf("  %-20s %.4f\n", score.Feature, score.Score)
		}
	case analyze.QualityReport:
		fmt.Printf("Overall quality score: %.1f\n", r.OverallScore)
		fmt.Printf("Completeness: %.1f%%\n", r.Completeness.Percentage)
		for _, issue := range r.Consistency.Details {
			for _, pair := range issue.SimilarValues {
				fmt.Printf("  consistency: %s: %q and %q look similar\n", issue.Column, pair.Value1, pair.Value2)
			}
		}
		for _, issue := range r.Validity.Details {
			for _, detail := range issue.Issues {
				fmt.Printf("  validity: %s: %s\n", issue.Column, detail)
			}
		}
	case analyze.InsightReport:
		fmt.Println("Key insights:")
		for _, insight := range r.KeyInsights {
			fmt.Println("  -", insight)
		}
		fmt.Println("Recommendations:")
		for _, rec := range r.Recommendations {
			fmt.Println("  -", rec)
		}
	case analyze.StatisticalReport:
		for _, name := range sortedKeys(r.Numeric) {
			d := r.Numeric[name]
			fmt.Printf("%s: mean %.4f, std %.4f, min %.4f, max %.4f\n", name, d.Mean, d.Std, d.Min, d.Max)
			if shape, ok := r.Distribution[name]; ok {
				fmt.Printf("  distribution: %s (skew %.3f, kurtosis %.3f)\n", shape.Label, shape.Skewness, shape.Kurtosis)
			}
		}
		for _, name := range sortedKeys(r.Categorical) {
			d := r.Categorical[name]
			fmt.Printf("%s: %d unique, top %q (%d)\n", name, d.UniqueValues, d.TopValue, d.TopValueFrequency)
		}
	}
}
