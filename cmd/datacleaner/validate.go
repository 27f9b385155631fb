// Validate command for the datacleaner CLI.
package main

import (
	"fmt"
	"os"

	"github.com/chandrashekharb369/Data-cleaning-tool/internal/validate"
	"github.com/spf13/cobra"
)

// Validate command flag values.
var (
	flagColumn   string
	flagAnalysis string
)

var validateCmd = &cobra.Command{
	Use:   "validate <file> [kind]",
	Short: "Validate a dataset before cleaning or analysis",
	Long: `Validate checks a dataset at one of four levels:

  file     file existence, format, and structural sanity (default)
  table    column names, mixed types, missing data, duplicates, value ranges
  column   suitability of --column for the analysis named by --analysis
  suggest  prioritized cleaning suggestions`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		kind := "file"
		if len(args) == 2 {
			kind = args[1]
		}

		if kind == "file" {
			runValidateFile(args[0])
			return
		}

		s := loadStore(args[0])
		t, err := s.Snapshot()
		if err != nil {
			sysError("snapshot: %v", err)
		}

		switch kind {
		case "table":
			result := validate.Table(t)
			if flagJSON {
				printJSON(result)
			} else {
				printIssueLists(result.Errors, result.Warnings, result.Info)
				fmt.Printf("valid: %v\n", result.Valid)
			}
			if !result.Valid {
				os.Exit(exitUserError)
			}
		case "column":
			if flagColumn == "" {
				userError("validate column requires --column")
			}
			result := validate.ColumnForAnalysis(t, flagColumn, flagAnalysis)
			if flagJSON {
				printJSON(result)
			} else {
				for _, issue := range result.Issues {
					fmt.Println("issue:", issue)
				}
				for _, rec := range result.Recommendations {
					fmt.Println("recommendation:", rec)
				}
				fmt.Printf("suitable for %s: %v\n", flagAnalysis, result.Suitable)
			}
			if !result.Suitable {
				os.Exit(exitUserError)
			}
		case "suggest":
			report := validate.Suggestions(t)
			if flagJSON {
				printJSON(report)
				return
			}
			printSuggestionTier("Critical", report.Critical)
			printSuggestionTier("Recommended", report.Recommended)
			printSuggestionTier("Optional", report.Optional)
		default:
			userError("unknown validation kind %q (want file, table, column, or suggest)", kind)
		}
	},
}

func init() {
	validateCmd.Flags().StringVar(&flagColumn, "column", "", "column to check (validate column)")
	validateCmd.Flags().StringVar(&flagAnalysis, "analysis", validate.AnalysisCorrelation, "analysis kind for --column (correlation|categorical|outlier_detection|time_series)")
}

// runValidateFile reports file-level validation without loading the data.
func runValidateFile(path string) {
	result := validate.File(path)
	if flagJSON {
		printJSON(result)
	} else {
		printIssueLists(result.Errors, result.Warnings, nil)
		if result.Valid {
			fmt.Printf("valid %s file\n", result.FileType)
		}
	}
	if !result.Valid {
		os.Exit(exitUserError)
	}
}

func printIssueLists(errs, warnings, info []string) {
	for _, msg := range errs {
		fmt.Println("error:", msg)
	}
	for _, msg := range warnings {
		fmt.Println("warning:", msg)
	}
	for _, msg := range info {
		fmt.Println("info:", msg)
	}
}

func printSuggestionTier(tier string, suggestions []string) {
	if len(suggestions) == 0 {
		return
	}
	fmt.Printf("%s:\n", tier)
	for _, s := range suggestions {
		fmt.Println("  -", s)
	}
}
