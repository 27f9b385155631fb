// Clean command for the datacleaner CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/chandrashekharb369/Data-cleaning-tool/internal/clean"
	"github.com/chandrashekharb369/Data-cleaning-tool/internal/recipe"
	"github.com/chandrashekharb369/Data-cleaning-tool/pkg/dataset"
	"github.com/spf13/cobra"
)

// Clean command flag values.
var (
	flagDedup     bool
	flagKeep      string
	flagMissing   []string
	flagOutliers  string
	flagColumns   []string
	flagDummies   []string
	flagDropFirst bool
	flagNormalize string
	flagConvert   []string
	flagAuto      bool
	flagRecipe    string
	flagOutput    string
	flagFormat    string
)

var cleanCmd = &cobra.Command{
	Use:   "clean <file>",
	Short: "Apply cleaning operations to a dataset",
	Long: `Clean loads a dataset, applies the requested cleaning operations in a
fixed order (deduplicate, fill missing, remove outliers, convert types,
dummy-encode, normalize), and writes the result when --output is set.
A recipe file replaces the individual operation flags.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := loadStore(args[0])
		cleaner := clean.New(s)
		cleaner.KNNNeighbors = config.GetInt(cfgKeyKNNNeighbors)

		steps := make(map[string]any)

		switch {
		case flagRecipe != "":
			r, err := recipe.Load(flagRecipe)
			if err != nil {
				userError("recipe: %v", err)
			}
			results, err := r.Run(cleaner)
			if err != nil {
				cleanError("recipe", err)
			}
			for _, res := range results {
				steps[res.Action] = res.Result
			}
		case flagAuto:
			report, err := cleaner.AutoClean()
			if err != nil {
				cleanError("auto-clean", err)
			}
			steps["auto_clean"] = report
		default:
			runCleanFlags(cleaner, steps)
		}

		if flagOutput != "" {
			writeOutput(s, flagOutput, flagFormat)
		}

		if flagJSON {
			printJSON(map[string]any{
				"steps":   steps,
				"summary": s.Summary(),
			})
			return
		}
		for _, action := range s.ProcessingLog() {
			fmt.Println(action)
		}
		fmt.Println()
		printSummary(s)
	},
}

func init() {
	cleanCmd.Flags().BoolVar(&flagDedup, "dedup", false, "remove duplicate rows")
	cleanCmd.Flags().StringVar(&flagKeep, "keep", "first", "which duplicate to keep (first|last)")
	cleanCmd.Flags().StringArrayVar(&flagMissing, "missing", nil, "missing-value strategy as column=method (repeatable; method \"default\" uses the configured strategy)")
	cleanCmd.Flags().StringVar(&flagOutliers, "outliers", "", "outlier removal method (iqr|zscore|default)")
	cleanCmd.Flags().StringSliceVar(&flagColumns, "columns", nil, "columns for --outliers and --normalize (default: all numeric)")
	cleanCmd.Flags().StringSliceVar(&flagDummies, "dummies", nil, "categorical columns to dummy-encode")
	cleanCmd.Flags().BoolVar(&flagDropFirst, "drop-first", false, "drop the first category when dummy-encoding")
	cleanCmd.Flags().StringVar(&flagNormalize, "normalize", "", "normalization method (standard|minmax)")
	cleanCmd.Flags().StringArrayVar(&flagConvert, "convert", nil, "type conversion as column=type (repeatable)")
	cleanCmd.Flags().BoolVar(&flagAuto, "auto", false, "run the automatic cleaning pipeline")
	cleanCmd.Flags().StringVar(&flagRecipe, "recipe", "", "YAML recipe file describing the cleaning steps")
	cleanCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "write the cleaned dataset to this path")
	cleanCmd.Flags().StringVar(&flagFormat, "format", "", "output format (csv|xlsx|json|sqlite|report; default from extension)")
}

// runCleanFlags applies the individual operation flags in order, recording
// each result under its action name.
func runCleanFlags(cleaner *clean.Cleaner, steps map[string]any) {
	if flagDedup {
		result, err := cleaner.RemoveDuplicates(flagKeep)
		if err != nil {
			cleanError("dedup", err)
		}
		steps["remove_duplicates"] = result
	}

	if len(flagMissing) > 0 {
		strategy, err := parsePairs(flagMissing, "missing")
		if err != nil {
			userError("%v", err)
		}
		for col, method := range strategy {
			if method == "default" {
				strategy[col] = config.GetString(cfgKeyMissingStrategy)
			}
		}
		result, err := cleaner.HandleMissing(strategy)
		if err != nil {
			cleanError("missing", err)
		}
		steps["handle_missing"] = result
	}

	if flagOutliers != "" {
		method := flagOutliers
		if method == "default" {
			method = config.GetString(cfgKeyOutlierMethod)
		}
		result, err := cleaner.HandleOutliers(method, flagColumns)
		if err != nil {
			cleanError("outliers", err)
		}
		steps["handle_outliers"] = result
	}

	if len(flagConvert) > 0 {
		mapping, err := parsePairs(flagConvert, "convert")
		if err != nil {
			userError("%v", err)
		}
		result, err := cleaner.ConvertTypes(mapping)
		if err != nil {
			cleanError("convert", err)
		}
		steps["convert_types"] = result
	}

	if len(flagDummies) > 0 {
		result, err := cleaner.DummyEncode(flagDummies, flagDropFirst)
		if err != nil {
			cleanError("dummies", err)
		}
		steps["dummy_encode"] = result
	}

	if flagNormalize != "" {
		result, err := cleaner.Normalize(flagColumns, flagNormalize)
		if err != nil {
			cleanError("normalize", err)
		}
		steps["normalize"] = result
	}
}

// cleanError classifies a cleaning failure: bad methods, bad columns, and
// empty tables are user errors, everything else is a system error.
func cleanError(op string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", op, err)
	if errors.Is(err, clean.ErrUnknownMethod) ||
		errors.Is(err, clean.ErrNoColumns) ||
		errors.Is(err, dataset.ErrColumnNotFound) ||
		errors.Is(err, dataset.ErrNoData) ||
		errors.Is(err, recipe.ErrEmptyRecipe) ||
		errors.Is(err, recipe.ErrUnknownAction) ||
		errors.Is(err, recipe.ErrInvalidStep) {
		os.Exit(exitUserError)
	}
	os.Exit(exitSysError)
}
