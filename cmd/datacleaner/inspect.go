// Inspect command for the datacleaner CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Load a dataset and print its summary and per-column details",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := loadStore(args[0])

		summary := s.Summary()
		columns := s.ColumnInfo()

		if flagJSON {
			printJSON(map[string]any{
				"summary": summary,
				"columns": columns,
			})
			return
		}

		printSummary(s)
		fmt.Println()
		for _, name := range sortedKeys(columns) {
			info := columns[name]
			fmt.Printf("%s (%s)\n", name, info.DType)
			fmt.Printf("  missing: %d (%.1f%%), unique: %d\n", info.MissingCount, info.MissingPercent, info.UniqueValues)
			if info.Numeric != nil {
				n := info.Numeric
				fmt.Printf("  mean: %.4f, std: %.4f, min: %.4f, max: %.4f\n", n.Mean, n.Std, n.Min, n.Max)
				fmt.Printf("  q25: %.4f, median: %.4f, q75: %.4f\n", n.Q25, n.Q50, n.Q75)
			} else if info.MostFrequent != "" {
				fmt.Printf("  most frequent: %s\n", info.MostFrequent)
			}
		}
	},
}
