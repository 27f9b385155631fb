// Export command for the datacleaner CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chandrashekharb369/Data-cleaning-tool/internal/export"
	"github.com/chandrashekharb369/Data-cleaning-tool/internal/store"
	"github.com/chandrashekharb369/Data-cleaning-tool/pkg/dataset"
	"github.com/spf13/cobra"
)

// Export command flag values.
var (
	flagExportOutput    string
	flagExportFormat    string
	flagSheet           string
	flagTable           string
	flagIncludeAnalysis bool
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Load a dataset and export it to another format",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := loadStore(args[0])
		out := writeOutput(s, flagExportOutput, flagExportFormat)

		if flagJSON {
			printJSON(map[string]any{
				"output":  out,
				"summary": s.Summary(),
			})
			return
		}
		fmt.Printf("Exported %d rows to %s\n", s.Summary().Rows, out)
	},
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOutput, "output", "o", "", "output file path (required)")
	exportCmd.Flags().StringVar(&flagExportFormat, "format", "", "output format (csv|xlsx|json|sqlite|report; default from extension)")
	exportCmd.Flags().StringVar(&flagSheet, "sheet", "", "sheet name for xlsx output")
	exportCmd.Flags().StringVar(&flagTable, "table", "", "table name for sqlite output")
	exportCmd.Flags().BoolVar(&flagIncludeAnalysis, "include-analysis", false, "embed analysis results in report output")
	exportCmd.MarkFlagRequired("output")
}

// writeOutput dispatches to the exporter matching the requested format
// and returns the resolved output path. An empty format falls back to the
// output file extension and then to the configured default.
func writeOutput(s *store.Store, path, format string) string {
	if dir := config.GetString(cfgKeyExportDir); dir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	if format == "" {
		format = formatFromExtension(path)
	}
	if format == "" {
		format = config.GetString(cfgKeyOutputFormat)
	}

	sheet := flagSheet
	if sheet == "" {
		sheet = config.GetString(cfgKeySheetName)
	}
	table := flagTable
	if table == "" {
		table = config.GetString(cfgKeyTableName)
	}

	var err error
	switch format {
	case "csv":
		err = export.CSV(s, path)
	case "xlsx":
		err = export.XLSX(s, path, sheet)
	case "json":
		err = export.JSON(s, path)
	case "sqlite":
		err = export.SQLite(s, path, table)
	case "report":
		err = export.Report(s, path, flagIncludeAnalysis)
	default:
		userError("unknown output format %q (want csv, xlsx, json, sqlite, or report)", format)
	}
	if err != nil {
		if errors.Is(err, dataset.ErrNoData) {
			userError("export: %v", err)
		}
		fmt.Fprintln(os.Stderr, "export:", err)
		os.Exit(exitSysError)
	}
	return path
}

// formatFromExtension maps an output path's extension to an export format.
// Unrecognized extensions return "".
func formatFromExtension(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return "csv"
	case ".xlsx":
		return "xlsx"
	case ".json":
		return "json"
	case ".db", ".sqlite", ".sqlite3":
		return "sqlite"
	}
	return ""
}
