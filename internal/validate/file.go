// Package validate checks files, tables, and individual columns before
// they are loaded or analyzed. Results are structured error/warning
// lists, never failures: a validator reports, the caller decides.
package validate

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/chandrashekharb369/Data-cleaning-tool/internal/ingest"
)

// largeFileBytes is the size above which loading gets a warning.
const largeFileBytes = 100 * 1024 * 1024

// fileTypes maps accepted extensions to their display label.
var fileTypes = map[string]string{
	".csv":  "CSV",
	".tsv":  "TSV",
	".txt":  "Text",
	".xlsx": "Excel",
	".xlsm": "Excel",
}

type FileResult struct {
	Valid    bool     `json:"is_valid"`
	FileType string   `json:"file_type,omitempty"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// File checks that a path points to a loadable data file: it must
// exist, be a regular file with a supported extension, and pass a
// shallow content peek. Oversized files only warn.
func File(path string) FileResult {
	result := FileResult{Errors: []string{}, Warnings: []string{}}

	info, err := os.Stat(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("File does not exist: %s", path))
		return result
	}
	if !info.Mode().IsRegular() {
		result.Errors = append(result.Errors, fmt.Sprintf("Path is not a file: %s", path))
		return result
	}

	ext := strings.ToLower(filepath.Ext(path))
	label, ok := fileTypes[ext]
	if !ok {
		result.Errors = append(result.Errors, fmt.Sprintf("Unsupported file format: %s", ext))
		return result
	}
	result.FileType = label

	if info.Size() > largeFileBytes {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Large file size: %.1f MB", float64(info.Size())/(1024*1024)))
	}

	if label == "Excel" {
		peekSpreadsheet(path, &result)
	} else {
		peekDelimited(path, &result)
	}

	result.Valid = len(result.Errors) == 0
	return result
}

// peekDelimited reads the first five lines and checks that at least one
// delimiter candidate has a consistent per-line count.
func peekDelimited(path string, result *FileResult) {
	f, err := os.Open(path)
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Content check failed: %v", err))
		return
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for len(lines) < 5 && scanner.Scan() {
		if line := scanner.Text(); strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		result.Errors = append(result.Errors, "File appears to be empty")
		return
	}

	for _, cand := range ingest.DelimiterCandidates {
		counts := make(map[int]bool, 2)
		for _, line := range lines {
			counts[strings.Count(line, string(cand))] = true
		}
		// Allow slight variation between header and data lines.
		if len(counts) <= 2 && strings.Count(lines[0], string(cand)) > 0 {
			return
		}
	}
	result.Warnings = append(result.Warnings, "Could not detect consistent delimiter")
}

// peekSpreadsheet checks that the workbook opens and the first sheet
// holds at least one row.
func peekSpreadsheet(path string, result *FileResult) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open workbook: %v", err))
		return
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Workbook has no worksheets")
		return
	}
	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Cannot read first sheet: %v", err))
		return
	}
	if len(rows) == 0 {
		result.Warnings = append(result.Warnings, "First worksheet appears to be empty")
	}
}
