// Package ingest parses delimited text and spreadsheet workbooks into
// dataset tables. The delimiter is sniffed from the first line, column
// dtypes are inferred from cell contents, and common missing-value
// tokens become the missing sentinel.
package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/chandrashekharb369/Data-cleaning-tool/pkg/dataset"
)

// DelimiterCandidates is the fixed set tried during sniffing, in
// precedence order for ties.
var DelimiterCandidates = []rune{',', ';', '\t', '|', ':'}

// delimitedExtensions and spreadsheetExtensions define which files Read
// accepts.
var (
	delimitedExtensions   = map[string]bool{".csv": true, ".tsv": true, ".txt": true}
	spreadsheetExtensions = map[string]bool{".xlsx": true, ".xlsm": true}
)

// Supported reports whether Read handles the path's extension.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return delimitedExtensions[ext] || spreadsheetExtensions[ext]
}

// SniffDelimiter picks the candidate with the highest count in the first
// line. Ties and all-zero counts fall back to the earliest candidate,
// which makes comma the default.
func SniffDelimiter(firstLine string) rune {
	best := DelimiterCandidates[0]
	bestCount := strings.Count(firstLine, string(best))
	for _, cand := range DelimiterCandidates[1:] {
		if n := strings.Count(firstLine, string(cand)); n > bestCount {
			best = cand
			bestCount = n
		}
	}
	return best
}

// Read loads a table from a delimited or spreadsheet file, dispatching
// on the extension.
func Read(path string) (*dataset.Table, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", dataset.ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case delimitedExtensions[ext]:
		return ReadDelimited(path)
	case spreadsheetExtensions[ext]:
		return ReadSpreadsheet(path)
	default:
		return nil, fmt.Errorf("%w: %s", dataset.ErrUnsupportedFormat, ext)
	}
}

// ReadDelimited parses a delimited text file with a sniffed separator.
// The first record is the header.
func ReadDelimited(path string) (*dataset.Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	text := string(raw)
	firstLine := text
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		firstLine = text[:i]
	}

	r := csv.NewReader(strings.NewReader(text))
	r.Comma = SniffDelimiter(firstLine)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("parse %s: empty file", path)
	}
	return FromRecords(records[0], records[1:])
}

// ReadSpreadsheet parses the first sheet of a workbook. The first row is
// the header.
func ReadSpreadsheet(path string) (*dataset.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("workbook %s: first sheet is empty", path)
	}
	return FromRecords(rows[0], rows[1:])
}

// FromRecords builds a table from a header row and data rows. Short rows
// are padded with missing cells; duplicate header names are suffixed to
// stay unique.
func FromRecords(header []string, rows [][]string) (*dataset.Table, error) {
	names := uniqueNames(header)
	cols := make([]*dataset.Column, len(names))
	for ci, name := range names {
		raw := make([]string, len(rows))
		for ri, row := range rows {
			if ci < len(row) {
				raw[ri] = row[ci]
			}
		}
		cols[ci] = inferColumn(name, raw)
	}
	return dataset.New(cols...)
}

// uniqueNames trims header cells and disambiguates repeats with numeric
// suffixes so the table constructor's uniqueness invariant holds.
func uniqueNames(header []string) []string {
	out := make([]string, len(header))
	seen := make(map[string]struct{}, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		candidate := name
		for n := 1; ; n++ {
			if _, ok := seen[candidate]; !ok {
				break
			}
			candidate = fmt.Sprintf("%s_%d", name, n)
		}
		seen[candidate] = struct{}{}
		out[i] = candidate
	}
	return out
}
