// Shared helpers for datacleaner CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/chandrashekharb369/Data-cleaning-tool/internal/store"
	"github.com/chandrashekharb369/Data-cleaning-tool/internal/validate"
	"github.com/chandrashekharb369/Data-cleaning-tool/pkg/dataset"
)

// loadStore validates the input file and loads it into a fresh store.
// Validation errors are user errors; load failures are system errors.
func loadStore(path string) *store.Store {
	result := validate.File(path)
	if !result.Valid {
		for _, msg := range result.Errors {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(exitUserError)
	}
	for _, msg := range result.Warnings {
		logger.Warn(msg)
	}

	s := store.New(logger)
	if err := s.Load(path); err != nil {
		fmt.Fprintln(os.Stderr, "load:", err)
		if errors.Is(err, dataset.ErrUnsupportedFormat) || errors.Is(err, dataset.ErrFileNotFound) {
			os.Exit(exitUserError)
		}
		os.Exit(exitSysError)
	}
	return s
}

// printJSON marshals v with indentation and writes it to stdout.
func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "marshal JSON:", err)
		os.Exit(exitSysError)
	}
	fmt.Println(string(out))
}

// printSummary renders the store's summary report as text.
func printSummary(s *store.Store) {
	summary := s.Summary()
	fmt.Printf("Rows:                 %d\n", summary.Rows)
	fmt.Printf("Columns:              %d\n", summary.Columns)
	fmt.Printf("Memory usage:         %s\n", summary.Memory)
	fmt.Printf("Duplicate rows:       %d\n", summary.Duplicates)
	fmt.Printf("Numeric columns:      %d\n", summary.NumericColumns)
	fmt.Printf("Categorical columns:  %d\n", summary.CategoricalColumns)
	fmt.Printf("Missing values:       %d (in %d columns)\n", summary.TotalMissing, summary.ColumnsWithMissing)
}

// parsePairs converts repeated "key=value" flag values into a map.
func parsePairs(pairs []string, flagName string) (map[string]string, error) {
	m := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" || value == "" {
			return nil, fmt.Errorf("--%s expects key=value, got %q", flagName, pair)
		}
		m[key] = value
	}
	return m, nil
}

// sortedKeys returns the map's keys in ascending order for stable output.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// userError prints the message and exits with the user error code.
func userError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(exitUserError)
}

// sysError prints the message and exits with the system error code.
func sysError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(exitSysError)
}
