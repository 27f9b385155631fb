package ingest

import (
	"strconv"
	"strings"
	"time"

	"github.com/chandrashekharb369/Data-cleaning-tool/pkg/dataset"
)

// missingTokens are raw cell contents treated as the missing sentinel.
var missingTokens = map[string]bool{
	"":     true,
	"na":   true,
	"n/a":  true,
	"nan":  true,
	"null": true,
	"none": true,
}

// DatetimeLayouts are tried in order when parsing datetime cells.
var DatetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"02.01.2006",
}

var boolTokens = map[string]bool{
	"true": true, "false": false,
	"yes": true, "no": false,
	"t": true, "f": false,
	"y": true, "n": false,
}

// IsMissingToken reports whether a raw cell reads as missing.
func IsMissingToken(s string) bool {
	return missingTokens[strings.ToLower(strings.TrimSpace(s))]
}

// ParseNumeric parses a raw cell as a float. Thousands separators are
// not handled; a cell like "1,234" reads as categorical instead.
func ParseNumeric(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f, err == nil
}

// ParseDatetime tries the known layouts in order.
func ParseDatetime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range DatetimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseBool recognizes the usual boolean spellings, case-insensitively.
func ParseBool(s string) (bool, bool) {
	b, ok := boolTokens[strings.ToLower(strings.TrimSpace(s))]
	return b, ok
}

// inferColumn picks the narrowest dtype that fits every non-missing cell:
// numeric, then datetime, then bool, else string. A column whose cells
// are all missing stays a string column.
func inferColumn(name string, raw []string) *dataset.Column {
	numeric, datetime, boolean := true, true, true
	nonMissing := 0
	for _, s := range raw {
		if IsMissingToken(s) {
			continue
		}
		nonMissing++
		if _, ok := ParseNumeric(s); !ok {
			numeric = false
		}
		if _, ok := ParseDatetime(s); !ok {
			datetime = false
		}
		if _, ok := ParseBool(s); !ok {
			boolean = false
		}
		if !numeric && !datetime && !boolean {
			break
		}
	}

	dtype := dataset.TypeString
	if nonMissing > 0 {
		switch {
		case numeric:
			dtype = dataset.TypeNumeric
		case datetime:
			dtype = dataset.TypeDatetime
		case boolean:
			dtype = dataset.TypeBool
		}
	}

	values := make([]dataset.Value, len(raw))
	for i, s := range raw {
		values[i] = ParseCell(s, dtype)
	}
	return &dataset.Column{Name: name, Type: dtype, Values: values}
}

// ParseCell converts a raw cell into a value of the given dtype, falling
// back to missing when the cell does not parse.
func ParseCell(s string, dtype dataset.DType) dataset.Value {
	if IsMissingToken(s) {
		return dataset.Missing()
	}
	switch dtype {
	case dataset.TypeNumeric:
		if f, ok := ParseNumeric(s); ok {
			return dataset.Num(f)
		}
	case dataset.TypeDatetime:
		if t, ok := ParseDatetime(s); ok {
			return dataset.Time(t)
		}
	case dataset.TypeBool:
		if b, ok := ParseBool(s); ok {
			return dataset.Bool(b)
		}
	case dataset.TypeString:
		return dataset.Str(s)
	}
	return dataset.Missing()
}
