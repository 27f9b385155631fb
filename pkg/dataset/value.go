package dataset

import (
	"math"
	"strconv"
	"time"
)

// Kind identifies what a single cell holds. Missing is a first-class
// kind: a cell either holds a typed value or the missing sentinel, never
// an implicit zero.
type Kind uint8

const (
	KindMissing Kind = iota
	KindNumeric
	KindString
	KindBool
	KindDatetime
)

func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindDatetime:
		return "datetime"
	default:
		return "missing"
	}
}

// Value is a single table cell. The zero Value is the missing sentinel.
type Value struct {
	kind Kind
	num  float64
	str  string
	b    bool
	ts   time.Time
}

// Missing returns the missing-cell sentinel.
func Missing() Value { return Value{} }

// Num wraps a float64 cell. NaN is normalized to missing so that a
// numeric column never carries two distinct "not a value" encodings.
func Num(v float64) Value {
	if math.IsNaN(v) {
		return Missing()
	}
	return Value{kind: KindNumeric, num: v}
}

// Str wraps a string cell.
func Str(s string) Value { return Value{kind: KindString, str: s} }

// Bool wraps a boolean cell.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Time wraps a datetime cell.
func Time(t time.Time) Value { return Value{kind: KindDatetime, ts: t} }

// Kind reports the cell's kind.
func (v Value) Kind() Kind { return v.kind }

// IsMissing reports whether the cell holds the missing sentinel.
func (v Value) IsMissing() bool { return v.kind == KindMissing }

// Float returns the numeric payload. ok is false for non-numeric cells.
func (v Value) Float() (float64, bool) {
	if v.kind != KindNumeric {
		return 0, false
	}
	return v.num, true
}

// Text returns the string payload. ok is false for non-string cells.
func (v Value) Text() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// BoolVal returns the boolean payload. ok is false for non-bool cells.
func (v Value) BoolVal() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// TimeVal returns the datetime payload. ok is false for non-datetime cells.
func (v Value) TimeVal() (time.Time, bool) {
	if v.kind != KindDatetime {
		return time.Time{}, false
	}
	return v.ts, true
}

// Equal reports value equality. Missing equals missing, which is what
// duplicate-row detection needs (pandas treats NaN rows as duplicates).
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNumeric:
		return v.num == o.num
	case KindString:
		return v.str == o.str
	case KindBool:
		return v.b == o.b
	case KindDatetime:
		return v.ts.Equal(o.ts)
	default:
		return true
	}
}

// String renders the cell for display, logs, and delimited export.
// Missing renders as the empty string.
func (v Value) String() string {
	switch v.kind {
	case KindNumeric:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindString:
		return v.str
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindDatetime:
		return v.ts.Format(time.RFC3339)
	default:
		return ""
	}
}

// key renders the cell for row-identity hashing. Unlike String it
// prefixes the kind so "true" (string) and true (bool) never collide.
func (v Value) key() string {
	switch v.kind {
	case KindNumeric:
		return "n:" + strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindString:
		return "s:" + v.str
	case KindBool:
		return "b:" + strconv.FormatBool(v.b)
	case KindDatetime:
		return "t:" + strconv.FormatInt(v.ts.UnixNano(), 10)
	default:
		return "?"
	}
}
