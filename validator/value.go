package validator

import "time"

// Kind identifies which variant a Value holds.
type Kind int

// Value kinds.
const (
	// KindAbsent marks a parameter that was not supplied and has no default.
	KindAbsent Kind = iota
	// KindDefault marks a parameter that was not supplied; the definition's
	// default value is carried as-is, un-validated and un-coerced.
	KindDefault
	KindString
	KindInteger
	KindNumber
	KindBoolean
	KindTime
	KindArray
)

// String returns the kind name for logging and diagnostics.
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindDefault:
		return "default"
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindTime:
		return "time"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Value is a validated, typed parameter value: one of string, integer,
// float, boolean, timezone-aware instant, or an ordered sequence of Values.
// The zero Value is the absent marker.
//
// Scalar Values retain the raw string they were coerced from, available via
// Raw.
type Value struct {
	kind  Kind
	raw   string
	i     int64
	f     float64
	b     bool
	t     time.Time
	items []Value
	def   any
}

func absentValue() Value             { return Value{kind: KindAbsent} }
func defaultValue(def any) Value     { return Value{kind: KindDefault, def: def} }
func stringValue(raw string) Value   { return Value{kind: KindString, raw: raw} }
func arrayValue(items []Value) Value { return Value{kind: KindArray, items: items} }

func intValue(raw string, i int64) Value {
	return Value{kind: KindInteger, raw: raw, i: i}
}

func floatValue(raw string, f float64) Value {
	return Value{kind: KindNumber, raw: raw, f: f}
}

func boolValue(raw string, b bool) Value {
	return Value{kind: KindBoolean, raw: raw, b: b}
}

func timeValue(raw string, t time.Time) Value {
	return Value{kind: KindTime, raw: raw, t: t}
}

// Kind returns which variant this Value holds.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether this Value is the absent marker.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// Raw returns the raw string the value was coerced from. It is empty for
// absent, default, and array values.
func (v Value) Raw() string { return v.raw }

// Str returns the string value. Valid only for KindString.
func (v Value) Str() string { return v.raw }

// Int returns the integer value. Valid only for KindInteger.
func (v Value) Int() int64 { return v.i }

// Float returns the floating point value. Valid only for KindNumber.
func (v Value) Float() float64 { return v.f }

// Bool returns the boolean value. Valid only for KindBoolean.
func (v Value) Bool() bool { return v.b }

// Time returns the timezone-aware instant. Valid only for KindTime.
func (v Value) Time() time.Time { return v.t }

// Items returns the ordered element values. Valid only for KindArray.
func (v Value) Items() []Value { return v.items }

// Default returns the definition's default value as authored.
// Valid only for KindDefault.
func (v Value) Default() any { return v.def }

// Interface returns the value as a plain Go value: string, int64, float64,
// bool, time.Time, or []any for arrays. Default values are returned as
// authored; absent yields nil.
func (v Value) Interface() any {
	switch v.kind {
	case KindAbsent:
		return nil
	case KindDefault:
		return v.def
	case KindString:
		return v.raw
	case KindInteger:
		return v.i
	case KindNumber:
		return v.f
	case KindBoolean:
		return v.b
	case KindTime:
		return v.t
	case KindArray:
		out := make([]any, len(v.items))
		for i, item := range v.items {
			out[i] = item.Interface()
		}
		return out
	default:
		return nil
	}
}
