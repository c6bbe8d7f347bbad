package validator

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/paulway/paramval/paramerrors"
	"github.com/paulway/paramval/schema"
)

// truthyValues are the only strings that coerce to boolean true.
// The match is case-sensitive: "True" and "TRUE" coerce to false.
var truthyValues = map[string]bool{
	"true": true,
	"1":    true,
	"yes":  true,
}

// collectionDelimiters maps delimiter-based collection formats to their
// separator. The "multi" format is not here: it arrives pre-split.
var collectionDelimiters = map[string]string{
	schema.CollectionCSV:   ",",
	schema.CollectionSSV:   " ",
	schema.CollectionTSV:   "\t",
	schema.CollectionPipes: "|",
}

// Validator validates raw parameter values against their definitions.
// It is stateless apart from its configuration and safe for concurrent use.
//
// Create a Validator using the New function:
//
//	v, err := validator.New(validator.WithTimeZone(time.UTC))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	value, err := v.Validate(param, "2024-05-01")
type Validator struct {
	// loc is the zone attached to parsed dates and to naive datetimes.
	loc *time.Location

	// logger receives debug-level validation diagnostics.
	logger schema.Logger
}

// Option is a functional option for configuring a Validator.
type Option func(*Validator) error

// WithTimeZone sets the zone used to make parsed dates and naive datetimes
// timezone-aware. Default is UTC.
func WithTimeZone(loc *time.Location) Option {
	return func(v *Validator) error {
		if loc == nil {
			return &paramerrors.SchemaError{Message: "time zone cannot be nil"}
		}
		v.loc = loc
		return nil
	}
}

// WithLogger sets the logger for validation diagnostics.
// Default is schema.NopLogger.
func WithLogger(logger schema.Logger) Option {
	return func(v *Validator) error {
		if logger == nil {
			return &paramerrors.SchemaError{Message: "logger cannot be nil"}
		}
		v.logger = logger
		return nil
	}
}

// New creates a Validator with the given options.
func New(opts ...Option) (*Validator, error) {
	v := &Validator{
		loc:    time.UTC,
		logger: schema.NopLogger{},
	}
	for _, opt := range opts {
		if err := opt(v); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// Validate validates a single raw string against the parameter's definition
// and returns the coerced, typed value.
//
// The error is a *paramerrors.SchemaError when the definition itself is
// malformed, or a *paramerrors.ValidationError when the value does not
// satisfy it. For a "multi" array parameter the single value is treated as
// a one-element sequence; use ValidateValues for repeated keys.
func (v *Validator) Validate(p *schema.Parameter, raw string) (Value, error) {
	if p == nil {
		return Value{}, &paramerrors.SchemaError{Message: "parameter is nil"}
	}
	return v.validatePart(p.Name, p.Constraints(), rawValue{one: raw})
}

// ValidateValues validates a raw value carried as repeated keys, one string
// per occurrence of the parameter. This is the input shape of the "multi"
// collection format; for any other definition the first occurrence is used.
func (v *Validator) ValidateValues(p *schema.Parameter, values []string) (Value, error) {
	if p == nil {
		return Value{}, &paramerrors.SchemaError{Message: "parameter is nil"}
	}
	return v.validatePart(p.Name, p.Constraints(), rawValue{many: values, isMany: true})
}

// rawValue is the raw input to one validation step: either a single string
// or an already-split sequence of strings (repeated keys).
type rawValue struct {
	one    string
	many   []string
	isMany bool
}

// first returns the single string form: the value itself, or the first
// occurrence when the input arrived pre-split.
func (r rawValue) first() string {
	if !r.isMany {
		return r.one
	}
	if len(r.many) == 0 {
		return ""
	}
	return r.many[0]
}

// list returns the sequence form, wrapping a single value as one element.
func (r rawValue) list() []string {
	if r.isMany {
		return r.many
	}
	return []string{r.one}
}

// validatePart validates one node of the constraint tree. Items can carry
// the same constraints as a parameter, recursively, so array elements are
// handled by the same function.
func (v *Validator) validatePart(name string, n *schema.Items, rv rawValue) (Value, error) {
	if n.Type == schema.TypeArray {
		return v.validateArray(name, n, rv)
	}

	raw := rv.first()
	var val Value

	switch n.Type {
	case schema.TypeBoolean:
		val = boolValue(raw, truthyValues[raw])

	case schema.TypeInteger:
		i, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Value{}, &paramerrors.ValidationError{
				Param:   name,
				Value:   raw,
				Message: fmt.Sprintf("The value for the '%s' field must be an integer", name),
			}
		}
		val = intValue(raw, i)

	case schema.TypeNumber:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Value{}, &paramerrors.ValidationError{
				Param:   name,
				Value:   raw,
				Message: fmt.Sprintf("The value for the '%s' field must be a floating point number", name),
			}
		}
		val = floatValue(raw, f)

	case schema.TypeString:
		var err error
		val, err = v.validateString(name, n, raw)
		if err != nil {
			return Value{}, err
		}

	case "":
		return Value{}, &paramerrors.SchemaError{Param: name, Message: "parameter type not defined"}

	default:
		return Value{}, &paramerrors.SchemaError{
			Param:   name,
			Message: fmt.Sprintf("parameter type %q not recognised", n.Type),
		}
	}

	if len(n.Enum) > 0 && !enumContains(n.Enum, val) {
		return Value{}, &paramerrors.ValidationError{
			Param:   name,
			Value:   raw,
			Message: fmt.Sprintf("The value for the '%s' field is required to be one of the following values: %s",
				name, joinEnum(n.Enum)),
		}
	}

	// String patterns were already checked, from the start of the value,
	// inside the string branch; the pattern runs exactly once. For other
	// types the raw string form must match in full.
	if n.Pattern != "" && n.Type != schema.TypeString {
		re, err := schema.CompileFullPattern(n.Pattern)
		if err != nil {
			return Value{}, &paramerrors.SchemaError{
				Param:   name,
				Message: fmt.Sprintf("invalid pattern %q", n.Pattern),
				Cause:   err,
			}
		}
		if !re.MatchString(raw) {
			return Value{}, &paramerrors.ValidationError{
				Param:   name,
				Value:   raw,
				Message: fmt.Sprintf("The value '%s' for the '%s' field did not match the pattern '%s'",
					raw, name, n.Pattern),
			}
		}
	}

	v.logger.Debug("validated parameter", "name", name, "type", n.Type, "kind", val.Kind().String())
	return val, nil
}

// validateString applies the string-specific checks in order: pattern
// (match-from-start), then the date / date-time formats. Other format
// values pass through unchecked.
func (v *Validator) validateString(name string, n *schema.Items, raw string) (Value, error) {
	if n.Pattern != "" {
		re, err := schema.CompilePrefixPattern(n.Pattern)
		if err != nil {
			return Value{}, &paramerrors.SchemaError{
				Param:   name,
				Message: fmt.Sprintf("invalid pattern %q", n.Pattern),
				Cause:   err,
			}
		}
		if !re.MatchString(raw) {
			return Value{}, &paramerrors.ValidationError{
				Param:   name,
				Value:   raw,
				Message: fmt.Sprintf("The value of the '%s' field did not match the pattern '%s'", name, n.Pattern),
			}
		}
	}

	switch n.Format {
	case schema.FormatDate:
		// Calendar dates become timezone-aware instants at midnight in the
		// configured zone.
		t, err := time.ParseInLocation("2006-01-02", raw, v.loc)
		if err != nil {
			return Value{}, &paramerrors.ValidationError{
				Param:   name,
				Value:   raw,
				Message: fmt.Sprintf("The value for the '%s' field did not look like a date", name),
			}
		}
		return timeValue(raw, t), nil

	case schema.FormatDateTime:
		t, err := v.parseDateTime(raw)
		if err != nil {
			return Value{}, &paramerrors.ValidationError{
				Param:   name,
				Value:   raw,
				Message: fmt.Sprintf("The value for the '%s' field did not look like a datetime", name),
			}
		}
		return timeValue(raw, t), nil
	}

	return stringValue(raw), nil
}

// dateTimeLayouts are tried in order by parseDateTime. Layouts marked naive
// carry no zone designator and are parsed in the configured zone.
var dateTimeLayouts = []struct {
	layout string
	naive  bool
}{
	{time.RFC3339Nano, false},
	{"2006-01-02T15:04:05.999999999", true},
	{"2006-01-02T15:04", true},
	{"2006-01-02 15:04:05.999999999", true},
	{"2006-01-02 15:04", true},
}

// parseDateTime parses an ISO 8601 style timestamp into a timezone-aware
// instant. Timestamps with an explicit offset keep it; naive timestamps get
// the configured zone attached.
func (v *Validator) parseDateTime(raw string) (time.Time, error) {
	var lastErr error
	for _, dl := range dateTimeLayouts {
		var t time.Time
		var err error
		if dl.naive {
			t, err = time.ParseInLocation(dl.layout, raw, v.loc)
		} else {
			t, err = time.Parse(dl.layout, raw)
		}
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// validateArray splits the raw value per the collection format and
// recursively validates each element against the item definition. The first
// failing element aborts the whole array (fail-fast, no partial results);
// element order is preserved.
func (v *Validator) validateArray(name string, n *schema.Items, rv rawValue) (Value, error) {
	cf := n.CollectionFormat
	if cf == "" {
		return Value{}, &paramerrors.SchemaError{
			Param:   name,
			Message: "array parameter collection format not defined",
		}
	}

	var parts []string
	if delim, ok := collectionDelimiters[cf]; ok {
		parts = strings.Split(rv.first(), delim)
	} else if cf == schema.CollectionMulti {
		parts = rv.list()
	} else {
		return Value{}, &paramerrors.SchemaError{
			Param:   name,
			Message: fmt.Sprintf("array parameter collection format %q not recognised", cf),
		}
	}

	if n.Items == nil {
		return Value{}, &paramerrors.SchemaError{
			Param:   name,
			Message: "array parameter has not defined the type of its items",
		}
	}

	items := make([]Value, 0, len(parts))
	for _, part := range parts {
		item, err := v.validatePart(name, n.Items, rawValue{one: part})
		if err != nil {
			return Value{}, err
		}
		items = append(items, item)
	}
	return arrayValue(items), nil
}

// enumContains reports whether the coerced value matches one of the enum
// members. Members come from YAML/JSON documents, so numeric members may be
// int, int64, uint64, or float64.
func enumContains(enum []any, val Value) bool {
	for _, m := range enum {
		if enumMatch(m, val) {
			return true
		}
	}
	return false
}

func enumMatch(m any, val Value) bool {
	switch val.kind {
	case KindInteger:
		switch n := m.(type) {
		case int:
			return int64(n) == val.i
		case int64:
			return n == val.i
		case uint64:
			return val.i >= 0 && n == uint64(val.i)
		case float64:
			return n == float64(val.i)
		}
	case KindNumber:
		switch n := m.(type) {
		case int:
			return float64(n) == val.f
		case int64:
			return float64(n) == val.f
		case float64:
			return n == val.f
		}
	case KindBoolean:
		if b, ok := m.(bool); ok {
			return b == val.b
		}
	}
	// Strings, times, and mismatched member types compare on the raw form.
	return fmt.Sprint(m) == val.raw
}

// joinEnum renders enum members for the validation failure message,
// naming every allowed value.
func joinEnum(enum []any) string {
	parts := make([]string, len(enum))
	for i, m := range enum {
		parts[i] = fmt.Sprint(m)
	}
	return strings.Join(parts, ", ")
}
