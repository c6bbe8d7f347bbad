package paramerrors

import "errors"

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrSchema indicates a malformed parameter definition.
	ErrSchema = errors.New("invalid parameter definition")

	// ErrValidation indicates a supplied value failed validation.
	ErrValidation = errors.New("parameter validation failed")
)

// SchemaError represents a malformed parameter definition, such as an array
// parameter without a collection format or item type, an unknown type, or a
// pattern that does not compile.
//
// A SchemaError signals a deployment or configuration bug, never a bad
// request: the definition was wrong before any value arrived.
type SchemaError struct {
	// Param is the name of the parameter whose definition is malformed
	Param string
	// Message describes the definition fault
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *SchemaError) Error() string {
	msg := "invalid parameter definition"
	if e.Param != "" {
		msg += " for '" + e.Param + "'"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *SchemaError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}

// ValidationError represents a supplied value that does not satisfy its
// parameter definition: wrong type, pattern mismatch, enum violation, or a
// malformed date.
//
// Message is the complete user-visible reason and already names the
// parameter; callers should translate this error to a bad-request response.
type ValidationError struct {
	// Param is the name of the parameter that failed validation
	Param string
	// Value is the offending raw value as supplied by the client
	Value string
	// Message is the human-readable, user-visible failure reason
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns the user-visible failure reason.
func (e *ValidationError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "parameter validation failed"
		if e.Param != "" {
			msg += " for '" + e.Param + "'"
		}
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
