// Package validator validates raw request parameter values against their
// definitions, coercing strings into typed values.
//
// Validation is a pure function over an immutable parameter definition: no
// I/O, no shared mutable state, and a single Validator is safe for
// concurrent use across requests.
//
// # Coercion
//
// The declared type drives coercion:
//
//   - boolean: exactly "true", "1", or "yes" coerce to true; every other
//     string coerces to false (the coercion itself never fails)
//   - integer: base-10 integer, failure is a client error
//   - number: floating point, failure is a client error
//   - string: kept as-is, subject to pattern and date/date-time format checks
//   - array: split per the collection format and each element validated
//     recursively against the item definition, fail-fast and order-preserving
//
// After coercion, enum membership is enforced for every non-array type, and
// a pattern on a non-string type is matched in full against the raw string.
// String patterns use match-from-start semantics and run exactly once.
// Formats other than "date" and "date-time" pass through unchecked; this is
// a known limitation, not an endorsement of those values.
//
// # Errors
//
// Failures split into two tiers (see package paramerrors): a malformed
// definition yields a *paramerrors.SchemaError, a bad value yields a
// *paramerrors.ValidationError whose Message is user-visible.
//
// # Request lookup
//
// The Source interface abstracts where raw values come from, with one
// variant per parameter location. FromRequest assembles the standard set
// from an *http.Request:
//
//	v, _ := validator.New()
//	sources := validator.FromRequest(req, pathParams)
//	value, err := v.ValueOf(param, sources)
//
// ValueOf resolves absent parameters: a defined default is returned
// un-validated, a missing required parameter is a client error, and an
// optional parameter with no default yields an explicit absent Value.
package validator
