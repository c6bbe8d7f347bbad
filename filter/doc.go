// Package filter translates validated parameter values into SQL filter
// fragments.
//
// A validated parameter often feeds straight into a lookup: build an
// equality condition against a column, with an optional remapping from the
// externally visible enum values to the values actually stored. Absent
// parameters produce a no-op expression, and list-valued parameters an OR
// of per-element equalities, so callers can compose WHERE clauses without
// caring whether the parameter was supplied:
//
//	expr := filter.Match("status", value,
//	    filter.WithRemap(map[string]any{"active": 1, "inactive": 0}))
//	if clause, args := expr.Clause(); clause != "" {
//	    query += " WHERE " + clause
//	    // run with args...
//	}
//
// Fragments use ? placeholders; values are always carried as arguments,
// never interpolated into the SQL text.
package filter
