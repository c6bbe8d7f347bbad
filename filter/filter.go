package filter

import (
	"fmt"
	"strings"

	"github.com/paulway/paramval/validator"
)

// Expr is a SQL filter fragment with its bound arguments. The zero Expr is
// the no-op filter produced for absent parameters.
type Expr struct {
	clause string
	args   []any
}

// Clause returns the SQL fragment and its arguments. A no-op expression
// returns an empty clause and nil arguments; callers should skip it when
// composing a WHERE clause.
func (e Expr) Clause() (string, []any) {
	return e.clause, e.args
}

// IsNoop reports whether this expression filters nothing.
func (e Expr) IsNoop() bool {
	return e.clause == ""
}

// Option is a functional option for building a filter expression.
type Option func(*config)

// config holds the configuration for one Match call.
type config struct {
	remap map[string]any
}

// WithRemap remaps externally visible parameter values to the values
// actually stored, keyed by the raw string form of the value (for defaulted
// values, the string rendering of the default). Values with no entry pass
// through unchanged.
func WithRemap(remap map[string]any) Option {
	return func(c *config) {
		c.remap = remap
	}
}

// Match builds an equality filter for column from a validated value.
//
//   - absent value: no-op expression
//   - array value: OR of per-element equalities, in element order
//   - anything else (including an un-validated default): single equality
func Match(column string, value validator.Value, opts ...Option) Expr {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	switch value.Kind() {
	case validator.KindAbsent:
		return Expr{}

	case validator.KindArray:
		items := value.Items()
		if len(items) == 0 {
			return Expr{}
		}
		clauses := make([]string, len(items))
		args := make([]any, len(items))
		for i, item := range items {
			clauses[i] = column + " = ?"
			args[i] = cfg.resolve(item)
		}
		clause := strings.Join(clauses, " OR ")
		if len(items) > 1 {
			clause = "(" + clause + ")"
		}
		return Expr{clause: clause, args: args}

	default:
		return Expr{clause: column + " = ?", args: []any{cfg.resolve(value)}}
	}
}

// resolve applies the remap table to one scalar value.
func (c *config) resolve(value validator.Value) any {
	if c.remap != nil {
		key := value.Raw()
		if value.Kind() == validator.KindDefault {
			key = fmt.Sprint(value.Default())
		}
		if mapped, ok := c.remap[key]; ok {
			return mapped
		}
	}
	return value.Interface()
}
