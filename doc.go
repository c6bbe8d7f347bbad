// Package paramval validates HTTP request parameters against OpenAPI-style
// parameter definitions.
//
// paramval converts raw string input (query parameters, headers, path
// segments, form fields) into typed values according to a declarative
// parameter definition, and reports mismatches with a two-tier error
// taxonomy that separates definition-authoring faults from client input
// faults.
//
// # Overview
//
// The library consists of four packages:
//
//   - schema: the parameter definition model and document loader
//   - validator: per-parameter validation, type coercion, and request lookup
//   - filter: translation of validated values into SQL filter fragments
//   - paramerrors: structured error types shared by all packages
//
// # Quick Start
//
// Load parameter definitions and validate a raw value:
//
//	import (
//		"github.com/paulway/paramval/schema"
//		"github.com/paulway/paramval/validator"
//	)
//
//	doc, err := schema.LoadWithOptions(schema.WithFilePath("params.yaml"))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	v, _ := validator.New()
//	value, err := v.Validate(doc.ByName("page", schema.InQuery), "2")
//
// Validate parameters straight from an incoming request:
//
//	sources := validator.FromRequest(req, pathParams)
//	value, err := v.ValueOf(param, sources)
//
// Errors are classified: use errors.Is with paramerrors.ErrValidation for
// client faults (respond 400) and paramerrors.ErrSchema for definition
// faults (respond 500 and alert).
package paramval
