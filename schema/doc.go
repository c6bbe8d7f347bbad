// Package schema defines the OpenAPI-style parameter model used by paramval.
//
// A Parameter describes one request parameter: its name, location (query,
// header, path, form, or body), primitive type, and constraints (enum,
// pattern, format, collection format for arrays, default value, required
// flag). Array parameters carry a recursive Items node so nested arrays are
// expressible.
//
// Parameter documents are conventionally authored once, loaded at startup
// via LoadWithOptions, and treated as immutable afterwards:
//
//	doc, err := schema.LoadWithOptions(schema.WithFilePath("params.yaml"))
//	if err != nil {
//	    log.Fatal(err) // read, decode, or definition fault
//	}
//
// Both YAML and JSON documents are supported.
package schema
