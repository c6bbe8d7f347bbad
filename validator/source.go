package validator

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/paulway/paramval/paramerrors"
	"github.com/paulway/paramval/schema"
)

// Source supplies raw string values for one parameter location. Each
// location has its own variant; a SourceSet bundles them so ValueOf can
// pick the right one from a parameter's declared location.
type Source interface {
	// Location returns the parameter location this source serves.
	Location() string

	// Lookup returns every raw occurrence of the named parameter, in request
	// order, and whether the parameter was present at all.
	Lookup(name string) ([]string, bool)
}

// QuerySource serves query string parameters.
type QuerySource url.Values

// Location implements Source.
func (QuerySource) Location() string { return schema.InQuery }

// Lookup implements Source.
func (s QuerySource) Lookup(name string) ([]string, bool) {
	values, ok := url.Values(s)[name]
	return values, ok && len(values) > 0
}

// HeaderSource serves header parameters. Names are matched using HTTP
// canonical form, so "x-request-id" finds "X-Request-ID".
type HeaderSource http.Header

// Location implements Source.
func (HeaderSource) Location() string { return schema.InHeader }

// Lookup implements Source.
func (s HeaderSource) Lookup(name string) ([]string, bool) {
	values := http.Header(s).Values(name)
	return values, len(values) > 0
}

// PathSource serves path parameters extracted by the router.
type PathSource map[string]string

// Location implements Source.
func (PathSource) Location() string { return schema.InPath }

// Lookup implements Source.
func (s PathSource) Lookup(name string) ([]string, bool) {
	value, ok := s[name]
	if !ok {
		return nil, false
	}
	return []string{value}, true
}

// FormSource serves form-encoded body fields.
type FormSource url.Values

// Location implements Source.
func (FormSource) Location() string { return schema.InForm }

// Lookup implements Source.
func (s FormSource) Lookup(name string) ([]string, bool) {
	values, ok := url.Values(s)[name]
	return values, ok && len(values) > 0
}

// BodySource serves body parameters that the surrounding framework has
// already flattened to key/value form.
type BodySource url.Values

// Location implements Source.
func (BodySource) Location() string { return schema.InBody }

// Lookup implements Source.
func (s BodySource) Lookup(name string) ([]string, bool) {
	values, ok := url.Values(s)[name]
	return values, ok && len(values) > 0
}

// SourceSet maps parameter locations to their sources.
type SourceSet map[string]Source

// NewSourceSet builds a SourceSet from the given sources, keyed by their
// locations. A later source for the same location replaces an earlier one.
func NewSourceSet(sources ...Source) SourceSet {
	set := make(SourceSet, len(sources))
	for _, s := range sources {
		if s != nil {
			set[s.Location()] = s
		}
	}
	return set
}

// FromRequest assembles the standard SourceSet for an incoming request:
// query string, headers, router-extracted path parameters, and form fields.
// The request's form is parsed if it has not been already; a body parse
// failure leaves the form source empty rather than failing the lookup.
func FromRequest(r *http.Request, pathParams map[string]string) SourceSet {
	_ = r.ParseForm()
	return NewSourceSet(
		QuerySource(r.URL.Query()),
		HeaderSource(r.Header),
		PathSource(pathParams),
		FormSource(r.PostForm),
	)
}

// ValueOf looks up the parameter's raw value at its declared location and
// validates it.
//
// Absent parameters resolve per the definition: a default is returned
// un-validated as a KindDefault Value, a missing required parameter is a
// *paramerrors.ValidationError, and an optional parameter with no default
// yields the absent marker. A location with no registered source is a
// *paramerrors.SchemaError.
func (v *Validator) ValueOf(p *schema.Parameter, sources SourceSet) (Value, error) {
	if p == nil {
		return Value{}, &paramerrors.SchemaError{Message: "parameter is nil"}
	}

	src, ok := sources[p.In]
	if !ok || src == nil {
		return Value{}, &paramerrors.SchemaError{
			Param:   p.Name,
			Message: fmt.Sprintf("no source registered for location %q", p.In),
		}
	}

	values, found := src.Lookup(p.Name)
	if !found {
		if p.Default != nil {
			v.logger.Debug("parameter absent, using default", "name", p.Name, "default", p.Default)
			return defaultValue(p.Default), nil
		}
		if p.Required {
			return Value{}, &paramerrors.ValidationError{
				Param:   p.Name,
				Message: fmt.Sprintf("The '%s' parameter is required", p.Name),
			}
		}
		return absentValue(), nil
	}

	// "multi" arrays consume every occurrence of the key; everything else
	// validates the first occurrence.
	if p.Type == schema.TypeArray && p.CollectionFormat == schema.CollectionMulti {
		return v.ValidateValues(p, values)
	}
	return v.Validate(p, values[0])
}
