package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	json "github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"

	"github.com/paulway/paramval/paramerrors"
)

// Document is a set of parameter definitions, conventionally extracted from
// an OpenAPI document and loaded once at startup.
type Document struct {
	Parameters []*Parameter `yaml:"parameters" json:"parameters"`
}

// Option is a functional option for configuring document loading.
type Option func(*loadConfig) error

// loadConfig holds the configuration for a load operation.
type loadConfig struct {
	filePath string
	data     []byte
	asJSON   bool
	logger   Logger
}

// WithFilePath sets the path of the parameter document to load.
// Files ending in .json are decoded as JSON; everything else as YAML.
func WithFilePath(path string) Option {
	return func(c *loadConfig) error {
		c.filePath = path
		return nil
	}
}

// WithBytes loads the parameter document from an in-memory buffer.
// The content is decoded as JSON when it starts with '{', otherwise as YAML.
func WithBytes(data []byte) Option {
	return func(c *loadConfig) error {
		if len(data) == 0 {
			return &paramerrors.SchemaError{Message: "document content cannot be empty"}
		}
		c.data = data
		return nil
	}
}

// WithLogger sets the logger used during loading. Defaults to NopLogger.
func WithLogger(logger Logger) Option {
	return func(c *loadConfig) error {
		if logger == nil {
			return &paramerrors.SchemaError{Message: "logger cannot be nil"}
		}
		c.logger = logger
		return nil
	}
}

// LoadWithOptions loads a parameter document using functional options.
//
// Example:
//
//	doc, err := schema.LoadWithOptions(schema.WithFilePath("params.yaml"))
//
// The returned document has passed Check: loading a malformed definition
// fails here, at deployment time, rather than on the first request.
func LoadWithOptions(opts ...Option) (*Document, error) {
	cfg := &loadConfig{logger: NopLogger{}}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	data := cfg.data
	if data == nil {
		if cfg.filePath == "" {
			return nil, &paramerrors.SchemaError{Message: "no document provided (use WithFilePath or WithBytes)"}
		}
		b, err := os.ReadFile(cfg.filePath)
		if err != nil {
			return nil, &paramerrors.SchemaError{Message: "reading parameter document", Cause: err}
		}
		data = b
		cfg.asJSON = strings.EqualFold(filepath.Ext(cfg.filePath), ".json")
	} else {
		cfg.asJSON = len(data) > 0 && data[0] == '{'
	}

	doc := &Document{}
	if cfg.asJSON {
		if err := json.Unmarshal(data, doc); err != nil {
			return nil, &paramerrors.SchemaError{Message: "decoding JSON parameter document", Cause: err}
		}
	} else {
		if err := yaml.Unmarshal(data, doc); err != nil {
			return nil, &paramerrors.SchemaError{Message: "decoding YAML parameter document", Cause: err}
		}
	}

	if err := doc.Check(); err != nil {
		return nil, err
	}

	cfg.logger.Debug("loaded parameter document",
		"path", cfg.filePath,
		"parameters", len(doc.Parameters))
	return doc, nil
}

// Check verifies that every parameter definition is well formed: known
// location and type, array parameters carry both a collection format and an
// item type, and patterns compile. A failure is a *paramerrors.SchemaError
// naming the offending parameter.
//
// The validator repeats the structural array checks at validation time, so
// a document that skips Check still fails safely; Check exists to surface
// definition faults at deployment time instead of on the first request.
func (d *Document) Check() error {
	for _, p := range d.Parameters {
		if p == nil {
			return &paramerrors.SchemaError{Message: "parameter entry is null"}
		}
		if p.Name == "" {
			return &paramerrors.SchemaError{Message: "parameter name not defined"}
		}
		if !KnownLocation(p.In) {
			return &paramerrors.SchemaError{
				Param:   p.Name,
				Message: fmt.Sprintf("parameter location %q not recognised", p.In),
			}
		}
		if err := checkNode(p.Name, p.Constraints()); err != nil {
			return err
		}
	}
	return nil
}

// checkNode validates one node of the constraint tree, recursing into items.
func checkNode(name string, n *Items) error {
	if n.Type == "" {
		return &paramerrors.SchemaError{Param: name, Message: "parameter type not defined"}
	}
	if !KnownType(n.Type) {
		return &paramerrors.SchemaError{
			Param:   name,
			Message: fmt.Sprintf("parameter type %q not recognised", n.Type),
		}
	}
	if n.Pattern != "" {
		if _, err := CompilePrefixPattern(n.Pattern); err != nil {
			return &paramerrors.SchemaError{
				Param:   name,
				Message: fmt.Sprintf("invalid pattern %q", n.Pattern),
				Cause:   err,
			}
		}
	}
	if n.Type == TypeArray {
		if n.CollectionFormat == "" {
			return &paramerrors.SchemaError{
				Param:   name,
				Message: "array parameter collection format not defined",
			}
		}
		switch n.CollectionFormat {
		case CollectionCSV, CollectionSSV, CollectionTSV, CollectionPipes, CollectionMulti:
		default:
			return &paramerrors.SchemaError{
				Param:   name,
				Message: fmt.Sprintf("array parameter collection format %q not recognised", n.CollectionFormat),
			}
		}
		if n.Items == nil {
			return &paramerrors.SchemaError{
				Param:   name,
				Message: "array parameter has not defined the type of its items",
			}
		}
		return checkNode(name, n.Items)
	}
	return nil
}

// ByName returns the parameter with the given name and location, or nil if
// no such parameter is defined.
func (d *Document) ByName(name, in string) *Parameter {
	for _, p := range d.Parameters {
		if p != nil && p.Name == name && p.In == in {
			return p
		}
	}
	return nil
}

// ByLocation returns all parameters declared at the given location.
func (d *Document) ByLocation(in string) []*Parameter {
	var result []*Parameter
	for _, p := range d.Parameters {
		if p != nil && p.In == in {
			result = append(result, p)
		}
	}
	return result
}

// CompilePrefixPattern compiles pattern anchored at the start of the input,
// matching the match-from-start semantics parameter patterns use for string
// values (a pattern may still anchor its own end with $ or \z).
func CompilePrefixPattern(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile(`\A(?:` + pattern + `)`)
}

// CompileFullPattern compiles pattern anchored at both ends, the semantics
// used when a pattern is checked against the raw form of a non-string value.
func CompileFullPattern(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile(`\A(?:` + pattern + `)\z`)
}
