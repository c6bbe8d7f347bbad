package schema

// Parameter locations. These mirror the "in" field of an OpenAPI parameter
// object (OAS 2.0 vocabulary, which is the one that carries type and
// collectionFormat directly on the parameter).
const (
	InQuery  = "query"
	InHeader = "header"
	InPath   = "path"
	InForm   = "formData"
	InBody   = "body"
)

// Primitive parameter types.
const (
	TypeString  = "string"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeArray   = "array"
)

// Collection formats for array parameters carried as a single string
// (delimiter-separated) or as repeated keys ("multi").
const (
	CollectionCSV   = "csv"   // comma separated: a,b,c
	CollectionSSV   = "ssv"   // space separated: a b c
	CollectionTSV   = "tsv"   // tab separated: a\tb\tc
	CollectionPipes = "pipes" // pipe separated: a|b|c
	CollectionMulti = "multi" // repeated keys: x=a&x=b&x=c
)

// String formats with checked semantics. Any other format value passes
// through unchecked; see the validator package documentation.
const (
	FormatDate     = "date"
	FormatDateTime = "date-time"
)

// Parameter describes one request parameter.
type Parameter struct {
	Name        string `yaml:"name" json:"name"`
	In          string `yaml:"in" json:"in"` // "query", "header", "path", "formData", "body"
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool   `yaml:"required,omitempty" json:"required,omitempty"`

	Type             string `yaml:"type" json:"type"`
	Format           string `yaml:"format,omitempty" json:"format,omitempty"`
	Pattern          string `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	Enum             []any  `yaml:"enum,omitempty" json:"enum,omitempty"`
	Default          any    `yaml:"default,omitempty" json:"default,omitempty"`
	CollectionFormat string `yaml:"collectionFormat,omitempty" json:"collectionFormat,omitempty"`
	Items            *Items `yaml:"items,omitempty" json:"items,omitempty"`
}

// Items describes the elements of an array parameter. Items can carry the
// same constraints as a parameter, recursively, so arrays of arrays are
// structurally expressible.
type Items struct {
	Type             string `yaml:"type" json:"type"`
	Format           string `yaml:"format,omitempty" json:"format,omitempty"`
	Pattern          string `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	Enum             []any  `yaml:"enum,omitempty" json:"enum,omitempty"`
	CollectionFormat string `yaml:"collectionFormat,omitempty" json:"collectionFormat,omitempty"`
	Items            *Items `yaml:"items,omitempty" json:"items,omitempty"`
}

// Constraints returns the parameter's own constraint set as an Items node.
// This lets the validator walk a parameter and its nested items with one
// recursive function over a uniform schema tree.
func (p *Parameter) Constraints() *Items {
	return &Items{
		Type:             p.Type,
		Format:           p.Format,
		Pattern:          p.Pattern,
		Enum:             p.Enum,
		CollectionFormat: p.CollectionFormat,
		Items:            p.Items,
	}
}

// knownLocations is the set of valid values for Parameter.In.
var knownLocations = map[string]bool{
	InQuery:  true,
	InHeader: true,
	InPath:   true,
	InForm:   true,
	InBody:   true,
}

// knownTypes is the set of valid values for Parameter.Type and Items.Type.
var knownTypes = map[string]bool{
	TypeString:  true,
	TypeInteger: true,
	TypeNumber:  true,
	TypeBoolean: true,
	TypeArray:   true,
}

// KnownLocation reports whether in is a recognised parameter location.
func KnownLocation(in string) bool {
	return knownLocations[in]
}

// KnownType reports whether t is a recognised parameter type.
func KnownType(t string) bool {
	return knownTypes[t]
}
