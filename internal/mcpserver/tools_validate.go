package mcpserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/paulway/paramval/paramerrors"
	"github.com/paulway/paramval/schema"
	"github.com/paulway/paramval/validator"
)

type validateParamInput struct {
	Doc    docInput `json:"doc"              jsonschema:"The parameter document containing the definition"`
	Name   string   `json:"name"             jsonschema:"Name of the parameter to validate against"`
	In     string   `json:"in,omitempty"     jsonschema:"Parameter location (query, header, path, formData, body); required when the name appears at more than one location"`
	Value  string   `json:"value,omitempty"  jsonschema:"The raw value to validate"`
	Values []string `json:"values,omitempty" jsonschema:"Raw values for multi-format array parameters (repeated keys); takes precedence over value"`
}

type validateParamOutput struct {
	Valid     bool   `json:"valid"`
	Kind      string `json:"kind,omitempty"`
	Value     any    `json:"value,omitempty"`
	ErrorKind string `json:"error_kind,omitempty"`
	Error     string `json:"error,omitempty"`
}

func handleValidateParam(_ context.Context, _ *mcp.CallToolRequest, input validateParamInput) (*mcp.CallToolResult, validateParamOutput, error) {
	doc, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), validateParamOutput{}, nil
	}

	param, err := findParam(doc, input.Name, input.In)
	if err != nil {
		return errResult(err), validateParamOutput{}, nil
	}

	v, err := validator.New(validator.WithTimeZone(cfg.TimeZone))
	if err != nil {
		return errResult(err), validateParamOutput{}, nil
	}

	var value validator.Value
	if len(input.Values) > 0 {
		value, err = v.ValidateValues(param, input.Values)
	} else {
		value, err = v.Validate(param, input.Value)
	}
	if err != nil {
		// Definition and value faults are the tool's answer, not a
		// protocol failure.
		out := validateParamOutput{Error: err.Error()}
		switch {
		case errors.Is(err, paramerrors.ErrSchema):
			out.ErrorKind = "schema"
		case errors.Is(err, paramerrors.ErrValidation):
			out.ErrorKind = "validation"
		default:
			return errResult(err), validateParamOutput{}, nil
		}
		return nil, out, nil
	}

	return nil, validateParamOutput{
		Valid: true,
		Kind:  value.Kind().String(),
		Value: value.Interface(),
	}, nil
}

// findParam resolves a parameter by name, and by location when given. A name
// that appears at more than one location requires in to disambiguate.
func findParam(doc *schema.Document, name, in string) (*schema.Parameter, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if in != "" {
		p := doc.ByName(name, in)
		if p == nil {
			return nil, fmt.Errorf("no parameter named %q at location %q", name, in)
		}
		return p, nil
	}

	var found *schema.Parameter
	for _, p := range doc.Parameters {
		if p != nil && p.Name == name {
			if found != nil {
				return nil, fmt.Errorf("parameter %q is defined at more than one location; pass in to disambiguate", name)
			}
			found = p
		}
	}
	if found == nil {
		return nil, fmt.Errorf("no parameter named %q in document", name)
	}
	return found, nil
}
