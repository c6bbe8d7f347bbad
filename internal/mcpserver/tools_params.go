package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/paulway/paramval/schema"
)

type listParamsInput struct {
	Doc docInput `json:"doc"          jsonschema:"The parameter document to list"`
	In  string   `json:"in,omitempty" jsonschema:"Only list parameters at this location (query, header, path, formData, body)"`
}

type paramSummary struct {
	Name             string `json:"name"`
	In               string `json:"in"`
	Type             string `json:"type"`
	Format           string `json:"format,omitempty"`
	Required         bool   `json:"required,omitempty"`
	CollectionFormat string `json:"collection_format,omitempty"`
	ItemType         string `json:"item_type,omitempty"`
	HasDefault       bool   `json:"has_default,omitempty"`
	EnumSize         int    `json:"enum_size,omitempty"`
	Pattern          string `json:"pattern,omitempty"`
	Description      string `json:"description,omitempty"`
}

type listParamsOutput struct {
	Count      int            `json:"count"`
	Parameters []paramSummary `json:"parameters,omitempty"`
}

func handleListParams(_ context.Context, _ *mcp.CallToolRequest, input listParamsInput) (*mcp.CallToolResult, listParamsOutput, error) {
	doc, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), listParamsOutput{}, nil
	}

	params := doc.Parameters
	if input.In != "" {
		params = doc.ByLocation(input.In)
	}

	output := listParamsOutput{Count: len(params)}
	for _, p := range params {
		if p == nil {
			continue
		}
		s := paramSummary{
			Name:             p.Name,
			In:               p.In,
			Type:             p.Type,
			Format:           p.Format,
			Required:         p.Required,
			CollectionFormat: p.CollectionFormat,
			HasDefault:       p.Default != nil,
			EnumSize:         len(p.Enum),
			Pattern:          p.Pattern,
			Description:      p.Description,
		}
		if p.Type == schema.TypeArray && p.Items != nil {
			s.ItemType = p.Items.Type
		}
		output.Parameters = append(output.Parameters, s)
	}
	return nil, output, nil
}
