package mcpserver

import (
	"context"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDocYAML = `parameters:
  - name: page
    in: query
    type: integer
  - name: active
    in: query
    type: boolean
  - name: status
    in: query
    type: string
    enum: [active, inactive]
    default: active
  - name: ids
    in: query
    type: array
    collectionFormat: multi
    items:
      type: integer
  - name: token
    in: header
    type: string
  - name: token
    in: query
    type: string
  - name: since
    in: query
    type: string
    format: date
`

func TestValidateParamTool_Integer(t *testing.T) {
	input := validateParamInput{
		Doc:   docInput{Content: testDocYAML},
		Name:  "page",
		Value: "42",
	}
	result, output, err := handleValidateParam(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Nil(t, result)

	assert.True(t, output.Valid)
	assert.Equal(t, "integer", output.Kind)
	assert.Equal(t, int64(42), output.Value)
}

func TestValidateParamTool_ValidationError(t *testing.T) {
	input := validateParamInput{
		Doc:   docInput{Content: testDocYAML},
		Name:  "page",
		Value: "abc",
	}
	result, output, err := handleValidateParam(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Nil(t, result)

	assert.False(t, output.Valid)
	assert.Equal(t, "validation", output.ErrorKind)
	assert.Equal(t, "The value for the 'page' field must be an integer", output.Error)
}

func TestValidateParamTool_Boolean(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"true", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"TRUE", false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			input := validateParamInput{
				Doc:   docInput{Content: testDocYAML},
				Name:  "active",
				Value: tt.raw,
			}
			_, output, err := handleValidateParam(context.Background(), &mcp.CallToolRequest{}, input)
			require.NoError(t, err)
			require.True(t, output.Valid)
			assert.Equal(t, "boolean", output.Kind)
			assert.Equal(t, tt.want, output.Value)
		})
	}
}

func TestValidateParamTool_Enum(t *testing.T) {
	input := validateParamInput{
		Doc:   docInput{Content: testDocYAML},
		Name:  "status",
		Value: "archived",
	}
	_, output, err := handleValidateParam(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.False(t, output.Valid)
	assert.Equal(t, "validation", output.ErrorKind)
	assert.Contains(t, output.Error, "required to be one of the following values: active, inactive")
}

func TestValidateParamTool_MultiValues(t *testing.T) {
	input := validateParamInput{
		Doc:    docInput{Content: testDocYAML},
		Name:   "ids",
		Values: []string{"1", "2", "3"},
	}
	_, output, err := handleValidateParam(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	require.True(t, output.Valid)
	assert.Equal(t, "array", output.Kind)
	assert.Equal(t, []any{int64(1), int64(2), int64(3)}, output.Value)
}

func TestValidateParamTool_Date(t *testing.T) {
	input := validateParamInput{
		Doc:   docInput{Content: testDocYAML},
		Name:  "since",
		Value: "2024-06-01",
	}
	_, output, err := handleValidateParam(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	require.True(t, output.Valid)
	assert.Equal(t, "time", output.Kind)
	instant, ok := output.Value.(time.Time)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), instant)
}

func TestValidateParamTool_AmbiguousName(t *testing.T) {
	input := validateParamInput{
		Doc:   docInput{Content: testDocYAML},
		Name:  "token",
		Value: "abc",
	}
	result, _, err := handleValidateParam(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestValidateParamTool_DisambiguatedByLocation(t *testing.T) {
	input := validateParamInput{
		Doc:   docInput{Content: testDocYAML},
		Name:  "token",
		In:    "header",
		Value: "abc",
	}
	result, output, err := handleValidateParam(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.True(t, output.Valid)
	assert.Equal(t, "abc", output.Value)
}

func TestValidateParamTool_UnknownName(t *testing.T) {
	input := validateParamInput{
		Doc:   docInput{Content: testDocYAML},
		Name:  "missing",
		Value: "abc",
	}
	result, _, err := handleValidateParam(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestValidateParamTool_InvalidDocument(t *testing.T) {
	input := validateParamInput{
		Doc:   docInput{Content: "parameters: ["},
		Name:  "page",
		Value: "1",
	}
	result, output, err := handleValidateParam(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	assert.False(t, output.Valid)
}
