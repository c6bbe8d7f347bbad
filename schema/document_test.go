package schema

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulway/paramval/paramerrors"
)

const paramsYAML = `parameters:
  - name: page
    in: query
    type: integer
    default: 1
  - name: status
    in: query
    type: string
    enum: [active, inactive]
  - name: ids
    in: query
    type: array
    collectionFormat: csv
    items:
      type: integer
  - name: X-Request-ID
    in: header
    type: string
    required: true
`

const paramsJSON = `{
  "parameters": [
    {"name": "limit", "in": "query", "type": "integer"},
    {"name": "tags", "in": "query", "type": "array", "collectionFormat": "multi",
     "items": {"type": "string"}}
  ]
}`

func TestLoadWithOptions_YAML(t *testing.T) {
	doc, err := LoadWithOptions(WithBytes([]byte(paramsYAML)))
	require.NoError(t, err)
	require.Len(t, doc.Parameters, 4)

	page := doc.ByName("page", InQuery)
	require.NotNil(t, page)
	assert.Equal(t, TypeInteger, page.Type)
	assert.Equal(t, 1, page.Default)

	status := doc.ByName("status", InQuery)
	require.NotNil(t, status)
	assert.Equal(t, []any{"active", "inactive"}, status.Enum)

	ids := doc.ByName("ids", InQuery)
	require.NotNil(t, ids)
	assert.Equal(t, CollectionCSV, ids.CollectionFormat)
	require.NotNil(t, ids.Items)
	assert.Equal(t, TypeInteger, ids.Items.Type)
}

func TestLoadWithOptions_JSON(t *testing.T) {
	doc, err := LoadWithOptions(WithBytes([]byte(paramsJSON)))
	require.NoError(t, err)
	require.Len(t, doc.Parameters, 2)

	tags := doc.ByName("tags", InQuery)
	require.NotNil(t, tags)
	assert.Equal(t, CollectionMulti, tags.CollectionFormat)
}

func TestLoadWithOptions_FromFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "params.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(paramsYAML), 0o600))

	doc, err := LoadWithOptions(WithFilePath(yamlPath))
	require.NoError(t, err)
	assert.Len(t, doc.Parameters, 4)

	jsonPath := filepath.Join(dir, "params.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(paramsJSON), 0o600))

	doc, err = LoadWithOptions(WithFilePath(jsonPath))
	require.NoError(t, err)
	assert.Len(t, doc.Parameters, 2)
}

func TestLoadWithOptions_Errors(t *testing.T) {
	t.Run("no input", func(t *testing.T) {
		_, err := LoadWithOptions()
		require.Error(t, err)
		assert.ErrorIs(t, err, paramerrors.ErrSchema)
	})

	t.Run("empty bytes", func(t *testing.T) {
		_, err := LoadWithOptions(WithBytes(nil))
		require.Error(t, err)
		assert.ErrorIs(t, err, paramerrors.ErrSchema)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadWithOptions(WithFilePath(filepath.Join(t.TempDir(), "nope.yaml")))
		require.Error(t, err)
		assert.ErrorIs(t, err, paramerrors.ErrSchema)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := LoadWithOptions(WithBytes([]byte("parameters: [:::")))
		require.Error(t, err)
		assert.ErrorIs(t, err, paramerrors.ErrSchema)
	})

	t.Run("nil logger", func(t *testing.T) {
		_, err := LoadWithOptions(WithBytes([]byte(paramsYAML)), WithLogger(nil))
		require.Error(t, err)
	})
}

func TestDocumentCheck(t *testing.T) {
	tests := []struct {
		name    string
		param   *Parameter
		wantMsg string
	}{
		{
			name:    "missing name",
			param:   &Parameter{In: InQuery, Type: TypeString},
			wantMsg: "parameter name not defined",
		},
		{
			name:    "unknown location",
			param:   &Parameter{Name: "p", In: "cookie", Type: TypeString},
			wantMsg: `parameter location "cookie" not recognised`,
		},
		{
			name:    "missing type",
			param:   &Parameter{Name: "p", In: InQuery},
			wantMsg: "parameter type not defined",
		},
		{
			name:    "unknown type",
			param:   &Parameter{Name: "p", In: InQuery, Type: "object"},
			wantMsg: `parameter type "object" not recognised`,
		},
		{
			name:    "array without collection format",
			param:   &Parameter{Name: "p", In: InQuery, Type: TypeArray, Items: &Items{Type: TypeString}},
			wantMsg: "array parameter collection format not defined",
		},
		{
			name: "array with unknown collection format",
			param: &Parameter{
				Name: "p", In: InQuery, Type: TypeArray,
				CollectionFormat: "semicolons", Items: &Items{Type: TypeString},
			},
			wantMsg: `array parameter collection format "semicolons" not recognised`,
		},
		{
			name:    "array without items",
			param:   &Parameter{Name: "p", In: InQuery, Type: TypeArray, CollectionFormat: CollectionCSV},
			wantMsg: "array parameter has not defined the type of its items",
		},
		{
			name:    "invalid pattern",
			param:   &Parameter{Name: "p", In: InQuery, Type: TypeString, Pattern: "(unclosed"},
			wantMsg: `invalid pattern "(unclosed"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &Document{Parameters: []*Parameter{tt.param}}
			err := doc.Check()
			require.Error(t, err)

			var schemaErr *paramerrors.SchemaError
			require.True(t, errors.As(err, &schemaErr))
			assert.Equal(t, tt.wantMsg, schemaErr.Message)
		})
	}

	t.Run("nested array of arrays is accepted", func(t *testing.T) {
		doc := &Document{Parameters: []*Parameter{{
			Name: "matrix", In: InQuery, Type: TypeArray, CollectionFormat: CollectionPipes,
			Items: &Items{
				Type:             TypeArray,
				CollectionFormat: CollectionCSV,
				Items:            &Items{Type: TypeInteger},
			},
		}}}
		assert.NoError(t, doc.Check())
	})

	t.Run("nested array missing item type is rejected", func(t *testing.T) {
		doc := &Document{Parameters: []*Parameter{{
			Name: "matrix", In: InQuery, Type: TypeArray, CollectionFormat: CollectionPipes,
			Items: &Items{Type: TypeArray, CollectionFormat: CollectionCSV},
		}}}
		err := doc.Check()
		require.Error(t, err)
		assert.ErrorIs(t, err, paramerrors.ErrSchema)
	})
}

func TestDocumentLookups(t *testing.T) {
	doc, err := LoadWithOptions(WithBytes([]byte(paramsYAML)))
	require.NoError(t, err)

	assert.Nil(t, doc.ByName("page", InHeader), "location must match")
	assert.Nil(t, doc.ByName("missing", InQuery))

	query := doc.ByLocation(InQuery)
	assert.Len(t, query, 3)
	header := doc.ByLocation(InHeader)
	require.Len(t, header, 1)
	assert.Equal(t, "X-Request-ID", header[0].Name)
}

func TestCompilePatterns(t *testing.T) {
	prefix, err := CompilePrefixPattern(`[a-z]+`)
	require.NoError(t, err)
	assert.True(t, prefix.MatchString("abc123"), "prefix match accepts trailing input")
	assert.False(t, prefix.MatchString("123abc"), "prefix match is anchored at the start")

	full, err := CompileFullPattern(`[a-z]+`)
	require.NoError(t, err)
	assert.True(t, full.MatchString("abc"))
	assert.False(t, full.MatchString("abc123"), "full match rejects trailing input")
}
