package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstraints(t *testing.T) {
	p := &Parameter{
		Name:             "ids",
		In:               InQuery,
		Type:             TypeArray,
		Format:           "",
		Pattern:          `\d+`,
		Enum:             []any{1, 2, 3},
		CollectionFormat: CollectionCSV,
		Items:            &Items{Type: TypeInteger},
	}

	n := p.Constraints()
	require.NotNil(t, n)
	assert.Equal(t, p.Type, n.Type)
	assert.Equal(t, p.Pattern, n.Pattern)
	assert.Equal(t, p.Enum, n.Enum)
	assert.Equal(t, p.CollectionFormat, n.CollectionFormat)
	assert.Same(t, p.Items, n.Items)
}

func TestKnownLocation(t *testing.T) {
	for _, in := range []string{InQuery, InHeader, InPath, InForm, InBody} {
		assert.True(t, KnownLocation(in), in)
	}
	assert.False(t, KnownLocation("cookie"))
	assert.False(t, KnownLocation(""))
	assert.False(t, KnownLocation("Query"), "locations are case-sensitive")
}

func TestKnownType(t *testing.T) {
	for _, typ := range []string{TypeString, TypeInteger, TypeNumber, TypeBoolean, TypeArray} {
		assert.True(t, KnownType(typ), typ)
	}
	assert.False(t, KnownType("object"))
	assert.False(t, KnownType(""))
}
