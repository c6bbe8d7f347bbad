package mcpserver

import (
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil error", nil, ""},
		{"no path", errors.New("parameter validation failed"), "parameter validation failed"},
		{"home path", errors.New("reading parameter document: open /home/user/params.yaml: no such file"), "reading parameter document: open <path>: no such file"},
		{"tmp path", errors.New("open /tmp/x/doc.json: permission denied"), "open <path>: permission denied"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeError(tt.err))
		})
	}
}

func TestErrResult(t *testing.T) {
	result := errResult(errors.New("boom"))
	assert.True(t, result.IsError)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, "boom", text.Text)
}
