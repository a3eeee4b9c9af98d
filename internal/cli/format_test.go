package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputFormat_Set(t *testing.T) {
	var f outputFormat
	require.NoError(t, f.Set("JSON"))
	assert.Equal(t, formatJSON, f)
	require.NoError(t, f.Set(" text "))
	assert.Equal(t, formatText, f)
	assert.Error(t, f.Set("yaml"))
	assert.Equal(t, "format", f.Type())
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render(&buf, formatText, nil, func() string { return "plain" }))
	assert.Equal(t, "plain", buf.String())

	buf.Reset()
	require.NoError(t, render(&buf, formatJSON, map[string]int{"a": 1}, func() string { return "unused" }))
	assert.Equal(t, "{\n  \"a\": 1\n}\n", buf.String())
}

func TestValidateAPIKey(t *testing.T) {
	assert.Error(t, validateAPIKey("  "))
	assert.NoError(t, validateAPIKey("waka_1"))
}
