package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestSchemaCommand(t *testing.T) {
	output, _, err := executeCommand(t, "schema")
	require.NoError(t, err)
	require.True(t, gjson.Valid(output))

	assert.Equal(t, "object", gjson.Get(output, "type").String())
	assert.Equal(t, "array", gjson.Get(output, "properties.tests.type").String())
}

func TestSchemaCommandHidden(t *testing.T) {
	output, _, err := executeCommand(t, "--help")
	require.NoError(t, err)
	assert.NotContains(t, output, "schema")
}
