package config

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "Chanomhub Desktop Configuration", doc["title"])
	assert.Contains(t, string(data), "poll_interval_ms")
	assert.Contains(t, string(data), "home_url")
}

func TestWriteSchemaFile(t *testing.T) {
	m, err := NewManagerAt(t.TempDir())
	require.NoError(t, err)

	path, err := m.WriteSchemaFile()
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}
