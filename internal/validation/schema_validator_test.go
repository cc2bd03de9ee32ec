package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "integer", "minimum": 0}
	},
	"required": ["name"]
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	v := NewSchemaValidator()
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "person.schema.json", personSchema)

	tests := []struct {
		name     string
		data     string
		errorMsg string
	}{
		{name: "valid", data: `{"name": "Ada", "age": 30}`},
		{name: "optional field omitted", data: `{"name": "Ada"}`},
		{name: "missing required", data: `{"age": 25}`, errorMsg: "required"},
		{name: "wrong type", data: `{"name": "Ada", "age": "thirty"}`, errorMsg: "/age"},
		{name: "below minimum", data: `{"name": "Ada", "age": -5}`, errorMsg: "minimum"},
		{name: "malformed JSON", data: `{"name": }`, errorMsg: "parse JSON"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataPath := writeFile(t, dir, "data.json", tt.data)
			err := v.ValidateFile(dataPath, schemaPath)
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_MissingFiles(t *testing.T) {
	v := NewSchemaValidator()
	dir := t.TempDir()
	dataPath := writeFile(t, dir, "data.json", `{}`)

	err := v.ValidateFile(dataPath, "nonexistent.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")

	schemaPath := writeFile(t, dir, "s.schema.json", `{"type": "object"}`)
	err = v.ValidateFile(filepath.Join(dir, "missing.json"), schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read data file")
}

func TestSchemaValidator_ShippedCatalogs(t *testing.T) {
	v := NewSchemaValidator()

	quests, err := FindFile("configs/quests/quest_pool.json")
	require.NoError(t, err)
	assert.NoError(t, v.ValidateFile(quests, "configs/schemas/quest_pool.schema.json"))

	achievements, err := FindFile("configs/achievements/achievements.json")
	require.NoError(t, err)
	assert.NoError(t, v.ValidateFile(achievements, "configs/schemas/achievements.schema.json"))
}

func TestSchemaValidator_RejectsBadQuestPool(t *testing.T) {
	v := NewSchemaValidator()
	bad := []byte(`{"version": "1.0", "daily": [{"type": "x", "target": 0, "reward": {"coins": 1, "gems": 0}}], "weekly": []}`)

	err := v.ValidateBytes(bad, "configs/schemas/quest_pool.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")
}
