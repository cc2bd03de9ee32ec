package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadJSON(t *testing.T) {
	t.Run("decodes a catalog file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "quests.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"daily":[{"type":"Fruit Collector","target":10}]}`), 0600))

		var result struct {
			Daily []struct {
				Type   string `json:"type"`
				Target int    `json:"target"`
			} `json:"daily"`
		}
		require.NoError(t, LoadJSON(path, &result))
		require.Len(t, result.Daily, 1)
		assert.Equal(t, "Fruit Collector", result.Daily[0].Type)
		assert.Equal(t, 10, result.Daily[0].Target)
	})

	t.Run("missing file", func(t *testing.T) {
		var result map[string]interface{}
		err := LoadJSON("/nonexistent/quests.json", &result)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read file")
	})

	t.Run("malformed file names the source", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

		var result map[string]interface{}
		err := LoadJSON(path, &result)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "broken.json")
	})
}
