package intent

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intents.json")
	data := `[
		{"intent": "pricing", "category": "sales", "triggers": ["how much", "כמה עולה"]},
		{"intent": "general_info", "category": "general", "triggers": ["what do you do"]}
	]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	catalog, err := LoadCatalogFile(path)
	require.NoError(t, err)

	assert.Len(t, catalog.Intents(), 2)
	assert.Equal(t, "pricing", catalog.Intents()[0].Name)
	assert.Len(t, catalog.Intents()[0].Triggers, 2)
	assert.True(t, catalog.IsCatchAll("general_info"))
	assert.False(t, catalog.IsCatchAll("pricing"))
}

func TestLoadCatalogFileErrors(t *testing.T) {
	_, err := LoadCatalogFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte(`[]`), 0644))
	_, err = LoadCatalogFile(empty)
	assert.Error(t, err)
}
