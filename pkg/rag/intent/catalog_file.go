package intent

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadCatalogFile reads the intent catalog from a JSON file. The catalog is
// loaded once at process start and treated as immutable afterwards.
func LoadCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read intent catalog: %w", err)
	}

	var intents []Intent
	if err := json.Unmarshal(data, &intents); err != nil {
		return nil, fmt.Errorf("parse intent catalog: %w", err)
	}
	if len(intents) == 0 {
		return nil, fmt.Errorf("intent catalog %s is empty", path)
	}
	return NewCatalog(intents), nil
}
