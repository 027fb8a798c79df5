package utils

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadValues reads a YAML document of prop values from path. An empty file
// yields an empty map
func LoadValues(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read values file %s: %w", path, err)
	}

	values := map[string]any{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse values file %s: %w", path, err)
	}
	if values == nil {
		values = map[string]any{}
	}

	return values, nil
}
