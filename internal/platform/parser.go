package platform

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"evalgo.org/simfabric/models"
)

// Parse decodes a platform document. YAML documents are recognized by
// the .yaml/.yml extension of name; anything else is parsed as JSON.
func Parse(name string, data []byte) (*models.Platform, error) {
	var doc models.Platform
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformedDocument, name, err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformedDocument, name, err)
		}
	}
	return &doc, nil
}

// Load reads the document at path and parses it.
func Load(path string) (*models.Platform, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigNotFound, path, err)
	}
	return Parse(path, data)
}

// Resolve combines ResolvePath and Load.
func Resolve(override string) (*models.Platform, string, error) {
	path, err := ResolvePath(override)
	if err != nil {
		return nil, "", err
	}
	doc, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	return doc, path, nil
}
