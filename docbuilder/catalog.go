package docbuilder

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog is a URI-to-filesystem remapping configuration.
type Catalog struct {
	Mappings []Mapping `yaml:"mappings"`
}

// LoadCatalog reads a catalog from a YAML file.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return ParseCatalog(data)
}

// ParseCatalog parses a catalog from YAML bytes.
func ParseCatalog(data []byte) (Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	for _, mapping := range catalog.Mappings {
		if mapping.URIPrefix == "" {
			return Catalog{}, fmt.Errorf("parse catalog: mapping with empty uriPrefix")
		}
	}
	return catalog, nil
}
