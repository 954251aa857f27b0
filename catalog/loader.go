package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and parses an entity catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse parses a YAML entity catalog.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	seen := make(map[string]struct{}, len(c.Entities))
	for _, e := range c.Entities {
		if e.Name == "" {
			return fmt.Errorf("catalog entity is missing a name")
		}
		if _, ok := seen[e.Name]; ok {
			return fmt.Errorf("duplicate entity %q in catalog", e.Name)
		}
		seen[e.Name] = struct{}{}

		if e.Lookup.TargetEntity == "" || e.Lookup.TargetField == "" {
			return fmt.Errorf("entity %q: lookup needs targetEntity and targetField", e.Name)
		}
		for _, f := range e.Fields {
			if f.SourceAttribute == "" || f.TargetAttribute == "" {
				return fmt.Errorf("entity %q: field mapping needs source and target", e.Name)
			}
		}
	}
	return nil
}
