package i18n

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var bundledCatalog []byte

// Messages groups UI strings by section ("common", "navigation", ...).
type Messages map[string]map[string]string

// Catalog holds the static UI strings of the frontend, keyed by language.
type Catalog map[string]Messages

// LoadCatalog parses the catalogue compiled into the binary.
func LoadCatalog() (Catalog, error) {
	return ParseCatalog(bundledCatalog)
}

func ParseCatalog(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse UI catalog: %w", err)
	}
	return c, nil
}

// Lookup returns the messages for lang, falling back to each of fallbacks
// in turn. The second result is the language actually served, or "" when
// none of them has a catalogue.
func (c Catalog) Lookup(lang string, fallbacks ...string) (Messages, string) {
	for _, code := range append([]string{lang}, fallbacks...) {
		if m, ok := c[code]; ok {
			return m, code
		}
	}
	return nil, ""
}
