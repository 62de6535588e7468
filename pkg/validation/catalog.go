package validation

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed messages.yaml
var messagesYAML []byte

// BaseLocale is the fallback used when a requested locale or key is absent.
const BaseLocale = "en"

var (
	defaultCatalogOnce sync.Once
	defaultCatalog     *Catalog
)

// Catalog holds localizable message templates keyed by locale and message key.
// Templates use {placeholder} substitution.
type Catalog struct {
	locales map[string]map[string]string
}

// LoadCatalog parses a YAML message catalog.
func LoadCatalog(raw []byte) (*Catalog, error) {
	locales := make(map[string]map[string]string)
	if err := yaml.Unmarshal(raw, &locales); err != nil {
		return nil, fmt.Errorf("validation: parse message catalog: %w", err)
	}
	if len(locales) == 0 {
		return nil, fmt.Errorf("validation: message catalog is empty")
	}
	if _, ok := locales[BaseLocale]; !ok {
		return nil, fmt.Errorf("validation: message catalog is missing base locale %q", BaseLocale)
	}
	return &Catalog{locales: locales}, nil
}

// DefaultCatalog returns the embedded en/fr catalog. A parse failure here is a
// build defect, so it panics rather than returning an error.
func DefaultCatalog() *Catalog {
	defaultCatalogOnce.Do(func() {
		catalog, err := LoadCatalog(messagesYAML)
		if err != nil {
			panic(err)
		}
		defaultCatalog = catalog
	})
	return defaultCatalog
}

// Message resolves key for locale, falling back to the base locale and then to
// the key itself, then substitutes {placeholder} values.
func (c *Catalog) Message(locale, key string, values map[string]string) string {
	template := c.lookup(locale, key)
	if template == "" {
		template = key
	}
	return expand(template, values)
}

func (c *Catalog) lookup(locale, key string) string {
	if messages, ok := c.locales[locale]; ok {
		if msg, ok := messages[key]; ok {
			return msg
		}
	}
	if locale == BaseLocale {
		return ""
	}
	if messages, ok := c.locales[BaseLocale]; ok {
		return messages[key]
	}
	return ""
}

func expand(template string, values map[string]string) string {
	if len(values) == 0 {
		return template
	}
	out := template
	for key, value := range values {
		out = strings.ReplaceAll(out, "{"+key+"}", value)
	}
	return out
}
