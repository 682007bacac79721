// Package allowlist holds the fixed table of currencies that may be tracked.
// The table is loaded once at start-up and never mutated afterwards.
package allowlist

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/sbilibin2017/currency-watchlist/internal/models"
)

//go:embed currencies.yaml
var defaultTable []byte

type file struct {
	Currencies []entry `yaml:"currencies" validate:"required,min=1,dive"`
}

type entry struct {
	Code string `yaml:"code" validate:"required,len=3,alpha,uppercase"`
	Name string `yaml:"name" validate:"required"`
}

// AllowList is an immutable ordered list of allowed currencies.
type AllowList struct {
	entries []models.AllowedCurrency
	names   map[string]string
}

// Default returns the allow-list embedded in the binary.
func Default() (*AllowList, error) {
	return Parse(defaultTable)
}

// Load reads an allow-list from a YAML file. An empty path yields Default.
func Load(path string) (*AllowList, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read allow-list %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML allow-list.
func Parse(data []byte) (*AllowList, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode allow-list: %w", err)
	}
	if err := validator.New().Struct(f); err != nil {
		return nil, fmt.Errorf("validate allow-list: %w", err)
	}

	entries := make([]models.AllowedCurrency, 0, len(f.Currencies))
	for _, e := range f.Currencies {
		entries = append(entries, models.AllowedCurrency{Code: e.Code, Name: e.Name})
	}
	return New(entries)
}

// New builds an AllowList from entries. Codes must be unique.
func New(entries []models.AllowedCurrency) (*AllowList, error) {
	a := &AllowList{
		entries: make([]models.AllowedCurrency, len(entries)),
		names:   make(map[string]string, len(entries)),
	}
	copy(a.entries, entries)

	for _, e := range entries {
		if _, ok := a.names[e.Code]; ok {
			return nil, fmt.Errorf("duplicate currency code %q in allow-list", e.Code)
		}
		a.names[e.Code] = e.Name
	}
	return a, nil
}

// Lookup returns the display name for code. The match is case-sensitive.
func (a *AllowList) Lookup(code string) (string, bool) {
	name, ok := a.names[code]
	return name, ok
}

// List returns a copy of all entries in declaration order.
func (a *AllowList) List() []models.AllowedCurrency {
	out := make([]models.AllowedCurrency, len(a.entries))
	copy(out, a.entries)
	return out
}

// Len returns the number of allowed currencies.
func (a *AllowList) Len() int {
	return len(a.entries)
}
