package rules

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Definition is one reusable requirement/effect bundle referenced by id from
// choices. Definitions are loaded once per series and never mutated.
type Definition struct {
	ID           string   `yaml:"id"`
	Requirements []string `yaml:"requirements"`
	Effects      []string `yaml:"effects"`
}

// Catalog is a keyed table of rule definitions for one series. Lookup is
// case-insensitive. A Catalog is immutable after construction and safe for
// concurrent reads.
type Catalog struct {
	defs map[string]Definition
}

// NewCatalog builds a Catalog from defs.
//
// Postcondition: every definition is retrievable by its id regardless of
// case; if two definitions share an id the last one wins.
func NewCatalog(defs []Definition) *Catalog {
	c := &Catalog{defs: make(map[string]Definition, len(defs))}
	for _, d := range defs {
		c.defs[strings.ToLower(d.ID)] = d
	}
	return c
}

// Definition returns the definition for id, matched case-insensitively.
//
// Postcondition: ok is true iff a definition with that id exists.
func (c *Catalog) Definition(id string) (Definition, bool) {
	d, ok := c.defs[strings.ToLower(id)]
	return d, ok
}

// Contains reports whether a definition with the given id exists.
func (c *Catalog) Contains(id string) bool {
	_, ok := c.Definition(id)
	return ok
}

// Len returns the number of definitions in the catalog.
func (c *Catalog) Len() int {
	return len(c.defs)
}

// Resolve looks up each id in order, skipping blanks and ids with no match.
// Missing ids raise no error here; the metadata validator reports them at
// authoring time.
//
// Postcondition: result order matches the id list order.
func (c *Catalog) Resolve(ids []string) []Definition {
	var out []Definition
	for _, id := range ids {
		if strings.TrimSpace(id) == "" {
			continue
		}
		if d, ok := c.Definition(id); ok {
			out = append(out, d)
		}
	}
	return out
}

// catalogFile is the top-level YAML structure for catalog documents.
type catalogFile struct {
	Rules []Definition `yaml:"rules"`
}

// LoadCatalogFromFile reads a rule-catalog YAML document.
//
// Precondition: path must point to a valid YAML catalog file.
// Postcondition: returns a non-nil Catalog or a non-nil error.
func LoadCatalogFromFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file %s: %w", path, err)
	}
	c, err := LoadCatalogFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return c, nil
}

// LoadCatalogFromBytes parses a rule catalog from YAML bytes.
func LoadCatalogFromBytes(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing catalog YAML: %w", err)
	}
	for i, d := range file.Rules {
		if strings.TrimSpace(d.ID) == "" {
			return nil, fmt.Errorf("catalog rule %d has an empty id", i)
		}
	}
	return NewCatalog(file.Rules), nil
}
