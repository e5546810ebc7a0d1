// Package series resolves a short series code (e.g. "lw") to that series'
// static rule assets: its rule catalog and combat table. Assets load lazily
// on first touch and are cached for the registry's lifetime.
package series

import (
	"fmt"
	"strings"
	"sync"

	"github.com/hennsa/Aon-sub000/internal/game/combat"
	"github.com/hennsa/Aon-sub000/internal/game/rules"
)

// DefaultCode is the series code used when a blank or unknown code is given.
const DefaultCode = "default"

// Assets bundles the per-series static configuration. Immutable once loaded;
// safe to share across arbitrarily many concurrent readers.
type Assets struct {
	Catalog     *rules.Catalog
	CombatTable *combat.Table
}

// CatalogLoader loads the rule catalog for a normalised series code.
type CatalogLoader func(code string) (*rules.Catalog, error)

// TableLoader loads the combat table for a normalised series code.
type TableLoader func(code string) (*combat.Table, error)

// Registry caches per-series Assets. Loader functions are injected at
// construction so tests can substitute in-memory fixtures; there is no
// process-wide state.
//
// Invariant: once an entry is inserted it is never replaced or mutated.
type Registry struct {
	mu          sync.RWMutex
	assets      map[string]*Assets
	loadCatalog CatalogLoader
	loadTable   TableLoader
}

// NewRegistry builds a Registry over the given loaders.
//
// Precondition: both loaders must be non-nil.
func NewRegistry(catalogs CatalogLoader, tables TableLoader) *Registry {
	if catalogs == nil || tables == nil {
		panic("series: NewRegistry requires non-nil loaders")
	}
	return &Registry{
		assets:      make(map[string]*Assets),
		loadCatalog: catalogs,
		loadTable:   tables,
	}
}

// Assets returns the cached assets for code, loading them on first touch.
// Codes are normalised to lower case; a blank code maps to DefaultCode.
//
// Concurrent callers for the same cold code may race the load; the first
// insert wins and later loads of the same code are discarded, so loaders must
// be side-effect free.
//
// Postcondition: on success the same *Assets pointer is returned for every
// subsequent call with an equivalent code.
func (r *Registry) Assets(code string) (*Assets, error) {
	key := Normalize(code)

	r.mu.RLock()
	a, ok := r.assets[key]
	r.mu.RUnlock()
	if ok {
		return a, nil
	}

	catalog, err := r.loadCatalog(key)
	if err != nil {
		return nil, fmt.Errorf("loading rule catalog for series %q: %w", key, err)
	}
	table, err := r.loadTable(key)
	if err != nil {
		return nil, fmt.Errorf("loading combat table for series %q: %w", key, err)
	}
	loaded := &Assets{Catalog: catalog, CombatTable: table}

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.assets[key]; ok {
		return existing, nil
	}
	r.assets[key] = loaded
	return loaded, nil
}

// Normalize maps a raw series code to its cache key: trimmed, lower-cased,
// with blank falling back to DefaultCode.
func Normalize(code string) string {
	key := strings.ToLower(strings.TrimSpace(code))
	if key == "" {
		return DefaultCode
	}
	return key
}
