package series

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hennsa/Aon-sub000/internal/game/combat"
	"github.com/hennsa/Aon-sub000/internal/game/rules"
)

// DirLoaders builds file-backed loaders over a data directory laid out as:
//
//	<dir>/catalog/<code>.yaml
//	<dir>/combat/<code>.yaml
//
// A code with no document of its own falls back to the default document, so
// unknown series play with the default rules rather than failing.
func DirLoaders(dir string) (CatalogLoader, TableLoader) {
	catalogs := func(code string) (*rules.Catalog, error) {
		path, err := resolvePath(filepath.Join(dir, "catalog"), code)
		if err != nil {
			return nil, err
		}
		return rules.LoadCatalogFromFile(path)
	}
	tables := func(code string) (*combat.Table, error) {
		path, err := resolvePath(filepath.Join(dir, "combat"), code)
		if err != nil {
			return nil, err
		}
		return combat.LoadTableFromFile(path)
	}
	return catalogs, tables
}

// resolvePath returns <dir>/<code>.yaml when it exists, otherwise the default
// document's path.
func resolvePath(dir, code string) (string, error) {
	path := filepath.Join(dir, code+".yaml")
	if _, err := os.Stat(path); err == nil {
		return path, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}
	return filepath.Join(dir, DefaultCode+".yaml"), nil
}
