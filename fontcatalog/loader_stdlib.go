//go:build !wasm

package fontcatalog

import (
	"os"
	"path/filepath"
)

// getFontData reads the font file bytes for the given filename (non-Wasm).
func (c *Catalog) getFontData(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// expandFontList resolves the configured paths, scanning any entry that is
// a directory for font files (non-Wasm).
func (c *Catalog) expandFontList() ([]string, error) {
	var paths []string
	for _, p := range c.fontsPath {
		info, err := os.Stat(p)
		if err != nil {
			// not statable locally; keep it, the configured reader decides
			paths = append(paths, p)
			continue
		}
		if !info.IsDir() {
			paths = append(paths, p)
			continue
		}
		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			paths = append(paths, filepath.Join(p, e.Name()))
		}
	}
	return paths, nil
}
