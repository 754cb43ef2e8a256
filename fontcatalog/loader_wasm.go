//go:build wasm

package fontcatalog

import (
	"io"

	"github.com/tinywasm/fetch"
	. "github.com/tinywasm/fmt"
)

// getFontData fetches the font bytes from a URL (Wasm).
func (c *Catalog) getFontData(url string) ([]byte, error) {
	resp, err := fetch.Get(url)
	if err != nil {
		return nil, Errf("error fetching font %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, Errf("error fetching font %s: status %d", url, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// expandFontList returns the configured URLs as-is; there is no directory
// scanning in the browser.
func (c *Catalog) expandFontList() ([]string, error) {
	if len(c.fontsPath) == 0 {
		return nil, Errf("no font paths provided for WASM build")
	}
	return c.fontsPath, nil
}
