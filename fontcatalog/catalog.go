package fontcatalog

import (
	. "github.com/tinywasm/fmt"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"github.com/tinywasm/plot/errs"
)

// Catalog manages the loading and accessing of fonts for figure rendering.
// It parses the configured font files and binds catalog families to local
// aliases chosen by the caller.
type Catalog struct {
	fontsPath    []string // List of font paths/URLs to load
	fontFamilies []FontFamily
	bindings     map[string]*FontFamily // localAlias -> family, immutable once set
	log          func(...any)           // logging function, can be nil
	readFile     ReadFileFunc           // nil -> platform loader
}

// NewCatalog creates and initializes a new Catalog.
//
// fontsPath: slice of font file paths or URLs to load.
//
// For WASM builds, use URLs:
//
//	fontsPath := []string{"fonts/montserrat.ttf", "fonts/lato-bold.ttf"}
//
// For Server/Desktop builds, use file paths or a directory to scan:
//
//	fontsPath := []string{"./fonts/", "/usr/share/fonts/truetype/lato.ttf"}
//
// logger: optional logging function. Pass nil to disable logging.
//
// readFile: optional reader for the font bytes, so the caller's environment
// IO serves the catalog too. Pass nil to use the platform loader
// (os on backend, fetch on the browser).
func NewCatalog(fontsPath []string, logger func(...any), readFile ReadFileFunc) *Catalog {
	return &Catalog{
		fontsPath:    fontsPath,
		fontFamilies: make([]FontFamily, 0),
		bindings:     make(map[string]*FontFamily),
		log:          logger,
		readFile:     readFile,
	}
}

// read uses the injected reader when present, the platform loader otherwise.
func (c *Catalog) read(path string) ([]byte, error) {
	if c.readFile != nil {
		return c.readFile(path)
	}
	return c.getFontData(path)
}

// Load parses every configured font file. Files that cannot be read or
// parsed are skipped with a warning; loading is only an error when the
// catalog ends up empty.
func (c *Catalog) Load() error {
	c.fontFamilies = make([]FontFamily, 0)

	paths, err := c.expandFontList()
	if err != nil {
		return err
	}

	for _, fontPath := range paths {
		lower := Convert(fontPath).ToLower().String()
		if !HasSuffix(lower, ".ttf") && !HasSuffix(lower, ".otf") {
			continue
		}

		fontData, err := c.read(fontPath)
		if err != nil {
			if c.log != nil {
				c.log("Warning: could not load font", fontPath, err)
			}
			continue
		}

		parsed, err := opentype.Parse(fontData)
		if err != nil {
			if c.log != nil {
				c.log("Warning: could not parse font", fontPath, err)
			}
			continue
		}

		familyName, style := parseFontName(fontPath)
		def := &FontDef{
			Family: familyName,
			Style:  style,
			File:   fontPath,
			Font:   parsed,
		}

		// Find existing family or create a new one
		var family *FontFamily
		for i := range c.fontFamilies {
			if c.fontFamilies[i].Name == familyName {
				family = &c.fontFamilies[i]
				break
			}
		}
		if family == nil {
			ff := FontFamily{
				Name:   familyName,
				Styles: make(map[FontStyle]*FontDef),
			}
			c.fontFamilies = append(c.fontFamilies, ff)
			family = &c.fontFamilies[len(c.fontFamilies)-1]
		}

		family.Styles[style] = def
		if style == Regular {
			family.Regular = def
		}
	}

	if len(c.fontFamilies) == 0 {
		return errs.MissingFontFamily
	}
	return nil
}

// Families returns the names of the loaded font families.
func (c *Catalog) Families() []string {
	names := make([]string, 0, len(c.fontFamilies))
	for i := range c.fontFamilies {
		names = append(names, c.fontFamilies[i].Name)
	}
	return names
}

// FontAdd binds a catalog family to a local alias used from then on in
// style directives. The alias must be unique within the catalog session;
// once registered a binding is immutable.
func (c *Catalog) FontAdd(catalogName, localAlias string) error {
	if localAlias == "" {
		return errs.EmptyString
	}
	if _, exists := c.bindings[localAlias]; exists {
		return errs.DuplicateFontAlias
	}

	var family *FontFamily
	for i := range c.fontFamilies {
		if c.fontFamilies[i].Name == catalogName {
			family = &c.fontFamilies[i]
			break
		}
	}
	if family == nil {
		if c.log != nil {
			c.log("font family not found in catalog:", catalogName)
		}
		return errs.MissingFontFamily
	}

	c.bindings[localAlias] = family
	return nil
}

// Bound reports whether the alias has a binding.
func (c *Catalog) Bound(localAlias string) bool {
	_, ok := c.bindings[localAlias]
	return ok
}

// GetFontDef retrieves the font definition bound to an alias for a given
// style. If the exact style is not loaded it falls back to the Regular
// style of the bound family.
func (c *Catalog) GetFontDef(localAlias string, style FontStyle) (*FontDef, error) {
	family, ok := c.bindings[localAlias]
	if !ok {
		return nil, errs.MissingFontAlias
	}

	def, ok := family.Styles[style]
	if !ok {
		if family.Regular != nil {
			return family.Regular, nil
		}
		return nil, Errf("font style '%s' not found for alias '%s' and no regular fallback is available", string(style), localAlias)
	}
	return def, nil
}

// Face resolves an alias and style to a rasterizable face at a point size
// and resolution.
func (c *Catalog) Face(localAlias string, style FontStyle, sizePt, dpi float64) (font.Face, error) {
	def, err := c.GetFontDef(localAlias, style)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(def.Font, &opentype.FaceOptions{
		Size:    sizePt,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
}
