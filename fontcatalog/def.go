package fontcatalog

import "golang.org/x/image/font/sfnt"

// ReadFileFunc is a function type for reading font files, can be customized
// for WebAssembly or any environment with its own IO.
type ReadFileFunc func(filePath string) ([]byte, error)

// FontStyle identifies a style variant inside a font family.
type FontStyle string

const (
	Regular    FontStyle = "Regular"
	Bold       FontStyle = "Bold"
	Italic     FontStyle = "Italic"
	BoldItalic FontStyle = "BoldItalic"
	Light      FontStyle = "Light"
	SemiBold   FontStyle = "SemiBold"
	ExtraBold  FontStyle = "ExtraBold"
)

// FontDef is one parsed font file: a style variant of a family, ready to
// produce rasterizable faces at any size and resolution.
type FontDef struct {
	Family string
	Style  FontStyle
	File   string // path or URL the font was loaded from
	Font   *sfnt.Font
}

// FontFamily groups the style variants loaded under one family name.
type FontFamily struct {
	Name    string
	Styles  map[FontStyle]*FontDef
	Regular *FontDef
}
