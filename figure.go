package plot

import (
	"github.com/tinywasm/plot/canvas"
	"github.com/tinywasm/plot/errs"
	"github.com/tinywasm/plot/fontcatalog"
)

// FontsPath configures the font files or URLs the figure's catalog loads.
type FontsPath []string

// Figure is a plot under construction: text elements, a theme and the
// charts to draw. Nothing is rasterized until SavePlot.
type Figure struct {
	tp      *TinyPlot
	catalog *fontcatalog.Catalog
	theme   Theme

	title  string
	xLabel string
	yLabel string

	charts []chartDrawer
	err    error
}

// chartDrawer is implemented by the chart builders; area coordinates are in
// the export unit.
type chartDrawer interface {
	draw(c *canvas.Canvas, f *Figure, faces *themeFaces, x, y, w, h float64) error
}

// NewFigure creates a Figure. Accepted options:
//
//	Theme                — styling for all text elements
//	FontsPath            — font files/URLs; a catalog is created and owned by the figure
//	*fontcatalog.Catalog — share an already loaded catalog between figures
func NewFigure(options ...any) *Figure {
	f := &Figure{
		tp:    New(),
		theme: DefaultTheme(),
	}

	var fontsPath FontsPath
	for _, opt := range options {
		switch v := opt.(type) {
		case Theme:
			f.theme = v
		case *fontcatalog.Catalog:
			f.catalog = v
		case FontsPath:
			fontsPath = v
		}
	}

	if f.catalog == nil && len(fontsPath) > 0 {
		f.catalog = f.tp.NewCatalog(fontsPath)
	}
	return f
}

// Log escribe mensajes usando el logger del entorno
func (f *Figure) Log(message ...any) { f.tp.Log(message...) }

// Ok returns true if no processing errors have occurred.
func (f *Figure) Ok() bool { return f.err == nil }

// Error returns the internal Figure error; nil if no error has occurred.
func (f *Figure) Error() error { return f.err }

// SetError sets an error to halt figure generation. If an error condition
// is already set, this call is ignored.
func (f *Figure) SetError(err error) {
	if f.err == nil && err != nil {
		f.err = err
	}
}

// Catalog returns the font catalog in use, or nil.
func (f *Figure) Catalog() *fontcatalog.Catalog { return f.catalog }

// LoadFonts loads the catalog configured through FontsPath.
func (f *Figure) LoadFonts() *Figure {
	if f.err != nil {
		return f
	}
	if f.catalog == nil {
		f.err = errs.MissingFontFamily
		return f
	}
	f.SetError(f.catalog.Load())
	return f
}

// FontAdd binds a catalog family to a local alias, the name used from then
// on in the theme. The alias must be unique for the session.
func (f *Figure) FontAdd(catalogName, localAlias string) *Figure {
	if f.err != nil {
		return f
	}
	if f.catalog == nil {
		f.err = errs.MissingFontFamily
		return f
	}
	f.SetError(f.catalog.FontAdd(catalogName, localAlias))
	return f
}

// SetTheme replaces the figure's theme.
func (f *Figure) SetTheme(t Theme) *Figure {
	f.theme = t
	return f
}

// Theme returns the current theme.
func (f *Figure) Theme() Theme { return f.theme }

// Title sets the figure title.
func (f *Figure) Title(t string) *Figure {
	f.title = t
	return f
}

// XLabel sets the horizontal axis label.
func (f *Figure) XLabel(l string) *Figure {
	f.xLabel = l
	return f
}

// YLabel sets the vertical axis label.
func (f *Figure) YLabel(l string) *Figure {
	f.yLabel = l
	return f
}
