package plot

// Theme selects the font alias and point sizes applied to a figure's text
// elements. Sizes are in typographic points, so the exported text keeps the
// same physical size regardless of the export resolution.
type Theme struct {
	FontAlias string  // local alias registered in the font catalog
	BaseSize  float64 // tick and value labels
	LabelSize float64 // axis labels
	TitleSize float64

	TextColor  Color
	AxisColor  Color
	Background Color
}

// DefaultTheme returns the sizes used when a figure sets no theme. The font
// alias is left empty and must be set before export.
func DefaultTheme() Theme {
	return Theme{
		BaseSize:   8,
		LabelSize:  11,
		TitleSize:  14,
		TextColor:  ColorRGB(0, 0, 0),
		AxisColor:  ColorRGB(0, 0, 0),
		Background: ColorRGB(255, 255, 255),
	}
}

// WithFont returns a copy of the theme using the given font alias and base
// size; label and title sizes scale proportionally when unset.
func (t Theme) WithFont(alias string, baseSize float64) Theme {
	t.FontAlias = alias
	if baseSize > 0 {
		t.BaseSize = baseSize
		t.LabelSize = baseSize * 1.4
		t.TitleSize = baseSize * 1.8
	}
	return t
}

// --- Styles ---

type Color struct {
	R, G, B int
}

func ColorRGB(r, g, b int) Color {
	return Color{r, g, b}
}
