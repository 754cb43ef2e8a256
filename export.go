package plot

import (
	"bytes"
	"image/jpeg"
	"image/png"

	. "github.com/tinywasm/fmt"
	"golang.org/x/image/font"

	"github.com/tinywasm/plot/canvas"
	"github.com/tinywasm/plot/errs"
	"github.com/tinywasm/plot/fontcatalog"
	"github.com/tinywasm/plot/units"
)

// themeFaces holds the faces resolved from the theme for one export, all
// sized for the export resolution.
type themeFaces struct {
	title font.Face
	label font.Face
	base  font.Face
}

func (tf *themeFaces) Close() {
	if tf.title != nil {
		tf.title.Close()
	}
	if tf.label != nil {
		tf.label.Close()
	}
	if tf.base != nil {
		tf.base.Close()
	}
}

// resolveFaces turns the theme's font alias into rasterizable faces. An
// alias that was never registered is a hard error: rendering with a
// substitute font would silently change the physical text metrics the
// export exists to preserve.
func (f *Figure) resolveFaces(dpi float64) (*themeFaces, error) {
	if f.catalog == nil || f.theme.FontAlias == "" {
		return nil, errs.MissingFontAlias
	}

	faces := &themeFaces{}
	var err error
	faces.title, err = f.catalog.Face(f.theme.FontAlias, fontcatalog.Bold, f.theme.TitleSize, dpi)
	if err != nil {
		return nil, err
	}
	faces.label, err = f.catalog.Face(f.theme.FontAlias, fontcatalog.Bold, f.theme.LabelSize, dpi)
	if err != nil {
		faces.Close()
		return nil, err
	}
	faces.base, err = f.catalog.Face(f.theme.FontAlias, fontcatalog.Regular, f.theme.BaseSize, dpi)
	if err != nil {
		faces.Close()
		return nil, err
	}
	return faces, nil
}

// render draws the figure's text elements and charts onto the canvas.
func (f *Figure) render(cv *canvas.Canvas, faces *themeFaces) error {
	w, h := cv.Size()

	if bg := f.theme.Background; bg != ColorRGB(255, 255, 255) {
		cv.SetFillColor(bg.R, bg.G, bg.B)
		cv.Rect(0, 0, w, h, "F")
	}

	cv.SetTextColor(f.theme.TextColor.R, f.theme.TextColor.G, f.theme.TextColor.B)

	// 1 cm outer margin (28.35 pt)
	margin := cv.FromPoints(28.35)

	x := margin
	y := margin
	plotW := w - 2*margin
	plotH := h - 2*margin
	if plotW <= 0 || plotH <= 0 {
		return errs.InvalidDimension
	}

	// Figure title, centered on top
	if f.title != "" {
		cv.SetFace(faces.title)
		y += cv.FontHeight()
		tw := cv.GetStringWidth(f.title)
		if err := cv.Text(x+(plotW-tw)/2, y-cv.FontHeight()*0.3, f.title); err != nil {
			return err
		}
		plotH -= cv.FontHeight()
	}

	// Y axis label, top left above the plot area
	if f.yLabel != "" {
		cv.SetFace(faces.label)
		y += cv.FontHeight()
		if err := cv.Text(x, y-cv.FontHeight()*0.3, f.yLabel); err != nil {
			return err
		}
		plotH -= cv.FontHeight()
	}

	// X axis label, centered at the bottom
	if f.xLabel != "" {
		cv.SetFace(faces.label)
		lw := cv.GetStringWidth(f.xLabel)
		if err := cv.Text(x+(plotW-lw)/2, h-margin*0.3, f.xLabel); err != nil {
			return err
		}
		plotH -= cv.FontHeight()
	}

	if len(f.charts) == 0 {
		return errs.ErrEmptyFigure
	}
	for _, chart := range f.charts {
		if err := chart.draw(cv, f, faces, x, y, plotW, plotH); err != nil {
			return err
		}
	}
	return nil
}

// formatFromPath returns the export format implied by the file extension.
func formatFromPath(path string) (string, error) {
	lower := Convert(path).ToLower().String()
	switch {
	case HasSuffix(lower, ".png"):
		return "png", nil
	case HasSuffix(lower, ".jpg"), HasSuffix(lower, ".jpeg"):
		return "jpg", nil
	}
	return "", errs.UnsupportedFormat
}

// mimeForPath is used by the browser download path.
func mimeForPath(path string) string {
	if f, err := formatFromPath(path); err == nil && f == "jpg" {
		return "image/jpeg"
	}
	return "image/png"
}

// SavePlot rasterizes the figure at the physical size and resolution of
// spec and writes it to path. The format follows the file extension (png,
// jpg). The chain fails at the first erroring step: invalid spec, unknown
// font alias, unsupported format, then the platform write.
func (f *Figure) SavePlot(path string, spec units.ExportSpec) error {
	if f.err != nil {
		return f.err
	}
	if err := spec.Validate(); err != nil {
		return err
	}
	format, err := formatFromPath(path)
	if err != nil {
		return err
	}

	faces, err := f.resolveFaces(float64(spec.DPI))
	if err != nil {
		return err
	}
	defer faces.Close()

	cv, err := canvas.New(spec.Wd, spec.Ht, spec.Unit, spec.DPI)
	if err != nil {
		return err
	}

	if err := f.render(cv, faces); err != nil {
		return err
	}

	var buf bytes.Buffer
	switch format {
	case "png":
		err = png.Encode(&buf, cv.Image())
	case "jpg":
		err = jpeg.Encode(&buf, cv.Image(), &jpeg.Options{Quality: 90})
	}
	if err != nil {
		return err
	}

	return f.tp.writeFile(path, buf.Bytes())
}

// SavePlotCm is SavePlot for dimensions given in centimeters, the usual
// way documents state a text-line width. It converts to inches before
// building the export spec.
func (f *Figure) SavePlotCm(path string, widthCm, heightCm float64, dpi int) error {
	wIn, err := units.CmToInch(widthCm)
	if err != nil {
		return err
	}
	hIn, err := units.CmToInch(heightCm)
	if err != nil {
		return err
	}
	spec, err := units.NewExportSpec(wIn, hIn, dpi)
	if err != nil {
		return err
	}
	return f.SavePlot(path, spec)
}
