// Package canvas provides the raster drawing surface figures are rendered
// on. Coordinates are expressed in a document unit (pt, mm, cm, in); the
// scale factor k converts them to pixels at the export resolution, so the
// same figure keeps its physical size at any DPI.
package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/tinywasm/plot/errs"
	"github.com/tinywasm/plot/units"
)

// Canvas is a pixel buffer with drawing state, addressed in user units.
type Canvas struct {
	img  *image.RGBA
	k    float64 // scale factor: pixels per user unit
	dpi  int
	unit units.Unit
	w    float64 // width in user units
	h    float64 // height in user units

	drawColor color.RGBA
	fillColor color.RGBA
	textColor color.RGBA
	lineWidth float64 // user units
	face      font.Face
}

// New creates a canvas of w x h user units rasterized at dpi, with a white
// background.
func New(w, h float64, unit units.Unit, dpi int) (*Canvas, error) {
	if w <= 0 || h <= 0 || math.IsNaN(w) || math.IsNaN(h) || math.IsInf(w, 0) || math.IsInf(h, 0) {
		return nil, errs.InvalidDimension
	}
	k, err := unit.PixelsPerUnit(dpi)
	if err != nil {
		return nil, err
	}

	pw := int(math.Round(w * k))
	ph := int(math.Round(h * k))
	img := image.NewRGBA(image.Rect(0, 0, pw, ph))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	return &Canvas{
		img:       img,
		k:         k,
		dpi:       dpi,
		unit:      unit,
		w:         w,
		h:         h,
		drawColor: color.RGBA{0, 0, 0, 255},
		fillColor: color.RGBA{0, 0, 0, 255},
		textColor: color.RGBA{0, 0, 0, 255},
		lineWidth: 0.2,
	}, nil
}

// Image returns the underlying pixel buffer.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Size returns the canvas dimensions in user units.
func (c *Canvas) Size() (w, h float64) { return c.w, c.h }

// Scale returns the pixels-per-unit factor k.
func (c *Canvas) Scale() float64 { return c.k }

// DPI returns the raster resolution.
func (c *Canvas) DPI() int { return c.dpi }

// FromPoints converts a length in typographic points to user units, so
// stroke widths keep their physical size whatever unit the canvas uses.
func (c *Canvas) FromPoints(pt float64) float64 {
	// the unit was validated in New
	v, _ := units.Convert(pt, units.Point, c.unit)
	return v
}

func colorComp(v int) uint8 {
	if v < 0 {
		v = 0
	} else if v > 255 {
		v = 255
	}
	return uint8(v)
}

func rgb(r, g, b int) color.RGBA {
	return color.RGBA{colorComp(r), colorComp(g), colorComp(b), 255}
}

// SetDrawColor sets the color for lines and outlines.
func (c *Canvas) SetDrawColor(r, g, b int) { c.drawColor = rgb(r, g, b) }

// SetFillColor sets the color for filled shapes.
func (c *Canvas) SetFillColor(r, g, b int) { c.fillColor = rgb(r, g, b) }

// SetTextColor sets the color for text.
func (c *Canvas) SetTextColor(r, g, b int) { c.textColor = rgb(r, g, b) }

// SetLineWidth sets the stroke width in user units.
func (c *Canvas) SetLineWidth(w float64) {
	if w > 0 {
		c.lineWidth = w
	}
}

// SetFace selects the font face used by Text and GetStringWidth. The face
// must already be sized for this canvas' resolution.
func (c *Canvas) SetFace(face font.Face) { c.face = face }

// rasterize paints the path accumulated in r with col.
func (c *Canvas) rasterize(r *vector.Rasterizer, col color.RGBA) {
	r.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// Line draws a stroked segment between two points.
func (c *Canvas) Line(x1, y1, x2, y2 float64) {
	px1, py1 := x1*c.k, y1*c.k
	px2, py2 := x2*c.k, y2*c.k

	dx := px2 - px1
	dy := py2 - py1
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	// half stroke width, perpendicular to the segment
	hw := c.lineWidth * c.k / 2
	if hw < 0.5 {
		hw = 0.5
	}
	ox := -dy / length * hw
	oy := dx / length * hw

	r := vector.NewRasterizer(c.img.Bounds().Dx(), c.img.Bounds().Dy())
	r.MoveTo(float32(px1+ox), float32(py1+oy))
	r.LineTo(float32(px2+ox), float32(py2+oy))
	r.LineTo(float32(px2-ox), float32(py2-oy))
	r.LineTo(float32(px1-ox), float32(py1-oy))
	r.ClosePath()
	c.rasterize(r, c.drawColor)
}

// Rect draws a rectangle. styleStr follows the document generator
// convention: "F" fills, "D" draws the outline, "FD" does both.
func (c *Canvas) Rect(x, y, w, h float64, styleStr string) {
	if w <= 0 || h <= 0 {
		return
	}
	fill := styleStr == "F" || styleStr == "FD" || styleStr == "DF"
	outline := styleStr == "D" || styleStr == "FD" || styleStr == "DF" || styleStr == ""

	if fill {
		r := vector.NewRasterizer(c.img.Bounds().Dx(), c.img.Bounds().Dy())
		r.MoveTo(float32(x*c.k), float32(y*c.k))
		r.LineTo(float32((x+w)*c.k), float32(y*c.k))
		r.LineTo(float32((x+w)*c.k), float32((y+h)*c.k))
		r.LineTo(float32(x*c.k), float32((y+h)*c.k))
		r.ClosePath()
		c.rasterize(r, c.fillColor)
	}
	if outline {
		c.Line(x, y, x+w, y)
		c.Line(x+w, y, x+w, y+h)
		c.Line(x+w, y+h, x, y+h)
		c.Line(x, y+h, x, y)
	}
}

// Circle draws a circle centered at (x, y) with radius rad. "F" fills it,
// "D" strokes the outline.
func (c *Canvas) Circle(x, y, rad float64, styleStr string) {
	if rad <= 0 {
		return
	}
	if styleStr == "F" || styleStr == "FD" || styleStr == "DF" {
		// cubic bezier approximation, magic constant for a quarter arc
		const m = 0.551915
		cx, cy := x*c.k, y*c.k
		pr := rad * c.k
		h := pr * m

		r := vector.NewRasterizer(c.img.Bounds().Dx(), c.img.Bounds().Dy())
		r.MoveTo(float32(cx+pr), float32(cy))
		r.CubeTo(float32(cx+pr), float32(cy+h), float32(cx+h), float32(cy+pr), float32(cx), float32(cy+pr))
		r.CubeTo(float32(cx-h), float32(cy+pr), float32(cx-pr), float32(cy+h), float32(cx-pr), float32(cy))
		r.CubeTo(float32(cx-pr), float32(cy-h), float32(cx-h), float32(cy-pr), float32(cx), float32(cy-pr))
		r.CubeTo(float32(cx+h), float32(cy-pr), float32(cx+pr), float32(cy-h), float32(cx+pr), float32(cy))
		r.ClosePath()
		c.rasterize(r, c.fillColor)
	}
	if styleStr == "D" || styleStr == "FD" || styleStr == "DF" {
		// outline as a polyline
		const segments = 36
		prevX := x + rad
		prevY := y
		for i := 1; i <= segments; i++ {
			a := float64(i) / segments * 2 * math.Pi
			nx := x + rad*math.Cos(a)
			ny := y + rad*math.Sin(a)
			c.Line(prevX, prevY, nx, ny)
			prevX, prevY = nx, ny
		}
	}
}

// Text draws s with its baseline starting at (x, y). A face must have been
// selected with SetFace first.
func (c *Canvas) Text(x, y float64, s string) error {
	if c.face == nil {
		return errs.MissingFontAlias
	}
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(c.textColor),
		Face: c.face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(x * c.k * 64),
			Y: fixed.Int26_6(y * c.k * 64),
		},
	}
	d.DrawString(s)
	return nil
}

// GetStringWidth returns the width of s in user units for the selected
// face.
func (c *Canvas) GetStringWidth(s string) float64 {
	if c.face == nil {
		return 0
	}
	adv := font.MeasureString(c.face, s)
	return float64(adv) / 64 / c.k
}

// FontHeight returns the line height of the selected face in user units.
func (c *Canvas) FontHeight() float64 {
	if c.face == nil {
		return 0
	}
	m := c.face.Metrics()
	return float64(m.Height) / 64 / c.k
}
