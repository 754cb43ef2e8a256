package plot

import (
	"github.com/tinywasm/plot/canvas"
)

type ScatterChart struct {
	fig    *Figure
	title  string
	groups []pointGroup
}

type pointGroup struct {
	name   string
	xs     []float64
	ys     []float64
	color  Color
	radius float64 // mm
}

func (c *ScatterChart) Title(t string) *ScatterChart {
	c.title = t
	return c
}

// AddPoints adds a named group of points; xs and ys must have the same
// length, extra values in the longer slice are ignored.
func (c *ScatterChart) AddPoints(name string, xs, ys []float64, col Color) *ScatterChart {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	c.groups = append(c.groups, pointGroup{
		name:   name,
		xs:     xs[:n],
		ys:     ys[:n],
		color:  col,
		radius: 0.6,
	})
	return c
}

// Draw registers the chart on its figure; rasterization happens at export.
func (c *ScatterChart) Draw() *Figure {
	c.fig.charts = append(c.fig.charts, c)
	return c.fig
}

func (c *ScatterChart) draw(cv *canvas.Canvas, f *Figure, faces *themeFaces, x, y, w, h float64) error {
	// Title
	if c.title != "" {
		cv.SetFace(faces.label)
		cv.SetTextColor(f.theme.TextColor.R, f.theme.TextColor.G, f.theme.TextColor.B)
		tw := cv.GetStringWidth(c.title)
		if err := cv.Text(x+(w-tw)/2, y, c.title); err != nil {
			return err
		}
		y += cv.FontHeight()
		h -= cv.FontHeight()
	}

	// Data ranges
	maxX, maxY := 0.0, 0.0
	hasPoint := false
	for _, g := range c.groups {
		for i := range g.xs {
			hasPoint = true
			if g.xs[i] > maxX {
				maxX = g.xs[i]
			}
			if g.ys[i] > maxY {
				maxY = g.ys[i]
			}
		}
	}
	if !hasPoint {
		return nil
	}
	if maxX == 0 {
		maxX = 1
	}
	if maxY == 0 {
		maxY = 1
	}

	inset := w * 0.05
	plotW := w - 2*inset
	plotH := h - inset
	scaleX := plotW / maxX
	scaleY := plotH / maxY

	// Draw Axes
	cv.SetDrawColor(f.theme.AxisColor.R, f.theme.AxisColor.G, f.theme.AxisColor.B)
	cv.SetLineWidth(axisLineWidth(cv))
	cv.Line(x, y, x, y+h)     // Y
	cv.Line(x, y+h, x+w, y+h) // X

	// Draw Points
	for _, g := range c.groups {
		cv.SetFillColor(g.color.R, g.color.G, g.color.B)
		r := seriesLineWidth(cv, g.radius)
		for i := range g.xs {
			px := x + inset + g.xs[i]*scaleX
			py := y + h - g.ys[i]*scaleY
			cv.Circle(px, py, r, "F")
		}
	}

	return nil
}
