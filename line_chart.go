package plot

import (
	"github.com/tinywasm/plot/canvas"
)

type LineChart struct {
	fig    *Figure
	title  string
	series []lineSeries
}

type lineSeries struct {
	name  string
	data  []float64
	color Color
	width float64
}

func (c *LineChart) Title(t string) *LineChart {
	c.title = t
	return c
}

func (c *LineChart) AddSeries(name string, data []float64, col Color) *LineChart {
	c.series = append(c.series, lineSeries{
		name:  name,
		data:  data,
		color: col,
		width: 0.5,
	})
	return c
}

// Draw registers the chart on its figure; rasterization happens at export.
func (c *LineChart) Draw() *Figure {
	c.fig.charts = append(c.fig.charts, c)
	return c.fig
}

func (c *LineChart) draw(cv *canvas.Canvas, f *Figure, faces *themeFaces, x, y, w, h float64) error {
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

	// Calculate Max Y
	maxVal := 0.0
	maxPoints := 0
	for _, s := range c.series {
		if len(s.data) > maxPoints {
			maxPoints = len(s.data)
		}
		for _, v := range s.data {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}
	if maxPoints < 2 {
		return nil // Not enough data to draw lines
	}

	inset := w * 0.05
	plotH := h - inset
	scaleY := plotH / maxVal
	stepX := (w - 2*inset) / float64(maxPoints-1)

	// Draw Axes
	cv.SetDrawColor(f.theme.AxisColor.R, f.theme.AxisColor.G, f.theme.AxisColor.B)
	cv.SetLineWidth(axisLineWidth(cv))
	cv.Line(x, y, x, y+h)     // Y
	cv.Line(x, y+h, x+w, y+h) // X

	// Draw Series
	for _, s := range c.series {
		cv.SetDrawColor(s.color.R, s.color.G, s.color.B)
		cv.SetLineWidth(seriesLineWidth(cv, s.width))
		cv.SetFillColor(s.color.R, s.color.G, s.color.B)

		for i := 0; i < len(s.data)-1; i++ {
			x1 := x + inset + float64(i)*stepX
			y1 := y + h - (s.data[i] * scaleY)
			x2 := x + inset + float64(i+1)*stepX
			y2 := y + h - (s.data[i+1] * scaleY)

			cv.Line(x1, y1, x2, y2)
			// Dot
			cv.Circle(x1, y1, seriesLineWidth(cv, s.width)*2, "F")
		}
		// Last dot
		if len(s.data) > 0 {
			i := len(s.data) - 1
			x1 := x + inset + float64(i)*stepX
			y1 := y + h - (s.data[i] * scaleY)
			cv.Circle(x1, y1, seriesLineWidth(cv, s.width)*2, "F")
		}
	}

	return nil
}
