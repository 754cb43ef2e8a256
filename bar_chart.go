package plot

import (
	. "github.com/tinywasm/fmt"

	"github.com/tinywasm/plot/canvas"
)

type BarChart struct {
	fig   *Figure
	title string
	bars  []barData
}

type barData struct {
	label string
	value float64
	color Color
}

func (c *BarChart) Title(t string) *BarChart {
	c.title = t
	return c
}

func (c *BarChart) AddBar(val float64, label string, col ...Color) *BarChart {
	var color Color
	if len(col) > 0 {
		color = col[0]
	} else {
		color = ColorRGB(100, 100, 100) // Default color
	}
	c.bars = append(c.bars, barData{
		label: label,
		value: val,
		color: color,
	})
	return c
}

// Draw registers the chart on its figure; rasterization happens at export.
func (c *BarChart) Draw() *Figure {
	c.fig.charts = append(c.fig.charts, c)
	return c.fig
}

func (c *BarChart) draw(cv *canvas.Canvas, f *Figure, faces *themeFaces, x, y, w, h float64) error {
	if len(c.bars) == 0 {
		return nil
	}

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

	// Calculate Scale
	maxVal := 0.0
	for _, b := range c.bars {
		if b.value > maxVal {
			maxVal = b.value
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	// Margins inside chart area: room for value labels on top and bar
	// labels under the axis
	cv.SetFace(faces.base)
	labelH := cv.FontHeight()
	inset := w * 0.05
	plotH := h - 2*labelH
	scaleY := plotH / maxVal
	barWidth := (w - inset) / float64(len(c.bars))

	baseline := y + labelH + plotH

	// Draw Axes
	cv.SetDrawColor(f.theme.AxisColor.R, f.theme.AxisColor.G, f.theme.AxisColor.B)
	cv.SetLineWidth(axisLineWidth(cv))
	cv.Line(x, y, x, baseline)          // Y Axis
	cv.Line(x, baseline, x+w, baseline) // X Axis

	// Draw Bars
	gap := barWidth * 0.1
	for i, bar := range c.bars {
		bh := bar.value * scaleY
		bx := x + inset + float64(i)*barWidth
		by := baseline - bh

		cv.SetFillColor(bar.color.R, bar.color.G, bar.color.B)
		cv.Rect(bx+gap, by, barWidth-2*gap, bh, "F")

		// Draw Text
		cv.SetTextColor(f.theme.TextColor.R, f.theme.TextColor.G, f.theme.TextColor.B)
		cv.SetFace(faces.base)

		// Value on top
		valStr := Sprintf("%.1f", bar.value)
		wVal := cv.GetStringWidth(valStr)
		if err := cv.Text(bx+(barWidth-wVal)/2, by-labelH*0.3, valStr); err != nil {
			return err
		}

		// Label on bottom
		wLbl := cv.GetStringWidth(bar.label)
		if err := cv.Text(bx+(barWidth-wLbl)/2, baseline+labelH, bar.label); err != nil {
			return err
		}
	}

	return nil
}
