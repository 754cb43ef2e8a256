package plot

import (
	"github.com/tinywasm/plot/canvas"
)

type ChartFactory struct {
	fig *Figure
}

// axisLineWidth is the stroke for axes: 0.2 mm whatever the export unit.
func axisLineWidth(cv *canvas.Canvas) float64 {
	return cv.FromPoints(0.567)
}

// seriesLineWidth converts a series stroke given in mm to user units.
func seriesLineWidth(cv *canvas.Canvas, mm float64) float64 {
	return cv.FromPoints(mm * 2.835)
}

// Chart returns a factory to create various types of charts.
func (f *Figure) Chart() *ChartFactory {
	return &ChartFactory{fig: f}
}

// Bar starts building a Bar Chart.
func (cf *ChartFactory) Bar() *BarChart {
	return &BarChart{
		fig: cf.fig,
	}
}

// Line starts building a Line Chart.
func (cf *ChartFactory) Line() *LineChart {
	return &LineChart{
		fig: cf.fig,
	}
}

// Scatter starts building a Scatter Chart.
func (cf *ChartFactory) Scatter() *ScatterChart {
	return &ScatterChart{
		fig: cf.fig,
	}
}
