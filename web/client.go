//go:build wasm

package main

import (
	"github.com/tinywasm/plot"
	"github.com/tinywasm/plot/web/ui"
)

func main() {
	tp := plot.New()
	tp.Log("TinyWasmPlot inicializado...")

	// Catálogo compartido: las fuentes se descargan una sola vez
	cat := tp.NewCatalog([]string{
		"fonts/Montserrat.ttf",
		"fonts/Montserrat-Bold.ttf",
	})

	if err := cat.Load(); err != nil {
		tp.Log("error cargando fuentes:", err)
	} else if err := cat.FontAdd("Montserrat", "mont"); err != nil {
		tp.Log("error registrando alias:", err)
	}

	theme := plot.DefaultTheme().WithFont("mont", 9)

	// Configurar UI con el generador de figuras
	ui.Setup(tp, func(title string) error {
		fig := plot.NewFigure(cat, theme).
			Title(title).
			XLabel("Mes").
			YLabel("Ventas")

		fig.Chart().Bar().
			AddBar(120, "Ene", plot.ColorRGB(50, 100, 200)).
			AddBar(140, "Feb", plot.ColorRGB(200, 100, 50)).
			AddBar(110, "Mar", plot.ColorRGB(50, 200, 100)).
			Draw()

		// 16 cm de ancho de línea de texto, 150 dpi para pantalla
		return fig.SavePlotCm("figura.png", 16, 10, 150)
	})

	tp.Log("Aplicación lista")

	// Mantener el programa ejecutándose
	select {}
}
