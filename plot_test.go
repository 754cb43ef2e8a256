package plot_test

import (
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/tinywasm/plot"
	"github.com/tinywasm/plot/errs"
	"github.com/tinywasm/plot/fontcatalog"
	"github.com/tinywasm/plot/units"
)

// writeTestFonts deja fuentes reales en un directorio temporal para que el
// catálogo las cargue como la familia "Montserrat".
func writeTestFonts(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Montserrat.ttf"), goregular.TTF, 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "Montserrat-Bold.ttf"), gobold.TTF, 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func newTestCatalog(t *testing.T) *fontcatalog.Catalog {
	t.Helper()
	dir := writeTestFonts(t)
	// catálogo cableado al IO del entorno, como lo crea el cliente
	cat := plot.New().NewCatalog([]string{dir})
	if err := cat.Load(); err != nil {
		t.Fatalf("error cargando fuentes de prueba: %v", err)
	}
	if err := cat.FontAdd("Montserrat", "mont"); err != nil {
		t.Fatalf("error registrando alias: %v", err)
	}
	return cat
}

func newTestFigure(t *testing.T) *plot.Figure {
	t.Helper()
	cat := newTestCatalog(t)
	theme := plot.DefaultTheme().WithFont("mont", 9)
	return plot.NewFigure(cat, theme)
}

func TestSavePlotPNG(t *testing.T) {
	fig := newTestFigure(t).
		Title("Ventas Mensuales").
		XLabel("Mes").
		YLabel("Unidades")

	fig.Chart().Bar().
		AddBar(120, "Ene", plot.ColorRGB(50, 100, 200)).
		AddBar(140, "Feb", plot.ColorRGB(200, 100, 50)).
		AddBar(110, "Mar").
		Draw()

	spec, err := units.NewExportSpec(4, 3, 100)
	if err != nil {
		t.Fatal(err)
	}

	outPath := filepath.Join(t.TempDir(), "ventas.png")
	if err := fig.SavePlot(outPath, spec); err != nil {
		t.Fatalf("SavePlot falló: %v", err)
	}

	file, err := os.Open(outPath)
	if err != nil {
		t.Fatalf("archivo de salida no existe: %v", err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("salida no es PNG válido: %v", err)
	}
	bounds := img.Bounds()
	// 4x3 pulgadas a 100 dpi
	if bounds.Dx() != 400 || bounds.Dy() != 300 {
		t.Errorf("tamaño en píxeles incorrecto: %dx%d, esperado 400x300", bounds.Dx(), bounds.Dy())
	}
}

func TestSavePlotJPEG(t *testing.T) {
	fig := newTestFigure(t).Title("Líneas")
	fig.Chart().Line().
		AddSeries("serie a", []float64{1, 3, 2, 5}, plot.ColorRGB(20, 20, 180)).
		Draw()

	spec, err := units.NewExportSpec(2, 2, 72)
	if err != nil {
		t.Fatal(err)
	}

	outPath := filepath.Join(t.TempDir(), "lineas.jpg")
	if err := fig.SavePlot(outPath, spec); err != nil {
		t.Fatalf("SavePlot falló: %v", err)
	}

	file, err := os.Open(outPath)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	img, err := jpeg.Decode(file)
	if err != nil {
		t.Fatalf("salida no es JPEG válido: %v", err)
	}
	if img.Bounds().Dx() != 144 || img.Bounds().Dy() != 144 {
		t.Errorf("tamaño en píxeles incorrecto: %v", img.Bounds())
	}
}

func TestSavePlotCm(t *testing.T) {
	fig := newTestFigure(t).Title("Dispersión")
	fig.Chart().Scatter().
		AddPoints("grupo", []float64{1, 2, 3}, []float64{2, 4, 3}, plot.ColorRGB(180, 40, 40)).
		Draw()

	outPath := filepath.Join(t.TempDir(), "dispersion.png")
	// 2.54 cm = 1 pulgada exacta
	if err := fig.SavePlotCm(outPath, 2.54*4, 2.54*3, 100); err != nil {
		t.Fatalf("SavePlotCm falló: %v", err)
	}

	file, err := os.Open(outPath)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 400 || img.Bounds().Dy() != 300 {
		t.Errorf("tamaño en píxeles incorrecto: %v", img.Bounds())
	}
}

func TestSavePlotCmInvalidSize(t *testing.T) {
	fig := newTestFigure(t)
	fig.Chart().Bar().AddBar(1, "a").Draw()

	err := fig.SavePlotCm(filepath.Join(t.TempDir(), "x.png"), 0, 10, 100)
	if err != errs.InvalidDimension {
		t.Errorf("ancho cero debe fallar con InvalidDimension, obtuvo: %v", err)
	}
	err = fig.SavePlotCm(filepath.Join(t.TempDir(), "x.png"), 16, -5, 100)
	if err != errs.InvalidDimension {
		t.Errorf("alto negativo debe fallar con InvalidDimension, obtuvo: %v", err)
	}
}

func TestSavePlotUnknownFontAlias(t *testing.T) {
	cat := newTestCatalog(t)
	// tema con un alias jamás registrado
	theme := plot.DefaultTheme().WithFont("inexistente", 9)
	fig := plot.NewFigure(cat, theme)
	fig.Chart().Bar().AddBar(1, "a").Draw()

	spec, err := units.NewExportSpec(2, 2, 72)
	if err != nil {
		t.Fatal(err)
	}
	err = fig.SavePlot(filepath.Join(t.TempDir(), "x.png"), spec)
	if err != errs.MissingFontAlias {
		t.Errorf("alias desconocido debe fallar con MissingFontAlias, obtuvo: %v", err)
	}
}

func TestSavePlotNoCatalog(t *testing.T) {
	fig := plot.NewFigure()
	fig.Chart().Bar().AddBar(1, "a").Draw()

	spec, err := units.NewExportSpec(2, 2, 72)
	if err != nil {
		t.Fatal(err)
	}
	err = fig.SavePlot(filepath.Join(t.TempDir(), "x.png"), spec)
	if err != errs.MissingFontAlias {
		t.Errorf("figura sin catálogo debe fallar con MissingFontAlias, obtuvo: %v", err)
	}
}

func TestSavePlotUnsupportedFormat(t *testing.T) {
	fig := newTestFigure(t)
	fig.Chart().Bar().AddBar(1, "a").Draw()

	spec, err := units.NewExportSpec(2, 2, 72)
	if err != nil {
		t.Fatal(err)
	}
	for _, path := range []string{"salida.gif", "salida.bmp", "salida"} {
		err = fig.SavePlot(filepath.Join(t.TempDir(), path), spec)
		if err != errs.UnsupportedFormat {
			t.Errorf("%s: debe fallar con UnsupportedFormat, obtuvo: %v", path, err)
		}
	}
}

func TestSavePlotEmptyFigure(t *testing.T) {
	fig := newTestFigure(t).Title("sin gráficos")

	spec, err := units.NewExportSpec(2, 2, 72)
	if err != nil {
		t.Fatal(err)
	}
	err = fig.SavePlot(filepath.Join(t.TempDir(), "x.png"), spec)
	if err != errs.ErrEmptyFigure {
		t.Errorf("figura vacía debe fallar con ErrEmptyFigure, obtuvo: %v", err)
	}
}

func TestFigureFirstErrorWins(t *testing.T) {
	dir := writeTestFonts(t)
	fig := plot.NewFigure(plot.FontsPath{dir}).
		LoadFonts().
		FontAdd("Montserrat", "mont").
		FontAdd("Montserrat", "mont") // alias duplicado

	if fig.Ok() {
		t.Fatal("el alias duplicado debe dejar la figura en error")
	}
	if fig.Error() != errs.DuplicateFontAlias {
		t.Errorf("error esperado DuplicateFontAlias, obtuvo: %v", fig.Error())
	}

	// las llamadas posteriores no reemplazan el primer error
	fig.Title("ignorado").FontAdd("Montserrat", "otro")
	if fig.Error() != errs.DuplicateFontAlias {
		t.Errorf("el primer error debe conservarse, obtuvo: %v", fig.Error())
	}

	spec, err := units.NewExportSpec(2, 2, 72)
	if err != nil {
		t.Fatal(err)
	}
	if err := fig.SavePlot(filepath.Join(t.TempDir(), "x.png"), spec); err != errs.DuplicateFontAlias {
		t.Errorf("SavePlot debe devolver el primer error acumulado, obtuvo: %v", err)
	}
}

func TestFigureFontsPathOption(t *testing.T) {
	dir := writeTestFonts(t)
	fig := plot.NewFigure(plot.FontsPath{dir}, plot.DefaultTheme().WithFont("mont", 8)).
		LoadFonts().
		FontAdd("Montserrat", "mont").
		Title("con catálogo propio")

	if !fig.Ok() {
		t.Fatalf("figura en error: %v", fig.Error())
	}

	fig.Chart().Bar().AddBar(3, "x").AddBar(5, "y").Draw()

	if err := fig.SavePlotCm(filepath.Join(t.TempDir(), "propio.png"), 10, 8, 96); err != nil {
		t.Fatalf("SavePlotCm falló: %v", err)
	}
}

func TestNewLoggerOption(t *testing.T) {
	var got []any
	tp := plot.New(func(message ...any) {
		got = append(got, message...)
	})
	tp.Log("figura lista:", 42)

	if len(got) != 2 {
		t.Fatalf("el logger configurado recibió %d argumentos; want 2", len(got))
	}
	if got[0] != "figura lista:" || got[1] != 42 {
		t.Errorf("mensajes = %v", got)
	}
}

func TestThemeWithFont(t *testing.T) {
	theme := plot.DefaultTheme().WithFont("mont", 10)
	if theme.FontAlias != "mont" {
		t.Errorf("alias incorrecto: %s", theme.FontAlias)
	}
	if theme.BaseSize != 10 {
		t.Errorf("tamaño base incorrecto: %v", theme.BaseSize)
	}
	if theme.LabelSize <= theme.BaseSize || theme.TitleSize <= theme.LabelSize {
		t.Errorf("los tamaños deben crecer: base %v label %v title %v",
			theme.BaseSize, theme.LabelSize, theme.TitleSize)
	}
}
