package plot

import (
	"github.com/tinywasm/plot/fontcatalog"
)

// TinyPlot carries the environment-dependent IO used by figures: logging,
// reading resources and writing the exported image.
type TinyPlot struct {
	logger func(message ...any)
}

// Log escribe mensajes de log según el entorno
// En backend usa fmt.Println, en frontend usa console.log
func (tp *TinyPlot) Log(message ...any) {
	if tp.logger != nil {
		tp.logger(message...)
	}
}

func New(options ...any) *TinyPlot {

	tp := &TinyPlot{}

	// Inicializar las funciones de IO según el entorno
	tp.initIO()

	// Las opciones pueden reemplazar las funciones por defecto
	for _, opt := range options {
		switch v := opt.(type) {
		case func(message ...any):
			tp.logger = v
		}
	}

	return tp
}

// NewCatalog creates a font catalog wired to tp's environment IO: fonts are
// read with the same readFile the figures use (os on backend, fetch on the
// browser) and warnings go through tp's logger.
func (tp *TinyPlot) NewCatalog(fontsPath []string) *fontcatalog.Catalog {
	return fontcatalog.NewCatalog(fontsPath, tp.logger, tp.readFile)
}
