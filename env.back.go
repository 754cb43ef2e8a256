//go:build !wasm
// +build !wasm

package plot

import (
	"fmt"
	"os"
)

// initIO inicializa las funciones de IO para entorno backend (no-wasm)
func (tp *TinyPlot) initIO() {
	// Inicializar logger para backend usando fmt.Println
	tp.logger = func(message ...any) {
		fmt.Println(message...)
	}
}

// writeFile escribe la imagen exportada en el sistema de archivos usando os
func (tp *TinyPlot) writeFile(filePath string, content []byte) error {
	return os.WriteFile(filePath, content, 0644)
}

// readFile lee un archivo del sistema de archivos usando os
func (tp *TinyPlot) readFile(filePath string) ([]byte, error) {
	return os.ReadFile(filePath)
}
