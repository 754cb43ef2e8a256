//go:build wasm
// +build wasm

package ui

import (
	"syscall/js"

	"github.com/tinywasm/plot"
)

var (
	TP        *plot.TinyPlot
	textInput js.Value
	generate  func(title string) error
)

// Setup inicializa y configura toda la interfaz de usuario
func Setup(tp *plot.TinyPlot, generateFn func(title string) error) {
	TP = tp
	generate = generateFn
	setupUI()
}

func setupUI() {
	document := js.Global().Get("document")
	body := document.Get("body")
	body.Set("innerHTML", "")

	// Crear contenedor principal
	container := document.Call("createElement", "div")
	container.Set("className", "container")

	// Título
	title := document.Call("createElement", "h1")
	title.Set("textContent", "Generador de gráficos con TinyPlot")
	container.Call("appendChild", title)

	// Sección del formulario
	formSection := document.Call("createElement", "div")
	formSection.Set("className", "form-section")

	// Campo de texto
	inputLabel := document.Call("createElement", "label")
	inputLabel.Set("textContent", "Título del gráfico:")
	formSection.Call("appendChild", inputLabel)

	textInput = document.Call("createElement", "input")
	textInput.Set("type", "text")
	textInput.Set("value", "Ventas Mensuales")
	formSection.Call("appendChild", textInput)

	// Botón generar gráfico
	btn := document.Call("createElement", "button")
	btn.Set("textContent", "Generar gráfico")

	// Evento click del botón
	btn.Call("addEventListener", "click", js.FuncOf(func(this js.Value, args []js.Value) any {
		GeneratePlot()
		return nil
	}))
	formSection.Call("appendChild", btn)

	container.Call("appendChild", formSection)

	// Contenedor para la imagen
	imgContainer := document.Call("createElement", "div")
	imgContainer.Set("className", "plot-container")
	imgContainer.Set("id", "plot-container")
	container.Call("appendChild", imgContainer)

	body.Call("appendChild", container)

	// Cargar estilos CSS
	loadStyles()
}

func loadStyles() {
	document := js.Global().Get("document")
	head := document.Get("head")

	// Verificar si ya existe el link de estilos
	existingLink := document.Call("querySelector", "link[href='style.css']")
	if !existingLink.IsNull() {
		return
	}

	link := document.Call("createElement", "link")
	link.Set("rel", "stylesheet")
	link.Set("href", "style.css")
	head.Call("appendChild", link)
}

// GeneratePlot ejecuta el generador configurado y muestra el resultado
func GeneratePlot() {
	if generate == nil {
		ShowError("generador no configurado")
		return
	}
	titleText := GetTitleText()
	if err := generate(titleText); err != nil {
		TP.Log("error generando gráfico:", err)
		ShowError(err.Error())
		return
	}
	// writeFile deja la imagen en localStorage bajo su ruta
	ShowImageFromStorage("figura.png")
}

// ShowError muestra un mensaje de error en la UI
func ShowError(message string) {
	document := js.Global().Get("document")
	imgContainer := document.Call("getElementById", "plot-container")
	if imgContainer.IsNull() {
		return
	}
	imgContainer.Set("innerHTML", "")

	errorDiv := document.Call("createElement", "div")
	errorDiv.Set("className", "error-message")
	errorDiv.Set("textContent", message)

	imgContainer.Call("appendChild", errorDiv)
}

// ShowImageFromStorage muestra la imagen guardada en localStorage
func ShowImageFromStorage(path string) {
	localStorage := js.Global().Get("localStorage")
	if localStorage.IsUndefined() {
		return
	}
	encoded := localStorage.Call("getItem", path)
	if encoded.IsNull() {
		ShowError("imagen no encontrada: " + path)
		return
	}
	ShowImage("data:image/png;base64," + encoded.String())
}

// ShowImage muestra la imagen en el contenedor
func ShowImage(dataURL string) {
	TP.Log("ShowImage llamado")

	document := js.Global().Get("document")
	imgContainer := document.Call("getElementById", "plot-container")

	if imgContainer.IsNull() {
		TP.Log("ERROR: plot-container no encontrado")
		return
	}

	imgContainer.Set("innerHTML", "")

	img := document.Call("createElement", "img")
	img.Set("src", dataURL)
	img.Set("className", "plot-image")
	img.Set("width", "100%")

	imgContainer.Call("appendChild", img)
}

// GetTitleText obtiene el texto del campo de entrada
func GetTitleText() string {
	titleText := textInput.Get("value").String()
	if titleText == "" {
		titleText = "Gráfico sin título"
	}
	return titleText
}
