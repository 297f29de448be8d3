package application

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Example es un conjunto de datos de ejemplo.
type Example struct {
	Name  string
	Width int
	Data  string
}

// Examples devuelve los ejemplos de 8, 16 y 32 bits.
func Examples() []Example {
	return []Example{
		{Name: "8-bit", Width: 8, Data: "10110010"},
		{Name: "16-bit", Width: 16, Data: "1100110011001100"},
		{Name: "32-bit", Width: 32, Data: "10101010110011001100110010101010"},
	}
}

// ApplicationLayer maneja la interacción con el usuario
type ApplicationLayer struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewApplicationLayer crea una nueva instancia que lee de in y escribe en out
func NewApplicationLayer(in io.Reader, out io.Writer) *ApplicationLayer {
	return &ApplicationLayer{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// SolicitarDatos pide el ancho y los datos a codificar. Una línea vacía en
// el ancho usa defaultWidth; "e8", "e16" o "e32" carga el ejemplo.
func (app *ApplicationLayer) SolicitarDatos(defaultWidth int) (*Config, error) {
	cfg := &Config{Mode: "manual", Width: defaultWidth}

	for {
		fmt.Fprintf(app.out, "Bits de datos [%d] (e8/e16/e32 = ejemplo): ", defaultWidth)
		if !app.scanner.Scan() {
			return nil, fmt.Errorf("error leyendo ancho")
		}
		choice := strings.TrimSpace(app.scanner.Text())
		if ex, ok := exampleFor(choice); ok {
			cfg.Width, cfg.Data = ex.Width, ex.Data
			return cfg, nil
		}
		if choice == "" {
			break
		}
		width, err := strconv.Atoi(choice)
		if err != nil || width <= 0 {
			fmt.Fprintln(app.out, "❌ Ancho inválido. Ingrese un entero mayor a 0")
			continue
		}
		cfg.Width = width
		break
	}

	for {
		fmt.Fprintf(app.out, "Datos (%d bits): ", cfg.Width)
		if !app.scanner.Scan() {
			return nil, fmt.Errorf("error leyendo datos")
		}
		data := strings.TrimSpace(app.scanner.Text())
		if err := ValidarConfiguracion(&Config{Mode: "manual", Width: cfg.Width, Data: data}); err != nil || data == "" {
			fmt.Fprintf(app.out, "❌ Ingrese exactamente %d caracteres '0' o '1'\n", cfg.Width)
			continue
		}
		cfg.Data = data
		break
	}

	return cfg, nil
}

// Command es una orden de la sesión interactiva.
type Command struct {
	Action string // "flip", "reset", "quit"
	Index  int
}

// SolicitarComando lee la próxima orden: un índice a invertir, "r" para
// reiniciar o "q" para salir. Fin de entrada equivale a "q".
func (app *ApplicationLayer) SolicitarComando(max int) Command {
	for {
		fmt.Fprintf(app.out, "Bit a invertir (0..%d, r=reiniciar, q=salir): ", max)
		if !app.scanner.Scan() {
			return Command{Action: "quit"}
		}
		input := strings.TrimSpace(app.scanner.Text())
		switch input {
		case "q", "quit":
			return Command{Action: "quit"}
		case "r", "reset":
			return Command{Action: "reset"}
		}
		i, err := strconv.Atoi(input)
		if err != nil || i < 0 || i > max {
			fmt.Fprintf(app.out, "❌ Índice inválido: %q\n", input)
			continue
		}
		return Command{Action: "flip", Index: i}
	}
}

// MostrarConfiguracion muestra la configuración seleccionada
func (app *ApplicationLayer) MostrarConfiguracion(cfg *Config) {
	fmt.Fprintln(app.out, "\n📋 Configuración:")
	fmt.Fprintf(app.out, "   Bits de datos: %d\n", cfg.Width)
	if cfg.Data != "" {
		fmt.Fprintf(app.out, "   Datos: %s\n", cfg.Data)
	}
	if cfg.Text != "" {
		fmt.Fprintf(app.out, "   Mensaje: %q\n", cfg.Text)
	}
	fmt.Fprintf(app.out, "   Modo: %s\n", cfg.Mode)
	if cfg.Mode == "benchmark" {
		fmt.Fprintf(app.out, "   BER: %.3f (%.1f%%)\n", cfg.BER, cfg.BER*100)
		fmt.Fprintf(app.out, "   Iteraciones: %d\n", cfg.Trials)
	}
	fmt.Fprintln(app.out)
}

func exampleFor(choice string) (Example, bool) {
	for _, ex := range Examples() {
		if choice == "e"+strconv.Itoa(ex.Width) {
			return ex, true
		}
	}
	return Example{}, false
}
