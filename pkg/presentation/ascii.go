package presentation

import (
	"fmt"
	"unicode/utf8"
)

// PresentationLayer convierte texto a bits y muestra palabras y resultados.
type PresentationLayer struct{}

// NewPresentationLayer crea una nueva instancia
func NewPresentationLayer() *PresentationLayer {
	return &PresentationLayer{}
}

// CodificarMensaje convierte texto ASCII a bits (8 por carácter, MSB primero)
func (p *PresentationLayer) CodificarMensaje(texto string) ([]byte, error) {
	if err := p.ValidarTexto(texto); err != nil {
		return nil, err
	}

	for i, r := range texto {
		if r < 32 && r != 9 && r != 10 && r != 13 { // Permitir tab, newline, carriage return
			return nil, fmt.Errorf("carácter de control no permitido en posición %d: código %d", i, r)
		}
	}

	bits := make([]byte, 0, len(texto)*8)
	for _, char := range []byte(texto) {
		for i := 7; i >= 0; i-- {
			bits = append(bits, (char>>i)&1)
		}
	}
	return bits, nil
}

// DecodificarMensaje convierte bits a texto ASCII
func (p *PresentationLayer) DecodificarMensaje(bits []byte) (string, error) {
	if len(bits)%8 != 0 {
		return "", fmt.Errorf("la longitud de bits (%d) no es múltiplo de 8", len(bits))
	}

	for i, bit := range bits {
		if bit != 0 && bit != 1 {
			return "", fmt.Errorf("bit inválido en posición %d: %d (debe ser 0 o 1)", i, bit)
		}
	}

	resultado := make([]byte, 0, len(bits)/8)
	for i := 0; i < len(bits); i += 8 {
		var charCode byte
		for j := 0; j < 8; j++ {
			charCode |= bits[i+j] << (7 - j)
		}

		if charCode > 127 {
			return "", fmt.Errorf("código de carácter inválido: %d (mayor que 127)", charCode)
		}
		if charCode < 32 && charCode != 9 && charCode != 10 && charCode != 13 {
			return "", fmt.Errorf("carácter de control no permitido: código %d", charCode)
		}

		resultado = append(resultado, charCode)
	}

	return string(resultado), nil
}

// ValidarTexto verifica que el texto sea válido para codificar
func (p *PresentationLayer) ValidarTexto(texto string) error {
	if texto == "" {
		return fmt.Errorf("el texto no puede estar vacío")
	}

	if !utf8.ValidString(texto) {
		return fmt.Errorf("el texto contiene caracteres no válidos UTF-8")
	}

	for i, r := range texto {
		if r > 127 {
			return fmt.Errorf("carácter no-ASCII en posición %d: '%c'", i, r)
		}
	}

	return nil
}
