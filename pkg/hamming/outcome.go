package hamming

import "fmt"

// OutcomeKind es el resultado de la verificación SEC-DED.
type OutcomeKind int

const (
	NoError OutcomeKind = iota
	OverallParityCorrected
	SingleBitCorrected
	DoubleErrorDetected
)

func (k OutcomeKind) String() string {
	switch k {
	case NoError:
		return "no_error"
	case OverallParityCorrected:
		return "overall_parity_corrected"
	case SingleBitCorrected:
		return "single_bit_corrected"
	case DoubleErrorDetected:
		return "double_error_detected"
	default:
		return fmt.Sprintf("outcome(%d)", int(k))
	}
}

// Outcome contiene el resultado de Decode.
type Outcome struct {
	Kind OutcomeKind

	// Position es 0 si se corrigió P0, la posición corregida (1..TotalWidth)
	// para un error simple, y -1 en los demás casos.
	Position int

	// Syndrome es la suma de las posiciones de paridad que no coincidieron.
	Syndrome int

	// Codeword es la palabra completa (P0 incluido) después de la corrección.
	// Con DoubleErrorDetected es igual a la recibida.
	Codeword []byte

	dataIdx []int
}

// Corrected indica si la palabra fue reparada.
func (o *Outcome) Corrected() bool {
	return o.Kind == OverallParityCorrected || o.Kind == SingleBitCorrected
}

// Body devuelve una copia de las posiciones 1..TotalWidth.
func (o *Outcome) Body() []byte {
	body := make([]byte, len(o.Codeword)-1)
	copy(body, o.Codeword[1:])
	return body
}

// Data devuelve los bits de datos del cuerpo, sin las posiciones de paridad.
func (o *Outcome) Data() []byte {
	data := make([]byte, len(o.dataIdx))
	for i, pos := range o.dataIdx {
		data[i] = o.Codeword[pos]
	}
	return data
}

func (o *Outcome) String() string {
	switch o.Kind {
	case SingleBitCorrected:
		return fmt.Sprintf("%s(%d)", o.Kind, o.Position)
	case OverallParityCorrected:
		return fmt.Sprintf("%s(P0)", o.Kind)
	default:
		return o.Kind.String()
	}
}
