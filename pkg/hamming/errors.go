package hamming

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Errores base para usar con errors.Is.
var (
	// ErrInvalidWidth se devuelve al construir un codec con ancho de datos <= 0.
	ErrInvalidWidth = errors.New("ancho de datos inválido")

	// ErrInvalidInput agrupa todas las entradas mal formadas (datos o palabra recibida).
	ErrInvalidInput = errors.New("entrada inválida")

	// ErrLengthMismatch indica una cadena de bits con la longitud incorrecta.
	ErrLengthMismatch = errors.New("longitud incorrecta")

	// ErrIllegalSymbol indica un símbolo distinto de 0/1.
	ErrIllegalSymbol = errors.New("símbolo no binario")
)

// Kind clasifica un *Error.
type Kind string

const (
	KindInvalidWidth   Kind = "invalid_width"
	KindLengthMismatch Kind = "length_mismatch"
	KindIllegalSymbol  Kind = "illegal_symbol"

	// KindInvalidPosition es un índice fuera de la palabra o sin el rol pedido.
	KindInvalidPosition Kind = "invalid_position"
)

// Error es el error que devuelve el codec.
//
// Lleva la operación que falló, el tipo de error, un mensaje legible y un
// mapa opcional de detalles (longitudes esperadas, índice del símbolo, etc.)
// para que el llamador pueda armar un diagnóstico preciso.
type Error struct {
	Op      string
	Kind    Kind
	Message string
	Details map[string]any
}

func newError(op string, kind Kind, msg string) *Error {
	return &Error{Op: op, Kind: kind, Message: msg}
}

// Error implementa la interfaz error con el formato "<op>: <kind>: <message>".
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(string(e.Kind))
	b.WriteString(": ")
	b.WriteString(e.Message)
	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteString(" (")
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%v", k, e.Details[k])
		}
		b.WriteString(")")
	}
	return b.String()
}

// Is permite errors.Is contra los errores base. Tanto LengthMismatch como
// IllegalSymbol (y una posición inválida) son también ErrInvalidInput.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	switch target {
	case ErrInvalidWidth:
		return e.Kind == KindInvalidWidth
	case ErrInvalidInput:
		return e.Kind == KindLengthMismatch || e.Kind == KindIllegalSymbol || e.Kind == KindInvalidPosition
	case ErrLengthMismatch:
		return e.Kind == KindLengthMismatch
	case ErrIllegalSymbol:
		return e.Kind == KindIllegalSymbol
	}
	return false
}

// WithDetail devuelve una copia de e con un detalle más. El mapa original
// nunca se modifica.
func (e *Error) WithDetail(k string, v any) *Error {
	cp := *e
	m := make(map[string]any, len(e.Details)+1)
	for k0, v0 := range e.Details {
		m[k0] = v0
	}
	m[k] = v
	cp.Details = m
	return &cp
}

func lengthMismatch(op string, want, got int) *Error {
	return newError(op, KindLengthMismatch, fmt.Sprintf("se esperaban %d bits, se recibieron %d", want, got)).
		WithDetail("want", want).
		WithDetail("got", got)
}

func illegalSymbol(op string, index int, symbol any) *Error {
	return newError(op, KindIllegalSymbol, fmt.Sprintf("valor %v en posición %d (debe ser 0 o 1)", symbol, index)).
		WithDetail("index", index)
}

// InvalidPosition crea el error para un índice fuera de 0..max.
func InvalidPosition(op string, index, max int) *Error {
	return newError(op, KindInvalidPosition, fmt.Sprintf("posición %d fuera de rango (0..%d)", index, max)).
		WithDetail("index", index)
}
