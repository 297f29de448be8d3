package hamming

import (
	"fmt"
	"strings"
)

// Role es la función de un índice dentro de la palabra.
type Role int

const (
	RoleOverall Role = iota
	RoleParity
	RoleData
)

func (r Role) String() string {
	switch r {
	case RoleOverall:
		return "overall"
	case RoleParity:
		return "parity"
	default:
		return "data"
	}
}

// Slot describe un índice de la palabra codificada.
type Slot struct {
	Index     int
	Role      Role
	Label     string // P0, P1, P2, D3, P4, ...
	DataIndex int    // índice en los datos originales, -1 si no es dato
}

// Layout devuelve un Slot por cada índice 0..TotalWidth.
func (c *Codec) Layout() []Slot {
	slots := make([]Slot, 0, c.totalWidth+1)
	slots = append(slots, Slot{Index: 0, Role: RoleOverall, Label: "P0", DataIndex: -1})
	next := 0
	for i := 1; i <= c.totalWidth; i++ {
		if IsParityPosition(i) {
			slots = append(slots, Slot{Index: i, Role: RoleParity, Label: fmt.Sprintf("P%d", i), DataIndex: -1})
			continue
		}
		slots = append(slots, Slot{Index: i, Role: RoleData, Label: fmt.Sprintf("D%d", i), DataIndex: next})
		next++
	}
	return slots
}

// Coverage devuelve las posiciones que verifica el bit de paridad parityPos.
func (c *Codec) Coverage(parityPos int) ([]int, error) {
	if !IsParityPosition(parityPos) || parityPos > c.totalWidth {
		return nil, newError("hamming.Coverage", KindInvalidPosition,
			fmt.Sprintf("%d no es una posición de paridad", parityPos)).
			WithDetail("index", parityPos)
	}
	var covered []int
	for i := 1; i <= c.totalWidth; i++ {
		if i&parityPos != 0 {
			covered = append(covered, i)
		}
	}
	return covered, nil
}

// Extract devuelve los bits de datos de una palabra codificada, sin verificarla.
func (c *Codec) Extract(codeword []byte) ([]byte, error) {
	const op = "hamming.Extract"
	if len(codeword) != c.totalWidth+1 {
		return nil, lengthMismatch(op, c.totalWidth+1, len(codeword))
	}
	if err := checkBits(op, codeword); err != nil {
		return nil, err
	}
	data := make([]byte, 0, c.dataWidth)
	for _, pos := range c.dataPositions() {
		data = append(data, codeword[pos])
	}
	return data, nil
}

// ParseBits convierte una cadena de '0'/'1' en un slice de bits.
func ParseBits(s string) ([]byte, error) {
	bits := make([]byte, 0, len(s))
	for i, r := range s {
		switch r {
		case '0':
			bits = append(bits, 0)
		case '1':
			bits = append(bits, 1)
		default:
			return nil, illegalSymbol("hamming.ParseBits", i, fmt.Sprintf("%q", r))
		}
	}
	return bits, nil
}

// FormatBits convierte un slice de bits en una cadena de '0'/'1'.
func FormatBits(bits []byte) string {
	var b strings.Builder
	b.Grow(len(bits))
	for _, bit := range bits {
		if bit == 1 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// EncodeString es Encode sobre una cadena de '0'/'1'.
func (c *Codec) EncodeString(data string) (string, error) {
	bits, err := ParseBits(data)
	if err != nil {
		return "", err
	}
	code, err := c.Encode(bits)
	if err != nil {
		return "", err
	}
	return FormatBits(code), nil
}

// DecodeString es Decode sobre una cadena de '0'/'1'.
func (c *Codec) DecodeString(received string) (*Outcome, error) {
	bits, err := ParseBits(received)
	if err != nil {
		return nil, err
	}
	return c.Decode(bits)
}
