package presentation

import (
	"fmt"
	"io"
	"strings"

	"github.com/Diegoval-Dev/R-Lab2/secded-go/pkg/hamming"
)

// RenderCodeword escribe dos filas alineadas: etiquetas (P0, P1, D3, ...) y
// bits. Los índices en marks se muestran entre corchetes.
func (p *PresentationLayer) RenderCodeword(w io.Writer, layout []hamming.Slot, code []byte, marks ...int) {
	marked := make(map[int]bool, len(marks))
	for _, m := range marks {
		marked[m] = true
	}

	var labels, values strings.Builder
	for _, slot := range layout {
		cell := fmt.Sprintf("%d", code[slot.Index])
		if marked[slot.Index] {
			cell = "[" + cell + "]"
		}
		width := len(slot.Label)
		if len(cell) > width {
			width = len(cell)
		}
		fmt.Fprintf(&labels, "%*s ", width, slot.Label)
		fmt.Fprintf(&values, "%*s ", width, cell)
	}

	fmt.Fprintln(w, strings.TrimRight(labels.String(), " "))
	fmt.Fprintln(w, strings.TrimRight(values.String(), " "))
}

// Describe devuelve la línea de estado y la línea de síndrome de un resultado.
func (p *PresentationLayer) Describe(out *hamming.Outcome) (status, syndrome string) {
	switch out.Kind {
	case hamming.NoError:
		return "✅ Sin errores", "Síndrome: 0 (sin errores)"
	case hamming.OverallParityCorrected:
		return "✅ P0 corregido", "Síndrome: 0 (error en P0)"
	case hamming.SingleBitCorrected:
		return fmt.Sprintf("✅ Error simple corregido (bit %d)", out.Position),
			fmt.Sprintf("Síndrome (posición del error): %d", out.Syndrome)
	case hamming.DoubleErrorDetected:
		return "❌ Error doble detectado (no corregible)",
			fmt.Sprintf("Síndrome: %d (error doble detectado)", out.Syndrome)
	default:
		return out.Kind.String(), fmt.Sprintf("Síndrome: %d", out.Syndrome)
	}
}

// MostrarResultado imprime el estado, el síndrome y la palabra corregida.
func (p *PresentationLayer) MostrarResultado(w io.Writer, codec *hamming.Codec, out *hamming.Outcome) {
	status, syndrome := p.Describe(out)
	fmt.Fprintf(w, "Estado: %s\n", status)
	fmt.Fprintln(w, syndrome)

	var marks []int
	if out.Corrected() {
		marks = append(marks, out.Position)
	}
	fmt.Fprintln(w, "Palabra después de la corrección:")
	p.RenderCodeword(w, codec.Layout(), out.Codeword, marks...)
	if out.Kind != hamming.DoubleErrorDetected {
		fmt.Fprintf(w, "Datos: %s\n", hamming.FormatBits(out.Data()))
	}
}

// RenderCoverage escribe una línea por bit de paridad con las posiciones que cubre.
func (p *PresentationLayer) RenderCoverage(w io.Writer, codec *hamming.Codec) error {
	for k := 0; k < codec.ParityWidth(); k++ {
		pos := 1 << k
		covered, err := codec.Coverage(pos)
		if err != nil {
			return err
		}
		parts := make([]string, len(covered))
		for i, c := range covered {
			parts[i] = fmt.Sprintf("%d", c)
		}
		fmt.Fprintf(w, "P%-3d cubre: %s\n", pos, strings.Join(parts, ", "))
	}
	fmt.Fprintf(w, "P0   cubre: 1..%d (paridad global)\n", codec.TotalWidth())
	return nil
}
