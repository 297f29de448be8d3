package hamming

// Decode verifica una palabra recibida (P0 + posiciones 1..TotalWidth) y
// corrige un error simple si lo hay. La entrada nunca se modifica.
func (c *Codec) Decode(received []byte) (*Outcome, error) {
	const op = "hamming.Decode"
	if len(received) != c.totalWidth+1 {
		return nil, lengthMismatch(op, c.totalWidth+1, len(received))
	}
	if err := checkBits(op, received); err != nil {
		return nil, err
	}

	code := make([]byte, len(received))
	copy(code, received)

	syndrome := 0
	for k := 0; k < c.parityWidth; k++ {
		pos := 1 << k
		if c.coverParity(code, pos, true) != code[pos] {
			syndrome += pos
		}
	}

	p0Received := code[0]
	parityMatches := parity(code[1:]) == p0Received

	out := &Outcome{
		Syndrome: syndrome,
		Position: -1,
		dataIdx:  c.dataPositions(),
	}

	switch {
	case syndrome == 0 && parityMatches:
		out.Kind = NoError
	case syndrome == 0:
		// El propio P0 es el bit alterado
		out.Kind = OverallParityCorrected
		out.Position = 0
		code[0] ^= 1
	case !parityMatches && syndrome <= c.totalWidth:
		out.Kind = SingleBitCorrected
		out.Position = syndrome
		code[syndrome] ^= 1
	default:
		// Incluye syndrome > TotalWidth, que solo aparece con 3+ errores.
		out.Kind = DoubleErrorDetected
	}

	out.Codeword = code
	return out, nil
}

// dataPositions devuelve las posiciones (1-based) que llevan datos, en orden.
func (c *Codec) dataPositions() []int {
	idx := make([]int, 0, c.dataWidth)
	for i := 1; i <= c.totalWidth; i++ {
		if !IsParityPosition(i) {
			idx = append(idx, i)
		}
	}
	return idx
}
