package hamming

// Codec implementa Hamming SEC-DED para un ancho de datos fijo.
//
// Las posiciones 1..TotalWidth siguen la numeración de Hamming: las que son
// potencia de dos guardan paridad y el resto guarda los datos en orden. El bit
// P0 (índice 0) es la paridad par de todo el cuerpo.
//
// Un Codec es inmutable; Encode y Decode pueden usarse desde varias
// goroutines sin sincronización.
type Codec struct {
	dataWidth   int
	parityWidth int
	totalWidth  int
}

// New crea un codec para palabras de dataWidth bits.
func New(dataWidth int) (*Codec, error) {
	if dataWidth <= 0 {
		return nil, newError("hamming.New", KindInvalidWidth, "el ancho de datos debe ser mayor a 0").
			WithDetail("width", dataWidth)
	}
	p := ParityBitsFor(dataWidth)
	return &Codec{
		dataWidth:   dataWidth,
		parityWidth: p,
		totalWidth:  dataWidth + p,
	}, nil
}

// ParityBitsFor devuelve el menor p tal que 2^p >= d + p + 1.
func ParityBitsFor(d int) int {
	p := 0
	for (1 << p) < d+p+1 {
		p++
	}
	return p
}

func (c *Codec) DataWidth() int   { return c.dataWidth }
func (c *Codec) ParityWidth() int { return c.parityWidth }
func (c *Codec) TotalWidth() int  { return c.totalWidth }

// CodewordLength es TotalWidth + 1 (incluye P0).
func (c *Codec) CodewordLength() int { return c.totalWidth + 1 }

// IsParityPosition indica si la posición i (1-based) es de paridad.
func IsParityPosition(i int) bool {
	return i > 0 && i&(i-1) == 0
}

// Encode aplica el código a data (un slice de bits 0/1 de largo DataWidth).
// Devuelve TotalWidth+1 bits: P0 seguido de las posiciones 1..TotalWidth.
func (c *Codec) Encode(data []byte) ([]byte, error) {
	const op = "hamming.Encode"
	if len(data) != c.dataWidth {
		return nil, lengthMismatch(op, c.dataWidth, len(data))
	}
	if err := checkBits(op, data); err != nil {
		return nil, err
	}

	code := make([]byte, c.totalWidth+1)

	// Datos en las posiciones que no son potencia de dos; la paridad queda en 0
	next := 0
	for i := 1; i <= c.totalWidth; i++ {
		if IsParityPosition(i) {
			continue
		}
		code[i] = data[next]
		next++
	}

	for k := 0; k < c.parityWidth; k++ {
		pos := 1 << k
		code[pos] = c.coverParity(code, pos, false)
	}

	code[0] = parity(code[1:])
	return code, nil
}

// coverParity calcula el XOR de las posiciones cubiertas por pos. Con
// skipSelf la propia posición de paridad queda fuera del cálculo.
func (c *Codec) coverParity(code []byte, pos int, skipSelf bool) byte {
	var p byte
	for i := 1; i <= c.totalWidth; i++ {
		if i&pos == 0 || (skipSelf && i == pos) {
			continue
		}
		p ^= code[i]
	}
	return p
}

// parity devuelve la suma módulo 2 de bits.
func parity(bits []byte) byte {
	var p byte
	for _, b := range bits {
		p ^= b
	}
	return p
}

func checkBits(op string, bits []byte) error {
	for i, b := range bits {
		if b != 0 && b != 1 {
			return illegalSymbol(op, i, b)
		}
	}
	return nil
}
