// Package session guarda el estado de una simulación interactiva: la palabra
// codificada, la palabra "recibida" con los bits que el usuario invirtió, y
// el conjunto de índices alterados.
package session

import (
	"sort"
	"sync"

	"github.com/Diegoval-Dev/R-Lab2/secded-go/pkg/hamming"
	"github.com/Diegoval-Dev/R-Lab2/secded-go/pkg/log"
)

// Session es seguro para uso concurrente.
type Session struct {
	codec *hamming.Codec
	log   *log.Logger

	mu       sync.Mutex
	data     []byte
	encoded  []byte
	received []byte
	flipped  map[int]struct{}
}

// New codifica data y arranca una sesión sin errores.
func New(codec *hamming.Codec, data []byte) (*Session, error) {
	encoded, err := codec.Encode(data)
	if err != nil {
		return nil, err
	}
	s := &Session{
		codec:   codec,
		log:     log.NewLogger("session"),
		data:    append([]byte(nil), data...),
		encoded: encoded,
	}
	s.resetLocked()
	s.log.WithField("width", codec.DataWidth()).
		WithField("codeword", hamming.FormatBits(encoded)).
		Info("palabra codificada")
	return s, nil
}

// NewFromString es New con datos en texto '0'/'1'.
func NewFromString(codec *hamming.Codec, data string) (*Session, error) {
	bits, err := hamming.ParseBits(data)
	if err != nil {
		return nil, err
	}
	return New(codec, bits)
}

func (s *Session) Codec() *hamming.Codec { return s.codec }

// Data devuelve los datos originales.
func (s *Session) Data() []byte {
	return append([]byte(nil), s.data...)
}

// Encoded devuelve la palabra tal como salió del codificador.
func (s *Session) Encoded() []byte {
	return append([]byte(nil), s.encoded...)
}

// Received devuelve la palabra actual, con los bits invertidos.
func (s *Session) Received() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte(nil), s.received...)
}

// Toggle invierte el índice i (0 = P0). Invertirlo dos veces lo restaura.
func (s *Session) Toggle(i int) error {
	if i < 0 || i >= len(s.encoded) {
		return hamming.InvalidPosition("session.Toggle", i, len(s.encoded)-1)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.received[i] ^= 1
	if _, ok := s.flipped[i]; ok {
		delete(s.flipped, i)
	} else {
		s.flipped[i] = struct{}{}
	}
	s.log.WithField("index", i).WithField("flips", len(s.flipped)).Debug("bit invertido")
	return nil
}

// Flipped devuelve los índices alterados en orden ascendente.
func (s *Session) Flipped() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int, 0, len(s.flipped))
	for i := range s.flipped {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Check decodifica la palabra actual.
func (s *Session) Check() (*hamming.Outcome, error) {
	received := s.Received()
	out, err := s.codec.Decode(received)
	if err != nil {
		return nil, err
	}
	s.log.WithField("outcome", out.Kind.String()).
		WithField("syndrome", out.Syndrome).
		WithField("flips", s.Flipped()).
		Info("palabra verificada")
	return out, nil
}

// Reset descarta todos los bits invertidos.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

func (s *Session) resetLocked() {
	s.received = append([]byte(nil), s.encoded...)
	s.flipped = make(map[int]struct{})
}
