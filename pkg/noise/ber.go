package noise

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/Diegoval-Dev/R-Lab2/secded-go/pkg/hamming"
	"github.com/Diegoval-Dev/R-Lab2/secded-go/pkg/log"
)

// NoiseLayer simula un canal ruidoso que invierte bits de una palabra.
// No es seguro para uso concurrente (el generador tiene estado).
type NoiseLayer struct {
	rng *rand.Rand
	log *log.Logger
}

// NewNoiseLayer crea una nueva instancia con semilla aleatoria
func NewNoiseLayer() *NoiseLayer {
	return NewNoiseLayerWithSeed(ObtenerSemilla())
}

// NewNoiseLayerWithSeed crea una instancia con semilla específica (para tests reproducibles)
func NewNoiseLayerWithSeed(seed int64) *NoiseLayer {
	return &NoiseLayer{
		rng: rand.New(rand.NewSource(seed)),
		log: log.NewLogger("noise"),
	}
}

// ErrorResult contiene información sobre los errores inyectados
type ErrorResult struct {
	OriginalBits   []byte  // Bits originales
	NoisyBits      []byte  // Bits con ruido aplicado
	ErrorPositions []int   // Índices invertidos, en orden ascendente
	TotalBits      int     // Total de bits procesados
	ErrorsInjected int     // Cantidad de errores inyectados
	ActualBER      float64 // BER real obtenido
}

func newResult(bits, noisy []byte, positions []int) *ErrorResult {
	r := &ErrorResult{
		OriginalBits:   bits,
		NoisyBits:      noisy,
		ErrorPositions: positions,
		TotalBits:      len(bits),
		ErrorsInjected: len(positions),
	}
	if len(bits) > 0 {
		r.ActualBER = float64(len(positions)) / float64(len(bits))
	}
	return r
}

// AplicarRuido invierte cada bit de forma independiente con probabilidad ber.
func (n *NoiseLayer) AplicarRuido(bits []byte, ber float64) (*ErrorResult, error) {
	if err := validarBER(ber); err != nil {
		return nil, err
	}
	if err := validarBits(bits); err != nil {
		return nil, err
	}

	noisy := make([]byte, len(bits))
	copy(noisy, bits)

	var positions []int
	for i := range noisy {
		if n.rng.Float64() < ber {
			noisy[i] ^= 1
			positions = append(positions, i)
		}
	}

	return newResult(bits, noisy, positions), nil
}

// InvertirExactos invierte exactamente k índices distintos elegidos al azar.
func (n *NoiseLayer) InvertirExactos(bits []byte, k int) (*ErrorResult, error) {
	if k < 0 || k > len(bits) {
		return nil, fmt.Errorf("cantidad de errores inválida: %d (debe estar entre 0 y %d)", k, len(bits))
	}
	if err := validarBits(bits); err != nil {
		return nil, err
	}

	positions := n.rng.Perm(len(bits))[:k]
	sort.Ints(positions)
	return Invertir(bits, positions...)
}

// Invertir devuelve una copia de bits con los índices indicados invertidos.
// Un índice repetido se invierte una sola vez.
func Invertir(bits []byte, positions ...int) (*ErrorResult, error) {
	if err := validarBits(bits); err != nil {
		return nil, err
	}

	noisy := make([]byte, len(bits))
	copy(noisy, bits)

	seen := make(map[int]bool, len(positions))
	uniq := make([]int, 0, len(positions))
	for _, p := range positions {
		if p < 0 || p >= len(bits) {
			return nil, hamming.InvalidPosition("noise.Invertir", p, len(bits)-1)
		}
		if seen[p] {
			continue
		}
		seen[p] = true
		noisy[p] ^= 1
		uniq = append(uniq, p)
	}
	sort.Ints(uniq)

	return newResult(bits, noisy, uniq), nil
}

// SimulationConfig define una corrida de SimularCanal.
type SimulationConfig struct {
	Data   string  // datos fijos; vacío = datos aleatorios en cada iteración
	BER    float64 // usado cuando Errors == 0
	Errors int     // errores exactos por transmisión
	Trials int
}

// ChannelStats contiene estadísticas del canal ruidoso
type ChannelStats struct {
	TargetBER         float64
	Errors            int
	AverageBER        float64
	BERStdDev         float64
	Iterations        int
	TotalBits         int
	TotalErrors       int
	MaxErrors         int
	MinErrors         int
	ErrorDistribution map[int]int // cantidad_errores -> frecuencia

	Outcomes     map[hamming.OutcomeKind]int
	Recovered    int // datos recuperados intactos
	Detected     int // errores dobles detectados
	Miscorrected int // el codec no avisó pero los datos no coinciden
}

// SimularCanal codifica, aplica ruido y decodifica cfg.Trials veces.
func (n *NoiseLayer) SimularCanal(codec *hamming.Codec, cfg SimulationConfig) (*ChannelStats, error) {
	if cfg.Trials <= 0 {
		return nil, fmt.Errorf("iteraciones debe ser mayor a 0: %d", cfg.Trials)
	}
	if cfg.Errors < 0 || cfg.Errors > codec.CodewordLength() {
		return nil, fmt.Errorf("cantidad de errores inválida: %d (máximo %d)", cfg.Errors, codec.CodewordLength())
	}
	if cfg.Errors == 0 {
		if err := validarBER(cfg.BER); err != nil {
			return nil, err
		}
	}

	var fixed []byte
	if cfg.Data != "" {
		var err error
		if fixed, err = hamming.ParseBits(cfg.Data); err != nil {
			return nil, fmt.Errorf("datos inválidos: %w", err)
		}
	}

	stats := &ChannelStats{
		TargetBER:         cfg.BER,
		Errors:            cfg.Errors,
		Iterations:        cfg.Trials,
		TotalBits:         codec.CodewordLength() * cfg.Trials,
		ErrorDistribution: make(map[int]int),
		Outcomes:          make(map[hamming.OutcomeKind]int),
	}

	berValues := make([]float64, 0, cfg.Trials)
	for i := 0; i < cfg.Trials; i++ {
		data := fixed
		if data == nil {
			data = n.datosAleatorios(codec.DataWidth())
		}

		code, err := codec.Encode(data)
		if err != nil {
			return nil, fmt.Errorf("error en iteración %d: %w", i, err)
		}

		var result *ErrorResult
		if cfg.Errors > 0 {
			result, err = n.InvertirExactos(code, cfg.Errors)
		} else {
			result, err = n.AplicarRuido(code, cfg.BER)
		}
		if err != nil {
			return nil, fmt.Errorf("error en iteración %d: %w", i, err)
		}

		out, err := codec.Decode(result.NoisyBits)
		if err != nil {
			return nil, fmt.Errorf("error en iteración %d: %w", i, err)
		}

		stats.Outcomes[out.Kind]++
		switch {
		case out.Kind == hamming.DoubleErrorDetected:
			stats.Detected++
		case bytes.Equal(out.Data(), data):
			stats.Recovered++
		default:
			stats.Miscorrected++
		}

		stats.TotalErrors += result.ErrorsInjected
		stats.ErrorDistribution[result.ErrorsInjected]++
		berValues = append(berValues, result.ActualBER)
		if i == 0 || result.ErrorsInjected > stats.MaxErrors {
			stats.MaxErrors = result.ErrorsInjected
		}
		if i == 0 || result.ErrorsInjected < stats.MinErrors {
			stats.MinErrors = result.ErrorsInjected
		}

		n.log.WithField("iteration", i).
			WithField("flips", result.ErrorPositions).
			WithField("outcome", out.Kind.String()).
			WithField("syndrome", out.Syndrome).
			Debug("transmisión simulada")
	}

	stats.AverageBER = float64(stats.TotalErrors) / float64(stats.TotalBits)

	var variance float64
	for _, v := range berValues {
		diff := v - stats.AverageBER
		variance += diff * diff
	}
	variance /= float64(len(berValues))
	stats.BERStdDev = math.Sqrt(variance)

	n.log.WithField("width", codec.DataWidth()).
		WithField("trials", cfg.Trials).
		WithField("miscorrected", stats.Miscorrected).
		Info("simulación terminada")

	return stats, nil
}

// SuccessRate es la fracción de transmisiones recuperadas o detectadas.
func (stats *ChannelStats) SuccessRate() float64 {
	return float64(stats.Recovered+stats.Detected) / float64(stats.Iterations)
}

// MostrarEstadisticas imprime las estadísticas del canal
func (stats *ChannelStats) MostrarEstadisticas(w io.Writer) {
	fmt.Fprintln(w, "📡 Estadísticas del Canal Ruidoso:")
	if stats.Errors > 0 {
		fmt.Fprintf(w, "   Errores por transmisión: %d\n", stats.Errors)
	} else {
		fmt.Fprintf(w, "   BER objetivo: %.4f (%.2f%%)\n", stats.TargetBER, stats.TargetBER*100)
	}
	fmt.Fprintf(w, "   BER promedio: %.4f (%.2f%%)\n", stats.AverageBER, stats.AverageBER*100)
	fmt.Fprintf(w, "   Desviación std BER: %.4f\n", stats.BERStdDev)
	fmt.Fprintf(w, "   Iteraciones: %d\n", stats.Iterations)
	fmt.Fprintf(w, "   Total de bits: %d\n", stats.TotalBits)
	fmt.Fprintf(w, "   Total de errores: %d\n", stats.TotalErrors)
	fmt.Fprintf(w, "   Rango de errores: %d - %d\n", stats.MinErrors, stats.MaxErrors)

	fmt.Fprintln(w, "   Resultados del decodificador:")
	for _, k := range []hamming.OutcomeKind{
		hamming.NoError,
		hamming.OverallParityCorrected,
		hamming.SingleBitCorrected,
		hamming.DoubleErrorDetected,
	} {
		count := stats.Outcomes[k]
		fmt.Fprintf(w, "     %-26s %6d (%.1f%%)\n", k, count, float64(count)/float64(stats.Iterations)*100)
	}
	fmt.Fprintf(w, "   Recuperados: %d, detectados: %d, mal corregidos: %d\n",
		stats.Recovered, stats.Detected, stats.Miscorrected)
	fmt.Fprintf(w, "   Tasa de éxito: %.2f%%\n", stats.SuccessRate()*100)
	fmt.Fprintln(w)
}

// ValidarConfiguracion valida los parámetros de ruido
func (n *NoiseLayer) ValidarConfiguracion(ber float64, bits []byte) error {
	if err := validarBER(ber); err != nil {
		return err
	}
	if len(bits) == 0 {
		return fmt.Errorf("no hay bits para procesar")
	}
	return validarBits(bits)
}

// ObtenerSemilla devuelve una nueva semilla basada en el tiempo actual
func ObtenerSemilla() int64 {
	return time.Now().UnixNano()
}

func (n *NoiseLayer) datosAleatorios(width int) []byte {
	data := make([]byte, width)
	for i := range data {
		data[i] = byte(n.rng.Intn(2))
	}
	return data
}

func validarBER(ber float64) error {
	if ber < 0.0 || ber > 1.0 {
		return fmt.Errorf("BER inválido: %.3f (debe estar entre 0.0 y 1.0)", ber)
	}
	return nil
}

func validarBits(bits []byte) error {
	for i, bit := range bits {
		if bit != 0 && bit != 1 {
			return fmt.Errorf("bit inválido en posición %d: %d (debe ser 0 o 1)", i, bit)
		}
	}
	return nil
}
