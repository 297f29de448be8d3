package noise

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/Diegoval-Dev/R-Lab2/secded-go/pkg/hamming"
)

func TestNoiseLayer_AplicarRuido(t *testing.T) {
	n := NewNoiseLayerWithSeed(12345) // Semilla fija para tests reproducibles

	tests := []struct {
		name    string
		bits    []byte
		ber     float64
		wantErr bool
	}{
		{
			name: "zero BER",
			bits: []byte{0, 1, 0, 1, 1, 0, 1, 0},
			ber:  0.0,
		},
		{
			name: "low BER",
			bits: []byte{0, 1, 0, 1, 1, 0, 1, 0},
			ber:  0.01,
		},
		{
			name: "full BER",
			bits: []byte{0, 1, 0, 1},
			ber:  1.0,
		},
		{
			name:    "invalid BER - negative",
			bits:    []byte{0, 1},
			ber:     -0.1,
			wantErr: true,
		},
		{
			name:    "invalid BER - too high",
			bits:    []byte{0, 1},
			ber:     1.5,
			wantErr: true,
		},
		{
			name:    "invalid bits",
			bits:    []byte{0, 1, 2, 1}, // Contains '2'
			ber:     0.01,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := n.AplicarRuido(tt.bits, tt.ber)
			if (err != nil) != tt.wantErr {
				t.Errorf("AplicarRuido() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}

			if len(result.NoisyBits) != len(tt.bits) || result.TotalBits != len(tt.bits) {
				t.Errorf("NoisyBits length = %d, TotalBits = %d, want %d", len(result.NoisyBits), result.TotalBits, len(tt.bits))
			}
			if result.ErrorsInjected != len(result.ErrorPositions) {
				t.Errorf("ErrorsInjected = %d, but ErrorPositions length = %d",
					result.ErrorsInjected, len(result.ErrorPositions))
			}
			if tt.ber == 0.0 && result.ErrorsInjected != 0 {
				t.Errorf("With BER=0, expected 0 errors, got %d", result.ErrorsInjected)
			}
			if tt.ber == 1.0 && result.ErrorsInjected != len(tt.bits) {
				t.Errorf("With BER=1, expected %d errors, got %d", len(tt.bits), result.ErrorsInjected)
			}

			// Cada posición reportada debe estar invertida y ninguna otra
			flipped := make(map[int]bool)
			for _, p := range result.ErrorPositions {
				flipped[p] = true
			}
			for i := range tt.bits {
				if (result.NoisyBits[i] != tt.bits[i]) != flipped[i] {
					t.Errorf("bit %d: flipped=%v reported=%v", i, result.NoisyBits[i] != tt.bits[i], flipped[i])
				}
			}
		})
	}
}

func TestNoiseLayer_AplicarRuido_DoesNotMutate(t *testing.T) {
	n := NewNoiseLayerWithSeed(1)
	bits := []byte{0, 1, 0, 1, 1, 0, 1, 0}
	orig := append([]byte(nil), bits...)

	if _, err := n.AplicarRuido(bits, 1.0); err != nil {
		t.Fatalf("AplicarRuido() error = %v", err)
	}
	if !reflect.DeepEqual(bits, orig) {
		t.Errorf("input mutated: %v", bits)
	}
}

func TestNoiseLayer_InvertirExactos(t *testing.T) {
	n := NewNoiseLayerWithSeed(7)
	bits := make([]byte, 13)

	for k := 0; k <= len(bits); k++ {
		result, err := n.InvertirExactos(bits, k)
		if err != nil {
			t.Fatalf("InvertirExactos(%d) error = %v", k, err)
		}
		if result.ErrorsInjected != k {
			t.Errorf("InvertirExactos(%d) injected %d", k, result.ErrorsInjected)
		}
		ones := 0
		for _, b := range result.NoisyBits {
			ones += int(b)
		}
		if ones != k {
			t.Errorf("InvertirExactos(%d): %d bits set", k, ones)
		}
	}

	if _, err := n.InvertirExactos(bits, 14); err == nil {
		t.Error("InvertirExactos(14) expected error")
	}
	if _, err := n.InvertirExactos(bits, -1); err == nil {
		t.Error("InvertirExactos(-1) expected error")
	}
}

func TestInvertir(t *testing.T) {
	bits := []byte{0, 0, 0, 0}

	result, err := Invertir(bits, 3, 1, 3)
	if err != nil {
		t.Fatalf("Invertir() error = %v", err)
	}
	if !reflect.DeepEqual(result.NoisyBits, []byte{0, 1, 0, 1}) {
		t.Errorf("NoisyBits = %v", result.NoisyBits)
	}
	if !reflect.DeepEqual(result.ErrorPositions, []int{1, 3}) {
		t.Errorf("ErrorPositions = %v, want [1 3]", result.ErrorPositions)
	}

	_, err = Invertir(bits, 4)
	if !errors.Is(err, hamming.ErrInvalidInput) {
		t.Errorf("Invertir(out of range) error = %v, want ErrInvalidInput", err)
	}
}

func TestNoiseLayer_ValidarConfiguracion(t *testing.T) {
	n := NewNoiseLayer()

	tests := []struct {
		name    string
		ber     float64
		bits    []byte
		wantErr bool
	}{
		{
			name: "valid config",
			ber:  0.01,
			bits: []byte{0, 1, 0, 1},
		},
		{
			name:    "invalid BER",
			ber:     -0.1,
			bits:    []byte{0, 1},
			wantErr: true,
		},
		{
			name:    "empty bits",
			ber:     0.01,
			bits:    []byte{},
			wantErr: true,
		},
		{
			name:    "invalid bits",
			ber:     0.01,
			bits:    []byte{0, 1, 3},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := n.ValidarConfiguracion(tt.ber, tt.bits)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidarConfiguracion() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNoiseLayer_ConsistentSeed(t *testing.T) {
	seed := int64(12345)
	bits := []byte{0, 1, 0, 1, 1, 0, 1, 0, 1, 1, 0, 0, 1, 0, 1, 1}

	n1 := NewNoiseLayerWithSeed(seed)
	n2 := NewNoiseLayerWithSeed(seed)

	result1, err1 := n1.AplicarRuido(bits, 0.2)
	result2, err2 := n2.AplicarRuido(bits, 0.2)
	if err1 != nil || err2 != nil {
		t.Fatalf("AplicarRuido failed: %v / %v", err1, err2)
	}

	if !reflect.DeepEqual(result1.ErrorPositions, result2.ErrorPositions) {
		t.Errorf("ErrorPositions differ: %v vs %v", result1.ErrorPositions, result2.ErrorPositions)
	}
}

func TestNoiseLayer_SimularCanal(t *testing.T) {
	codec, _ := hamming.New(8)

	tests := []struct {
		name             string
		cfg              SimulationConfig
		wantRecovered    bool // todas recuperadas
		wantAllDetected  bool
		wantMiscorrected bool // puede haber mal corregidas
	}{
		{
			name:          "no noise",
			cfg:           SimulationConfig{BER: 0, Trials: 50},
			wantRecovered: true,
		},
		{
			name:          "single flip",
			cfg:           SimulationConfig{Errors: 1, Trials: 200},
			wantRecovered: true,
		},
		{
			name:            "double flip",
			cfg:             SimulationConfig{Errors: 2, Trials: 200},
			wantAllDetected: true,
		},
		{
			name:             "fixed data, three flips",
			cfg:              SimulationConfig{Data: "10110010", Errors: 3, Trials: 200},
			wantMiscorrected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNoiseLayerWithSeed(42)
			stats, err := n.SimularCanal(codec, tt.cfg)
			if err != nil {
				t.Fatalf("SimularCanal() error = %v", err)
			}
			if stats.Recovered+stats.Detected+stats.Miscorrected != tt.cfg.Trials {
				t.Errorf("counts do not add up: %+v", stats)
			}
			if tt.wantRecovered && stats.Recovered != tt.cfg.Trials {
				t.Errorf("Recovered = %d, want %d", stats.Recovered, tt.cfg.Trials)
			}
			if tt.wantAllDetected && stats.Outcomes[hamming.DoubleErrorDetected] != tt.cfg.Trials {
				t.Errorf("DoubleErrorDetected = %d, want %d", stats.Outcomes[hamming.DoubleErrorDetected], tt.cfg.Trials)
			}
			if !tt.wantMiscorrected && stats.Miscorrected != 0 {
				t.Errorf("Miscorrected = %d, want 0", stats.Miscorrected)
			}
			if tt.cfg.Errors > 0 && (stats.MinErrors != tt.cfg.Errors || stats.MaxErrors != tt.cfg.Errors) {
				t.Errorf("error range %d-%d, want %d", stats.MinErrors, stats.MaxErrors, tt.cfg.Errors)
			}
		})
	}
}

func TestNoiseLayer_SimularCanal_Invalid(t *testing.T) {
	codec, _ := hamming.New(8)
	n := NewNoiseLayerWithSeed(1)

	bad := []SimulationConfig{
		{Trials: 0},
		{Trials: 10, BER: 2},
		{Trials: 10, Errors: 14},
		{Trials: 10, Data: "10x"},
		{Trials: 10, Data: "101"},
	}
	for _, cfg := range bad {
		if _, err := n.SimularCanal(codec, cfg); err == nil {
			t.Errorf("SimularCanal(%+v) expected error", cfg)
		}
	}
}

func TestChannelStats_MostrarEstadisticas(t *testing.T) {
	codec, _ := hamming.New(4)
	stats, err := NewNoiseLayerWithSeed(3).SimularCanal(codec, SimulationConfig{Errors: 1, Trials: 20})
	if err != nil {
		t.Fatalf("SimularCanal() error = %v", err)
	}

	var buf bytes.Buffer
	stats.MostrarEstadisticas(&buf)
	out := buf.String()
	for _, sub := range []string{"Errores por transmisión: 1", "single_bit_corrected", "Tasa de éxito: 100.00%"} {
		if !strings.Contains(out, sub) {
			t.Errorf("output missing %q:\n%s", sub, out)
		}
	}
}

// Benchmark para evaluar performance
func BenchmarkNoiseLayer_SimularCanal(b *testing.B) {
	codec, _ := hamming.New(32)
	n := NewNoiseLayerWithSeed(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := n.SimularCanal(codec, SimulationConfig{BER: 0.01, Trials: 100}); err != nil {
			b.Fatalf("SimularCanal failed: %v", err)
		}
	}
}
