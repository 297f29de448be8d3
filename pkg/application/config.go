package application

import (
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Diegoval-Dev/R-Lab2/secded-go/pkg/hamming"
	"github.com/Diegoval-Dev/R-Lab2/secded-go/pkg/noise"
)

// Config contiene la configuración de una ejecución
type Config struct {
	Width    int     `mapstructure:"width"`  // Bits de datos por palabra
	Data     string  `mapstructure:"data"`   // Datos en '0'/'1'
	Text     string  `mapstructure:"text"`   // Alternativa a Data: texto ASCII
	Flips    []int   `mapstructure:"flips"`  // Índices a invertir (0 = P0)
	BER      float64 `mapstructure:"ber"`    // Bit Error Rate (0.0 to 1.0)
	Trials   int     `mapstructure:"trials"` // Iteraciones para benchmark
	Seed     int64   `mapstructure:"seed"`   // 0 = semilla aleatoria
	Mode     string  `mapstructure:"mode"`   // "manual" o "benchmark"
	LogLevel string  `mapstructure:"log_level"`
	LogFile  string  `mapstructure:"log_file"`
}

// Load arma la configuración a partir de valores por defecto, variables de
// entorno SECDED_*, el archivo path (opcional) y los flags ya parseados.
// Un flag sin cambiar cede ante el entorno y el archivo; el BER no tiene
// default propio y toma el del flag.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("width", 8)
	v.SetDefault("data", "")
	v.SetDefault("text", "")
	v.SetDefault("trials", 1000)
	v.SetDefault("seed", 0)
	v.SetDefault("mode", "manual")
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_file", "")

	v.SetEnvPrefix("SECDED")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error leyendo configuración %s: %w", path, err)
		}
	}

	if flags != nil {
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			if bindErr != nil {
				return
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			bindErr = v.BindPFlag(key, f)
		})
		if bindErr != nil {
			return nil, fmt.Errorf("error asociando flags: %w", bindErr)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error interpretando configuración: %w", err)
	}
	return &cfg, nil
}

// ValidarConfiguracion valida que la configuración sea válida
func ValidarConfiguracion(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("configuración es nil")
	}

	if cfg.Width <= 0 {
		return fmt.Errorf("ancho inválido: %d: %w", cfg.Width, hamming.ErrInvalidWidth)
	}

	if cfg.Data != "" && cfg.Text != "" {
		return fmt.Errorf("usar data o text, no ambos")
	}

	if cfg.Data != "" {
		bits, err := hamming.ParseBits(cfg.Data)
		if err != nil {
			return fmt.Errorf("datos inválidos: %w", err)
		}
		if len(bits) != cfg.Width {
			return fmt.Errorf("los datos tienen %d bits, se esperaban %d: %w", len(bits), cfg.Width, hamming.ErrLengthMismatch)
		}
	}

	if cfg.BER < 0.0 || cfg.BER > 1.0 {
		return fmt.Errorf("BER inválido: %.3f (debe estar entre 0.0 y 1.0)", cfg.BER)
	}

	switch cfg.Mode {
	case "manual":
	case "benchmark":
		if cfg.Trials <= 0 {
			return fmt.Errorf("cantidad de iteraciones inválida: %d", cfg.Trials)
		}
	default:
		return fmt.Errorf("modo inválido: %s (usar 'manual' o 'benchmark')", cfg.Mode)
	}

	// Con texto el ancho real lo define el mensaje, así que los índices se
	// verifican al construir el codec.
	if cfg.Text == "" {
		max := cfg.Width + hamming.ParityBitsFor(cfg.Width)
		for _, f := range cfg.Flips {
			if f < 0 || f > max {
				return fmt.Errorf("índice a invertir %d fuera de rango (0..%d)", f, max)
			}
		}
	}

	return nil
}

// SimulationConfig copia los campos que usa el canal ruidoso (Data, BER y
// Trials). errors es la cantidad de errores exactos por transmisión; con 0 se
// usa el BER.
func (cfg *Config) SimulationConfig(errors int) (noise.SimulationConfig, error) {
	var sim noise.SimulationConfig
	if err := copier.Copy(&sim, cfg); err != nil {
		return sim, fmt.Errorf("error copiando configuración: %w", err)
	}
	sim.Errors = errors
	return sim, nil
}
