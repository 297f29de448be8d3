package main

import (
	"github.com/spf13/cobra"

	"github.com/Diegoval-Dev/R-Lab2/secded-go/pkg/application"
	"github.com/Diegoval-Dev/R-Lab2/secded-go/pkg/hamming"
	"github.com/Diegoval-Dev/R-Lab2/secded-go/pkg/noise"
)

func newSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Mide el codec sobre un canal ruidoso",
		Long: `Codifica datos aleatorios (o --data), los pasa por un canal que invierte
bits con probabilidad --ber, o exactamente --errors bits por palabra, y
resume cuántas palabras se recuperaron, detectaron o corrigieron mal.`,
		Example: `  secded simulate --width 16 --ber 0.01 --trials 5000
  secded simulate --errors 2 --seed 42`,
		Args: cobra.NoArgs,
		RunE: runSimulate,
	}
	cmd.Flags().Int("width", 8, "bits de datos por palabra")
	cmd.Flags().String("data", "", "datos fijos en '0'/'1' (por defecto aleatorios)")
	cmd.Flags().Float64("ber", 0.01, "probabilidad de inversión por bit")
	cmd.Flags().Int("errors", 0, "errores exactos por palabra (0 = usar --ber)")
	cmd.Flags().Int("trials", 1000, "cantidad de transmisiones")
	cmd.Flags().Int64("seed", 0, "semilla del generador (0 = aleatoria)")
	return cmd
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cfg.Mode = "benchmark"
	if err := application.ValidarConfiguracion(cfg); err != nil {
		return err
	}

	errorsPerWord, err := cmd.Flags().GetInt("errors")
	if err != nil {
		return err
	}
	sim, err := cfg.SimulationConfig(errorsPerWord)
	if err != nil {
		return err
	}
	codec, err := hamming.New(cfg.Width)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = noise.ObtenerSemilla()
	}
	logger.WithField("seed", seed).Info("iniciando simulación")

	w := cmd.OutOrStdout()
	application.NewApplicationLayer(cmd.InOrStdin(), w).MostrarConfiguracion(cfg)

	stats, err := noise.NewNoiseLayerWithSeed(seed).SimularCanal(codec, sim)
	if err != nil {
		return err
	}
	stats.MostrarEstadisticas(w)
	return nil
}
