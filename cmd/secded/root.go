package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Diegoval-Dev/R-Lab2/secded-go/pkg/application"
	"github.com/Diegoval-Dev/R-Lab2/secded-go/pkg/hamming"
	"github.com/Diegoval-Dev/R-Lab2/secded-go/pkg/log"
)

var logger = log.NewLogger("cmd")

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "secded",
		Short: "Codificador Hamming SEC-DED",
		Long: `secded codifica palabras de datos con Hamming extendido (SEC-DED):
corrige cualquier error de un bit y detecta cualquier error de dos bits.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", "", "archivo de configuración (yaml, json, toml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "nivel de log (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-file", "", "archivo donde guardar los logs en JSON")

	rootCmd.AddCommand(
		newEncodeCmd(),
		newDecodeCmd(),
		newFlipCmd(),
		newSimulateCmd(),
		newExamplesCmd(),
		newLayoutCmd(),
		newSessionCmd(),
	)
	return rootCmd
}

// loadConfig junta archivo, entorno y flags del comando, configura el log y
// valida el resultado.
func loadConfig(cmd *cobra.Command) (*application.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg, err := application.Load(path, cmd.Flags())
	if err != nil {
		return nil, err
	}
	if err := log.Setup(cfg.LogLevel, cfg.LogFile); err != nil {
		return nil, err
	}
	if err := application.ValidarConfiguracion(cfg); err != nil {
		return nil, err
	}
	logger.WithField("command", cmd.Name()).WithField("width", cfg.Width).Debug("configuración cargada")
	return cfg, nil
}

// widthForCodeword devuelve el ancho de datos cuya palabra mide length bits.
func widthForCodeword(length int) (int, error) {
	for d := 1; d < length; d++ {
		if d+hamming.ParityBitsFor(d)+1 == length {
			return d, nil
		}
	}
	return 0, fmt.Errorf("ninguna palabra SEC-DED mide %d bits", length)
}
