package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Diegoval-Dev/R-Lab2/secded-go/pkg/application"
	"github.com/Diegoval-Dev/R-Lab2/secded-go/pkg/hamming"
	"github.com/Diegoval-Dev/R-Lab2/secded-go/pkg/presentation"
)

func newExamplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "Muestra los ejemplos de 8, 16 y 32 bits codificados",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(cmd); err != nil {
				return err
			}
			p := presentation.NewPresentationLayer()
			w := cmd.OutOrStdout()
			for _, ex := range application.Examples() {
				codec, err := hamming.New(ex.Width)
				if err != nil {
					return err
				}
				code, err := codec.EncodeString(ex.Data)
				if err != nil {
					return err
				}
				bits, err := hamming.ParseBits(code)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "== %s (%d+%d+1 bits) ==\n", ex.Name, codec.DataWidth(), codec.ParityWidth())
				fmt.Fprintf(w, "Datos:   %s\n", ex.Data)
				fmt.Fprintf(w, "Palabra: %s\n", code)
				p.RenderCodeword(w, codec.Layout(), bits)
				fmt.Fprintln(w)
			}
			return nil
		},
	}
}

func newLayoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "layout",
		Short:   "Muestra la ubicación de paridad y datos y la cobertura de cada paridad",
		Example: "  secded layout --width 11",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			codec, err := hamming.New(cfg.Width)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Datos: %d, paridad: %d, total: %d (+P0)\n",
				codec.DataWidth(), codec.ParityWidth(), codec.TotalWidth())
			for _, slot := range codec.Layout() {
				fmt.Fprintf(w, "%4d  %-4s %s\n", slot.Index, slot.Label, slot.Role)
			}
			fmt.Fprintln(w)
			return presentation.NewPresentationLayer().RenderCoverage(w, codec)
		},
	}
	cmd.Flags().Int("width", 8, "bits de datos por palabra")
	return cmd
}
