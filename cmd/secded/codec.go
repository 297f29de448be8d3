package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Diegoval-Dev/R-Lab2/secded-go/pkg/application"
	"github.com/Diegoval-Dev/R-Lab2/secded-go/pkg/hamming"
	"github.com/Diegoval-Dev/R-Lab2/secded-go/pkg/noise"
	"github.com/Diegoval-Dev/R-Lab2/secded-go/pkg/presentation"
)

func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Codifica datos binarios o un texto ASCII",
		Example: `  secded encode --data 10110010
  secded encode --text Hi`,
		Args: cobra.NoArgs,
		RunE: runEncode,
	}
	addDataFlags(cmd)
	return cmd
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <palabra>",
		Short: "Decodifica una palabra, corrigiendo o detectando errores",
		Long: `Decodifica una palabra SEC-DED (P0 primero). El ancho de datos se
deduce de la longitud de la palabra.`,
		Example: "  secded decode 0101011110010",
		Args:    cobra.ExactArgs(1),
		RunE:    runDecode,
	}
}

func newFlipCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "flip",
		Short:   "Codifica, invierte los bits indicados y decodifica",
		Example: "  secded flip --data 10110010 --flips 3,6",
		Args:    cobra.NoArgs,
		RunE:    runFlip,
	}
	addDataFlags(cmd)
	cmd.Flags().StringSlice("flips", nil, "índices a invertir (0 = P0)")
	return cmd
}

func addDataFlags(cmd *cobra.Command) {
	cmd.Flags().Int("width", 8, "bits de datos por palabra")
	cmd.Flags().String("data", "", "datos en '0'/'1'")
	cmd.Flags().String("text", "", "texto ASCII, 8 bits por carácter")
}

// codecAndData arma el codec para los datos de cfg. Con texto el ancho es
// 8 bits por carácter.
func codecAndData(cfg *application.Config) (*hamming.Codec, []byte, error) {
	var (
		bits []byte
		err  error
	)
	switch {
	case cfg.Text != "":
		bits, err = presentation.NewPresentationLayer().CodificarMensaje(cfg.Text)
	case cfg.Data != "":
		bits, err = hamming.ParseBits(cfg.Data)
	default:
		return nil, nil, fmt.Errorf("se requiere --data o --text")
	}
	if err != nil {
		return nil, nil, err
	}

	codec, err := hamming.New(len(bits))
	if err != nil {
		return nil, nil, err
	}
	return codec, bits, nil
}

func runEncode(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	codec, data, err := codecAndData(cfg)
	if err != nil {
		return err
	}
	code, err := codec.Encode(data)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Datos:   %s\n", hamming.FormatBits(data))
	fmt.Fprintf(w, "Palabra: %s\n", hamming.FormatBits(code))
	presentation.NewPresentationLayer().RenderCodeword(w, codec.Layout(), code)
	return nil
}

func runDecode(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(cmd); err != nil {
		return err
	}
	received, err := hamming.ParseBits(args[0])
	if err != nil {
		return err
	}
	width, err := widthForCodeword(len(received))
	if err != nil {
		return err
	}
	codec, err := hamming.New(width)
	if err != nil {
		return err
	}
	out, err := codec.Decode(received)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Recibida: %s (%d bits de datos)\n", args[0], width)
	presentation.NewPresentationLayer().MostrarResultado(w, codec, out)
	return nil
}

func runFlip(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	codec, data, err := codecAndData(cfg)
	if err != nil {
		return err
	}
	code, err := codec.Encode(data)
	if err != nil {
		return err
	}
	flipped, err := noise.Invertir(code, cfg.Flips...)
	if err != nil {
		return err
	}
	out, err := codec.Decode(flipped.NoisyBits)
	if err != nil {
		return err
	}

	p := presentation.NewPresentationLayer()
	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "Palabra enviada:")
	p.RenderCodeword(w, codec.Layout(), code)
	fmt.Fprintf(w, "Palabra recibida (invertidos: %v):\n", flipped.ErrorPositions)
	p.RenderCodeword(w, codec.Layout(), flipped.NoisyBits, flipped.ErrorPositions...)
	p.MostrarResultado(w, codec, out)
	return nil
}
