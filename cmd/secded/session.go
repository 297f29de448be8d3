package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Diegoval-Dev/R-Lab2/secded-go/pkg/application"
	"github.com/Diegoval-Dev/R-Lab2/secded-go/pkg/presentation"
	"github.com/Diegoval-Dev/R-Lab2/secded-go/pkg/session"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Simulación interactiva: invertir bits y ver la corrección",
		Long: `Codifica una palabra y permite invertir bits uno a uno. Después de cada
cambio se decodifica la palabra recibida y se muestra el síndrome.
Sin --data ni --text los datos se piden por consola.`,
		Args: cobra.NoArgs,
		RunE: runSession,
	}
	addDataFlags(cmd)
	return cmd
}

func runSession(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	app := application.NewApplicationLayer(cmd.InOrStdin(), w)
	if cfg.Data == "" && cfg.Text == "" {
		asked, err := app.SolicitarDatos(cfg.Width)
		if err != nil {
			return err
		}
		cfg.Width, cfg.Data = asked.Width, asked.Data
	}

	codec, data, err := codecAndData(cfg)
	if err != nil {
		return err
	}
	cfg.Width = codec.DataWidth()
	app.MostrarConfiguracion(cfg)
	sess, err := session.New(codec, data)
	if err != nil {
		return err
	}

	p := presentation.NewPresentationLayer()
	fmt.Fprintln(w, "Palabra codificada:")
	p.RenderCodeword(w, codec.Layout(), sess.Encoded())

	for {
		c := app.SolicitarComando(codec.TotalWidth())
		switch c.Action {
		case "quit":
			fmt.Fprintln(w, "\n👋 ¡Hasta luego!")
			return nil
		case "reset":
			sess.Reset()
		case "flip":
			if err := sess.Toggle(c.Index); err != nil {
				return err
			}
		}

		out, err := sess.Check()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\nPalabra recibida (invertidos: %v):\n", sess.Flipped())
		p.RenderCodeword(w, codec.Layout(), sess.Received(), sess.Flipped()...)
		p.MostrarResultado(w, codec, out)
	}
}
