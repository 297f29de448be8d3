package log

import (
	"fmt"
	"io"
	"os"

	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
)

// Logger es una entrada de logrus con el campo "name" del módulo.
type Logger struct {
	*logrus.Entry
}

var base = newBase(os.Stderr)

func newBase(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:    false,
		DisableTimestamp: false,
		FullTimestamp:    true,
	})
	l.SetOutput(out)
	l.SetLevel(logrus.WarnLevel)
	return l
}

// NewLogger crea un logger para el módulo indicado.
func NewLogger(module string) *Logger {
	return &Logger{base.WithField("name", module)}
}

// Setup configura el nivel global y, si file no está vacío, agrega un hook
// que escribe los registros en JSON a ese archivo.
func Setup(level, file string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("nivel de log inválido %q: %w", level, err)
	}
	base.SetLevel(lvl)
	if file != "" {
		AddFileHook(base, file)
	}
	return nil
}

// SetOutput redirige la salida de texto (útil en tests).
func SetOutput(w io.Writer) {
	base.SetOutput(w)
}

// AddFileHook escribe en path todos los niveles desde error hasta debug.
func AddFileHook(logger *logrus.Logger, path string) {
	pathMap := lfshook.PathMap{
		logrus.ErrorLevel: path,
		logrus.WarnLevel:  path,
		logrus.InfoLevel:  path,
		logrus.DebugLevel: path,
	}
	hook := lfshook.NewHook(
		pathMap,
		&logrus.JSONFormatter{
			TimestampFormat: "Jan _2 2006 15:04:05.000000",
		},
	)
	logger.Hooks.Add(hook)
}
