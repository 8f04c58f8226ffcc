// Package logger configura el logging estructurado del backend de planta.
// Todos los eventos llevan timestamp y el nombre del servicio, para poder
// separar esta API de los demás procesos que comparten la salida agregada.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones del logger.
type Config struct {
	Env      string    // development -> consola legible; otro valor -> JSON
	Level    string    // trace, debug, info, warn, error (APP_LOG_LEVEL)
	Servicio string    // nombre estampado en cada evento; vacío = sin campo
	Out      io.Writer // destino; nil = os.Stdout
}

// Logger wrapper sobre zerolog para inyección en los use cases.
type Logger struct {
	zl zerolog.Logger
}

// New crea el logger del servicio. El nivel viene de la configuración; un
// valor no reconocido cae a info en vez de fallar el arranque.
func New(cfg Config) *Logger {
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	var w io.Writer = out
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: out}
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	ctx := zerolog.New(w).Level(level).With().Timestamp()
	if cfg.Servicio != "" {
		ctx = ctx.Str("service", cfg.Servicio)
	}
	zl := ctx.Logger()

	// Redirigir el logger global de zerolog para librerías que lo usen
	log.Logger = zl

	return &Logger{zl: zl}
}

// Trace, Debug, Info, Warn, Error delegados a zerolog.
func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With crea un sublogger con campos fijos.
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}

// Zerolog devuelve el logger interno por si se necesita la API directa.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
