// Package logger configura el logging estructurado del concesionario sobre
// zerolog: consola legible mientras se desarrolla, JSON en despliegue.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones del logger.
type Config struct {
	Env   string // development usa ConsoleWriter; cualquier otro valor, JSON
	Level string // trace, debug, info, warn, error; vacío deriva del Env
}

// Logger envuelve zerolog para inyectarlo por constructor en vez de usar
// el logger global.
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger de la aplicación. Con Level vacío, development
// arranca en debug y el resto de entornos en info.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zl := zerolog.New(w).Level(levelFor(cfg)).With().Timestamp().Logger()

	// Las librerías que escriben al logger global de zerolog salen por aquí
	log.Logger = zl

	return &Logger{zl: zl}
}

func levelFor(cfg Config) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(cfg.Level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	}
	if cfg.Env == "development" {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With abre un sublogger con campos fijos (p. ej. el request id).
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}
