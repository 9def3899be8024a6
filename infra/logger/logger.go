package logger

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	corelogger "github.com/kilianp07/commuteco2/core/logger"
)

// Logger mirrors the core logger interface.
type Logger = corelogger.Logger

// NopLogger implements Logger with no-op methods.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any)         {}
func (NopLogger) Debugw(string, map[string]any) {}
func (NopLogger) Infof(string, ...any)          {}
func (NopLogger) Warnf(string, ...any)          {}
func (NopLogger) Errorf(string, ...any)         {}

// New returns a Logger for the given component writing to stderr, so that
// stdout only carries the report. The format is detected via APP_ENV.
func New(component string) *ZerologLogger {
	return NewZerologLogger(component, os.Stderr)
}

// SetLevel sets the minimum level for every logger of the process.
func SetLevel(level string) error {
	if level == "" {
		level = "info"
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}
