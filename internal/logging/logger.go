// Package logging builds the zap loggers used by latticeproof. Logs go to
// stderr so they never interleave with a proof burden written to stdout.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"latticeproof/internal/config"
)

// Category represents a log category/system
type Category string

const (
	CategoryLoader Category = "loader" // Manifest and Mangle clause loading
	CategorySynth  Category = "synth"  // Formula synthesis, unification outcomes
	CategoryBurden Category = "burden" // Per-lattice proof burden assembly
	CategoryCLI    Category = "cli"    // Command dispatch and output sink
)

// Categories lists every known category.
var Categories = []Category{CategoryLoader, CategorySynth, CategoryBurden, CategoryCLI}

// Logger pairs a base zap logger with the category toggles it was built
// from.
type Logger struct {
	base *zap.Logger
	cfg  config.LoggingConfig
}

// New builds a Logger from cfg. verbose forces the debug level.
func New(cfg config.LoggingConfig, verbose bool) (*Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.Encoding = "console"
	if cfg.Format == "json" {
		zcfg.Encoding = "json"
	}
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	base, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return &Logger{base: base, cfg: cfg}, nil
}

// Wrap adapts an existing zap logger, with every category enabled.
func Wrap(l *zap.Logger) *Logger {
	if l == nil {
		l = zap.NewNop()
	}
	return &Logger{base: l}
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return Wrap(zap.NewNop())
}

// Base returns the underlying zap logger.
func (l *Logger) Base() *zap.Logger { return l.base }

// For returns the named child logger of a category, or a no-op logger when
// the category is disabled.
func (l *Logger) For(c Category) *zap.Logger {
	if !l.cfg.IsCategoryEnabled(string(c)) {
		return zap.NewNop()
	}
	return l.base.Named(string(c))
}

// With returns a Logger whose base carries the extra fields.
func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{base: l.base.With(fields...), cfg: l.cfg}
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.base.Sync()
}
