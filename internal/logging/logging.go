// Package logging configures the structured logger shared by dah, stale,
// and whose. Verbosity is controlled by the RUST_LOG environment variable,
// following the level-and-per-module-filter shape spec.md calls for.
package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// levelByName maps the RUST_LOG level vocabulary onto zap's levels. RUST_LOG
// has no direct equivalent of zap's DPanic/Panic/Fatal, so only the five
// levels spec.md names are recognized.
var levelByName = map[string]zapcore.Level{
	"trace": zapcore.DebugLevel, // zap has no trace level; treat as debug.
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

// Config is the parsed form of a RUST_LOG-shaped filter string: a default
// level plus per-module overrides.
type Config struct {
	Default zapcore.Level
	Modules map[string]zapcore.Level
}

// ParseEnv parses the RUST_LOG environment variable. An unset or empty
// variable yields the default (info) level with no per-module overrides.
func ParseEnv() Config {
	return Parse(os.Getenv("RUST_LOG"))
}

// Parse parses a RUST_LOG-shaped string: comma-separated tokens, each
// either "level" (sets the default) or "module=level" (sets an override).
// Unrecognized levels are ignored, leaving the default in place.
func Parse(spec string) Config {
	cfg := Config{Default: zapcore.InfoLevel}

	for _, tok := range strings.Split(spec, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}

		if module, levelName, ok := strings.Cut(tok, "="); ok {
			if lvl, known := levelByName[strings.ToLower(levelName)]; known {
				if cfg.Modules == nil {
					cfg.Modules = make(map[string]zapcore.Level)
				}
				cfg.Modules[module] = lvl
			}
			continue
		}

		if lvl, known := levelByName[strings.ToLower(tok)]; known {
			cfg.Default = lvl
		}
	}

	return cfg
}

// levelFor resolves the effective level for a named component.
func (c Config) levelFor(component string) zapcore.Level {
	if lvl, ok := c.Modules[component]; ok {
		return lvl
	}
	return c.Default
}

// floor returns the most permissive (numerically lowest) level across the
// default and every per-module override.
func (c Config) floor() zapcore.Level {
	floor := c.Default
	for _, lvl := range c.Modules {
		if lvl < floor {
			floor = lvl
		}
	}
	return floor
}

// Root builds the base zap logger for the process: human-readable, with
// colored level names, written to stderr so stdout stays clean for
// tool output (stale's branch listing, whose's owner report).
func Root(cfg Config) *zap.Logger {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encoderCfg.TimeKey = ""

	// The core must accept the most permissive level in play; per-component
	// overrides in For then raise the threshold back up for everything
	// else, since zap.IncreaseLevel can only tighten, never loosen.
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(os.Stderr),
		zap.NewAtomicLevelAt(cfg.floor()),
	)

	return zap.New(core)
}

// Factory hands out per-component loggers that share one base logger and
// the parsed RUST_LOG configuration.
type Factory struct {
	base *zap.Logger
	cfg  Config
}

// NewFactory builds a Factory reading verbosity from RUST_LOG.
func NewFactory() *Factory {
	cfg := ParseEnv()
	return &Factory{base: Root(cfg), cfg: cfg}
}

// For returns a logger scoped to component, honoring any RUST_LOG
// per-module override for that component's level.
func (f *Factory) For(component string) *zap.SugaredLogger {
	named := f.base.Named(component)
	named = named.WithOptions(zap.IncreaseLevel(f.cfg.levelFor(component)))
	return named.Sugar()
}
