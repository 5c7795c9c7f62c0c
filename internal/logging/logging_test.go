package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParse_DefaultsToInfoWhenEmpty(t *testing.T) {
	cfg := Parse("")
	require.Equal(t, zapcore.InfoLevel, cfg.Default)
	require.Empty(t, cfg.Modules)
}

func TestParse_SetsDefaultLevel(t *testing.T) {
	cfg := Parse("debug")
	require.Equal(t, zapcore.DebugLevel, cfg.Default)
}

func TestParse_SetsPerModuleOverrides(t *testing.T) {
	cfg := Parse("warn,dahengine=debug,git=error")
	require.Equal(t, zapcore.WarnLevel, cfg.Default)
	require.Equal(t, zapcore.DebugLevel, cfg.Modules["dahengine"])
	require.Equal(t, zapcore.ErrorLevel, cfg.Modules["git"])
}

func TestParse_IgnoresUnrecognizedLevels(t *testing.T) {
	cfg := Parse("bogus,mod=alsobogus")
	require.Equal(t, zapcore.InfoLevel, cfg.Default)
	require.Empty(t, cfg.Modules)
}

func TestParse_TraceMapsToDebug(t *testing.T) {
	cfg := Parse("trace")
	require.Equal(t, zapcore.DebugLevel, cfg.Default)
}

func TestFactory_ForHonorsPerModuleOverride(t *testing.T) {
	f := &Factory{base: Root(Config{Default: zapcore.InfoLevel}), cfg: Parse("info,noisy=error")}
	require.NotNil(t, f.For("noisy"))
	require.NotNil(t, f.For("quiet"))
}
