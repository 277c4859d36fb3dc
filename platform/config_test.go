package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
)

func writeConfig(t *testing.T, name string, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultTargetConfig(t *testing.T) {
	config := DefaultTargetConfig()
	assert.NoError(t, config.Validate())
	assert.Equal(t, Sparcv9, config.Architecture)
	assert.True(t, config.CompressedHeapBase)

	level, err := config.Level()
	require.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, level)
}

func TestLoadYamlTargetConfig(t *testing.T) {
	path := writeConfig(
		t,
		"target.yaml",
		"operating-system: solaris\n"+
			"compressed-heap-base: false\n"+
			"log-level: debug\n")

	config, err := LoadTargetConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Sparcv9, config.Architecture)
	assert.Equal(t, Solaris, config.OperatingSystem)
	assert.False(t, config.CompressedHeapBase)

	level, err := config.Level()
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, level)
}

func TestLoadTomlTargetConfig(t *testing.T) {
	path := writeConfig(
		t,
		"target.toml",
		"architecture = \"sparcv9\"\n"+
			"operating-system = \"linux\"\n"+
			"compressed-heap-base = true\n")

	config, err := LoadTargetConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultTargetConfig(), config)
}

func TestLoadTargetConfigErrors(t *testing.T) {
	_, err := LoadTargetConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadTargetConfig(writeConfig(t, "target.json", "{}"))
	assert.ErrorContains(t, err, "unsupported target config format")

	_, err = LoadTargetConfig(writeConfig(t, "target.toml", "architecture = "))
	assert.ErrorContains(t, err, "failed to parse target config")

	_, err = LoadTargetConfig(
		writeConfig(t, "target.yml", "architecture: amd64\n"))
	assert.ErrorContains(t, err, "unsupported architecture")
}

func TestValidateAggregatesErrors(t *testing.T) {
	config := TargetConfig{
		Architecture:    "mips",
		OperatingSystem: "plan9",
		LogLevel:        "chatty",
	}

	err := config.Validate()
	require.Error(t, err)

	errs := multierr.Errors(err)
	require.Len(t, errs, 3)
	assert.ErrorContains(t, errs[0], "unsupported architecture")
	assert.ErrorContains(t, errs[1], "unsupported operating system")
	assert.ErrorContains(t, errs[2], "invalid log level")
}

func TestCallKind(t *testing.T) {
	assert.True(t, ManagedCall.Out())
	assert.True(t, NativeCall.Out())
	assert.False(t, ManagedCallee.Out())
	assert.Panics(t, func() { CallKind(7).Out() })

	for _, kind := range []CallKind{ManagedCall, ManagedCallee, NativeCall} {
		parsed, err := ParseCallKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}

	parsed, err := ParseCallKind("Callee")
	require.NoError(t, err)
	assert.Equal(t, ManagedCallee, parsed)

	_, err = ParseCallKind("fastcall")
	assert.ErrorContains(t, err, "invalid call kind")
	assert.Equal(t, "unknown(7)", CallKind(7).String())
}
