package targets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pattyshack/regconfig/platform"
	"github.com/pattyshack/regconfig/platform/sparc"
)

func TestNewPlatform(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	target, err := NewPlatform(platform.DefaultTargetConfig(), zap.New(core))
	require.NoError(t, err)

	assert.Equal(t, platform.Sparcv9, target.ArchitectureName())
	assert.Equal(t, platform.Linux, target.OperatingSystemName())
	assert.Equal(t, sparc.WordSize, target.WordSize())

	config, ok := target.RegisterConfig().(*sparc.RegisterConfig)
	require.True(t, ok)
	assert.True(t, config.ExcludesHeapBase())

	entries := logs.FilterMessage("created sparc register config").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "sparcv9", entries[0].ContextMap()["architecture"])
	assert.Equal(t, "linux", entries[0].ContextMap()["os"])
}

func TestNewPlatformNilLogger(t *testing.T) {
	config := platform.DefaultTargetConfig()
	config.CompressedHeapBase = false

	target, err := NewPlatform(config, nil)
	require.NoError(t, err)
	assert.False(
		t,
		target.RegisterConfig().AllocatableRegisters().Contains(
			sparc.ThreadRegister))
	assert.True(
		t,
		target.RegisterConfig().AllocatableRegisters().Contains(
			sparc.HeapBaseRegister))
}

func TestNewPlatformInvalidConfig(t *testing.T) {
	config := platform.DefaultTargetConfig()
	config.Architecture = "amd64"

	target, err := NewPlatform(config, nil)
	assert.Nil(t, target)
	assert.ErrorContains(t, err, "unsupported architecture")
}
