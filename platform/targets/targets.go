package targets

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/pattyshack/regconfig/platform"
	"github.com/pattyshack/regconfig/platform/sparc"
)

// NewPlatform selects the target platform described by config.  The choice
// is made once; the returned platform's register config is immutable.
func NewPlatform(
	config platform.TargetConfig,
	logger *zap.Logger,
) (
	platform.Platform,
	error,
) {
	err := config.Validate()
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	switch config.Architecture {
	case platform.Sparcv9:
		return sparc.NewPlatform(
			config.OperatingSystem,
			config.CompressedHeapBase,
			logger.With(
				zap.String("architecture", string(config.Architecture)),
				zap.String("os", string(config.OperatingSystem)))), nil
	default:
		return nil, fmt.Errorf("unsupported architecture: %q", config.Architecture)
	}
}
