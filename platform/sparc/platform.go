package sparc

import (
	"go.uber.org/zap"

	"github.com/pattyshack/regconfig/platform"
)

type Platform struct {
	os             platform.OperatingSystemName
	registerConfig *RegisterConfig
}

var _ platform.Platform = Platform{}

func NewPlatform(
	os platform.OperatingSystemName,
	excludeHeapBase bool,
	logger *zap.Logger,
) platform.Platform {
	return Platform{
		os:             os,
		registerConfig: NewRegisterConfig(excludeHeapBase, logger),
	}
}

func (Platform) ArchitectureName() platform.ArchitectureName {
	return platform.Sparcv9
}

func (p Platform) OperatingSystemName() platform.OperatingSystemName {
	return p.os
}

func (Platform) WordSize() int {
	return WordSize
}

func (p Platform) RegisterConfig() platform.RegisterConfig {
	return p.registerConfig
}
