package sparc

import (
	"go.uber.org/zap"

	"github.com/pattyshack/regconfig/architecture"
	"github.com/pattyshack/regconfig/platform"
)

// RegisterConfig is the sparc v9 register configuration.  All fields are
// computed by NewRegisterConfig and never modified afterward.
type RegisterConfig struct {
	excludeHeapBase bool

	allocatable architecture.RegisterArray
	callerSave  architecture.RegisterArray
	attributes  []architecture.RegisterAttributes
}

var _ platform.RegisterConfig = &RegisterConfig{}

func NewRegisterConfig(
	excludeHeapBase bool,
	logger *zap.Logger,
) *RegisterConfig {
	if logger == nil {
		logger = zap.NewNop()
	}

	allocatable := Allocatable(excludeHeapBase)

	callerSave := make(architecture.RegisterArray, 0, Catalog.All.Len())
	for _, reg := range Catalog.All {
		if !calleeSaveRegisters.Contains(reg) {
			callerSave = append(callerSave, reg)
		}
	}

	attributes := make([]architecture.RegisterAttributes, Catalog.All.Len())
	for _, reg := range Catalog.All {
		attributes[reg.Number] = architecture.RegisterAttributes{
			CallerSave:  !calleeSaveRegisters.Contains(reg),
			CalleeSave:  calleeSaveRegisters.Contains(reg),
			Allocatable: allocatable.Contains(reg),
		}
	}

	logger.Debug(
		"created sparc register config",
		zap.Bool("exclude-heap-base", excludeHeapBase),
		zap.Int("registers", Catalog.All.Len()),
		zap.Int("allocatable", allocatable.Len()),
		zap.Int("caller-save", callerSave.Len()),
		zap.Strings("reserved", reservedRegisters.Names()))

	return &RegisterConfig{
		excludeHeapBase: excludeHeapBase,
		allocatable:     allocatable,
		callerSave:      callerSave,
		attributes:      attributes,
	}
}

func (config *RegisterConfig) ExcludesHeapBase() bool {
	return config.excludeHeapBase
}

func (*RegisterConfig) AllRegisters() architecture.RegisterArray {
	return Catalog.All
}

func (config *RegisterConfig) AllocatableRegisters() architecture.RegisterArray {
	return config.allocatable
}

func (config *RegisterConfig) CallerSaveRegisters() architecture.RegisterArray {
	return config.callerSave
}

func (*RegisterConfig) CalleeSaveRegisters() architecture.RegisterArray {
	return calleeSaveRegisters
}

func (*RegisterConfig) ReservedRegisters() architecture.RegisterArray {
	return reservedRegisters
}

// Reserved takes precedence over the register's window classification.
func (*RegisterConfig) Classify(
	reg *architecture.Register,
) architecture.SaveClass {
	if !Catalog.All.Contains(reg) {
		architecture.ShouldNotReachHere("%s is not a sparc register", reg)
	}

	if reservedRegisters.Contains(reg) {
		return architecture.Reserved
	}

	if calleeSaveRegisters.Contains(reg) {
		return architecture.CalleeSave
	}

	return architecture.CallerSave
}

func (config *RegisterConfig) AttributesMap() []architecture.RegisterAttributes {
	return config.attributes
}

// The register window preserves locals and ins across calls.
func (*RegisterConfig) AreAllAllocatableRegistersCallerSaved() bool {
	return false
}

func (*RegisterConfig) ParameterRegisters(
	kind platform.CallKind,
	category architecture.RegisterCategory,
) architecture.RegisterArray {
	switch category {
	case architecture.GeneralCategory:
		switch kind {
		case platform.ManagedCallee:
			return calleeParameterRegisters
		case platform.ManagedCall, platform.NativeCall:
			return callerParameterRegisters
		}
	case architecture.SingleFloatCategory:
		switch kind {
		case platform.ManagedCall, platform.ManagedCallee:
			return managedFloatParameterRegisters
		case platform.NativeCall:
			return nativeFloatParameterRegisters
		}
	case architecture.DoubleFloatCategory:
		switch kind {
		case platform.ManagedCall, platform.ManagedCallee:
			return managedDoubleParameterRegisters
		case platform.NativeCall:
			return nativeDoubleParameterRegisters
		}
	}

	architecture.ShouldNotReachHere(
		"no parameter registers for %s / %s",
		kind,
		category)
	return nil
}

func (*RegisterConfig) FrameRegister() *architecture.Register {
	return sp
}

func (*RegisterConfig) HeapBaseRegister() *architecture.Register {
	return HeapBaseRegister
}

func (*RegisterConfig) FilterAllocatableRegisters(
	kind architecture.PlatformKind,
	candidates architecture.RegisterArray,
) architecture.RegisterArray {
	return FilterByKind(candidates, kind)
}
