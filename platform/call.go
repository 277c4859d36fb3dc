package platform

import (
	"fmt"
	"strings"

	"github.com/pattyshack/regconfig/architecture"
)

type CallKind int

const (
	// Call into managed code, viewed from the caller.
	ManagedCall = CallKind(iota)

	// Call into managed code, viewed from the callee.
	ManagedCallee

	// Call into native / foreign code.
	NativeCall
)

// Out reports whether the convention is viewed from the caller's side, i.e.,
// stack arguments are in the caller's outgoing argument area.
func (kind CallKind) Out() bool {
	switch kind {
	case ManagedCall, NativeCall:
		return true
	case ManagedCallee:
		return false
	default:
		architecture.ShouldNotReachHere("unknown call kind %d", int(kind))
		return false
	}
}

func (kind CallKind) String() string {
	switch kind {
	case ManagedCall:
		return "managed"
	case ManagedCallee:
		return "managed-callee"
	case NativeCall:
		return "native"
	default:
		return fmt.Sprintf("unknown(%d)", int(kind))
	}
}

func ParseCallKind(name string) (CallKind, error) {
	switch strings.ToLower(name) {
	case "managed", "managed-call":
		return ManagedCall, nil
	case "managed-callee", "callee":
		return ManagedCallee, nil
	case "native", "native-call":
		return NativeCall, nil
	default:
		return 0, fmt.Errorf("invalid call kind: %s", name)
	}
}

// The result of resolving a call site's calling convention.
type CallingConvention struct {
	// One location per parameter, in parameter order.
	Arguments []architecture.Location

	// architecture.Illegal for void.
	Return architecture.Location

	// Size (in bytes) of the outgoing argument area used by stack arguments.
	StackSize int
}

func (cc *CallingConvention) String() string {
	args := make([]string, 0, len(cc.Arguments))
	for _, arg := range cc.Arguments {
		args = append(args, arg.String())
	}
	return fmt.Sprintf(
		"CallingConvention[args=(%s) return=%s stack=%d]",
		strings.Join(args, ", "),
		cc.Return,
		cc.StackSize)
}

// Register configuration of a compilation target.  Implementations must be
// immutable once constructed and safe for concurrent use.
type RegisterConfig interface {
	AllRegisters() architecture.RegisterArray

	// The registers usable by the register allocator.
	AllocatableRegisters() architecture.RegisterArray

	// The registers that call sites must assume are clobbered.
	CallerSaveRegisters() architecture.RegisterArray

	CalleeSaveRegisters() architecture.RegisterArray

	ReservedRegisters() architecture.RegisterArray

	Classify(*architecture.Register) architecture.SaveClass

	// Indexed by register number.
	AttributesMap() []architecture.RegisterAttributes

	AreAllAllocatableRegistersCallerSaved() bool

	ParameterRegisters(
		CallKind,
		architecture.RegisterCategory,
	) architecture.RegisterArray

	ReturnRegister(CallKind, architecture.Kind) *architecture.Register

	FrameRegister() *architecture.Register

	// Narrows candidates to the registers that can hold the given kind.
	FilterAllocatableRegisters(
		architecture.PlatformKind,
		architecture.RegisterArray,
	) architecture.RegisterArray

	CallingConvention(
		kind CallKind,
		returnKind architecture.Kind,
		parameterKinds []architecture.Kind,
		factory architecture.ValueKindFactory,
	) *CallingConvention
}
