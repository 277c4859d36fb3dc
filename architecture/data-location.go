package architecture

import (
	"fmt"
)

// Where a parameter / return value is located.  The location is either a
// *RegisterValue, a *StackSlot, or the Illegal marker (no value).
//
// Assumptions: A value must either be completely in a register, or completely
// on stack.
type Location interface {
	fmt.Stringer

	isLocation()
}

type RegisterValue struct {
	Register *Register
	Kind     ValueKind
}

var _ Location = &RegisterValue{}

func NewRegisterValue(register *Register, kind ValueKind) *RegisterValue {
	if register == nil {
		ShouldNotReachHere("register value with no register")
	}

	if !register.Category.CanStore(kind.Platform) {
		ShouldNotReachHere(
			"register %s cannot hold %s value",
			register.Name,
			kind.Platform)
	}

	return &RegisterValue{
		Register: register,
		Kind:     kind,
	}
}

func (*RegisterValue) isLocation() {}

func (value *RegisterValue) String() string {
	return fmt.Sprintf("%%%s|%s", value.Register.Name, value.Kind)
}

type StackSlot struct {
	Kind ValueKind

	// Byte offset relative to the stack pointer (at the call site).  The
	// offset already includes the architecture's register save area.
	Offset int

	// When true, the slot is in the caller's frame (i.e., an incoming argument
	// from the callee's point of view), and the callee's frame size must be
	// added to Offset to address the slot.
	AddFrameSize bool
}

var _ Location = &StackSlot{}

func NewStackSlot(kind ValueKind, offset int, addFrameSize bool) *StackSlot {
	if offset < 0 {
		ShouldNotReachHere("negative stack slot offset %d", offset)
	}

	return &StackSlot{
		Kind:         kind,
		Offset:       offset,
		AddFrameSize: addFrameSize,
	}
}

func (*StackSlot) isLocation() {}

func (slot *StackSlot) String() string {
	frame := "out"
	if slot.AddFrameSize {
		frame = "in"
	}
	return fmt.Sprintf("stack:%d|%s|%s", slot.Offset, slot.Kind, frame)
}

type illegalLocation struct{}

func (illegalLocation) isLocation() {}

func (illegalLocation) String() string {
	return "-"
}

// The "no value" marker (e.g., a void return value).
var Illegal Location = illegalLocation{}

func IsRegister(loc Location) bool {
	_, ok := loc.(*RegisterValue)
	return ok
}

func IsStackSlot(loc Location) bool {
	_, ok := loc.(*StackSlot)
	return ok
}

func IsIllegal(loc Location) bool {
	return loc == Illegal
}
