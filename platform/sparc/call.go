package sparc

import (
	"github.com/pattyshack/regconfig/architecture"
	"github.com/pattyshack/regconfig/platform"
)

// The default kind to value kind mapping for sparc v9.
type ValueKindFactory struct{}

var _ architecture.ValueKindFactory = ValueKindFactory{}

func (ValueKindFactory) ValueKind(kind architecture.Kind) architecture.ValueKind {
	switch kind {
	case architecture.BooleanKind, architecture.ByteKind:
		return architecture.ValueKind{Platform: architecture.Byte}
	case architecture.ShortKind, architecture.CharKind:
		return architecture.ValueKind{Platform: architecture.HalfWord}
	case architecture.IntKind:
		return architecture.ValueKind{Platform: architecture.Word}
	case architecture.LongKind:
		return architecture.ValueKind{Platform: architecture.ExtendedWord}
	case architecture.ObjectKind:
		return architecture.ValueKind{
			Platform:  architecture.ExtendedWord,
			Reference: true,
		}
	case architecture.FloatKind:
		return architecture.ValueKind{Platform: architecture.Single}
	case architecture.DoubleKind:
		return architecture.ValueKind{Platform: architecture.Double}
	default:
		architecture.ShouldNotReachHere("kind %s has no value kind", kind)
		return architecture.ValueKind{}
	}
}

func (config *RegisterConfig) CallingConvention(
	kind platform.CallKind,
	returnKind architecture.Kind,
	parameterKinds []architecture.Kind,
	factory architecture.ValueKindFactory,
) *platform.CallingConvention {
	switch kind {
	case platform.ManagedCallee:
		return config.callingConvention(
			calleeParameterRegisters,
			kind,
			returnKind,
			parameterKinds,
			factory)
	case platform.ManagedCall, platform.NativeCall:
		return config.callingConvention(
			callerParameterRegisters,
			kind,
			returnKind,
			parameterKinds,
			factory)
	default:
		architecture.ShouldNotReachHere("unknown call kind %d", int(kind))
		return nil
	}
}

// The resolver is a single left-to-right pass over the parameters.  All state
// is local to the call.
//
// Native calls index every register pool by the parameter's position, and
// every position owns one word of the outgoing argument area (whether or not
// the parameter is passed in a register).
//
// Managed calls keep independent general / floating counters.  Single and
// double floating registers share one numbering space: a double must start at
// an even position (the odd position is skipped and never reused) and
// consumes two positions.
func (config *RegisterConfig) callingConvention(
	generalParameterRegisters architecture.RegisterArray,
	kind platform.CallKind,
	returnKind architecture.Kind,
	parameterKinds []architecture.Kind,
	factory architecture.ValueKindFactory,
) *platform.CallingConvention {
	locations := make([]architecture.Location, len(parameterKinds))

	currentGeneral := 0
	currentFloating := 0
	currentStackOffset := 0

	for idx, paramKind := range parameterKinds {
		stackKind := paramKind.StackKind()

		var register *architecture.Register
		if kind == platform.NativeCall {
			var registers architecture.RegisterArray
			switch stackKind {
			case architecture.IntKind,
				architecture.LongKind,
				architecture.ObjectKind:

				registers = generalParameterRegisters
			case architecture.FloatKind:
				registers = nativeFloatParameterRegisters
			case architecture.DoubleKind:
				registers = nativeDoubleParameterRegisters
			default:
				architecture.ShouldNotReachHere(
					"unhandled parameter kind %s (position %d)",
					paramKind,
					idx)
			}

			if idx < registers.Len() {
				register = registers.Get(idx)
				currentStackOffset += WordSize
			}
		} else {
			switch stackKind {
			case architecture.IntKind,
				architecture.LongKind,
				architecture.ObjectKind:

				if currentGeneral < generalParameterRegisters.Len() {
					register = generalParameterRegisters.Get(currentGeneral)
					currentGeneral++
				}
			case architecture.FloatKind:
				if currentFloating < managedFloatParameterRegisters.Len() {
					register = managedFloatParameterRegisters.Get(currentFloating)
					currentFloating++
				}
			case architecture.DoubleKind:
				if currentFloating%2 != 0 {
					// double registers start at an even position
					currentFloating++
				}

				if currentFloating < managedDoubleParameterRegisters.Len() {
					register = managedDoubleParameterRegisters.Get(currentFloating)
					currentFloating += 2
				}
			default:
				architecture.ShouldNotReachHere(
					"unhandled parameter kind %s (position %d)",
					paramKind,
					idx)
			}
		}

		valueKind := factory.ValueKind(stackKind)
		if register != nil {
			locations[idx] = architecture.NewRegisterValue(register, valueKind)
			continue
		}

		typeSize := valueKind.SizeInBytes()
		if kind == platform.NativeCall {
			// Native stack arguments are right justified within their word.
			currentStackOffset += WordSize - typeSize
		}
		currentStackOffset = architecture.RoundUp(currentStackOffset, typeSize)
		locations[idx] = architecture.NewStackSlot(
			valueKind,
			currentStackOffset+RegisterSafeAreaSize,
			!kind.Out())
		currentStackOffset += typeSize
	}

	var returnLocation architecture.Location = architecture.Illegal
	if returnKind != architecture.VoidKind {
		returnLocation = architecture.NewRegisterValue(
			config.ReturnRegister(kind, returnKind),
			factory.ValueKind(returnKind.StackKind()))
	}

	return &platform.CallingConvention{
		Arguments: locations,
		Return:    returnLocation,
		StackSize: currentStackOffset,
	}
}

func (config *RegisterConfig) ReturnRegister(
	kind platform.CallKind,
	returnKind architecture.Kind,
) *architecture.Register {
	switch returnKind.StackKind() {
	case architecture.IntKind,
		architecture.LongKind,
		architecture.ObjectKind:

		if kind == platform.ManagedCallee {
			return i0
		}
		return o0
	case architecture.FloatKind:
		return floatReturnRegister
	case architecture.DoubleKind:
		return doubleReturnRegister
	default:
		architecture.ShouldNotReachHere("unhandled return kind %s", returnKind)
		return nil
	}
}
