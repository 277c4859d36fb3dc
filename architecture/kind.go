package architecture

import (
	"fmt"
)

// The source level category of a parameter / return value.
type Kind int

const (
	IllegalKind = Kind(iota)
	BooleanKind
	ByteKind
	ShortKind
	CharKind
	IntKind
	LongKind
	FloatKind
	DoubleKind
	ObjectKind
	VoidKind
)

var (
	kindNames = map[Kind]string{
		BooleanKind: "boolean",
		ByteKind:    "byte",
		ShortKind:   "short",
		CharKind:    "char",
		IntKind:     "int",
		LongKind:    "long",
		FloatKind:   "float",
		DoubleKind:  "double",
		ObjectKind:  "object",
		VoidKind:    "void",
	}

	namedKinds = func() map[string]Kind {
		result := make(map[string]Kind, len(kindNames))
		for kind, name := range kindNames {
			result[name] = kind
		}
		return result
	}()
)

func ParseKind(name string) (Kind, bool) {
	kind, ok := namedKinds[name]
	return kind, ok
}

func (kind Kind) String() string {
	name, ok := kindNames[kind]
	if ok {
		return name
	}
	return fmt.Sprintf("illegal(%d)", int(kind))
}

// The kind a value takes once pushed onto the operand stack / passed in a
// register.  Sub-word integers are widened to int since there are no sub-word
// register classes.
func (kind Kind) StackKind() Kind {
	switch kind {
	case BooleanKind, ByteKind, ShortKind, CharKind:
		return IntKind
	default:
		return kind
	}
}

// int, long and object values (after widening) live in general registers.
func (kind Kind) IsGeneral() bool {
	switch kind.StackKind() {
	case IntKind, LongKind, ObjectKind:
		return true
	default:
		return false
	}
}

func (kind Kind) IsFloating() bool {
	return kind == FloatKind || kind == DoubleKind
}
