package architecture

import (
	"fmt"
)

// How a value is represented by the machine.
type PlatformKind int

const (
	IllegalPlatformKind = PlatformKind(iota)
	Byte
	HalfWord
	Word
	ExtendedWord
	Single
	Double
)

func (kind PlatformKind) SizeInBytes() int {
	switch kind {
	case Byte:
		return 1
	case HalfWord:
		return 2
	case Word:
		return 4
	case ExtendedWord:
		return 8
	case Single:
		return 4
	case Double:
		return 8
	default:
		ShouldNotReachHere("platform kind %d has no size", int(kind))
		return 0
	}
}

func (kind PlatformKind) IsFloat() bool {
	return kind == Single || kind == Double
}

func (kind PlatformKind) String() string {
	switch kind {
	case Byte:
		return "byte"
	case HalfWord:
		return "hword"
	case Word:
		return "word"
	case ExtendedWord:
		return "xword"
	case Single:
		return "single"
	case Double:
		return "double"
	default:
		return fmt.Sprintf("illegal(%d)", int(kind))
	}
}

// ValueKind is the tag attached to every location: the platform kind of the
// value, plus whether the value is a reference tracked by the garbage
// collector.
type ValueKind struct {
	Platform  PlatformKind
	Reference bool
}

func (kind ValueKind) SizeInBytes() int {
	return kind.Platform.SizeInBytes()
}

func (kind ValueKind) String() string {
	if kind.Reference {
		return kind.Platform.String() + "[ref]"
	}
	return kind.Platform.String()
}

// Maps a (stack) kind to the value kind used by locations.
type ValueKindFactory interface {
	ValueKind(Kind) ValueKind
}

// Rounds value up to the nearest multiple of alignment.  alignment must be
// positive.
func RoundUp(value int, alignment int) int {
	if alignment <= 0 {
		ShouldNotReachHere("invalid alignment %d", alignment)
	}
	return (value + alignment - 1) / alignment * alignment
}

func NumWords(byteSize int, wordSize int) int {
	return (byteSize + wordSize - 1) / wordSize
}

func AlignedSize(byteSize int, wordSize int) int {
	return NumWords(byteSize, wordSize) * wordSize
}
