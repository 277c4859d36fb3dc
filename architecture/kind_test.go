package architecture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStackKind(t *testing.T) {
	for _, kind := range []Kind{BooleanKind, ByteKind, ShortKind, CharKind} {
		assert.Equal(t, IntKind, kind.StackKind(), kind.String())
		assert.True(t, kind.IsGeneral())
	}

	for _, kind := range []Kind{
		IntKind, LongKind, FloatKind, DoubleKind, ObjectKind, VoidKind, IllegalKind,
	} {
		assert.Equal(t, kind, kind.StackKind(), kind.String())
	}

	assert.False(t, FloatKind.IsGeneral())
	assert.True(t, DoubleKind.IsFloating())
	assert.False(t, ObjectKind.IsFloating())
	assert.False(t, VoidKind.IsGeneral())
}

func TestParseKind(t *testing.T) {
	for kind, name := range kindNames {
		parsed, ok := ParseKind(name)
		assert.True(t, ok, name)
		assert.Equal(t, kind, parsed)
		assert.Equal(t, name, kind.String())
	}

	_, ok := ParseKind("Int")
	assert.False(t, ok)

	_, ok = ParseKind("illegal")
	assert.False(t, ok)

	assert.Equal(t, "illegal(0)", IllegalKind.String())
}
