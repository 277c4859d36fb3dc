package signature

import (
	"testing"

	"github.com/pattyshack/gt/parseutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pattyshack/regconfig/architecture"
)

func parse(src string) ([]*Signature, []error) {
	emitter := &parseutil.Emitter{}
	signatures := Parse(
		parseutil.NewBufferedByteLocationReaderFromSlice("test", []byte(src)),
		emitter)
	return signatures, emitter.Errors()
}

func TestParse(t *testing.T) {
	signatures, errs := parse(`
// managed call sites
(int, long) void
compute: (float, double, object) double

empty: () object
last: (boolean, byte, short, char) int`)

	require.Empty(t, errs)
	require.Len(t, signatures, 4)

	assert.Equal(t, "", signatures[0].Name)
	assert.Equal(
		t,
		[]architecture.Kind{architecture.IntKind, architecture.LongKind},
		signatures[0].Parameters)
	assert.Equal(t, architecture.VoidKind, signatures[0].Return)

	assert.Equal(t, "compute", signatures[1].Name)
	assert.Equal(t, architecture.DoubleKind, signatures[1].Return)
	assert.Equal(
		t,
		"compute: (float, double, object) double",
		signatures[1].String())

	assert.Equal(t, "empty", signatures[2].Name)
	assert.Empty(t, signatures[2].Parameters)
	assert.NotNil(t, signatures[2].Parameters)
	assert.Equal(t, "empty: () object", signatures[2].String())

	assert.Equal(t, "last: (boolean, byte, short, char) int", signatures[3].String())
}

func TestParseCarriageReturns(t *testing.T) {
	signatures, errs := parse(
		"crlf: (int) void\r\n" +
			"bad: (int)\r void\n" +
			"next: () long\n" +
			"(int) void\r")

	require.Len(t, signatures, 2)
	assert.Equal(t, "crlf", signatures[0].Name)
	assert.Equal(t, "next", signatures[1].Name)

	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "test:2:10: unexpected stand-alone \\r")
	assert.Contains(t, errs[1].Error(), "test:4:10: unexpected stand-alone \\r")
}

func TestParseErrors(t *testing.T) {
	signatures, errs := parse(
		"first: (int) void\n" +
			"(wat) void\n" +
			"(void) int\n" +
			"(int void\n" +
			"(int) void extra\n" +
			"(int) $ void\n" +
			"missing (int) void\n" +
			"(int,\n" +
			"$\n" +
			"second: (long) long\n")

	require.Len(t, signatures, 2)
	assert.Equal(t, "first", signatures[0].Name)
	assert.Equal(t, "second", signatures[1].Name)

	expected := []string{
		"unknown kind: wat",
		"void is not a valid parameter kind",
		"expected RPAREN, found IDENTIFIER (void)",
		"unexpected IDENTIFIER (extra) after return kind",
		"unexpected character \"$\"",
		"expected COLON, found LPAREN (()",
		"expected IDENTIFIER, found end of line",
		"unexpected character \"$\"",
	}

	require.Len(t, errs, len(expected))
	for idx, err := range errs {
		assert.Contains(t, err.Error(), expected[idx], idx)
	}
}
