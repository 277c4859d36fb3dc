package architecture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireFault(t *testing.T, f func()) *Fault {
	var fault *Fault
	func() {
		defer func() {
			recovered := recover()
			require.NotNil(t, recovered, "expected fault")
			var ok bool
			fault, ok = recovered.(*Fault)
			require.True(t, ok, "expected *Fault, found %v", recovered)
		}()
		f()
	}()
	return fault
}

func TestAssert(t *testing.T) {
	Assert(true, "unused")

	fault := requireFault(t, func() { Assert(false, "bad kind %d", 3) })
	assert.Equal(t, "bad kind 3", fault.Message)
	assert.Equal(t, "should never reach here: bad kind 3", fault.Error())
}

func TestShouldNotReachHere(t *testing.T) {
	fault := requireFault(t, func() { ShouldNotReachHere("unknown %s", "op") })
	assert.Equal(t, "unknown op", fault.Message)
}
