package architecture

import (
	"fmt"
)

// Fault is the panic value raised when a target description or a calling
// convention invariant is violated.  Faults indicate programming errors in the
// target description (or in the caller that handed us an unclassifiable
// value), and must never be recovered and ignored.
type Fault struct {
	Message string
}

func (fault *Fault) Error() string {
	return "should never reach here: " + fault.Message
}

func ShouldNotReachHere(format string, args ...interface{}) {
	panic(&Fault{Message: fmt.Sprintf(format, args...)})
}

// Panics with a fault when the condition does not hold.
func Assert(condition bool, format string, args ...interface{}) {
	if !condition {
		ShouldNotReachHere(format, args...)
	}
}
