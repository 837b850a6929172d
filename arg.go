package glog

import "fmt"

// Arg wraps a single value for positional template substitution. Args
// carry no name; their position in the call is their placeholder index.
type Arg struct {
	value interface{}
}

// NewArg wraps v for use with the templated emission operations.
func NewArg(v interface{}) Arg {
	return Arg{value: v}
}

// String renders the wrapped value the way fmt's %v verb would.
func (a Arg) String() string {
	return fmt.Sprint(a.value)
}
