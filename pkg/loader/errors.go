package loader

import "fmt"

// Error reports a malformed or semantically invalid model file. Load
// errors are fatal: callers must not attempt to simulate a network that
// failed to load.
type Error struct {
	Op  string
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("loader: %s: %s", e.Op, e.Msg)
}

func newError(op, format string, args ...interface{}) error {
	return &Error{Op: op, Msg: fmt.Sprintf(format, args...)}
}
