package model

import "fmt"

// ConstructionError reports a mutator call (AddCircuit, AddNode, ...) that
// would violate a uniqueness invariant. Construction errors are fatal:
// callers must not simulate a network that failed to build.
type ConstructionError struct {
	Op  string
	Msg string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("model: %s: %s", e.Op, e.Msg)
}

func newConstructionError(op, format string, args ...interface{}) error {
	return &ConstructionError{Op: op, Msg: fmt.Sprintf(format, args...)}
}
