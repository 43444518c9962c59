package layout

import "fmt"

// InvariantError reports a broken engine or host-tree contract, such as an
// unclassifiable cache slot or an unknown run mode. It is raised with panic
// and aborts the computation; callers that must survive it recover at the
// entry point.
type InvariantError struct {
	Op  string
	Msg string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("layout: %s: invariant violated: %s", e.Op, e.Msg)
}

func invariant(op, format string, args ...any) {
	panic(&InvariantError{Op: op, Msg: fmt.Sprintf(format, args...)})
}
