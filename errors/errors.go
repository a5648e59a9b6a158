package errors

import (
	"fmt"

	"github.com/programLyrique/analysr/types"
)

// ExtractionError is returned when a payload of one kind is requested from a
// node of another.
type ExtractionError struct {
	Want types.Kind
	Got  types.Kind
}

func (e ExtractionError) Error() string {
	return fmt.Sprintf("cannot extract a %s from a %s node", e.Want, e.Got)
}

type UnsupportedConstruct struct {
	Kind   types.Kind
	Detail string
}

func (e UnsupportedConstruct) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("unsupported construct: %s node", e.Kind)
	}
	return fmt.Sprintf("unsupported construct: %s node (%s)", e.Kind, e.Detail)
}

// ArityMismatch means a keyword call did not carry the argument count its
// form requires.
type ArityMismatch struct {
	Form string
	Want string
	Got  int
}

func (e ArityMismatch) Error() string {
	return fmt.Sprintf("`%s` expects %s arguments, got %d", e.Form, e.Want, e.Got)
}

// InvariantViolation is raised when the host parser hands over a shape it
// promises never to produce. It is deliberately not an error: it is panicked
// and never recovered.
type InvariantViolation struct {
	Form    string
	Message string
}

func (e InvariantViolation) String() string {
	return fmt.Sprintf("invariant violated in `%s`: %s", e.Form, e.Message)
}

type HostParser struct {
	File   string
	Stderr string
	Err    error
}

func (e HostParser) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("parsing %s: %s", e.File, e.Err)
	}
	return fmt.Sprintf("parsing %s: %s: %s", e.File, e.Err, e.Stderr)
}

func (e HostParser) Unwrap() error {
	return e.Err
}
