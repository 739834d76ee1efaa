package functional

import (
	"errors"
	"fmt"
)

// Kind classifies misuse of Option and Either.
type Kind string

// Error kinds raised by this package.
const (
	// KindAbsentValue is raised when the value of a None is read.
	KindAbsentValue Kind = "ABSENT_VALUE"
	// KindInvalidState is raised when the inactive side of an Either is read.
	KindInvalidState Kind = "INVALID_STATE"
	// KindInvalidArgument is raised when a required function argument is nil.
	KindInvalidArgument Kind = "INVALID_ARGUMENT"
)

// Sentinels for errors.Is. Matching is by Kind only.
var (
	ErrAbsentValue     = &Error{Kind: KindAbsentValue}
	ErrInvalidState    = &Error{Kind: KindInvalidState}
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument}
)

// Error is the single error type of this package. Accessors that panic
// do so with an *Error value, so a recovered panic can be inspected with
// errors.Is and errors.As.
type Error struct {
	Kind Kind
	Op   string
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Op == "":
		return fmt.Sprintf("[%s] %s", e.Kind, e.Kind.describe())
	default:
		return fmt.Sprintf("[%s] %s: %s", e.Kind, e.Op, e.Kind.describe())
	}
}

// Is matches any *Error of the same Kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

func (k Kind) describe() string {
	switch k {
	case KindAbsentValue:
		return "value is absent"
	case KindInvalidState:
		return "inactive side of either accessed"
	case KindInvalidArgument:
		return "required function argument is nil"
	default:
		return "unknown error"
	}
}

// KindOf returns the Kind carried by err, if any.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

func newError(kind Kind, op string) *Error {
	return &Error{Kind: kind, Op: op}
}

// requireFunc panics with KindInvalidArgument for op unless ok.
func requireFunc(ok bool, op string) {
	if !ok {
		panic(newError(KindInvalidArgument, op))
	}
}
