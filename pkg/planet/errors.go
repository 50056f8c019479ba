package planet

import (
	"errors"
	"fmt"

	"github.com/Fepozopo/spherize/pkg/stdimg"
)

// Kind classifies a pipeline failure.
type Kind int

const (
	KindInputDecode Kind = iota + 1
	KindInvalidConfiguration
	KindEmptyResult
)

func (k Kind) String() string {
	switch k {
	case KindInputDecode:
		return "input decode error"
	case KindInvalidConfiguration:
		return "invalid configuration"
	case KindEmptyResult:
		return "empty result"
	}
	return "unknown error"
}

// Sentinels matched by errors.Is against any *Error of the same kind.
var (
	ErrInputDecode          = errors.New("input decode error")
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrEmptyResult          = errors.New("empty result")
)

// Error is returned by every failed run.
type Error struct {
	Kind  Kind
	State State // stage that failed; StateIdle for configuration errors
	Err   error
}

func (e *Error) Error() string {
	if e.State == StateIdle {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.State, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	switch target {
	case ErrInputDecode:
		return e.Kind == KindInputDecode
	case ErrInvalidConfiguration:
		return e.Kind == KindInvalidConfiguration
	case ErrEmptyResult:
		return e.Kind == KindEmptyResult
	}
	return false
}

// classify maps a stage error to its Kind.
func classify(state State, err error) Kind {
	switch {
	case state == StateLoading:
		return KindInputDecode
	case errors.Is(err, stdimg.ErrInvalidCircle):
		return KindInvalidConfiguration
	case errors.Is(err, stdimg.ErrEmptyImage):
		return KindEmptyResult
	}
	return KindEmptyResult
}

func invalidf(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidConfiguration, State: StateIdle, Err: fmt.Errorf(format, args...)}
}
