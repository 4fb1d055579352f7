package machine

import (
	"errors"
	"fmt"
)

// Kind classifies a failure. The set is closed; every error produced by the
// simulator carries exactly one Kind.
type Kind int

const (
	InvalidConfiguration Kind = iota + 1
	MachineNotReady
	CodeNotConfigured
	InvalidIndex
	CharacterNotInAlphabet
	InvalidInput
	InvalidDefinition
)

func (k Kind) String() string {
	switch k {
	case InvalidConfiguration:
		return "invalid configuration"
	case MachineNotReady:
		return "machine not ready"
	case CodeNotConfigured:
		return "code not configured"
	case InvalidIndex:
		return "invalid index"
	case CharacterNotInAlphabet:
		return "character not in alphabet"
	case InvalidInput:
		return "invalid input"
	case InvalidDefinition:
		return "invalid machine definition"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Sentinels for errors.Is matching by kind.
var (
	ErrInvalidConfiguration   = &Error{Kind: InvalidConfiguration}
	ErrMachineNotReady        = &Error{Kind: MachineNotReady}
	ErrCodeNotConfigured      = &Error{Kind: CodeNotConfigured}
	ErrInvalidIndex           = &Error{Kind: InvalidIndex}
	ErrCharacterNotInAlphabet = &Error{Kind: CharacterNotInAlphabet}
	ErrInvalidInput           = &Error{Kind: InvalidInput}
	ErrInvalidDefinition      = &Error{Kind: InvalidDefinition}
)

// Error is a failure of a given Kind with a human-readable detail and an
// optional underlying cause.
type Error struct {
	Kind   Kind
	Detail string
	Err    error
}

// Errorf builds an *Error of kind k with a formatted detail.
func Errorf(k Kind, format string, args ...any) *Error {
	return &Error{Kind: k, Detail: fmt.Sprintf(format, args...)}
}

// Wrap builds an *Error of kind k that keeps err as its cause.
func Wrap(k Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: k, Detail: fmt.Sprintf(format, args...), Err: err}
}

func (e *Error) Error() string {
	switch {
	case e.Detail == "" && e.Err == nil:
		return e.Kind.String()
	case e.Detail == "":
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	case e.Err == nil:
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	default:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Detail, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the Kind of the first *Error in err's chain, or zero.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
