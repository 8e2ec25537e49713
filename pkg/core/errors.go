package core

import "fmt"

// ErrorKind classifies a MalError so that callers (the REPL's colored
// formatter, try*/catch*) can dispatch on error category instead of
// sniffing message text.
type ErrorKind int

const (
	// KindParseError is a reader syntax error.
	KindParseError ErrorKind = iota
	// KindUndefinedSymbol is a failed environment lookup.
	KindUndefinedSymbol
	// KindWrongArguments is a special-form or builtin arity/shape error.
	KindWrongArguments
	// KindNotAFunction means the head of a call was not callable.
	KindNotAFunction
	// KindNotANumber means an arithmetic/comparison operand wasn't a Number.
	KindNotANumber
	// KindDivideByZero is integer division by zero.
	KindDivideByZero
	// KindIndexOutOfBounds is an out-of-range nth.
	KindIndexOutOfBounds
	// KindIOError is a slurp/readline failure.
	KindIOError
	// KindUserThrown wraps a value raised by (throw v).
	KindUserThrown
	// KindBlankInput is not an error; it signals whitespace/comment-only input.
	KindBlankInput
)

// MalError is the error type returned by every reader, evaluator and
// builtin operation. Errors never panic out of the evaluator; they
// propagate as values of this type until the REPL top level.
type MalError struct {
	Kind    ErrorKind
	Message string
	Payload Value // set only for KindUserThrown: the raised value itself
}

func (e *MalError) Error() string {
	if e.Kind == KindUserThrown {
		return e.Message
	}
	return e.Message
}

// ErrorValue returns the payload a try*/catch* handler should bind:
// the thrown value itself for a user-thrown error, the message string
// for everything else.
func (e *MalError) ErrorValue() Value {
	if e.Kind == KindUserThrown && e.Payload != nil {
		return e.Payload
	}
	return String(e.Message)
}

func newErr(kind ErrorKind, format string, args ...any) *MalError {
	return &MalError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NewParseError builds a reader syntax error.
func NewParseError(format string, args ...any) *MalError {
	return newErr(KindParseError, format, args...)
}

// NewUndefinedSymbol builds an undefined-symbol error.
func NewUndefinedSymbol(name string) *MalError {
	return newErr(KindUndefinedSymbol, "'%s' not found", name)
}

// NewWrongArguments builds a wrong-arguments error.
func NewWrongArguments(format string, args ...any) *MalError {
	return newErr(KindWrongArguments, format, args...)
}

// NewNotAFunction builds a not-a-function error for the offending value.
func NewNotAFunction(v Value) *MalError {
	return newErr(KindNotAFunction, "not a function: %s", v.String())
}

// NewNotANumber builds a not-a-number error.
func NewNotANumber(v Value) *MalError {
	return newErr(KindNotANumber, "not a number: %s", v.String())
}

// NewDivideByZero builds a divide-by-zero error.
func NewDivideByZero() *MalError {
	return newErr(KindDivideByZero, "division by zero")
}

// NewIndexOutOfBounds builds an index-out-of-bounds error.
func NewIndexOutOfBounds(size, index int) *MalError {
	return newErr(KindIndexOutOfBounds, "index %d out of bounds for collection of size %d", index, size)
}

// NewIOError builds an I/O error.
func NewIOError(format string, args ...any) *MalError {
	return newErr(KindIOError, format, args...)
}

// NewUserThrown wraps a value raised via (throw v).
func NewUserThrown(v Value) *MalError {
	msg := v.String()
	if s, ok := v.(String); ok {
		msg = string(s)
	}
	return &MalError{Kind: KindUserThrown, Message: msg, Payload: v}
}

// ErrBlankInput is the non-error signal for whitespace/comment-only input.
var ErrBlankInput = &MalError{Kind: KindBlankInput, Message: "blank input"}

// IsBlankInput reports whether err is the blank-input signal.
func IsBlankInput(err error) bool {
	me, ok := err.(*MalError)
	return ok && me.Kind == KindBlankInput
}
