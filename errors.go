package autosheet

import "fmt"

// ErrorKind is the closed set of in-cell error kinds the engine can produce.
// Every evaluation path either returns a Value or one of these; there is no
// other way for a formula to fail.
type ErrorKind uint8

const (
	ErrName  ErrorKind = iota + 1 // unknown function name
	ErrRef                        // malformed or cross-sheet range, out-of-bounds
	ErrValue                      // non-numeric arithmetic, bad argument shape
	ErrDiv0                       // division by zero
	ErrNA                         // lookup or match not found
	ErrNum                        // numeric domain violation
	ErrCycle                      // circular reference during evaluation
)

// errorCodes is the fixed kind -> code table.
var errorCodes = map[ErrorKind]string{
	ErrName:  "#NAME?",
	ErrRef:   "#REF!",
	ErrValue: "#VALUE!",
	ErrDiv0:  "#DIV/0!",
	ErrNA:    "#N/A",
	ErrNum:   "#NUM!",
	ErrCycle: "#CYCLE!",
}

// EvalError is an in-cell error value: a (kind, message) pair that flows
// through evaluation like any other value. Its string form is always its
// code, regardless of the attached message, matching spreadsheet display
// conventions.
type EvalError struct {
	Kind    ErrorKind
	Message string
}

// Error satisfies the standard error interface so hosts that prefer Go
// idioms (errors.As, %w) can still work with in-cell errors, without
// changing the fact that evaluation never panics or returns a Go error for
// an in-cell failure.
func (e *EvalError) Error() string {
	return e.Code()
}

// Code returns the fixed display code for the error's kind, e.g. "#CYCLE!".
func (e *EvalError) Code() string {
	if code, ok := errorCodes[e.Kind]; ok {
		return code
	}
	return "#ERROR!"
}

// String is equivalent to Code; an error value's textual form is its code.
func (e *EvalError) String() string {
	return e.Code()
}

func newError(kind ErrorKind, format string, args ...any) *EvalError {
	return &EvalError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// asError reports whether v is an in-cell error value.
func asError(v Value) (*EvalError, bool) {
	err, ok := v.(*EvalError)
	return err, ok
}

// apiError represents a structural failure in the caller's invocation —
// malformed range syntax, a shape mismatch in SetRange, an unknown sheet at
// the range layer, invalid A1 syntax at the address layer. These are
// returned as ordinary Go errors from API boundaries, never stored in a
// cell.
type apiError struct {
	msg string
}

func (e *apiError) Error() string { return e.msg }

func newAPIError(format string, args ...any) error {
	return &apiError{msg: fmt.Sprintf(format, args...)}
}
