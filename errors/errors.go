package errors

import (
	"fmt"
	"io"
	"reflect"

	"github.com/pkg/errors"
)

var (
	// ErrUnauthorized is returned whenever a call claims an identity
	// that the authorization gate did not affirm. This is the hard
	// abort of a call, distinct from any module error taxonomy.
	ErrUnauthorized = Register(100, "unauthorized")

	// ErrNotFound is used when a requested operation cannot be
	// completed due to missing data.
	ErrNotFound = Register(101, "not found")

	// ErrHuman is returned when the application reaches a code path
	// which should not ever be reached if the code was written as
	// expected by the framework.
	ErrHuman = Register(102, "coding error")

	// ErrType is returned whenever the type is not what was expected.
	ErrType = Register(103, "invalid type")

	// ErrInput stands for general input problems.
	ErrInput = Register(104, "invalid input")

	// ErrState is returned when an object is in an invalid state.
	ErrState = Register(105, "invalid state")

	// ErrMsg is returned whenever a message is invalid and cannot
	// be handled.
	ErrMsg = Register(106, "invalid message")

	// ErrModel is returned whenever an entity is invalid and cannot
	// be persisted.
	ErrModel = Register(107, "invalid model")

	// ErrDatabase is returned when the backing store misbehaves.
	ErrDatabase = Register(108, "database")

	// ErrCurrency is returned whenever a currency ticker is invalid or
	// two amounts of different currencies are combined.
	ErrCurrency = Register(109, "invalid currency")

	// ErrOverflow is returned when a computation cannot be completed
	// because the result value exceeds the type.
	ErrOverflow = Register(110, "value overflow")

	// ErrPanic is only set when we recover from a panic, so we know to
	// redact potentially sensitive system info.
	ErrPanic = Register(111222, "panic")
)

// Register returns an error instance that should be used as the base for
// creating error instances during runtime.
//
// Popular root errors are declared in this package, but extensions may
// want to declare custom codes. Codes below 100 are reserved for contract
// modules. This function ensures that no error code is used twice.
// Attempt to reuse an error code results in a panic.
//
// Use this function only during a program startup phase.
func Register(code uint32, description string) *Error {
	if e, ok := usedCodes[code]; ok {
		panic(fmt.Sprintf("error with code %d is already registered: %q", code, e.desc))
	}
	err := &Error{
		code: code,
		desc: description,
	}
	usedCodes[err.code] = err
	return err
}

// usedCodes is keeping track of used codes to ensure their uniqueness. No
// two error instances should share the same error code.
var usedCodes = map[uint32]*Error{}

// Error represents a root error.
//
// The framework is using root errors to categorize issues. Each instance
// created during the runtime should wrap one of the declared root errors.
// This allows error tests and returning all errors to the client in a
// safe manner.
type Error struct {
	code uint32
	desc string
}

func (e Error) Error() string {
	return e.desc
}

// Code returns the classification number of this root error. The value
// is stable across releases and may be relied on by clients.
func (e Error) Code() uint32 {
	return e.code
}

// New returns a new error. The returned instance has the root cause set
// to this error. Below two lines are equal:
//
//	e.New("my description")
//	Wrap(e, "my description")
func (e *Error) New(description string) error {
	return Wrap(e, description)
}

// Newf is basically New with formatting capabilities.
func (e *Error) Newf(description string, args ...interface{}) error {
	return e.New(fmt.Sprintf(description, args...))
}

// Is checks if given error instance is of a given kind/type. This
// involves unwrapping the given error using the Cause method if
// available.
func (kind *Error) Is(err error) bool {
	// Reflect usage is necessary to correctly compare with
	// a nil implementation of an error.
	if kind == nil {
		if err == nil {
			return true
		}
		return reflect.ValueOf(err).IsNil()
	}

	for {
		if err == kind {
			return true
		}

		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return false
		}
	}
}

// Wrap extends given error with an additional information.
//
// If err is nil, this returns nil, avoiding the need for an if statement
// when wrapping an error returned at the end of a function.
func Wrap(err error, description string) error {
	if err == nil {
		return nil
	}

	// If this error does not carry the stacktrace information yet,
	// attach one. This should be done only once per error at the lowest
	// frame possible (most inner wrap).
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}

	return &wrappedError{
		parent: err,
		msg:    description,
	}
}

// Wrapf extends given error with an additional information.
//
// This function works like Wrap with the additional functionality of
// formatting the input as specified.
func Wrapf(err error, format string, args ...interface{}) error {
	desc := fmt.Sprintf(format, args...)
	return Wrap(err, desc)
}

type wrappedError struct {
	// This error layer description.
	msg string
	// The underlying error that triggered this one.
	parent error
}

func (e *wrappedError) Error() string {
	return fmt.Sprintf("%s: %s", e.msg, e.parent.Error())
}

func (e *wrappedError) Cause() error {
	return e.parent
}

// Format implements fmt.Formatter.
// %s and %v print the flattened message chain. %+v additionally expands
// the parent, which includes the stack trace of the creation point.
func (e *wrappedError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "%+v\n%s", e.parent, e.msg)
			return
		}
		fallthrough
	case 's':
		io.WriteString(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

// Code returns the code of the deepest root error in the chain, or the
// panic code when no root error was found.
func Code(err error) uint32 {
	if err == nil {
		return 0
	}
	for {
		if coder, ok := err.(interface{ Code() uint32 }); ok {
			return coder.Code()
		}
		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return ErrPanic.code
		}
	}
}

// Recover captures a panic and stops its propagation. If a panic happens
// it is transformed into an ErrPanic instance and assigned to the given
// error. Call this function using defer in order to work as expected.
func Recover(err *error) {
	if r := recover(); r != nil {
		*err = Wrapf(ErrPanic, "%v", r)
	}
}

// WithType is a helper to augment an error with a corresponding type
// message.
func WithType(err error, obj interface{}) error {
	return Wrap(err, fmt.Sprintf("%T", obj))
}

// causer is an interface implemented by an error that supports wrapping.
// Use it to test if an error wraps another error instance.
type causer interface {
	Cause() error
}

// stackTracer is implemented by errors carrying a pkg/errors stack trace.
type stackTracer interface {
	StackTrace() errors.StackTrace
}

// stackTrace returns the first stack trace found in the error chain, or
// nil when none of the wrapped errors carries one.
func stackTrace(err error) errors.StackTrace {
	for {
		if st, ok := err.(stackTracer); ok {
			return st.StackTrace()
		}
		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return nil
		}
	}
}
