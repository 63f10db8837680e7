package apperrors

import (
	"errors"
	"fmt"
)

// Error kinds. Callers branch on these with errors.Is; the structured types
// below always unwrap to one of them.
var (
	// ErrDivisionByZero reports a zero divisor or modulus, an LCM of two zeros,
	// or a reciprocal trigonometric function whose base evaluates to zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrInvalidInput reports an argument outside the function's domain.
	ErrInvalidInput = errors.New("invalid input")
	// ErrOverflow reports a result that does not fit the return type.
	ErrOverflow = errors.New("overflow")
	// ErrEmptyInput reports a statistics call on an empty sequence.
	ErrEmptyInput = errors.New("empty input")
	// ErrIO reports a log directory or file that could not be created or opened.
	ErrIO = errors.New("i/o error")
	// ErrAlreadyInitialized reports a second logger bootstrap in the same process.
	ErrAlreadyInitialized = errors.New("logger already initialized")
)

var kinds = []error{
	ErrDivisionByZero,
	ErrInvalidInput,
	ErrOverflow,
	ErrEmptyInput,
	ErrIO,
	ErrAlreadyInitialized,
}

// DomainError is returned by the math namespaces. It names the failing
// operation and unwraps to its kind, so both of these hold:
//
//	errors.Is(err, apperrors.ErrInvalidInput)
//	errors.As(err, &domainErr)
type DomainError struct {
	// Op is the name of the function that failed, e.g. "sqrt".
	Op string
	// Kind is one of the package sentinels.
	Kind error
	// Detail describes the offending input. May be empty.
	Detail string
}

// Error returns "<op>: <kind>" optionally followed by the detail.
func (e DomainError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %s", e.Op, e.Kind, e.Detail)
}

// Unwrap returns the error kind.
func (e DomainError) Unwrap() error { return e.Kind }

// NewDomainError creates a DomainError with a formatted detail message.
//
// Parameters:
//   - op: The failing operation.
//   - kind: One of the package sentinels.
//   - format: A format string (see fmt.Sprintf) for the detail.
//   - a: Arguments to be formatted into the detail.
//
// Returns:
//   - error: A DomainError value.
func NewDomainError(op string, kind error, format string, a ...any) error {
	return DomainError{Op: op, Kind: kind, Detail: fmt.Sprintf(format, a...)}
}

// ValidationError represents an invalid configuration value. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// Is reports whether target is ErrInvalidInput.
func (e ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// IOError wraps a filesystem failure hit while preparing a log sink.
type IOError struct {
	// Op describes what was being attempted, e.g. "create log directory".
	Op string
	// Path is the filesystem path involved.
	Path string
	// Cause is the underlying OS error.
	Cause error
}

// Error returns a formatted message describing the I/O failure.
func (e IOError) Error() string {
	return fmt.Sprintf("%v: %s %q: %v", ErrIO, e.Op, e.Path, e.Cause)
}

// Unwrap exposes both ErrIO and the OS cause, so errors.Is matches either
// ErrIO or e.g. fs.ErrPermission.
func (e IOError) Unwrap() []error { return []error{ErrIO, e.Cause} }

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// KindOf returns the sentinel kind matched by err, or nil when err is nil or
// carries no known kind.
func KindOf(err error) error {
	if err == nil {
		return nil
	}
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
