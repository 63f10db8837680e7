// Package apperrors defines the error kinds shared by the math namespaces and
// the logger bootstrap, plus the structured error types that carry them.
//
// Error Wrapping Guidelines:
// Every error returned by this module matches exactly one of the sentinel kinds
// (ErrDivisionByZero, ErrInvalidInput, ...) through errors.Is. Structured types
// add context (operation, offending value, path) and are reachable through
// errors.As. Wrapping follows fmt.Errorf with %w.
package apperrors
