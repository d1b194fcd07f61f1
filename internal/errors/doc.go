// Package errors defines sentinel errors shared across bwx packages.
//
// Errors are grouped by concern: vault binary invocation, session cache,
// item resolution, environment capabilities, and configuration. Callers
// match them with errors.Is and wrap them with fmt.Errorf("%w", ...) to
// attach context.
package errors
