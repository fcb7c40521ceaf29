// Package pegerr constructs the engine's configuration errors: unresolved
// rule references, duplicate grammar rules, and other grammar-construction
// mistakes — a bug in the grammar, not in the input, so these are immediate
// and fatal rather than recoverable parse failures. Signaled by panicking
// with a *ConfigError whose cause is wrapped with github.com/pkg/errors, so
// whatever recovers the panic gets a stack trace pointing at the
// grammar-construction site instead of just a string.
package pegerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// ConfigError is panicked by Fatalf. It wraps a stack-traced error so a
// recover() in caller code (e.g. a grammar linter, or a test harness) can
// report exactly where construction went wrong.
type ConfigError struct {
	err error
}

func (e *ConfigError) Error() string { return e.err.Error() }

// Unwrap exposes the stack-traced cause for errors.As/errors.Is.
func (e *ConfigError) Unwrap() error { return e.err }

// Fatalf panics with a stack-traced ConfigError built from the given
// format and arguments.
func Fatalf(format string, args ...any) {
	panic(&ConfigError{err: errors.WithStack(fmt.Errorf(format, args...))})
}
