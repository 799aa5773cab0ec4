/*
Package ciel is a small embeddable syntax highlighter.

Consists of subpackages:
  - cmd/ciel: console utility rendering highlighted source as HTML or ANSI-colored text;
  - lang: declarative language descriptions (keyword lists, string flags, extra rules)
    and builtin definitions for common languages;
  - rule: compiles a language description into an ordered list of anchored matchers;
  - scanner: walks an input text with a compiled rule list and emits classified spans;
  - registry: immutable mapping from language name to compiled rule list.

Typical usage is:

1. Describe a language as a lang.Spec (or load one from a YAML file),
or pick a builtin definition by name.

2. Compile the description with rule.Compile, or register it in a
registry.Registry which compiles on registration.

3. Scan each input text with scanner.Scan and render the resulting
spans with scanner.HTML or a renderer of your own.

The scanner is a best-effort cosmetic pass: it never fails, and the
concatenation of the spans it emits always reproduces the input exactly.
*/
package ciel

import (
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	CompileErrors  = 1   // used by rule
	ConfigErrors   = 101 // used by lang
	RegistryErrors = 201 // used by registry
)

// Error is the error type used by ciel subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including source name and position information if provided.
	Message string

	// SourceName contains the name of the language definition or input that caused this error, or empty string.
	SourceName string

	// Line contains line number in the definition file or 0.
	Line int

	// Col contains column number in the definition file or 0.
	Col int
}

// NewError creates new Error structure.
// name, line, and col will be added to error message if provided (non-zero).
func NewError(code int, msg, name string, line, col int) *Error {
	if name != "" && line != 0 && col != 0 {
		msg += fmt.Sprintf(" in %s at line %d col %d", name, line, col)
	}
	return &Error{code, msg, name, line, col}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// FormatError creates Error structure with no source and position information.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", 0, 0)
}
