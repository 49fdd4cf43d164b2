package color

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is returned, wrapped in a *ParseError, when a value cannot be
	// turned into a Color.
	ErrParse = errors.New("color: parse error")

	// ErrUnsupportedSystem is returned, wrapped in a *ConversionError, for a
	// System value the engine does not know.
	ErrUnsupportedSystem = errors.New("color: unsupported color system")
)

// ParseError describes malformed input: a bad hex string, a tuple of the
// wrong length or a channel outside its range.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("color: %s", e.Reason)
	}
	return fmt.Sprintf("color: cannot parse %q: %s", e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error { return ErrParse }

// ConversionError reports a conversion involving an undeclared system.
// Name is set when a system was looked up by name.
type ConversionError struct {
	From, To System
	Name     string
}

func (e *ConversionError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("color: unknown color system %q", e.Name)
	}
	return fmt.Sprintf("color: cannot convert %v to %v", e.From, e.To)
}

func (e *ConversionError) Unwrap() error { return ErrUnsupportedSystem }

func parseErrorf(input string, format string, args ...any) error {
	return &ParseError{Input: input, Reason: fmt.Sprintf(format, args...)}
}
