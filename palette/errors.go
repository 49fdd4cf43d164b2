package palette

import (
	"errors"
	"fmt"

	"github.com/mmuldo/chromatic/color"
)

var (
	ErrNotFound     = errors.New("palette: color not found")
	ErrNameConflict = errors.New("palette: name already in use")
	ErrInvalidName  = errors.New("palette: invalid color name")
	ErrIndex        = errors.New("palette: index out of range")
	ErrEmpty        = errors.New("palette: palette is empty")
)

// NameConflictError is returned when a name is added twice. Incoming is
// the zero Color when the conflict was detected before coercion.
type NameConflictError struct {
	Name     string
	Existing color.Color
	Incoming color.Color
}

func (e *NameConflictError) Error() string {
	return fmt.Sprintf("palette: %q is already defined as %v", e.Name, e.Existing)
}

func (e *NameConflictError) Unwrap() error { return ErrNameConflict }

func notFound(name string) error {
	return fmt.Errorf("%w: %q", ErrNotFound, name)
}

func badIndex(i, n int) error {
	return fmt.Errorf("%w: %d with length %d", ErrIndex, i, n)
}
