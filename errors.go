package investo

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when an input is outside the domain a
	// formula accepts (negative amount, non-positive price, percentage out of
	// range...). The wrapped message names the violated constraint.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownFormula is returned when a formula name is not registered.
	ErrUnknownFormula = errors.New("unknown formula")
)

// invalid wraps ErrInvalidArgument with a formatted constraint.
func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
