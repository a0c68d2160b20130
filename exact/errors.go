package exact

import (
	"errors"
	"fmt"

	"github.com/etnz/investo"
)

// ErrCurrencyMismatch is returned when a formula receives amounts in two
// different currencies.
var ErrCurrencyMismatch = errors.New("currency mismatch")

// invalid wraps investo.ErrInvalidArgument with a formatted constraint.
func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", investo.ErrInvalidArgument, fmt.Sprintf(format, args...))
}
