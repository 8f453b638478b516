package periods

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidPeriod = errors.New("invalid period")
	ErrInvalidUnit   = errors.New("invalid unit")
	ErrOverflow      = errors.New("length overflows int64")
)

func invalidBounds(from, to time.Time) error {
	return fmt.Errorf("%w: %s is after %s", ErrInvalidPeriod, from.Format(time.RFC3339Nano), to.Format(time.RFC3339Nano))
}

func invalidSyntax(s string, err error) error {
	if err == nil {
		return fmt.Errorf("%w: %q badly formatted", ErrInvalidPeriod, s)
	}
	return fmt.Errorf("%w: %q badly formatted: %v", ErrInvalidPeriod, s, err)
}
