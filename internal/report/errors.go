package report

import (
	"errors"
	"fmt"
)

// ErrUnknownRange indicates a range name outside today/yesterday/week/month/year.
var ErrUnknownRange = errors.New("unknown date range")

// InvalidFilterError is returned when a project filter is not a valid
// regular expression.
type InvalidFilterError struct {
	Pattern string
	Err     error
}

func (e *InvalidFilterError) Error() string {
	return fmt.Sprintf("invalid project filter %q: %v", e.Pattern, e.Err)
}

func (e *InvalidFilterError) Unwrap() error {
	return e.Err
}
