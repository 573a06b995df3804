package dates

import (
	"errors"
	"fmt"
)

// ErrInvalidDateFormat is matched by every error returned from Parse.
var ErrInvalidDateFormat = errors.New("invalid date format")

// InvalidDateFormatError reports an input that is not a valid YYYY-MM-DD date.
// Err holds the underlying parse failure.
type InvalidDateFormatError struct {
	Input string
	Err   error
}

func (e *InvalidDateFormatError) Error() string {
	return fmt.Sprintf("invalid date format. Expected %s, got: %s", FormatName, e.Input)
}

func (e *InvalidDateFormatError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrInvalidDateFormat.
func (e *InvalidDateFormatError) Is(target error) bool {
	return target == ErrInvalidDateFormat
}
