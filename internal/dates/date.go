package dates

import (
	"fmt"
	"time"
)

const (
	// FormatName is the human readable form of the accepted layout.
	FormatName = "YYYY-MM-DD"

	layout        = "2006-01-02"
	displayLayout = "Jan 02, 2006"
	notAvailable  = "N/A"
)

// Date is a calendar date.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// New returns the date for the given components. Components are not
// normalised; use Parse for untrusted input.
func New(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// Of returns the calendar date of t in t's location.
func Of(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Parse converts a strict YYYY-MM-DD string into a Date. Shapes other than
// four-digit year, two-digit month and two-digit day separated by hyphens are
// rejected, as are impossible dates such as 2024-02-30.
func Parse(input string) (Date, error) {
	t, err := time.Parse(layout, input)
	if err != nil {
		return Date{}, &InvalidDateFormatError{Input: input, Err: err}
	}
	return Of(t), nil
}

// ParseOptional is Parse for values that may be absent. A nil input yields a
// nil Date and no error.
func ParseOptional(input *string) (*Date, error) {
	if input == nil {
		return nil, nil
	}
	d, err := Parse(*input)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Display renders input as "Mar 10, 2025". Nil, empty and unparseable input
// render as "N/A".
func Display(input *string) string {
	if input == nil || *input == "" {
		return notAvailable
	}
	d, err := Parse(*input)
	if err != nil {
		return notAvailable
	}
	return d.Time().Format(displayLayout)
}

// Time returns midnight UTC of d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Before reports whether d falls before other.
func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

// After reports whether d falls after other.
func (d Date) After(other Date) bool {
	return d.Time().After(other.Time())
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after other.
func (d Date) Compare(other Date) int {
	return d.Time().Compare(other.Time())
}

// DaysUntil returns the number of calendar days from d to other. The result
// is negative when other is earlier than d.
func (d Date) DaysUntil(other Date) int {
	const secondsPerDay = 24 * 60 * 60
	return int((other.Time().Unix() - d.Time().Unix()) / secondsPerDay)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (d *Date) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
