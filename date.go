package nexo

import (
	"fmt"
	"strings"
	"time"
)

// DateFormat is the display and wire form of a journal date (dd/mm/yyyy),
// kept identical to what the application has always persisted.
const DateFormat = "02/01/2006"

// Date identifies a civil day, without a time of day or a timezone.
type Date struct {
	y int
	m time.Month
	d int
}

// NewDate creates a normalized date (out-of-range values roll over like
// time.Date).
func NewDate(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{y: t.Year(), m: t.Month(), d: t.Day()}
}

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

func (d Date) Year() int         { return d.y }
func (d Date) Month() time.Month { return d.m }
func (d Date) Day() int          { return d.d }

func (d Date) IsZero() bool { return d == Date{} }

func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }
func (d Date) After(x Date) bool  { return d.time().After(x.time()) }

// String returns the date in display form, dd/mm/yyyy.
func (d Date) String() string { return d.time().Format(DateFormat) }

// ParseDate parses a dd/mm/yyyy date.
func ParseDate(str string) (Date, error) {
	t, err := time.Parse(DateFormat, strings.TrimSpace(str))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", str, err)
	}
	return NewDate(t.Date()), nil
}

// MustParseDate parses a dd/mm/yyyy date and panics on error. For tests and
// constants.
func MustParseDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err)
	}
	return d
}

// MarshalJSON encodes the date as its quoted display form.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
