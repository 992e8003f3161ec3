package season

import (
	"errors"
	"fmt"
	"time"
)

// PickedDateLayout is the wire format for dates chosen in the date picker.
const PickedDateLayout = "2006-01-02"

var ErrUnparseableDate = errors.New("unparseable date")

// ParsePickedDate turns a picker value into a UTC-midnight instant.
// Anything that does not match the layout is a validation failure; there is
// no fallback parsing.
func ParsePickedDate(value string) (time.Time, error) {
	parsed, err := time.Parse(PickedDateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseableDate, value)
	}
	return UTCMidnight(parsed), nil
}

// ToStorageDate converts a picked calendar day into the instant persisted for
// it: UTC midnight of the day BEFORE the picked one. The shift compensates a
// display artifact of the original date picker and is kept for compatibility
// with stored data; FromStorageDate is its inverse and must be applied before
// any day comparison against a stored instant.
func ToStorageDate(picked time.Time) time.Time {
	return UTCMidnight(picked).AddDate(0, 0, -1)
}

// FromStorageDate re-adds the day removed by ToStorageDate, recovering the
// calendar day the user originally picked.
func FromStorageDate(stored time.Time) time.Time {
	return UTCMidnight(stored).AddDate(0, 0, 1)
}

// UTCMidnight truncates an instant to midnight using its UTC calendar
// components. Host-local components are never used, so a day cannot slide
// across midnight because of the server's timezone offset.
func UTCMidnight(t time.Time) time.Time {
	utc := t.UTC()
	return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
}

// DayKey identifies a UTC calendar day. It is the key for every day-level
// index and equality check in the package.
type DayKey struct {
	Year  int
	Month time.Month
	Day   int
}

func DayKeyOf(t time.Time) DayKey {
	utc := t.UTC()
	return DayKey{Year: utc.Year(), Month: utc.Month(), Day: utc.Day()}
}

// SameUTCDay reports whether two instants fall on the same UTC calendar day.
func SameUTCDay(a, b time.Time) bool {
	return DayKeyOf(a) == DayKeyOf(b)
}
