package calendar

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when a date component is outside the range
// the weekday algorithm is defined for.
var ErrInvalidInput = errors.New("invalid input")

// Weekday is a day of the week, Sunday through Saturday.
type Weekday int

// Days of the week.
const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = [7]string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

// String returns the English name of the day, e.g. "Tuesday".
func (d Weekday) String() string {
	if d < Sunday || d > Saturday {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// MarshalText implements encoding.TextMarshaler so a Weekday serializes
// as its name rather than its ordinal.
func (d Weekday) MarshalText() ([]byte, error) {
	if d < Sunday || d > Saturday {
		return nil, fmt.Errorf("%w: weekday ordinal %d out of range", ErrInvalidInput, int(d))
	}
	return []byte(weekdayNames[d]), nil
}

// monthCodes holds the algorithm-specific constant for each month,
// January through December. These are fixed inputs to the weekday
// formula and are not the months' ordinal numbers.
var monthCodes = [12]int{1, 4, 4, 0, 2, 5, 0, 3, 6, 1, 4, 6}

// remainderDays maps the formula's final remainder (0..6) to a day.
// The mapping is 1=Sunday through 6=Friday, with 0 wrapping to Saturday.
var remainderDays = [7]Weekday{Saturday, Sunday, Monday, Tuesday, Wednesday, Thursday, Friday}

// DayOfWeek returns the weekday for a date using a month-code algorithm
// with century adjustments.
//
// The steps:
//  1. Take the last two digits of the year and multiply by 1.25,
//     truncating the result.
//  2. Add the day of the month and the month's code.
//  3. Subtract 1 for January or February of a leap year.
//  4. Apply a century adjustment: +4 before 1800, +2 for 1800-1899,
//     -1 for 2001-2100. Years 1900-2000 and years after 2100 get no
//     adjustment; that is how the source algorithm behaves, so dates
//     outside its accurate range deviate from the civil calendar
//     (January 1, 2000 comes out as Sunday, for example).
//  5. The sum mod 7 selects the day: 1=Sunday .. 6=Friday, 0=Saturday.
//
// The algorithm is intended for years >= 1753; earlier years and months
// outside 1..12 return an error wrapping ErrInvalidInput. The day of the
// month is trusted and never range-checked.
func DayOfWeek(day, month, year int) (Weekday, error) {
	if year < 1753 {
		return 0, fmt.Errorf("%w: algorithm intended for years >= 1753, got %d", ErrInvalidInput, year)
	}
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("%w: month must be in 1..12, got %d", ErrInvalidInput, month)
	}

	// yy*5/4 equals the truncation of yy*1.25: yy is 0..99 here, so the
	// floating-point product is exact and truncation matches integer
	// division.
	yy := year % 100
	base := yy*5/4 + day + monthCodes[month-1]

	// leap year correction for January and February
	if IsLeapYear(year) && (month == 1 || month == 2) {
		base--
	}

	// century adjustments
	if year < 1800 {
		base += 4
	} else if year < 1900 {
		base += 2
	}
	if year > 2000 && year <= 2100 {
		base--
	}

	// Normalize the remainder into 0..6. base cannot go negative for
	// validated inputs, but the lookup must never be handed a negative
	// remainder.
	r := ((base % 7) + 7) % 7

	return remainderDays[r], nil
}
