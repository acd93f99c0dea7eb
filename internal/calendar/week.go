package calendar

// monthLengths holds the day count of each month in a non-leap year.
var monthLengths = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// WeekNumber returns an approximate week-of-year index for a date:
// the day-of-year divided by 7, truncated. The index is 0-based, so
// an incomplete first week is week 0.
//
// February counts 29 days when the year is a leap year. The month is
// trusted to be in 1..12; out-of-range values violate the caller's
// contract and produce unspecified results.
func WeekNumber(day, month, year int) int {
	dayOfYear := day
	for m := 1; m < month; m++ {
		if m == 2 && IsLeapYear(year) {
			dayOfYear += 29
			continue
		}
		dayOfYear += monthLengths[m-1]
	}
	return dayOfYear / 7
}
