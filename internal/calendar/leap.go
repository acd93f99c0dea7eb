// Package calendar provides Gregorian calendar calculations: leap year
// checks, weekday lookup, and an approximate week-of-year index.
package calendar

// IsLeapYear reports whether the given year is a leap year under the
// Gregorian rules: divisible by 4 and not by 100, or divisible by 400.
//
// The proleptic rule is applied uniformly, so any year works, including
// zero and negative years.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}
