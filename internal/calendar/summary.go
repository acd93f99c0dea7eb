package calendar

// Summary aggregates the calendar facts for a single date.
type Summary struct {
	LeapYear bool    `json:"leap_year"`
	Weekday  Weekday `json:"weekday"`
	Week     int     `json:"week"`
}

// DateSummary returns the leap-year flag, weekday, and week index for a
// date in one call. It fails under the same conditions as DayOfWeek
// (year < 1753 or month outside 1..12), wrapping ErrInvalidInput.
func DateSummary(day, month, year int) (Summary, error) {
	weekday, err := DayOfWeek(day, month, year)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		LeapYear: IsLeapYear(year),
		Weekday:  weekday,
		Week:     WeekNumber(day, month, year),
	}, nil
}
