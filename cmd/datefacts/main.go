// Command datefacts prints the calendar facts for a single date.
//
// With no flags it reports on today.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mbaird/datefacts-api/internal/calendar"
)

func main() {
	now := time.Now()
	day := flag.Int("day", now.Day(), "Day of month (1..31)")
	month := flag.Int("month", int(now.Month()), "Month (1..12)")
	year := flag.Int("year", now.Year(), "Year (>= 1753)")
	flag.Parse()

	summary, err := calendar.DateSummary(*day, *month, *year)
	if err != nil {
		fmt.Fprintf(os.Stderr, "datefacts: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("=== %04d-%02d-%02d ===\n", *year, *month, *day)
	fmt.Printf("  Weekday:   %s\n", summary.Weekday)
	fmt.Printf("  Week:      %d\n", summary.Week)
	fmt.Printf("  Leap year: %v\n", summary.LeapYear)
}
