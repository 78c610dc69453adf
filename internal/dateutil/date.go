package dateutil

import (
	"fmt"
	"time"

	"github.com/julianstephens/tend/internal/constants"
)

// Calendar arithmetic over YYYY-MM-DD day strings. Lexicographic order on
// these strings equals chronological order, which storage queries and the
// engine rely on for range filters and MAX aggregation.

// Valid reports whether day is a well-formed YYYY-MM-DD calendar day.
func Valid(day string) bool {
	_, err := time.Parse(constants.DateFormat, day)
	return err == nil && len(day) == len(constants.DateFormat)
}

// Today returns the current local calendar day.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// ShiftDate returns day offset by delta calendar days, crossing month and
// year boundaries. The conversion anchors at noon so that DST transitions in
// the local zone cannot shift the result across a day boundary.
func ShiftDate(day string, delta int) string {
	t, err := time.Parse(constants.DateFormat, day)
	if err != nil {
		// Dates are validated at the boundary; a malformed day here is a bug.
		panic(fmt.Sprintf("dateutil: malformed day %q", day))
	}
	noon := time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC)
	return noon.AddDate(0, 0, delta).Format(constants.DateFormat)
}

// DaysInMonth returns the number of days in the given Gregorian month,
// accounting for leap years.
func DaysInMonth(year, month int) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 12, 0, 0, 0, time.UTC).Day()
}

// FirstOfMonth returns the first day of the month containing day.
func FirstOfMonth(day string) string {
	return day[:8] + "01"
}

// LastOfMonth returns the last day of the month containing day.
func LastOfMonth(day string) string {
	y, m := YearMonth(day)
	return fmt.Sprintf("%s%02d", day[:8], DaysInMonth(y, m))
}

// PrevMonthFirst returns the first day of the calendar month immediately
// preceding the month containing day.
func PrevMonthFirst(day string) string {
	return FirstOfMonth(ShiftDate(FirstOfMonth(day), -1))
}

// YearMonth extracts the year and month from a day string.
func YearMonth(day string) (year, month int) {
	t, err := time.Parse(constants.DateFormat, day)
	if err != nil {
		panic(fmt.Sprintf("dateutil: malformed day %q", day))
	}
	return t.Year(), int(t.Month())
}
