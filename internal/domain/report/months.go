// Package report turns a user's transactions and goals into analytics
// summaries, category breakdowns and chart series. Every function here is
// pure: no I/O, no shared state and no clock reads.
package report

import (
	"fmt"
	"strings"
	"time"

	domainerror "github.com/finance-tracker/reports-api/internal/domain/error"
)

// DateLayout is the calendar date format used on the wire.
const DateLayout = "2006-01-02"

const (
	minYear = 1
	maxYear = 9999
)

// MonthName returns the full English name of month, or "" when out of range.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return time.Month(month).String()
}

// DaysIn returns the number of days in the given month, leap years included.
func DaysIn(month, year int) int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, domainerror.NewReportError(
			domainerror.ErrCodeMalformedRecordDate,
			fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", value),
			domainerror.ErrMalformedRecordDate,
		)
	}
	return t, nil
}

// ValidateMonth returns a ReportError when month is outside 1..12.
func ValidateMonth(month int) error {
	if month < 1 || month > 12 {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportMonth,
			fmt.Sprintf("invalid month %d", month),
			domainerror.ErrInvalidReportMonth,
		)
	}
	return nil
}

// ValidateYear returns a ReportError when year cannot be a calendar year.
func ValidateYear(year int) error {
	if year < minYear || year > maxYear {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportYear,
			fmt.Sprintf("invalid year %d", year),
			domainerror.ErrInvalidReportYear,
		)
	}
	return nil
}

func inPeriod(date time.Time, month, year int) bool {
	return date.Year() == year && int(date.Month()) == month
}
