// Package report contains the use cases that compose monthly and yearly
// reports from stored transactions and goals.
package report

import (
	"time"

	domainreport "github.com/finance-tracker/reports-api/internal/domain/report"
)

// Clock returns the current time. Tests replace it to pin "now".
type Clock func() time.Time

// resolveMonth fills a missing month or year from now and validates both.
func resolveMonth(month, year *int, now time.Time) (int, int, error) {
	m, y := int(now.Month()), now.Year()
	if month != nil {
		m = *month
	}
	if year != nil {
		y = *year
	}
	if err := domainreport.ValidateMonth(m); err != nil {
		return 0, 0, err
	}
	if err := domainreport.ValidateYear(y); err != nil {
		return 0, 0, err
	}
	return m, y, nil
}

func resolveYear(year *int, now time.Time) (int, error) {
	y := now.Year()
	if year != nil {
		y = *year
	}
	if err := domainreport.ValidateYear(y); err != nil {
		return 0, err
	}
	return y, nil
}
