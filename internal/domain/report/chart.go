package report

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/reports-api/internal/domain/entity"
)

const (
	// WeeksPerChart is the fixed number of weekly windows in a month chart.
	WeeksPerChart = 5
	daysPerWeek   = 7
)

// DayBucket holds the totals of a single day of the month.
type DayBucket struct {
	Day      int             `json:"day"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
}

// WeekBucket holds the totals of a seven-day window starting at day
// (Week-1)*7+1. The fifth window is clipped to the end of the month.
type WeekBucket struct {
	Week     int             `json:"week"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
}

// ChartData is the month re-partitioned into day and week series.
type ChartData struct {
	Daily  []DayBucket               `json:"daily"`
	Weekly [WeeksPerChart]WeekBucket `json:"weekly"`
}

// Bucketize splits the transactions dated inside (month, year) into one
// bucket per calendar day and five weekly windows. Weeks that start past the
// end of the month are emitted as zero buckets.
func Bucketize(txns []*entity.Transaction, month, year int) ChartData {
	days := DaysIn(month, year)
	income := make([]decimal.Decimal, days)
	expenses := make([]decimal.Decimal, days)

	for _, txn := range txns {
		if !inPeriod(txn.Date, month, year) {
			continue
		}
		d := txn.Date.Day() - 1
		switch txn.Type {
		case entity.TransactionTypeIncome:
			income[d] = income[d].Add(txn.Amount)
		case entity.TransactionTypeExpense:
			expenses[d] = expenses[d].Add(txn.Amount)
		}
	}

	var chart ChartData
	chart.Daily = make([]DayBucket, days)
	for d := 0; d < days; d++ {
		t := newTotals(income[d], expenses[d])
		chart.Daily[d] = DayBucket{Day: d + 1, Income: t.Income, Expenses: t.Expenses, Net: t.Net}
	}

	for w := 0; w < WeeksPerChart; w++ {
		start := w*daysPerWeek + 1
		end := min(start+daysPerWeek-1, days)

		weekIncome, weekExpenses := decimal.Zero, decimal.Zero
		for d := start; d <= end; d++ {
			weekIncome = weekIncome.Add(income[d-1])
			weekExpenses = weekExpenses.Add(expenses[d-1])
		}

		t := newTotals(weekIncome, weekExpenses)
		chart.Weekly[w] = WeekBucket{Week: w + 1, Income: t.Income, Expenses: t.Expenses, Net: t.Net}
	}

	return chart
}
