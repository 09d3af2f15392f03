package report

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/reports-api/internal/domain/entity"
)

func TestDaysIn(t *testing.T) {
	tests := []struct {
		month, year, want int
	}{
		{1, 2024, 31},
		{2, 2023, 28},
		{2, 2024, 29},
		{2, 1900, 28},
		{2, 2000, 29},
		{4, 2024, 30},
		{12, 2024, 31},
	}

	for _, tt := range tests {
		if got := DaysIn(tt.month, tt.year); got != tt.want {
			t.Errorf("DaysIn(%d, %d) = %d, want %d", tt.month, tt.year, got, tt.want)
		}
	}
}

func TestBucketize_Example(t *testing.T) {
	txns := []*entity.Transaction{
		income(t, "100", "salary", "2024-03-01"),
		expense(t, "40", "food", "2024-03-05"),
	}

	chart := Bucketize(txns, 3, 2024)

	if len(chart.Daily) != 31 {
		t.Fatalf("len(Daily) = %d, want 31", len(chart.Daily))
	}
	for _, day := range chart.Daily {
		switch day.Day {
		case 1:
			assertDecimal(t, "day1.Income", day.Income, "100")
			assertDecimal(t, "day1.Expenses", day.Expenses, "0")
			assertDecimal(t, "day1.Net", day.Net, "100")
		case 5:
			assertDecimal(t, "day5.Income", day.Income, "0")
			assertDecimal(t, "day5.Expenses", day.Expenses, "40")
			assertDecimal(t, "day5.Net", day.Net, "-40")
		default:
			if !day.Income.IsZero() || !day.Expenses.IsZero() || !day.Net.IsZero() {
				t.Errorf("day %d = %+v, want zero", day.Day, day)
			}
		}
	}

	week1 := chart.Weekly[0]
	if week1.Week != 1 {
		t.Errorf("Weekly[0].Week = %d, want 1", week1.Week)
	}
	assertDecimal(t, "week1.Income", week1.Income, "100")
	assertDecimal(t, "week1.Expenses", week1.Expenses, "40")
	assertDecimal(t, "week1.Net", week1.Net, "60")
}

func TestBucketize_AlwaysFiveWeeks(t *testing.T) {
	tests := []struct {
		name        string
		month, year int
		lastDay     string
	}{
		{"february non-leap", 2, 2023, "2023-02-28"},
		{"february leap", 2, 2024, "2024-02-29"},
		{"april", 4, 2024, "2024-04-30"},
		{"december", 12, 2024, "2024-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txns := []*entity.Transaction{expense(t, "7", "misc", tt.lastDay)}
			chart := Bucketize(txns, tt.month, tt.year)

			if len(chart.Weekly) != WeeksPerChart {
				t.Fatalf("len(Weekly) = %d, want %d", len(chart.Weekly), WeeksPerChart)
			}
			for i, week := range chart.Weekly {
				if week.Week != i+1 {
					t.Errorf("Weekly[%d].Week = %d, want %d", i, week.Week, i+1)
				}
			}
			if len(chart.Daily) != DaysIn(tt.month, tt.year) {
				t.Errorf("len(Daily) = %d, want %d", len(chart.Daily), DaysIn(tt.month, tt.year))
			}

			// The last day falls into week 4 for 28-day months, week 5 otherwise.
			lastWeek := 4
			if DaysIn(tt.month, tt.year) == 28 {
				lastWeek = 3
				if !chart.Weekly[4].Net.IsZero() {
					t.Errorf("week 5 = %+v, want zero bucket", chart.Weekly[4])
				}
			}
			assertDecimal(t, "last week expenses", chart.Weekly[lastWeek].Expenses, "7")
		})
	}
}

func TestBucketize_DailyNetMatchesTotals(t *testing.T) {
	txns := []*entity.Transaction{
		income(t, "2500", "salary", "2024-07-01"),
		expense(t, "800", "rent", "2024-07-01"),
		expense(t, "12.30", "coffee", "2024-07-09"),
		expense(t, "64.10", "groceries", "2024-07-18"),
		income(t, "150", "refund", "2024-07-29"),
		expense(t, "30", "fuel", "2024-07-31"),
	}

	chart := Bucketize(txns, 7, 2024)
	totals := Aggregate(txns).Totals

	dailyNet, weeklyNet := decimal.Zero, decimal.Zero
	for _, day := range chart.Daily {
		dailyNet = dailyNet.Add(day.Net)
	}
	for _, week := range chart.Weekly {
		weeklyNet = weeklyNet.Add(week.Net)
	}

	if !dailyNet.Equal(totals.Net) {
		t.Errorf("sum(daily net) = %s, want %s", dailyNet, totals.Net)
	}
	if !weeklyNet.Equal(totals.Net) {
		t.Errorf("sum(weekly net) = %s, want %s", weeklyNet, totals.Net)
	}
}

func TestBucketize_IgnoresOtherMonths(t *testing.T) {
	txns := []*entity.Transaction{
		income(t, "100", "salary", "2024-03-10"),
		income(t, "999", "salary", "2024-04-10"),
		income(t, "999", "salary", "2023-03-10"),
	}

	chart := Bucketize(txns, 3, 2024)

	assertDecimal(t, "day10.Income", chart.Daily[9].Income, "100")
	assertDecimal(t, "week2.Income", chart.Weekly[1].Income, "100")
}

func TestBucketize_Empty(t *testing.T) {
	chart := Bucketize(nil, 2, 2023)

	if len(chart.Daily) != 28 {
		t.Errorf("len(Daily) = %d, want 28", len(chart.Daily))
	}
	for _, week := range chart.Weekly {
		if !week.Net.IsZero() {
			t.Errorf("week %d net = %s, want 0", week.Week, week.Net)
		}
	}
}
