package report

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/reports-api/internal/domain/entity"
)

// TopCategoryLimit is how many categories each top list holds.
const TopCategoryLimit = 5

// Totals holds summed amounts. Net is always Income minus Expenses.
type Totals struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
}

// Counts holds record counts per type.
type Counts struct {
	Income   int `json:"income"`
	Expenses int `json:"expenses"`
	Total    int `json:"total"`
}

// Averages holds mean amounts per type, zero for an empty subset.
type Averages struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

// TopCategories holds the highest-total categories of each type.
type TopCategories struct {
	Income   []CategoryAmount `json:"income"`
	Expenses []CategoryAmount `json:"expenses"`
}

// CategoryBreakdown holds every category total of each type.
type CategoryBreakdown struct {
	Income   CategoryTotals `json:"income"`
	Expenses CategoryTotals `json:"expenses"`
}

// AnalyticsResult is the aggregate view of a set of transactions.
type AnalyticsResult struct {
	Totals            Totals            `json:"totals"`
	Counts            Counts            `json:"counts"`
	Averages          Averages          `json:"averages"`
	TopCategories     TopCategories     `json:"top_categories"`
	CategoryBreakdown CategoryBreakdown `json:"category_breakdown"`
}

// Aggregate reduces txns into totals, counts, averages and category
// breakdowns split by type. Empty input yields a zero result.
func Aggregate(txns []*entity.Transaction) AnalyticsResult {
	var (
		result  AnalyticsResult
		income  = decimal.Zero
		expense = decimal.Zero
	)

	for _, txn := range txns {
		switch txn.Type {
		case entity.TransactionTypeIncome:
			income = income.Add(txn.Amount)
			result.Counts.Income++
			result.CategoryBreakdown.Income.Add(txn.Category, txn.Amount)
		case entity.TransactionTypeExpense:
			expense = expense.Add(txn.Amount)
			result.Counts.Expenses++
			result.CategoryBreakdown.Expenses.Add(txn.Category, txn.Amount)
		}
	}

	result.Counts.Total = len(txns)
	result.Totals = newTotals(income, expense)
	result.Averages = Averages{
		Income:   average(income, result.Counts.Income),
		Expenses: average(expense, result.Counts.Expenses),
	}
	result.TopCategories = TopCategories{
		Income:   result.CategoryBreakdown.Income.Top(TopCategoryLimit),
		Expenses: result.CategoryBreakdown.Expenses.Top(TopCategoryLimit),
	}

	return result
}

func newTotals(income, expenses decimal.Decimal) Totals {
	return Totals{
		Income:   income,
		Expenses: expenses,
		Net:      income.Sub(expenses),
	}
}

func average(sum decimal.Decimal, count int) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return sum.Div(decimal.NewFromInt(int64(count)))
}
