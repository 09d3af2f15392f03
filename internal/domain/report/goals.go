package report

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/reports-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// GoalStatus compares a period's net against its savings target.
type GoalStatus struct {
	Target    decimal.Decimal `json:"target"`
	Progress  decimal.Decimal `json:"progress"`
	Achieved  bool            `json:"achieved"`
	Remaining decimal.Decimal `json:"remaining"`
}

// EvaluateGoal returns the status of goal against analytics, or nil when
// there is no goal. A zero target reports zero progress.
func EvaluateGoal(analytics AnalyticsResult, goal *entity.Goal) *GoalStatus {
	if goal == nil {
		return nil
	}

	status := evaluate(analytics.Totals.Net, goal.TargetAmount)
	return &status
}

func evaluate(net, target decimal.Decimal) GoalStatus {
	progress := decimal.Zero
	if !target.IsZero() {
		progress = percent(net, target)
	}

	remaining := target.Sub(net)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	return GoalStatus{
		Target:    target,
		Progress:  progress,
		Achieved:  net.GreaterThanOrEqual(target),
		Remaining: remaining,
	}
}

// AchievementRate counts the goals whose month reached its target and returns
// that count with its percentage of all goals. Transactions are matched to a
// goal by month only; callers pass a set already restricted to one year.
func AchievementRate(yearTxns []*entity.Transaction, yearGoals []*entity.Goal) (int, decimal.Decimal) {
	if len(yearGoals) == 0 {
		return 0, decimal.Zero
	}

	byMonth := splitByMonth(yearTxns)
	achieved := 0
	for _, goal := range yearGoals {
		if goal.TargetMonth < 1 || goal.TargetMonth > 12 {
			continue
		}
		net := Aggregate(byMonth[goal.TargetMonth-1]).Totals.Net
		if net.GreaterThanOrEqual(goal.TargetAmount) {
			achieved++
		}
	}

	rate := percent(decimal.NewFromInt(int64(achieved)), decimal.NewFromInt(int64(len(yearGoals))))
	return achieved, rate
}

// percent returns part*100/whole without rounding. whole must be non-zero.
func percent(part, whole decimal.Decimal) decimal.Decimal {
	return part.Mul(hundred).Div(whole)
}

func splitByMonth(txns []*entity.Transaction) [12][]*entity.Transaction {
	var months [12][]*entity.Transaction
	for _, txn := range txns {
		m := int(txn.Date.Month())
		months[m-1] = append(months[m-1], txn)
	}
	return months
}
