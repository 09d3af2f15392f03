package report

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/reports-api/internal/domain/entity"
	domainerror "github.com/finance-tracker/reports-api/internal/domain/error"
)

// RecentTransactionLimit caps the transactions listed in a monthly report.
const RecentTransactionLimit = 50

// PeriodTypeYearly tags the period of a yearly report.
const PeriodTypeYearly = "yearly"

// MonthlyPeriod identifies the month a report covers.
type MonthlyPeriod struct {
	Month     int    `json:"month"`
	Year      int    `json:"year"`
	MonthName string `json:"month_name"`
}

// MonthlySummary is the month's totals with its goal status, if any.
type MonthlySummary struct {
	Totals
	Goal             *GoalStatus `json:"goal_status"`
	TransactionCount int         `json:"transaction_count"`
}

// MonthlyReport is the full monthly report payload.
type MonthlyReport struct {
	Period       MonthlyPeriod         `json:"period"`
	Summary      MonthlySummary        `json:"summary"`
	Analytics    AnalyticsResult       `json:"analytics"`
	ChartData    ChartData             `json:"chart_data"`
	Transactions []*entity.Transaction `json:"transactions"`
	GeneratedAt  time.Time             `json:"generated_at"`
}

// YearlyPeriod identifies the year a report covers.
type YearlyPeriod struct {
	Year int    `json:"year"`
	Type string `json:"type"`
}

// YearlyAnalytics is the year's totals plus savings and goal rates.
type YearlyAnalytics struct {
	Totals
	SavingsRate          decimal.Decimal `json:"savings_rate"`
	GoalsAchievementRate decimal.Decimal `json:"goals_achievement_rate"`
	TotalGoals           int             `json:"total_goals"`
	AchievedGoals        int             `json:"achieved_goals"`
	TransactionCount     int             `json:"transaction_count"`
}

// MonthBreakdown is one month of a yearly report.
type MonthBreakdown struct {
	Month     int    `json:"month"`
	MonthName string `json:"month_name"`
	Totals
	TransactionCount int `json:"transaction_count"`
}

// GoalProgress pairs a goal with the status of its own month.
type GoalProgress struct {
	Goal   *entity.Goal `json:"goal"`
	Status GoalStatus   `json:"status"`
}

// YearlyReport is the full yearly report payload.
type YearlyReport struct {
	Period           YearlyPeriod     `json:"period"`
	Summary          YearlyAnalytics  `json:"summary"`
	MonthlyBreakdown MonthlyBreakdown `json:"monthly_breakdown"`
	GoalsProgress    []GoalProgress   `json:"goals_progress"`
	GeneratedAt      time.Time        `json:"generated_at"`
}

// BuildMonthlyReport composes the report for (month, year). txns must already
// be restricted to that month and ordered most recent first.
func BuildMonthlyReport(
	txns []*entity.Transaction,
	goal *entity.Goal,
	month, year int,
	generatedAt time.Time,
) (*MonthlyReport, error) {
	if err := ValidateMonth(month); err != nil {
		return nil, err
	}
	if err := ValidateYear(year); err != nil {
		return nil, err
	}
	if err := validateTransactions(txns); err != nil {
		return nil, err
	}

	analytics := Aggregate(txns)

	recent := txns
	if len(recent) > RecentTransactionLimit {
		recent = recent[:RecentTransactionLimit]
	}

	return &MonthlyReport{
		Period: MonthlyPeriod{
			Month:     month,
			Year:      year,
			MonthName: MonthName(month),
		},
		Summary: MonthlySummary{
			Totals:           analytics.Totals,
			Goal:             EvaluateGoal(analytics, goal),
			TransactionCount: analytics.Counts.Total,
		},
		Analytics:    analytics,
		ChartData:    Bucketize(txns, month, year),
		Transactions: append([]*entity.Transaction(nil), recent...),
		GeneratedAt:  generatedAt,
	}, nil
}

// BuildYearlyReport composes the report for year from all of a user's
// transactions and goals. Records from other years are dropped first.
func BuildYearlyReport(
	txns []*entity.Transaction,
	goals []*entity.Goal,
	year int,
	generatedAt time.Time,
) (*YearlyReport, error) {
	if err := ValidateYear(year); err != nil {
		return nil, err
	}
	if err := validateTransactions(txns); err != nil {
		return nil, err
	}
	if err := validateGoals(goals); err != nil {
		return nil, err
	}

	yearTxns := make([]*entity.Transaction, 0, len(txns))
	for _, txn := range txns {
		if txn.Date.Year() == year {
			yearTxns = append(yearTxns, txn)
		}
	}
	yearGoals := make([]*entity.Goal, 0, len(goals))
	for _, goal := range goals {
		if goal.TargetYear == year {
			yearGoals = append(yearGoals, goal)
		}
	}

	analytics := Aggregate(yearTxns)
	achieved, rate := AchievementRate(yearTxns, yearGoals)

	savingsRate := decimal.Zero
	if analytics.Totals.Income.IsPositive() {
		savingsRate = percent(analytics.Totals.Net, analytics.Totals.Income)
	}

	report := &YearlyReport{
		Period: YearlyPeriod{Year: year, Type: PeriodTypeYearly},
		Summary: YearlyAnalytics{
			Totals:               analytics.Totals,
			SavingsRate:          savingsRate,
			GoalsAchievementRate: rate,
			TotalGoals:           len(yearGoals),
			AchievedGoals:        achieved,
			TransactionCount:     analytics.Counts.Total,
		},
		GoalsProgress: make([]GoalProgress, 0, len(yearGoals)),
		GeneratedAt:   generatedAt,
	}

	byMonth := splitByMonth(yearTxns)
	monthNets := [12]decimal.Decimal{}
	for i, monthTxns := range byMonth {
		monthly := Aggregate(monthTxns)
		monthNets[i] = monthly.Totals.Net
		report.MonthlyBreakdown[i] = MonthBreakdown{
			Month:            i + 1,
			MonthName:        MonthName(i + 1),
			Totals:           monthly.Totals,
			TransactionCount: monthly.Counts.Total,
		}
	}

	for _, goal := range yearGoals {
		report.GoalsProgress = append(report.GoalsProgress, GoalProgress{
			Goal:   goal,
			Status: evaluate(monthNets[goal.TargetMonth-1], goal.TargetAmount),
		})
	}

	return report, nil
}

func validateTransactions(txns []*entity.Transaction) error {
	for i, txn := range txns {
		if txn == nil {
			return domainerror.NewReportError(
				domainerror.ErrCodeReportInternalError,
				fmt.Sprintf("transaction at index %d is nil", i),
				nil,
			)
		}
		if txn.Date.IsZero() {
			return domainerror.NewReportError(
				domainerror.ErrCodeMalformedRecordDate,
				fmt.Sprintf("transaction %s has no date", txn.ID),
				domainerror.ErrMalformedRecordDate,
			)
		}
		if !txn.Type.IsValid() {
			return domainerror.NewReportError(
				domainerror.ErrCodeUnknownRecordType,
				fmt.Sprintf("transaction %s has unknown type %q", txn.ID, txn.Type),
				domainerror.ErrUnknownRecordType,
			)
		}
	}
	return nil
}

func validateGoals(goals []*entity.Goal) error {
	for i, goal := range goals {
		if goal == nil {
			return domainerror.NewReportError(
				domainerror.ErrCodeReportInternalError,
				fmt.Sprintf("goal at index %d is nil", i),
				nil,
			)
		}
		if err := ValidateMonth(goal.TargetMonth); err != nil {
			return err
		}
	}
	return nil
}
