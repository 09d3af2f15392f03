package dto

import (
	"time"

	"github.com/finance-tracker/reports-api/internal/domain/report"
)

// MonthlyReportResponse is the monthly report with transactions in API form.
type MonthlyReportResponse struct {
	Period       report.MonthlyPeriod   `json:"period"`
	Summary      report.MonthlySummary  `json:"summary"`
	Analytics    report.AnalyticsResult `json:"analytics"`
	ChartData    report.ChartData       `json:"chart_data"`
	Transactions []TransactionResponse  `json:"transactions"`
	GeneratedAt  time.Time              `json:"generated_at"`
	Cached       bool                   `json:"cached"`
}

// GoalProgressResponse pairs a goal with its month's status.
type GoalProgressResponse struct {
	Goal   GoalResponse      `json:"goal"`
	Status report.GoalStatus `json:"status"`
}

// YearlyReportResponse is the yearly report in API form.
type YearlyReportResponse struct {
	Period           report.YearlyPeriod     `json:"period"`
	Summary          report.YearlyAnalytics  `json:"summary"`
	MonthlyBreakdown report.MonthlyBreakdown `json:"monthly_breakdown"`
	GoalsProgress    []GoalProgressResponse  `json:"goals_progress"`
	GeneratedAt      time.Time               `json:"generated_at"`
	Cached           bool                    `json:"cached"`
}

// ReportEmailResponse confirms a queued report email.
type ReportEmailResponse struct {
	Message string               `json:"message"`
	Period  report.MonthlyPeriod `json:"period"`
	SentTo  string               `json:"sent_to"`
}

// InsightResponse carries the narrative for a monthly report.
type InsightResponse struct {
	Period  report.MonthlyPeriod  `json:"period"`
	Summary report.MonthlySummary `json:"summary"`
	Insight string                `json:"insight"`
}

// ToMonthlyReportResponse converts a composed monthly report.
func ToMonthlyReportResponse(r *report.MonthlyReport, cached bool) MonthlyReportResponse {
	return MonthlyReportResponse{
		Period:       r.Period,
		Summary:      r.Summary,
		Analytics:    r.Analytics,
		ChartData:    r.ChartData,
		Transactions: ToTransactionResponses(r.Transactions),
		GeneratedAt:  r.GeneratedAt,
		Cached:       cached,
	}
}

// ToYearlyReportResponse converts a composed yearly report.
func ToYearlyReportResponse(r *report.YearlyReport, cached bool) YearlyReportResponse {
	progress := make([]GoalProgressResponse, len(r.GoalsProgress))
	for i, p := range r.GoalsProgress {
		progress[i] = GoalProgressResponse{
			Goal:   ToGoalResponse(p.Goal),
			Status: p.Status,
		}
	}

	return YearlyReportResponse{
		Period:           r.Period,
		Summary:          r.Summary,
		MonthlyBreakdown: r.MonthlyBreakdown,
		GoalsProgress:    progress,
		GeneratedAt:      r.GeneratedAt,
		Cached:           cached,
	}
}
