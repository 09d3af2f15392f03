package report

import (
	"context"
	"log/slog"

	"github.com/finance-tracker/reports-api/internal/application/adapter"
	domainerror "github.com/finance-tracker/reports-api/internal/domain/error"
	domainreport "github.com/finance-tracker/reports-api/internal/domain/report"
)

// GetInsightsOutput represents a narrative about a monthly report.
type GetInsightsOutput struct {
	Period  domainreport.MonthlyPeriod
	Summary domainreport.MonthlySummary
	Insight string
}

// GetInsightsUseCase asks the insight provider to comment on a monthly report.
type GetInsightsUseCase struct {
	monthly  *GetMonthlyReportUseCase
	insights adapter.InsightService
}

// NewGetInsightsUseCase creates a new GetInsightsUseCase instance.
// insights may be nil when no provider is configured.
func NewGetInsightsUseCase(monthly *GetMonthlyReportUseCase, insights adapter.InsightService) *GetInsightsUseCase {
	return &GetInsightsUseCase{
		monthly:  monthly,
		insights: insights,
	}
}

// Execute composes the report and returns the provider's commentary.
func (uc *GetInsightsUseCase) Execute(ctx context.Context, input GetMonthlyReportInput) (*GetInsightsOutput, error) {
	if uc.insights == nil || !uc.insights.IsAvailable() {
		return nil, unavailable()
	}

	out, err := uc.monthly.Execute(ctx, input)
	if err != nil {
		return nil, err
	}

	insight, err := uc.insights.Summarize(ctx, out.Report)
	if err != nil {
		slog.Error("Insight generation failed", "user_id", input.UserID, "error", err)
		return nil, unavailable()
	}

	return &GetInsightsOutput{
		Period:  out.Report.Period,
		Summary: out.Report.Summary,
		Insight: insight,
	}, nil
}

func unavailable() error {
	return domainerror.NewReportError(
		domainerror.ErrCodeInsightsUnavailable,
		"insights are not available right now",
		domainerror.ErrInsightsUnavailable,
	)
}
