package adapter

import (
	"context"

	"github.com/finance-tracker/reports-api/internal/domain/report"
)

// InsightService defines the interface for turning a report into a short narrative.
type InsightService interface {
	// Summarize returns a plain-text commentary on the monthly report.
	Summarize(ctx context.Context, monthly *report.MonthlyReport) (string, error)

	// IsAvailable checks if the service is available and properly configured.
	IsAvailable() bool
}
