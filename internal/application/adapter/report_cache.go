package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/reports-api/internal/domain/report"
)

// CacheVersion is the generation of a user's cached reports observed by a
// read. A report built after a miss is stored under the version the miss saw,
// so an invalidation in between leaves it unreachable.
type CacheVersion int64

// ReportCache defines the interface for storing composed reports.
// A miss is reported as a nil report with a nil error.
type ReportCache interface {
	// GetMonthly returns the cached monthly report for the period, if any,
	// and the version it was looked up under.
	GetMonthly(ctx context.Context, userID uuid.UUID, month, year int) (*report.MonthlyReport, CacheVersion, error)

	// SetMonthly stores a monthly report under version.
	SetMonthly(ctx context.Context, userID uuid.UUID, version CacheVersion, monthly *report.MonthlyReport) error

	// GetYearly returns the cached yearly report, if any, and the version it
	// was looked up under.
	GetYearly(ctx context.Context, userID uuid.UUID, year int) (*report.YearlyReport, CacheVersion, error)

	// SetYearly stores a yearly report under version.
	SetYearly(ctx context.Context, userID uuid.UUID, version CacheVersion, yearly *report.YearlyReport) error

	// Invalidate drops every cached report of the user.
	Invalidate(ctx context.Context, userID uuid.UUID) error
}
