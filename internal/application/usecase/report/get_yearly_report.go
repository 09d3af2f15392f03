package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/finance-tracker/reports-api/internal/application/adapter"
	"github.com/finance-tracker/reports-api/internal/domain/entity"
	domainreport "github.com/finance-tracker/reports-api/internal/domain/report"
)

// GetYearlyReportInput represents the input for a yearly report.
type GetYearlyReportInput struct {
	UserID uuid.UUID
	Year   *int // Defaults to the current year
}

// GetYearlyReportOutput represents the output of a yearly report.
type GetYearlyReportOutput struct {
	Report *domainreport.YearlyReport
	Cached bool
}

// GetYearlyReportUseCase composes the yearly report of a user.
type GetYearlyReportUseCase struct {
	transactionRepo adapter.TransactionRepository
	goalRepo        adapter.GoalRepository
	cache           adapter.ReportCache
	now             Clock
}

// NewGetYearlyReportUseCase creates a new GetYearlyReportUseCase instance.
// cache may be nil.
func NewGetYearlyReportUseCase(
	transactionRepo adapter.TransactionRepository,
	goalRepo adapter.GoalRepository,
	cache adapter.ReportCache,
	now Clock,
) *GetYearlyReportUseCase {
	if now == nil {
		now = time.Now
	}
	return &GetYearlyReportUseCase{
		transactionRepo: transactionRepo,
		goalRepo:        goalRepo,
		cache:           cache,
		now:             now,
	}
}

// Execute returns the report for the requested year.
func (uc *GetYearlyReportUseCase) Execute(ctx context.Context, input GetYearlyReportInput) (*GetYearlyReportOutput, error) {
	now := uc.now().UTC()
	year, err := resolveYear(input.Year, now)
	if err != nil {
		return nil, err
	}

	var (
		version   adapter.CacheVersion
		cacheable bool
	)
	if uc.cache != nil {
		cached, v, err := uc.cache.GetYearly(ctx, input.UserID, year)
		if err != nil {
			slog.Warn("Failed to read yearly report from cache", "user_id", input.UserID, "error", err)
		} else if cached != nil {
			return &GetYearlyReportOutput{Report: cached, Cached: true}, nil
		} else {
			version, cacheable = v, true
		}
	}

	// Transactions and goals are independent reads
	var (
		transactions []*entity.Transaction
		goals        []*entity.Goal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		txns, err := uc.transactionRepo.FindByUser(gctx, input.UserID)
		if err != nil {
			return fmt.Errorf("failed to load transactions: %w", err)
		}
		transactions = txns
		return nil
	})
	g.Go(func() error {
		found, err := uc.goalRepo.FindByUser(gctx, input.UserID)
		if err != nil {
			return fmt.Errorf("failed to load goals: %w", err)
		}
		goals = found
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	yearly, err := domainreport.BuildYearlyReport(transactions, goals, year, now)
	if err != nil {
		return nil, err
	}

	if cacheable {
		if err := uc.cache.SetYearly(ctx, input.UserID, version, yearly); err != nil {
			slog.Warn("Failed to cache yearly report", "user_id", input.UserID, "error", err)
		}
	}

	return &GetYearlyReportOutput{Report: yearly}, nil
}
