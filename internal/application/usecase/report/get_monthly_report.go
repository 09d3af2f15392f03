package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/finance-tracker/reports-api/internal/application/adapter"
	"github.com/finance-tracker/reports-api/internal/domain/entity"
	domainerror "github.com/finance-tracker/reports-api/internal/domain/error"
	domainreport "github.com/finance-tracker/reports-api/internal/domain/report"
)

// GetMonthlyReportInput represents the input for a monthly report.
// A nil Month or Year defaults to the current one.
type GetMonthlyReportInput struct {
	UserID uuid.UUID
	Month  *int
	Year   *int
}

// GetMonthlyReportOutput represents the output of a monthly report.
type GetMonthlyReportOutput struct {
	Report *domainreport.MonthlyReport
	Cached bool
}

// GetMonthlyReportUseCase composes the monthly report of a user.
type GetMonthlyReportUseCase struct {
	transactionRepo adapter.TransactionRepository
	goalRepo        adapter.GoalRepository
	cache           adapter.ReportCache
	now             Clock
}

// NewGetMonthlyReportUseCase creates a new GetMonthlyReportUseCase instance.
// cache may be nil to always compose from the store.
func NewGetMonthlyReportUseCase(
	transactionRepo adapter.TransactionRepository,
	goalRepo adapter.GoalRepository,
	cache adapter.ReportCache,
	now Clock,
) *GetMonthlyReportUseCase {
	if now == nil {
		now = time.Now
	}
	return &GetMonthlyReportUseCase{
		transactionRepo: transactionRepo,
		goalRepo:        goalRepo,
		cache:           cache,
		now:             now,
	}
}

// Execute returns the report for the requested month.
func (uc *GetMonthlyReportUseCase) Execute(ctx context.Context, input GetMonthlyReportInput) (*GetMonthlyReportOutput, error) {
	now := uc.now().UTC()
	month, year, err := resolveMonth(input.Month, input.Year, now)
	if err != nil {
		return nil, err
	}

	var (
		version   adapter.CacheVersion
		cacheable bool
	)
	if uc.cache != nil {
		cached, v, err := uc.cache.GetMonthly(ctx, input.UserID, month, year)
		if err != nil {
			slog.Warn("Failed to read monthly report from cache", "user_id", input.UserID, "error", err)
		} else if cached != nil {
			return &GetMonthlyReportOutput{Report: cached, Cached: true}, nil
		} else {
			version, cacheable = v, true
		}
	}

	var (
		transactions []*entity.Transaction
		goal         *entity.Goal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		txns, err := uc.transactionRepo.FindByPeriod(gctx, input.UserID, month, year)
		if err != nil {
			return fmt.Errorf("failed to load transactions: %w", err)
		}
		transactions = txns
		return nil
	})
	g.Go(func() error {
		found, err := uc.goalRepo.FindByPeriod(gctx, input.UserID, month, year)
		if err != nil {
			if errors.Is(err, domainerror.ErrGoalNotFound) {
				return nil
			}
			return fmt.Errorf("failed to load goal: %w", err)
		}
		goal = found
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	monthly, err := domainreport.BuildMonthlyReport(transactions, goal, month, year, now)
	if err != nil {
		return nil, err
	}

	if cacheable {
		if err := uc.cache.SetMonthly(ctx, input.UserID, version, monthly); err != nil {
			slog.Warn("Failed to cache monthly report", "user_id", input.UserID, "error", err)
		}
	}

	return &GetMonthlyReportOutput{Report: monthly}, nil
}
