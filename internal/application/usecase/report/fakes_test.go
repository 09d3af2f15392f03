package report

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/finance-tracker/reports-api/internal/application/adapter"
	"github.com/finance-tracker/reports-api/internal/domain/entity"
	domainerror "github.com/finance-tracker/reports-api/internal/domain/error"
	domainreport "github.com/finance-tracker/reports-api/internal/domain/report"
)

type fakeTransactionRepo struct {
	adapter.TransactionRepository
	txns         []*entity.Transaction
	err          error
	periodCalls  int
	allUserCalls int
	onRead       func()
}

func (r *fakeTransactionRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	r.allUserCalls++
	if r.onRead != nil {
		r.onRead()
	}
	if r.err != nil {
		return nil, r.err
	}
	var out []*entity.Transaction
	for _, t := range r.txns {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) FindByPeriod(_ context.Context, userID uuid.UUID, month, year int) ([]*entity.Transaction, error) {
	r.periodCalls++
	if r.onRead != nil {
		r.onRead()
	}
	if r.err != nil {
		return nil, r.err
	}
	var out []*entity.Transaction
	for _, t := range r.txns {
		if t.UserID == userID && int(t.Date.Month()) == month && t.Date.Year() == year {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeGoalRepo struct {
	adapter.GoalRepository
	goals []*entity.Goal
}

func (r *fakeGoalRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	var out []*entity.Goal
	for _, g := range r.goals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *fakeGoalRepo) FindByPeriod(_ context.Context, userID uuid.UUID, month, year int) (*entity.Goal, error) {
	for _, g := range r.goals {
		if g.UserID == userID && g.TargetMonth == month && g.TargetYear == year {
			return g, nil
		}
	}
	return nil, domainerror.ErrGoalNotFound
}

// fakeCache keeps entries per version like the Redis cache: Invalidate
// bumps the version and a write under an older version is unreachable.
type fakeCache struct {
	mu      sync.Mutex
	version adapter.CacheVersion
	monthly map[string]*domainreport.MonthlyReport
	yearly  map[string]*domainreport.YearlyReport
	failGet bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		monthly: make(map[string]*domainreport.MonthlyReport),
		yearly:  make(map[string]*domainreport.YearlyReport),
	}
}

func cacheKey(userID uuid.UUID, version adapter.CacheVersion, month, year int) string {
	return fmt.Sprintf("%s/v%d/%d-%d", userID, version, year, month)
}

func (c *fakeCache) GetMonthly(_ context.Context, userID uuid.UUID, month, year int) (*domainreport.MonthlyReport, adapter.CacheVersion, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failGet {
		return nil, 0, errors.New("cache down")
	}
	return c.monthly[cacheKey(userID, c.version, month, year)], c.version, nil
}

func (c *fakeCache) SetMonthly(_ context.Context, userID uuid.UUID, version adapter.CacheVersion, r *domainreport.MonthlyReport) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.monthly[cacheKey(userID, version, r.Period.Month, r.Period.Year)] = r
	return nil
}

func (c *fakeCache) GetYearly(_ context.Context, userID uuid.UUID, year int) (*domainreport.YearlyReport, adapter.CacheVersion, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failGet {
		return nil, 0, errors.New("cache down")
	}
	return c.yearly[cacheKey(userID, c.version, 0, year)], c.version, nil
}

func (c *fakeCache) SetYearly(_ context.Context, userID uuid.UUID, version adapter.CacheVersion, r *domainreport.YearlyReport) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.yearly[cacheKey(userID, version, 0, r.Period.Year)] = r
	return nil
}

func (c *fakeCache) Invalidate(_ context.Context, _ uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.version++
	return nil
}

type fakeUserRepo struct {
	adapter.UserRepository
	user *entity.User
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if r.user != nil && r.user.ID == id {
		return r.user, nil
	}
	return nil, domainerror.ErrUserNotFound
}

type fakeEmailService struct {
	monthly []adapter.QueueMonthlyReportInput
}

func (s *fakeEmailService) QueueWelcomeEmail(context.Context, adapter.QueueWelcomeInput) error {
	return nil
}

func (s *fakeEmailService) QueueMonthlyReportEmail(_ context.Context, input adapter.QueueMonthlyReportInput) error {
	s.monthly = append(s.monthly, input)
	return nil
}

type fakeInsights struct {
	available bool
	text      string
	err       error
}

func (f fakeInsights) Summarize(context.Context, *domainreport.MonthlyReport) (string, error) {
	return f.text, f.err
}

func (f fakeInsights) IsAvailable() bool {
	return f.available
}
