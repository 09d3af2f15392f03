// Package email provides email queueing and delivery.
package email

import (
	"context"
	"fmt"
	"time"

	"github.com/finance-tracker/reports-api/internal/application/adapter"
	"github.com/finance-tracker/reports-api/internal/domain/entity"
	domainerror "github.com/finance-tracker/reports-api/internal/domain/error"
)

// Template data keys shared by Service and Worker.
const (
	keyUserName         = "user_name"
	keyAppURL           = "app_url"
	keyMonthName        = "month_name"
	keyYear             = "year"
	keyIncome           = "income"
	keyExpenses         = "expenses"
	keyNet              = "net"
	keyTransactionCount = "transaction_count"
	keyGoalTarget       = "goal_target"
	keyGoalProgress     = "goal_progress"
	keyGoalAchieved     = "goal_achieved"
	keyTopExpenses      = "top_expenses"
)

// Service queues emails for the worker to deliver.
type Service struct {
	queue      adapter.EmailQueueRepository
	appBaseURL string
	now        func() time.Time
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		appBaseURL: appBaseURL,
		now:        time.Now,
	}
}

// QueueWelcomeEmail queues the email sent after registration.
func (s *Service) QueueWelcomeEmail(ctx context.Context, input adapter.QueueWelcomeInput) error {
	job := entity.NewEmailJob(
		entity.TemplateWelcome,
		input.UserEmail,
		input.UserName,
		"Welcome to Finance Reports",
		map[string]interface{}{
			keyUserName: input.UserName,
			keyAppURL:   s.appBaseURL,
		},
		s.now(),
	)
	return s.enqueue(ctx, job)
}

// QueueMonthlyReportEmail queues a summary of a monthly report.
func (s *Service) QueueMonthlyReportEmail(ctx context.Context, input adapter.QueueMonthlyReportInput) error {
	topExpenses := make([]interface{}, len(input.TopExpenses))
	for i, line := range input.TopExpenses {
		topExpenses[i] = line
	}

	job := entity.NewEmailJob(
		entity.TemplateMonthlyReport,
		input.UserEmail,
		input.UserName,
		fmt.Sprintf("Your %s %d report", input.MonthName, input.Year),
		map[string]interface{}{
			keyUserName:         input.UserName,
			keyAppURL:           s.appBaseURL,
			keyMonthName:        input.MonthName,
			keyYear:             fmt.Sprint(input.Year),
			keyIncome:           input.Income,
			keyExpenses:         input.Expenses,
			keyNet:              input.Net,
			keyTransactionCount: fmt.Sprint(input.TransactionCount),
			keyGoalTarget:       input.GoalTarget,
			keyGoalProgress:     input.GoalProgress,
			keyGoalAchieved:     input.GoalAchieved,
			keyTopExpenses:      topExpenses,
		},
		s.now(),
	)
	return s.enqueue(ctx, job)
}

func (s *Service) enqueue(ctx context.Context, job *entity.EmailJob) error {
	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			fmt.Sprintf("failed to queue %s email", job.TemplateType),
			err,
		)
	}
	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
