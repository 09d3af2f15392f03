package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/finance-tracker/reports-api/internal/application/adapter"
	domainerror "github.com/finance-tracker/reports-api/internal/domain/error"
	domainreport "github.com/finance-tracker/reports-api/internal/domain/report"
)

// topExpenseLines is how many expense categories the email lists.
const topExpenseLines = 3

// EmailMonthlyReportOutput represents the output of queueing a report email.
type EmailMonthlyReportOutput struct {
	Period domainreport.MonthlyPeriod
	SentTo string
}

// EmailMonthlyReportUseCase queues an email summarizing a monthly report.
type EmailMonthlyReportUseCase struct {
	monthly      *GetMonthlyReportUseCase
	userRepo     adapter.UserRepository
	emailService adapter.EmailService
}

// NewEmailMonthlyReportUseCase creates a new EmailMonthlyReportUseCase instance.
func NewEmailMonthlyReportUseCase(
	monthly *GetMonthlyReportUseCase,
	userRepo adapter.UserRepository,
	emailService adapter.EmailService,
) *EmailMonthlyReportUseCase {
	return &EmailMonthlyReportUseCase{
		monthly:      monthly,
		userRepo:     userRepo,
		emailService: emailService,
	}
}

// Execute composes the report and queues it for the report owner.
func (uc *EmailMonthlyReportUseCase) Execute(ctx context.Context, input GetMonthlyReportInput) (*EmailMonthlyReportOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeUserNotFound,
				"user not found",
				domainerror.ErrUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	out, err := uc.monthly.Execute(ctx, input)
	if err != nil {
		return nil, err
	}

	if err := uc.emailService.QueueMonthlyReportEmail(ctx, monthlyEmailInput(user.Email, user.Name, out.Report)); err != nil {
		return nil, fmt.Errorf("failed to queue monthly report email: %w", err)
	}

	return &EmailMonthlyReportOutput{
		Period: out.Report.Period,
		SentTo: user.Email,
	}, nil
}

func monthlyEmailInput(email, name string, monthly *domainreport.MonthlyReport) adapter.QueueMonthlyReportInput {
	input := adapter.QueueMonthlyReportInput{
		UserEmail:        email,
		UserName:         name,
		MonthName:        monthly.Period.MonthName,
		Year:             monthly.Period.Year,
		Income:           monthly.Summary.Income.StringFixed(2),
		Expenses:         monthly.Summary.Expenses.StringFixed(2),
		Net:              monthly.Summary.Net.StringFixed(2),
		TransactionCount: monthly.Summary.TransactionCount,
	}

	if goal := monthly.Summary.Goal; goal != nil {
		input.GoalTarget = goal.Target.StringFixed(2)
		input.GoalProgress = goal.Progress.StringFixed(2)
		input.GoalAchieved = goal.Achieved
	}

	for i, top := range monthly.Analytics.TopCategories.Expenses {
		if i == topExpenseLines {
			break
		}
		input.TopExpenses = append(input.TopExpenses, fmt.Sprintf("%s: %s", top.Category, top.Amount.StringFixed(2)))
	}

	return input
}
