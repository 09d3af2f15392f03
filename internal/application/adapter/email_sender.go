package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// EmailService defines the interface for queueing emails.
type EmailService interface {
	// QueueWelcomeEmail queues the email sent after registration.
	QueueWelcomeEmail(ctx context.Context, input QueueWelcomeInput) error

	// QueueMonthlyReportEmail queues a summary of a monthly report.
	QueueMonthlyReportEmail(ctx context.Context, input QueueMonthlyReportInput) error
}

// QueueWelcomeInput represents the input for queueing a welcome email.
type QueueWelcomeInput struct {
	UserEmail string
	UserName  string
}

// QueueMonthlyReportInput represents the input for queueing a monthly report email.
// Amounts are preformatted with two decimals.
type QueueMonthlyReportInput struct {
	UserEmail        string
	UserName         string
	MonthName        string
	Year             int
	Income           string
	Expenses         string
	Net              string
	TransactionCount int
	GoalTarget       string // Empty when the month has no goal
	GoalProgress     string
	GoalAchieved     bool
	TopExpenses      []string // "category: amount" lines
}
