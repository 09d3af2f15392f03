package email

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/finance-tracker/reports-api/internal/application/adapter"
	"github.com/finance-tracker/reports-api/internal/domain/entity"
	domainerror "github.com/finance-tracker/reports-api/internal/domain/error"
	"github.com/finance-tracker/reports-api/internal/integration/email/templates"
)

// Worker drains the email queue and hands rendered messages to a sender.
type Worker struct {
	queue    adapter.EmailQueueRepository
	sender   adapter.EmailSender
	renderer *templates.Renderer
	config   WorkerConfig
	now      func() time.Time
}

// WorkerConfig holds configuration for the email worker.
type WorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
	// RetentionDays is how long sent jobs are kept. Zero disables cleanup.
	RetentionDays   int
	CleanupInterval time.Duration
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval:    5 * time.Second,
		BatchSize:       10,
		RetentionDays:   30,
		CleanupInterval: 24 * time.Hour,
	}
}

// NewWorker creates a new email worker.
func NewWorker(queue adapter.EmailQueueRepository, sender adapter.EmailSender, renderer *templates.Renderer, config WorkerConfig) *Worker {
	defaults := DefaultWorkerConfig()
	if config.PollInterval <= 0 {
		config.PollInterval = defaults.PollInterval
	}
	if config.BatchSize <= 0 {
		config.BatchSize = defaults.BatchSize
	}
	if config.CleanupInterval <= 0 {
		config.CleanupInterval = defaults.CleanupInterval
	}
	return &Worker{
		queue:    queue,
		sender:   sender,
		renderer: renderer,
		config:   config,
		now:      time.Now,
	}
}

// Start runs the worker loop until ctx is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Email worker started",
		"poll_interval", w.config.PollInterval,
		"batch_size", w.config.BatchSize,
		"retention_days", w.config.RetentionDays,
	)

	poll := time.NewTicker(w.config.PollInterval)
	defer poll.Stop()
	cleanup := time.NewTicker(w.config.CleanupInterval)
	defer cleanup.Stop()

	w.processBatch(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Email worker shutting down")
			return
		case <-poll.C:
			w.processBatch(ctx)
		case <-cleanup.C:
			w.Cleanup(ctx)
		}
	}
}

// ProcessNow processes one batch of pending emails synchronously.
func (w *Worker) ProcessNow(ctx context.Context) {
	w.processBatch(ctx)
}

// Cleanup removes sent jobs older than the retention window.
func (w *Worker) Cleanup(ctx context.Context) int64 {
	if w.config.RetentionDays <= 0 {
		return 0
	}
	removed, err := w.queue.DeleteSentBefore(ctx, w.now().AddDate(0, 0, -w.config.RetentionDays))
	if err != nil {
		slog.Error("Failed to clean up sent email jobs", "error", err)
		return 0
	}
	if removed > 0 {
		slog.Info("Removed old sent email jobs", "count", removed)
	}
	return removed
}

func (w *Worker) processBatch(ctx context.Context) {
	jobs, err := w.queue.DueJobs(ctx, w.now(), w.config.BatchSize)
	if err != nil {
		slog.Error("Failed to get pending email jobs", "error", err)
		return
	}
	if len(jobs) == 0 {
		return
	}

	slog.Debug("Processing email batch", "count", len(jobs))

	for _, job := range jobs {
		if ctx.Err() != nil {
			return
		}
		w.processJob(ctx, job)
	}
}

func (w *Worker) processJob(ctx context.Context, job *entity.EmailJob) {
	logger := slog.With(
		"job_id", job.ID,
		"template", job.TemplateType,
		"recipient", job.RecipientEmail,
	)

	job.MarkProcessing()
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to mark job as processing", "error", err)
		return
	}

	html, text, err := w.render(job)
	if err != nil {
		logger.Error("Failed to render email template", "error", err)
		// A template that fails once fails every time.
		w.fail(ctx, job, err, true)
		return
	}

	result, err := w.sender.Send(ctx, adapter.SendEmailInput{
		To:      job.RecipientEmail,
		Name:    job.RecipientName,
		Subject: job.Subject,
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		logger.Error("Failed to send email", "error", err)
		var emailErr *domainerror.EmailError
		permanent := errors.As(err, &emailErr) && emailErr.Permanent()
		w.fail(ctx, job, err, permanent)
		return
	}

	job.MarkSent(result.ResendID, w.now())
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to mark job as sent", "error", err)
		return
	}

	logger.Info("Email sent", "resend_id", result.ResendID)
}

// render builds the template data from the stored job payload. The payload
// went through a JSON column, so lists arrive as []interface{}.
func (w *Worker) render(job *entity.EmailJob) (string, string, error) {
	var data interface{}
	switch job.TemplateType {
	case entity.TemplateWelcome:
		data = templates.WelcomeData{
			UserName: getString(job.TemplateData, keyUserName),
			AppURL:   getString(job.TemplateData, keyAppURL),
		}
	case entity.TemplateMonthlyReport:
		data = templates.MonthlyReportData{
			UserName:         getString(job.TemplateData, keyUserName),
			AppURL:           getString(job.TemplateData, keyAppURL),
			MonthName:        getString(job.TemplateData, keyMonthName),
			Year:             getString(job.TemplateData, keyYear),
			Income:           getString(job.TemplateData, keyIncome),
			Expenses:         getString(job.TemplateData, keyExpenses),
			Net:              getString(job.TemplateData, keyNet),
			TransactionCount: getString(job.TemplateData, keyTransactionCount),
			GoalTarget:       getString(job.TemplateData, keyGoalTarget),
			GoalProgress:     getString(job.TemplateData, keyGoalProgress),
			GoalAchieved:     getBool(job.TemplateData, keyGoalAchieved),
			TopExpenses:      getStrings(job.TemplateData, keyTopExpenses),
		}
	default:
		return "", "", domainerror.NewEmailError(
			domainerror.ErrCodeInvalidTemplate,
			"unknown template type",
			domainerror.ErrUnknownTemplate,
		)
	}

	return w.renderer.Render(string(job.TemplateType), data)
}

func (w *Worker) fail(ctx context.Context, job *entity.EmailJob, err error, permanent bool) {
	job.MarkFailed(err, permanent, w.now())

	if updateErr := w.queue.Update(ctx, job); updateErr != nil {
		slog.Error("Failed to update job after failure", "job_id", job.ID, "error", updateErr)
	}

	if job.Status == entity.EmailStatusFailed {
		slog.Warn("Email job permanently failed",
			"job_id", job.ID,
			"attempts", job.Attempts,
			"last_error", job.LastError,
		)
		return
	}
	slog.Info("Email job scheduled for retry",
		"job_id", job.ID,
		"attempts", job.Attempts,
		"scheduled_at", job.ScheduledAt,
	)
}

func getString(data map[string]interface{}, key string) string {
	s, _ := data[key].(string)
	return s
}

func getBool(data map[string]interface{}, key string) bool {
	b, _ := data[key].(bool)
	return b
}

func getStrings(data map[string]interface{}, key string) []string {
	switch v := data[key].(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
