package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/finance-tracker/reports-api/internal/application/adapter"
	domainerror "github.com/finance-tracker/reports-api/internal/domain/error"
)

// LogSender records emails in memory and logs them instead of delivering.
// It is used when no Resend API key is configured and in tests.
type LogSender struct {
	mu        sync.Mutex
	sent      []adapter.SendEmailInput
	failWith  error
	permanent bool
}

// NewLogSender creates a new LogSender.
func NewLogSender() *LogSender {
	return &LogSender{}
}

// Send implements adapter.EmailSender.
func (s *LogSender) Send(_ context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failWith != nil {
		code := domainerror.ErrCodeTemporaryEmailFailure
		if s.permanent {
			code = domainerror.ErrCodePermanentEmailFailure
		}
		return nil, domainerror.NewEmailError(code, "send failed", s.failWith)
	}

	s.sent = append(s.sent, input)
	slog.Info("Email not delivered, no provider configured", "to", input.To, "subject", input.Subject)

	return &adapter.SendEmailResult{ResendID: fmt.Sprintf("local-%d", len(s.sent))}, nil
}

// Sent returns a copy of the recorded emails.
func (s *LogSender) Sent() []adapter.SendEmailInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]adapter.SendEmailInput(nil), s.sent...)
}

// FailNext makes every following Send fail until Reset is called.
func (s *LogSender) FailNext(permanent bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = errors.New("provider unavailable")
	s.permanent = permanent
}

// Reset clears recorded emails and failure settings.
func (s *LogSender) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = nil
	s.failWith = nil
	s.permanent = false
}

var _ adapter.EmailSender = (*LogSender)(nil)
