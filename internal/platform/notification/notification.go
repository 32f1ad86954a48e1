// Package notification delivers best-effort email notifications. Sends
// are dispatched on their own goroutine with a bounded retry policy;
// failures are logged and never surfaced to the caller.
package notification

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// EmailSender is the interface for sending email messages.
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// SMTPSender sends mail through a plain SMTP relay.
type SMTPSender struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func (s *SMTPSender) SendEmail(_ context.Context, to, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)
	msg := strings.Join([]string{
		"From: " + s.From,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
		"",
		body,
	}, "\r\n")

	var auth smtp.Auth
	if s.Username != "" {
		auth = smtp.PlainAuth("", s.Username, s.Password, s.Host)
	}
	if err := smtp.SendMail(addr, auth, s.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}

// LogSender is an EmailSender that only logs. Used in development when no
// SMTP relay is configured.
type LogSender struct {
	Logger zerolog.Logger
}

func (s *LogSender) SendEmail(_ context.Context, to, subject, _ string) error {
	s.Logger.Info().Str("to", to).Str("subject", subject).Msg("email suppressed (no SMTP configured)")
	return nil
}

// EmailCall records a single call to SendEmail.
type EmailCall struct {
	To      string
	Subject string
	Body    string
}

// MockEmailSender is a test double for EmailSender.
type MockEmailSender struct {
	mu         sync.Mutex
	calls      []EmailCall
	ShouldFail bool
	FailError  string
}

// SendEmail records the call and optionally returns an error.
func (m *MockEmailSender) SendEmail(_ context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, EmailCall{To: to, Subject: subject, Body: body})
	if m.ShouldFail {
		return errors.New(m.FailError)
	}
	return nil
}

// Calls returns a copy of recorded email calls.
func (m *MockEmailSender) Calls() []EmailCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]EmailCall, len(m.calls))
	copy(out, m.calls)
	return out
}

// Mailer dispatches notifications asynchronously. A send that fails is
// retried with backoff up to MaxAttempts; the final outcome is logged.
type Mailer struct {
	sender      EmailSender
	logger      zerolog.Logger
	maxAttempts int
	backoff     time.Duration
	timeout     time.Duration
	wg          sync.WaitGroup
}

func NewMailer(sender EmailSender, logger zerolog.Logger) *Mailer {
	return &Mailer{
		sender:      sender,
		logger:      logger,
		maxAttempts: 3,
		backoff:     2 * time.Second,
		timeout:     15 * time.Second,
	}
}

// Dispatch queues an email send and returns immediately. The send runs on
// its own goroutine detached from the request context, so a cancelled
// request cannot abort a notification for work that already committed.
func (m *Mailer) Dispatch(to, subject, body string) {
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		m.deliver(to, subject, body)
	}()
}

func (m *Mailer) deliver(to, subject, body string) {
	var lastErr error
	for attempt := 1; attempt <= m.maxAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
		err := m.sender.SendEmail(ctx, to, subject, body)
		cancel()
		if err == nil {
			if attempt > 1 {
				m.logger.Info().Str("to", to).Int("attempt", attempt).Msg("email delivered after retry")
			}
			return
		}
		lastErr = err
		if attempt < m.maxAttempts {
			time.Sleep(m.backoff * time.Duration(attempt))
		}
	}
	m.logger.Error().Err(lastErr).Str("to", to).Str("subject", subject).Msg("email delivery failed")
}

// Wait blocks until all in-flight dispatches finish. Called on shutdown
// and from tests.
func (m *Mailer) Wait() {
	m.wg.Wait()
}
