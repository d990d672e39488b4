// Package notify delivers user-facing feedback about mutation attempts.
// The domain layer emits one notification per attempt, success or failure;
// delivery is purely observational and never affects the operation outcome.
package notify

import (
	"context"
	"log/slog"

	sentrygo "github.com/getsentry/sentry-go"
)

type Severity string

const (
	SeverityInfo  Severity = "info"
	SeverityError Severity = "error"
)

type Notification struct {
	Title       string
	Description string
	Severity    Severity
}

type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// LogNotifier writes notifications to a slog logger.
type LogNotifier struct {
	Logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{Logger: logger}
}

func (l *LogNotifier) Notify(ctx context.Context, n Notification) {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}

	level := slog.LevelInfo
	if n.Severity == SeverityError {
		level = slog.LevelError
	}
	logger.Log(ctx, level, n.Title, "description", n.Description)
}

// SentryNotifier forwards error-severity notifications to Sentry and logs
// everything through an embedded LogNotifier.
type SentryNotifier struct {
	LogNotifier
}

func NewSentryNotifier(logger *slog.Logger) *SentryNotifier {
	return &SentryNotifier{LogNotifier: LogNotifier{Logger: logger}}
}

func (s *SentryNotifier) Notify(ctx context.Context, n Notification) {
	s.LogNotifier.Notify(ctx, n)

	if n.Severity != SeverityError {
		return
	}

	if hub := sentrygo.CurrentHub(); hub != nil {
		hub.WithScope(func(scope *sentrygo.Scope) {
			scope.SetLevel(sentrygo.LevelError)
			scope.SetExtra("description", n.Description)
			hub.CaptureMessage(n.Title)
		})
	}
}
