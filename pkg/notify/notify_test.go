package notify_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"contacthub/pkg/notify"

	"github.com/stretchr/testify/assert"
)

func TestLogNotifier(t *testing.T) {
	t.Run("writes info notifications at info level", func(t *testing.T) {
		var buf bytes.Buffer
		notifier := notify.NewLogNotifier(slog.New(slog.NewJSONHandler(&buf, nil)))

		notifier.Notify(context.Background(), notify.Notification{
			Title:       "Contact added",
			Description: "Jane Doe has been added to your contacts.",
			Severity:    notify.SeverityInfo,
		})

		out := buf.String()
		assert.Contains(t, out, `"level":"INFO"`)
		assert.Contains(t, out, "Contact added")
		assert.Contains(t, out, "Jane Doe has been added to your contacts.")
	})

	t.Run("writes error notifications at error level", func(t *testing.T) {
		var buf bytes.Buffer
		notifier := notify.NewLogNotifier(slog.New(slog.NewJSONHandler(&buf, nil)))

		notifier.Notify(context.Background(), notify.Notification{
			Title:       "Error",
			Description: "Failed to add contact. Please try again.",
			Severity:    notify.SeverityError,
		})

		out := buf.String()
		assert.Contains(t, out, `"level":"ERROR"`)
		assert.Contains(t, out, "Failed to add contact. Please try again.")
	})

	t.Run("falls back to the default logger when none is set", func(t *testing.T) {
		notifier := notify.NewLogNotifier(nil)

		assert.NotPanics(t, func() {
			notifier.Notify(context.Background(), notify.Notification{
				Title:    "Contact deleted",
				Severity: notify.SeverityInfo,
			})
		})
	})
}

func TestSentryNotifier(t *testing.T) {
	t.Run("still logs every notification", func(t *testing.T) {
		var buf bytes.Buffer
		notifier := notify.NewSentryNotifier(slog.New(slog.NewJSONHandler(&buf, nil)))

		notifier.Notify(context.Background(), notify.Notification{
			Title:       "Removed from favorites",
			Description: "Jane Doe has been removed from your favorites.",
			Severity:    notify.SeverityInfo,
		})

		assert.Contains(t, buf.String(), "Removed from favorites")
	})

	t.Run("does not panic without an initialized sentry client", func(t *testing.T) {
		var buf bytes.Buffer
		notifier := notify.NewSentryNotifier(slog.New(slog.NewJSONHandler(&buf, nil)))

		assert.NotPanics(t, func() {
			notifier.Notify(context.Background(), notify.Notification{
				Title:       "Error",
				Description: "Failed to delete contact. Please try again.",
				Severity:    notify.SeverityError,
			})
		})
	})
}
