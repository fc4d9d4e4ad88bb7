// Package notify is the fire-and-forget notification surface controllers
// report success and failure outcomes to.
package notify

import "log/slog"

// Severity classifies a notification.
type Severity string

// Notification severities.
const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Sink receives notifications. Implementations must not block or fail the
// caller.
type Sink interface {
	Notify(severity Severity, message string)
}

// SlogSink writes notifications to the default structured logger.
type SlogSink struct{}

// Notify implements the Sink interface.
func (SlogSink) Notify(severity Severity, message string) {
	switch severity {
	case SeverityError:
		slog.Error(message)
	case SeverityWarning:
		slog.Warn(message)
	default:
		slog.Info(message)
	}
}

type discard struct{}

func (discard) Notify(Severity, string) {}

// Discard returns a sink that drops every notification.
func Discard() Sink {
	return discard{}
}
