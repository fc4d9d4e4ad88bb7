// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// Severity classifies a notification event.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Event represents one notification emitted after a create/update/delete outcome.
type Event struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// EventPublisher defines the interface for the fire-and-forget notification
// surface. Publish must never fail the calling operation; implementations
// log delivery problems and move on.
type EventPublisher interface {
	Publish(ctx context.Context, userID uuid.UUID, event Event)
}
