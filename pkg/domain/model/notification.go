package model

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgchart/pkg/domain/types"
)

// DefaultNotificationDuration is used by the typed helpers when no duration is given
const DefaultNotificationDuration = 5 * time.Second

// NotificationAction is a labelled effect attached to a notification, e.g. "Undo"
type NotificationAction struct {
	Label string
	Run   func(ctx context.Context)
}

// Notification is a single user-visible feedback message
type Notification struct {
	ID       types.NotificationID
	Messages []string
	Type     types.NotificationType
	// Duration before auto-dismiss; zero or negative persists until dismissed
	Duration time.Duration
	Action   *NotificationAction
}

// NewNotification creates a notification with a fresh ID
func NewNotification(messages []string, typ types.NotificationType, duration time.Duration, action *NotificationAction) (*Notification, error) {
	if len(messages) == 0 {
		return nil, goerr.New("notification requires at least one message")
	}
	if !typ.IsValid() {
		return nil, goerr.New("invalid notification type", goerr.V("type", typ))
	}

	return &Notification{
		ID:       types.NewNotificationID(),
		Messages: append([]string(nil), messages...),
		Type:     typ,
		Duration: duration,
		Action:   action,
	}, nil
}

// Sticky reports whether the notification stays until explicitly dismissed
func (n *Notification) Sticky() bool {
	return n.Duration <= 0
}

// ActionLabel returns the action label, defaulting to "Action"
func (n *Notification) ActionLabel() string {
	if n.Action == nil {
		return ""
	}
	if n.Action.Label == "" {
		return "Action"
	}
	return n.Action.Label
}
