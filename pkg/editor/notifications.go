package editor

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgchart/pkg/domain/model"
	"github.com/secmon-lab/orgchart/pkg/domain/types"
)

// NotificationsOption configures Notifications
type NotificationsOption func(*Notifications)

// WithClock replaces the clock used for auto-dismiss timers
func WithClock(clock Clock) NotificationsOption {
	return func(n *Notifications) {
		n.clock = clock
	}
}

// Notifications holds at most one visible notification. Showing a new one
// replaces the current one and cancels its auto-dismiss timer.
type Notifications struct {
	mu          sync.Mutex
	clock       Clock
	current     *model.Notification
	timer       Timer
	subscribers []func(*model.Notification)
}

// NewNotifications creates an empty notification slot
func NewNotifications(opts ...NotificationsOption) *Notifications {
	n := &Notifications{clock: realClock{}}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Show replaces the current notification. A duration of zero or less keeps
// it until dismissed.
func (n *Notifications) Show(messages []string, typ types.NotificationType, duration time.Duration, action *model.NotificationAction) (types.NotificationID, error) {
	note, err := model.NewNotification(messages, typ, duration, action)
	if err != nil {
		return "", goerr.Wrap(err, "failed to show notification")
	}

	n.mu.Lock()
	n.stopTimer()
	n.current = note
	if !note.Sticky() {
		id := note.ID
		n.timer = n.clock.AfterFunc(duration, func() {
			n.Dismiss(id)
		})
	}
	subs := n.snapshotSubscribers()
	n.mu.Unlock()

	publish(subs, note)
	return note.ID, nil
}

// Dismiss clears the notification if id is the current one. Unknown or
// already dismissed ids are ignored.
func (n *Notifications) Dismiss(id types.NotificationID) {
	n.mu.Lock()
	if n.current == nil || n.current.ID != id {
		n.mu.Unlock()
		return
	}
	n.stopTimer()
	n.current = nil
	subs := n.snapshotSubscribers()
	n.mu.Unlock()

	publish(subs, nil)
}

// Current returns the visible notification, or nil
func (n *Notifications) Current() *model.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Trigger runs the action of the current notification identified by id and
// closes it. It reports whether an action ran.
func (n *Notifications) Trigger(ctx context.Context, id types.NotificationID) bool {
	n.mu.Lock()
	note := n.current
	if note == nil || note.ID != id || note.Action == nil || note.Action.Run == nil {
		n.mu.Unlock()
		return false
	}
	n.mu.Unlock()

	n.Dismiss(id)
	note.Action.Run(ctx)
	return true
}

// Subscribe registers fn to be called with the new current notification
// (nil once cleared) after every change
func (n *Notifications) Subscribe(fn func(*model.Notification)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subscribers = append(n.subscribers, fn)
}

// ShowOption adjusts the typed helpers
type ShowOption func(*showConfig)

type showConfig struct {
	duration time.Duration
	action   *model.NotificationAction
}

// WithDuration overrides the default display duration
func WithDuration(d time.Duration) ShowOption {
	return func(c *showConfig) {
		c.duration = d
	}
}

// WithAction attaches a labelled action
func WithAction(label string, run func(ctx context.Context)) ShowOption {
	return func(c *showConfig) {
		c.action = &model.NotificationAction{Label: label, Run: run}
	}
}

// Success shows a success notification
func (n *Notifications) Success(message string, opts ...ShowOption) types.NotificationID {
	return n.showTyped(message, types.NotificationSuccess, opts)
}

// Error shows an error notification
func (n *Notifications) Error(message string, opts ...ShowOption) types.NotificationID {
	return n.showTyped(message, types.NotificationError, opts)
}

// Info shows an informational notification
func (n *Notifications) Info(message string, opts ...ShowOption) types.NotificationID {
	return n.showTyped(message, types.NotificationInfo, opts)
}

// Warning shows a warning notification
func (n *Notifications) Warning(message string, opts ...ShowOption) types.NotificationID {
	return n.showTyped(message, types.NotificationWarning, opts)
}

func (n *Notifications) showTyped(message string, typ types.NotificationType, opts []ShowOption) types.NotificationID {
	cfg := &showConfig{duration: model.DefaultNotificationDuration}
	for _, opt := range opts {
		opt(cfg)
	}

	// Typed helpers always pass one message and a valid type
	id, _ := n.Show([]string{message}, typ, cfg.duration, cfg.action)
	return id
}

// stopTimer must be called with mu held
func (n *Notifications) stopTimer() {
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}

// snapshotSubscribers must be called with mu held
func (n *Notifications) snapshotSubscribers() []func(*model.Notification) {
	return slices.Clone(n.subscribers)
}

func publish(subs []func(*model.Notification), note *model.Notification) {
	for _, fn := range subs {
		fn(note)
	}
}
