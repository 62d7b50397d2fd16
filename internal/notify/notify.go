// Package notify provides cross-platform desktop notification support.
// It uses native notification mechanisms on macOS (osascript) and Linux (notify-send).
package notify

// Notification is a single desktop notification. Tag identifies a logical
// stream of notifications; platforms that support it replace an on-screen
// notification carrying the same tag instead of stacking a new one.
type Notification struct {
	Title string
	Body  string
	Tag   string

	// RequireInteraction asks the notification daemon to keep the
	// notification on screen until dismissed. Best effort.
	RequireInteraction bool
}

// Notifier defines the interface for sending desktop notifications.
type Notifier interface {
	// Send dispatches a notification to the desktop.
	Send(n Notification) error

	// IsSupported returns true if notifications are supported on this platform.
	IsSupported() bool
}

type noopNotifier struct{}

func (n *noopNotifier) Send(Notification) error {
	return nil
}

func (n *noopNotifier) IsSupported() bool {
	return false
}

// New creates a platform-specific notifier.
// Returns a no-op notifier if the platform doesn't support notifications.
func New() Notifier {
	n := newPlatformNotifier()
	if n == nil || !n.IsSupported() {
		return &noopNotifier{}
	}
	return n
}
