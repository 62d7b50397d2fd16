//go:build linux

// Package notify provides desktop notification support.
// This file implements Linux notifications using notify-send.
package notify

import (
	"fmt"
	"os/exec"
)

// linuxNotifier implements notifications for Linux using notify-send.
type linuxNotifier struct{}

// newPlatformNotifier creates the Linux notifier.
func newPlatformNotifier() Notifier {
	return &linuxNotifier{}
}

// IsSupported returns true if notify-send is available.
func (n *linuxNotifier) IsSupported() bool {
	_, err := exec.LookPath("notify-send")
	return err == nil
}

// Send sends a Linux notification using notify-send.
func (n *linuxNotifier) Send(notification Notification) error {
	args := []string{"--app-name=fencing"}

	// The synchronous hint makes same-tag notifications replace each other
	// on daemons that honor it.
	if notification.Tag != "" {
		args = append(args, "--hint=string:x-canonical-private-synchronous:"+notification.Tag)
	}
	if notification.RequireInteraction {
		args = append(args, "--urgency=critical")
	} else {
		args = append(args, "--urgency=normal")
	}
	args = append(args, notification.Title, notification.Body)

	cmd := exec.Command("notify-send", args...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("notify-send failed: %w", err)
	}

	return nil
}
