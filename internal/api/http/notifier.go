package http

import "log"

// Notifier is the transient-message collaborator: fire-and-forget,
// called after successful mutations. The UI renders these as snackbars.
type Notifier interface {
	Notify(msg string)
}

// LogNotifier writes notifications to the process log. Stand-in for a
// real push channel in single-binary deployments.
type LogNotifier struct{}

func (LogNotifier) Notify(msg string) { log.Printf("notify: %s", msg) }
