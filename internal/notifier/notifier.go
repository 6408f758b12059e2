package notifier

import "context"

// Notifier defines the interface for delivering a formatted message
type Notifier interface {
	// Notify delivers msg once
	Notify(ctx context.Context, msg string) error
}
