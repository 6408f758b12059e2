package notifier

import (
	"context"
	"fmt"
	"time"

	"github.com/jjexpress/deals-telegram/internal/logger"
)

// Sender is the part of telegram.Client the notifier needs
type Sender interface {
	SendMessage(ctx context.Context, text string) error
}

// TelegramNotifier posts messages to a Telegram channel
type TelegramNotifier struct {
	sender Sender
}

// NewTelegramNotifier creates a notifier around a Telegram client
func NewTelegramNotifier(sender Sender) *TelegramNotifier {
	return &TelegramNotifier{sender: sender}
}

// Notify sends msg in a single attempt and records how long it took
func (n *TelegramNotifier) Notify(ctx context.Context, msg string) error {
	start := time.Now()
	err := n.sender.SendMessage(ctx, msg)
	logger.RecordTiming("telegram.send", time.Since(start))

	if err != nil {
		logger.IncrCounter("messages.failed")
		return fmt.Errorf("posting to telegram: %w", err)
	}

	logger.IncrCounter("messages.sent")
	return nil
}
