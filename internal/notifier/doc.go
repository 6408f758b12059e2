// Package notifier delivers the assembled deals post.
//
// The Telegram notifier posts to the configured channel; the dry-run notifier
// prints the message, its plain-text preview and its length instead of sending it.
package notifier
