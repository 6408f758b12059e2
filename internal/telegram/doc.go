// Package telegram formats the daily deals post and delivers it through the Telegram Bot API.
//
// The package sends messages with a single HTTP request per call using the standard
// library client. The request is never retried: only an HTTP 200 counts as delivered,
// every other outcome is returned as a typed error (ConfigError, APIError, TransportError).
//
// Authentication requires a bot token (from @BotFather) and the channel ID.
package telegram
