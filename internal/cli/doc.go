// Package cli implements the command-line interface for deals-telegram.
//
// The cli package provides the Cobra-based root command. One invocation loads
// configuration, builds the deal catalogs, formats the post and hands it to a
// notifier: the Telegram channel, or stdout in dry-run mode. Scheduling is left
// to whatever runs the binary.
package cli
