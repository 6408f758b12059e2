package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jjexpress/deals-telegram/internal/config"
	"github.com/jjexpress/deals-telegram/internal/deals"
	"github.com/jjexpress/deals-telegram/internal/logger"
	"github.com/jjexpress/deals-telegram/internal/notifier"
	"github.com/jjexpress/deals-telegram/internal/telegram"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

type options struct {
	envFile     string
	catalogFile string
	format      string
	logLevel    string
	maxLinks    int
	dryRun      bool
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "deals-telegram",
		Short: "Post today's deal links to the Telegram channel",
		Long: `Builds the daily deals post (one block of links per retailer, stamped with
today's date) and sends it to the configured Telegram channel in a single request.

Credentials come from TELEGRAM_BOT_TOKEN and TELEGRAM_CHANNEL_ID, read from the
environment or a .env file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	// Define flags
	cmd.Flags().StringVar(&opts.envFile, "env-file", "", "Path to a .env file (default: ./.env if present)")
	cmd.Flags().StringVar(&opts.catalogFile, "catalog", "", "JSON catalog file replacing the built-in deals (or env: DEALS_CATALOG_FILE)")
	cmd.Flags().IntVar(&opts.maxLinks, "max-links", 4, "Maximum links per store (or env: MAX_LINKS_PER_STORE)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print the message without sending")
	cmd.Flags().StringVar(&opts.format, "format", "text", "Dry-run output format: text or json")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (or env: LOG_LEVEL)")

	return cmd
}

// run is the main command logic
func run(cmd *cobra.Command, opts *options) error {
	cfg, err := config.Load(opts.envFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	levelName := cfg.LogLevel
	if opts.logLevel != "" {
		levelName = opts.logLevel
	}
	level, err := logger.ParseLevel(levelName)
	if err != nil {
		return err
	}
	logger.SetDefault(logger.New(level, cmd.ErrOrStderr()))
	defer func() { _ = logger.Sync() }()

	maxLinks := cfg.Deals.MaxLinksPerStore
	if cmd.Flags().Changed("max-links") {
		if opts.maxLinks < 0 {
			return fmt.Errorf("--max-links must be >= 0, got %d", opts.maxLinks)
		}
		maxLinks = opts.maxLinks
	}

	catalogFile := cfg.Deals.CatalogFile
	if opts.catalogFile != "" {
		catalogFile = opts.catalogFile
	}

	catalogs, err := deals.Load(catalogFile)
	if err != nil {
		return fmt.Errorf("loading catalogs: %w", err)
	}

	msg := telegram.FormatDealsMessage(catalogs, maxLinks, time.Now())

	logger.Debug("Message assembled", logger.Fields{
		"catalogs":  len(catalogs),
		"deals":     catalogs.Len(),
		"max_links": maxLinks,
		"bytes":     len(msg),
	})

	var n notifier.Notifier
	if opts.dryRun {
		format, err := notifier.ParseFormat(opts.format)
		if err != nil {
			return err
		}
		n = notifier.NewDryRunNotifier(cmd.OutOrStdout(), format)
	} else {
		if length, err := telegram.VisibleLength(msg); err == nil && length > telegram.MaxMessageLength {
			logger.Warn("Message exceeds Telegram length limit", logger.Fields{
				"length": length,
				"limit":  telegram.MaxMessageLength,
			})
		}

		client := telegram.NewClient(
			cfg.Telegram.Credentials(),
			telegram.WithBaseURL(cfg.Telegram.APIURL),
			telegram.WithTimeout(cfg.Telegram.Timeout),
		)
		n = notifier.NewTelegramNotifier(client)
	}

	if err := n.Notify(cmd.Context(), msg); err != nil {
		logger.Error("Deals post failed", logger.MetricsFields(), err)
		return err
	}

	fields := logger.MetricsFields()
	fields["dry_run"] = opts.dryRun
	fields["channel"] = cfg.Telegram.ChannelID
	logger.Info("Deals post finished", fields)

	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
