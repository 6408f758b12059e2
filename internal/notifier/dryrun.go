package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jjexpress/deals-telegram/internal/telegram"
)

// OutputFormat specifies the dry-run output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// ParseFormat validates a format name
func ParseFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(s); f {
	case FormatText, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be 'text' or 'json')", s)
	}
}

// DryRunResult is what a dry run reports for the message
type DryRunResult struct {
	Text      string `json:"text"`
	Preview   string `json:"preview"`
	Length    int    `json:"length"`
	OverLimit bool   `json:"over_limit"`
}

// DryRunNotifier prints what would be posted without contacting Telegram
type DryRunNotifier struct {
	out    io.Writer
	format OutputFormat
}

// NewDryRunNotifier creates a dry-run notifier writing to out
func NewDryRunNotifier(out io.Writer, format OutputFormat) *DryRunNotifier {
	return &DryRunNotifier{out: out, format: format}
}

// Notify prints the message that would be sent
func (n *DryRunNotifier) Notify(_ context.Context, msg string) error {
	preview, err := telegram.PlainText(msg)
	if err != nil {
		return err
	}
	length, err := telegram.VisibleLength(msg)
	if err != nil {
		return err
	}

	result := &DryRunResult{
		Text:      msg,
		Preview:   preview,
		Length:    length,
		OverLimit: length > telegram.MaxMessageLength,
	}

	switch n.format {
	case FormatJSON:
		return writeJSON(n.out, result)
	case FormatText, "":
		return writeText(n.out, result)
	default:
		return fmt.Errorf("unknown format: %s", n.format)
	}
}

func writeJSON(w io.Writer, result *DryRunResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(result)
}

func writeText(w io.Writer, result *DryRunResult) error {
	fmt.Fprintf(w, "DRY RUN MODE - Would send 1 message:\n\n")
	fmt.Fprintln(w, "--- Message ---")
	fmt.Fprintln(w, result.Text)
	fmt.Fprintf(w, "\n(Length: %d characters)\n", result.Length)
	if result.OverLimit {
		fmt.Fprintf(w, "WARNING: exceeds Telegram limit of %d characters\n", telegram.MaxMessageLength)
	}
	fmt.Fprintln(w, "\n--- Preview ---")
	_, err := fmt.Fprintln(w, result.Preview)
	return err
}
