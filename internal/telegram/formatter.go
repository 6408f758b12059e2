package telegram

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/jjexpress/deals-telegram/internal/deals"
)

const (
	// DateLayout is the header date format (YYYY-MM-DD)
	DateLayout = "2006-01-02"

	// MaxMessageLength is the Bot API limit for a message text after entity parsing
	MaxMessageLength = 4096

	// Footer closes every post with the call to action
	Footer = "\n📲 Para cotizar o pedir: escríbenos por WhatsApp/Instagram (mismos canales)."
)

// FormatHeader renders the greeting with the date of now
func FormatHeader(now time.Time) string {
	var msg strings.Builder

	msg.WriteString("🔥 <b>OFERTAS DEL DÍA – JJ EXPRESS</b>\n")
	msg.WriteString(fmt.Sprintf("📅 %s\n\n", now.Format(DateLayout)))
	msg.WriteString("Compra en USA y tráelo con nosotros 📦\n")

	return msg.String()
}

// FormatBlock renders a bold title followed by one bullet link per deal,
// showing at most maxLinks deals in catalog order.
func FormatBlock(title string, items []deals.Deal, maxLinks int) string {
	n := min(maxLinks, len(items))
	if n < 0 {
		n = 0
	}

	lines := make([]string, 0, n+1)
	lines = append(lines, fmt.Sprintf("<b>%s</b>", html.EscapeString(title)))
	for _, d := range items[:n] {
		lines = append(lines, fmt.Sprintf("• <a href=\"%s\">%s</a>", html.EscapeString(d.URL), html.EscapeString(d.Name)))
	}

	return strings.Join(lines, "\n")
}

// FormatDealsMessage assembles the full post: header, one block per catalog, footer
func FormatDealsMessage(catalogs deals.Catalogs, maxLinks int, now time.Time) string {
	parts := make([]string, 0, len(catalogs)+1)
	for _, c := range catalogs {
		parts = append(parts, FormatBlock(c.Title, c.Deals, maxLinks))
	}
	parts = append(parts, Footer)

	return FormatHeader(now) + "\n\n" + strings.Join(parts, "\n\n")
}
