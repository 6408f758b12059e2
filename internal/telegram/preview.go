package telegram

import (
	"fmt"
	"html"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// PlainText renders an HTML message the way a reader sees it, with each link
// expanded to "name (url)". Used for dry runs and length checks.
func PlainText(msg string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(msg))
	if err != nil {
		return "", fmt.Errorf("parsing message HTML: %w", err)
	}

	doc.Find("a").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		s.ReplaceWithHtml(html.EscapeString(fmt.Sprintf("%s (%s)", s.Text(), href)))
	})

	return doc.Find("body").Text(), nil
}

// VisibleLength counts the characters Telegram counts against MaxMessageLength
func VisibleLength(msg string) (int, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(msg))
	if err != nil {
		return 0, fmt.Errorf("parsing message HTML: %w", err)
	}
	return utf8.RuneCountInString(doc.Find("body").Text()), nil
}
