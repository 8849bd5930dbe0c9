package renderers

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gbpkcompany/brief.job/data"
	"github.com/gbpkcompany/brief.job/enums"
)

// markers maps each known category to its decorative marker. Unknown
// categories fall back to defaultMarker rather than erroring, so a new
// event_type in the database degrades to neutral phrasing.
var markers = map[enums.Category]string{
	enums.CategoryFunding:          "💰",
	enums.CategoryLaunch:           "🚀",
	enums.CategoryRevenueMilestone: "📈",
	enums.CategoryNews:             "🗞️",
}

const defaultMarker = "✨"

var amountPrinter = message.NewPrinter(language.English)

// DateHeading formats the brief's date the way it appears in both the
// subject line and the body heading.
func DateHeading(day time.Time) string {
	return day.Format("Jan 02, 2006")
}

func Subject(day time.Time) string {
	return "Daily GBPK Brief — " + DateHeading(day)
}

// Digest renders the full HTML body for the given items and day. It is
// a pure function: same items and day, byte-identical output. An empty
// item list renders a fixed "No items today." document instead of an
// empty list container.
func Digest(items []data.DigestItem, day time.Time) string {
	if len(items) == 0 {
		return fmt.Sprintf("<h2>Daily GBPK Brief — %s</h2><p>No items today.</p>", DateHeading(day))
	}

	lines := make([]string, 0, len(items)+2)
	lines = append(lines, fmt.Sprintf(
		"<h2 style='font-family:Helvetica;'>Daily GBPK Brief — %s</h2><div style='font-family:Helvetica;line-height:1.6;'>",
		DateHeading(day)))

	for _, item := range items {
		lines = append(lines, fmt.Sprintf("<p style='margin:6px 0;'>%s</p>", itemLine(item)))
	}

	lines = append(lines, "</div>")
	return strings.Join(lines, "\n")
}

func itemLine(item data.DigestItem) string {
	marker := markerFor(item.Category)

	var text string
	switch {
	case item.Category == enums.CategoryFunding && item.Amount.Valid:
		text = fmt.Sprintf("%s <b>%s</b> raised %s", marker, item.Company, formatAmount(item.Amount.Int64))
		if title := stripCompany(item.Title, item.Company); title != "" {
			text += " " + title
		}
	case item.Category == enums.CategoryLaunch:
		text = fmt.Sprintf("%s <b>%s</b> launched %s", marker, item.Company, item.Title)
	case item.Category == enums.CategoryRevenueMilestone:
		text = fmt.Sprintf("%s <b>%s</b> reported %s", marker, item.Company, item.Title)
	default:
		text = fmt.Sprintf("%s <b>%s</b> %s", marker, item.Company, item.Title)
	}

	if item.Sector.Valid && item.Sector.String != "" {
		text += fmt.Sprintf(" (%s)", item.Sector.String)
	}

	// The source label always appears, linked only when a URL exists.
	if item.URL.Valid && item.URL.String != "" {
		text += fmt.Sprintf(" <a href='%s' style='color:#0073e6;text-decoration:none;'>[%s]</a>", item.URL.String, item.Source)
	} else {
		text += fmt.Sprintf(" [%s]", item.Source)
	}

	return text
}

func markerFor(category enums.Category) string {
	if marker, ok := markers[category]; ok {
		return marker
	}
	return defaultMarker
}

// formatAmount renders a monetary amount as a thousands-grouped
// dollar figure, e.g. 1500000 -> "$1,500,000".
func formatAmount(amount int64) string {
	return amountPrinter.Sprintf("$%d", amount)
}

// stripCompany removes the company name from the title when it appears
// verbatim, to avoid lines like "Acme raised $1M Acme raises $1M".
func stripCompany(title, company string) string {
	return strings.TrimSpace(strings.ReplaceAll(title, company, ""))
}
