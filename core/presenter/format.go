// ABOUTME: User-facing messages and chat HTML rendering of session views
// ABOUTME: Numbered link lines with marketplace labels and a page header

package presenter

import (
	"fmt"
	"html"
	"strings"

	"snapfind-api/core/domain"
)

// Message returns the user-facing text for an outcome
func Message(outcome domain.Outcome) string {
	switch outcome {
	case domain.OutcomeNoResults:
		return "No similar pages were found for this image."
	case domain.OutcomeSearchFailed:
		return "The search failed, please try again later."
	case domain.OutcomeSessionExpired:
		return "This search is no longer available, please send the image again."
	default:
		return ""
	}
}

// FormatHTML renders a view as chat-ready HTML, one numbered link per line
func FormatHTML(view domain.View) string {
	if view.Empty {
		if view.Mode == domain.ModeMarketplace {
			return "🛒 No marketplace results for this image."
		}
		return Message(domain.OutcomeNoResults)
	}

	var b strings.Builder
	if view.Mode == domain.ModeMarketplace {
		fmt.Fprintf(&b, "🛒 Marketplaces %d/%d\n", view.Page+1, view.TotalPages)
	} else {
		fmt.Fprintf(&b, "🖼 Page %d/%d\n", view.Page+1, view.TotalPages)
	}

	for i, e := range view.Entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		escaped := html.EscapeString(e.URL)
		fmt.Fprintf(&b, "%d. 🔗 <a href=\"%s\">%s</a>", e.Position, escaped, escaped)
		if view.Mode == domain.ModeMarketplace {
			fmt.Fprintf(&b, " (%s)", html.EscapeString(e.Label))
		}
	}
	return b.String()
}
