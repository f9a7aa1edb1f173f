// ABOUTME: Rendered page view of a session bucket
// ABOUTME: Carries the visible entries and the controls a client may offer

package domain

// ViewEntry is one numbered line on a rendered page.
type ViewEntry struct {
	// Position is the 1-based index across the whole bucket
	Position int
	URL      string
	Domain   string

	// Label is the marketplace label, or the domain when none matched
	Label string
}

// Control is an action the presentation layer may expose as a button.
type Control struct {
	Action Action
	Label  string
}

// View is a fixed-size window over one bucket of a session.
type View struct {
	SessionID string
	Mode      ViewMode

	// Page is zero-based
	Page       int
	TotalPages int
	Total      int
	Entries    []ViewEntry

	// Empty marks the distinguished no-results view
	Empty bool

	HasPrev  bool
	HasNext  bool
	Controls []Control
}
