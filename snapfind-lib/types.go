// ABOUTME: Public types returned by the Snapfind library
// ABOUTME: Decouples library callers from the core domain package

package snapfind

import "snapfind-api/core/domain"

// Action is a navigation or export request on a session
type Action string

const (
	ShowGeneral     Action = Action(domain.ActionShowGeneral)
	ShowMarketplace Action = Action(domain.ActionShowMarketplace)
	Next            Action = Action(domain.ActionNext)
	Prev            Action = Action(domain.ActionPrev)
	Export          Action = Action(domain.ActionExport)
)

// Entry is one numbered result line
type Entry struct {
	Position int
	URL      string
	Domain   string
	Label    string
}

// Control is an action a caller may offer as a button
type Control struct {
	Action Action
	Label  string
}

// View is one page of a session bucket
type View struct {
	SessionID  string
	Mode       string
	Page       int
	TotalPages int
	Total      int
	Empty      bool
	HasPrev    bool
	HasNext    bool
	Entries    []Entry
	Controls   []Control

	// HTML is the chat-ready rendering of the page
	HTML string
}

// SearchResult is the outcome of one image search
type SearchResult struct {
	// Status is ok, no_results or search_failed
	Status    string
	Message   string
	SessionID string

	// View is the first page; nil when the search failed
	View *View
}

// File is an exported spreadsheet
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

func viewToPublic(v domain.View, html string) *View {
	view := &View{
		SessionID:  v.SessionID,
		Mode:       string(v.Mode),
		Page:       v.Page,
		TotalPages: v.TotalPages,
		Total:      v.Total,
		Empty:      v.Empty,
		HasPrev:    v.HasPrev,
		HasNext:    v.HasNext,
		Entries:    make([]Entry, len(v.Entries)),
		Controls:   make([]Control, len(v.Controls)),
		HTML:       html,
	}
	for i, e := range v.Entries {
		view.Entries[i] = Entry{Position: e.Position, URL: e.URL, Domain: e.Domain, Label: e.Label}
	}
	for i, c := range v.Controls {
		view.Controls[i] = Control{Action: Action(c.Action), Label: c.Label}
	}
	return view
}
