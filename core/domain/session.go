// ABOUTME: Search session domain model with per-mode page cursors
// ABOUTME: Implements the pagination state machine used by the presenter

package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ViewMode selects which result bucket a session is showing.
type ViewMode string

const (
	ModeGeneral     ViewMode = "general"
	ModeMarketplace ViewMode = "marketplace"
)

// Valid reports whether m is a known view mode.
func (m ViewMode) Valid() bool {
	return m == ModeGeneral || m == ModeMarketplace
}

// Action is a named command a client can send for a session.
type Action string

const (
	ActionShowGeneral     Action = "show_general"
	ActionShowMarketplace Action = "show_marketplace"
	ActionNext            Action = "next"
	ActionPrev            Action = "prev"
	ActionExport          Action = "export"
)

// ParseAction validates a raw action name.
func ParseAction(s string) (Action, error) {
	switch a := Action(s); a {
	case ActionShowGeneral, ActionShowMarketplace, ActionNext, ActionPrev, ActionExport:
		return a, nil
	}
	return "", fmt.Errorf("unknown action %q", s)
}

// PageCursors holds an independent page index for each view mode.
type PageCursors struct {
	General     int `json:"general"`
	Marketplace int `json:"marketplace"`
}

// SearchSession is the stored state of one search a user is paging through.
type SearchSession struct {
	// ID is the unique identifier (UUID) of the session
	ID string `json:"id"`

	// OwnerID is the originating conversation, if any
	OwnerID string `json:"owner_id,omitempty"`

	// Results are the categorized search results
	Results ResultSet `json:"results"`

	// Mode is the view currently shown
	Mode ViewMode `json:"mode"`

	// Pages are the per-mode cursors
	Pages PageCursors `json:"pages"`

	// CreatedAt is when the session was created
	CreatedAt time.Time `json:"created_at"`
}

// NewSearchSession creates a session showing the general bucket from page 0.
func NewSearchSession(ownerID string, results ResultSet) *SearchSession {
	return &SearchSession{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Results:   results,
		Mode:      ModeGeneral,
		CreatedAt: time.Now().UTC(),
	}
}

// Page returns the cursor of the given mode.
func (s *SearchSession) Page(mode ViewMode) int {
	if mode == ModeMarketplace {
		return s.Pages.Marketplace
	}
	return s.Pages.General
}

func (s *SearchSession) setPage(mode ViewMode, page int) {
	if mode == ModeMarketplace {
		s.Pages.Marketplace = page
		return
	}
	s.Pages.General = page
}

// Next advances the current mode's cursor if another page exists.
func (s *SearchSession) Next(pageSize int) {
	page := s.Page(s.Mode)
	if HasNextPage(page, pageSize, len(s.Results.Bucket(s.Mode))) {
		s.setPage(s.Mode, page+1)
	}
}

// Prev moves the current mode's cursor back, never below zero.
func (s *SearchSession) Prev() {
	if page := s.Page(s.Mode); page > 0 {
		s.setPage(s.Mode, page-1)
	}
}

// SwitchMode changes the visible bucket; both cursors are kept.
func (s *SearchSession) SwitchMode(mode ViewMode) {
	if mode.Valid() {
		s.Mode = mode
	}
}

// Apply runs a navigation or mode action. Export leaves the state untouched.
func (s *SearchSession) Apply(action Action, pageSize int) {
	switch action {
	case ActionNext:
		s.Next(pageSize)
	case ActionPrev:
		s.Prev()
	case ActionShowGeneral:
		s.SwitchMode(ModeGeneral)
	case ActionShowMarketplace:
		s.SwitchMode(ModeMarketplace)
	}
}

// HasNextPage reports whether a page after page exists for total items.
func HasNextPage(page, pageSize, total int) bool {
	return pageSize > 0 && (page+1)*pageSize < total
}

// TotalPages returns ceil(total/pageSize), zero for an empty bucket.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total-1)/pageSize + 1
}
