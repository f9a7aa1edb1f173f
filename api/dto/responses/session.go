// ABOUTME: Response DTOs for search and session endpoints
// ABOUTME: Mirrors the rendered page view with JSON field names for chat clients

package responses

// EntryResponse is one numbered result line
type EntryResponse struct {
	Position int    `json:"position" doc:"1-based position across the whole bucket"`
	URL      string `json:"url"`
	Domain   string `json:"domain"`
	Label    string `json:"label" doc:"Marketplace label, or the domain when none matched"`
}

// ControlResponse is an action a client may render as a button
type ControlResponse struct {
	Action string `json:"action" enum:"show_general,show_marketplace,next,prev,export"`
	Label  string `json:"label"`
}

// ViewResponse is one page of a session bucket
type ViewResponse struct {
	SessionID  string            `json:"session_id"`
	Mode       string            `json:"mode" enum:"general,marketplace"`
	Page       int               `json:"page" doc:"Zero-based page index"`
	TotalPages int               `json:"total_pages"`
	Total      int               `json:"total"`
	Empty      bool              `json:"empty"`
	HasPrev    bool              `json:"has_prev"`
	HasNext    bool              `json:"has_next"`
	Entries    []EntryResponse   `json:"entries"`
	Controls   []ControlResponse `json:"controls"`
	HTML       string            `json:"html" doc:"Chat-ready rendering of this page"`
}

// SearchResponse is the result of an image search
type SearchResponse struct {
	Status    string        `json:"status" enum:"ok,no_results,search_failed"`
	Message   string        `json:"message,omitempty"`
	SessionID string        `json:"session_id,omitempty"`
	View      *ViewResponse `json:"view,omitempty"`
}
