// ABOUTME: Mappers for converting session views and search outcomes to API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"snapfind-api/api/dto/responses"
	"snapfind-api/core/domain"
	"snapfind-api/core/presenter"
)

// ToViewResponse converts a rendered view to its DTO
func ToViewResponse(view domain.View) *responses.ViewResponse {
	response := &responses.ViewResponse{
		SessionID:  view.SessionID,
		Mode:       string(view.Mode),
		Page:       view.Page,
		TotalPages: view.TotalPages,
		Total:      view.Total,
		Empty:      view.Empty,
		HasPrev:    view.HasPrev,
		HasNext:    view.HasNext,
		Entries:    make([]responses.EntryResponse, 0, len(view.Entries)),
		Controls:   make([]responses.ControlResponse, 0, len(view.Controls)),
		HTML:       presenter.FormatHTML(view),
	}

	for _, e := range view.Entries {
		response.Entries = append(response.Entries, responses.EntryResponse{
			Position: e.Position,
			URL:      e.URL,
			Domain:   e.Domain,
			Label:    e.Label,
		})
	}
	for _, c := range view.Controls {
		response.Controls = append(response.Controls, responses.ControlResponse{
			Action: string(c.Action),
			Label:  c.Label,
		})
	}
	return response
}

// ToSearchResponse converts a search outcome and its first view
func ToSearchResponse(outcome *domain.SearchOutcome, view *domain.View) *responses.SearchResponse {
	response := &responses.SearchResponse{
		Status:    string(outcome.Outcome),
		Message:   presenter.Message(outcome.Outcome),
		SessionID: outcome.SessionID,
	}
	if view != nil {
		response.View = ToViewResponse(*view)
	}
	return response
}
