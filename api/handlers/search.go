// ABOUTME: Search handler for the Huma API
// ABOUTME: Accepts raw image bytes and returns the first page of the new session

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"snapfind-api/api/dto/mappers"
	"snapfind-api/api/dto/responses"
	"snapfind-api/core/domain"
	"snapfind-api/core/presenter"
)

// SearchService runs reverse image searches
type SearchService interface {
	Search(ctx context.Context, ownerID string, image []byte) (*domain.SearchOutcome, error)
}

// SessionPresenter renders and navigates stored sessions
type SessionPresenter interface {
	Show(ctx context.Context, sessionID string) (domain.View, error)
	ShowLatest(ctx context.Context, ownerID string) (domain.View, error)
	Apply(ctx context.Context, sessionID string, action domain.Action) (domain.View, error)
}

// SearchHandler handles image search requests
type SearchHandler struct {
	searchService SearchService
	presenter     SessionPresenter
	maxBodyBytes  int64
}

// NewSearchHandler creates a new search handler. maxImageBytes bounds the request body.
func NewSearchHandler(searchService SearchService, presenter SessionPresenter, maxImageBytes int) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		presenter:     presenter,
		maxBodyBytes:  int64(maxImageBytes),
	}
}

// RegisterRoutes registers the search route
func (h *SearchHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:  "searchImage",
		Method:       http.MethodPost,
		Path:         "/v1/search",
		Summary:      "Search the web for an image",
		Description:  "Uploads the image to the reverse image search provider and stores a browsable session of the pages where it appears",
		Tags:         []string{"Search"},
		MaxBodyBytes: h.maxBodyBytes,
	}, h.Search)
}

// SearchInput carries the raw image bytes
type SearchInput struct {
	ConversationID string `header:"X-Conversation-ID" maxLength:"128" doc:"Chat or conversation id the session belongs to"`
	RawBody        []byte
}

// SearchOutput defines the output for the Search operation
type SearchOutput struct {
	Body responses.SearchResponse
}

// Search handles POST /v1/search
func (h *SearchHandler) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	outcome, err := h.searchService.Search(ctx, input.ConversationID, input.RawBody)
	if err != nil {
		return nil, toHumaError(err)
	}
	if outcome.Outcome == domain.OutcomeSearchFailed {
		return nil, huma.Error502BadGateway(presenter.Message(domain.OutcomeSearchFailed))
	}

	var view *domain.View
	if outcome.SessionID != "" {
		v, err := h.presenter.Show(ctx, outcome.SessionID)
		if err != nil {
			return nil, toHumaError(err)
		}
		view = &v
	}

	return &SearchOutput{Body: *mappers.ToSearchResponse(outcome, view)}, nil
}
