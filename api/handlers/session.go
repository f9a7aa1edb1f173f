// ABOUTME: Session handlers for the Huma API
// ABOUTME: Page navigation, mode switching and spreadsheet export for stored searches

package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"snapfind-api/api/dto/mappers"
	"snapfind-api/api/dto/responses"
	"snapfind-api/core/domain"
	"snapfind-api/core/export"
)

// Exporter renders a session into a downloadable file
type Exporter interface {
	Export(ctx context.Context, sessionID string) (*export.File, error)
}

// SessionHandler handles session browsing requests
type SessionHandler struct {
	presenter SessionPresenter
	exporter  Exporter
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(presenter SessionPresenter, exporter Exporter) *SessionHandler {
	return &SessionHandler{
		presenter: presenter,
		exporter:  exporter,
	}
}

// RegisterRoutes registers all session routes
func (h *SessionHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getSession",
		Method:      http.MethodGet,
		Path:        "/v1/sessions/{id}",
		Summary:     "Show the current page of a session",
		Tags:        []string{"Sessions"},
	}, h.GetSession)

	huma.Register(api, huma.Operation{
		OperationID: "applySessionAction",
		Method:      http.MethodPost,
		Path:        "/v1/sessions/{id}/actions/{action}",
		Summary:     "Navigate or switch the view of a session",
		Tags:        []string{"Sessions"},
	}, h.ApplyAction)

	huma.Register(api, huma.Operation{
		OperationID: "exportSession",
		Method:      http.MethodGet,
		Path:        "/v1/sessions/{id}/export",
		Summary:     "Download both result buckets as a spreadsheet",
		Tags:        []string{"Sessions"},
	}, h.Export)

	huma.Register(api, huma.Operation{
		OperationID: "getLatestSession",
		Method:      http.MethodGet,
		Path:        "/v1/conversations/{owner}/session",
		Summary:     "Show the most recent session of a conversation",
		Tags:        []string{"Sessions"},
	}, h.GetLatest)
}

// SessionInput identifies a session
type SessionInput struct {
	ID string `path:"id" maxLength:"64" doc:"Session id"`
}

// ActionInput identifies a session and the action to apply
type ActionInput struct {
	ID     string `path:"id" maxLength:"64" doc:"Session id"`
	Action string `path:"action" enum:"show_general,show_marketplace,next,prev,export" doc:"Action to apply"`
}

// LatestInput identifies a conversation
type LatestInput struct {
	Owner string `path:"owner" maxLength:"128" doc:"Conversation id"`
}

// ViewOutput wraps a rendered view
type ViewOutput struct {
	Body responses.ViewResponse
}

// ExportOutput is a raw spreadsheet attachment
type ExportOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

// GetSession handles GET /v1/sessions/{id}
func (h *SessionHandler) GetSession(ctx context.Context, input *SessionInput) (*ViewOutput, error) {
	view, err := h.presenter.Show(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &ViewOutput{Body: *mappers.ToViewResponse(view)}, nil
}

// ApplyAction handles POST /v1/sessions/{id}/actions/{action}
func (h *SessionHandler) ApplyAction(ctx context.Context, input *ActionInput) (*ViewOutput, error) {
	view, err := h.presenter.Apply(ctx, input.ID, domain.Action(input.Action))
	if err != nil {
		return nil, toHumaError(err)
	}
	return &ViewOutput{Body: *mappers.ToViewResponse(view)}, nil
}

// GetLatest handles GET /v1/conversations/{owner}/session
func (h *SessionHandler) GetLatest(ctx context.Context, input *LatestInput) (*ViewOutput, error) {
	view, err := h.presenter.ShowLatest(ctx, input.Owner)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &ViewOutput{Body: *mappers.ToViewResponse(view)}, nil
}

// Export handles GET /v1/sessions/{id}/export
func (h *SessionHandler) Export(ctx context.Context, input *SessionInput) (*ExportOutput, error) {
	file, err := h.exporter.Export(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &ExportOutput{
		ContentType:        file.ContentType,
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", file.Name),
		Body:               file.Data,
	}, nil
}
