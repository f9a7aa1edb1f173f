// ABOUTME: Pagination presenter rendering fixed-size windows over session buckets
// ABOUTME: Resolves session actions and decides which controls a client may show

package presenter

import (
	"context"

	"snapfind-api/core/domain"
	coreerrors "snapfind-api/core/errors"
	"snapfind-api/core/interfaces"
)

// DefaultPageSize is the number of results shown per page
const DefaultPageSize = 10

// Control labels
const (
	LabelPrev        = "⬅️ Back"
	LabelNext        = "Next ➡️"
	LabelGeneral     = "General results"
	LabelMarketplace = "Marketplaces"
	LabelExport      = "💾 Excel"
)

// Presenter renders session views and applies navigation actions
type Presenter struct {
	deps     interfaces.Dependencies
	store    interfaces.SessionStore
	registry domain.MarketplaceRegistry
	pageSize int
}

// New creates a presenter. A non-positive pageSize uses DefaultPageSize.
func New(deps interfaces.Dependencies, store interfaces.SessionStore, registry domain.MarketplaceRegistry, pageSize int) *Presenter {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Presenter{
		deps:     deps,
		store:    store,
		registry: registry,
		pageSize: pageSize,
	}
}

// PageSize returns the configured page size
func (p *Presenter) PageSize() int {
	return p.pageSize
}

// Show renders the current view of a session
func (p *Presenter) Show(ctx context.Context, sessionID string) (domain.View, error) {
	session, err := p.store.Get(ctx, sessionID)
	if err != nil {
		return domain.View{}, err
	}
	return p.Render(session), nil
}

// ShowLatest renders the most recent session of a conversation
func (p *Presenter) ShowLatest(ctx context.Context, ownerID string) (domain.View, error) {
	id, err := p.store.Latest(ctx, ownerID)
	if err != nil {
		return domain.View{}, err
	}
	return p.Show(ctx, id)
}

// Apply runs an action against a session and renders the resulting view.
// Export is a read and leaves the stored session untouched; the export
// service records it when the file is produced.
func (p *Presenter) Apply(ctx context.Context, sessionID string, action domain.Action) (domain.View, error) {
	if _, err := domain.ParseAction(string(action)); err != nil {
		return domain.View{}, &coreerrors.ValidationError{Field: "action", Message: err.Error()}
	}
	if action == domain.ActionExport {
		return p.Show(ctx, sessionID)
	}
	if p.deps.Metrics != nil {
		p.deps.Metrics.SessionAction(action)
	}

	session, err := p.store.Update(ctx, sessionID, func(s *domain.SearchSession) {
		s.Apply(action, p.pageSize)
	})
	if err != nil {
		return domain.View{}, err
	}

	if p.deps.Logger != nil {
		p.deps.Logger.Debug("Session action applied", map[string]interface{}{
			"session_id": sessionID,
			"action":     string(action),
			"mode":       string(session.Mode),
			"page":       session.Page(session.Mode),
		})
	}
	return p.Render(session), nil
}

// Render builds the view for the session's current mode and page.
// A stored page beyond the last one is clamped.
func (p *Presenter) Render(session *domain.SearchSession) domain.View {
	mode := session.Mode
	if !mode.Valid() {
		mode = domain.ModeGeneral
	}
	entries := session.Results.Bucket(mode)
	total := len(entries)
	totalPages := domain.TotalPages(total, p.pageSize)

	page := session.Page(mode)
	if page >= totalPages {
		page = totalPages - 1
	}
	if page < 0 {
		page = 0
	}

	view := domain.View{
		SessionID:  session.ID,
		Mode:       mode,
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
		Empty:      total == 0,
	}
	if !view.Empty {
		view.HasPrev = page > 0
		view.HasNext = domain.HasNextPage(page, p.pageSize, total)
		start := page * p.pageSize
		for i, e := range Paginate(entries, page, p.pageSize) {
			view.Entries = append(view.Entries, domain.ViewEntry{
				Position: start + i + 1,
				URL:      e.URL,
				Domain:   e.Domain,
				Label:    p.registry.Label(e.Domain),
			})
		}
	}
	view.Controls = controls(view, session.Results.IsEmpty())
	return view
}

// controls lists the actions that lead somewhere from this view
func controls(view domain.View, nothingFound bool) []domain.Control {
	if nothingFound {
		return nil
	}
	var out []domain.Control
	if view.HasPrev {
		out = append(out, domain.Control{Action: domain.ActionPrev, Label: LabelPrev})
	}
	if view.HasNext {
		out = append(out, domain.Control{Action: domain.ActionNext, Label: LabelNext})
	}
	return append(out,
		domain.Control{Action: domain.ActionShowGeneral, Label: LabelGeneral},
		domain.Control{Action: domain.ActionShowMarketplace, Label: LabelMarketplace},
		domain.Control{Action: domain.ActionExport, Label: LabelExport},
	)
}

// Paginate returns the zero-based page of entries
func Paginate(entries []domain.ResultEntry, page, pageSize int) []domain.ResultEntry {
	if page < 0 {
		page = 0
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	start := page * pageSize
	if start >= len(entries) {
		return []domain.ResultEntry{}
	}
	end := start + pageSize
	if end > len(entries) {
		end = len(entries)
	}
	return entries[start:end]
}
