package handlers

import (
	"context"

	"snapfind-api/core/domain"
	"snapfind-api/core/export"
)

// mockSearchService is a mock implementation of SearchService
type mockSearchService struct {
	searchFunc func(ctx context.Context, ownerID string, image []byte) (*domain.SearchOutcome, error)
}

func (m *mockSearchService) Search(ctx context.Context, ownerID string, image []byte) (*domain.SearchOutcome, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, ownerID, image)
	}
	return &domain.SearchOutcome{Outcome: domain.OutcomeNoResults}, nil
}

// mockPresenter is a mock implementation of SessionPresenter
type mockPresenter struct {
	showFunc   func(ctx context.Context, sessionID string) (domain.View, error)
	latestFunc func(ctx context.Context, ownerID string) (domain.View, error)
	applyFunc  func(ctx context.Context, sessionID string, action domain.Action) (domain.View, error)
}

func (m *mockPresenter) Show(ctx context.Context, sessionID string) (domain.View, error) {
	if m.showFunc != nil {
		return m.showFunc(ctx, sessionID)
	}
	return domain.View{SessionID: sessionID, Mode: domain.ModeGeneral}, nil
}

func (m *mockPresenter) ShowLatest(ctx context.Context, ownerID string) (domain.View, error) {
	if m.latestFunc != nil {
		return m.latestFunc(ctx, ownerID)
	}
	return domain.View{}, nil
}

func (m *mockPresenter) Apply(ctx context.Context, sessionID string, action domain.Action) (domain.View, error) {
	if m.applyFunc != nil {
		return m.applyFunc(ctx, sessionID, action)
	}
	return domain.View{SessionID: sessionID}, nil
}

// mockExporter is a mock implementation of Exporter
type mockExporter struct {
	exportFunc func(ctx context.Context, sessionID string) (*export.File, error)
}

func (m *mockExporter) Export(ctx context.Context, sessionID string) (*export.File, error) {
	if m.exportFunc != nil {
		return m.exportFunc(ctx, sessionID)
	}
	return &export.File{Name: "results.xlsx", ContentType: "application/octet-stream", Data: []byte("xlsx")}, nil
}

// mockStats is a mock implementation of StatsProvider
type mockStats struct {
	stats map[string]interface{}
	err   error
}

func (m *mockStats) Stats() (map[string]interface{}, error) {
	return m.stats, m.err
}

func sampleView(id string) domain.View {
	return domain.View{
		SessionID:  id,
		Mode:       domain.ModeGeneral,
		TotalPages: 2,
		Total:      12,
		HasNext:    true,
		Entries: []domain.ViewEntry{
			{Position: 1, URL: "https://blog.test/post", Domain: "blog.test", Label: "blog.test"},
		},
		Controls: []domain.Control{
			{Action: domain.ActionShowMarketplace, Label: "Marketplaces"},
			{Action: domain.ActionNext, Label: "Next"},
		},
	}
}
