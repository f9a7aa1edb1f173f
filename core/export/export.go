// ABOUTME: Export renderer turning a session's result buckets into a two-sheet document
// ABOUTME: Optionally adds page titles and hands the document to a spreadsheet writer

package export

import (
	"context"

	"snapfind-api/core/domain"
	"snapfind-api/core/interfaces"
)

// Sheet and column names of the export document
const (
	SheetGeneral     = "General results"
	SheetMarketplace = "Marketplaces"
	ColumnLink       = "Link"
	ColumnTitle      = "Title"
)

// Build lays out both buckets as named tables. A nil titles map leaves the
// title column out entirely.
func Build(results domain.ResultSet, titles map[string]string) domain.ExportDocument {
	return domain.ExportDocument{
		Sheets: []domain.ExportSheet{
			sheet(SheetGeneral, results.General, titles),
			sheet(SheetMarketplace, results.Marketplace, titles),
		},
	}
}

func sheet(name string, entries []domain.ResultEntry, titles map[string]string) domain.ExportSheet {
	s := domain.ExportSheet{
		Name:    name,
		Columns: []string{ColumnLink},
		Rows:    make([][]string, 0, len(entries)),
	}
	if titles != nil {
		s.Columns = append(s.Columns, ColumnTitle)
	}
	for _, e := range entries {
		row := []string{e.URL}
		if titles != nil {
			row = append(row, titles[e.URL])
		}
		s.Rows = append(s.Rows, row)
	}
	return s
}

// File is a rendered export ready for download
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Service exports stored sessions
type Service struct {
	deps   interfaces.Dependencies
	store  interfaces.SessionStore
	writer interfaces.SpreadsheetWriter

	// titles is nil when title lookup is disabled
	titles interfaces.TitleResolver
}

// NewService creates an export service. titles may be nil.
func NewService(deps interfaces.Dependencies, store interfaces.SessionStore, writer interfaces.SpreadsheetWriter, titles interfaces.TitleResolver) *Service {
	return &Service{
		deps:   deps,
		store:  store,
		writer: writer,
		titles: titles,
	}
}

// Document builds the export document of a session without rendering it
func (s *Service) Document(ctx context.Context, sessionID string) (domain.ExportDocument, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return domain.ExportDocument{}, err
	}

	var titles map[string]string
	if s.titles != nil {
		titles = s.titles.Titles(ctx, session.Results.URLs(domain.ModeGeneral))
	}
	return Build(session.Results, titles), nil
}

// Export renders a session's buckets through the spreadsheet writer
func (s *Service) Export(ctx context.Context, sessionID string) (*File, error) {
	doc, err := s.Document(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	data, err := s.writer.Write(doc)
	if err != nil {
		if s.deps.Logger != nil {
			s.deps.Logger.Error("Failed to render export", map[string]interface{}{
				"session_id": sessionID,
				"error":      err.Error(),
			})
		}
		return nil, err
	}

	if s.deps.Metrics != nil {
		s.deps.Metrics.SessionAction(domain.ActionExport)
	}
	return &File{
		Name:        s.writer.FileName(),
		ContentType: s.writer.ContentType(),
		Data:        data,
	}, nil
}
