// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for the provider, metrics, export and preview collaborators

package interfaces

import (
	"context"
	"iter"

	"snapfind-api/core/domain"
)

// ImageSearchProvider submits images and streams result pages.
type ImageSearchProvider interface {
	// Submit uploads the image. ok is false when no usable handle came back.
	Submit(ctx context.Context, image []byte) (handle domain.SearchHandle, ok bool)

	// FetchPages yields result pages in order. A non-nil error is yielded at
	// most once and ends the sequence; pages yielded before it stay valid.
	FetchPages(ctx context.Context, handle domain.SearchHandle) iter.Seq2[domain.RawPage, error]
}

// Metrics records pipeline and session counters
type Metrics interface {
	SearchCompleted(outcome domain.Outcome)
	PagesFetched(n int)
	CandidatesExtracted(strategy string, n int)
	SessionAction(action domain.Action)
}

// SpreadsheetWriter turns an export document into a downloadable file
type SpreadsheetWriter interface {
	Write(doc domain.ExportDocument) ([]byte, error)
	ContentType() string
	FileName() string
}

// TitleResolver looks up page titles for result URLs
type TitleResolver interface {
	Titles(ctx context.Context, urls []string) map[string]string
}
