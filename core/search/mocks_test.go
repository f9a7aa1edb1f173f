package search

import (
	"context"
	"io"
	"iter"
	"strings"
	"sync"
	"time"

	"snapfind-api/core/domain"
	coreerrors "snapfind-api/core/errors"
	"snapfind-api/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc  func(ctx context.Context, url string) (interfaces.Response, error)
	postFunc func(ctx context.Context, url, contentType string, body io.Reader) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, nil
}

func (m *mockHTTPClient) Post(ctx context.Context, url, contentType string, body io.Reader) (interfaces.Response, error) {
	if m.postFunc != nil {
		return m.postFunc(ctx, url, contentType, body)
	}
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}

// mockCache is a mock implementation of the Cache interface
type mockCache struct {
	getFunc    func(ctx context.Context, key string) ([]byte, error)
	setFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	deleteFunc func(ctx context.Context, key string) error
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, key)
	}
	return nil, interfaces.ErrCacheMiss
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFunc != nil {
		return m.setFunc(ctx, key, value, ttl)
	}
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, key)
	}
	return nil
}

// mockProvider serves canned pages and an optional trailing error
type mockProvider struct {
	handle    domain.SearchHandle
	noHandle  bool
	pages     []string
	fetchErr  error
	submits   int
	submitted []byte
}

func (m *mockProvider) Submit(ctx context.Context, image []byte) (domain.SearchHandle, bool) {
	m.submits++
	m.submitted = image
	if m.noHandle {
		return domain.SearchHandle{}, false
	}
	if m.handle.IsZero() {
		return domain.SearchHandle{HandleID: "1/abc", AssetLocator: "https://avatars.test/orig"}, true
	}
	return m.handle, true
}

func (m *mockProvider) FetchPages(ctx context.Context, handle domain.SearchHandle) iter.Seq2[domain.RawPage, error] {
	return func(yield func(domain.RawPage, error) bool) {
		for i, markup := range m.pages {
			if !yield(domain.RawPage{Index: i, Markup: markup}, nil) {
				return
			}
		}
		if m.fetchErr != nil {
			yield(domain.RawPage{}, m.fetchErr)
		}
	}
}

// mockStore records created sessions
type mockStore struct {
	mu      sync.Mutex
	created []domain.ResultSet
	owners  []string
	err     error
}

func (m *mockStore) Create(ctx context.Context, ownerID string, results domain.ResultSet) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	m.created = append(m.created, results)
	m.owners = append(m.owners, ownerID)
	return "session-1", nil
}

func (m *mockStore) Get(ctx context.Context, id string) (*domain.SearchSession, error) {
	return nil, coreerrors.SessionNotFound(id)
}

func (m *mockStore) Update(ctx context.Context, id string, mutate func(*domain.SearchSession)) (*domain.SearchSession, error) {
	return nil, coreerrors.SessionNotFound(id)
}

func (m *mockStore) Latest(ctx context.Context, ownerID string) (string, error) {
	return "", coreerrors.SessionNotFound(ownerID)
}

// mockMetrics counts recorded outcomes and pages
type mockMetrics struct {
	outcomes []domain.Outcome
	pages    int
}

func (m *mockMetrics) SearchCompleted(outcome domain.Outcome) { m.outcomes = append(m.outcomes, outcome) }
func (m *mockMetrics) PagesFetched(n int)                     { m.pages += n }
func (m *mockMetrics) CandidatesExtracted(string, int)        {}
func (m *mockMetrics) SessionAction(domain.Action)            {}
