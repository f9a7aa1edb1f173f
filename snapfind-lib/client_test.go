package snapfind

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// providerServer serves an upload endpoint and one result page listing n sites
func providerServer(t *testing.T, n int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/upload", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"cbir_id":"42/xyz","url":"https://avatars.test/orig"}`)
	})
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		var b strings.Builder
		b.WriteString("<html><body>")
		for i := 1; i < n; i++ {
			fmt.Fprintf(&b, "<p>https://site%d.test/page</p>", i)
		}
		b.WriteString("<p>https://www.ozon.ru/product/7</p></body></html>")
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, b.String())
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestClient(t *testing.T, server *httptest.Server, opts ...Option) *Client {
	t.Helper()
	opts = append([]Option{WithProviderEndpoints(server.URL+"/upload", server.URL+"/search")}, opts...)
	client, err := NewClient(opts...)
	require.NoError(t, err)
	return client
}

func TestNewClient_Defaults(t *testing.T) {
	client, err := NewClient()

	require.NoError(t, err)
	assert.Equal(t, 10, client.config.ResultsPerPage)
	assert.NotNil(t, client.deps.Cache)
	assert.NotEmpty(t, client.config.Rules.Marketplaces)
}

func TestNewClient_InvalidOptions(t *testing.T) {
	_, err := NewClient(WithResultsPerPage(0))
	assert.Error(t, err)

	_, err = NewClient(WithSessionTTL(0))
	assert.Error(t, err)

	_, err = NewClient(WithCache(nil))
	assert.ErrorIs(t, err, ErrMissingCache)

	_, err = NewClient(WithHTTPClient(nil))
	assert.ErrorIs(t, err, ErrMissingHTTPClient)
}

func TestClient_SearchAndNavigate(t *testing.T) {
	client := newTestClient(t, providerServer(t, 12))
	ctx := context.Background()

	result, err := client.Search(ctx, "chat-1", []byte("\xff\xd8\xff\xe0 jpeg"))
	require.NoError(t, err)
	assert.Equal(t, "ok", result.Status)
	require.NotNil(t, result.View)
	assert.Equal(t, 12, result.View.Total)
	assert.Equal(t, 2, result.View.TotalPages)
	assert.Len(t, result.View.Entries, 10)
	assert.True(t, result.View.HasNext)
	assert.NotEmpty(t, result.View.HTML)

	next, err := client.Act(ctx, result.SessionID, Next)
	require.NoError(t, err)
	assert.Equal(t, 1, next.Page)
	assert.Len(t, next.Entries, 2)
	assert.Equal(t, 11, next.Entries[0].Position)

	market, err := client.Act(ctx, result.SessionID, ShowMarketplace)
	require.NoError(t, err)
	assert.Equal(t, "marketplace", market.Mode)
	require.Len(t, market.Entries, 1)
	assert.Equal(t, "Ozon", market.Entries[0].Label)

	latest, err := client.LatestView(ctx, "chat-1")
	require.NoError(t, err)
	assert.Equal(t, result.SessionID, latest.SessionID)
	assert.Equal(t, "marketplace", latest.Mode)
}

func TestClient_Export(t *testing.T) {
	client := newTestClient(t, providerServer(t, 3))
	ctx := context.Background()

	result, err := client.Search(ctx, "", []byte("\x89PNG\r\n\x1a\n image"))
	require.NoError(t, err)

	file, err := client.Export(ctx, result.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "results.xlsx", file.Name)
	assert.Contains(t, file.ContentType, "spreadsheetml")
	assert.True(t, strings.HasPrefix(string(file.Data), "PK"))
}

func TestClient_SessionExpired(t *testing.T) {
	client := newTestClient(t, providerServer(t, 1))

	_, err := client.View(context.Background(), "missing")
	assert.True(t, IsSessionExpired(err))

	_, err = client.Export(context.Background(), "missing")
	assert.True(t, IsSessionExpired(err))
}

func TestClient_SearchRejectsEmptyImage(t *testing.T) {
	client := newTestClient(t, providerServer(t, 1))

	_, err := client.Search(context.Background(), "", nil)

	assert.True(t, IsInvalidInput(err))
}

func TestClient_SearchFailed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()
	client, err := NewClient(WithProviderEndpoints(server.URL+"/upload", server.URL+"/search"))
	require.NoError(t, err)

	result, err := client.Search(context.Background(), "", []byte("\xff\xd8\xff jpeg"))

	require.NoError(t, err)
	assert.Equal(t, "search_failed", result.Status)
	assert.NotEmpty(t, result.Message)
	assert.Nil(t, result.View)
}
