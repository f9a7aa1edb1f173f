package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snapfind-api/api/dto/responses"
	"snapfind-api/core/domain"
	coreerrors "snapfind-api/core/errors"
)

func TestSearchHandler_RegisterRoutes(t *testing.T) {
	_, api := humatest.New(t)
	NewSearchHandler(&mockSearchService{}, &mockPresenter{}, 1024).RegisterRoutes(api)

	path := api.OpenAPI().Paths["/v1/search"]
	require.NotNil(t, path)
	require.NotNil(t, path.Post)
	assert.Equal(t, "searchImage", path.Post.OperationID)
}

func TestSearchHandler_Search_OK(t *testing.T) {
	var gotOwner string
	var gotImage []byte
	service := &mockSearchService{
		searchFunc: func(ctx context.Context, ownerID string, image []byte) (*domain.SearchOutcome, error) {
			gotOwner = ownerID
			gotImage = image
			return &domain.SearchOutcome{Outcome: domain.OutcomeOK, SessionID: "s1"}, nil
		},
	}
	presenter := &mockPresenter{
		showFunc: func(ctx context.Context, sessionID string) (domain.View, error) {
			return sampleView(sessionID), nil
		},
	}

	_, api := humatest.New(t)
	NewSearchHandler(service, presenter, 1024).RegisterRoutes(api)

	resp := api.Post("/v1/search", "Content-Type: image/jpeg", "X-Conversation-ID: chat-7", bytes.NewReader([]byte("jpeg")))

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	assert.Equal(t, "chat-7", gotOwner)
	assert.Equal(t, []byte("jpeg"), gotImage)

	var body responses.SearchResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Empty(t, body.Message)
	assert.Equal(t, "s1", body.SessionID)
	require.NotNil(t, body.View)
	assert.Equal(t, 12, body.View.Total)
	require.Len(t, body.View.Entries, 1)
	assert.Equal(t, "https://blog.test/post", body.View.Entries[0].URL)
	assert.Contains(t, body.View.HTML, "https://blog.test/post")
}

func TestSearchHandler_Search_NoResults(t *testing.T) {
	service := &mockSearchService{
		searchFunc: func(ctx context.Context, ownerID string, image []byte) (*domain.SearchOutcome, error) {
			return &domain.SearchOutcome{Outcome: domain.OutcomeNoResults, SessionID: "s2"}, nil
		},
	}
	presenter := &mockPresenter{
		showFunc: func(ctx context.Context, sessionID string) (domain.View, error) {
			return domain.View{SessionID: sessionID, Mode: domain.ModeGeneral, Empty: true}, nil
		},
	}

	_, api := humatest.New(t)
	NewSearchHandler(service, presenter, 1024).RegisterRoutes(api)

	resp := api.Post("/v1/search", "Content-Type: image/png", bytes.NewReader([]byte("png")))

	require.Equal(t, http.StatusOK, resp.Code)
	var body responses.SearchResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "no_results", body.Status)
	assert.NotEmpty(t, body.Message)
	require.NotNil(t, body.View)
	assert.True(t, body.View.Empty)
}

func TestSearchHandler_Search_Failed(t *testing.T) {
	showCalled := false
	service := &mockSearchService{
		searchFunc: func(ctx context.Context, ownerID string, image []byte) (*domain.SearchOutcome, error) {
			return &domain.SearchOutcome{Outcome: domain.OutcomeSearchFailed}, nil
		},
	}
	presenter := &mockPresenter{
		showFunc: func(ctx context.Context, sessionID string) (domain.View, error) {
			showCalled = true
			return domain.View{}, nil
		},
	}

	_, api := humatest.New(t)
	NewSearchHandler(service, presenter, 1024).RegisterRoutes(api)

	resp := api.Post("/v1/search", "Content-Type: image/png", bytes.NewReader([]byte("png")))

	assert.Equal(t, http.StatusBadGateway, resp.Code)
	assert.False(t, showCalled)
}

func TestSearchHandler_Search_ValidationError(t *testing.T) {
	service := &mockSearchService{
		searchFunc: func(ctx context.Context, ownerID string, image []byte) (*domain.SearchOutcome, error) {
			return nil, &coreerrors.ValidationError{Field: "image", Message: "image cannot be empty"}
		},
	}

	_, api := humatest.New(t)
	NewSearchHandler(service, &mockPresenter{}, 1024).RegisterRoutes(api)

	resp := api.Post("/v1/search", "Content-Type: image/png", bytes.NewReader([]byte("x")))

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "image cannot be empty")
}

func TestSearchHandler_Search_BodyTooLarge(t *testing.T) {
	called := false
	service := &mockSearchService{
		searchFunc: func(ctx context.Context, ownerID string, image []byte) (*domain.SearchOutcome, error) {
			called = true
			return &domain.SearchOutcome{Outcome: domain.OutcomeOK}, nil
		},
	}

	_, api := humatest.New(t)
	NewSearchHandler(service, &mockPresenter{}, 8).RegisterRoutes(api)

	resp := api.Post("/v1/search", "Content-Type: image/png", bytes.NewReader(bytes.Repeat([]byte("a"), 64)))

	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.Code)
	assert.False(t, called)
}
