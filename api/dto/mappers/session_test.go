package mappers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snapfind-api/core/domain"
)

func TestToViewResponse(t *testing.T) {
	view := domain.View{
		SessionID:  "s-1",
		Mode:       domain.ModeMarketplace,
		Page:       1,
		TotalPages: 3,
		Total:      23,
		HasPrev:    true,
		HasNext:    true,
		Entries: []domain.ViewEntry{
			{Position: 11, URL: "https://www.ozon.ru/p/1", Domain: "www.ozon.ru", Label: "Ozon"},
		},
		Controls: []domain.Control{
			{Action: domain.ActionPrev, Label: "⬅️ Back"},
			{Action: domain.ActionNext, Label: "Next ➡️"},
		},
	}

	response := ToViewResponse(view)

	assert.Equal(t, "s-1", response.SessionID)
	assert.Equal(t, "marketplace", response.Mode)
	assert.Equal(t, 1, response.Page)
	assert.Equal(t, 23, response.Total)
	require.Len(t, response.Entries, 1)
	assert.Equal(t, 11, response.Entries[0].Position)
	assert.Equal(t, "Ozon", response.Entries[0].Label)
	assert.Equal(t, "prev", response.Controls[0].Action)
	assert.Contains(t, response.HTML, "11. 🔗")
	assert.Contains(t, response.HTML, "(Ozon)")
}

func TestToViewResponse_EmptyViewHasNonNilSlices(t *testing.T) {
	response := ToViewResponse(domain.View{Mode: domain.ModeGeneral, Empty: true})

	assert.NotNil(t, response.Entries)
	assert.NotNil(t, response.Controls)
	assert.True(t, response.Empty)
	assert.NotEmpty(t, response.HTML)
}

func TestToSearchResponse(t *testing.T) {
	view := domain.View{SessionID: "s-1", Mode: domain.ModeGeneral}

	response := ToSearchResponse(&domain.SearchOutcome{Outcome: domain.OutcomeOK, SessionID: "s-1"}, &view)
	assert.Equal(t, "ok", response.Status)
	assert.Equal(t, "s-1", response.SessionID)
	require.NotNil(t, response.View)

	failed := ToSearchResponse(&domain.SearchOutcome{Outcome: domain.OutcomeSearchFailed}, nil)
	assert.Equal(t, "search_failed", failed.Status)
	assert.NotEmpty(t, failed.Message)
	assert.Nil(t, failed.View)
}
