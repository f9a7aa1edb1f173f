// ABOUTME: Storage interfaces for persisting domain entities
// ABOUTME: Defines the session store contract used by search and presenter

package interfaces

import (
	"context"

	"snapfind-api/core/domain"
)

// SessionStore defines the interface for search session persistence.
// Get returns a session-not-found error for unknown or evicted ids.
type SessionStore interface {
	// Create stores a new session and returns its id
	Create(ctx context.Context, ownerID string, results domain.ResultSet) (string, error)

	// Get retrieves a session by ID
	Get(ctx context.Context, id string) (*domain.SearchSession, error)

	// Update applies mutate to the stored session atomically per id
	Update(ctx context.Context, id string, mutate func(*domain.SearchSession)) (*domain.SearchSession, error)

	// Latest returns the most recent session id of a conversation
	Latest(ctx context.Context, ownerID string) (string, error)
}
