// ABOUTME: Search session store keeping result sets and page cursors by session id
// ABOUTME: Serializes sessions into any cache backend with per-session update locks

package session

import (
	"context"
	"encoding/json"
	"errors"
	"hash/fnv"
	"sync"
	"time"

	"github.com/google/uuid"

	"snapfind-api/core/domain"
	coreerrors "snapfind-api/core/errors"
	"snapfind-api/core/interfaces"
)

// DefaultTTL is how long an idle session stays available
const DefaultTTL = 24 * time.Hour

const (
	sessionKeyPrefix = "session:"
	ownerKeyPrefix   = "session-owner:"
	lockStripes      = 64
)

// Store implements interfaces.SessionStore on top of a cache backend.
// Updates to one session are serialized within this process.
type Store struct {
	cache  interfaces.Cache
	logger interfaces.Logger
	ttl    time.Duration
	locks  [lockStripes]sync.Mutex
}

// NewStore creates a session store. A non-positive ttl uses DefaultTTL.
func NewStore(deps interfaces.Dependencies, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		cache:  deps.Cache,
		logger: deps.Logger,
		ttl:    ttl,
	}
}

// Create stores a new session showing page 0 of the general bucket
func (s *Store) Create(ctx context.Context, ownerID string, results domain.ResultSet) (string, error) {
	session := domain.NewSearchSession(ownerID, results)
	if err := s.save(ctx, session); err != nil {
		return "", err
	}

	if ownerID != "" {
		if err := s.cache.Set(ctx, ownerKeyPrefix+ownerID, []byte(session.ID), s.ttl); err != nil {
			s.logWarn("Failed to record latest session", map[string]interface{}{
				"owner_id": ownerID,
				"error":    err.Error(),
			})
		}
	}

	s.logDebug("Session created", map[string]interface{}{
		"session_id":  session.ID,
		"general":     len(results.General),
		"marketplace": len(results.Marketplace),
	})
	return session.ID, nil
}

// Get loads a session. Unknown, malformed or evicted ids yield a session-not-found error.
func (s *Store) Get(ctx context.Context, id string) (*domain.SearchSession, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, coreerrors.SessionNotFound(id)
	}

	data, err := s.cache.Get(ctx, sessionKeyPrefix+id)
	if err != nil {
		if errors.Is(err, interfaces.ErrCacheMiss) {
			return nil, coreerrors.SessionNotFound(id)
		}
		return nil, coreerrors.WrapError(err, "failed to load session")
	}

	var session domain.SearchSession
	if err := json.Unmarshal(data, &session); err != nil {
		s.logWarn("Discarding unreadable session record", map[string]interface{}{
			"session_id": id,
			"error":      err.Error(),
		})
		return nil, coreerrors.SessionNotFound(id)
	}
	return &session, nil
}

// Update applies mutate under the session's lock and stores the result.
// Storing again restarts the session's TTL.
func (s *Store) Update(ctx context.Context, id string, mutate func(*domain.SearchSession)) (*domain.SearchSession, error) {
	lock := s.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	mutate(session)
	session.ID = id

	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Latest returns the most recent session id created for ownerID
func (s *Store) Latest(ctx context.Context, ownerID string) (string, error) {
	if ownerID == "" {
		return "", coreerrors.SessionNotFound(ownerID)
	}
	data, err := s.cache.Get(ctx, ownerKeyPrefix+ownerID)
	if err != nil {
		if errors.Is(err, interfaces.ErrCacheMiss) {
			return "", coreerrors.SessionNotFound(ownerID)
		}
		return "", coreerrors.WrapError(err, "failed to load latest session")
	}
	return string(data), nil
}

func (s *Store) save(ctx context.Context, session *domain.SearchSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return coreerrors.WrapError(err, "failed to encode session")
	}
	if err := s.cache.Set(ctx, sessionKeyPrefix+session.ID, data, s.ttl); err != nil {
		return coreerrors.WrapError(err, "failed to store session")
	}
	return nil
}

func (s *Store) lockFor(id string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(id))
	return &s.locks[h.Sum32()%lockStripes]
}

func (s *Store) logDebug(msg string, fields map[string]interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, fields)
	}
}

func (s *Store) logWarn(msg string, fields map[string]interface{}) {
	if s.logger != nil {
		s.logger.Warn(msg, fields)
	}
}
