package session

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Store layers session-id generation and lazy expiration over a
// [RecordStore]. All methods follow soft-miss semantics: backend failures
// and absent or expired records report absence, never an error.
type Store struct {
	records  RecordStore
	duration time.Duration
	now      func() time.Time
}

// Option configures a [Store].
type Option func(*Store)

// WithDuration bounds session lifetime. Zero or negative means sessions
// never expire.
func WithDuration(d time.Duration) Option {
	return func(s *Store) {
		s.duration = d
	}
}

// WithClock replaces the wall clock. Test hook.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore creates a session store over the given records backend.
func NewStore(records RecordStore, opts ...Option) *Store {
	s := &Store{
		records: records,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create opens a session for userID and returns its identifier. The ID is a
// fresh UUIDv4 (122 random bits); generation is treated as collision-free.
// An empty userID and a backend save failure are misses.
func (s *Store) Create(ctx context.Context, userID string) (string, bool) {
	if userID == "" {
		return "", false
	}

	rec := Record{
		SessionID: uuid.NewString(),
		UserID:    userID,
		CreatedAt: s.now(),
	}
	if err := s.records.Save(ctx, rec); err != nil {
		return "", false
	}

	return rec.SessionID, true
}

// UserID resolves a session identifier to its user ID. Unknown, expired,
// and unreadable sessions are misses. Expiration is lazy: the stale record
// is left in place.
func (s *Store) UserID(ctx context.Context, sessionID string) (string, bool) {
	rec, ok := s.find(ctx, sessionID)
	if !ok {
		return "", false
	}
	return rec.UserID, true
}

// Destroy removes the session and reports true only when a live,
// non-expired record existed. A second Destroy of the same ID reports false.
func (s *Store) Destroy(ctx context.Context, sessionID string) bool {
	if _, ok := s.find(ctx, sessionID); !ok {
		return false
	}

	removed, err := s.records.Remove(ctx, sessionID)
	return err == nil && removed
}

func (s *Store) find(ctx context.Context, sessionID string) (Record, bool) {
	if sessionID == "" {
		return Record{}, false
	}

	rec, ok, err := s.records.Find(ctx, sessionID)
	if err != nil || !ok {
		return Record{}, false
	}
	if s.expired(rec) {
		return Record{}, false
	}

	return rec, true
}

func (s *Store) expired(rec Record) bool {
	if s.duration <= 0 {
		return false
	}
	return s.now().After(rec.CreatedAt.Add(s.duration))
}
