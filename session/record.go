package session

import (
	"context"
	"time"
)

// Record is one live session. SessionID is a UUIDv4 string; CreatedAt is the
// issuance instant the expiry policy measures from.
type Record struct {
	SessionID string
	UserID    string
	CreatedAt time.Time
}

// RecordStore is the storage contract behind [Store]. Implementations own
// the record's lifetime; the policy layer never caches records.
//
// Find reports (zero, false, nil) for an absent session and reserves the
// error return for backend failures. Remove reports whether a record
// actually existed.
type RecordStore interface {
	Save(ctx context.Context, rec Record) error
	Find(ctx context.Context, sessionID string) (Record, bool, error)
	Remove(ctx context.Context, sessionID string) (bool, error)
}
