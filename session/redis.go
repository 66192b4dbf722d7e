package session

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisRecordVersion1 = 1

// ErrRedisUnavailable wraps backend failures of [RedisStore].
var ErrRedisUnavailable = errors.New("redis unavailable")

var errCorruptRecord = errors.New("corrupt session record")

// RedisStore is a Redis-backed [RecordStore]. Records are written without a
// TTL: expiration is the policy layer's lazy check, which needs the raw
// record to remain readable after its deadline passes.
type RedisStore struct {
	redis  redis.UniversalClient
	prefix string
}

// NewRedisStore creates a [RedisStore] using prefix as the key namespace.
// An empty prefix defaults to "ag:sess".
func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "ag:sess"
	}
	return &RedisStore{
		redis:  client,
		prefix: prefix,
	}
}

func (s *RedisStore) key(sessionID string) string {
	return s.prefix + ":" + sessionID
}

// Save persists rec under its session-ID key.
func (s *RedisStore) Save(ctx context.Context, rec Record) error {
	encoded, err := encodeRecord(rec)
	if err != nil {
		return err
	}
	if err := s.redis.Set(ctx, s.key(rec.SessionID), encoded, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}

// Find loads the record under sessionID. A missing key is not an error.
func (s *RedisStore) Find(ctx context.Context, sessionID string) (Record, bool, error) {
	data, err := s.redis.Get(ctx, s.key(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Record{}, false, nil
		}
		return Record{}, false, fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}

	rec, err := decodeRecord(data)
	if err != nil {
		return Record{}, false, err
	}
	rec.SessionID = sessionID

	return rec, true, nil
}

// Remove deletes the record under sessionID and reports whether it existed.
func (s *RedisStore) Remove(ctx context.Context, sessionID string) (bool, error) {
	n, err := s.redis.Del(ctx, s.key(sessionID)).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return n == 1, nil
}

// Record wire format, version 1:
//
//	[1]  version
//	[1]  user-id length
//	[n]  user-id bytes
//	[8]  created-at, big-endian unix nanoseconds
func encodeRecord(rec Record) ([]byte, error) {
	if len(rec.UserID) > 255 {
		return nil, fmt.Errorf("user id too long: %d bytes", len(rec.UserID))
	}

	buf := make([]byte, 0, 2+len(rec.UserID)+8)
	buf = append(buf, redisRecordVersion1, byte(len(rec.UserID)))
	buf = append(buf, rec.UserID...)
	buf = binary.BigEndian.AppendUint64(buf, uint64(rec.CreatedAt.UnixNano()))

	return buf, nil
}

func decodeRecord(data []byte) (Record, error) {
	if len(data) < 2 || data[0] != redisRecordVersion1 {
		return Record{}, errCorruptRecord
	}

	userLen := int(data[1])
	if len(data) != 2+userLen+8 {
		return Record{}, errCorruptRecord
	}

	userID := string(data[2 : 2+userLen])
	createdAt := int64(binary.BigEndian.Uint64(data[2+userLen:]))

	return Record{
		UserID:    userID,
		CreatedAt: time.Unix(0, createdAt),
	}, nil
}
