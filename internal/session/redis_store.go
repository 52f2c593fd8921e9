package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisRecordStore is a redis-backed RecordStore. Records carry no
// redis TTL: expiration is a lookup-time decision made by the auth
// strategy, and a duration of zero must keep sessions alive forever.
// Records stay until an explicit Delete.
type RedisRecordStore struct {
	client *redis.Client
	prefix string
}

func NewRedisRecordStore(client *redis.Client) *RedisRecordStore {
	return &RedisRecordStore{
		client: client,
		prefix: "session:",
	}
}

func (r *RedisRecordStore) key(sessionID string) string {
	return r.prefix + sessionID
}

func (r *RedisRecordStore) Save(ctx context.Context, rec Record) error {
	if rec.SessionID == "" || rec.UserID == "" {
		return errors.New("session: missing session_id or user_id")
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("session: failed to marshal: %w", err)
	}

	return r.client.Set(ctx, r.key(rec.SessionID), data, 0).Err()
}

func (r *RedisRecordStore) Find(ctx context.Context, sessionID string) (*Record, error) {
	val, err := r.client.Get(ctx, r.key(sessionID)).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var rec Record
	if err := json.Unmarshal([]byte(val), &rec); err != nil {
		return nil, fmt.Errorf("session: failed to unmarshal: %w", err)
	}

	return &rec, nil
}

func (r *RedisRecordStore) Delete(ctx context.Context, sessionID string) error {
	n, err := r.client.Del(ctx, r.key(sessionID)).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
