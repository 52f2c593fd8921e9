package session

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrNotFound is returned when a session record does not exist.
var ErrNotFound = errors.New("session: not found")

// Record is a persisted session, keyed by SessionID.
type Record struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// RecordStore persists session records so they survive process
// restarts. Expiration is evaluated by the caller at lookup time;
// the store keeps records until they are explicitly deleted.
type RecordStore interface {
	Save(ctx context.Context, rec Record) error
	Find(ctx context.Context, sessionID string) (*Record, error)
	Delete(ctx context.Context, sessionID string) error
}

// MemRecordStore is a RecordStore kept in process memory. It backs
// tests and single-node deployments without redis.
type MemRecordStore struct {
	mu      sync.RWMutex
	records map[string]Record
}

func NewMemRecordStore() *MemRecordStore {
	return &MemRecordStore{records: make(map[string]Record)}
}

func (s *MemRecordStore) Save(ctx context.Context, rec Record) error {
	if rec.SessionID == "" || rec.UserID == "" {
		return errors.New("session: missing session_id or user_id")
	}
	s.mu.Lock()
	s.records[rec.SessionID] = rec
	s.mu.Unlock()
	return nil
}

func (s *MemRecordStore) Find(ctx context.Context, sessionID string) (*Record, error) {
	s.mu.RLock()
	rec, ok := s.records[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return &rec, nil
}

func (s *MemRecordStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[sessionID]; !ok {
		return ErrNotFound
	}
	delete(s.records, sessionID)
	return nil
}
