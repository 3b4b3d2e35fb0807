package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rotisserie/eris"

	"impactio/internal/models"
)

// FilterStore keeps each user's current table filter selections.
// Load returns ok=false when nothing is stored.
type FilterStore interface {
	Load(ctx context.Context, userID int) (models.FilterCriteria, bool, error)
	Save(ctx context.Context, userID int, c models.FilterCriteria) error
	Reset(ctx context.Context, userID int) error
}

const filterKeyPrefix = "dashboard:filters:"

func filterKey(userID int) string {
	return fmt.Sprintf("%s%d", filterKeyPrefix, userID)
}

type redisFilterStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisFilterStore(client *redis.Client, ttl time.Duration) FilterStore {
	return &redisFilterStore{client: client, ttl: ttl}
}

func (s *redisFilterStore) Load(ctx context.Context, userID int) (models.FilterCriteria, bool, error) {
	var c models.FilterCriteria
	raw, err := s.client.Get(ctx, filterKey(userID)).Bytes()
	if err == redis.Nil {
		return c, false, nil
	}
	if err != nil {
		return c, false, eris.Wrap(err, "filters: redis get")
	}
	if err := json.Unmarshal(raw, &c); err != nil {
		return c, false, eris.Wrap(err, "filters: decode")
	}
	return c, true, nil
}

func (s *redisFilterStore) Save(ctx context.Context, userID int, c models.FilterCriteria) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return eris.Wrap(err, "filters: encode")
	}
	return eris.Wrap(s.client.Set(ctx, filterKey(userID), raw, s.ttl).Err(), "filters: redis set")
}

func (s *redisFilterStore) Reset(ctx context.Context, userID int) error {
	return eris.Wrap(s.client.Del(ctx, filterKey(userID)).Err(), "filters: redis del")
}

type memoryEntry struct {
	criteria  models.FilterCriteria
	expiresAt time.Time
}

// memoryFilterStore is used when Redis is not configured.
type memoryFilterStore struct {
	mu      sync.Mutex
	entries map[int]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryFilterStore(ttl time.Duration) FilterStore {
	return &memoryFilterStore{entries: make(map[int]memoryEntry), ttl: ttl, now: time.Now}
}

func (s *memoryFilterStore) Load(_ context.Context, userID int) (models.FilterCriteria, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[userID]
	if !ok {
		return models.FilterCriteria{}, false, nil
	}
	if !e.expiresAt.IsZero() && s.now().After(e.expiresAt) {
		delete(s.entries, userID)
		return models.FilterCriteria{}, false, nil
	}
	return e.criteria, true, nil
}

func (s *memoryFilterStore) Save(_ context.Context, userID int, c models.FilterCriteria) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := memoryEntry{criteria: c}
	if s.ttl > 0 {
		e.expiresAt = s.now().Add(s.ttl)
	}
	s.entries[userID] = e
	return nil
}

func (s *memoryFilterStore) Reset(_ context.Context, userID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, userID)
	return nil
}
