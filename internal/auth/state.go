package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// StateStore remembers issued OAuth state values until they are consumed
// once or expire.
type StateStore interface {
	Put(ctx context.Context, state string, ttl time.Duration) error
	Consume(ctx context.Context, state string) (bool, error)
}

// MemoryStateStore keeps state in process.
type MemoryStateStore struct {
	mu    sync.Mutex
	items map[string]time.Time
	now   func() time.Time
}

func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{items: make(map[string]time.Time), now: time.Now}
}

func (s *MemoryStateStore) Put(ctx context.Context, state string, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for k, exp := range s.items {
		if now.After(exp) {
			delete(s.items, k)
		}
	}
	s.items[state] = now.Add(ttl)
	return nil
}

func (s *MemoryStateStore) Consume(ctx context.Context, state string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.Lock()
	exp, ok := s.items[state]
	if ok {
		delete(s.items, state)
	}
	s.mu.Unlock()
	if !ok {
		return false, nil
	}
	return !s.now().After(exp), nil
}

type redisStateClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	GetDel(ctx context.Context, key string) *redis.StringCmd
}

// RedisStateStore shares state across API instances. Expiry is left to Redis.
type RedisStateStore struct {
	Client redisStateClient
	Prefix string
}

func NewRedisStateStore(client *redis.Client) *RedisStateStore {
	return &RedisStateStore{Client: client, Prefix: "oauth:state:"}
}

func (s *RedisStateStore) Put(ctx context.Context, state string, ttl time.Duration) error {
	ok, err := s.Client.SetNX(ctx, s.Prefix+state, "1", ttl).Result()
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("oauth state collision")
	}
	return nil
}

func (s *RedisStateStore) Consume(ctx context.Context, state string) (bool, error) {
	_, err := s.Client.GetDel(ctx, s.Prefix+state).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

var (
	_ StateStore = (*MemoryStateStore)(nil)
	_ StateStore = (*RedisStateStore)(nil)
)
