// Package redis implements a networked core.SessionStore on Redis lists.
// Each session id maps to one list key holding item envelopes; Redis executes
// commands for a key serially, and batch appends go through MULTI/EXEC so a
// reader observes none or all of a batch.
package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/hupe1980/agentrun/core"
)

const defaultKeyPrefix = "agentrun:session:"

// Options configure the Redis session store.
type Options struct {
	// KeyPrefix namespaces session keys. Defaults to "agentrun:session:".
	KeyPrefix string
}

// Store persists session item logs as Redis lists.
type Store struct {
	client    redis.UniversalClient
	keyPrefix string
}

// NewStore wraps an existing Redis client.
func NewStore(client redis.UniversalClient, optFns ...func(o *Options)) *Store {
	opts := Options{KeyPrefix: defaultKeyPrefix}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Store{client: client, keyPrefix: opts.KeyPrefix}
}

// Items returns the trailing limit items of the session in append order.
func (s *Store) Items(sessionID string, limit int) ([]core.Item, error) {
	ctx := context.Background()

	start := int64(0)
	if limit > 0 {
		start = int64(-limit)
	}

	lines, err := s.client.LRange(ctx, s.key(sessionID), start, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read session list: %w", err)
	}

	items := make([]core.Item, 0, len(lines))
	for _, line := range lines {
		it, err := core.UnmarshalItem([]byte(line))
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

// AddItems appends items in order as one MULTI/EXEC batch.
func (s *Store) AddItems(sessionID string, items ...core.Item) error {
	if len(items) == 0 {
		return nil
	}

	encoded := make([]any, 0, len(items))
	for _, it := range items {
		line, err := core.MarshalItem(it)
		if err != nil {
			return err
		}
		encoded = append(encoded, line)
	}

	ctx := context.Background()
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, s.key(sessionID), encoded...)
		return nil
	})
	if err != nil {
		return fmt.Errorf("append session items: %w", err)
	}
	return nil
}

// PopItem removes and returns the last item, or (nil, nil) when empty.
func (s *Store) PopItem(sessionID string) (core.Item, error) {
	line, err := s.client.RPop(context.Background(), s.key(sessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("pop session item: %w", err)
	}
	return core.UnmarshalItem([]byte(line))
}

// Clear empties the session irreversibly.
func (s *Store) Clear(sessionID string) error {
	if err := s.client.Del(context.Background(), s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *Store) key(sessionID string) string { return s.keyPrefix + sessionID }
