// Package redisstore keeps snapshots as Redis strings.
package redisstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces keys written by this tool.
const DefaultPrefix = "citas:"

type Store struct {
	client redis.UniversalClient
	prefix string
}

// New wraps an existing client. Keys are stored as prefix+key with no expiry.
func New(client redis.UniversalClient, prefix string) *Store {
	return &Store{client: client, prefix: prefix}
}

// Options configure Dial.
type Options struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// Dial connects to Redis and checks the connection with PING.
func Dial(ctx context.Context, opt Options) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opt.Addr,
		Password: opt.Password,
		DB:       opt.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", opt.Addr, err)
	}
	return New(client, opt.Prefix), nil
}

func (s *Store) redisKey(key string) string { return s.prefix + key }

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, s.redisKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get %s: %w", s.redisKey(key), err)
	}
	return data, true, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.redisKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", s.redisKey(key), err)
	}
	return nil
}

// Close releases the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}
