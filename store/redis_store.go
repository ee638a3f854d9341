package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/Aashish23092/schemelink/dto"
	"github.com/redis/go-redis/v9"
)

const profileKeyPrefix = "schemelink:profile:"

// RedisStore keeps profiles in Redis as JSON strings without expiry.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &RedisStore{client: client}, nil
}

// Load returns the profile stored under id.
func (s *RedisStore) Load(ctx context.Context, id string) (dto.Profile, error) {
	data, err := s.client.Get(ctx, profileKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return dto.Profile{}, dto.ErrProfileNotFound
	}
	if err != nil {
		return dto.Profile{}, fmt.Errorf("failed to load profile %s: %w", id, err)
	}
	return decodeProfile(data)
}

// Save replaces the profile stored under id.
func (s *RedisStore) Save(ctx context.Context, id string, p dto.Profile) error {
	data, err := encodeProfile(p)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, profileKeyPrefix+id, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save profile %s: %w", id, err)
	}
	return nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
