package token

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrTokenNotFound means the presented token maps to no principal:
// never issued, revoked, or expired.
var ErrTokenNotFound = errors.New("token not found")

// Store issues opaque bearer tokens and resolves them back to the user
// they were issued to. The token carries no claims itself.
type Store interface {
	Issue(ctx context.Context, userID uint) (string, error)
	Resolve(ctx context.Context, token string) (uint, error)
	Revoke(ctx context.Context, token string) error
}

// redisCmdable is the subset of redis.Client commands the store uses.
type redisCmdable interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type redisStore struct {
	client redisCmdable
	// ttl of zero keeps tokens alive for the service lifetime.
	ttl time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) Store {
	return &redisStore{client: client, ttl: ttl}
}

func (s *redisStore) Issue(ctx context.Context, userID uint) (string, error) {
	plain := strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
	key := tokenKey(plain)

	if err := s.client.Set(ctx, key, strconv.FormatUint(uint64(userID), 10), s.ttl).Err(); err != nil {
		return "", err
	}
	return plain, nil
}

func (s *redisStore) Resolve(ctx context.Context, token string) (uint, error) {
	value, err := s.client.Get(ctx, tokenKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrTokenNotFound
		}
		return 0, err
	}

	userID, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, ErrTokenNotFound
	}
	return uint(userID), nil
}

func (s *redisStore) Revoke(ctx context.Context, token string) error {
	return s.client.Del(ctx, tokenKey(token)).Err()
}

func tokenKey(token string) string {
	return fmt.Sprintf("auth_token:%s", token)
}
