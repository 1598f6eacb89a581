package storage

import (
	"context"
	"time"

	"orderflow/web-svc/internal/domain"
	"orderflow/web-svc/internal/service"

	"github.com/redis/go-redis/v9"
)

// Hash fields keep the names the browser used for its local storage.
const (
	fieldToken  = "access_token"
	fieldRole   = "user_type"
	fieldUserID = "user_id"
	fieldEmail  = "email"
)

var _ service.SessionStore = (*RedisSessionStore)(nil)

type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{Client: client, TTL: ttl}
}

func (s *RedisSessionStore) SessionKey(visitorID string) string {
	return "session:" + visitorID
}

func (s *RedisSessionStore) Load(ctx context.Context, visitorID string) (domain.Session, error) {
	values, err := s.Client.HGetAll(ctx, s.SessionKey(visitorID)).Result()
	if err != nil {
		return domain.Session{}, err
	}
	return domain.Session{
		Token:  values[fieldToken],
		Role:   domain.ParseRole(values[fieldRole]),
		UserID: values[fieldUserID],
		Email:  values[fieldEmail],
	}, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, visitorID string, session domain.Session) error {
	key := s.SessionKey(visitorID)
	_, err := s.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key,
			fieldToken, session.Token,
			fieldRole, session.Role.String(),
			fieldUserID, session.UserID,
			fieldEmail, session.Email,
		)
		if s.TTL > 0 {
			pipe.Expire(ctx, key, s.TTL)
		}
		return nil
	})
	return err
}

func (s *RedisSessionStore) Clear(ctx context.Context, visitorID string) error {
	return s.Client.Del(ctx, s.SessionKey(visitorID)).Err()
}
