package service

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

// ErrSessionNotFound is returned when a session token does not resolve
// to a live session record.
var ErrSessionNotFound = errors.New("session not found")

// Session is the server-side record behind a session cookie.
type Session struct {
	UserID   int64
	Username string
}

// SessionService manages server-side session records in Redis, keyed by
// a random token handed to the client as a cookie.
type SessionService interface {
	Create(ctx context.Context, userID int64, username string) (string, time.Duration, error)
	Get(ctx context.Context, token string) (*Session, error)
	Destroy(ctx context.Context, token string) error
}

type sessionService struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewSessionService creates a new SessionService instance.
func NewSessionService(redisClient *redis.Client, ttl time.Duration) SessionService {
	return &sessionService{
		redis: redisClient,
		ttl:   ttl,
	}
}

func (s *sessionService) Create(ctx context.Context, userID int64, username string) (string, time.Duration, error) {
	token := uuid.NewString()
	value := fmt.Sprintf("%d:%s", userID, username)
	if err := s.redis.Set(ctx, sessionKey(token), value, s.ttl).Err(); err != nil {
		return "", 0, fmt.Errorf("failed to store session: %w", err)
	}
	return token, s.ttl, nil
}

func (s *sessionService) Get(ctx context.Context, token string) (*Session, error) {
	value, err := s.redis.Get(ctx, sessionKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	idPart, username, ok := strings.Cut(value, ":")
	if !ok {
		return nil, ErrSessionNotFound
	}
	userID, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	return &Session{UserID: userID, Username: username}, nil
}

func (s *sessionService) Destroy(ctx context.Context, token string) error {
	if err := s.redis.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}

func sessionKey(token string) string {
	return "session:" + token
}
