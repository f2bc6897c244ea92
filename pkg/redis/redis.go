package redis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var ErrSessionNotFound = errors.New("session not found")

// ISessionStore maps opaque browser-session ids to stable user identities.
// The binding is refreshed on every turn so an active conversation never
// loses its profile mid-session.
type ISessionStore interface {
	ResolveUser(ctx context.Context, sessionID string) (string, error)
	BindUser(ctx context.Context, sessionID string, userID string, expiration time.Duration) error
}

type sessionStore struct {
	client *redis.Client
}

func New() ISessionStore {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &sessionStore{client: client}
}

func (s *sessionStore) ResolveUser(ctx context.Context, sessionID string) (string, error) {
	val, err := s.client.Get(ctx, sessionKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrSessionNotFound
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error resolving session %s: %v", sessionID, err))
		return "", err
	}
	return val, nil
}

func (s *sessionStore) BindUser(ctx context.Context, sessionID string, userID string, expiration time.Duration) error {
	if err := s.client.Set(ctx, sessionKey(sessionID), userID, expiration).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error binding session %s: %v", sessionID, err))
		return err
	}
	return nil
}

func sessionKey(sessionID string) string {
	return "coach:session:" + sessionID
}
