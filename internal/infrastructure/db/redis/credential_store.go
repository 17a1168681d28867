package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/manara-academy/platform-api/internal/core/domain"
)

const defaultCredentialTTL = 24 * time.Hour

// CredentialStore persists the opaque auth credential between visits so
// session hydration can restore a login after a fresh boot.
// Key format: session:cred:<session_id>
type CredentialStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCredentialStore(client *redis.Client, ttl time.Duration) *CredentialStore {
	if ttl <= 0 {
		ttl = defaultCredentialTTL
	}
	return &CredentialStore{client: client, ttl: ttl}
}

func (s *CredentialStore) Read(ctx context.Context, sessionID string) (string, error) {
	token, err := s.client.Get(ctx, s.key(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrNoCredential
	}
	if err != nil {
		return "", fmt.Errorf("credential read: %w", err)
	}
	return token, nil
}

func (s *CredentialStore) Write(ctx context.Context, sessionID, token string) error {
	if err := s.client.Set(ctx, s.key(sessionID), token, s.ttl).Err(); err != nil {
		return fmt.Errorf("credential write: %w", err)
	}
	return nil
}

func (s *CredentialStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("credential delete: %w", err)
	}
	return nil
}

func (s *CredentialStore) key(sessionID string) string {
	return "session:cred:" + sessionID
}
