package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"vendorhub/internal/cache"
)

const (
	refreshTokenKeyPrefix = "refresh_token:"
	verifyTokenKeyPrefix  = "verify_token:"
)

// VerificationTokenTTL bounds how long a signup verification link stays valid.
const VerificationTokenTTL = 24 * time.Hour

// TokenStoreInterface defines the interface for token storage operations.
type TokenStoreInterface interface {
	StoreRefreshToken(ctx context.Context, tokenID string, userID string, email string, ttl time.Duration) error
	GetRefreshToken(ctx context.Context, tokenID string) (userID string, email string, err error)
	DeleteRefreshToken(ctx context.Context, tokenID string) error
	StoreVerificationToken(ctx context.Context, token string, userID string, ttl time.Duration) error
	GetVerificationToken(ctx context.Context, token string) (userID string, err error)
	DeleteVerificationToken(ctx context.Context, token string) error
}

// TokenStore handles storage and retrieval of tokens in Redis.
type TokenStore struct {
	cache *cache.Client
}

// Ensure TokenStore implements TokenStoreInterface
var _ TokenStoreInterface = (*TokenStore)(nil)

// NewTokenStore creates a new token store.
func NewTokenStore(cache *cache.Client) *TokenStore {
	return &TokenStore{cache: cache}
}

// StoreRefreshToken stores a refresh token in Redis with TTL.
func (s *TokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID string, email string, ttl time.Duration) error {
	data := map[string]string{
		"user_id": userID,
		"email":   email,
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal token data: %w", err)
	}

	key := refreshTokenKeyPrefix + tokenID
	return s.cache.Set(ctx, key, payload, ttl)
}

// GetRefreshToken retrieves refresh token data from Redis.
func (s *TokenStore) GetRefreshToken(ctx context.Context, tokenID string) (userID string, email string, err error) {
	key := refreshTokenKeyPrefix + tokenID
	data, err := s.cache.Get(ctx, key)
	if err != nil || data == nil {
		return "", "", fmt.Errorf("refresh token not found")
	}

	var tokenData map[string]string
	if err := json.Unmarshal(data, &tokenData); err != nil {
		return "", "", fmt.Errorf("unmarshal token data: %w", err)
	}

	return tokenData["user_id"], tokenData["email"], nil
}

// DeleteRefreshToken removes a refresh token from Redis.
func (s *TokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	key := refreshTokenKeyPrefix + tokenID
	return s.cache.Delete(ctx, key)
}

// StoreVerificationToken stores a signup verification token with TTL.
func (s *TokenStore) StoreVerificationToken(ctx context.Context, token string, userID string, ttl time.Duration) error {
	key := verifyTokenKeyPrefix + token
	return s.cache.Set(ctx, key, []byte(userID), ttl)
}

// GetVerificationToken resolves a verification token to a user ID.
func (s *TokenStore) GetVerificationToken(ctx context.Context, token string) (string, error) {
	key := verifyTokenKeyPrefix + token
	data, err := s.cache.Get(ctx, key)
	if err != nil || data == nil {
		return "", fmt.Errorf("verification token not found")
	}
	return string(data), nil
}

// DeleteVerificationToken removes a consumed verification token.
func (s *TokenStore) DeleteVerificationToken(ctx context.Context, token string) error {
	key := verifyTokenKeyPrefix + token
	return s.cache.Delete(ctx, key)
}
