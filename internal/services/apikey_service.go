package services

import (
	"context"
	"fmt"
	"time"

	"github.com/arrenda/arrenda-api/internal/db"
	"github.com/arrenda/arrenda-api/internal/helpers"
	"github.com/arrenda/arrenda-api/internal/logger"
	"github.com/arrenda/arrenda-api/internal/types/api/params"
	"github.com/arrenda/arrenda-api/internal/types/api/responses"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrAPIKeyInvalid indicates a presented API key did not match any active
// stored key.
var ErrAPIKeyInvalid = errors.New("invalid api key")

// APIKeyService handles business logic for API key operations
type APIKeyService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewAPIKeyService creates a new instance of APIKeyService
func NewAPIKeyService(queries db.Querier) *APIKeyService {
	return &APIKeyService{
		queries: queries,
		logger:  logger.Log,
	}
}

// CreateAPIKey generates, hashes, and stores a new key for a user. The
// plain key is returned once and never stored.
func (s *APIKeyService) CreateAPIKey(ctx context.Context, params params.CreateAPIKeyParams) (*responses.CreatedAPIKeyResponse, error) {
	fullKey, keyPrefix, err := helpers.GenerateAPIKey()
	if err != nil {
		return nil, err
	}

	keyHash, err := helpers.HashAPIKey(fullKey)
	if err != nil {
		return nil, err
	}

	arg := db.CreateApiKeyParams{
		UserID:    params.UserID,
		Name:      params.Name,
		KeyHash:   keyHash,
		KeyPrefix: keyPrefix,
	}

	if params.ExpiresAt != nil && *params.ExpiresAt != "" {
		expiresAt, err := time.Parse(time.RFC3339, *params.ExpiresAt)
		if err != nil {
			return nil, fmt.Errorf("invalid expires_at: %w", err)
		}
		arg.ExpiresAt = helpers.TimestamptzFromTime(expiresAt)
	}

	key, err := s.queries.CreateApiKey(ctx, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to create api key: %w", err)
	}

	s.logger.Info("Created API key",
		zap.String("api_key_id", key.ID.String()),
		zap.String("user_id", key.UserID.String()),
		zap.String("key_prefix", key.KeyPrefix))

	return &responses.CreatedAPIKeyResponse{
		APIKeyResponse: s.toResponse(key),
		Key:            fullKey,
	}, nil
}

// ValidateAPIKey checks a presented key against the stored hash and records
// its use. Returns the owning key row on success.
func (s *APIKeyService) ValidateAPIKey(ctx context.Context, presentedKey string) (*db.ApiKey, error) {
	keyPrefix := helpers.ExtractKeyPrefix(presentedKey)

	key, err := s.queries.GetApiKeyByPrefix(ctx, keyPrefix)
	if err != nil {
		return nil, errors.Wrap(ErrAPIKeyInvalid, "unknown key prefix")
	}

	if key.ExpiresAt.Valid && key.ExpiresAt.Time.Before(time.Now()) {
		return nil, errors.Wrap(ErrAPIKeyInvalid, "key expired")
	}

	if err := helpers.CompareAPIKeyHash(presentedKey, key.KeyHash); err != nil {
		return nil, errors.Wrap(ErrAPIKeyInvalid, "hash mismatch")
	}

	if err := s.queries.UpdateApiKeyLastUsed(ctx, key.ID); err != nil {
		// Usage tracking must never block authentication.
		s.logger.Warn("Failed to record api key use",
			zap.String("api_key_id", key.ID.String()),
			zap.Error(err))
	}

	return &key, nil
}

// ListAPIKeys returns all keys belonging to a user
func (s *APIKeyService) ListAPIKeys(ctx context.Context, userID uuid.UUID) ([]responses.APIKeyResponse, error) {
	keys, err := s.queries.ListApiKeysByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list api keys: %w", err)
	}

	result := make([]responses.APIKeyResponse, len(keys))
	for i, key := range keys {
		result[i] = s.toResponse(key)
	}

	return result, nil
}

// RevokeAPIKey revokes a key so it can no longer authenticate
func (s *APIKeyService) RevokeAPIKey(ctx context.Context, id uuid.UUID) error {
	if err := s.queries.RevokeApiKey(ctx, id); err != nil {
		return fmt.Errorf("failed to revoke api key: %w", err)
	}

	s.logger.Info("Revoked API key", zap.String("api_key_id", id.String()))
	return nil
}

func (s *APIKeyService) toResponse(key db.ApiKey) responses.APIKeyResponse {
	return responses.APIKeyResponse{
		ID:         key.ID.String(),
		Object:     "api_key",
		Name:       key.Name,
		KeyPrefix:  key.KeyPrefix,
		LastUsedAt: helpers.TimePtr(key.LastUsedAt),
		ExpiresAt:  helpers.TimePtr(key.ExpiresAt),
		RevokedAt:  helpers.TimePtr(key.RevokedAt),
		CreatedAt:  helpers.TimeOrZero(key.CreatedAt),
	}
}
