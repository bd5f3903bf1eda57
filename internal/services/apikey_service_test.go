package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/arrenda/arrenda-api/internal/db"
	"github.com/arrenda/arrenda-api/internal/helpers"
	"github.com/arrenda/arrenda-api/internal/mocks"
	"github.com/arrenda/arrenda-api/internal/services"
	"github.com/arrenda/arrenda-api/internal/types/api/params"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAPIKeyService_CreateAPIKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewAPIKeyService(mockQuerier)

	userID := uuid.New()
	keyID := uuid.New()

	var storedHash string
	mockQuerier.EXPECT().
		CreateApiKey(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateApiKeyParams) (db.ApiKey, error) {
			assert.Equal(t, userID, arg.UserID)
			assert.Equal(t, "ci pipeline", arg.Name)
			assert.True(t, strings.HasPrefix(arg.KeyPrefix, "arr_"))
			assert.False(t, arg.ExpiresAt.Valid)
			storedHash = arg.KeyHash
			return db.ApiKey{
				ID:        keyID,
				UserID:    arg.UserID,
				Name:      arg.Name,
				KeyHash:   arg.KeyHash,
				KeyPrefix: arg.KeyPrefix,
			}, nil
		})

	resp, err := service.CreateAPIKey(context.Background(), params.CreateAPIKeyParams{
		UserID: userID,
		Name:   "ci pipeline",
	})

	require.NoError(t, err)
	assert.Equal(t, keyID.String(), resp.ID)
	assert.Equal(t, "api_key", resp.Object)
	assert.True(t, strings.HasPrefix(resp.Key, "arr_"))
	assert.Equal(t, helpers.ExtractKeyPrefix(resp.Key), resp.KeyPrefix)
	// The returned plain key must verify against the stored hash.
	require.NoError(t, helpers.CompareAPIKeyHash(resp.Key, storedHash))
}

func TestAPIKeyService_CreateAPIKey_WithExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewAPIKeyService(mockQuerier)

	expiresAt := "2027-01-01T00:00:00Z"

	mockQuerier.EXPECT().
		CreateApiKey(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateApiKeyParams) (db.ApiKey, error) {
			require.True(t, arg.ExpiresAt.Valid)
			assert.Equal(t, 2027, arg.ExpiresAt.Time.Year())
			return db.ApiKey{ID: uuid.New(), UserID: arg.UserID, Name: arg.Name, KeyPrefix: arg.KeyPrefix, ExpiresAt: arg.ExpiresAt}, nil
		})

	resp, err := service.CreateAPIKey(context.Background(), params.CreateAPIKeyParams{
		UserID:    uuid.New(),
		Name:      "expiring key",
		ExpiresAt: &expiresAt,
	})

	require.NoError(t, err)
	require.NotNil(t, resp.ExpiresAt)
}

func TestAPIKeyService_CreateAPIKey_InvalidExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewAPIKeyService(mockQuerier)

	expiresAt := "next tuesday"

	resp, err := service.CreateAPIKey(context.Background(), params.CreateAPIKeyParams{
		UserID:    uuid.New(),
		Name:      "bad expiry",
		ExpiresAt: &expiresAt,
	})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "invalid expires_at")
}

func TestAPIKeyService_ValidateAPIKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewAPIKeyService(mockQuerier)

	fullKey, keyPrefix, err := helpers.GenerateAPIKey()
	require.NoError(t, err)
	keyHash, err := helpers.HashAPIKey(fullKey)
	require.NoError(t, err)

	keyID := uuid.New()

	mockQuerier.EXPECT().
		GetApiKeyByPrefix(gomock.Any(), keyPrefix).
		Return(db.ApiKey{ID: keyID, KeyHash: keyHash, KeyPrefix: keyPrefix}, nil)
	mockQuerier.EXPECT().
		UpdateApiKeyLastUsed(gomock.Any(), keyID).
		Return(nil)

	key, err := service.ValidateAPIKey(context.Background(), fullKey)

	require.NoError(t, err)
	assert.Equal(t, keyID, key.ID)
}

func TestAPIKeyService_ValidateAPIKey_UnknownPrefix(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewAPIKeyService(mockQuerier)

	mockQuerier.EXPECT().
		GetApiKeyByPrefix(gomock.Any(), gomock.Any()).
		Return(db.ApiKey{}, pgx.ErrNoRows)

	key, err := service.ValidateAPIKey(context.Background(), "arr_doesnotexist1234")

	require.ErrorIs(t, err, services.ErrAPIKeyInvalid)
	assert.Nil(t, key)
}

func TestAPIKeyService_ValidateAPIKey_Expired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewAPIKeyService(mockQuerier)

	fullKey, keyPrefix, err := helpers.GenerateAPIKey()
	require.NoError(t, err)
	keyHash, err := helpers.HashAPIKey(fullKey)
	require.NoError(t, err)

	mockQuerier.EXPECT().
		GetApiKeyByPrefix(gomock.Any(), keyPrefix).
		Return(db.ApiKey{
			ID:        uuid.New(),
			KeyHash:   keyHash,
			KeyPrefix: keyPrefix,
			ExpiresAt: helpers.TimestamptzFromTime(time.Now().Add(-time.Hour)),
		}, nil)

	key, err := service.ValidateAPIKey(context.Background(), fullKey)

	require.ErrorIs(t, err, services.ErrAPIKeyInvalid)
	assert.Nil(t, key)
}

func TestAPIKeyService_ValidateAPIKey_HashMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewAPIKeyService(mockQuerier)

	fullKey, keyPrefix, err := helpers.GenerateAPIKey()
	require.NoError(t, err)
	otherKey, _, err := helpers.GenerateAPIKey()
	require.NoError(t, err)
	otherHash, err := helpers.HashAPIKey(otherKey)
	require.NoError(t, err)

	mockQuerier.EXPECT().
		GetApiKeyByPrefix(gomock.Any(), keyPrefix).
		Return(db.ApiKey{ID: uuid.New(), KeyHash: otherHash, KeyPrefix: keyPrefix}, nil)

	key, err := service.ValidateAPIKey(context.Background(), fullKey)

	require.ErrorIs(t, err, services.ErrAPIKeyInvalid)
	assert.Nil(t, key)
}

func TestAPIKeyService_ValidateAPIKey_UsageTrackingFailureIsNonFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewAPIKeyService(mockQuerier)

	fullKey, keyPrefix, err := helpers.GenerateAPIKey()
	require.NoError(t, err)
	keyHash, err := helpers.HashAPIKey(fullKey)
	require.NoError(t, err)

	keyID := uuid.New()

	mockQuerier.EXPECT().
		GetApiKeyByPrefix(gomock.Any(), keyPrefix).
		Return(db.ApiKey{ID: keyID, KeyHash: keyHash, KeyPrefix: keyPrefix}, nil)
	mockQuerier.EXPECT().
		UpdateApiKeyLastUsed(gomock.Any(), keyID).
		Return(assert.AnError)

	key, err := service.ValidateAPIKey(context.Background(), fullKey)

	require.NoError(t, err)
	assert.Equal(t, keyID, key.ID)
}

func TestAPIKeyService_ListAPIKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewAPIKeyService(mockQuerier)

	userID := uuid.New()
	keys := []db.ApiKey{
		{ID: uuid.New(), UserID: userID, Name: "first", KeyPrefix: "arr_aaaaaaaa"},
		{ID: uuid.New(), UserID: userID, Name: "second", KeyPrefix: "arr_bbbbbbbb"},
	}

	mockQuerier.EXPECT().
		ListApiKeysByUser(gomock.Any(), userID).
		Return(keys, nil)

	resp, err := service.ListAPIKeys(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "first", resp[0].Name)
	assert.Equal(t, "arr_bbbbbbbb", resp[1].KeyPrefix)
}

func TestAPIKeyService_RevokeAPIKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewAPIKeyService(mockQuerier)

	keyID := uuid.New()

	mockQuerier.EXPECT().
		RevokeApiKey(gomock.Any(), keyID).
		Return(nil)

	err := service.RevokeAPIKey(context.Background(), keyID)
	require.NoError(t, err)
}
