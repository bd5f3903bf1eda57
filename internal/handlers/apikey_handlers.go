package handlers

import (
	"net/http"

	"github.com/arrenda/arrenda-api/internal/client/auth"
	"github.com/arrenda/arrenda-api/internal/types/api/params"
	"github.com/arrenda/arrenda-api/internal/types/api/requests"
	"github.com/arrenda/arrenda-api/internal/types/api/responses"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// APIKeyHandler handles API key operations
type APIKeyHandler struct {
	common *CommonServices
	logger *zap.Logger
}

// NewAPIKeyHandler creates a new API key handler
func NewAPIKeyHandler(common *CommonServices, logger *zap.Logger) *APIKeyHandler {
	if logger == nil {
		logger = zap.L()
	}
	return &APIKeyHandler{
		common: common,
		logger: logger,
	}
}

// Use types from the centralized packages
type CreateAPIKeyRequest = requests.CreateAPIKeyRequest
type APIKeyResponse = responses.APIKeyResponse
type CreatedAPIKeyResponse = responses.CreatedAPIKeyResponse

// authenticatedUserID extracts the user ID set by the auth middleware.
func authenticatedUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(auth.UserIDKey)
	if !exists {
		sendError(c, http.StatusUnauthorized, "Authentication required", nil)
		return uuid.Nil, false
	}

	idStr, _ := value.(string)
	userID, err := uuid.Parse(idStr)
	if err != nil {
		sendError(c, http.StatusUnauthorized, "Invalid authenticated user", err)
		return uuid.Nil, false
	}
	return userID, true
}

// CreateAPIKey godoc
// @Summary Create an API key
// @Description Creates a new API key, the full key is returned only once
// @Tags api-keys
// @Accept json
// @Produce json
// @Param api_key body CreateAPIKeyRequest true "API key details"
// @Success 201 {object} CreatedAPIKeyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api-keys [post]
func (h *APIKeyHandler) CreateAPIKey(c *gin.Context) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	var req CreateAPIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	created, err := h.common.APIKeyService.CreateAPIKey(c.Request.Context(), params.CreateAPIKeyParams{
		UserID:    userID,
		Name:      req.Name,
		ExpiresAt: optionalString(req.ExpiresAt),
	})
	if err != nil {
		sendError(c, http.StatusBadRequest, "Failed to create API key", err)
		return
	}

	sendSuccess(c, http.StatusCreated, created)
}

// ListAPIKeys godoc
// @Summary List API keys
// @Description Retrieves the authenticated user's API keys, secrets omitted
// @Tags api-keys
// @Accept json
// @Produce json
// @Success 200 {object} responses.PaginatedResponse
// @Failure 401 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api-keys [get]
func (h *APIKeyHandler) ListAPIKeys(c *gin.Context) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	keys, err := h.common.APIKeyService.ListAPIKeys(c.Request.Context(), userID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list API keys", err)
		return
	}

	sendSuccess(c, http.StatusOK, gin.H{"object": "list", "data": keys})
}

// RevokeAPIKey godoc
// @Summary Revoke an API key
// @Description Revokes an API key so it can no longer authenticate
// @Tags api-keys
// @Accept json
// @Produce json
// @Param api_key_id path string true "API Key ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api-keys/{api_key_id} [delete]
func (h *APIKeyHandler) RevokeAPIKey(c *gin.Context) {
	keyID, ok := parseUUIDParam(c, "api_key_id")
	if !ok {
		return
	}

	if err := h.common.APIKeyService.RevokeAPIKey(c.Request.Context(), keyID); err != nil {
		handleDBError(c, err, "API key not found")
		return
	}

	sendSuccessMessage(c, http.StatusOK, "API key revoked successfully")
}
