package handlers

import (
	"net/http"

	"github.com/arrenda/arrenda-api/internal/db"
	"github.com/arrenda/arrenda-api/internal/helpers"
	"github.com/arrenda/arrenda-api/internal/types/api/responses"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler handles user account operations
type UserHandler struct {
	common *CommonServices
	logger *zap.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(common *CommonServices, logger *zap.Logger) *UserHandler {
	if logger == nil {
		logger = zap.L()
	}
	return &UserHandler{
		common: common,
		logger: logger,
	}
}

// Use types from the centralized packages
type UserResponse = responses.UserResponse

// GetUser godoc
// @Summary Get a user
// @Description Retrieves a user account by its ID
// @Tags admin
// @Accept json
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/users/{user_id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, ok := parseUUIDParam(c, "user_id")
	if !ok {
		return
	}

	user, err := h.common.UserService.GetUser(c.Request.Context(), userID)
	if err != nil {
		handleDBError(c, err, "User not found")
		return
	}

	sendSuccess(c, http.StatusOK, toUserResponse(user))
}

func toUserResponse(user *db.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Object:    "user",
		Email:     user.Email,
		Name:      helpers.TextOrEmpty(user.Name),
		Role:      user.Role,
		CreatedAt: helpers.TimeOrZero(user.CreatedAt),
	}
}
