package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arrenda/arrenda-api/internal/constants"
	"github.com/arrenda/arrenda-api/internal/db"
	"github.com/arrenda/arrenda-api/internal/helpers"
	"github.com/arrenda/arrenda-api/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestUserHandler_GetUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)

	userID := uuid.New()
	mockQuerier.EXPECT().
		GetUser(gomock.Any(), userID).
		Return(db.User{
			ID:    userID,
			Email: "admin@arrenda.io",
			Name:  helpers.TextFromString("Marta Silva"),
			Role:  constants.AdminRole,
		}, nil)

	handler := &UserHandler{
		common: NewCommonServices(CommonServicesConfig{DB: mockQuerier}),
		logger: zap.NewNop(),
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/admin/users/"+userID.String(), nil)
	c.Params = gin.Params{{Key: "user_id", Value: userID.String()}}

	handler.GetUser(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, userID.String(), resp.ID)
	assert.Equal(t, "user", resp.Object)
	assert.Equal(t, "admin@arrenda.io", resp.Email)
	assert.Equal(t, "Marta Silva", resp.Name)
	assert.Equal(t, constants.AdminRole, resp.Role)
}

func TestUserHandler_GetUser_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)

	handler := &UserHandler{
		common: NewCommonServices(CommonServicesConfig{DB: mockQuerier}),
		logger: zap.NewNop(),
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/admin/users/not-a-uuid", nil)
	c.Params = gin.Params{{Key: "user_id", Value: "not-a-uuid"}}

	handler.GetUser(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid user_id format")
}

func TestUserHandler_GetUser_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)

	userID := uuid.New()
	mockQuerier.EXPECT().
		GetUser(gomock.Any(), userID).
		Return(db.User{}, pgx.ErrNoRows)

	handler := &UserHandler{
		common: NewCommonServices(CommonServicesConfig{DB: mockQuerier}),
		logger: zap.NewNop(),
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/admin/users/"+userID.String(), nil)
	c.Params = gin.Params{{Key: "user_id", Value: userID.String()}}

	handler.GetUser(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")
}
