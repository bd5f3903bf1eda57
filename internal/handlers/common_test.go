package handlers

import (
	"context"
	"testing"

	"github.com/arrenda/arrenda-api/internal/db"
	"github.com/arrenda/arrenda-api/internal/logger"
	"github.com/arrenda/arrenda-api/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	logger.InitLogger("test")
	gin.SetMode(gin.TestMode)
}

func TestCommonServices_InTransaction_NoPool(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	common := NewCommonServices(CommonServicesConfig{DB: mockQuerier})

	var seen db.Querier
	err := common.InTransaction(context.Background(), func(q db.Querier) error {
		seen = q
		return nil
	})

	require.NoError(t, err)
	assert.Same(t, mockQuerier, seen)
}

func TestCommonServices_RunInTransaction_NoPool(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	common := NewCommonServices(CommonServicesConfig{DB: mockQuerier})

	err := common.RunInTransaction(context.Background(), func(qtx *db.Queries) error {
		t.Fatal("callback must not run without a pool")
		return nil
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "pool not available")
}
