package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/arrenda/arrenda-api/internal/db"
	"github.com/arrenda/arrenda-api/internal/helpers"
	"github.com/arrenda/arrenda-api/internal/mocks"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestReceiptHandler_CreateReceipt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)

	leaseID := uuid.New()
	receiptID := uuid.New()

	mockQuerier.EXPECT().
		GetLease(gomock.Any(), leaseID).
		Return(db.Lease{ID: leaseID}, nil)
	mockQuerier.EXPECT().
		CreateReceipt(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateReceiptParams) (db.Receipt, error) {
			assert.Equal(t, "2024-09-01", helpers.DateString(arg.PeriodStart))
			assert.Equal(t, "2024-09-30", helpers.DateString(arg.PeriodEnd))
			assert.True(t, strings.HasPrefix(arg.Reference, "RC-202409-"))
			return db.Receipt{
				ID:          receiptID,
				LeaseID:     arg.LeaseID,
				Amount:      arg.Amount,
				PeriodStart: arg.PeriodStart,
				PeriodEnd:   arg.PeriodEnd,
				Method:      arg.Method,
				Reference:   arg.Reference,
			}, nil
		})

	handler := &ReceiptHandler{
		common: NewCommonServices(CommonServicesConfig{DB: mockQuerier}),
		logger: zap.NewNop(),
	}

	body := fmt.Sprintf(`{"lease_id":%q,"amount":750,"period_start":"2024-09-01","period_end":"2024-09-30","method":"bank_transfer"}`,
		leaseID.String())
	c, w := postJSON(t, "/receipts", body)

	handler.CreateReceipt(c)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp ReceiptResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, receiptID.String(), resp.ID)
	assert.Equal(t, leaseID.String(), resp.LeaseID)
	assert.Equal(t, 750.0, resp.Amount)
	assert.Equal(t, "bank_transfer", resp.Method)
}

func TestReceiptHandler_CreateReceipt_LeaseMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)

	leaseID := uuid.New()

	mockQuerier.EXPECT().
		GetLease(gomock.Any(), leaseID).
		Return(db.Lease{}, pgx.ErrNoRows)

	handler := &ReceiptHandler{
		common: NewCommonServices(CommonServicesConfig{DB: mockQuerier}),
		logger: zap.NewNop(),
	}

	body := fmt.Sprintf(`{"lease_id":%q,"amount":750,"period_start":"2024-09-01","period_end":"2024-09-30"}`,
		leaseID.String())
	c, w := postJSON(t, "/receipts", body)

	handler.CreateReceipt(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
