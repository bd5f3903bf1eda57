package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
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

func postJSON(t *testing.T, path, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestLeaseHandler_CreateLease(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)

	propertyID := uuid.New()
	tenantID := uuid.New()
	leaseID := uuid.New()

	mockQuerier.EXPECT().
		GetProperty(gomock.Any(), propertyID).
		Return(db.Property{ID: propertyID}, nil)
	mockQuerier.EXPECT().
		GetTenant(gomock.Any(), tenantID).
		Return(db.Tenant{ID: tenantID}, nil)
	mockQuerier.EXPECT().
		CreateLease(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateLeaseParams) (db.Lease, error) {
			assert.Equal(t, constants.EURCurrency, arg.Currency)
			assert.Equal(t, "2024-09-01", helpers.DateString(arg.StartDate))
			assert.Equal(t, "2025-08-31", helpers.DateString(arg.EndDate))
			return db.Lease{
				ID:         leaseID,
				PropertyID: arg.PropertyID,
				TenantID:   arg.TenantID,
				RentAmount: arg.RentAmount,
				Currency:   arg.Currency,
				StartDate:  arg.StartDate,
				EndDate:    arg.EndDate,
				Status:     constants.LeaseStatusActive,
			}, nil
		})

	handler := &LeaseHandler{
		common: NewCommonServices(CommonServicesConfig{DB: mockQuerier}),
		logger: zap.NewNop(),
	}

	body := fmt.Sprintf(`{"property_id":%q,"tenant_id":%q,"rent_amount":750,"start_date":"2024-09-01","end_date":"2025-08-31"}`,
		propertyID.String(), tenantID.String())
	c, w := postJSON(t, "/leases", body)

	handler.CreateLease(c)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp LeaseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, leaseID.String(), resp.ID)
	assert.Equal(t, "lease", resp.Object)
	assert.Equal(t, 750.0, resp.RentAmount)
	assert.Equal(t, constants.LeaseStatusActive, resp.Status)
}

func TestLeaseHandler_CreateLease_PropertyMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)

	propertyID := uuid.New()
	tenantID := uuid.New()

	mockQuerier.EXPECT().
		GetProperty(gomock.Any(), propertyID).
		Return(db.Property{}, pgx.ErrNoRows)

	handler := &LeaseHandler{
		common: NewCommonServices(CommonServicesConfig{DB: mockQuerier}),
		logger: zap.NewNop(),
	}

	body := fmt.Sprintf(`{"property_id":%q,"tenant_id":%q,"rent_amount":750,"start_date":"2024-09-01"}`,
		propertyID.String(), tenantID.String())
	c, w := postJSON(t, "/leases", body)

	handler.CreateLease(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Property or tenant not found")
}

func TestLeaseHandler_CreateLease_InvalidStartDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)

	handler := &LeaseHandler{
		common: NewCommonServices(CommonServicesConfig{DB: mockQuerier}),
		logger: zap.NewNop(),
	}

	body := fmt.Sprintf(`{"property_id":%q,"tenant_id":%q,"rent_amount":750,"start_date":"01-09-2024"}`,
		uuid.New().String(), uuid.New().String())
	c, w := postJSON(t, "/leases", body)

	handler.CreateLease(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid start_date")
}
