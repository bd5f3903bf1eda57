package services_test

import (
	"context"
	"testing"

	"github.com/arrenda/arrenda-api/internal/db"
	"github.com/arrenda/arrenda-api/internal/mocks"
	"github.com/arrenda/arrenda-api/internal/services"
	"github.com/arrenda/arrenda-api/internal/types/api/params"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTenantService_CreateTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewTenantService(mockQuerier)

	tenantID := uuid.New()
	taxNumber := "123456789" // valid Portuguese NIF
	email := "ana.costa@example.pt"

	mockQuerier.EXPECT().
		CreateTenant(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateTenantParams) (db.Tenant, error) {
			assert.Equal(t, "Ana Costa", arg.Name)
			assert.Equal(t, email, arg.Email.String)
			assert.Equal(t, taxNumber, arg.TaxNumber.String)
			return db.Tenant{
				ID:        tenantID,
				Name:      arg.Name,
				Email:     arg.Email,
				TaxNumber: arg.TaxNumber,
			}, nil
		})

	resp, err := service.CreateTenant(context.Background(), params.CreateTenantParams{
		Name:      "Ana Costa",
		Email:     &email,
		TaxNumber: &taxNumber,
	})

	require.NoError(t, err)
	assert.Equal(t, tenantID.String(), resp.ID)
	assert.Equal(t, "tenant", resp.Object)
	assert.Equal(t, "Ana Costa", resp.Name)
	assert.Equal(t, email, resp.Email)
	assert.Equal(t, taxNumber, resp.TaxNumber)
}

func TestTenantService_CreateTenant_InvalidTaxNumber(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewTenantService(mockQuerier)

	tests := []struct {
		name      string
		taxNumber string
	}{
		{name: "bad NIF check digit", taxNumber: "123456780"},
		{name: "bad DNI letter", taxNumber: "12345678A"},
		{name: "too short", taxNumber: "12345"},
		{name: "non numeric", taxNumber: "abcdefghi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No db call is expected when validation fails.
			resp, err := service.CreateTenant(context.Background(), params.CreateTenantParams{
				Name:      "Ana Costa",
				TaxNumber: &tt.taxNumber,
			})

			require.Error(t, err)
			assert.Nil(t, resp)
			assert.Contains(t, err.Error(), "invalid tax number")
		})
	}
}

func TestTenantService_CreateTenant_SpanishDNI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewTenantService(mockQuerier)

	taxNumber := "12345678Z"

	mockQuerier.EXPECT().
		CreateTenant(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateTenantParams) (db.Tenant, error) {
			return db.Tenant{ID: uuid.New(), Name: arg.Name, TaxNumber: arg.TaxNumber}, nil
		})

	resp, err := service.CreateTenant(context.Background(), params.CreateTenantParams{
		Name:      "Carlos Ruiz",
		TaxNumber: &taxNumber,
	})

	require.NoError(t, err)
	assert.Equal(t, taxNumber, resp.TaxNumber)
}

func TestTenantService_GetTenant_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewTenantService(mockQuerier)

	tenantID := uuid.New()

	mockQuerier.EXPECT().
		GetTenant(gomock.Any(), tenantID).
		Return(db.Tenant{}, pgx.ErrNoRows)

	resp, err := service.GetTenant(context.Background(), tenantID)

	// The raw pgx error passes through so handlers can map it to a 404.
	require.ErrorIs(t, err, pgx.ErrNoRows)
	assert.Nil(t, resp)
}

func TestTenantService_ListTenants(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewTenantService(mockQuerier)

	tenants := []db.Tenant{
		{ID: uuid.New(), Name: "Ana Costa"},
		{ID: uuid.New(), Name: "Carlos Ruiz"},
	}

	mockQuerier.EXPECT().
		ListTenants(gomock.Any(), db.ListTenantsParams{Limit: 10, Offset: 0}).
		Return(tenants, nil)
	mockQuerier.EXPECT().
		CountTenants(gomock.Any()).
		Return(int64(42), nil)

	resp, total, err := service.ListTenants(context.Background(), params.ListTenantsParams{
		Limit:  10,
		Offset: 0,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), total)
	require.Len(t, resp, 2)
	assert.Equal(t, tenants[0].ID.String(), resp[0].ID)
	assert.Equal(t, "Carlos Ruiz", resp[1].Name)
}

func TestTenantService_UpdateTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewTenantService(mockQuerier)

	tenantID := uuid.New()
	newName := "Ana Costa Pereira"

	mockQuerier.EXPECT().
		UpdateTenant(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.UpdateTenantParams) (db.Tenant, error) {
			assert.Equal(t, tenantID, arg.ID)
			assert.Equal(t, newName, arg.Name.String)
			assert.False(t, arg.Email.Valid)
			return db.Tenant{ID: tenantID, Name: newName}, nil
		})

	resp, err := service.UpdateTenant(context.Background(), params.UpdateTenantParams{
		ID:   tenantID,
		Name: &newName,
	})

	require.NoError(t, err)
	assert.Equal(t, newName, resp.Name)
}

func TestTenantService_DeleteTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewTenantService(mockQuerier)

	tenantID := uuid.New()

	mockQuerier.EXPECT().
		DeleteTenant(gomock.Any(), tenantID).
		Return(nil)

	err := service.DeleteTenant(context.Background(), tenantID)
	require.NoError(t, err)
}
