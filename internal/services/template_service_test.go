package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/arrenda/arrenda-api/internal/db"
	"github.com/arrenda/arrenda-api/internal/helpers"
	"github.com/arrenda/arrenda-api/internal/mocks"
	"github.com/arrenda/arrenda-api/internal/services"
	"github.com/arrenda/arrenda-api/internal/types/api/params"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTemplateService_CreateTemplate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewTemplateService(mockQuerier)

	templateID := uuid.New()
	category := "rent_reminder"
	subject := "Rent due for {{property_name}}"

	mockQuerier.EXPECT().
		CreateTemplate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateTemplateParams) (db.CorrespondenceTemplate, error) {
			assert.Equal(t, "Monthly reminder", arg.Name)
			assert.Equal(t, category, arg.Category.String)
			return db.CorrespondenceTemplate{
				ID:       templateID,
				Name:     arg.Name,
				Category: arg.Category,
				Subject:  arg.Subject,
				Content:  arg.Content,
			}, nil
		})

	resp, err := service.CreateTemplate(context.Background(), params.CreateTemplateParams{
		Name:     "Monthly reminder",
		Category: &category,
		Subject:  &subject,
		Content:  "Dear {{tenant_name}}, rent of {{rent_amount}} is due.",
	})

	require.NoError(t, err)
	assert.Equal(t, templateID.String(), resp.ID)
	assert.Equal(t, "correspondence_template", resp.Object)
	assert.Equal(t, category, resp.Category)
}

func TestTemplateService_CreateTemplate_EmptyContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewTemplateService(mockQuerier)

	resp, err := service.CreateTemplate(context.Background(), params.CreateTemplateParams{
		Name:    "Empty",
		Content: "",
	})

	require.ErrorIs(t, err, services.ErrInvalidTemplate)
	assert.Nil(t, resp)
}

func TestTemplateService_UpdateTemplate_EmptyContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewTemplateService(mockQuerier)

	empty := ""
	resp, err := service.UpdateTemplate(context.Background(), params.UpdateTemplateParams{
		ID:      uuid.New(),
		Content: &empty,
	})

	require.ErrorIs(t, err, services.ErrInvalidTemplate)
	assert.Nil(t, resp)
}

func TestTemplateService_RenderForLease(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewTemplateService(mockQuerier)

	templateID := uuid.New()
	leaseID := uuid.New()

	rent, err := helpers.NumericFromFloat(750)
	require.NoError(t, err)

	mockQuerier.EXPECT().
		GetTemplate(gomock.Any(), templateID).
		Return(db.CorrespondenceTemplate{
			ID:      templateID,
			Name:    "Monthly reminder",
			Subject: helpers.TextFromString("Rent due for {{property_name}}"),
			Content: "Dear {{tenant_name}}, rent of {{rent_amount}} for {{property_address}} is due.",
		}, nil)
	mockQuerier.EXPECT().
		GetLeaseDetails(gomock.Any(), leaseID).
		Return(db.GetLeaseDetailsRow{
			ID:              leaseID,
			PropertyID:      uuid.New(),
			TenantID:        uuid.New(),
			RentAmount:      rent,
			Currency:        "EUR",
			StartDate:       helpers.DateFromTime(time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)),
			Status:          "active",
			TenantName:      "Ana Costa",
			PropertyName:    "Flores 12",
			PropertyAddress: "Rua das Flores 12",
			PropertyCity:    "Lisboa",
		}, nil)

	rendered, err := service.RenderForLease(context.Background(), templateID, leaseID)

	require.NoError(t, err)
	assert.Equal(t, templateID.String(), rendered.TemplateID)
	assert.Equal(t, leaseID.String(), rendered.LeaseID)
	assert.Equal(t, "Rent due for Flores 12", rendered.Subject)
	assert.Equal(t,
		"Dear Ana Costa, rent of 750 for Rua das Flores 12, Lisboa is due.",
		rendered.Content)
	assert.Equal(t, []string{"tenant_name", "rent_amount", "property_address"}, rendered.Variables)
}

func TestTemplateService_RenderForLease_EmptyStoredContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewTemplateService(mockQuerier)

	templateID := uuid.New()

	mockQuerier.EXPECT().
		GetTemplate(gomock.Any(), templateID).
		Return(db.CorrespondenceTemplate{ID: templateID, Name: "Broken"}, nil)

	rendered, err := service.RenderForLease(context.Background(), templateID, uuid.New())

	require.ErrorIs(t, err, services.ErrInvalidTemplate)
	assert.Nil(t, rendered)
}

func TestTemplateService_RenderContentForLease(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewTemplateService(mockQuerier)

	leaseID := uuid.New()
	asOf := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	rent, err := helpers.NumericFromFloat(920.50)
	require.NoError(t, err)

	mockQuerier.EXPECT().
		GetLeaseDetails(gomock.Any(), leaseID).
		Return(db.GetLeaseDetailsRow{
			ID:              leaseID,
			RentAmount:      rent,
			TenantName:      "Carlos Ruiz",
			PropertyName:    "Calle Mayor 3",
			PropertyAddress: "Calle Mayor 3",
		}, nil)

	rendered, err := service.RenderContentForLease(context.Background(),
		"{{tenant_name}}: payment of {{rent_amount}} recorded on {{due_date}}. Gate code {{access_code}}.",
		leaseID, asOf)

	require.NoError(t, err)
	// due_date resolves to the fixed as-of date; unknown placeholders survive.
	assert.Equal(t,
		"Carlos Ruiz: payment of 920.5 recorded on 10/03/2025. Gate code {{access_code}}.",
		rendered.Content)
	assert.Equal(t, []string{"tenant_name", "rent_amount", "due_date", "access_code"}, rendered.Variables)
}

func TestTemplateService_RenderContentForLease_EmptyContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewTemplateService(mockQuerier)

	rendered, err := service.RenderContentForLease(context.Background(), "", uuid.New(), time.Now())

	require.ErrorIs(t, err, services.ErrInvalidTemplate)
	assert.Nil(t, rendered)
}
