package services_test

import (
	"context"
	"testing"
	"time"

	awsclient "github.com/arrenda/arrenda-api/internal/client/aws"
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

type fakeNoticeQueue struct {
	published []awsclient.NoticeMessage
	err       error
}

func (q *fakeNoticeQueue) Publish(_ context.Context, msg awsclient.NoticeMessage) error {
	if q.err != nil {
		return q.err
	}
	q.published = append(q.published, msg)
	return nil
}

func TestCorrespondenceService_SendNotice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	queue := &fakeNoticeQueue{}
	templates := services.NewTemplateService(mockQuerier)
	service := services.NewCorrespondenceService(mockQuerier, templates, queue)

	templateID := uuid.New()
	leaseID := uuid.New()

	rent, err := helpers.NumericFromFloat(750)
	require.NoError(t, err)

	details := db.GetLeaseDetailsRow{
		ID:              leaseID,
		RentAmount:      rent,
		TenantName:      "Ana Costa",
		TenantEmail:     helpers.TextFromString("ana.costa@example.pt"),
		PropertyName:    "Flores 12",
		PropertyAddress: "Rua das Flores 12",
		PropertyCity:    "Lisboa",
		StartDate:       helpers.DateFromTime(time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)),
	}

	// Looked up once by the correspondence service and once by the renderer.
	mockQuerier.EXPECT().
		GetLeaseDetails(gomock.Any(), leaseID).
		Return(details, nil).
		Times(2)
	mockQuerier.EXPECT().
		GetTemplate(gomock.Any(), templateID).
		Return(db.CorrespondenceTemplate{
			ID:      templateID,
			Name:    "Monthly reminder",
			Subject: helpers.TextFromString("Rent due"),
			Content: "Dear {{tenant_name}}, rent of {{rent_amount}} is due.",
		}, nil)

	resp, err := service.SendNotice(context.Background(), params.SendNoticeParams{
		TemplateID: templateID,
		LeaseID:    leaseID,
	})

	require.NoError(t, err)
	assert.Equal(t, "queued", resp.Status)
	assert.Equal(t, "ana.costa@example.pt", resp.Recipient)
	assert.NotEmpty(t, resp.NoticeID)

	require.Len(t, queue.published, 1)
	msg := queue.published[0]
	assert.Equal(t, resp.NoticeID, msg.NoticeID)
	assert.Equal(t, "Dear Ana Costa, rent of 750 is due.", msg.Content)
	assert.Equal(t, "Rent due", msg.Subject)
}

func TestCorrespondenceService_SendNotice_NoTenantEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	queue := &fakeNoticeQueue{}
	templates := services.NewTemplateService(mockQuerier)
	service := services.NewCorrespondenceService(mockQuerier, templates, queue)

	leaseID := uuid.New()

	mockQuerier.EXPECT().
		GetLeaseDetails(gomock.Any(), leaseID).
		Return(db.GetLeaseDetailsRow{ID: leaseID, TenantName: "Ana Costa"}, nil)

	resp, err := service.SendNotice(context.Background(), params.SendNoticeParams{
		TemplateID: uuid.New(),
		LeaseID:    leaseID,
	})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "no email address")
	assert.Empty(t, queue.published)
}

func TestCorrespondenceService_SendNotice_QueueNotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	templates := services.NewTemplateService(mockQuerier)
	service := services.NewCorrespondenceService(mockQuerier, templates, nil)

	resp, err := service.SendNotice(context.Background(), params.SendNoticeParams{
		TemplateID: uuid.New(),
		LeaseID:    uuid.New(),
	})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "notice queue is not configured")
}

func TestCorrespondenceService_SendNotice_PublishFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	queue := &fakeNoticeQueue{err: assert.AnError}
	templates := services.NewTemplateService(mockQuerier)
	service := services.NewCorrespondenceService(mockQuerier, templates, queue)

	templateID := uuid.New()
	leaseID := uuid.New()

	rent, err := helpers.NumericFromFloat(500)
	require.NoError(t, err)

	mockQuerier.EXPECT().
		GetLeaseDetails(gomock.Any(), leaseID).
		Return(db.GetLeaseDetailsRow{
			ID:          leaseID,
			RentAmount:  rent,
			TenantName:  "Ana Costa",
			TenantEmail: helpers.TextFromString("ana.costa@example.pt"),
		}, nil).
		Times(2)
	mockQuerier.EXPECT().
		GetTemplate(gomock.Any(), templateID).
		Return(db.CorrespondenceTemplate{ID: templateID, Content: "Hello {{tenant_name}}"}, nil)

	resp, err := service.SendNotice(context.Background(), params.SendNoticeParams{
		TemplateID: templateID,
		LeaseID:    leaseID,
	})

	require.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, resp)
}
