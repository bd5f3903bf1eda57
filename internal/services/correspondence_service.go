package services

import (
	"context"
	"fmt"

	awsclient "github.com/arrenda/arrenda-api/internal/client/aws"
	"github.com/arrenda/arrenda-api/internal/db"
	"github.com/arrenda/arrenda-api/internal/logger"
	"github.com/arrenda/arrenda-api/internal/types/api/params"
	"github.com/arrenda/arrenda-api/internal/types/api/responses"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// NoticeQueue abstracts the outbound notice queue so the service can be
// tested without AWS.
type NoticeQueue interface {
	Publish(ctx context.Context, msg awsclient.NoticeMessage) error
}

// CorrespondenceService renders templates against leases and queues the
// rendered notices for delivery.
type CorrespondenceService struct {
	queries   db.Querier
	templates *TemplateService
	queue     NoticeQueue
	logger    *zap.Logger
}

// NewCorrespondenceService creates a new correspondence service
func NewCorrespondenceService(queries db.Querier, templates *TemplateService, queue NoticeQueue) *CorrespondenceService {
	return &CorrespondenceService{
		queries:   queries,
		templates: templates,
		queue:     queue,
		logger:    logger.Log,
	}
}

// SendNotice renders a template for a lease and queues it for delivery to
// the lease's tenant.
func (s *CorrespondenceService) SendNotice(ctx context.Context, params params.SendNoticeParams) (*responses.NoticeResponse, error) {
	if s.queue == nil {
		return nil, errors.New("notice queue is not configured")
	}

	details, err := s.queries.GetLeaseDetails(ctx, params.LeaseID)
	if err != nil {
		return nil, fmt.Errorf("lease details lookup failed: %w", err)
	}
	if !details.TenantEmail.Valid || details.TenantEmail.String == "" {
		return nil, fmt.Errorf("tenant %s has no email address", details.TenantName)
	}

	rendered, err := s.templates.RenderForLease(ctx, params.TemplateID, params.LeaseID)
	if err != nil {
		return nil, err
	}

	noticeID := uuid.New().String()
	msg := awsclient.NoticeMessage{
		NoticeID:   noticeID,
		TemplateID: params.TemplateID.String(),
		LeaseID:    params.LeaseID.String(),
		Recipient:  details.TenantEmail.String,
		Subject:    rendered.Subject,
		Content:    rendered.Content,
	}

	if err := s.queue.Publish(ctx, msg); err != nil {
		return nil, err
	}

	s.logger.Info("Notice queued for delivery",
		zap.String("notice_id", noticeID),
		zap.String("template_id", msg.TemplateID),
		zap.String("recipient", msg.Recipient))

	return &responses.NoticeResponse{
		NoticeID:   noticeID,
		TemplateID: msg.TemplateID,
		LeaseID:    msg.LeaseID,
		Recipient:  msg.Recipient,
		Status:     "queued",
	}, nil
}
