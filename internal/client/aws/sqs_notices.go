package aws

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"go.uber.org/zap"

	"github.com/arrenda/arrenda-api/internal/logger"
)

// NoticeMessage is the payload queued for the notice processor. It carries
// fully rendered content so the processor needs no database access to send.
type NoticeMessage struct {
	NoticeID   string `json:"notice_id"`
	TemplateID string `json:"template_id"`
	LeaseID    string `json:"lease_id"`
	Recipient  string `json:"recipient"`
	Subject    string `json:"subject"`
	Content    string `json:"content"`
}

// NoticePublisher publishes rendered tenant notices to the notices SQS queue.
type NoticePublisher struct {
	client   *sqs.Client
	queueURL string
}

// NewNoticePublisher creates a publisher for the given queue URL.
func NewNoticePublisher(ctx context.Context, queueURL string) (*NoticePublisher, error) {
	if queueURL == "" {
		return nil, fmt.Errorf("notices queue URL is empty")
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}

	return &NoticePublisher{
		client:   sqs.NewFromConfig(cfg),
		queueURL: queueURL,
	}, nil
}

// Publish enqueues one notice message.
func (p *NoticePublisher) Publish(ctx context.Context, msg NoticeMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal notice message: %w", err)
	}

	out, err := p.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(string(body)),
	})
	if err != nil {
		return fmt.Errorf("failed to send notice message: %w", err)
	}

	logger.Log.Info("Queued tenant notice",
		zap.String("notice_id", msg.NoticeID),
		zap.String("lease_id", msg.LeaseID),
		zap.Stringp("sqs_message_id", out.MessageId))

	return nil
}
