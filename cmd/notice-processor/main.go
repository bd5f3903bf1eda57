package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	awsclient "github.com/arrenda/arrenda-api/internal/client/aws"
	"github.com/arrenda/arrenda-api/internal/helpers"
	"github.com/arrenda/arrenda-api/internal/logger"
	"github.com/arrenda/arrenda-api/internal/services"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/cenkalti/backoff/v4"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Application holds the dependencies of the notice processor handler
type Application struct {
	emailService *services.EmailService
	logger       *zap.Logger
}

// HandleSQSEvent delivers queued tenant notices. A failed record aborts the
// batch so SQS redrives the remaining messages.
func (app *Application) HandleSQSEvent(ctx context.Context, event events.SQSEvent) error {
	logger.Info("Notice processor handling SQS event",
		zap.Int("record_count", len(event.Records)))

	for _, record := range event.Records {
		if err := app.processNoticeRecord(ctx, record); err != nil {
			logger.Error("Failed to process notice record",
				zap.String("message_id", record.MessageId),
				zap.Error(err))
			return fmt.Errorf("failed to process message %s: %w", record.MessageId, err)
		}
	}

	logger.Info("Successfully processed all notice records",
		zap.Int("count", len(event.Records)))
	return nil
}

// processNoticeRecord sends a single queued notice, retrying transient
// delivery failures with exponential backoff.
func (app *Application) processNoticeRecord(ctx context.Context, record events.SQSMessage) error {
	var notice awsclient.NoticeMessage
	if err := json.Unmarshal([]byte(record.Body), &notice); err != nil {
		return fmt.Errorf("failed to unmarshal notice message: %w", err)
	}

	logger.Info("Processing notice",
		zap.String("notice_id", notice.NoticeID),
		zap.String("template_id", notice.TemplateID),
		zap.String("lease_id", notice.LeaseID),
		zap.String("recipient", notice.Recipient))

	operation := func() error {
		return app.emailService.SendNotice(ctx, notice.Recipient, notice.Subject, notice.Content)
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 4), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return fmt.Errorf("failed to send notice %s: %w", notice.NoticeID, err)
	}

	logger.Info("Delivered notice",
		zap.String("notice_id", notice.NoticeID),
		zap.String("recipient", notice.Recipient))
	return nil
}

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
	}
	if !helpers.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'", stage)
	}

	logger.InitLogger(stage)
	logger.Info("Starting notice processor", zap.String("stage", stage))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize AWS Secrets Manager client", zap.Error(err))
	}

	resendAPIKey, err := secretsClient.GetSecretString(ctx, "RESEND_API_KEY_ARN", "RESEND_API_KEY")
	if err != nil || resendAPIKey == "" {
		logger.Fatal("Failed to get Resend API Key", zap.Error(err))
	}

	fromEmail := os.Getenv("EMAIL_FROM_ADDRESS")
	if fromEmail == "" {
		fromEmail = "noreply@arrenda.app"
	}
	fromName := os.Getenv("EMAIL_FROM_NAME")
	if fromName == "" {
		fromName = "Arrenda"
	}

	app := &Application{
		emailService: services.NewEmailService(resendAPIKey, fromEmail, fromName),
		logger:       logger.Log,
	}

	lambda.Start(app.HandleSQSEvent)
}
