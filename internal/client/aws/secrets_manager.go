package aws

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"go.uber.org/zap"

	"github.com/arrenda/arrenda-api/internal/logger"
)

// SecretsManagerClient wraps the AWS Secrets Manager client.
type SecretsManagerClient struct {
	svc *secretsmanager.Client
	cfg aws.Config
}

// NewSecretsManagerClient creates and initializes a new Secrets Manager client.
// It uses the default AWS configuration chain (environment variables, shared config, IAM role).
func NewSecretsManagerClient(ctx context.Context) (*SecretsManagerClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}

	svc := secretsmanager.NewFromConfig(cfg)

	return &SecretsManagerClient{
		svc: svc,
		cfg: cfg,
	}, nil
}

// GetSecretString fetches a secret string from Secrets Manager using an ARN
// specified by an environment variable. If the ARN variable is not set or
// fetching fails, it falls back to reading the secret directly from another
// environment variable. Secrets stored as a single-key JSON object are
// unwrapped to the key's value.
func (c *SecretsManagerClient) GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error) {
	secretArn := os.Getenv(secretArnEnvVar)

	if secretArn != "" {
		logger.Log.Debug("Fetching secret from Secrets Manager",
			zap.String("arnEnvVar", secretArnEnvVar),
			zap.String("secretArn", secretArn))

		input := &secretsmanager.GetSecretValueInput{
			SecretId: aws.String(secretArn),
		}

		result, err := c.svc.GetSecretValue(ctx, input)
		if err == nil && result.SecretString != nil && *result.SecretString != "" {
			fetchedSecretString := *result.SecretString

			var secretJSON map[string]string
			if jsonErr := json.Unmarshal([]byte(fetchedSecretString), &secretJSON); jsonErr == nil && len(secretJSON) == 1 {
				for key, value := range secretJSON {
					logger.Log.Info("Fetched secret from Secrets Manager (single-key JSON)",
						zap.String("secretArn", secretArn),
						zap.String("jsonKey", key))
					return value, nil
				}
			}

			logger.Log.Info("Fetched secret from Secrets Manager", zap.String("secretArn", secretArn))
			return fetchedSecretString, nil
		}

		logger.Log.Warn("Failed to fetch secret from Secrets Manager, falling back to environment",
			zap.String("secretArn", secretArn),
			zap.Error(err))
	}

	if fallbackValue := os.Getenv(fallbackEnvVar); fallbackValue != "" {
		logger.Log.Debug("Using secret from environment variable", zap.String("envVar", fallbackEnvVar))
		return fallbackValue, nil
	}

	return "", fmt.Errorf("secret not available via %s or %s", secretArnEnvVar, fallbackEnvVar)
}

// GetSecretJSON fetches a secret from Secrets Manager and unmarshals it into
// out. The secret ARN is read from the environment variable named by
// secretArnEnvVar; when fallbackEnvVar is non-empty its value is used as the
// raw JSON when the ARN lookup fails.
func (c *SecretsManagerClient) GetSecretJSON(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string, out interface{}) error {
	secretArn := os.Getenv(secretArnEnvVar)

	if secretArn != "" {
		input := &secretsmanager.GetSecretValueInput{
			SecretId: aws.String(secretArn),
		}

		result, err := c.svc.GetSecretValue(ctx, input)
		if err == nil && result.SecretString != nil && *result.SecretString != "" {
			return json.Unmarshal([]byte(*result.SecretString), out)
		}

		logger.Log.Warn("Failed to fetch secret JSON from Secrets Manager",
			zap.String("secretArn", secretArn),
			zap.Error(err))
	}

	if fallbackEnvVar != "" {
		if fallbackValue := os.Getenv(fallbackEnvVar); fallbackValue != "" {
			return json.Unmarshal([]byte(fallbackValue), out)
		}
	}

	return fmt.Errorf("secret not available via %s or %s", secretArnEnvVar, fallbackEnvVar)
}
