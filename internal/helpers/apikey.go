package helpers

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	// APIKeyLength is the length of the random part of the API key (in bytes before base64 encoding)
	APIKeyLength = 32
	// APIKeyPrefix is the prefix for all API keys
	APIKeyPrefix = "arr"
	// BcryptCost is the cost factor for bcrypt hashing
	BcryptCost = 10
)

// GenerateAPIKey generates a new secure API key
// Returns the full key (to be shown once to the user) and the key prefix for identification
func GenerateAPIKey() (fullKey string, keyPrefix string, err error) {
	randomBytes := make([]byte, APIKeyLength)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	encodedKey := base64.RawURLEncoding.EncodeToString(randomBytes)

	fullKey = fmt.Sprintf("%s_%s", APIKeyPrefix, encodedKey)

	// Prefix stored for lookup is the first 8 chars after the standard prefix
	if len(encodedKey) >= 8 {
		keyPrefix = fmt.Sprintf("%s_%s", APIKeyPrefix, encodedKey[:8])
	} else {
		keyPrefix = fullKey
	}

	return fullKey, keyPrefix, nil
}

// HashAPIKey hashes an API key using bcrypt
func HashAPIKey(apiKey string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(apiKey), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash API key: %w", err)
	}
	return string(hashedBytes), nil
}

// CompareAPIKeyHash compares a plain text API key with a bcrypt hash
func CompareAPIKeyHash(apiKey, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(apiKey))
}

// ExtractKeyPrefix extracts the prefix from a full API key for display purposes
func ExtractKeyPrefix(apiKey string) string {
	// The random part is base64url encoded and may itself contain
	// underscores, so only split on the first one.
	parts := strings.SplitN(apiKey, "_", 2)
	if len(parts) < 2 {
		return "invalid"
	}

	keyPart := parts[1]
	if len(keyPart) >= 8 {
		return fmt.Sprintf("%s_%s", parts[0], keyPart[:8])
	}
	return fmt.Sprintf("%s_%s", parts[0], keyPart)
}
