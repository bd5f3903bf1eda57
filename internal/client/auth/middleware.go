package auth

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/arrenda/arrenda-api/internal/logger"
	"github.com/arrenda/arrenda-api/internal/services"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrInvalidToken is returned when the provided token is invalid
var ErrInvalidToken = errors.New("invalid token")

// Context keys set by the auth middleware
const (
	UserIDKey   = "userID"
	UserRoleKey = "userRole"
	AuthTypeKey = "authType"

	AuthTypeAPIKey = "api_key"
	AuthTypeJWT    = "jwt"
)

// IdentityClaims is the claim set expected from the identity provider.
type IdentityClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthClient validates API keys and identity-provider JWTs.
type AuthClient struct {
	JWKSURL  string
	Issuer   string
	Audience string

	apiKeys *services.APIKeyService
	users   *services.UserService
	jwks    *keyfunc.JWKS
}

// NewAuthClient builds the auth client from AUTH_JWKS_ENDPOINT,
// AUTH_ISSUER, and AUTH_AUDIENCE. A missing JWKS endpoint disables JWT
// auth; API keys still work.
func NewAuthClient(apiKeys *services.APIKeyService, users *services.UserService) *AuthClient {
	client := &AuthClient{
		JWKSURL:  os.Getenv("AUTH_JWKS_ENDPOINT"),
		Issuer:   os.Getenv("AUTH_ISSUER"),
		Audience: os.Getenv("AUTH_AUDIENCE"),
		apiKeys:  apiKeys,
		users:    users,
	}

	if err := client.initializeJWKS(); err != nil {
		logger.Log.Warn("JWKS not initialized, JWT auth disabled", zap.Error(err))
	}

	return client
}

func (ac *AuthClient) initializeJWKS() error {
	if ac.JWKSURL == "" {
		return fmt.Errorf("AUTH_JWKS_ENDPOINT not set")
	}

	jwks, err := keyfunc.Get(ac.JWKSURL, keyfunc.Options{
		RefreshInterval:  time.Hour,
		RefreshRateLimit: time.Minute,
		RefreshTimeout:   time.Second * 10,
		RefreshErrorHandler: func(err error) {
			logger.Log.Error("JWKS refresh error", zap.Error(err))
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create JWKS: %w", err)
	}

	ac.jwks = jwks

	logger.Log.Info("JWKS initialized",
		zap.String("jwks_url", ac.JWKSURL),
		zap.String("issuer", ac.Issuer))

	return nil
}

// EnsureValidAPIKeyOrToken authenticates a request with either an X-API-Key
// header or a Bearer JWT, in that order of preference.
func (ac *AuthClient) EnsureValidAPIKeyOrToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey := c.GetHeader("X-API-Key"); apiKey != "" {
			key, err := ac.apiKeys.ValidateAPIKey(c.Request.Context(), apiKey)
			if err != nil {
				logger.Log.Debug("API key validation failed", zap.Error(err))
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid API key"})
				c.Abort()
				return
			}

			user, err := ac.users.GetUser(c.Request.Context(), key.UserID)
			if err != nil {
				logger.Log.Error("API key references unknown user",
					zap.String("api_key_id", key.ID.String()),
					zap.Error(err))
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid API key"})
				c.Abort()
				return
			}

			c.Set(UserIDKey, user.ID.String())
			c.Set(UserRoleKey, user.Role)
			c.Set(AuthTypeKey, AuthTypeAPIKey)
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "no authentication provided"})
			c.Abort()
			return
		}

		claims, err := ac.validateToken(authHeader)
		if err != nil {
			logger.Log.Debug("JWT validation failed",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		var name *string
		if claims.Name != "" {
			name = &claims.Name
		}

		user, err := ac.users.GetOrCreateUser(c.Request.Context(), claims.Email, name)
		if err != nil {
			logger.Log.Error("Failed to resolve user from token",
				zap.String("email", claims.Email),
				zap.Error(err))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication failed"})
			c.Abort()
			return
		}

		c.Set(UserIDKey, user.ID.String())
		c.Set(UserRoleKey, user.Role)
		c.Set(AuthTypeKey, AuthTypeJWT)
		c.Next()
	}
}

// RequireRoles allows the request through only when the authenticated user
// holds one of the given roles. Must run after EnsureValidAPIKeyOrToken.
func (ac *AuthClient) RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(UserRoleKey)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
		c.Abort()
	}
}

func (ac *AuthClient) validateToken(authHeader string) (*IdentityClaims, error) {
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == "" {
		return nil, errors.Wrap(ErrInvalidToken, "empty bearer token")
	}

	if ac.jwks == nil {
		return nil, errors.Wrap(ErrInvalidToken, "JWKS not initialized")
	}

	token, err := jwt.ParseWithClaims(tokenString, &IdentityClaims{}, ac.jwks.Keyfunc)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}
	if !token.Valid {
		return nil, errors.Wrap(ErrInvalidToken, "token is not valid")
	}

	claims, ok := token.Claims.(*IdentityClaims)
	if !ok {
		return nil, errors.Wrap(ErrInvalidToken, "unexpected claims type")
	}

	if claims.ExpiresAt != nil && time.Now().After(claims.ExpiresAt.Time) {
		return nil, errors.Wrap(ErrInvalidToken, "token is expired")
	}

	if ac.Issuer != "" && claims.Issuer != ac.Issuer {
		return nil, errors.Wrap(ErrInvalidToken, "invalid issuer")
	}

	if ac.Audience != "" {
		audienceValid := false
		for _, aud := range claims.Audience {
			if aud == ac.Audience {
				audienceValid = true
				break
			}
		}
		if !audienceValid {
			return nil, errors.Wrap(ErrInvalidToken, "invalid audience")
		}
	}

	if claims.Email == "" {
		return nil, errors.Wrap(ErrInvalidToken, "token carries no email claim")
	}

	return claims, nil
}
