package services

import (
	"context"
	"fmt"

	"github.com/arrenda/arrenda-api/internal/constants"
	"github.com/arrenda/arrenda-api/internal/db"
	"github.com/arrenda/arrenda-api/internal/helpers"
	"github.com/arrenda/arrenda-api/internal/logger"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// UserService handles user account management
type UserService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(queries db.Querier) *UserService {
	return &UserService{
		queries: queries,
		logger:  logger.Log,
	}
}

// GetOrCreateUser looks up a user by email, creating a landlord account on
// first sight. Used when a valid JWT arrives for an email with no account.
func (s *UserService) GetOrCreateUser(ctx context.Context, email string, name *string) (*db.User, error) {
	user, err := s.queries.GetUserByEmail(ctx, email)
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("user lookup failed: %w", err)
	}

	user, err = s.queries.CreateUser(ctx, db.CreateUserParams{
		Email: email,
		Name:  helpers.TextFromPtr(name),
		Role:  constants.LandlordRole,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("Created user",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return &user, nil
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*db.User, error) {
	user, err := s.queries.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
