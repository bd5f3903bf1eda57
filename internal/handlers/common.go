package handlers

import (
	"context"

	"net/http"

	"github.com/arrenda/arrenda-api/internal/db"
	"github.com/arrenda/arrenda-api/internal/helpers"
	"github.com/arrenda/arrenda-api/internal/logger"
	"github.com/arrenda/arrenda-api/internal/services"
	"github.com/arrenda/arrenda-api/internal/types/api/responses"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// CommonServices holds common dependencies used across handlers
type CommonServices struct {
	db db.Querier
	// dbPool is kept separate for transaction support
	dbPool *pgxpool.Pool
	logger *zap.Logger

	TenantService         *services.TenantService
	PropertyService       *services.PropertyService
	LeaseService          *services.LeaseService
	ReceiptService        *services.ReceiptService
	TicketService         *services.TicketService
	TemplateService       *services.TemplateService
	TaxService            *services.TaxService
	DashboardService      *services.DashboardMetricsService
	APIKeyService         *services.APIKeyService
	UserService           *services.UserService
	CorrespondenceService *services.CorrespondenceService
}

// ErrorResponse represents a standard error response
type ErrorResponse = responses.ErrorResponse

// SuccessResponse represents a standard success response
type SuccessResponse = responses.SuccessResponse

// CommonServicesConfig contains all dependencies needed to create CommonServices
type CommonServicesConfig struct {
	DB          db.Querier
	DBPool      *pgxpool.Pool // Optional: for transaction support
	Logger      *zap.Logger
	NoticeQueue services.NoticeQueue
}

// NewCommonServices creates a new instance of CommonServices with all
// domain services wired against the provided querier.
func NewCommonServices(config CommonServicesConfig) *CommonServices {
	if config.Logger == nil {
		config.Logger = logger.Log
	}

	templateService := services.NewTemplateService(config.DB)

	return &CommonServices{
		db:                    config.DB,
		dbPool:                config.DBPool,
		logger:                config.Logger,
		TenantService:         services.NewTenantService(config.DB),
		PropertyService:       services.NewPropertyService(config.DB),
		LeaseService:          services.NewLeaseService(config.DB),
		ReceiptService:        services.NewReceiptService(config.DB),
		TicketService:         services.NewTicketService(config.DB),
		TemplateService:       templateService,
		TaxService:            services.NewTaxService(config.DB),
		DashboardService:      services.NewDashboardMetricsService(config.DB),
		APIKeyService:         services.NewAPIKeyService(config.DB),
		UserService:           services.NewUserService(config.DB),
		CorrespondenceService: services.NewCorrespondenceService(config.DB, templateService, config.NoticeQueue),
	}
}

// GetDB returns the database querier
func (s *CommonServices) GetDB() db.Querier {
	return s.db
}

// GetDBPool returns the underlying database pool
func (s *CommonServices) GetDBPool() (*pgxpool.Pool, error) {
	if s.dbPool != nil {
		return s.dbPool, nil
	}
	return nil, errors.New("pool not available - please provide DBPool in CommonServicesConfig")
}

// GetLogger returns the logger
func (s *CommonServices) GetLogger() *zap.Logger {
	return s.logger
}

// WithTx creates a new db.Queries instance that uses the provided transaction
func (s *CommonServices) WithTx(tx pgx.Tx) *db.Queries {
	if queries, ok := s.db.(*db.Queries); ok {
		return queries.WithTx(tx)
	}
	return nil
}

// RunInTransaction executes a function within a database transaction.
// It handles commit and rollback and provides a queries instance bound
// to the transaction.
func (s *CommonServices) RunInTransaction(ctx context.Context, fn func(qtx *db.Queries) error) error {
	pool, err := s.GetDBPool()
	if err != nil {
		return err
	}

	return helpers.WithTransaction(ctx, pool, func(tx pgx.Tx) error {
		qtx := s.WithTx(tx)
		if qtx == nil {
			return errors.New("failed to create queries with transaction")
		}
		return fn(qtx)
	})
}

// InTransaction runs fn against a transaction-scoped querier. When no pool
// is configured (mock-backed tests) fn runs against the base querier
// without transactional guarantees.
func (s *CommonServices) InTransaction(ctx context.Context, fn func(q db.Querier) error) error {
	if s.dbPool == nil {
		return fn(s.db)
	}
	return s.RunInTransaction(ctx, func(qtx *db.Queries) error {
		return fn(qtx)
	})
}

// sendError is a helper function that combines logging and error response.
// It logs the error with the given message and sends a JSON error response.
func sendError(c *gin.Context, statusCode int, message string, err error) {
	correlationID := ""
	if id, exists := c.Get("correlationID"); exists {
		correlationID, _ = id.(string)
	}

	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("correlation_id", correlationID),
	)

	c.JSON(statusCode, struct {
		Error         string `json:"error"`
		CorrelationID string `json:"correlation_id,omitempty"`
	}{
		Error:         message,
		CorrelationID: correlationID,
	})
}

// handleDBError maps database errors to HTTP status codes
func handleDBError(c *gin.Context, err error, notFoundMsg string) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, pgx.ErrNoRows):
		sendError(c, http.StatusNotFound, notFoundMsg, err)
	default:
		sendError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}

// sendSuccess is a helper function that sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// sendSuccessMessage is a helper function that sends a success message
func sendSuccessMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, SuccessResponse{Message: message})
}

// sendPaginatedSuccess sends a successful paginated response
func sendPaginatedSuccess(c *gin.Context, statusCode int, data interface{}, page, limit, total int) {
	totalPages := 0
	hasMore := false
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
		hasMore = totalPages > page
	}

	c.JSON(statusCode, responses.PaginatedResponse{
		Data:    data,
		Object:  "list",
		HasMore: hasMore,
		Pagination: responses.Pagination{
			CurrentPage: page,
			PerPage:     limit,
			TotalItems:  total,
			TotalPages:  totalPages,
		},
	})
}

// parseUUIDParam parses a UUID path parameter, sending a 400 response on failure.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	parsed, err := uuid.Parse(c.Param(name))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid "+name+" format", err)
		return uuid.Nil, false
	}
	return parsed, true
}
