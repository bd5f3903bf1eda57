package server

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/arrenda/arrenda-api/internal/client/auth"
	awsclient "github.com/arrenda/arrenda-api/internal/client/aws"
	"github.com/arrenda/arrenda-api/internal/constants"
	"github.com/arrenda/arrenda-api/internal/db"
	"github.com/arrenda/arrenda-api/internal/handlers"
	"github.com/arrenda/arrenda-api/internal/helpers"
	"github.com/arrenda/arrenda-api/internal/logger"
	"github.com/arrenda/arrenda-api/internal/middleware"
	"github.com/arrenda/arrenda-api/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handler definitions
var (
	tenantHandler    *handlers.TenantHandler
	propertyHandler  *handlers.PropertyHandler
	leaseHandler     *handlers.LeaseHandler
	receiptHandler   *handlers.ReceiptHandler
	ticketHandler    *handlers.TicketHandler
	templateHandler  *handlers.TemplateHandler
	taxHandler       *handlers.TaxHandler
	dashboardHandler *handlers.DashboardHandler
	apiKeyHandler    *handlers.APIKeyHandler
	userHandler      *handlers.UserHandler
	healthHandler    *handlers.HealthHandler

	// Database
	dbQueries *db.Queries

	// Clients
	authClient *auth.AuthClient

	// Services
	commonServices *handlers.CommonServices
)

// InitializeHandlers wires the database, clients and handlers. It must be
// called once before InitializeRoutes.
func InitializeHandlers() {
	var dsn string

	// Load environment variables from .env file for local development
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}
	if !helpers.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}

	logger.InitLogger(stage)
	logger.Info("Initializing handlers for stage", zap.String("stage", stage))

	ctx := context.Background()

	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize AWS Secrets Manager client", zap.Error(err))
	}

	// Database connection setup
	if stage == helpers.StageProd || stage == helpers.StageDev {
		logger.Info("Running in deployed stage, fetching DB credentials from Secrets Manager", zap.String("stage", stage))

		dbEndpoint := os.Getenv("DB_HOST")
		dbName := os.Getenv("DB_NAME")
		dbSSLMode := os.Getenv("DB_SSLMODE")

		if dbEndpoint == "" || dbName == "" {
			logger.Fatal("Missing required DB environment variables for deployed stage (DB_HOST, DB_NAME)")
		}
		if dbSSLMode == "" {
			dbSSLMode = "require"
			logger.Warn("DB_SSLMODE not set, defaulting to 'require'")
		}

		type rdsSecret struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		var secretData rdsSecret

		if err := secretsClient.GetSecretJSON(ctx, "RDS_SECRET_ARN", "", &secretData); err != nil {
			logger.Fatal("Failed to retrieve or parse RDS secret", zap.Error(err))
		}
		if secretData.Username == "" || secretData.Password == "" {
			logger.Fatal("Username or password not found in RDS secret data")
		}

		dsn = fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
			url.QueryEscape(secretData.Username),
			url.QueryEscape(secretData.Password),
			dbEndpoint, dbName, dbSSLMode)
	} else {
		logger.Info("Running in local stage, using DATABASE_URL from env/secrets")
		dsn, err = secretsClient.GetSecretString(ctx, "DATABASE_URL_ARN", "DATABASE_URL")
		if err != nil {
			logger.Fatal("Failed to get DATABASE_URL", zap.Error(err))
		}
		if dsn == "" {
			logger.Fatal("DATABASE_URL is required for local development")
		}
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Fatal("Unable to parse database DSN", zap.Error(err))
	}

	poolConfig.MaxConns = 20
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Minute * 30
	poolConfig.MaxConnIdleTime = time.Minute * 15

	dbpool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool with config", zap.Error(err))
	}

	dbQueries = db.New(dbpool)

	// Notice queue, optional; notices fail fast when unset
	var noticeQueue services.NoticeQueue
	if queueURL := os.Getenv("NOTICE_QUEUE_URL"); queueURL != "" {
		publisher, err := awsclient.NewNoticePublisher(ctx, queueURL)
		if err != nil {
			logger.Fatal("Unable to create notice publisher", zap.Error(err))
		}
		noticeQueue = publisher
	} else {
		logger.Warn("NOTICE_QUEUE_URL not set, tenant notices are disabled")
	}

	commonServices = handlers.NewCommonServices(handlers.CommonServicesConfig{
		DB:          dbQueries,
		DBPool:      dbpool,
		Logger:      logger.Log,
		NoticeQueue: noticeQueue,
	})

	authClient = auth.NewAuthClient(commonServices.APIKeyService, commonServices.UserService)

	tenantHandler = handlers.NewTenantHandler(commonServices, logger.Log)
	propertyHandler = handlers.NewPropertyHandler(commonServices, logger.Log)
	leaseHandler = handlers.NewLeaseHandler(commonServices, logger.Log)
	receiptHandler = handlers.NewReceiptHandler(commonServices, logger.Log)
	ticketHandler = handlers.NewTicketHandler(commonServices, logger.Log)
	templateHandler = handlers.NewTemplateHandler(commonServices, logger.Log)
	taxHandler = handlers.NewTaxHandler(commonServices, logger.Log)
	dashboardHandler = handlers.NewDashboardHandler(commonServices, logger.Log)
	apiKeyHandler = handlers.NewAPIKeyHandler(commonServices, logger.Log)
	userHandler = handlers.NewUserHandler(commonServices, logger.Log)
	healthHandler = handlers.NewHealthHandler()

	logger.Info("Handlers initialized")
}

// InitializeRoutes registers middleware and routes on the router.
func InitializeRoutes(router *gin.Engine) {
	router.Use(configureCORS())
	router.Use(middleware.CorrelationIDMiddleware())
	router.Use(middleware.DefaultRateLimiter.Middleware())
	router.Use(middleware.RequestLoggingMiddleware())

	// Swagger endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health for raw lambda url check
	router.GET("/:stage/health", healthHandler.Health)
	router.GET("/health", healthHandler.Health)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		v1.GET("/tax/jurisdictions", taxHandler.ListJurisdictions)

		// Protected routes (authentication required)
		protected := v1.Group("/")
		protected.Use(authClient.EnsureValidAPIKeyOrToken())
		{
			tenants := protected.Group("/tenants")
			{
				tenants.POST("", tenantHandler.CreateTenant)
				tenants.GET("", tenantHandler.ListTenants)
				tenants.GET("/:tenant_id", tenantHandler.GetTenant)
				tenants.PATCH("/:tenant_id", tenantHandler.UpdateTenant)
				tenants.DELETE("/:tenant_id", tenantHandler.DeleteTenant)
			}

			properties := protected.Group("/properties")
			{
				properties.POST("", propertyHandler.CreateProperty)
				properties.GET("", propertyHandler.ListProperties)
				properties.GET("/:property_id", propertyHandler.GetProperty)
				properties.PATCH("/:property_id", propertyHandler.UpdateProperty)
				properties.DELETE("/:property_id", propertyHandler.DeleteProperty)
			}

			leases := protected.Group("/leases")
			{
				leases.POST("", leaseHandler.CreateLease)
				leases.GET("", leaseHandler.ListLeases)
				leases.GET("/:lease_id", leaseHandler.GetLease)
				leases.GET("/:lease_id/details", leaseHandler.GetLeaseDetails)
				leases.PATCH("/:lease_id", leaseHandler.UpdateLease)
				leases.PUT("/:lease_id/status", leaseHandler.UpdateLeaseStatus)
				leases.GET("/:lease_id/receipts", receiptHandler.ListReceipts)
			}

			receipts := protected.Group("/receipts")
			{
				receipts.POST("", receiptHandler.CreateReceipt)
				receipts.GET("/outstanding", receiptHandler.ListOutstandingReceipts)
				receipts.GET("/:receipt_id", receiptHandler.GetReceipt)
				receipts.POST("/:receipt_id/pay", receiptHandler.MarkReceiptPaid)
			}

			tickets := protected.Group("/tickets")
			{
				tickets.POST("", ticketHandler.CreateTicket)
				tickets.GET("", ticketHandler.ListTickets)
				tickets.GET("/:ticket_id", ticketHandler.GetTicket)
				tickets.PATCH("/:ticket_id", ticketHandler.UpdateTicket)
				tickets.PUT("/:ticket_id/status", ticketHandler.UpdateTicketStatus)
			}

			templates := protected.Group("/templates")
			{
				templates.POST("", templateHandler.CreateTemplate)
				templates.GET("", templateHandler.ListTemplates)
				templates.POST("/preview", templateHandler.PreviewTemplate)
				templates.GET("/:template_id", templateHandler.GetTemplate)
				templates.PATCH("/:template_id", templateHandler.UpdateTemplate)
				templates.DELETE("/:template_id", templateHandler.DeleteTemplate)
				templates.POST("/:template_id/render", templateHandler.RenderTemplate)
			}

			protected.POST("/notices", templateHandler.SendNotice)

			tax := protected.Group("/tax")
			{
				tax.POST("/calculations", taxHandler.CalculateTax)
				tax.GET("/assessments", taxHandler.ListAssessments)
			}

			protected.GET("/dashboard/metrics", dashboardHandler.GetMetrics)

			apiKeys := protected.Group("/api-keys")
			{
				apiKeys.POST("", middleware.StrictRateLimiter.Middleware(), apiKeyHandler.CreateAPIKey)
				apiKeys.GET("", apiKeyHandler.ListAPIKeys)
				apiKeys.DELETE("/:api_key_id", middleware.StrictRateLimiter.Middleware(), apiKeyHandler.RevokeAPIKey)
			}

			// Admin-only maintenance surface
			admin := protected.Group("/admin")
			admin.Use(authClient.RequireRoles(constants.AdminRole))
			{
				admin.GET("/users/:user_id", userHandler.GetUser)
			}
		}
	}
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-Key", "X-Correlation-ID"}
	corsConfig.ExposeHeaders = []string{
		"X-RateLimit-Limit",
		"X-RateLimit-Remaining",
		"X-RateLimit-Reset",
		"Retry-After",
		"X-Correlation-ID",
	}
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}
