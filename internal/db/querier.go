package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Querier is the interface services depend on. Keeping services on the
// interface instead of *Queries lets unit tests substitute a gomock mock.
type Querier interface {
	CountActiveLeases(ctx context.Context) (int64, error)
	CountLeases(ctx context.Context) (int64, error)
	CountOpenTickets(ctx context.Context) (int64, error)
	CountProperties(ctx context.Context) (int64, error)
	CountTaxAssessments(ctx context.Context) (int64, error)
	CountTemplates(ctx context.Context) (int64, error)
	CountTenants(ctx context.Context) (int64, error)
	CountTickets(ctx context.Context) (int64, error)
	CreateApiKey(ctx context.Context, arg CreateApiKeyParams) (ApiKey, error)
	CreateLease(ctx context.Context, arg CreateLeaseParams) (Lease, error)
	CreateProperty(ctx context.Context, arg CreatePropertyParams) (Property, error)
	CreateReceipt(ctx context.Context, arg CreateReceiptParams) (Receipt, error)
	CreateTaxAssessment(ctx context.Context, arg CreateTaxAssessmentParams) (TaxAssessment, error)
	CreateTemplate(ctx context.Context, arg CreateTemplateParams) (CorrespondenceTemplate, error)
	CreateTenant(ctx context.Context, arg CreateTenantParams) (Tenant, error)
	CreateTicket(ctx context.Context, arg CreateTicketParams) (MaintenanceTicket, error)
	CreateUser(ctx context.Context, arg CreateUserParams) (User, error)
	DeleteProperty(ctx context.Context, id uuid.UUID) error
	DeleteTemplate(ctx context.Context, id uuid.UUID) error
	DeleteTenant(ctx context.Context, id uuid.UUID) error
	GetApiKeyByPrefix(ctx context.Context, keyPrefix string) (ApiKey, error)
	GetCollectedAmount(ctx context.Context, arg GetCollectedAmountParams) (pgtype.Numeric, error)
	GetLease(ctx context.Context, id uuid.UUID) (Lease, error)
	GetLeaseDetails(ctx context.Context, id uuid.UUID) (GetLeaseDetailsRow, error)
	GetMonthlyRentRoll(ctx context.Context) (pgtype.Numeric, error)
	GetOutstandingAmount(ctx context.Context) (pgtype.Numeric, error)
	GetProperty(ctx context.Context, id uuid.UUID) (Property, error)
	GetReceipt(ctx context.Context, id uuid.UUID) (Receipt, error)
	GetTemplate(ctx context.Context, id uuid.UUID) (CorrespondenceTemplate, error)
	GetTenant(ctx context.Context, id uuid.UUID) (Tenant, error)
	GetTicket(ctx context.Context, id uuid.UUID) (MaintenanceTicket, error)
	GetUser(ctx context.Context, id uuid.UUID) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	ListApiKeysByUser(ctx context.Context, userID uuid.UUID) ([]ApiKey, error)
	ListLeases(ctx context.Context, arg ListLeasesParams) ([]Lease, error)
	ListLeasesByProperty(ctx context.Context, propertyID uuid.UUID) ([]Lease, error)
	ListLeasesByTenant(ctx context.Context, tenantID uuid.UUID) ([]Lease, error)
	ListOutstandingReceipts(ctx context.Context) ([]Receipt, error)
	ListProperties(ctx context.Context, arg ListPropertiesParams) ([]Property, error)
	ListReceiptsByLease(ctx context.Context, arg ListReceiptsByLeaseParams) ([]Receipt, error)
	ListTaxAssessments(ctx context.Context, arg ListTaxAssessmentsParams) ([]TaxAssessment, error)
	ListTemplates(ctx context.Context, arg ListTemplatesParams) ([]CorrespondenceTemplate, error)
	ListTenants(ctx context.Context, arg ListTenantsParams) ([]Tenant, error)
	ListTickets(ctx context.Context, arg ListTicketsParams) ([]MaintenanceTicket, error)
	ListTicketsByProperty(ctx context.Context, propertyID uuid.UUID) ([]MaintenanceTicket, error)
	MarkReceiptPaid(ctx context.Context, arg MarkReceiptPaidParams) (Receipt, error)
	RevokeApiKey(ctx context.Context, id uuid.UUID) error
	UpdateApiKeyLastUsed(ctx context.Context, id uuid.UUID) error
	UpdateLease(ctx context.Context, arg UpdateLeaseParams) (Lease, error)
	UpdateLeaseStatus(ctx context.Context, arg UpdateLeaseStatusParams) (Lease, error)
	UpdateProperty(ctx context.Context, arg UpdatePropertyParams) (Property, error)
	UpdateTemplate(ctx context.Context, arg UpdateTemplateParams) (CorrespondenceTemplate, error)
	UpdateTenant(ctx context.Context, arg UpdateTenantParams) (Tenant, error)
	UpdateTicket(ctx context.Context, arg UpdateTicketParams) (MaintenanceTicket, error)
	UpdateTicketStatus(ctx context.Context, arg UpdateTicketStatusParams) (MaintenanceTicket, error)
}

var _ Querier = (*Queries)(nil)
