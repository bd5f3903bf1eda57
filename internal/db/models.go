package db

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Property struct {
	ID           uuid.UUID
	Name         string
	AddressLine1 string
	AddressLine2 pgtype.Text
	City         string
	PostalCode   pgtype.Text
	Country      string
	Bedrooms     pgtype.Int4
	Bathrooms    pgtype.Int4
	Notes        pgtype.Text
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

type Tenant struct {
	ID        uuid.UUID
	Name      string
	Email     pgtype.Text
	Phone     pgtype.Text
	TaxNumber pgtype.Text
	Notes     pgtype.Text
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type Lease struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
	TenantID   uuid.UUID
	RentAmount pgtype.Numeric
	Currency   string
	StartDate  pgtype.Date
	EndDate    pgtype.Date
	Status     string
	CreatedAt  pgtype.Timestamptz
	UpdatedAt  pgtype.Timestamptz
}

type Receipt struct {
	ID          uuid.UUID
	LeaseID     uuid.UUID
	Amount      pgtype.Numeric
	PeriodStart pgtype.Date
	PeriodEnd   pgtype.Date
	Method      pgtype.Text
	Reference   string
	IssuedAt    pgtype.Timestamptz
	PaidAt      pgtype.Timestamptz
	CreatedAt   pgtype.Timestamptz
}

type MaintenanceTicket struct {
	ID          uuid.UUID
	PropertyID  uuid.UUID
	Title       string
	Description pgtype.Text
	Priority    string
	Status      string
	ResolvedAt  pgtype.Timestamptz
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

type CorrespondenceTemplate struct {
	ID        uuid.UUID
	Name      string
	Category  pgtype.Text
	Subject   pgtype.Text
	Content   string
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type User struct {
	ID        uuid.UUID
	Email     string
	Name      pgtype.Text
	Role      string
	CreatedAt pgtype.Timestamptz
}

type ApiKey struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Name       string
	KeyHash    string
	KeyPrefix  string
	LastUsedAt pgtype.Timestamptz
	ExpiresAt  pgtype.Timestamptz
	RevokedAt  pgtype.Timestamptz
	CreatedAt  pgtype.Timestamptz
}

type TaxAssessment struct {
	ID                 uuid.UUID
	Jurisdiction       string
	GrossIncome        pgtype.Numeric
	DeductibleExpenses pgtype.Numeric
	TaxableIncome      pgtype.Numeric
	TaxAmount          pgtype.Numeric
	EffectiveRate      pgtype.Numeric
	QuarterlyPayment   pgtype.Numeric
	AnnualSettlement   pgtype.Numeric
	Breakdown          []byte
	CreatedAt          pgtype.Timestamptz
}
