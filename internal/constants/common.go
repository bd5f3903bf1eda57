package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"

	// User roles
	AdminRole    = "admin"
	LandlordRole = "landlord"

	// Currencies
	EURCurrency = "EUR"

	// Error messages shared between services and handlers
	TenantNotFound   = "tenant not found"
	PropertyNotFound = "property not found"
	LeaseNotFound    = "lease not found"
	ReceiptNotFound  = "receipt not found"
	TicketNotFound   = "ticket not found"
	TemplateNotFound = "template not found"
)

// Lease statuses
const (
	LeaseStatusActive     = "active"
	LeaseStatusTerminated = "terminated"
	LeaseStatusExpired    = "expired"
)

// Maintenance ticket statuses
const (
	TicketStatusOpen       = "open"
	TicketStatusInProgress = "in_progress"
	TicketStatusResolved   = "resolved"
	TicketStatusClosed     = "closed"
)

// Maintenance ticket priorities
const (
	TicketPriorityLow    = "low"
	TicketPriorityMedium = "medium"
	TicketPriorityHigh   = "high"
	TicketPriorityUrgent = "urgent"
)

// Receipt payment methods
const (
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodCash         = "cash"
	PaymentMethodDirectDebit  = "direct_debit"
)
