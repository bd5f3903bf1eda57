package business

import "time"

// RenderContext supplies the values substituted into a correspondence
// template. It is a read-only view assembled by the caller, typically from
// a lease with its tenant and property rows. Nil fields mean the caller's
// data does not carry that information; the renderer falls back to a
// human-readable label for those placeholders instead of failing.
type RenderContext struct {
	TenantName      *string
	PropertyName    *string
	RentAmount      *float64
	LeaseStart      *time.Time
	LeaseEnd        *time.Time
	PropertyAddress *string
	Bedrooms        *int32
	Bathrooms       *int32
}
