package services

import "github.com/pkg/errors"

// Sentinel errors for the computational core. Callers match these with
// errors.Is after the services wrap them with context.
var (
	// ErrUnsupportedJurisdiction indicates the jurisdiction identifier is not
	// in the supported set.
	ErrUnsupportedJurisdiction = errors.New("unsupported tax jurisdiction")

	// ErrInvalidAmount indicates an income or expense input is negative,
	// non-finite, or otherwise not a valid currency magnitude.
	ErrInvalidAmount = errors.New("invalid monetary amount")

	// ErrInvalidTemplate indicates template content is missing.
	ErrInvalidTemplate = errors.New("invalid template content")
)
