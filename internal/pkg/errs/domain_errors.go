package errs

import "errors"

// Sentinel errors shared by the usecase layers. Handlers map them with errors.Is.
var (
	// Catalog errors
	ErrProductNotFound  = errors.New("product not found")
	ErrToggleInProgress = errors.New("status change already in progress")

	// Schedule errors
	ErrScheduleNotFound = errors.New("schedule not found")

	// Account errors
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrMarketplaceNotConnected = errors.New("marketplace account not connected")
	ErrMarketplaceFailure      = errors.New("marketplace request failed")

	// Advisor errors
	ErrEmptyGoal = errors.New("goal cannot be empty")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrStoreOperationFailed = errors.New("store operation failed")
)
