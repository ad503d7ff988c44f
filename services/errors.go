package services

import "errors"

// Sentinel errors returned by the service layer. Controllers translate
// these into HTTP statuses; anything else is a persistence failure.
var (
	// ErrMissingField means a required input field was absent.
	ErrMissingField = errors.New("missing required field")
	// ErrUserNotFound means the caller id does not resolve to a user.
	ErrUserNotFound = errors.New("user not found")
	// ErrForbidden means the caller's role does not allow the action.
	ErrForbidden = errors.New("role not permitted")
	// ErrNotLinked means the caller has no linked salesperson record.
	ErrNotLinked = errors.New("no salesperson linked to user")
	// ErrCarNotFound means the referenced car does not exist.
	ErrCarNotFound = errors.New("car not found")
	// ErrCarNotAvailable merges "does not exist" and "already sold" into a
	// single idempotent refusal for the sale workflow.
	ErrCarNotAvailable = errors.New("car not found or already sold")
)
