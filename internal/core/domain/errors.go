package domain

import "errors"

var (
	// ErrMissingRequiredFields rejects a contact inquiry before any
	// delivery attempt is made.
	ErrMissingRequiredFields = errors.New("missing required fields")

	// ErrDeliveryFailed covers provider, network, and render failures on
	// the contact path. The underlying cause is logged, never surfaced.
	ErrDeliveryFailed = errors.New("failed to send email")

	// ErrRecoveryTokenMissing fires when the reset step is invoked without
	// a token, before any network call.
	ErrRecoveryTokenMissing = errors.New("reset link is invalid or expired")

	// ErrSubmissionInFlight blocks a duplicate submit while the previous
	// one for the same flow is still pending.
	ErrSubmissionInFlight = errors.New("submission already in progress")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrNoCredential       = errors.New("no persisted credential")
	ErrContentNotFound    = errors.New("content not found")
	ErrRateLimited        = errors.New("too many attempts")
)

// RemoteError carries a human-readable message reported by an upstream
// service. The message is surfaced to the user verbatim, unlike transport
// errors which collapse into a generic failure.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string { return e.Message }
