package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/manara-academy/platform-api/internal/core/domain"
	"github.com/manara-academy/platform-api/internal/core/forms"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Renders field-scoped validation errors without logging them as
//     operational failures.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	// Field-scoped validation errors stay inside the form layer.
	var fe forms.Errors
	if errors.As(err, &fe) {
		return http.StatusUnprocessableEntity, errorResponse{Error: "validation failed", Fields: fe}
	}

	// Upstream errors with a message payload are surfaced verbatim.
	var remote *domain.RemoteError
	if errors.As(err, &remote) {
		return http.StatusBadGateway, errorResponse{Error: remote.Message}
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrMissingRequiredFields):
		return http.StatusBadRequest, errorResponse{Error: "Missing required fields"}
	case errors.Is(err, domain.ErrDeliveryFailed):
		return http.StatusInternalServerError, errorResponse{Error: "Failed to send email"}
	case errors.Is(err, domain.ErrRecoveryTokenMissing):
		return http.StatusUnprocessableEntity, errorResponse{Error: err.Error()}
	case errors.Is(err, domain.ErrSubmissionInFlight):
		return http.StatusConflict, errorResponse{Error: err.Error()}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorResponse{Error: "invalid credentials"}
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, errorResponse{Error: "not authenticated"}
	case errors.Is(err, domain.ErrContentNotFound):
		return http.StatusNotFound, errorResponse{Error: "content not found"}
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests, errorResponse{Error: "too many attempts"}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
}
