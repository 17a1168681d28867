package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/manara-academy/platform-api/internal/core/domain"
	"github.com/manara-academy/platform-api/internal/core/forms"
)

func render(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)
	return rec
}

func body(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return out
}

func TestErrorHandler_MissingRequiredFields(t *testing.T) {
	rec := render(t, domain.ErrMissingRequiredFields)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if got := body(t, rec)["error"]; got != "Missing required fields" {
		t.Fatalf("expected exact message, got %v", got)
	}
}

func TestErrorHandler_DeliveryFailed(t *testing.T) {
	rec := render(t, domain.ErrDeliveryFailed)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if got := body(t, rec)["error"]; got != "Failed to send email" {
		t.Fatalf("expected exact message, got %v", got)
	}
}

func TestErrorHandler_FormErrorsAreFieldScoped(t *testing.T) {
	rec := render(t, forms.Errors{"email": "must be a valid email"})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	fields, ok := body(t, rec)["fields"].(map[string]any)
	if !ok || fields["email"] != "must be a valid email" {
		t.Fatalf("expected field-scoped errors, got %s", rec.Body.String())
	}
}

func TestErrorHandler_RemoteMessageVerbatim(t *testing.T) {
	rec := render(t, &domain.RemoteError{Status: http.StatusBadRequest, Message: "account not found"})
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
	if got := body(t, rec)["error"]; got != "account not found" {
		t.Fatalf("expected upstream message surfaced verbatim, got %v", got)
	}
}

func TestErrorHandler_UnexpectedErrorStaysGeneric(t *testing.T) {
	rec := render(t, errors.New("pg: connection refused"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if got := body(t, rec)["error"]; got != "internal server error" {
		t.Fatalf("internal cause must not leak, got %v", got)
	}
}

func TestErrorHandler_EchoHTTPErrorPassthrough(t *testing.T) {
	rec := render(t, echo.NewHTTPError(http.StatusNotFound, "Not Found"))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestErrorHandler_RateLimited(t *testing.T) {
	rec := render(t, domain.ErrRateLimited)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}
