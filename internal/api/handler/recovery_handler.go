package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/manara-academy/platform-api/internal/api/metrics"
	"github.com/manara-academy/platform-api/internal/core/domain"
	"github.com/manara-academy/platform-api/internal/core/forms"
	"github.com/manara-academy/platform-api/internal/core/ports"
	"github.com/manara-academy/platform-api/internal/core/service"
)

// RecoveryHandler exposes the two password-recovery steps. A fresh flow is
// built per submission, matching the transient lifetime of a recovery
// attempt.
type RecoveryHandler struct {
	auth     ports.AuthClient
	notifier ports.Notifier
	limiter  RateLimiter
	log      zerolog.Logger
}

func NewRecoveryHandler(auth ports.AuthClient, notifier ports.Notifier, limiter RateLimiter, log zerolog.Logger) *RecoveryHandler {
	return &RecoveryHandler{auth: auth, notifier: notifier, limiter: limiter, log: log}
}

type forgotRequest struct {
	Email string `json:"email"`
}

type resetRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
	Confirm  string `json:"confirm"`
}

// Forgot handles POST /auth/forgot — requests a reset link by email.
//
// @Summary      Request a password reset link
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      forgotRequest  true  "Account email"
// @Success      204
// @Failure      422   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /auth/forgot [post]
func (h *RecoveryHandler) Forgot(c echo.Context) error {
	var req forgotRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if h.limiter != nil {
		key := c.RealIP() + ":" + strings.ToLower(strings.TrimSpace(req.Email))
		ok, err := h.limiter.Allow(c.Request().Context(), "forgot", key)
		if err == nil && !ok {
			metrics.RateLimitedTotal.WithLabelValues("forgot").Inc()
			return domain.ErrRateLimited
		}
	}

	flow := service.NewRecoveryFlow(h.auth, h.notifier, h.log)
	if err := flow.RequestReset(c.Request().Context(), req.Email); err != nil {
		metrics.RecoveryRequestsTotal.WithLabelValues("request", requestOutcome(err)).Inc()
		return err
	}

	metrics.RecoveryRequestsTotal.WithLabelValues("request", "succeeded").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Reset handles POST /auth/reset — consumes a reset token and sets a new
// password. The token arrives as a navigation parameter on the reset link;
// a body field is accepted as a fallback for clients that forward it there.
//
// @Summary      Reset the password with a recovery token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        token  query     string        false  "Recovery token"
// @Param        body   body      resetRequest  true   "New password"
// @Success      204
// @Failure      422    {object}  map[string]string
// @Router       /auth/reset [post]
func (h *RecoveryHandler) Reset(c echo.Context) error {
	var req resetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token := c.QueryParam("token")
	if token == "" {
		token = req.Token
	}

	flow := service.NewRecoveryFlow(h.auth, h.notifier, h.log)
	if err := flow.ConfirmReset(c.Request().Context(), token, req.Password, req.Confirm); err != nil {
		metrics.RecoveryRequestsTotal.WithLabelValues("confirm", requestOutcome(err)).Inc()
		return err
	}

	metrics.RecoveryRequestsTotal.WithLabelValues("confirm", "succeeded").Inc()
	return c.NoContent(http.StatusNoContent)
}

func requestOutcome(err error) string {
	var fe forms.Errors
	if errors.As(err, &fe) {
		return "invalid"
	}
	return "failed"
}
