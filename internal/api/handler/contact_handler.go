package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/manara-academy/platform-api/internal/api/metrics"
	"github.com/manara-academy/platform-api/internal/core/domain"
	"github.com/manara-academy/platform-api/internal/core/ports"
)

// RateLimiter is the interface the handlers use to throttle abuse-prone
// endpoints per caller.
type RateLimiter interface {
	Allow(ctx context.Context, route, key string) (bool, error)
}

// ContactHandler handles contact form submissions.
type ContactHandler struct {
	service ports.ContactService
	limiter RateLimiter
}

func NewContactHandler(service ports.ContactService, limiter RateLimiter) *ContactHandler {
	return &ContactHandler{service: service, limiter: limiter}
}

type contactRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required"`
	Phone   string `json:"phone"`
	Type    string `json:"type"`
	Message string `json:"message" validate:"required"`
}

type contactResponse struct {
	Success bool                    `json:"success"`
	Data    *domain.DispatchReceipt `json:"data"`
}

// Submit handles POST /api/contact.
//
// @Summary      Submit a contact inquiry
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Contact inquiry"
// @Success      200   {object}  contactResponse
// @Failure      400   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		metrics.ContactInquiriesTotal.WithLabelValues("rejected").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "Missing required fields")
	}
	if err := c.Validate(&req); err != nil {
		metrics.ContactInquiriesTotal.WithLabelValues("rejected").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "Missing required fields")
	}

	if h.limiter != nil {
		ok, err := h.limiter.Allow(c.Request().Context(), "contact", c.RealIP())
		if err == nil && !ok {
			metrics.RateLimitedTotal.WithLabelValues("contact").Inc()
			return domain.ErrRateLimited
		}
	}

	start := time.Now()
	receipt, err := h.service.Submit(c.Request().Context(), domain.ContactInquiry{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Type:    req.Type,
		Message: req.Message,
	})
	if err != nil {
		metrics.ContactInquiriesTotal.WithLabelValues("failed").Inc()
		return err
	}
	metrics.MailDeliveryDuration.Observe(time.Since(start).Seconds())
	metrics.ContactInquiriesTotal.WithLabelValues("forwarded").Inc()

	return c.JSON(http.StatusOK, contactResponse{Success: true, Data: receipt})
}
