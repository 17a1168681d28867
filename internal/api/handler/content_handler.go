package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/manara-academy/platform-api/internal/core/domain"
	"github.com/manara-academy/platform-api/internal/core/ports"
)

// ContentHandler serves the localized marketing content.
type ContentHandler struct {
	service ports.ContentService
}

func NewContentHandler(service ports.ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

// Landing handles GET /api/content/landing.
//
// @Summary      Localized landing page content
// @Tags         content
// @Produce      json
// @Param        lang  query     string  false  "Language (ar or en, defaults to ar)"
// @Success      200   {object}  domain.LandingContent
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/content/landing [get]
func (h *ContentHandler) Landing(c echo.Context) error {
	lang := c.QueryParam("lang")
	if lang != "" && lang != domain.LangArabic && lang != domain.LangEnglish {
		return echo.NewHTTPError(http.StatusBadRequest, "unsupported language")
	}

	content, err := h.service.Landing(c.Request().Context(), lang)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, content)
}
