package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/manara-academy/platform-api/internal/api/middleware"
	"github.com/manara-academy/platform-api/internal/core/domain"
	"github.com/manara-academy/platform-api/internal/core/ports"
	"github.com/manara-academy/platform-api/internal/core/session"
)

// AuthHandler proxies login and logout to the external auth service and
// keeps the per-visitor session store in sync.
type AuthHandler struct {
	auth       ports.AuthClient
	creds      ports.CredentialStore
	manager    *session.Manager
	sessionTTL time.Duration
	secure     bool
}

func NewAuthHandler(auth ports.AuthClient, creds ports.CredentialStore, manager *session.Manager, sessionTTL time.Duration, secure bool) *AuthHandler {
	return &AuthHandler{auth: auth, creds: creds, manager: manager, sessionTTL: sessionTTL, secure: secure}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginResponse struct {
	User *domain.Profile `json:"user"`
}

// Login handles POST /auth/login.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	token, user, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	sessionID := uuid.NewString()
	if err := h.creds.Write(c.Request().Context(), sessionID, token); err != nil {
		return err
	}
	h.manager.Register(sessionID, token, *user)

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, loginResponse{User: user})
}

// Logout handles POST /auth/logout.
//
// @Summary      Sign out
// @Tags         auth
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.SessionCookie); err == nil && cookie.Value != "" {
		h.manager.StoreFor(cookie.Value).Logout(c.Request().Context())
		h.manager.Drop(cookie.Value)
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return c.NoContent(http.StatusNoContent)
}

// Me handles GET /auth/me. The route is mounted behind the session guard,
// which rejects anything that is not an authenticated session.
//
// @Summary      Current user profile
// @Tags         auth
// @Produce      json
// @Success      200  {object}  domain.Profile
// @Failure      401  {object}  map[string]string
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	sess, ok := middleware.SessionFrom(c)
	if !ok || !sess.Authenticated() {
		return domain.ErrUnauthenticated
	}
	return c.JSON(http.StatusOK, sess.User)
}
