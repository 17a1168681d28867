package middleware

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/manara-academy/platform-api/internal/core/domain"
	"github.com/manara-academy/platform-api/internal/core/session"
)

// SessionCookie is the browser cookie carrying the session ID.
const SessionCookie = "manara_session"

// SessionKey is the echo.Context key under which the guard stores the
// resolved session for downstream handlers.
const SessionKey = "session"

// Guard gates protected routes on the visitor's session status.
//
// hydrating never redirects: a redirect fired during the hydration window
// would bounce a returning user to the login page before their persisted
// session is restored, which is exactly the bug this middleware exists to
// prevent. Instead it answers with a neutral loading body.
func Guard(mgr *session.Manager, loginPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return c.Redirect(http.StatusFound, loginPath)
			}

			sess := mgr.StoreFor(cookie.Value).Session()
			switch sess.Status {
			case domain.StatusHydrating:
				c.Response().Header().Set("Retry-After", "1")
				return c.JSON(http.StatusOK, map[string]string{"status": "loading"})
			case domain.StatusAuthenticated:
				c.Set(SessionKey, sess)
				return next(c)
			case domain.StatusError:
				q := url.Values{"error": {sess.Err}}
				return c.Redirect(http.StatusFound, loginPath+"?"+q.Encode())
			default:
				return c.Redirect(http.StatusFound, loginPath)
			}
		}
	}
}

// SessionFrom extracts the session the guard stored on the context.
func SessionFrom(c echo.Context) (domain.Session, bool) {
	sess, ok := c.Get(SessionKey).(domain.Session)
	return sess, ok
}
