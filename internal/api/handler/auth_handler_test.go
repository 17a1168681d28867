package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/manara-academy/platform-api/internal/api/middleware"
	"github.com/manara-academy/platform-api/internal/core/domain"
	"github.com/manara-academy/platform-api/internal/core/session"
)

type memCreds struct {
	tokens map[string]string
}

func newMemCreds() *memCreds { return &memCreds{tokens: map[string]string{}} }

func (m *memCreds) Read(_ context.Context, id string) (string, error) {
	token, ok := m.tokens[id]
	if !ok {
		return "", domain.ErrNoCredential
	}
	return token, nil
}

func (m *memCreds) Write(_ context.Context, id, token string) error {
	m.tokens[id] = token
	return nil
}

func (m *memCreds) Delete(_ context.Context, id string) error {
	delete(m.tokens, id)
	return nil
}

type okVerifier struct{}

func (okVerifier) Verify(string) (*domain.Profile, error) {
	return &domain.Profile{ID: "u1", Name: "Ali", Email: "ali@x.com"}, nil
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	auth := &stubAuthClient{loginFn: func(_ context.Context, email, password string) (string, *domain.Profile, error) {
		if email != "ali@x.com" || password != "secret1" {
			t.Fatalf("unexpected args: %s %s", email, password)
		}
		return "tok123", &domain.Profile{ID: "u1", Name: "Ali", Email: "ali@x.com"}, nil
	}}
	creds := newMemCreds()
	mgr := session.NewManager(creds, okVerifier{})
	handler := NewAuthHandler(auth, creds, mgr, 0, false)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"ali@x.com","password":"secret1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	cookies := rec.Result().Cookies()
	var sessionID string
	for _, ck := range cookies {
		if ck.Name == middleware.SessionCookie {
			sessionID = ck.Value
		}
	}
	if sessionID == "" {
		t.Fatalf("expected session cookie set")
	}
	if token := creds.tokens[sessionID]; token != "tok123" {
		t.Fatalf("expected credential persisted, got %q", token)
	}
	if !mgr.StoreFor(sessionID).Session().Authenticated() {
		t.Fatalf("expected session store authenticated after login")
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	user, ok := resp["user"].(map[string]any)
	if !ok || user["id"] != "u1" {
		t.Fatalf("unexpected response: %v", resp)
	}
}

// A fresh process boot after a persisted login must restore the same user
// through hydration alone, without an explicit re-login.
func TestAuthHandler_Login_SurvivesRestartViaHydration(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	auth := &stubAuthClient{loginFn: func(context.Context, string, string) (string, *domain.Profile, error) {
		return "tok123", &domain.Profile{ID: "u1", Name: "Ali", Email: "ali@x.com"}, nil
	}}
	creds := newMemCreds()
	handler := NewAuthHandler(auth, creds, session.NewManager(creds, okVerifier{}), 0, false)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"ali@x.com","password":"secret1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := handler.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	var sessionID string
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.SessionCookie {
			sessionID = ck.Value
		}
	}

	// Simulate a restart: a new manager with the same credential store.
	fresh := session.NewManager(creds, okVerifier{})
	st := fresh.StoreFor(sessionID)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) && st.Session().Status == domain.StatusHydrating {
		time.Sleep(time.Millisecond)
	}

	sess := st.Session()
	if !sess.Authenticated() || sess.User.ID != "u1" {
		t.Fatalf("expected restored session for u1, got %+v", sess)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	auth := &stubAuthClient{loginFn: func(context.Context, string, string) (string, *domain.Profile, error) {
		return "", nil, domain.ErrInvalidCredentials
	}}
	creds := newMemCreds()
	handler := NewAuthHandler(auth, creds, session.NewManager(creds, okVerifier{}), 0, false)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"ali@x.com","password":"wrong1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}
	if len(creds.tokens) != 0 {
		t.Fatalf("no credential must be persisted on failure")
	}
}

func TestAuthHandler_Login_ShortPasswordRejectedLocally(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	called := false
	auth := &stubAuthClient{loginFn: func(context.Context, string, string) (string, *domain.Profile, error) {
		called = true
		return "", nil, nil
	}}
	creds := newMemCreds()
	handler := NewAuthHandler(auth, creds, session.NewManager(creds, okVerifier{}), 0, false)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"ali@x.com","password":"abc"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Login(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
	if called {
		t.Fatalf("auth service must not be called for invalid payloads")
	}
}

func TestAuthHandler_Logout_ClearsSessionAndCookie(t *testing.T) {
	e := echo.New()

	creds := newMemCreds()
	creds.tokens["sid"] = "tok123"
	mgr := session.NewManager(creds, okVerifier{})
	mgr.Register("sid", "tok123", domain.Profile{ID: "u1"})
	handler := NewAuthHandler(&stubAuthClient{}, creds, mgr, 0, false)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "sid"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if _, ok := creds.tokens["sid"]; ok {
		t.Fatalf("expected credential removed")
	}

	var cleared bool
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.SessionCookie && ck.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("expected session cookie expired")
	}
}

func TestAuthHandler_Me(t *testing.T) {
	e := echo.New()

	creds := newMemCreds()
	handler := NewAuthHandler(&stubAuthClient{}, creds, session.NewManager(creds, okVerifier{}), 0, false)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.SessionKey, domain.Session{
		Token:  "tok",
		User:   &domain.Profile{ID: "u1", Name: "Ali"},
		Status: domain.StatusAuthenticated,
	})

	if err := handler.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["id"] != "u1" {
		t.Fatalf("unexpected profile: %v", resp)
	}
}
