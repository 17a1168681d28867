package authapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/manara-academy/platform-api/internal/core/domain"
)

func TestClient_Login_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/auth/login" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req["email"] != "ali@x.com" {
			t.Fatalf("unexpected email: %s", req["email"])
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token": "tok123",
			"user":  map[string]string{"id": "u1", "name": "Ali", "email": "ali@x.com"},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	token, user, err := client.Login(context.Background(), "ali@x.com", "secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "tok123" || user.ID != "u1" {
		t.Fatalf("unexpected result: %s %+v", token, user)
	}
}

func TestClient_Login_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "wrong password"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, _, err := client.Login(context.Background(), "ali@x.com", "bad")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestClient_ForgetPassword_ServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "no account for this email"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	err := client.ForgetPassword(context.Background(), "ghost@x.com")

	var remote *domain.RemoteError
	if !errors.As(err, &remote) {
		t.Fatalf("expected RemoteError, got %v", err)
	}
	if remote.Message != "no account for this email" || remote.Status != http.StatusNotFound {
		t.Fatalf("unexpected remote error: %+v", remote)
	}
}

func TestClient_ForgetPassword_NoMessageStaysGeneric(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	err := client.ForgetPassword(context.Background(), "ali@x.com")

	var remote *domain.RemoteError
	if errors.As(err, &remote) {
		t.Fatalf("expected a generic error, got remote %+v", remote)
	}
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestClient_ResetPassword_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req["token"] != "tok-abc" || req["new_password"] != "secret1" {
			t.Fatalf("unexpected body: %v", req)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	if err := client.ResetPassword(context.Background(), "tok-abc", "secret1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestTokenVerifier_Roundtrip(t *testing.T) {
	verifier := NewTokenVerifier("secret")
	token := signTestToken(t, "secret", jwt.MapClaims{
		"sub":   "u1",
		"name":  "Ali",
		"email": "ali@x.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	user, err := verifier.Verify(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "u1" || user.Name != "Ali" || user.Email != "ali@x.com" {
		t.Fatalf("unexpected profile: %+v", user)
	}
}

func TestTokenVerifier_Expired(t *testing.T) {
	verifier := NewTokenVerifier("secret")
	token := signTestToken(t, "secret", jwt.MapClaims{
		"sub": "u1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	if _, err := verifier.Verify(token); err == nil {
		t.Fatalf("expected expiry error")
	}
}

func TestTokenVerifier_WrongSecret(t *testing.T) {
	verifier := NewTokenVerifier("secret")
	token := signTestToken(t, "other", jwt.MapClaims{
		"sub": "u1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	if _, err := verifier.Verify(token); err == nil {
		t.Fatalf("expected signature error")
	}
}
