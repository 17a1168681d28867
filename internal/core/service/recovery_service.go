package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/manara-academy/platform-api/internal/core/domain"
	"github.com/manara-academy/platform-api/internal/core/forms"
	"github.com/manara-academy/platform-api/internal/core/ports"
)

// FlowState tracks one recovery step through its lifecycle.
type FlowState string

const (
	FlowIdle       FlowState = "idle"
	FlowSubmitting FlowState = "submitting"
	FlowSucceeded  FlowState = "succeeded"
	FlowFailed     FlowState = "failed"
)

const (
	genericRequestFailure = "could not send the reset email, please try again"
	genericResetFailure   = "could not reset the password, please try again"
	minPasswordLen        = 6
)

var requestResetSchema = forms.Schema{
	forms.RequiredRule("email"),
	{Field: "email", Predicate: forms.Email(), Message: "must be a valid email"},
}

var confirmResetSchema = forms.Schema{
	{Field: "password", Predicate: forms.MinLen(minPasswordLen), Message: "must be at least 6 characters"},
	{Field: "confirm", Predicate: forms.MinLen(minPasswordLen), Message: "must be at least 6 characters"},
	{Field: "confirm", Predicate: forms.EqualTo("password"), Message: "passwords do not match"},
}

// RecoveryFlow is a single request/response state machine for one password
// recovery step. A flow instance is created per form submission and discarded
// when the step completes; submitting twice while a call is pending is
// rejected so one logical action never has two in-flight requests.
type RecoveryFlow struct {
	mu       sync.Mutex
	state    FlowState
	auth     ports.AuthClient
	notifier ports.Notifier
	log      zerolog.Logger
}

func NewRecoveryFlow(auth ports.AuthClient, notifier ports.Notifier, log zerolog.Logger) *RecoveryFlow {
	return &RecoveryFlow{state: FlowIdle, auth: auth, notifier: notifier, log: log}
}

// State returns the current flow state.
func (f *RecoveryFlow) State() FlowState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// RequestReset validates the email and asks the auth service to send a reset
// link. Validation failures return forms.Errors without touching the network
// and leave the flow idle so the user can correct and resubmit.
func (f *RecoveryFlow) RequestReset(ctx context.Context, email string) error {
	if errs := requestResetSchema.Validate(forms.Values{"email": email}); errs != nil {
		return errs
	}

	if err := f.begin(); err != nil {
		return err
	}

	if err := f.auth.ForgetPassword(ctx, strings.TrimSpace(email)); err != nil {
		f.fail()
		msg := serverMessage(err, genericRequestFailure)
		f.notifier.Error("Reset request failed", msg)
		return err
	}

	f.succeed()
	f.notifier.Success("Reset link sent", "Check your inbox for the password reset link")
	return nil
}

// ConfirmReset consumes a reset token and sets a new password. A missing
// token fails immediately with a specific message and zero network calls.
// The password pair is validated with the mismatch attached to the
// confirmation field.
func (f *RecoveryFlow) ConfirmReset(ctx context.Context, token, password, confirm string) error {
	if strings.TrimSpace(token) == "" {
		f.mu.Lock()
		f.state = FlowFailed
		f.mu.Unlock()
		f.notifier.Error("Reset failed", domain.ErrRecoveryTokenMissing.Error())
		return domain.ErrRecoveryTokenMissing
	}

	values := forms.Values{"password": password, "confirm": confirm}
	if errs := confirmResetSchema.Validate(values); errs != nil {
		return errs
	}

	if err := f.begin(); err != nil {
		return err
	}

	if err := f.auth.ResetPassword(ctx, token, password); err != nil {
		f.fail()
		msg := serverMessage(err, genericResetFailure)
		f.notifier.Error("Reset failed", msg)
		return err
	}

	f.succeed()
	f.notifier.Success("Password updated", "You can now sign in with your new password")
	return nil
}

func (f *RecoveryFlow) begin() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == FlowSubmitting {
		return domain.ErrSubmissionInFlight
	}
	f.state = FlowSubmitting
	return nil
}

func (f *RecoveryFlow) succeed() {
	f.mu.Lock()
	f.state = FlowSucceeded
	f.mu.Unlock()
}

func (f *RecoveryFlow) fail() {
	f.mu.Lock()
	f.state = FlowFailed
	f.mu.Unlock()
}

// serverMessage prefers the upstream-provided message and falls back to a
// generic one for transport failures.
func serverMessage(err error, fallback string) string {
	var remote *domain.RemoteError
	if errors.As(err, &remote) && remote.Message != "" {
		return remote.Message
	}
	return fallback
}
