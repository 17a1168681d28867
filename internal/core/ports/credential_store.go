package ports

import "context"

// CredentialStore persists the opaque credential between visits, keyed by the
// browser session ID. Read returns domain.ErrNoCredential when nothing is
// stored; any other error is a transport failure.
type CredentialStore interface {
	Read(ctx context.Context, sessionID string) (string, error)
	Write(ctx context.Context, sessionID, token string) error
	Delete(ctx context.Context, sessionID string) error
}
