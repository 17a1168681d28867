package domain

// SessionStatus represents the lifecycle state of an authentication session.
type SessionStatus string

const (
	StatusUnauthenticated SessionStatus = "unauthenticated"
	StatusHydrating       SessionStatus = "hydrating"
	StatusAuthenticated   SessionStatus = "authenticated"
	StatusError           SessionStatus = "error"
)

// Profile is the subset of the user record the platform needs for rendering.
type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session is the in-memory record of one visitor's authentication state.
//
// Invariant: StatusAuthenticated implies Token and User are both present;
// StatusUnauthenticated implies both are absent.
type Session struct {
	Token  string        `json:"-"`
	User   *Profile      `json:"user,omitempty"`
	Status SessionStatus `json:"status"`
	Err    string        `json:"error,omitempty"`
}

// Authenticated reports whether the session carries a usable identity.
func (s Session) Authenticated() bool {
	return s.Status == StatusAuthenticated && s.Token != "" && s.User != nil
}
