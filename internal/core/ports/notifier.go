package ports

// Notifier surfaces transient user-facing notifications (toasts). Flows call
// it instead of a global ambient helper so tests can record what was shown.
type Notifier interface {
	Success(title, detail string)
	Error(title, detail string)
}
