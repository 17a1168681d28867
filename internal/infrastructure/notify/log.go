// Package notify provides the operator-facing Notifier implementation.
// Flows report toasts through the ports.Notifier interface; this backend
// records them in the structured log so support can trace what a user saw.
package notify

import "github.com/rs/zerolog"

type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Success(title, detail string) {
	n.log.Info().Str("title", title).Str("detail", detail).Msg("toast")
}

func (n *LogNotifier) Error(title, detail string) {
	n.log.Warn().Str("title", title).Str("detail", detail).Msg("toast")
}
