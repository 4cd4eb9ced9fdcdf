// Package notify provides the advisory notification sink. The storefront
// UI renders these as toasts; on the backend they are only logged.
package notify

import (
	"context"
	"log/slog"
)

type SlogNotifier struct {
	log *slog.Logger
}

func NewSlogNotifier(log *slog.Logger) *SlogNotifier {
	return &SlogNotifier{log: log}
}

func (n *SlogNotifier) Notify(ctx context.Context, sessionID, kind, message string) {
	n.log.InfoContext(ctx, "notify",
		slog.String("session_id", sessionID),
		slog.String("kind", kind),
		slog.String("message", message),
	)
}
