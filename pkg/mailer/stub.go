package mailer

import (
	"context"
	"log/slog"
)

// LogMailer is a no-op mailer for development; it logs instead of sending.
type LogMailer struct {
	Log *slog.Logger
}

func (m *LogMailer) Send(ctx context.Context, msg Message) error {
	log := m.Log
	if log == nil {
		log = slog.Default()
	}
	log.Info("mail (stub, not delivered)", "to", msg.To, "subject", msg.Subject)
	return nil
}
