package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-cred-keeper/internal/events"
	"github.com/MKhiriev/go-cred-keeper/internal/logger"
)

// publish sends a ledger event. The ledger write has already succeeded, so
// a failure is only logged.
func publish(ctx context.Context, publisher events.Publisher, kind events.Kind, subject, actor string) {
	if publisher == nil {
		return
	}

	err := publisher.Publish(ctx, events.Event{Kind: kind, Subject: subject, Actor: actor, At: time.Now().UTC()})
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("kind", string(kind)).Msg("error publishing event")
	}
}
