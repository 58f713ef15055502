// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package events

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/MKhiriev/go-cred-keeper/internal/config"
	"github.com/MKhiriev/go-cred-keeper/internal/logger"
)

const defaultSubjectPrefix = "credkeeper"

// natsConn is the subset of *nats.Conn the publisher uses.
type natsConn interface {
	Publish(subject string, data []byte) error
	Drain() error
}

type natsPublisher struct {
	conn   natsConn
	prefix string
	logger *logger.Logger
}

// NewPublisher connects to NATS when cfg.NATSURL is set and returns a no-op
// publisher otherwise.
func NewPublisher(cfg config.Events, log *logger.Logger) (Publisher, error) {
	if cfg.NATSURL == "" {
		log.Info().Msg("event feed disabled")
		return NewNopPublisher(), nil
	}

	conn, err := nats.Connect(cfg.NATSURL,
		nats.Name("go-cred-keeper"),
		nats.ReconnectWait(2*time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Warn().Err(err).Msg("NATS disconnected")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info().Str("url", nc.ConnectedUrl()).Msg("NATS reconnected")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	log.Info().Str("url", cfg.NATSURL).Msg("connected to NATS")
	return newNATSPublisher(conn, cfg.SubjectPrefix, log), nil
}

func newNATSPublisher(conn natsConn, prefix string, log *logger.Logger) *natsPublisher {
	if prefix == "" {
		prefix = defaultSubjectPrefix
	}
	return &natsPublisher{conn: conn, prefix: prefix, logger: log}
}

// Subject returns the subject an event of kind is published on.
func (p *natsPublisher) Subject(kind Kind) string {
	return p.prefix + "." + string(kind)
}

func (p *natsPublisher) Publish(ctx context.Context, event Event) error {
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}

	data, err := Encode(event)
	if err != nil {
		return fmt.Errorf("error encoding event: %w", err)
	}

	subject := p.Subject(event.Kind)
	if err = p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("error publishing event to %s: %w", subject, err)
	}

	logger.FromContext(ctx).Debug().Str("subject", subject).Str("event_subject", event.Subject).Msg("event published")
	return nil
}

func (p *natsPublisher) Close() error {
	return p.conn.Drain()
}

type nopPublisher struct{}

// NewNopPublisher returns a publisher that drops every event.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) Publish(context.Context, Event) error { return nil }

func (nopPublisher) Close() error { return nil }
