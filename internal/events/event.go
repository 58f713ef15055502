// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package events publishes ledger changes to a NATS subject tree so that
// other services can follow registrations, approvals and credential
// lifecycle without polling the API.
package events

import (
	"context"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// Kind names a ledger change. It is also the last token of the subject.
type Kind string

const (
	AccountRegistered Kind = "account.registered"
	IssuerApproved    Kind = "issuer.approved"
	IssuerRejected    Kind = "issuer.rejected"
	CredentialIssued  Kind = "credential.issued"
	CredentialRevoked Kind = "credential.revoked"
)

// Event is a single ledger change. Subject identifies what changed (an
// address, a university name or a credential hash); Actor is the wallet
// that caused it.
type Event struct {
	Kind    Kind      `cbor:"1,keyasint"`
	Subject string    `cbor:"2,keyasint"`
	Actor   string    `cbor:"3,keyasint,omitempty"`
	At      time.Time `cbor:"4,keyasint"`
}

// Publisher delivers events. Implementations must not block the caller for
// long and report failures without panicking.
//
//go:generate mockgen -source=event.go -destination=../mock/events_mock.go -package=mock
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

var encMode = func() cbor.EncMode {
	mode, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return mode
}()

// Encode serializes e with deterministic CBOR.
func Encode(e Event) ([]byte, error) {
	return encMode.Marshal(e)
}

// Decode parses an event produced by [Encode].
func Decode(data []byte) (Event, error) {
	var e Event
	err := cbor.Unmarshal(data, &e)
	return e, err
}
