// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/models"
)

//go:embed schemas/*.json
var schemaFS embed.FS

const (
	schemaRegister   = "register"
	schemaLogin      = "login"
	schemaRecover    = "recover"
	schemaIssue      = "issue"
	schemaHash       = "hash"
	schemaUniversity = "university"
)

// PayloadValidator validates request payloads with JSON schemas compiled once
// at construction.
type PayloadValidator struct {
	schemas map[string]*gojsonschema.Schema
}

// NewPayloadValidator compiles every embedded schema.
func NewPayloadValidator() (*PayloadValidator, error) {
	names := []string{schemaRegister, schemaLogin, schemaRecover, schemaIssue, schemaHash, schemaUniversity}

	v := &PayloadValidator{schemas: make(map[string]*gojsonschema.Schema, len(names))}
	for _, name := range names {
		raw, err := schemaFS.ReadFile("schemas/" + name + ".json")
		if err != nil {
			return nil, fmt.Errorf("error reading schema %s: %w", name, err)
		}

		schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
		if err != nil {
			return nil, fmt.Errorf("error compiling schema %s: %w", name, err)
		}
		v.schemas[name] = schema
	}

	return v, nil
}

// Validate checks v against the schema of its type. Pointers and values
// are both accepted.
func (p *PayloadValidator) Validate(ctx context.Context, v any) error {
	name, err := schemaFor(v)
	if err != nil {
		return err
	}

	result, err := p.schemas[name].Validate(gojsonschema.NewGoLoader(v))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	if result.Valid() {
		return nil
	}

	descriptions := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		descriptions = append(descriptions, e.String())
	}
	logger.FromContext(ctx).Debug().Str("schema", name).Strs("violations", descriptions).Msg("payload rejected")

	return &PayloadError{Violation: result.Errors()[0].String()}
}

func schemaFor(v any) (string, error) {
	switch v.(type) {
	case models.RegisterRequest, *models.RegisterRequest:
		return schemaRegister, nil
	case models.LoginRequest, *models.LoginRequest:
		return schemaLogin, nil
	case models.RecoverRequest, *models.RecoverRequest:
		return schemaRecover, nil
	case models.IssueRequest, *models.IssueRequest:
		return schemaIssue, nil
	case models.HashRequest, *models.HashRequest:
		return schemaHash, nil
	case models.UniversityRequest, *models.UniversityRequest:
		return schemaUniversity, nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
}

// PayloadError reports the first schema violation of a payload. It matches
// [ErrInvalidPayload] under [errors.Is].
type PayloadError struct {
	Violation string
}

func (e *PayloadError) Error() string {
	return ErrInvalidPayload.Error() + ": " + e.Violation
}

func (e *PayloadError) Is(target error) bool {
	return target == ErrInvalidPayload
}
