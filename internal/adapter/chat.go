// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-cred-keeper/internal/config"
	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/internal/utils"
	"github.com/MKhiriev/go-cred-keeper/models"
)

const routeChat = "/chat"

type chatClient struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewChatClient builds a [ChatClient] for the assistant backend at
// adapterCfg.ChatAddress. Messages are plain JSON, without an envelope.
func NewChatClient(adapterCfg config.Adapter, logger *logger.Logger) (ChatClient, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.ChatAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid chat address: %w", err)
	}

	return &chatClient{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func (c *chatClient) Send(ctx context.Context, message string) (string, error) {
	var reply models.ChatResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(models.ChatRequest{Message: message}).
		SetResult(&reply).
		Post(routeChat)
	if err != nil {
		return "", &RequestError{Op: "chat", Err: fmt.Errorf("%w: %w", ErrTransport, err)}
	}
	if err = mapHTTPError("chat", resp, nil); err != nil {
		return "", err
	}
	if resp.StatusCode() == http.StatusNoContent || reply.Reply == "" {
		c.logger.Debug().Int("status", resp.StatusCode()).Msg("chat backend sent an empty reply")
	}

	return reply.Reply, nil
}
