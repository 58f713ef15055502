// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

var (
	// ErrUserQuit is returned by [TUI.Run] when the user pressed ctrl+c.
	ErrUserQuit = errors.New("user quit")

	errChatUnavailable = errors.New("chat assistant is not configured")
)
