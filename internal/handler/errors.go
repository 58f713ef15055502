// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoTransportHandlers is returned by NewHandlers when the server config
// has neither an HTTP nor a gRPC address. The server refuses to start.
var errNoTransportHandlers = errors.New("handler: no transport address configured")
