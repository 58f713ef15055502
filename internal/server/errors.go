// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoTransports means neither the HTTP API nor the gRPC health endpoint
// has an address.
var errNoTransports = errors.New("server: no transport configured")
