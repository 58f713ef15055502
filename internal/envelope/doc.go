// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package envelope wraps JSON payloads into the single-field {content}
// envelope carried by every API body, and unwraps them on the other side.
//
// One key is shared by all clients and the server. That keeps traffic
// opaque to outside observers only: anyone holding a client build holds the
// key, so the envelope is not a boundary against untrusted clients.
//
// Two modes exist:
//
//   - [ModeGCM] derives an AES-256-GCM key from the configured secret with
//     HKDF and authenticates every message.
//   - [ModeLegacy] speaks the salted passphrase format of the web portals
//     (AES-256-CBC, EVP_BytesToKey), so existing browser clients keep working.
package envelope
