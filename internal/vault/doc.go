// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package vault keeps a user's wallet key material encrypted at rest on the
// client machine.
//
// Every username owns two slots in an injected [KV]:
//
//	user_name_<username>    display name, plaintext
//	user_wallet_<username>  wallet record encrypted under the login password
//
// The display name stays readable without a password so the client can greet
// a returning user before the password is checked.
//
// Records are written as "v1:" followed by base64(salt ‖ nonce ‖ ciphertext),
// keyed by Argon2id over the password and sealed with AES-256-GCM, so a wrong
// password is detected by tag verification. Records written by the web
// portals (salted passphrase format, "U2FsdGVkX1" prefix) still load, but for
// those a wrong password can only be recognised by the plaintext failing to
// decode. That check is heuristic and may in rare cases accept garbage that
// happens to parse.
//
// The same [KV] also carries the session slots jwt, role and wallet; see
// [Session].
package vault
