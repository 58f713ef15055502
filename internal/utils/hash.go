package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
)

var contentHashRe = regexp.MustCompile(`^[0-9a-f]{64}$`)

// ContentHash fingerprints a document: SHA-256 over the raw data URL string,
// not over the decoded bytes, as lowercase hex. Stored ledger hashes depend
// on this exact input.
func ContentHash(dataURL string) string {
	sum := sha256.Sum256([]byte(dataURL))
	return hex.EncodeToString(sum[:])
}

// IsContentHash reports whether s looks like a [ContentHash] result.
func IsContentHash(s string) bool {
	return contentHashRe.MatchString(s)
}
