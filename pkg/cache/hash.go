package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// hashKey joins prefix with the SHA-256 of the remaining parts.
// The result looks like "trending:9f86d0...".
func hashKey(prefix string, parts ...string) string {
	return prefix + ":" + Hash([]byte(strings.Join(parts, "\x00")))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
