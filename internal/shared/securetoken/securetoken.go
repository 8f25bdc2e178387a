// Package securetoken mints opaque bearer secrets. Only the SHA-256 digest
// is ever persisted; the raw value goes to the client once.
package securetoken

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

const entropyBytes = 32

// New returns a URL-safe random token and its hex digest.
func New() (raw, hash string, err error) {
	buf := make([]byte, entropyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("securetoken: %w", err)
	}
	raw = base64.RawURLEncoding.EncodeToString(buf)
	return raw, Hash(raw), nil
}

func Hash(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
