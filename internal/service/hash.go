package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Hasher derives the salted HMAC-SHA-256 that stands in for passwords and PINs.
type Hasher struct {
	salt []byte
}

func NewHasher(salt string) *Hasher {
	return &Hasher{salt: []byte(salt)}
}

// Hash returns the lowercase hex digest of value.
func (h *Hasher) Hash(value string) string {
	mac := hmac.New(sha256.New, h.salt)
	mac.Write([]byte(value))

	return hex.EncodeToString(mac.Sum(nil))
}

func (h *Hasher) Matches(value, expectedHex string) bool {
	return hmac.Equal([]byte(h.Hash(value)), []byte(strings.ToLower(strings.TrimSpace(expectedHex))))
}
