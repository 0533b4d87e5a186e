package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashUserKey maps a user id ("google:123", "guest:abc") to a stable
// path-safe storage prefix so ids never appear in object keys.
func HashUserKey(userID string) string {
	sum := sha256.Sum256([]byte(userID))
	return hex.EncodeToString(sum[:16])
}
