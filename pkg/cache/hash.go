package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
)

// Hash returns the hex-encoded SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey hashes parts, each terminated by a NUL byte so that adjacent
// parts cannot run together, and prefixes the digest with kind:
// "artifact:9f86d08...".
func hashKey(kind string, parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		io.WriteString(h, p)
		h.Write([]byte{0})
	}
	return kind + ":" + hex.EncodeToString(h.Sum(nil))
}
