package random

import (
	"crypto/rand"
	"encoding/hex"
)

// Password returns n random bytes hex-encoded (2n characters).
func Password(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the platform is broken
		panic(err)
	}

	return hex.EncodeToString(buf)
}
