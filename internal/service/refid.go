package service

import "crypto/rand"

// refAlphabet omits characters that are easy to confuse when read aloud or
// copied by hand (0/O, 1/I/L).
const refAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// refLength gives ~40 bits of entropy, plenty for human-scale booking volume.
const refLength = 8

// NewRefID returns a short, user-presentable booking reference.  Uniqueness
// is not guaranteed here; it is enforced by the ledger's unique index, and
// callers regenerate on a collision.
func NewRefID() (string, error) {
	b := make([]byte, refLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	for i := range b {
		b[i] = refAlphabet[int(b[i])%len(refAlphabet)]
	}
	return string(b), nil
}
