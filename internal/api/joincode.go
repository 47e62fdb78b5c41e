package api

import (
	"crypto/rand"
	"fmt"
)

// joinCodeAlphabet drops 0/O/1/I/L: the code gets read out loud across a
// table and typed on phones.
const joinCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const joinCodeLength = 6

// newJoinCode returns a short code users type to join a session. 31^6 is
// about 900 million codes; uniqueness is still enforced by the database,
// and the caller retries on a collision.
func newJoinCode() (string, error) {
	buf := make([]byte, joinCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	for i, b := range buf {
		buf[i] = joinCodeAlphabet[int(b)%len(joinCodeAlphabet)]
	}
	return string(buf), nil
}
