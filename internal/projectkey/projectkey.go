// Package projectkey generates the short public keys that identify a
// project to the embeddable widget.
package projectkey

import (
	"crypto/rand"
	"fmt"
	"io"
)

const (
	// Alphabet is the set of characters a key is drawn from.
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// Length is the number of characters in a key.
	Length = 8
)

// Generator produces a candidate key. Uniqueness is the caller's concern.
type Generator func() (string, error)

// Generate returns a random key read from crypto/rand.
func Generate() (string, error) {
	return FromReader(rand.Reader)
}

// FromReader builds a key from bytes read from r.
//
// Bytes at or above the largest multiple of len(Alphabet) are discarded so
// every character is equally likely.
func FromReader(r io.Reader) (string, error) {
	const limit = 256 - 256%len(Alphabet)

	key := make([]byte, 0, Length)
	buf := make([]byte, Length)
	for len(key) < Length {
		if _, err := io.ReadFull(r, buf); err != nil {
			return "", fmt.Errorf("read random bytes: %w", err)
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			key = append(key, Alphabet[int(b)%len(Alphabet)])
			if len(key) == Length {
				break
			}
		}
	}
	return string(key), nil
}

// Valid reports whether s has the shape of a generated key.
func Valid(s string) bool {
	if len(s) != Length {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= 'A' && c <= 'Z') && !(c >= '0' && c <= '9') {
			return false
		}
	}
	return true
}
