package model

import "math/rand/v2"

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// shortID returns a 9-character base36 token, the id format used throughout
// the persisted document.
func shortID() string {
	b := make([]byte, 9)
	for i := range b {
		b[i] = idAlphabet[rand.IntN(len(idAlphabet))]
	}
	return string(b)
}
