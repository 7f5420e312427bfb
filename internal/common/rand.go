package common

import "math/rand/v2"

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// RandString returns n characters of base36 from a non-cryptographic source.
// Do not use it where unguessability matters.
func RandString(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = base36[rand.IntN(len(base36))]
	}
	return string(b)
}
