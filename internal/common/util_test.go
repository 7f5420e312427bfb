package common

import (
	"strings"
	"testing"
)

func TestRandString_LengthAndAlphabet(t *testing.T) {
	const n = 9
	s := RandString(n)
	if len(s) != n {
		t.Fatalf("expected length %d, got %d", n, len(s))
	}
	for _, r := range s {
		if !strings.ContainsRune(base36, r) {
			t.Fatalf("unexpected rune %q in %q", r, s)
		}
	}
}

func TestRandString_ZeroAndNegative(t *testing.T) {
	if s := RandString(0); s != "" {
		t.Fatalf("expected empty string for n=0, got %q", s)
	}
	if s := RandString(-3); s != "" {
		t.Fatalf("expected empty string for n<0, got %q", s)
	}
}

func TestRandString_EntropyHint(t *testing.T) {
	a := RandString(16)
	b := RandString(16)
	if a == b {
		t.Logf("warning: two RandString(16) results are identical; extremely unlikely")
	}
}
