package utils

import (
	"strings"
	"testing"
)

func TestRandStringBytesMaskImpr(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		s := RandStringBytesMaskImpr(8)
		if len(s) != 8 {
			t.Fatalf("Expected length 8, got %d (%q)", len(s), s)
		}
		for _, r := range s {
			if !strings.ContainsRune(letterBytes, r) {
				t.Fatalf("Unexpected character %q in %q", r, s)
			}
		}
		seen[s] = true
	}
	// 100 draws from 62^8 should not collide
	if len(seen) < 100 {
		t.Errorf("Expected 100 distinct ids, got %d", len(seen))
	}
}
