package models

import "testing"

func TestValidReactionKind(t *testing.T) {
	for _, kind := range ReactionKinds {
		if !ValidReactionKind(kind) {
			t.Errorf("Expected %q to be valid", kind)
		}
	}
	for _, kind := range []string{"remove", "like", "thumbsup", ""} {
		if ValidReactionKind(kind) {
			t.Errorf("Expected %q to be invalid", kind)
		}
	}
}
