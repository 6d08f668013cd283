package models

import (
	"time"
)

// Reaction kinds. The set is medical-themed and fixed; "remove" is a
// request sentinel handled by the toggle service, never stored.
const (
	ReactionStethoscope = "stethoscope"
	ReactionHeartbeat   = "heartbeat"
	ReactionPill        = "pill"
	ReactionSyringe     = "syringe"
	ReactionTooth       = "tooth"
	ReactionDNA         = "dna"

	ReactionRemove = "remove"
)

// ReactionKinds lists every storable kind, in display order.
var ReactionKinds = []string{
	ReactionStethoscope, ReactionHeartbeat, ReactionPill,
	ReactionSyringe, ReactionTooth, ReactionDNA,
}

// ValidReactionKind reports whether kind may be stored on a reaction row.
func ValidReactionKind(kind string) bool {
	for _, k := range ReactionKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Reaction is one user's reaction to one post. The composite unique index
// is the hard guarantee that at most one row exists per (user, post).
type Reaction struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_user_post_reaction" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	PostID    uint      `gorm:"not null;index;uniqueIndex:idx_user_post_reaction" json:"post_id"`
	Post      Post      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"post"`
	Kind      string    `gorm:"size:20;not null" json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}
