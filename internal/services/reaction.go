package services

import (
	"errors"
	"fmt"
	"log"

	"campusconnect/internal/db"
	"campusconnect/internal/models"

	"gorm.io/gorm"
)

// Toggle actions reported back to the reaction widget.
const (
	ReactionAdded   = "added"
	ReactionUpdated = "updated"
	ReactionRemoved = "removed"
)

// ToggleResult is the JSON-facing outcome of a toggle call.
type ToggleResult struct {
	Action       string         `json:"action"`
	Counts       map[string]int `json:"reaction_counts"`
	UserReaction string         `json:"user_reaction"` // empty when the user ends with no reaction
}

// ToggleReaction applies one click on the reaction widget for a post:
// "remove" deletes the actor's reaction, the same kind twice toggles it off,
// a different kind updates the row in place, otherwise a row is inserted.
// The unique index on (user_id, post_id) keeps concurrent calls from ever
// leaving two rows; a duplicate-key conflict is retried once.
func ToggleReaction(postID uint, actor *models.User, kind string) (*ToggleResult, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	if kind != models.ReactionRemove && !models.ValidReactionKind(kind) {
		return nil, ErrInvalidReactionKind
	}

	var post models.Post
	if err := db.DB.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	action, err := withDuplicateRetry(func() (string, error) {
		return toggleOnce(postID, actor.ID, kind)
	})
	if err != nil {
		return nil, err
	}

	// Best-effort notification to the post owner. A failure here must never
	// undo the reaction itself.
	if (action == ReactionAdded || action == ReactionUpdated) && post.UserID != actor.ID {
		message := fmt.Sprintf("%s reacted with %s to your post %q", actor.Username, kind, truncate(post.Title, 50))
		if _, err := CreateNotification(post.UserID, "New Reaction", message, models.NotificationTypePostReaction, post.ID); err != nil {
			log.Printf("reaction notification failed (post=%d): %v", post.ID, err)
		}
	}

	counts, err := reactionCounts(postID)
	if err != nil {
		return nil, err
	}

	userReaction := ""
	if action != ReactionRemoved {
		userReaction = kind
	}
	return &ToggleResult{Action: action, Counts: counts, UserReaction: userReaction}, nil
}

// withDuplicateRetry runs fn once more if it loses a race on the
// (user_id, post_id) unique index: the constraint held, so the second
// attempt sees the winner's row. Any other error passes straight through.
func withDuplicateRetry(fn func() (string, error)) (string, error) {
	action, err := fn()
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		action, err = fn()
	}
	return action, err
}

// toggleOnce runs the read-then-write sequence in a single transaction.
func toggleOnce(postID, userID uint, kind string) (string, error) {
	var action string
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Reaction
		found := true
		if err := tx.Where("user_id = ? AND post_id = ?", userID, postID).First(&existing).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			found = false
		}

		switch {
		case kind == models.ReactionRemove:
			if !found {
				return ErrNothingToRemove
			}
			action = ReactionRemoved
			return tx.Delete(&existing).Error

		case found && existing.Kind == kind:
			// Second click on the same kind toggles it off
			action = ReactionRemoved
			return tx.Delete(&existing).Error

		case found:
			action = ReactionUpdated
			return tx.Model(&existing).Update("kind", kind).Error

		default:
			action = ReactionAdded
			return tx.Create(&models.Reaction{
				UserID: userID,
				PostID: postID,
				Kind:   kind,
			}).Error
		}
	})
	return action, err
}

// reactionCounts aggregates reaction rows per kind for one post.
func reactionCounts(postID uint) (map[string]int, error) {
	type row struct {
		Kind  string
		Count int
	}
	var rows []row
	err := db.DB.Model(&models.Reaction{}).
		Select("kind, COUNT(*) as count").
		Where("post_id = ?", postID).
		Group("kind").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, r := range rows {
		counts[r.Kind] = r.Count
	}
	return counts, nil
}

// ReactionSummary returns the aggregate counts plus the given user's own
// reaction (empty when none, or when userID is 0 for guests).
func ReactionSummary(postID, userID uint) (map[string]int, string, error) {
	counts, err := reactionCounts(postID)
	if err != nil {
		return nil, "", err
	}

	userReaction := ""
	if userID > 0 {
		var reaction models.Reaction
		if err := db.DB.Where("user_id = ? AND post_id = ?", userID, postID).First(&reaction).Error; err == nil {
			userReaction = reaction.Kind
		}
	}
	return counts, userReaction, nil
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
