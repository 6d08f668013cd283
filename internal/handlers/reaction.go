package handlers

import (
	"net/http"

	"campusconnect/internal/db"
	"campusconnect/internal/middleware"
	"campusconnect/internal/models"
	"campusconnect/internal/services"

	"github.com/gin-gonic/gin"
)

type ReactionHandler struct{}

func NewReactionHandler() *ReactionHandler {
	return &ReactionHandler{}
}

// React - 反应切换接口（AJAX）
// POST /post/:pid/react/:kind，kind 为固定集合中的一种或 "remove"
func (h *ReactionHandler) React(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		jsonError(c, services.ErrUnauthenticated)
		return
	}

	var post models.Post
	if err := db.DB.Where("pid = ?", c.Param("pid")).First(&post).Error; err != nil {
		jsonError(c, services.ErrNotFound)
		return
	}

	result, err := services.ToggleReaction(post.ID, user, c.Param("kind"))
	if err != nil {
		jsonError(c, err)
		return
	}

	resp := gin.H{
		"success":         true,
		"action":          result.Action,
		"reaction_counts": result.Counts,
	}
	if result.UserReaction != "" {
		resp["user_reaction"] = result.UserReaction
	} else {
		resp["user_reaction"] = nil
	}
	c.JSON(http.StatusOK, resp)
}

// GetReactions - 获取帖子反应汇总（AJAX）
func (h *ReactionHandler) GetReactions(c *gin.Context) {
	var post models.Post
	if err := db.DB.Where("pid = ?", c.Param("pid")).First(&post).Error; err != nil {
		jsonError(c, services.ErrNotFound)
		return
	}

	userID := uint(0)
	if user := middleware.CurrentUser(c); user != nil {
		userID = user.ID
	}

	counts, userReaction, err := services.ReactionSummary(post.ID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load reactions"})
		return
	}

	total := 0
	for _, n := range counts {
		total += n
	}

	resp := gin.H{
		"success":         true,
		"reaction_counts": counts,
		"total_reactions": total,
	}
	if userReaction != "" {
		resp["user_reaction"] = userReaction
	} else {
		resp["user_reaction"] = nil
	}
	c.JSON(http.StatusOK, resp)
}
