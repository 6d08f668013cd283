package handlers

import (
	"net/http"
	"strconv"

	"campusconnect/internal/db"
	"campusconnect/internal/middleware"
	"campusconnect/internal/models"
	"campusconnect/internal/services"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct{}

func NewCommentHandler() *CommentHandler {
	return &CommentHandler{}
}

// Create - 发表评论（AJAX，返回渲染所需的评论数据）
func (h *CommentHandler) Create(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	pid := c.Param("pid")

	var post models.Post
	if err := db.DB.Where("pid = ?", pid).First(&post).Error; err != nil {
		jsonError(c, services.ErrNotFound)
		return
	}

	content := c.PostForm("content")
	if content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Comment cannot be empty"})
		return
	}

	comment := models.Comment{
		PostID:  post.ID,
		UserID:  user.ID,
		Content: content,
	}
	if err := db.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to save comment"})
		return
	}

	// Notify the post author about the new comment, best-effort
	if post.UserID != user.ID {
		services.CreateNotification(post.UserID, "New Comment",
			user.Username+" commented on your post \""+post.Title+"\"",
			models.NotificationTypeComment, post.ID)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"comment": gin.H{
			"id":               comment.ID,
			"content":          comment.Content,
			"author_name":      user.Username,
			"author_full_name": user.FullName(),
			"created_at":       comment.CreatedAt.Format("Jan 02, 2006 at 3:04 PM"),
		},
	})
}

// Delete - 删除评论：评论作者、帖子作者或管理员
func (h *CommentHandler) Delete(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonError(c, services.ErrNotFound)
		return
	}

	var comment models.Comment
	if err := db.DB.Preload("Post").First(&comment, id).Error; err != nil {
		jsonError(c, services.ErrNotFound)
		return
	}

	if comment.UserID != user.ID && comment.Post.UserID != user.ID && !user.IsAdmin() {
		jsonError(c, services.ErrForbidden)
		return
	}

	if err := db.DB.Delete(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete comment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
