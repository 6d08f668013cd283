package handlers

import (
	"net/http"
	"strconv"

	"campusconnect/internal/middleware"
	"campusconnect/internal/models"
	"campusconnect/internal/services"
	"campusconnect/internal/utils"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct{}

func NewNotificationHandler() *NotificationHandler {
	return &NotificationHandler{}
}

// List - 通知列表页；查看即标记全部已读
func (h *NotificationHandler) List(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	notifications, err := services.RecentNotifications(user.ID, 50)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to load notifications")
		return
	}

	// Viewing the page marks everything read
	services.MarkAllRead(user)

	Render(c, http.StatusOK, "main/notifications.html", gin.H{
		"Title":         "Notifications",
		"Notifications": notifications,
	})
}

// Count - 未读数（AJAX 导航栏角标）
func (h *NotificationHandler) Count(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	count, err := services.UnreadCount(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to count notifications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// Preview - 下拉框预览最近 5 条（AJAX）
func (h *NotificationHandler) Preview(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	notifications, err := services.RecentNotifications(user.ID, 5)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load notifications"})
		return
	}

	data := make([]gin.H, 0, len(notifications))
	for _, n := range notifications {
		data = append(data, gin.H{
			"id":      n.ID,
			"title":   n.Title,
			"message": n.Message,
			"type":    n.Type,
			"is_read": n.IsRead,
			"time":    utils.TimeAgo(n.CreatedAt),
		})
	}
	c.JSON(http.StatusOK, gin.H{"notifications": data})
}

// Read - 标记单条通知已读（AJAX）
func (h *NotificationHandler) Read(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonError(c, services.ErrNotFound)
		return
	}

	if err := services.MarkNotificationRead(uint(id), user); err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Clear - 清空当前用户全部通知（AJAX）
func (h *NotificationHandler) Clear(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	if err := services.ClearNotifications(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to clear notifications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
