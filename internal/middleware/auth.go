package middleware

import (
	"net/http"
	"time"

	"campusconnect/internal/db"
	"campusconnect/internal/models"
	"campusconnect/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const CheckUserKey = "user"
const UnreadCountKey = "unread_count"

// LoadUser resolves the session user id to a fresh DB row and sets it on the
// context. The session stores only the id; role and profile fields are always
// re-read so authorization never trusts a stale session copy.
func LoadUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get("user_id")

		if userID != nil {
			var user models.User
			if err := db.DB.First(&user, userID).Error; err == nil {
				c.Set(CheckUserKey, &user)

				// Touch last_seen, at most once a minute to keep writes down
				if time.Since(user.LastSeen) > time.Minute {
					db.DB.Model(&user).UpdateColumn("last_seen", time.Now())
				}

				if count, err := services.UnreadCount(user.ID); err == nil {
					c.Set(UnreadCountKey, count)
				}
			}
		}
		c.Next()
	}
}

// AuthRequired ensures a user is logged in
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(CheckUserKey); !exists {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the loaded user, or nil for guests.
func CurrentUser(c *gin.Context) *models.User {
	if u, exists := c.Get(CheckUserKey); exists {
		return u.(*models.User)
	}
	return nil
}
