package handlers

import (
	"net/http"

	"campusconnect/internal/db"
	"campusconnect/internal/middleware"
	"campusconnect/internal/models"
	"campusconnect/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Profile - 当前用户主页
func (h *UserHandler) Profile(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	var posts []models.Post
	db.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&posts)
	fillPostCounts(posts)

	Render(c, http.StatusOK, "main/profile.html", gin.H{
		"Title": "My Profile",
		"User":  user,
		"Posts": posts,
	})
}

// ViewProfile - 查看他人主页 /profile/:username
func (h *UserHandler) ViewProfile(c *gin.Context) {
	username := c.Param("username")

	var user models.User
	if err := db.DB.Where("username = ?", username).First(&user).Error; err != nil {
		RenderError(c, http.StatusNotFound, "User not found")
		return
	}

	var posts []models.Post
	db.DB.Preload("User").
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Limit(10).
		Find(&posts)
	fillPostCounts(posts)

	Render(c, http.StatusOK, "main/view_profile.html", gin.H{
		"Title":       user.Username,
		"ProfileUser": user,
		"Posts":       posts,
	})
}

func (h *UserHandler) ShowEditProfile(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	Render(c, http.StatusOK, "main/edit_profile.html", gin.H{
		"Title": "Edit Profile",
		"User":  user,
	})
}

// UpdateProfile - 更新个人资料
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	err := services.UpdateProfile(user, services.ProfileInput{
		FirstName: c.PostForm("first_name"),
		LastName:  c.PostForm("last_name"),
		Email:     c.PostForm("email"),
		Faculty:   c.PostForm("faculty"),
		Program:   c.PostForm("program"),
		Year:      c.PostForm("year"),
	})
	if err != nil {
		Render(c, http.StatusBadRequest, "main/edit_profile.html", gin.H{
			"Title": "Edit Profile",
			"User":  user,
			"Error": err.Error(),
		})
		return
	}

	c.Redirect(http.StatusFound, "/profile")
}

// DeleteAccount - 注销账号，级联删除名下全部内容
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	if err := services.DeleteUser(user.ID, user); err != nil {
		jsonError(c, err)
		return
	}

	session := sessions.Default(c)
	session.Clear()
	session.Save()

	c.JSON(http.StatusOK, gin.H{"success": true})
}
