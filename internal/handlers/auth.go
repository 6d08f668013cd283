package handlers

import (
	"net/http"

	"campusconnect/internal/middleware"
	"campusconnect/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	if middleware.CurrentUser(c) != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	Render(c, http.StatusOK, "auth/register.html", gin.H{"Title": "Register"})
}

func (h *AuthHandler) Register(c *gin.Context) {
	if middleware.CurrentUser(c) != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	password := c.PostForm("password")
	if password != c.PostForm("confirm_password") {
		Render(c, http.StatusBadRequest, "auth/register.html", gin.H{
			"Title": "Register",
			"Error": "Passwords do not match",
		})
		return
	}

	user, err := services.RegisterUser(services.RegisterInput{
		Username:  c.PostForm("username"),
		Email:     c.PostForm("email"),
		Password:  password,
		FirstName: c.PostForm("first_name"),
		LastName:  c.PostForm("last_name"),
		Faculty:   c.PostForm("faculty"),
		Program:   c.PostForm("program"),
		Year:      c.PostForm("year"),
	})
	if err != nil {
		Render(c, http.StatusBadRequest, "auth/register.html", gin.H{
			"Title": "Register",
			"Error": err.Error(),
		})
		return
	}

	// Auto login after registration
	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	if middleware.CurrentUser(c) != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	Render(c, http.StatusOK, "auth/login.html", gin.H{"Title": "Sign In"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	user, err := services.Authenticate(c.PostForm("username"), c.PostForm("password"))
	if err != nil {
		Render(c, http.StatusUnauthorized, "auth/login.html", gin.H{
			"Title": "Sign In",
			"Error": "Invalid username or password",
		})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/")
}
