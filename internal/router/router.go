package router

import (
	"campusconnect/internal/handlers"
	"campusconnect/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes builds the full routing table once at startup. Every
// (verb, path) pair maps to exactly one handler method.
func RegisterRoutes(r *gin.Engine) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	postHandler := handlers.NewPostHandler()
	commentHandler := handlers.NewCommentHandler()
	reactionHandler := handlers.NewReactionHandler()
	forumHandler := handlers.NewForumHandler()
	eventHandler := handlers.NewEventHandler()
	notificationHandler := handlers.NewNotificationHandler()
	userHandler := handlers.NewUserHandler()

	// Public routes
	r.GET("/", postHandler.Home)
	r.GET("/news", postHandler.News)
	r.GET("/post/:pid", postHandler.Detail)
	r.GET("/post/:pid/reactions", reactionHandler.GetReactions)
	r.GET("/profile/:username", userHandler.ViewProfile)

	r.GET("/signup", authHandler.ShowRegister)
	r.POST("/signup", authHandler.Register)
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// Forum
	forum := r.Group("/forum")
	{
		forum.GET("", forumHandler.Home)
		forum.GET("/categories", forumHandler.Categories)
		forum.GET("/search", forumHandler.Search)
	}

	// Events (listing and detail are public, the rest requires login)
	events := r.Group("/events")
	{
		events.GET("", eventHandler.Home)
		events.GET("/calendar", eventHandler.Calendar)

		protected := events.Group("")
		protected.Use(middleware.AuthRequired())
		{
			protected.GET("/create", eventHandler.ShowCreate)
			protected.POST("/create", eventHandler.Create)
			protected.GET("/my", eventHandler.MyEvents)
			protected.GET("/pending", eventHandler.Pending)
			protected.POST("/:eid/approve", eventHandler.Approve)
			protected.POST("/:eid/reject", eventHandler.Reject)
			protected.POST("/:eid/delete", eventHandler.Delete)
		}

		events.GET("/:eid", eventHandler.Detail)
	}

	// Protected routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/create-post", postHandler.ShowCreate)
		authorized.POST("/create-post", postHandler.Create)
		authorized.POST("/post/:pid/delete", postHandler.Delete)
		authorized.POST("/post/:pid/comment", commentHandler.Create)
		authorized.POST("/comment/:id/delete", commentHandler.Delete)
		authorized.POST("/post/:pid/react/:kind", reactionHandler.React)

		authorized.GET("/notifications", notificationHandler.List)
		authorized.GET("/notifications/count", notificationHandler.Count)
		authorized.GET("/notifications/preview", notificationHandler.Preview)
		authorized.POST("/notifications/:id/read", notificationHandler.Read)
		authorized.POST("/notifications/clear", notificationHandler.Clear)

		authorized.GET("/profile", userHandler.Profile)
		authorized.GET("/profile/edit", userHandler.ShowEditProfile)
		authorized.POST("/profile/edit", userHandler.UpdateProfile)
		authorized.POST("/profile/delete", userHandler.DeleteAccount)
	}
}
