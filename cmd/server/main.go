package main

import (
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"time"

	"campusconnect/internal/db"
	"campusconnect/internal/middleware"
	"campusconnect/internal/router"
	"campusconnect/internal/utils"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading env vars from system")
	}

	// Initialize Database
	db.Init()

	// Initialize Gin
	r := gin.Default()

	// Setup Sessions
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "secret_key_change_me"
	}
	store := cookie.NewStore([]byte(secret))
	r.Use(sessions.Sessions("campusconnect_session", store))

	// Load Templates using Multitemplate to avoid collision and allow handler names
	r.HTMLRender = loadTemplates("./web/templates")

	// Static Assets
	r.Static("/static", "./web/static")

	// Middleware
	r.Use(middleware.LoadUser())

	// Routes
	router.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("CampusConnect server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

func loadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layouts, err := filepath.Glob(templatesDir + "/layouts/*.html")
	if err != nil {
		panic(err)
	}

	includes, err := filepath.Glob(templatesDir + "/includes/*.html")
	if err != nil {
		panic(err)
	}

	// Helper to assemble files
	assemble := func(view string) []string {
		files := make([]string, 0)
		files = append(files, layouts...)
		files = append(files, includes...)
		files = append(files, view)
		return files
	}

	// FuncMap
	funcMap := template.FuncMap{
		"dict": func(values ...interface{}) (map[string]interface{}, error) {
			if len(values)%2 != 0 {
				return nil, fmt.Errorf("invalid dict call")
			}
			dict := make(map[string]interface{}, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				key, ok := values[i].(string)
				if !ok {
					return nil, fmt.Errorf("dict keys must be strings")
				}
				dict[key] = values[i+1]
			}
			return dict, nil
		},
		"add": func(a, b int) int {
			return a + b
		},
		"sub": func(a, b int) int {
			return a - b
		},
		"timeAgo": func(t interface{}) string {
			if v, ok := t.(time.Time); ok {
				return utils.TimeAgo(v)
			}
			return ""
		},
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
		"formatDate": func(t time.Time) string {
			return t.Format("Jan 2, 2006")
		},
		"formatDateTime": func(t time.Time) string {
			return t.Format("Jan 2, 2006 15:04")
		},
		"title": func(s string) string {
			if s == "" {
				return s
			}
			r := []rune(s)
			if r[0] >= 'a' && r[0] <= 'z' {
				r[0] -= 32
			}
			return string(r)
		},
	}

	// Manual registration to ensure keys match handler expectation
	// Auth
	r.AddFromFilesFuncs("auth/login.html", funcMap, assemble(templatesDir+"/views/auth/login.html")...)
	r.AddFromFilesFuncs("auth/register.html", funcMap, assemble(templatesDir+"/views/auth/register.html")...)

	// Main
	r.AddFromFilesFuncs("main/home.html", funcMap, assemble(templatesDir+"/views/main/home.html")...)
	r.AddFromFilesFuncs("main/news.html", funcMap, assemble(templatesDir+"/views/main/news.html")...)
	r.AddFromFilesFuncs("main/create_post.html", funcMap, assemble(templatesDir+"/views/main/create_post.html")...)
	r.AddFromFilesFuncs("main/view_post.html", funcMap, assemble(templatesDir+"/views/main/view_post.html")...)
	r.AddFromFilesFuncs("main/notifications.html", funcMap, assemble(templatesDir+"/views/main/notifications.html")...)
	r.AddFromFilesFuncs("main/profile.html", funcMap, assemble(templatesDir+"/views/main/profile.html")...)
	r.AddFromFilesFuncs("main/view_profile.html", funcMap, assemble(templatesDir+"/views/main/view_profile.html")...)
	r.AddFromFilesFuncs("main/edit_profile.html", funcMap, assemble(templatesDir+"/views/main/edit_profile.html")...)

	// Forum
	r.AddFromFilesFuncs("forum/home.html", funcMap, assemble(templatesDir+"/views/forum/home.html")...)
	r.AddFromFilesFuncs("forum/categories.html", funcMap, assemble(templatesDir+"/views/forum/categories.html")...)
	r.AddFromFilesFuncs("forum/search.html", funcMap, assemble(templatesDir+"/views/forum/search.html")...)

	// Events
	r.AddFromFilesFuncs("events/home.html", funcMap, assemble(templatesDir+"/views/events/home.html")...)
	r.AddFromFilesFuncs("events/create.html", funcMap, assemble(templatesDir+"/views/events/create.html")...)
	r.AddFromFilesFuncs("events/my_events.html", funcMap, assemble(templatesDir+"/views/events/my_events.html")...)
	r.AddFromFilesFuncs("events/pending.html", funcMap, assemble(templatesDir+"/views/events/pending.html")...)
	r.AddFromFilesFuncs("events/view.html", funcMap, assemble(templatesDir+"/views/events/view.html")...)

	// Error
	r.AddFromFilesFuncs("error.html", funcMap, assemble(templatesDir+"/views/error.html")...)

	return r
}
