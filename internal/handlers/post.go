package handlers

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"campusconnect/internal/db"
	"campusconnect/internal/middleware"
	"campusconnect/internal/models"
	"campusconnect/internal/services"
	"campusconnect/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PostHandler struct{}

func NewPostHandler() *PostHandler {
	return &PostHandler{}
}

// fillPostCounts 批量填充帖子的评论数和反应数
func fillPostCounts(posts []models.Post) {
	if len(posts) == 0 {
		return
	}

	postIDs := make([]uint, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}

	type countResult struct {
		PostID uint
		Count  int
	}

	var commentCounts []countResult
	db.DB.Model(&models.Comment{}).
		Select("post_id, COUNT(*) as count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&commentCounts)

	var reactionCounts []countResult
	db.DB.Model(&models.Reaction{}).
		Select("post_id, COUNT(*) as count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&reactionCounts)

	comments := make(map[uint]int, len(commentCounts))
	for _, r := range commentCounts {
		comments[r.PostID] = r.Count
	}
	reactions := make(map[uint]int, len(reactionCounts))
	for _, r := range reactionCounts {
		reactions[r.PostID] = r.Count
	}
	for i := range posts {
		posts[i].CommentCount = comments[posts[i].ID]
		posts[i].ReactionCount = reactions[posts[i].ID]
	}
}

// Home - 首页：最新帖子 + 站点统计 + 即将举行的活动
func (h *PostHandler) Home(c *gin.Context) {
	var posts []models.Post
	db.DB.Preload("User").
		Order("created_at DESC").
		Limit(5).
		Find(&posts)
	fillPostCounts(posts)

	var postCount, userCount, commentCount, eventCount int64
	db.DB.Model(&models.Post{}).Count(&postCount)
	db.DB.Model(&models.User{}).Count(&userCount)
	db.DB.Model(&models.Comment{}).Count(&commentCount)
	db.DB.Model(&models.Event{}).Where("status = ?", models.EventApproved).Count(&eventCount)

	upcoming, _ := services.ListEvents(services.EventFilter{
		Status:    models.EventApproved,
		DateRange: services.DateUpcoming,
		Limit:     5,
	})

	Render(c, http.StatusOK, "main/home.html", gin.H{
		"Title":        "Campus Connect",
		"Posts":        posts,
		"Events":       upcoming,
		"PostCount":    postCount,
		"UserCount":    userCount,
		"EventCount":   eventCount,
		"CommentCount": commentCount,
	})
}

// News - 校园新闻列表（分页）
func (h *PostHandler) News(c *gin.Context) {
	page := 1
	if p := c.Query("page"); p != "" {
		if pageNum, err := strconv.Atoi(p); err == nil && pageNum > 0 {
			page = pageNum
		}
	}
	perPage := 10
	offset := (page - 1) * perPage

	var total int64
	db.DB.Model(&models.Post{}).Count(&total)
	totalPages := int(math.Ceil(float64(total) / float64(perPage)))
	if totalPages == 0 {
		totalPages = 1
	}

	var posts []models.Post
	db.DB.Preload("User").
		Order("created_at DESC").
		Limit(perPage).
		Offset(offset).
		Find(&posts)
	fillPostCounts(posts)

	Render(c, http.StatusOK, "main/news.html", gin.H{
		"Title":       "Campus News",
		"Posts":       posts,
		"CurrentPage": page,
		"TotalPages":  totalPages,
	})
}

func (h *PostHandler) ShowCreate(c *gin.Context) {
	Render(c, http.StatusOK, "main/create_post.html", gin.H{
		"Title":      "Create Post",
		"Categories": models.PostCategories,
	})
}

func (h *PostHandler) Create(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	title := c.PostForm("title")
	content := c.PostForm("content")
	category := c.PostForm("category")

	errMsg := ""
	switch {
	case title == "":
		errMsg = "Title is required"
	case content == "":
		errMsg = "Content is required"
	case category == "":
		errMsg = "Category is required"
	}
	if errMsg != "" {
		Render(c, http.StatusBadRequest, "main/create_post.html", gin.H{
			"Title":      "Create Post",
			"Categories": models.PostCategories,
			"Error":      errMsg,
		})
		return
	}

	post := models.Post{
		Pid:      utils.RandStringBytesMaskImpr(8),
		UserID:   user.ID,
		Title:    title,
		Content:  content,
		Category: category,
	}
	if err := db.DB.Create(&post).Error; err != nil {
		Render(c, http.StatusInternalServerError, "main/create_post.html", gin.H{
			"Title":      "Create Post",
			"Categories": models.PostCategories,
			"Error":      "Failed to create post",
		})
		return
	}

	c.Redirect(http.StatusFound, "/post/"+post.Pid)
}

// Detail - 帖子详情页：正文 + 评论 + 反应汇总
func (h *PostHandler) Detail(c *gin.Context) {
	pid := c.Param("pid")

	var post models.Post
	if err := db.DB.Preload("User").Where("pid = ?", pid).First(&post).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	var comments []models.Comment
	db.DB.Preload("User").
		Where("post_id = ?", post.ID).
		Order("created_at ASC").
		Find(&comments)

	userID := uint(0)
	if user := middleware.CurrentUser(c); user != nil {
		userID = user.ID
	}
	counts, userReaction, err := services.ReactionSummary(post.ID, userID)
	if err != nil {
		counts = map[string]int{}
	}

	Render(c, http.StatusOK, "main/view_post.html", gin.H{
		"Title":          post.Title,
		"Post":           post,
		"PostContent":    utils.RenderMarkdown(post.Content),
		"Comments":       comments,
		"ReactionCounts": counts,
		"ReactionKinds":  models.ReactionKinds,
		"UserReaction":   userReaction,
		"PublishedTime":  post.CreatedAt.Format(time.RFC3339),
	})
}

// Delete - 删除帖子（作者或管理员，AJAX）
func (h *PostHandler) Delete(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	pid := c.Param("pid")

	var post models.Post
	if err := db.DB.Where("pid = ?", pid).First(&post).Error; err != nil {
		jsonError(c, services.ErrNotFound)
		return
	}
	if post.UserID != user.ID && !user.IsAdmin() {
		jsonError(c, services.ErrForbidden)
		return
	}

	// Comments and reactions go with the post
	if err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Reaction{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
