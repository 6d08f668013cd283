package handlers

import (
	"math"
	"net/http"
	"strconv"

	"campusconnect/internal/db"
	"campusconnect/internal/models"

	"github.com/gin-gonic/gin"
)

type ForumHandler struct{}

func NewForumHandler() *ForumHandler {
	return &ForumHandler{}
}

// Home - 论坛首页，按分类筛选 + 分页
func (h *ForumHandler) Home(c *gin.Context) {
	category := c.DefaultQuery("category", "all")
	page := 1
	if p := c.Query("page"); p != "" {
		if pageNum, err := strconv.Atoi(p); err == nil && pageNum > 0 {
			page = pageNum
		}
	}
	perPage := 10
	offset := (page - 1) * perPage

	query := db.DB.Model(&models.Post{})
	if category != "all" {
		query = query.Where("category = ?", category)
	}

	var total int64
	query.Count(&total)
	totalPages := int(math.Ceil(float64(total) / float64(perPage)))
	if totalPages == 0 {
		totalPages = 1
	}

	var posts []models.Post
	query.Preload("User").
		Order("created_at DESC").
		Limit(perPage).
		Offset(offset).
		Find(&posts)
	fillPostCounts(posts)

	Render(c, http.StatusOK, "forum/home.html", gin.H{
		"Title":       "Forum",
		"Posts":       posts,
		"Category":    category,
		"Categories":  models.PostCategories,
		"CurrentPage": page,
		"TotalPages":  totalPages,
	})
}

// Categories - 分类总览，每个分类附帖子数
func (h *ForumHandler) Categories(c *gin.Context) {
	type categoryCount struct {
		Category string
		Count    int64
	}
	var counts []categoryCount
	db.DB.Model(&models.Post{}).
		Select("category, COUNT(*) as count").
		Where("category <> ''").
		Group("category").
		Order("count DESC").
		Scan(&counts)

	categories := make([]string, 0, len(counts))
	countMap := make(map[string]int64, len(counts))
	for _, cc := range counts {
		categories = append(categories, cc.Category)
		countMap[cc.Category] = cc.Count
	}

	Render(c, http.StatusOK, "forum/categories.html", gin.H{
		"Title":          "Categories",
		"Categories":     categories,
		"CategoryCounts": countMap,
	})
}

// Search - 标题/正文模糊搜索 + 分页
func (h *ForumHandler) Search(c *gin.Context) {
	query := c.Query("q")
	page := 1
	if p := c.Query("page"); p != "" {
		if pageNum, err := strconv.Atoi(p); err == nil && pageNum > 0 {
			page = pageNum
		}
	}
	perPage := 10
	offset := (page - 1) * perPage

	posts := []models.Post{}
	var total int64
	base := db.DB.Model(&models.Post{})
	if query != "" {
		pattern := "%" + query + "%"
		base = base.Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)
	}
	base.Count(&total)
	totalPages := int(math.Ceil(float64(total) / float64(perPage)))
	if totalPages == 0 {
		totalPages = 1
	}

	base.Preload("User").
		Order("created_at DESC").
		Limit(perPage).
		Offset(offset).
		Find(&posts)
	fillPostCounts(posts)

	Render(c, http.StatusOK, "forum/search.html", gin.H{
		"Title":       "Search",
		"Posts":       posts,
		"Query":       query,
		"CurrentPage": page,
		"TotalPages":  totalPages,
	})
}
