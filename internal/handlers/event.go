package handlers

import (
	"net/http"
	"time"

	"campusconnect/internal/db"
	"campusconnect/internal/middleware"
	"campusconnect/internal/models"
	"campusconnect/internal/services"
	"campusconnect/internal/utils"

	"github.com/gin-gonic/gin"
)

type EventHandler struct{}

func NewEventHandler() *EventHandler {
	return &EventHandler{}
}

// Home - 活动列表页，仅展示已批准的活动，支持类型/分类/日期筛选
func (h *EventHandler) Home(c *gin.Context) {
	filterType := c.DefaultQuery("type", "all")
	filterCategory := c.DefaultQuery("category", "all")
	filterDate := c.DefaultQuery("date", services.DateUpcoming)

	events, err := services.ListEvents(services.EventFilter{
		Status:    models.EventApproved,
		EventType: filterType,
		Category:  filterCategory,
		DateRange: filterDate,
	})
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to load events")
		return
	}

	stats, _ := services.CountEvents()

	Render(c, http.StatusOK, "events/home.html", gin.H{
		"Title":           "Campus Events",
		"Events":          events,
		"FilterType":      filterType,
		"FilterCategory":  filterCategory,
		"FilterDate":      filterDate,
		"EventTypes":      models.EventTypes,
		"EventCategories": models.EventCategories,
		"UpcomingCount":   stats.Upcoming,
		"ApprovedCount":   stats.Approved,
		"PendingCount":    stats.Pending,
	})
}

func (h *EventHandler) ShowCreate(c *gin.Context) {
	Render(c, http.StatusOK, "events/create.html", gin.H{
		"Title":           "Submit Event",
		"EventTypes":      models.EventTypes,
		"EventCategories": models.EventCategories,
	})
}

// Create - 提交活动，初始状态为 pending
func (h *EventHandler) Create(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	start, err := parseEventTime(c.PostForm("start_date"), c.PostForm("start_time"))
	if err != nil {
		h.renderCreateError(c, "Invalid date format")
		return
	}

	var end *time.Time
	if endDate := c.PostForm("end_date"); endDate != "" {
		parsed, err := parseEventTime(endDate, c.PostForm("end_time"))
		if err != nil {
			h.renderCreateError(c, "Invalid date format")
			return
		}
		end = &parsed
	}

	_, err = services.SubmitEvent(user, services.EventInput{
		Title:         c.PostForm("title"),
		Description:   c.PostForm("description"),
		EventType:     c.PostForm("event_type"),
		Category:      c.PostForm("category"),
		Venue:         c.PostForm("venue"),
		OrganizerName: c.PostForm("organizer_name"),
		ContactEmail:  c.PostForm("contact_email"),
		ContactPhone:  c.PostForm("contact_phone"),
		Start:         start,
		End:           end,
	})
	if err != nil {
		h.renderCreateError(c, err.Error())
		return
	}

	c.Redirect(http.StatusFound, "/events/my")
}

func (h *EventHandler) renderCreateError(c *gin.Context, message string) {
	Render(c, http.StatusBadRequest, "events/create.html", gin.H{
		"Title":           "Submit Event",
		"EventTypes":      models.EventTypes,
		"EventCategories": models.EventCategories,
		"Error":           message,
	})
}

// parseEventTime combines the separate date and time form fields.
func parseEventTime(date, clock string) (time.Time, error) {
	if clock == "" {
		clock = "00:00"
	}
	return time.ParseInLocation("2006-01-02 15:04", date+" "+clock, time.Local)
}

// MyEvents - 当前用户提交的活动
func (h *EventHandler) MyEvents(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	events, err := services.EventsByUser(user.ID)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to load events")
		return
	}

	Render(c, http.StatusOK, "events/my_events.html", gin.H{
		"Title":  "My Events",
		"Events": events,
	})
}

// Pending - 待审批队列（仅限具备审批权限的用户）
func (h *EventHandler) Pending(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	if !user.CanApproveEvents() {
		RenderError(c, http.StatusForbidden, "You do not have permission to access this page")
		return
	}

	events, err := services.PendingEvents()
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to load events")
		return
	}

	Render(c, http.StatusOK, "events/pending.html", gin.H{
		"Title":  "Pending Events",
		"Events": events,
	})
}

// Detail - 活动详情；非批准状态仅对提交者和审批者可见
func (h *EventHandler) Detail(c *gin.Context) {
	var event models.Event
	if err := db.DB.Preload("User").Preload("ApprovedBy").
		Where("eid = ?", c.Param("eid")).First(&event).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Event not found")
		return
	}

	user := middleware.CurrentUser(c)
	if event.Status != models.EventApproved {
		allowed := user != nil && (user.CanApproveEvents() || event.UserID == user.ID)
		if !allowed {
			RenderError(c, http.StatusNotFound, "This event is not available")
			return
		}
	}

	Render(c, http.StatusOK, "events/view.html", gin.H{
		"Title":       event.Title,
		"Event":       event,
		"Description": utils.RenderMarkdown(event.Description),
	})
}

// Approve - 审批通过（AJAX）
func (h *EventHandler) Approve(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	event, err := h.findEvent(c)
	if err != nil {
		jsonError(c, err)
		return
	}

	if _, err := services.ApproveEvent(event.ID, user); err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Event approved successfully"})
}

// Reject - 审批拒绝，必须附理由（AJAX）
func (h *EventHandler) Reject(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	event, err := h.findEvent(c)
	if err != nil {
		jsonError(c, err)
		return
	}

	var body struct {
		Reason string `json:"reason"`
	}
	// The reason may arrive as JSON (reaction-style widgets) or form field
	if err := c.ShouldBindJSON(&body); err != nil || body.Reason == "" {
		body.Reason = c.PostForm("reason")
	}

	if _, err := services.RejectEvent(event.ID, user, body.Reason); err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Event rejected successfully"})
}

// Delete - 删除活动：提交者本人或具备审批权限者（AJAX）
func (h *EventHandler) Delete(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	event, err := h.findEvent(c)
	if err != nil {
		jsonError(c, err)
		return
	}

	if err := services.DeleteEvent(event.ID, user); err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Event deleted successfully"})
}

func (h *EventHandler) findEvent(c *gin.Context) (*models.Event, error) {
	var event models.Event
	if err := db.DB.Where("eid = ?", c.Param("eid")).First(&event).Error; err != nil {
		return nil, services.ErrNotFound
	}
	return &event, nil
}

// Calendar - 日历视图的 JSON 数据源
func (h *EventHandler) Calendar(c *gin.Context) {
	events, err := services.ListEvents(services.EventFilter{
		Status:    models.EventApproved,
		DateRange: services.DateUpcoming,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load events"})
		return
	}

	calendarEvents := make([]gin.H, 0, len(events))
	for _, event := range events {
		entry := gin.H{
			"id":          event.ID,
			"title":       event.Title,
			"start":       event.StartDate.Format(time.RFC3339),
			"url":         "/events/" + event.Eid,
			"color":       eventColor(event.EventType),
			"description": truncateDescription(event.Description, 100),
		}
		if event.EndDate != nil {
			entry["end"] = event.EndDate.Format(time.RFC3339)
		}
		calendarEvents = append(calendarEvents, entry)
	}
	c.JSON(http.StatusOK, gin.H{"events": calendarEvents})
}

func eventColor(eventType string) string {
	colors := map[string]string{
		"academic":  "#0056b3",
		"sports":    "#28a745",
		"cultural":  "#ffc107",
		"religious": "#17a2b8",
		"social":    "#dc3545",
		"workshop":  "#6f42c1",
		"seminar":   "#20c997",
		"career":    "#fd7e14",
	}
	if color, ok := colors[eventType]; ok {
		return color
	}
	return "#6c757d"
}

func truncateDescription(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
