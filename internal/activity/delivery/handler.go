package delivery

import (
	"net/http"

	"hongddo-backend/internal/activity/usecase"
	authdomain "hongddo-backend/internal/auth/domain"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	activityUsecase usecase.ActivityUsecase
}

func NewActivityHandler(activityUsecase usecase.ActivityUsecase) *ActivityHandler {
	return &ActivityHandler{
		activityUsecase: activityUsecase,
	}
}

func currentUser(c *gin.Context) *authdomain.User {
	if v, ok := c.Get("user"); ok {
		if user, ok := v.(*authdomain.User); ok {
			return user
		}
	}
	return nil
}

// List returns the recipient's most recent activities, newest first.
func (h *ActivityHandler) List(c *gin.Context) {
	user := currentUser(c)
	activities, err := h.activityUsecase.ListForUser(user.ID, 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load activities"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"activities": activities})
}

// ListUnread is the same listing: with read-is-delete, everything stored is
// unread.
func (h *ActivityHandler) ListUnread(c *gin.Context) {
	h.List(c)
}

func (h *ActivityHandler) UnreadCount(c *gin.Context) {
	user := currentUser(c)
	count, err := h.activityUsecase.UnreadCount(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count activities"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *ActivityHandler) MarkAsRead(c *gin.Context) {
	user := currentUser(c)
	if err := h.activityUsecase.MarkAsRead(user.ID, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to mark activity as read"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *ActivityHandler) MarkAllAsRead(c *gin.Context) {
	user := currentUser(c)
	count, err := h.activityUsecase.MarkAllAsRead(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to mark activities as read"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": count})
}

func (h *ActivityHandler) Delete(c *gin.Context) {
	user := currentUser(c)
	if err := h.activityUsecase.DeleteActivity(user.ID, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete activity"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *ActivityHandler) DeleteAll(c *gin.Context) {
	user := currentUser(c)
	count, err := h.activityUsecase.DeleteAllActivities(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete activities"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": count})
}
