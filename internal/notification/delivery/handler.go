package delivery

import (
	"net/http"

	authdomain "hongddo-backend/internal/auth/domain"
	"hongddo-backend/internal/notification/usecase"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	pushUsecase usecase.PushUsecase
}

func NewNotificationHandler(pushUsecase usecase.PushUsecase) *NotificationHandler {
	return &NotificationHandler{
		pushUsecase: pushUsecase,
	}
}

type registerTokenRequest struct {
	Token      string `json:"token" binding:"required"`
	Platform   string `json:"platform"`
	DeviceInfo string `json:"deviceInfo"`
}

func currentUser(c *gin.Context) *authdomain.User {
	if v, ok := c.Get("user"); ok {
		if user, ok := v.(*authdomain.User); ok {
			return user
		}
	}
	return nil
}

// RegisterToken stores the caller's push token, always keyed by the
// authenticated identity.
func (h *NotificationHandler) RegisterToken(c *gin.Context) {
	user := currentUser(c)

	var req registerTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "token is required"})
		return
	}

	if err := h.pushUsecase.RegisterToken(user.ID, req.Token, req.Platform, req.DeviceInfo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to register token: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "push token registered"})
}

func (h *NotificationHandler) UnregisterToken(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "token is required"})
		return
	}

	if err := h.pushUsecase.UnregisterToken(token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to unregister token: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "push token removed"})
}

// TokenCount reports how many tokens the caller has registered (debugging).
func (h *NotificationHandler) TokenCount(c *gin.Context) {
	user := currentUser(c)

	count, err := h.pushUsecase.TokenCount(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to count tokens"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": count})
}

// TestNotification sends a push to the caller's own device.
func (h *NotificationHandler) TestNotification(c *gin.Context) {
	user := currentUser(c)

	err := h.pushUsecase.Send(user.ID, "테스트 알림", "푸시 알림이 정상적으로 작동합니다!", "/medicine", map[string]string{"type": "test"})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to send test notification"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "test notification sent"})
}
