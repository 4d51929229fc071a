package delivery

import (
	"net/http"

	activitydomain "hongddo-backend/internal/activity/domain"
	activityusecase "hongddo-backend/internal/activity/usecase"
	authdomain "hongddo-backend/internal/auth/domain"
	authdto "hongddo-backend/internal/auth/dto"
	"hongddo-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	notifier    activityusecase.Notifier
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, notifier activityusecase.Notifier) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		notifier:    notifier,
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

func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authUsecase.Register(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authUsecase.Login(&req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, currentUser(c))
}

// ListMembers returns every household member, for the member picker UI.
func (h *AuthHandler) ListMembers(c *gin.Context) {
	users, err := h.authUsecase.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list members"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"members": users})
}

// UpdateProfile changes the caller's profile and fans the change out to the
// rest of the household.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	user := currentUser(c)

	var req authdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.authUsecase.UpdateProfile(user.ID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.notifier.Notify(updated.ID, updated.DisplayName, activitydomain.ActivityProfileUpdated,
		updated.DisplayName+"님이 프로필을 업데이트했습니다", "")

	c.JSON(http.StatusOK, updated)
}
