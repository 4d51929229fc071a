package delivery

import (
	"net/http"

	authdomain "hongddo-backend/internal/auth/domain"
	"hongddo-backend/internal/daily/usecase"

	"github.com/gin-gonic/gin"
)

type DailyHandler struct {
	dailyUsecase usecase.DailyUsecase
}

func NewDailyHandler(dailyUsecase usecase.DailyUsecase) *DailyHandler {
	return &DailyHandler{
		dailyUsecase: dailyUsecase,
	}
}

type dailyRequest struct {
	Content  string `json:"content" binding:"required"`
	ImageURL string `json:"image_url"`
}

type commentRequest struct {
	Content string `json:"content" binding:"required"`
}

func currentUser(c *gin.Context) *authdomain.User {
	if v, ok := c.Get("user"); ok {
		if user, ok := v.(*authdomain.User); ok {
			return user
		}
	}
	return nil
}

func (h *DailyHandler) Create(c *gin.Context) {
	var req dailyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	daily, err := h.dailyUsecase.CreateDaily(currentUser(c), req.Content, req.ImageURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, daily)
}

func (h *DailyHandler) Update(c *gin.Context) {
	var req dailyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	daily, err := h.dailyUsecase.UpdateDaily(c.Param("id"), currentUser(c), req.Content)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, daily)
}

func (h *DailyHandler) Delete(c *gin.Context) {
	if err := h.dailyUsecase.DeleteDaily(c.Param("id"), currentUser(c)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *DailyHandler) List(c *gin.Context) {
	dailies, err := h.dailyUsecase.ListRecent(20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load dailies"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"dailies": dailies})
}

func (h *DailyHandler) ToggleLike(c *gin.Context) {
	liked, err := h.dailyUsecase.ToggleLike(c.Param("id"), currentUser(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	count, err := h.dailyUsecase.LikeCount(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count likes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"liked": liked, "likes": count})
}

func (h *DailyHandler) AddComment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.dailyUsecase.AddComment(c.Param("id"), currentUser(c), req.Content)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (h *DailyHandler) ListComments(c *gin.Context) {
	comments, err := h.dailyUsecase.ListComments(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load comments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}
