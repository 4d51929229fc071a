package delivery

import (
	"net/http"
	"time"

	authdomain "hongddo-backend/internal/auth/domain"
	wishdomain "hongddo-backend/internal/wish/domain"
	"hongddo-backend/internal/wish/usecase"

	"github.com/gin-gonic/gin"
)

type WishHandler struct {
	wishUsecase usecase.WishUsecase
}

func NewWishHandler(wishUsecase usecase.WishUsecase) *WishHandler {
	return &WishHandler{
		wishUsecase: wishUsecase,
	}
}

type wishRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type scheduleRequest struct {
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
	Memo        string    `json:"memo"`
}

func currentUser(c *gin.Context) *authdomain.User {
	if v, ok := c.Get("user"); ok {
		if user, ok := v.(*authdomain.User); ok {
			return user
		}
	}
	return nil
}

func (h *WishHandler) Create(c *gin.Context) {
	var req wishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	wish, err := h.wishUsecase.CreateWish(currentUser(c), req.Title, req.Description, wishdomain.WishCategory(req.Category))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, wish)
}

func (h *WishHandler) Update(c *gin.Context) {
	var req wishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	wish, err := h.wishUsecase.UpdateWish(c.Param("id"), currentUser(c), req.Title, req.Description, wishdomain.WishCategory(req.Category))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, wish)
}

func (h *WishHandler) ToggleCompletion(c *gin.Context) {
	wish, err := h.wishUsecase.ToggleCompletion(c.Param("id"), currentUser(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, wish)
}

func (h *WishHandler) Delete(c *gin.Context) {
	if err := h.wishUsecase.DeleteWish(c.Param("id"), currentUser(c)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *WishHandler) List(c *gin.Context) {
	wishes, err := h.wishUsecase.ListWishes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load wishes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"wishes": wishes})
}

func (h *WishHandler) AddSchedule(c *gin.Context) {
	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	schedule, err := h.wishUsecase.AddSchedule(c.Param("id"), currentUser(c), req.ScheduledAt, req.Memo)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, schedule)
}

func (h *WishHandler) ListSchedules(c *gin.Context) {
	schedules, err := h.wishUsecase.ListSchedules(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load schedules"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedules": schedules})
}
