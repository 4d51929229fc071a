package delivery

import (
	"net/http"
	"time"

	authdomain "hongddo-backend/internal/auth/domain"
	healthdomain "hongddo-backend/internal/health/domain"
	"hongddo-backend/internal/health/usecase"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthUsecase usecase.HealthUsecase
}

func NewHealthHandler(healthUsecase usecase.HealthUsecase) *HealthHandler {
	return &HealthHandler{
		healthUsecase: healthUsecase,
	}
}

type medicineRequest struct {
	Date string `json:"date"`
	Slot string `json:"slot" binding:"required"`
}

type mealRequest struct {
	Date     string `json:"date"`
	MealType string `json:"meal_type" binding:"required"`
	ImageURL string `json:"image_url"`
}

func currentUser(c *gin.Context) *authdomain.User {
	if v, ok := c.Get("user"); ok {
		if user, ok := v.(*authdomain.User); ok {
			return user
		}
	}
	return nil
}

func today() string {
	return time.Now().Format("2006-01-02")
}

func (h *HealthHandler) TakeMedicine(c *gin.Context) {
	var req medicineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Date == "" {
		req.Date = today()
	}

	record, err := h.healthUsecase.TakeMedicine(currentUser(c), req.Date, healthdomain.MedicineSlot(req.Slot))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *HealthHandler) MedicineStatus(c *gin.Context) {
	date := c.DefaultQuery("date", today())
	userID := c.DefaultQuery("userId", currentUser(c).ID)

	records, err := h.healthUsecase.MedicineStatus(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load medicine records"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}

func (h *HealthHandler) UploadMeal(c *gin.Context) {
	var req mealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Date == "" {
		req.Date = today()
	}

	check, err := h.healthUsecase.UploadMeal(currentUser(c), req.Date, healthdomain.MealType(req.MealType), req.ImageURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, check)
}

func (h *HealthHandler) MealStatus(c *gin.Context) {
	date := c.DefaultQuery("date", today())
	userID := c.DefaultQuery("userId", currentUser(c).ID)

	checks, err := h.healthUsecase.MealStatus(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load meal checks"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"checks": checks})
}
