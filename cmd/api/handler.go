package api

import (
	activityUsecase "hongddo-backend/internal/activity/usecase"
	authUsecase "hongddo-backend/internal/auth/usecase"
	commentUsecase "hongddo-backend/internal/comment/usecase"
	dailyUsecase "hongddo-backend/internal/daily/usecase"
	healthUsecase "hongddo-backend/internal/health/usecase"
	notifUsecase "hongddo-backend/internal/notification/usecase"
	wishUsecase "hongddo-backend/internal/wish/usecase"
	"hongddo-backend/pkg/config"
	"hongddo-backend/pkg/sse"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase     authUsecase.AuthUsecase
	activityUsecase activityUsecase.ActivityUsecase
	pushUsecase     notifUsecase.PushUsecase
	dailyUsecase    dailyUsecase.DailyUsecase
	wishUsecase     wishUsecase.WishUsecase
	commentUsecase  commentUsecase.CommentUsecase
	healthUsecase   healthUsecase.HealthUsecase
	sseManager      *sse.Manager
	config          *config.Config
}

func NewHandler(
	authUc authUsecase.AuthUsecase,
	activityUc activityUsecase.ActivityUsecase,
	pushUc notifUsecase.PushUsecase,
	dailyUc dailyUsecase.DailyUsecase,
	wishUc wishUsecase.WishUsecase,
	commentUc commentUsecase.CommentUsecase,
	healthUc healthUsecase.HealthUsecase,
	sseManager *sse.Manager,
	cfg *config.Config,
) *Handler {
	return &Handler{
		authUsecase:     authUc,
		activityUsecase: activityUc,
		pushUsecase:     pushUc,
		dailyUsecase:    dailyUc,
		wishUsecase:     wishUc,
		commentUsecase:  commentUc,
		healthUsecase:   healthUc,
		sseManager:      sseManager,
		config:          cfg,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.activityUsecase, h.pushUsecase, h.dailyUsecase, h.wishUsecase, h.commentUsecase, h.healthUsecase, h.sseManager, h.config)

	return r.Run(addr)
}
