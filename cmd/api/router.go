package api

import (
	"net/http"
	"strings"

	activityDelivery "hongddo-backend/internal/activity/delivery"
	activityUsecase "hongddo-backend/internal/activity/usecase"
	"hongddo-backend/internal/auth/delivery"
	authUsecase "hongddo-backend/internal/auth/usecase"
	commentDelivery "hongddo-backend/internal/comment/delivery"
	commentUsecase "hongddo-backend/internal/comment/usecase"
	dailyDelivery "hongddo-backend/internal/daily/delivery"
	dailyUsecase "hongddo-backend/internal/daily/usecase"
	healthDelivery "hongddo-backend/internal/health/delivery"
	healthUsecase "hongddo-backend/internal/health/usecase"
	notifDelivery "hongddo-backend/internal/notification/delivery"
	notifUsecase "hongddo-backend/internal/notification/usecase"
	wishDelivery "hongddo-backend/internal/wish/delivery"
	wishUsecase "hongddo-backend/internal/wish/usecase"
	"hongddo-backend/pkg/config"
	"hongddo-backend/pkg/sse"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	r *gin.Engine,
	authUc authUsecase.AuthUsecase,
	activityUc activityUsecase.ActivityUsecase,
	pushUc notifUsecase.PushUsecase,
	dailyUc dailyUsecase.DailyUsecase,
	wishUc wishUsecase.WishUsecase,
	commentUc commentUsecase.CommentUsecase,
	healthUc healthUsecase.HealthUsecase,
	sseManager *sse.Manager,
	cfg *config.Config,
) {
	authHandler := delivery.NewAuthHandler(authUc, activityUc)
	activityHandler := activityDelivery.NewActivityHandler(activityUc)
	notificationHandler := notifDelivery.NewNotificationHandler(pushUc)
	dailyHandler := dailyDelivery.NewDailyHandler(dailyUc)
	wishHandler := wishDelivery.NewWishHandler(wishUc)
	commentHandler := commentDelivery.NewCommentHandler(commentUc)
	healthHandler := healthDelivery.NewHealthHandler(healthUc)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// SSE endpoint; topics defaults to all three live feeds
		api.GET("/events", delivery.AuthMiddleware(authUc), func(c *gin.Context) {
			topicsParam := c.DefaultQuery("topics", sse.TopicActivities+","+sse.TopicDailies+","+sse.TopicWishes)
			topics := strings.Split(topicsParam, ",")
			sseManager.ServeHTTP(c, topics)
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", delivery.AuthMiddleware(authUc), authHandler.Me)
			auth.PUT("/profile", delivery.AuthMiddleware(authUc), authHandler.UpdateProfile)
		}

		// Family member routes (protected)
		users := api.Group("/users")
		users.Use(delivery.AuthMiddleware(authUc))
		{
			users.GET("", authHandler.ListMembers)
		}

		// Activity feed routes (protected)
		activities := api.Group("/activities")
		activities.Use(delivery.AuthMiddleware(authUc))
		{
			activities.GET("", activityHandler.List)
			activities.GET("/unread", activityHandler.ListUnread)
			activities.GET("/unread/count", activityHandler.UnreadCount)
			activities.PATCH("/:id/read", activityHandler.MarkAsRead)
			activities.PATCH("/read-all", activityHandler.MarkAllAsRead)
			activities.DELETE("/:id", activityHandler.Delete)
			activities.DELETE("", activityHandler.DeleteAll)
		}

		// Push token routes (protected)
		notifications := api.Group("/notifications")
		notifications.Use(delivery.AuthMiddleware(authUc))
		{
			notifications.POST("/token", notificationHandler.RegisterToken)
			notifications.DELETE("/token/:token", notificationHandler.UnregisterToken)
			notifications.GET("/token/count", notificationHandler.TokenCount)
			notifications.POST("/test", notificationHandler.TestNotification)
		}

		// Daily feed routes (protected)
		dailies := api.Group("/dailies")
		dailies.Use(delivery.AuthMiddleware(authUc))
		{
			dailies.GET("", dailyHandler.List)
			dailies.POST("", dailyHandler.Create)
			dailies.PUT("/:id", dailyHandler.Update)
			dailies.DELETE("/:id", dailyHandler.Delete)
			dailies.POST("/:id/like", dailyHandler.ToggleLike)
			dailies.GET("/:id/comments", dailyHandler.ListComments)
			dailies.POST("/:id/comments", dailyHandler.AddComment)
		}

		// Wish list routes (protected)
		wishes := api.Group("/wishes")
		wishes.Use(delivery.AuthMiddleware(authUc))
		{
			wishes.GET("", wishHandler.List)
			wishes.POST("", wishHandler.Create)
			wishes.PUT("/:id", wishHandler.Update)
			wishes.PATCH("/:id/complete", wishHandler.ToggleCompletion)
			wishes.DELETE("/:id", wishHandler.Delete)
			wishes.GET("/:id/schedules", wishHandler.ListSchedules)
			wishes.POST("/:id/schedules", wishHandler.AddSchedule)
		}

		// Home board comment routes (protected)
		comments := api.Group("/comments")
		comments.Use(delivery.AuthMiddleware(authUc))
		{
			comments.GET("", commentHandler.List)
			comments.POST("", commentHandler.Create)
			comments.GET("/:id/replies", commentHandler.ListReplies)
			comments.DELETE("/:id", commentHandler.Delete)
		}

		// Medicine and meal routes (protected)
		care := api.Group("/care")
		care.Use(delivery.AuthMiddleware(authUc))
		{
			care.POST("/medicine", healthHandler.TakeMedicine)
			care.GET("/medicine", healthHandler.MedicineStatus)
			care.POST("/meals", healthHandler.UploadMeal)
			care.GET("/meals", healthHandler.MealStatus)
		}
	}
}
