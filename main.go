package main

import (
	"context"
	"log"

	api "hongddo-backend/cmd/api"
	activitydomain "hongddo-backend/internal/activity/domain"
	activityRepo "hongddo-backend/internal/activity/repository"
	activityUsecase "hongddo-backend/internal/activity/usecase"
	authdomain "hongddo-backend/internal/auth/domain"
	authRepo "hongddo-backend/internal/auth/repository"
	authUsecase "hongddo-backend/internal/auth/usecase"
	commentdomain "hongddo-backend/internal/comment/domain"
	commentRepo "hongddo-backend/internal/comment/repository"
	commentUsecase "hongddo-backend/internal/comment/usecase"
	dailydomain "hongddo-backend/internal/daily/domain"
	dailyRepo "hongddo-backend/internal/daily/repository"
	dailyUsecase "hongddo-backend/internal/daily/usecase"
	healthdomain "hongddo-backend/internal/health/domain"
	healthRepo "hongddo-backend/internal/health/repository"
	healthUsecase "hongddo-backend/internal/health/usecase"
	notifdomain "hongddo-backend/internal/notification/domain"
	notifRepo "hongddo-backend/internal/notification/repository"
	notifUsecase "hongddo-backend/internal/notification/usecase"
	wishdomain "hongddo-backend/internal/wish/domain"
	wishRepo "hongddo-backend/internal/wish/repository"
	wishUsecase "hongddo-backend/internal/wish/usecase"
	"hongddo-backend/pkg/config"
	"hongddo-backend/pkg/database"
	"hongddo-backend/pkg/fcm"
	"hongddo-backend/pkg/sse"
)

// householdResolver fans out to every registered member except the actor.
type householdResolver struct {
	userRepo authRepo.UserRepository
}

func (r *householdResolver) Recipients(actorID string) ([]string, error) {
	users, err := r.userRepo.FindAll()
	if err != nil {
		return nil, err
	}
	recipients := make([]string, 0, len(users))
	for _, u := range users {
		if u.ID == actorID {
			continue
		}
		recipients = append(recipients, u.ID)
	}
	return recipients, nil
}

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&authdomain.User{},
		&activitydomain.Activity{},
		&notifdomain.DeviceToken{},
		&dailydomain.Daily{},
		&dailydomain.DailyComment{},
		&dailydomain.DailyLike{},
		&wishdomain.Wish{},
		&wishdomain.WishSchedule{},
		&commentdomain.Comment{},
		&healthdomain.MedicineRecord{},
		&healthdomain.MealCheck{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	activityRepository := activityRepo.NewActivityRepository(db)
	tokenRepository := notifRepo.NewDeviceTokenRepository(db)
	dailyRepository := dailyRepo.NewDailyRepository(db)
	wishRepository := wishRepo.NewWishRepository(db)
	commentRepository := commentRepo.NewCommentRepository(db)
	healthRepository := healthRepo.NewHealthRepository(db)

	// Initialize SSE Manager
	sseManager := sse.NewManager()
	go sseManager.Run()

	// Initialize FCM client (optional, push delivery works without it)
	var sender notifUsecase.Sender
	if cfg.FirebaseCredentials != "" {
		fcmClient, err := fcm.NewClient(cfg.FirebaseCredentials)
		if err != nil {
			log.Printf("[WARN] Failed to initialize FCM client (push notifications disabled): %v", err)
		} else {
			sender = fcmClient
			log.Printf("[FCM] client initialized")
		}
	} else {
		log.Printf("[WARN] No Firebase credentials configured, push notifications disabled")
	}

	// Initialize use cases (dependency injection)
	pushUsecaseInstance := notifUsecase.NewPushUsecase(tokenRepository, sender)
	activityUsecaseInstance := activityUsecase.NewActivityUsecase(
		activityRepository,
		&householdResolver{userRepo: userRepository},
		sseManager,
		pushUsecaseInstance,
	)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, cfg)
	dailyUsecaseInstance := dailyUsecase.NewDailyUsecase(dailyRepository, activityUsecaseInstance, sseManager)
	wishUsecaseInstance := wishUsecase.NewWishUsecase(wishRepository, activityUsecaseInstance, sseManager)
	commentUsecaseInstance := commentUsecase.NewCommentUsecase(commentRepository, activityUsecaseInstance)
	healthUsecaseInstance := healthUsecase.NewHealthUsecase(healthRepository, activityUsecaseInstance)

	// Evict push tokens that have gone unused past the retention window
	pushUsecaseInstance.StartRetentionSweeper(context.Background(), cfg.SweepInterval, cfg.TokenRetention)

	// Initialize HTTP handler
	handler := api.NewHandler(
		authUsecaseInstance,
		activityUsecaseInstance,
		pushUsecaseInstance,
		dailyUsecaseInstance,
		wishUsecaseInstance,
		commentUsecaseInstance,
		healthUsecaseInstance,
		sseManager,
		cfg,
	)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
