package main

import (
	"log"

	api "coursemail-backend/cmd/api"
	authdomain "coursemail-backend/internal/auth/domain"
	authRepo "coursemail-backend/internal/auth/repository"
	authUsecase "coursemail-backend/internal/auth/usecase"
	composeUsecase "coursemail-backend/internal/compose/usecase"
	coursedomain "coursemail-backend/internal/course/domain"
	courseRepo "coursemail-backend/internal/course/repository"
	courseUsecase "coursemail-backend/internal/course/usecase"
	draftdomain "coursemail-backend/internal/draft/domain"
	draftRepo "coursemail-backend/internal/draft/repository"
	"coursemail-backend/internal/draft/scheduler"
	draftUsecase "coursemail-backend/internal/draft/usecase"
	sigdomain "coursemail-backend/internal/signature/domain"
	sigRepo "coursemail-backend/internal/signature/repository"
	sigUsecase "coursemail-backend/internal/signature/usecase"
	"coursemail-backend/pkg/config"
	"coursemail-backend/pkg/database"
	"coursemail-backend/pkg/i18n"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize localization bundle
	if err := i18n.Init(cfg.LocalesDir); err != nil {
		log.Fatal("Failed to load locales:", err)
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&authdomain.User{},
		&authdomain.RefreshToken{},
		&coursedomain.Course{},
		&coursedomain.Role{},
		&coursedomain.Group{},
		&coursedomain.Enrollment{},
		&coursedomain.GroupMembership{},
		&coursedomain.AlternateEmail{},
		&coursedomain.CourseSettings{},
		&sigdomain.Signature{},
		&draftdomain.MessageDraft{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	courseRepository := courseRepo.NewGormCourseRepository(db)
	signatureRepository := sigRepo.NewGormSignatureRepository(db)
	draftRepository := draftRepo.NewGormDraftRepository(db)

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, cfg)
	courseUsecaseInstance := courseUsecase.NewCourseUsecase(courseRepository, cfg)
	signatureUsecaseInstance := sigUsecase.NewSignatureUsecase(signatureRepository)
	draftUsecaseInstance := draftUsecase.NewDraftUsecase(draftRepository)
	composeUsecaseInstance := composeUsecase.NewComposeUsecase(
		courseUsecaseInstance,
		signatureUsecaseInstance,
		draftUsecaseInstance,
		cfg,
	)

	// Start the background dispatch loop for queued messages
	dispatchScheduler := scheduler.NewDraftDispatchScheduler(draftRepository, scheduler.LogDispatcher{})
	dispatchScheduler.Start()
	defer dispatchScheduler.Stop()

	// Initialize HTTP handler
	handler := api.NewHandler(
		authUsecaseInstance,
		courseUsecaseInstance,
		signatureUsecaseInstance,
		draftUsecaseInstance,
		composeUsecaseInstance,
		cfg,
	)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
