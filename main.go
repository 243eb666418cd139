package main

import (
	"log"

	api "gympass-backend/cmd/api"
	authdomain "gympass-backend/internal/auth/domain"
	authRepo "gympass-backend/internal/auth/repository"
	authUsecase "gympass-backend/internal/auth/usecase"
	checkindomain "gympass-backend/internal/checkin/domain"
	checkinRepo "gympass-backend/internal/checkin/repository"
	checkinUsecase "gympass-backend/internal/checkin/usecase"
	devicedomain "gympass-backend/internal/device/domain"
	deviceRepo "gympass-backend/internal/device/repository"
	memberdomain "gympass-backend/internal/member/domain"
	memberRepo "gympass-backend/internal/member/repository"
	"gympass-backend/pkg/config"
	"gympass-backend/pkg/database"
)

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
		&memberdomain.Member{},
		&memberdomain.Plan{},
		&memberdomain.Membership{},
		&checkindomain.Checkin{},
		&checkindomain.CheckinTokenUse{},
		&devicedomain.Device{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	memberRepository := memberRepo.NewMemberRepository(db)
	membershipRepository := memberRepo.NewMembershipRepository(db)
	planRepository := memberRepo.NewPlanRepository(db)
	checkinRepository := checkinRepo.NewCheckinRepository(db)
	ledgerRepository := checkinRepo.NewLedgerRepository(db, membershipRepository)
	deviceRepository := deviceRepo.NewDeviceRepository(db)

	// Initialize use cases
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, cfg)
	checkinUsecaseInstance := checkinUsecase.NewCheckinUsecase(
		memberRepository,
		membershipRepository,
		planRepository,
		checkinRepository,
		ledgerRepository,
		deviceRepository,
		cfg,
	)

	// Replay ledger garbage collection
	purgeWorker := checkinUsecase.NewTokenPurgeWorker(ledgerRepository, cfg.TokenPurgeInterval)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, checkinUsecaseInstance, deviceRepository, purgeWorker, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
