package api

import (
	authUsecase "gympass-backend/internal/auth/usecase"
	checkinUsecasePkg "gympass-backend/internal/checkin/usecase"
	deviceRepo "gympass-backend/internal/device/repository"
	"gympass-backend/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase    authUsecase.AuthUsecase
	checkinUsecase checkinUsecasePkg.CheckinUsecase
	deviceRepo     deviceRepo.DeviceRepository
	purgeWorker    *checkinUsecasePkg.TokenPurgeWorker
	config         *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, checkinUc checkinUsecasePkg.CheckinUsecase, deviceRepository deviceRepo.DeviceRepository, purgeWorker *checkinUsecasePkg.TokenPurgeWorker, cfg *config.Config) *Handler {
	purgeWorker.Start()

	return &Handler{
		authUsecase:    authUc,
		checkinUsecase: checkinUc,
		deviceRepo:     deviceRepository,
		purgeWorker:    purgeWorker,
		config:         cfg,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: false,
	}))

	SetupRoutes(r, h.authUsecase, h.checkinUsecase, h.deviceRepo)

	return r.Run(addr)
}
