package api

import (
	"net/http"

	"gympass-backend/internal/auth/delivery"
	authUsecase "gympass-backend/internal/auth/usecase"
	checkinDelivery "gympass-backend/internal/checkin/delivery"
	checkinUsecasePkg "gympass-backend/internal/checkin/usecase"
	deviceDelivery "gympass-backend/internal/device/delivery"
	deviceRepo "gympass-backend/internal/device/repository"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUsecase authUsecase.AuthUsecase, checkinUsecase checkinUsecasePkg.CheckinUsecase, deviceRepository deviceRepo.DeviceRepository) {
	authHandler := delivery.NewAuthHandler(authUsecase)
	checkinHandler := checkinDelivery.NewCheckinHandler(checkinUsecase)
	deviceHandler := deviceDelivery.NewDeviceHandler(deviceRepository)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", delivery.AuthMiddleware(authUsecase), authHandler.Me)
		}

		// Check-in routes
		checkin := api.Group("/checkin")
		{
			// Member side: mint a QR token, view own history
			checkin.POST("/token", delivery.AuthMiddleware(authUsecase), checkinHandler.IssueToken)
			checkin.GET("/history", delivery.AuthMiddleware(authUsecase), checkinHandler.History)

			// Kiosk side: the scanner is not a logged-in member; the token
			// itself carries the proof
			checkin.POST("/validate", checkinHandler.ValidateToken)
		}

		// Kiosk liveness overview (protected)
		api.GET("/devices", delivery.AuthMiddleware(authUsecase), deviceHandler.ListDevices)
	}
}
