package delivery

import (
	"net/http"

	"gympass-backend/internal/device/repository"

	"github.com/gin-gonic/gin"
)

// DeviceHandler handles kiosk device HTTP requests
type DeviceHandler struct {
	deviceRepo repository.DeviceRepository
}

// NewDeviceHandler creates a new DeviceHandler
func NewDeviceHandler(deviceRepo repository.DeviceRepository) *DeviceHandler {
	return &DeviceHandler{
		deviceRepo: deviceRepo,
	}
}

// ListDevices returns registered kiosks with their last-seen timestamps
// GET /api/devices
func (h *DeviceHandler) ListDevices(c *gin.Context) {
	devices, err := h.deviceRepo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"devices": devices,
		"count":   len(devices),
	})
}
