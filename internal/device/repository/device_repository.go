package repository

import (
	"time"

	devicedomain "gympass-backend/internal/device/domain"

	"gorm.io/gorm"
)

// DeviceRepository defines the interface for kiosk device access
type DeviceRepository interface {
	// Touch updates last_seen_at for a registered device. Unknown device
	// IDs are a no-op: the protocol does not require kiosks to be
	// provisioned before scanning.
	Touch(deviceID string, seenAt time.Time) error

	// FindAll lists registered devices
	FindAll() ([]*devicedomain.Device, error)
}

// deviceRepository implements DeviceRepository interface
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository creates a new instance of deviceRepository
func NewDeviceRepository(db *gorm.DB) DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

func (r *deviceRepository) Touch(deviceID string, seenAt time.Time) error {
	return r.db.Model(&devicedomain.Device{}).
		Where("id = ?", deviceID).
		Updates(map[string]interface{}{
			"last_seen_at": seenAt,
			"updated_at":   time.Now(),
		}).Error
}

func (r *deviceRepository) FindAll() ([]*devicedomain.Device, error) {
	var devices []*devicedomain.Device
	err := r.db.Order("name ASC").Find(&devices).Error
	if err != nil {
		return nil, err
	}
	return devices, nil
}
