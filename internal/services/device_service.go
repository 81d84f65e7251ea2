package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bloghub/internal/models"
)

type DeviceService struct {
	db *gorm.DB
}

func NewDeviceService(db *gorm.DB) *DeviceService {
	return &DeviceService{db: db}
}

// ListForUser returns every active session of the user.
func (s *DeviceService) ListForUser(userID uuid.UUID) ([]models.Device, error) {
	var devices []models.Device
	err := s.db.Where("user_id = ?", userID).Order("last_active_date ASC").Find(&devices).Error
	return devices, err
}

// TerminateOthers drops every session of the user except the one the
// call came from.
func (s *DeviceService) TerminateOthers(userID, keepDeviceID uuid.UUID) error {
	return s.db.Where("user_id = ? AND device_id <> ?", userID, keepDeviceID).
		Delete(&models.Device{}).Error
}

// Terminate drops one session by its device id. Sessions of other users
// are visible here (403, not 404) so the caller learns the id exists.
func (s *DeviceService) Terminate(deviceID, actorID uuid.UUID) error {
	var device models.Device
	err := s.db.Where("device_id = ?", deviceID).First(&device).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if device.UserID != actorID {
		return ErrForbidden
	}
	return s.db.Where("device_id = ?", deviceID).Delete(&models.Device{}).Error
}
