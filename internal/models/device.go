package models

import (
	"time"

	"github.com/google/uuid"
)

// Device is one live login session: one row per refresh-token lineage.
// LastActiveDate always equals the issued-at of the newest refresh
// token in the lineage, which doubles as the rotation fingerprint.
type Device struct {
	DeviceID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"deviceId"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	IP             string    `gorm:"size:45" json:"ip"`
	Title          string    `gorm:"size:255" json:"title"`
	LastActiveDate time.Time `json:"lastActiveDate"`
}
