package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeniedToken is an append-only record of a spent refresh token.
// A token present here must never authenticate a request again.
type DeniedToken struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	Token     string    `gorm:"size:512;not null;uniqueIndex" json:"-"`
	CreatedAt time.Time `json:"-"`
}

func (d *DeniedToken) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

func (DeniedToken) TableName() string {
	return "denied_tokens"
}
