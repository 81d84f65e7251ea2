package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Blog is owned by exactly one user. OwnerLogin is a denormalized copy
// taken at create/bind time; login renames are not propagated.
type Blog struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"size:15;not null;index" json:"name"`
	Description  string    `gorm:"size:500;not null" json:"description"`
	WebsiteURL   string    `gorm:"size:100;not null" json:"websiteUrl"`
	CreatedAt    time.Time `json:"createdAt"`
	IsMembership bool      `gorm:"default:false" json:"isMembership"`

	OwnerID    uuid.UUID `gorm:"type:uuid;index" json:"-"`
	OwnerLogin string    `gorm:"size:10" json:"-"`

	IsBanned bool       `gorm:"default:false;index" json:"-"`
	BanDate  *time.Time `json:"-"`
}

func (b *Blog) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
