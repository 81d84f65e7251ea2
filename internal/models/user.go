package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a platform account. Ban state and the e-mail/recovery
// confirmation flow live directly on the row; content visibility
// filters read IsBanned at query time instead of cascading deletes.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Login        string    `gorm:"size:10;not null;uniqueIndex" json:"login"`
	Email        string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`

	ConfirmationCode      uuid.UUID `gorm:"type:uuid;index" json:"-"`
	ConfirmationExpiresAt time.Time `json:"-"`
	IsEmailConfirmed      bool      `gorm:"default:false" json:"-"`

	RecoveryCode        *uuid.UUID `gorm:"type:uuid;index" json:"-"`
	IsRecoveryConfirmed bool       `gorm:"default:true" json:"-"`

	IsBanned  bool       `gorm:"default:false;index" json:"-"`
	BanDate   *time.Time `json:"-"`
	BanReason *string    `gorm:"size:500" json:"-"`
	// Set when the ban was issued by a blog owner rather than the SA.
	BlogID *uuid.UUID `gorm:"type:uuid;index" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
