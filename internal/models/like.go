package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Like statuses.
const (
	LikeStatusNone    = "None"
	LikeStatusLike    = "Like"
	LikeStatusDislike = "Dislike"
)

// Like is one vote of one user on one parent (post or comment).
// At most one row exists per (parent, user); setting status back to
// None updates the row in place rather than deleting it, so "has ever
// voted" stays distinguishable from "never voted".
type Like struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	ParentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_likes_parent_user" json:"-"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_likes_parent_user" json:"userId"`
	Login    string    `gorm:"size:10" json:"login"`
	Status   string    `gorm:"size:10;not null;default:'None'" json:"-"`
	AddedAt  time.Time `json:"addedAt"`
}

func (l *Like) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
