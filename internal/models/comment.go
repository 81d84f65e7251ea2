package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment on a post. Commentator login and post/blog names are
// denormalized copies written at create time.
type Comment struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Content          string    `gorm:"size:300;not null" json:"content"`
	CommentatorID    uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	CommentatorLogin string    `gorm:"size:10" json:"-"`
	CreatedAt        time.Time `json:"createdAt"`

	PostID    uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	PostTitle string    `gorm:"size:30" json:"-"`
	BlogID    uuid.UUID `gorm:"type:uuid;index" json:"-"`
	BlogName  string    `gorm:"size:15" json:"-"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
