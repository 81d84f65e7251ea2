package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post belongs to exactly one blog. Like counts, newest likes and the
// caller's own status are computed at read time, never stored here.
type Post struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title            string    `gorm:"size:30;not null" json:"title"`
	ShortDescription string    `gorm:"size:100;not null" json:"shortDescription"`
	Content          string    `gorm:"size:1000;not null" json:"content"`
	BlogID           uuid.UUID `gorm:"type:uuid;not null;index" json:"blogId"`
	BlogName         string    `gorm:"size:15" json:"blogName"`
	CreatedAt        time.Time `json:"createdAt"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
