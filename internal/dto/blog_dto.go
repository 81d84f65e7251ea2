package dto

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

var websiteURLPattern = regexp.MustCompile(
	`^https://([a-zA-Z0-9_-]+\.)+[a-zA-Z0-9_-]+(/[a-zA-Z0-9_-]+)*/?$`,
)

type BlogCreateRequest struct {
	Name        string `json:"name" validate:"required,notblank,max=15"`
	Description string `json:"description" validate:"required,notblank,max=500"`
	WebsiteURL  string `json:"websiteUrl" validate:"required,max=100,https_url"`
}

type BlogUpdateRequest struct {
	Name        string `json:"name" validate:"required,notblank,max=15"`
	Description string `json:"description" validate:"required,notblank,max=500"`
	WebsiteURL  string `json:"websiteUrl" validate:"required,max=100,https_url"`
}

type BlogView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	WebsiteURL   string    `json:"websiteUrl"`
	CreatedAt    time.Time `json:"createdAt"`
	IsMembership bool      `json:"isMembership"`
}

type BlogOwnerInfo struct {
	UserID    uuid.UUID `json:"userId"`
	UserLogin string    `json:"userLogin"`
}

type BlogBanInfo struct {
	IsBanned bool       `json:"isBanned"`
	BanDate  *time.Time `json:"banDate"`
}

// SABlogView is the super-admin projection: owner and ban metadata
// included.
type SABlogView struct {
	BlogView
	BlogOwnerInfo BlogOwnerInfo `json:"blogOwnerInfo"`
	BanInfo       BlogBanInfo   `json:"banInfo"`
}

type BanBlogRequest struct {
	IsBanned bool `json:"isBanned"`
}
