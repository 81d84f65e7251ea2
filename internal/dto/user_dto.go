package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserBanInfo struct {
	IsBanned  bool       `json:"isBanned"`
	BanDate   *time.Time `json:"banDate"`
	BanReason *string    `json:"banReason"`
}

type UserView struct {
	ID        uuid.UUID   `json:"id"`
	Login     string      `json:"login"`
	Email     string      `json:"email"`
	CreatedAt time.Time   `json:"createdAt"`
	BanInfo   UserBanInfo `json:"banInfo"`
}

// BloggerBannedUserView is what a blog owner sees in their banned-user
// list; no e-mail exposure.
type BloggerBannedUserView struct {
	ID      uuid.UUID   `json:"id"`
	Login   string      `json:"login"`
	BanInfo UserBanInfo `json:"banInfo"`
}

type BanUserRequest struct {
	IsBanned  bool   `json:"isBanned"`
	BanReason string `json:"banReason" validate:"required_if=IsBanned true,omitempty,min=20"`
}

type BloggerBanUserRequest struct {
	IsBanned  bool   `json:"isBanned"`
	BanReason string `json:"banReason" validate:"required_if=IsBanned true,omitempty,min=20"`
	BlogID    string `json:"blogId" validate:"required,uuid"`
}
