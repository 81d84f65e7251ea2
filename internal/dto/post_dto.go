package dto

import (
	"time"

	"github.com/google/uuid"
)

type PostCreateRequest struct {
	Title            string `json:"title" validate:"required,notblank,max=30"`
	ShortDescription string `json:"shortDescription" validate:"required,notblank,max=100"`
	Content          string `json:"content" validate:"required,notblank,max=1000"`
}

type PostUpdateRequest struct {
	Title            string `json:"title" validate:"required,notblank,max=30"`
	ShortDescription string `json:"shortDescription" validate:"required,notblank,max=100"`
	Content          string `json:"content" validate:"required,notblank,max=1000"`
}

type LikeRequest struct {
	LikeStatus string `json:"likeStatus" validate:"required,oneof=None Like Dislike"`
}

type LikesInfo struct {
	LikesCount    int64  `json:"likesCount"`
	DislikesCount int64  `json:"dislikesCount"`
	MyStatus      string `json:"myStatus"`
}

type NewestLike struct {
	AddedAt time.Time `json:"addedAt"`
	UserID  uuid.UUID `json:"userId"`
	Login   string    `json:"login"`
}

type ExtendedLikesInfo struct {
	LikesInfo
	NewestLikes []NewestLike `json:"newestLikes"`
}

type PostView struct {
	ID                uuid.UUID         `json:"id"`
	Title             string            `json:"title"`
	ShortDescription  string            `json:"shortDescription"`
	Content           string            `json:"content"`
	BlogID            uuid.UUID         `json:"blogId"`
	BlogName          string            `json:"blogName"`
	CreatedAt         time.Time         `json:"createdAt"`
	ExtendedLikesInfo ExtendedLikesInfo `json:"extendedLikesInfo"`
}
