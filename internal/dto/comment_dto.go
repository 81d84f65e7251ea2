package dto

import (
	"time"

	"github.com/google/uuid"
)

type CommentCreateRequest struct {
	Content string `json:"content" validate:"required,notblank,min=20,max=300"`
}

type CommentUpdateRequest struct {
	Content string `json:"content" validate:"required,notblank,min=20,max=300"`
}

type CommentatorInfo struct {
	UserID    uuid.UUID `json:"userId"`
	UserLogin string    `json:"userLogin"`
}

type CommentView struct {
	ID              uuid.UUID       `json:"id"`
	Content         string          `json:"content"`
	CommentatorInfo CommentatorInfo `json:"commentatorInfo"`
	CreatedAt       time.Time       `json:"createdAt"`
	LikesInfo       LikesInfo       `json:"likesInfo"`
}

type PostInfo struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	BlogID   uuid.UUID `json:"blogId"`
	BlogName string    `json:"blogName"`
}

// BloggerCommentView is the blog-owner projection: the comment plus
// which post it sits under.
type BloggerCommentView struct {
	CommentView
	PostInfo PostInfo `json:"postInfo"`
}
