package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bloghub/internal/dto"
	"bloghub/internal/models"
)

// TestPlatformFlow walks the main user journey end to end: register,
// confirm, log in, create a blog and a post, comment and like it, then
// ban the commenter and watch their traces disappear.
func TestPlatformFlow(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()

	auth := NewAuthService(db, cfg, NewEmailService(cfg))
	likes := NewLikeService(db)
	blogs := NewBlogService(db)
	posts := NewPostService(db, likes)
	comments := NewCommentService(db, likes)
	users := NewUserService(db, blogs)

	require.NoError(t, auth.Register("writer", "writer@example.com", "password1"))
	require.NoError(t, auth.Register("reader", "reader@example.com", "password1"))

	var writer, reader models.User
	require.NoError(t, db.First(&writer, "login = ?", "writer").Error)
	require.NoError(t, db.First(&reader, "login = ?", "reader").Error)
	require.NoError(t, auth.ConfirmRegistration(writer.ConfirmationCode))
	require.NoError(t, auth.ConfirmRegistration(reader.ConfirmationCode))

	_, err := auth.Login("writer", "password1", "ip", "agent")
	require.NoError(t, err)

	blog, err := blogs.Create(dto.BlogCreateRequest{
		Name:        "go notes",
		Description: "a blog about go",
		WebsiteURL:  "https://gonotes.example.com",
	}, writer.ID, writer.Login)
	require.NoError(t, err)

	post, err := posts.Create(blog.ID, dto.PostCreateRequest{
		Title:            "hello world",
		ShortDescription: "the first post",
		Content:          "long form content goes here",
	})
	require.NoError(t, err)

	var postModel models.Post
	require.NoError(t, db.First(&postModel, "id = ?", post.ID).Error)
	comment, err := comments.Create(&postModel, &reader, "this is a sufficiently long comment")
	require.NoError(t, err)

	require.NoError(t, likes.SetStatus(post.ID, reader.ID, reader.Login, models.LikeStatusLike))

	view, err := posts.FindByID(post.ID, reader.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, view.ExtendedLikesInfo.LikesCount)
	assert.Equal(t, models.LikeStatusLike, view.ExtendedLikesInfo.MyStatus)
	require.Len(t, view.ExtendedLikesInfo.NewestLikes, 1)
	assert.Equal(t, "reader", view.ExtendedLikesInfo.NewestLikes[0].Login)

	// The blog owner sees the comment in the cross-blog feed.
	ownerFeed, err := comments.FindAllForBlogOwner(writer.ID, defaultPage())
	require.NoError(t, err)
	assert.EqualValues(t, 1, ownerFeed.TotalCount)

	// Super-admin bans the reader: their comment and like vanish from
	// every read path without any content being rewritten.
	require.NoError(t, users.SetBan(reader.ID, true, "relentless self promotion in comments"))

	_, err = comments.FindByID(comment.ID, uuid.Nil)
	assert.ErrorIs(t, err, ErrNotFound)

	view, err = posts.FindByID(post.ID, uuid.Nil)
	require.NoError(t, err)
	assert.EqualValues(t, 0, view.ExtendedLikesInfo.LikesCount)
	assert.Empty(t, view.ExtendedLikesInfo.NewestLikes)

	// And the banned reader can no longer log in.
	_, err = auth.Login("reader", "password1", "ip", "agent")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
