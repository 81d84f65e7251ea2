package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"bloghub/internal/config"
	"bloghub/internal/dto"
	"bloghub/internal/models"
)

// testDB bundles the handles most service tests need.
type testDB struct {
	db  *gorm.DB
	cfg *config.Config
}

// newTestDB opens an isolated in-memory SQLite (modernc.org/sqlite)
// and migrates the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dial := gormsqlite.Dialector{
		DriverName: "sqlite",
		DSN:        fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	err = db.AutoMigrate(
		&models.User{}, &models.Blog{}, &models.Post{}, &models.Comment{},
		&models.Like{}, &models.Device{}, &models.DeniedToken{},
	)
	if err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTAccessSecret:  "access-secret-for-tests",
		JWTRefreshSecret: "refresh-secret-for-tests",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 168 * time.Hour,
		PublicBaseURL:    "https://bloghub.test",
	}
}

// mustCreateUser inserts a confirmed, unbanned user ready to log in.
func mustCreateUser(t *testing.T, db *gorm.DB, login, email, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	user := &models.User{
		Login:               login,
		Email:               email,
		PasswordHash:        string(hash),
		IsEmailConfirmed:    true,
		IsRecoveryConfirmed: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func mustCreateBlog(t *testing.T, db *gorm.DB, owner *models.User, name string) *models.Blog {
	t.Helper()
	blog := &models.Blog{
		Name:        name,
		Description: "test blog description",
		WebsiteURL:  "https://blog.example.com",
		OwnerID:     owner.ID,
		OwnerLogin:  owner.Login,
	}
	if err := db.Create(blog).Error; err != nil {
		t.Fatalf("create blog: %v", err)
	}
	return blog
}

func mustCreatePost(t *testing.T, db *gorm.DB, blog *models.Blog, title string) *models.Post {
	t.Helper()
	post := &models.Post{
		Title:            title,
		ShortDescription: "short description",
		Content:          "post content",
		BlogID:           blog.ID,
		BlogName:         blog.Name,
	}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("create post: %v", err)
	}
	return post
}

func mustCreateComment(t *testing.T, db *gorm.DB, post *models.Post, author *models.User) *models.Comment {
	t.Helper()
	comment := &models.Comment{
		Content:          "a comment long enough to pass validation",
		CommentatorID:    author.ID,
		CommentatorLogin: author.Login,
		PostID:           post.ID,
		PostTitle:        post.Title,
		BlogID:           post.BlogID,
		BlogName:         post.BlogName,
	}
	if err := db.Create(comment).Error; err != nil {
		t.Fatalf("create comment: %v", err)
	}
	return comment
}

func defaultPage() dto.PageQuery {
	return dto.PageQuery{PageNumber: 1, PageSize: 10, SortBy: "created_at", SortDesc: true}
}
