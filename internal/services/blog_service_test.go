package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bloghub/internal/dto"
	"bloghub/internal/models"
)

func TestBlogCreateAndFind(t *testing.T) {
	db := newTestDB(t)
	svc := NewBlogService(db)
	owner := mustCreateUser(t, db, "alice", "alice@example.com", "pw")

	created, err := svc.Create(dto.BlogCreateRequest{
		Name:        "tech notes",
		Description: "notes about tech",
		WebsiteURL:  "https://tech.example.com",
	}, owner.ID, owner.Login)
	require.NoError(t, err)

	found, err := svc.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "tech notes", found.Name)

	_, err = svc.FindByID(uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBlogSearchCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	svc := NewBlogService(db)
	owner := mustCreateUser(t, db, "alice", "alice@example.com", "pw")
	mustCreateBlog(t, db, owner, "GoLang Daily")
	mustCreateBlog(t, db, owner, "cooking")

	page, err := svc.FindAll("golang", defaultPage())
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.TotalCount)
	views := page.Items.([]dto.BlogView)
	require.Len(t, views, 1)
	assert.Equal(t, "GoLang Daily", views[0].Name)
}

func TestBlogUpdateOwnershipChecks(t *testing.T) {
	db := newTestDB(t)
	svc := NewBlogService(db)
	owner := mustCreateUser(t, db, "alice", "alice@example.com", "pw")
	other := mustCreateUser(t, db, "bob", "bob@example.com", "pw")
	blog := mustCreateBlog(t, db, owner, "tech")

	req := dto.BlogUpdateRequest{
		Name:        "renamed",
		Description: "updated description",
		WebsiteURL:  "https://renamed.example.com",
	}

	assert.ErrorIs(t, svc.Update(uuid.New(), owner.ID, req), ErrNotFound)
	assert.ErrorIs(t, svc.Update(blog.ID, other.ID, req), ErrForbidden)
	require.NoError(t, svc.Update(blog.ID, owner.ID, req))

	found, err := svc.FindByID(blog.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", found.Name)

	assert.ErrorIs(t, svc.Delete(blog.ID, other.ID), ErrForbidden)
	require.NoError(t, svc.Delete(blog.ID, owner.ID))
	_, err = svc.FindByID(blog.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBlogBanHidesFromPublicReversibly(t *testing.T) {
	db := newTestDB(t)
	svc := NewBlogService(db)
	owner := mustCreateUser(t, db, "alice", "alice@example.com", "pw")
	blog := mustCreateBlog(t, db, owner, "tech")

	require.NoError(t, svc.SetBan(blog.ID, true))

	_, err := svc.FindByID(blog.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	page, err := svc.FindAll("", defaultPage())
	require.NoError(t, err)
	assert.EqualValues(t, 0, page.TotalCount)

	// The super-admin list still sees it, with ban metadata.
	saPage, err := svc.FindAllForSA("", defaultPage())
	require.NoError(t, err)
	assert.EqualValues(t, 1, saPage.TotalCount)
	saViews := saPage.Items.([]dto.SABlogView)
	require.Len(t, saViews, 1)
	assert.True(t, saViews[0].BanInfo.IsBanned)
	require.NotNil(t, saViews[0].BanInfo.BanDate)

	// Re-applying the same state is reported distinctly.
	assert.ErrorIs(t, svc.SetBan(blog.ID, true), ErrAlreadyApplied)

	require.NoError(t, svc.SetBan(blog.ID, false))
	found, err := svc.FindByID(blog.ID)
	require.NoError(t, err)
	assert.Equal(t, "tech", found.Name)
}

func TestBlogBindToUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewBlogService(db)
	owner := mustCreateUser(t, db, "alice", "alice@example.com", "pw")

	orphan := &models.Blog{
		Name:        "orphan",
		Description: "no owner yet",
		WebsiteURL:  "https://orphan.example.com",
	}
	require.NoError(t, db.Create(orphan).Error)

	require.NoError(t, svc.BindToUser(orphan.ID, owner.ID))

	var bound models.Blog
	require.NoError(t, db.First(&bound, "id = ?", orphan.ID).Error)
	assert.Equal(t, owner.ID, bound.OwnerID)
	assert.Equal(t, "alice", bound.OwnerLogin)

	// Already-bound blogs cannot be rebound.
	assert.ErrorIs(t, svc.BindToUser(orphan.ID, owner.ID), ErrAlreadyApplied)
	assert.ErrorIs(t, svc.BindToUser(uuid.New(), owner.ID), ErrNotFound)
}

func TestBlogListOwned(t *testing.T) {
	db := newTestDB(t)
	svc := NewBlogService(db)
	alice := mustCreateUser(t, db, "alice", "alice@example.com", "pw")
	bob := mustCreateUser(t, db, "bob", "bob@example.com", "pw")
	mustCreateBlog(t, db, alice, "alice blog")
	mustCreateBlog(t, db, bob, "bob blog")

	page, err := svc.FindAllOwned(alice.ID, "", defaultPage())
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.TotalCount)
	views := page.Items.([]dto.BlogView)
	require.Len(t, views, 1)
	assert.Equal(t, "alice blog", views[0].Name)
}
