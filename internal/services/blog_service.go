package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bloghub/internal/dto"
	"bloghub/internal/models"
	"bloghub/internal/scopes"
)

type BlogService struct {
	db *gorm.DB
}

func NewBlogService(db *gorm.DB) *BlogService {
	return &BlogService{db: db}
}

// FindAll lists blogs visible to the public, banned blogs excluded.
func (s *BlogService) FindAll(searchName string, pq dto.PageQuery) (*dto.Page, error) {
	query := s.db.Model(&models.Blog{}).Scopes(scopes.VisibleBlogs)
	if searchName != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+searchName+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}
	var blogs []models.Blog
	err := query.Order(pq.Order()).Offset(pq.Offset()).Limit(pq.PageSize).Find(&blogs).Error
	if err != nil {
		return nil, err
	}

	views := make([]dto.BlogView, 0, len(blogs))
	for _, b := range blogs {
		views = append(views, toBlogView(b))
	}
	page := dto.NewPage(views, total, pq.PageNumber, pq.PageSize)
	return &page, nil
}

// FindAllForSA lists every blog with owner and ban metadata, banned
// ones included.
func (s *BlogService) FindAllForSA(searchName string, pq dto.PageQuery) (*dto.Page, error) {
	query := s.db.Model(&models.Blog{})
	if searchName != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+searchName+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}
	var blogs []models.Blog
	err := query.Order(pq.Order()).Offset(pq.Offset()).Limit(pq.PageSize).Find(&blogs).Error
	if err != nil {
		return nil, err
	}

	views := make([]dto.SABlogView, 0, len(blogs))
	for _, b := range blogs {
		views = append(views, dto.SABlogView{
			BlogView: toBlogView(b),
			BlogOwnerInfo: dto.BlogOwnerInfo{
				UserID:    b.OwnerID,
				UserLogin: b.OwnerLogin,
			},
			BanInfo: dto.BlogBanInfo{IsBanned: b.IsBanned, BanDate: b.BanDate},
		})
	}
	page := dto.NewPage(views, total, pq.PageNumber, pq.PageSize)
	return &page, nil
}

// FindAllOwned lists the blogger's own blogs; a banned owner sees
// nothing.
func (s *BlogService) FindAllOwned(ownerID uuid.UUID, searchName string, pq dto.PageQuery) (*dto.Page, error) {
	query := s.db.Model(&models.Blog{}).
		Scopes(scopes.OwnedBy(ownerID), scopes.NotBannedUsers("owner_id"))
	if searchName != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+searchName+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}
	var blogs []models.Blog
	err := query.Order(pq.Order()).Offset(pq.Offset()).Limit(pq.PageSize).Find(&blogs).Error
	if err != nil {
		return nil, err
	}

	views := make([]dto.BlogView, 0, len(blogs))
	for _, b := range blogs {
		views = append(views, toBlogView(b))
	}
	page := dto.NewPage(views, total, pq.PageNumber, pq.PageSize)
	return &page, nil
}

// FindByID returns a publicly visible blog.
func (s *BlogService) FindByID(blogID uuid.UUID) (*dto.BlogView, error) {
	var blog models.Blog
	err := s.db.Scopes(scopes.VisibleBlogs).First(&blog, "id = ?", blogID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	view := toBlogView(blog)
	return &view, nil
}

func (s *BlogService) Create(req dto.BlogCreateRequest, ownerID uuid.UUID, ownerLogin string) (*dto.BlogView, error) {
	blog := models.Blog{
		Name:        req.Name,
		Description: req.Description,
		WebsiteURL:  req.WebsiteURL,
		OwnerID:     ownerID,
		OwnerLogin:  ownerLogin,
	}
	if err := s.db.Create(&blog).Error; err != nil {
		return nil, err
	}
	view := toBlogView(blog)
	return &view, nil
}

// Update edits a blog the actor owns. Existing posts keep the name the
// blog had when they were created.
func (s *BlogService) Update(blogID, actorID uuid.UUID, req dto.BlogUpdateRequest) error {
	blog, err := s.requireOwned(blogID, actorID)
	if err != nil {
		return err
	}
	return s.db.Model(blog).Updates(map[string]any{
		"name":        req.Name,
		"description": req.Description,
		"website_url": req.WebsiteURL,
	}).Error
}

func (s *BlogService) Delete(blogID, actorID uuid.UUID) error {
	blog, err := s.requireOwned(blogID, actorID)
	if err != nil {
		return err
	}
	return s.db.Delete(blog).Error
}

// SetBan flips the super-admin ban flag on a blog. Re-applying the
// current state is reported distinctly so the handler can keep the
// operation idempotent at the HTTP level.
func (s *BlogService) SetBan(blogID uuid.UUID, isBanned bool) error {
	var blog models.Blog
	err := s.db.First(&blog, "id = ?", blogID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if blog.IsBanned == isBanned {
		return ErrAlreadyApplied
	}
	updates := map[string]any{"is_banned": isBanned, "ban_date": nil}
	if isBanned {
		now := time.Now().UTC()
		updates["ban_date"] = &now
	}
	return s.db.Model(&blog).Updates(updates).Error
}

// BindToUser attaches an ownerless blog to a user.
func (s *BlogService) BindToUser(blogID, userID uuid.UUID) error {
	var blog models.Blog
	err := s.db.First(&blog, "id = ?", blogID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if blog.OwnerID != uuid.Nil {
		return ErrAlreadyApplied
	}
	var user models.User
	err = s.db.First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return s.db.Model(&blog).Updates(map[string]any{
		"owner_id":    user.ID,
		"owner_login": user.Login,
	}).Error
}

// RequireOwnership is the single ownership predicate for blogger
// operations on a blog and its posts: unknown blog reads as ErrNotFound,
// someone else's blog as ErrForbidden.
func (s *BlogService) RequireOwnership(blogID, actorID uuid.UUID) error {
	_, err := s.requireOwned(blogID, actorID)
	return err
}

func (s *BlogService) requireOwned(blogID, actorID uuid.UUID) (*models.Blog, error) {
	var blog models.Blog
	err := s.db.First(&blog, "id = ?", blogID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if blog.OwnerID != actorID {
		return nil, ErrForbidden
	}
	return &blog, nil
}

func toBlogView(b models.Blog) dto.BlogView {
	return dto.BlogView{
		ID:           b.ID,
		Name:         b.Name,
		Description:  b.Description,
		WebsiteURL:   b.WebsiteURL,
		CreatedAt:    b.CreatedAt,
		IsMembership: b.IsMembership,
	}
}
