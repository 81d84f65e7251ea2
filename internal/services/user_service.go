package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"bloghub/internal/dto"
	"bloghub/internal/models"
)

// Ban-status filter values accepted by the super-admin user list.
const (
	BanStatusAll       = "all"
	BanStatusBanned    = "banned"
	BanStatusNotBanned = "notBanned"
)

type UserService struct {
	db    *gorm.DB
	blogs *BlogService
}

func NewUserService(db *gorm.DB, blogs *BlogService) *UserService {
	return &UserService{db: db, blogs: blogs}
}

// FindAll is the super-admin user list with login/e-mail search and a
// ban-status filter.
func (s *UserService) FindAll(searchLogin, searchEmail, banStatus string, pq dto.PageQuery) (*dto.Page, error) {
	query := s.db.Model(&models.User{})
	switch banStatus {
	case BanStatusBanned:
		query = query.Where("is_banned = ?", true)
	case BanStatusNotBanned:
		query = query.Where("is_banned = ?", false)
	}
	if searchLogin != "" || searchEmail != "" {
		// The two search terms are OR-ed, matching the list contract.
		switch {
		case searchLogin != "" && searchEmail != "":
			query = query.Where("LOWER(login) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?)",
				"%"+searchLogin+"%", "%"+searchEmail+"%")
		case searchLogin != "":
			query = query.Where("LOWER(login) LIKE LOWER(?)", "%"+searchLogin+"%")
		default:
			query = query.Where("LOWER(email) LIKE LOWER(?)", "%"+searchEmail+"%")
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}
	var users []models.User
	err := query.Order(pq.Order()).Offset(pq.Offset()).Limit(pq.PageSize).Find(&users).Error
	if err != nil {
		return nil, err
	}

	views := make([]dto.UserView, 0, len(users))
	for _, u := range users {
		views = append(views, toUserView(u))
	}
	page := dto.NewPage(views, total, pq.PageNumber, pq.PageSize)
	return &page, nil
}

// Create is the super-admin path: the account is born with a confirmed
// e-mail, no code is sent.
func (s *UserService) Create(login, email, password string) (*dto.UserView, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Where("login = ?", login).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrLoginTaken
	}
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := models.User{
		Login:               login,
		Email:               email,
		PasswordHash:        string(hash),
		IsEmailConfirmed:    true,
		IsRecoveryConfirmed: true,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	view := toUserView(user)
	return &view, nil
}

func (s *UserService) Delete(userID uuid.UUID) error {
	res := s.db.Where("id = ?", userID).Delete(&models.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SetBan is the platform-wide super-admin ban. Banning also drops the
// user's sessions so outstanding refresh tokens die with the account.
func (s *UserService) SetBan(userID uuid.UUID, isBanned bool, reason string) error {
	var user models.User
	err := s.db.First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if user.IsBanned == isBanned {
		return ErrAlreadyApplied
	}
	if err := s.applyBan(&user, isBanned, reason, nil); err != nil {
		return err
	}
	if isBanned {
		return s.db.Where("user_id = ?", userID).Delete(&models.Device{}).Error
	}
	return nil
}

// SetBlogBan is the blog-owner ban: scoped to one blog, it blocks the
// target from commenting there. Only the blog's owner may apply it.
func (s *UserService) SetBlogBan(actorID, targetID uuid.UUID, req dto.BloggerBanUserRequest) error {
	blogID, err := uuid.Parse(req.BlogID)
	if err != nil {
		return ErrNotFound
	}
	if err := s.blogs.RequireOwnership(blogID, actorID); err != nil {
		return err
	}

	var user models.User
	err = s.db.First(&user, "id = ?", targetID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if user.IsBanned == req.IsBanned {
		return ErrAlreadyApplied
	}
	return s.applyBan(&user, req.IsBanned, req.BanReason, &blogID)
}

// FindBannedForBlog lists users the owner banned from one blog.
func (s *UserService) FindBannedForBlog(actorID, blogID uuid.UUID, searchLogin string, pq dto.PageQuery) (*dto.Page, error) {
	if err := s.blogs.RequireOwnership(blogID, actorID); err != nil {
		return nil, err
	}

	query := s.db.Model(&models.User{}).Where("is_banned = ? AND blog_id = ?", true, blogID)
	if searchLogin != "" {
		query = query.Where("LOWER(login) LIKE LOWER(?)", "%"+searchLogin+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}
	var users []models.User
	err := query.Order(pq.Order()).Offset(pq.Offset()).Limit(pq.PageSize).Find(&users).Error
	if err != nil {
		return nil, err
	}

	views := make([]dto.BloggerBannedUserView, 0, len(users))
	for _, u := range users {
		views = append(views, dto.BloggerBannedUserView{
			ID:    u.ID,
			Login: u.Login,
			BanInfo: dto.UserBanInfo{
				IsBanned:  u.IsBanned,
				BanDate:   u.BanDate,
				BanReason: u.BanReason,
			},
		})
	}
	page := dto.NewPage(views, total, pq.PageNumber, pq.PageSize)
	return &page, nil
}

// FindModel resolves a user row for handlers that need the full record.
func (s *UserService) FindModel(userID uuid.UUID) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) applyBan(user *models.User, isBanned bool, reason string, blogID *uuid.UUID) error {
	updates := map[string]any{
		"is_banned":  isBanned,
		"ban_date":   nil,
		"ban_reason": nil,
		"blog_id":    nil,
	}
	if isBanned {
		now := time.Now().UTC()
		updates["ban_date"] = &now
		updates["ban_reason"] = reason
		updates["blog_id"] = blogID
	}
	return s.db.Model(user).Updates(updates).Error
}

func toUserView(u models.User) dto.UserView {
	return dto.UserView{
		ID:        u.ID,
		Login:     u.Login,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		BanInfo: dto.UserBanInfo{
			IsBanned:  u.IsBanned,
			BanDate:   u.BanDate,
			BanReason: u.BanReason,
		},
	}
}
