package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bloghub/internal/dto"
	"bloghub/internal/models"
	"bloghub/internal/scopes"
)

type PostService struct {
	db    *gorm.DB
	likes *LikeService
}

func NewPostService(db *gorm.DB, likes *LikeService) *PostService {
	return &PostService{db: db, likes: likes}
}

// FindAll lists posts across all visible blogs, with like aggregates
// computed for the given caller.
func (s *PostService) FindAll(callerID uuid.UUID, pq dto.PageQuery) (*dto.Page, error) {
	query := s.db.Model(&models.Post{}).Scopes(scopes.VisiblePosts)
	return s.page(query, callerID, pq)
}

// FindAllByBlog lists one blog's posts. The handler resolves the blog
// first, so a banned or unknown blog never reaches this method.
func (s *PostService) FindAllByBlog(blogID, callerID uuid.UUID, pq dto.PageQuery) (*dto.Page, error) {
	query := s.db.Model(&models.Post{}).Scopes(scopes.VisiblePosts).Where("blog_id = ?", blogID)
	return s.page(query, callerID, pq)
}

// FindByID returns a visible post or ErrNotFound; a post under a banned
// blog is indistinguishable from an absent one.
func (s *PostService) FindByID(postID, callerID uuid.UUID) (*dto.PostView, error) {
	post, err := s.findVisible(postID)
	if err != nil {
		return nil, err
	}
	view, err := s.toView(*post, callerID)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// Create adds a post under a blog, denormalizing the blog name at
// create time.
func (s *PostService) Create(blogID uuid.UUID, req dto.PostCreateRequest) (*dto.PostView, error) {
	var blog models.Blog
	err := s.db.First(&blog, "id = ?", blogID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	post := models.Post{
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		Content:          req.Content,
		BlogID:           blog.ID,
		BlogName:         blog.Name,
	}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, err
	}
	view, err := s.toView(post, uuid.Nil)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// Update edits a post addressed by its blog. A post id that exists but
// belongs to a different blog reads as not found.
func (s *PostService) Update(blogID, postID uuid.UUID, req dto.PostUpdateRequest) error {
	post, err := s.findInBlog(blogID, postID)
	if err != nil {
		return err
	}
	return s.db.Model(post).Updates(map[string]any{
		"title":             req.Title,
		"short_description": req.ShortDescription,
		"content":           req.Content,
	}).Error
}

func (s *PostService) Delete(blogID, postID uuid.UUID) error {
	post, err := s.findInBlog(blogID, postID)
	if err != nil {
		return err
	}
	return s.db.Delete(post).Error
}

// FindVisibleRaw resolves a visible post without the like aggregates,
// for callers that only need existence and blog linkage.
func (s *PostService) FindVisibleRaw(postID uuid.UUID) (*models.Post, error) {
	return s.findVisible(postID)
}

func (s *PostService) findVisible(postID uuid.UUID) (*models.Post, error) {
	var post models.Post
	err := s.db.Scopes(scopes.VisiblePosts).First(&post, "id = ?", postID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *PostService) findInBlog(blogID, postID uuid.UUID) (*models.Post, error) {
	var post models.Post
	err := s.db.Where("id = ? AND blog_id = ?", postID, blogID).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *PostService) page(query *gorm.DB, callerID uuid.UUID, pq dto.PageQuery) (*dto.Page, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}
	var posts []models.Post
	err := query.Order(pq.Order()).Offset(pq.Offset()).Limit(pq.PageSize).Find(&posts).Error
	if err != nil {
		return nil, err
	}
	views := make([]dto.PostView, 0, len(posts))
	for _, p := range posts {
		view, err := s.toView(p, callerID)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	page := dto.NewPage(views, total, pq.PageNumber, pq.PageSize)
	return &page, nil
}

func (s *PostService) toView(p models.Post, callerID uuid.UUID) (dto.PostView, error) {
	likesInfo, err := s.likes.ExtendedInfoFor(p.ID, callerID)
	if err != nil {
		return dto.PostView{}, err
	}
	return dto.PostView{
		ID:                p.ID,
		Title:             p.Title,
		ShortDescription:  p.ShortDescription,
		Content:           p.Content,
		BlogID:            p.BlogID,
		BlogName:          p.BlogName,
		CreatedAt:         p.CreatedAt,
		ExtendedLikesInfo: likesInfo,
	}, nil
}
