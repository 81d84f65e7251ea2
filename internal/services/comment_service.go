package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bloghub/internal/dto"
	"bloghub/internal/models"
	"bloghub/internal/scopes"
)

type CommentService struct {
	db    *gorm.DB
	likes *LikeService
}

func NewCommentService(db *gorm.DB, likes *LikeService) *CommentService {
	return &CommentService{db: db, likes: likes}
}

// FindByID returns one comment; comments of banned users read as not
// found.
func (s *CommentService) FindByID(commentID, callerID uuid.UUID) (*dto.CommentView, error) {
	var comment models.Comment
	err := s.db.Scopes(scopes.NotBannedUsers("commentator_id")).
		First(&comment, "id = ?", commentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	view, err := s.toView(comment, callerID)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// FindAllByPost lists a post's comments. The handler resolves the post
// through the visibility filter first.
func (s *CommentService) FindAllByPost(postID, callerID uuid.UUID, pq dto.PageQuery) (*dto.Page, error) {
	query := s.db.Model(&models.Comment{}).
		Scopes(scopes.NotBannedUsers("commentator_id")).
		Where("post_id = ?", postID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}
	var comments []models.Comment
	err := query.Order(pq.Order()).Offset(pq.Offset()).Limit(pq.PageSize).Find(&comments).Error
	if err != nil {
		return nil, err
	}

	views := make([]dto.CommentView, 0, len(comments))
	for _, c := range comments {
		view, err := s.toView(c, callerID)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	page := dto.NewPage(views, total, pq.PageNumber, pq.PageSize)
	return &page, nil
}

// Create adds a comment under a post. A platform-banned caller cannot
// comment anywhere; a blog-scoped ban only blocks that blog.
func (s *CommentService) Create(post *models.Post, author *models.User, content string) (*dto.CommentView, error) {
	if author.IsBanned && (author.BlogID == nil || *author.BlogID == post.BlogID) {
		return nil, ErrForbidden
	}
	comment := models.Comment{
		Content:          content,
		CommentatorID:    author.ID,
		CommentatorLogin: author.Login,
		PostID:           post.ID,
		PostTitle:        post.Title,
		BlogID:           post.BlogID,
		BlogName:         post.BlogName,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}
	view, err := s.toView(comment, author.ID)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// Update edits the caller's own comment.
func (s *CommentService) Update(commentID, actorID uuid.UUID, content string) error {
	comment, err := s.requireOwn(commentID, actorID)
	if err != nil {
		return err
	}
	return s.db.Model(comment).Update("content", content).Error
}

func (s *CommentService) Delete(commentID, actorID uuid.UUID) error {
	comment, err := s.requireOwn(commentID, actorID)
	if err != nil {
		return err
	}
	return s.db.Delete(comment).Error
}

// FindAllForBlogOwner lists every comment left under the owner's posts,
// across all their blogs.
func (s *CommentService) FindAllForBlogOwner(ownerID uuid.UUID, pq dto.PageQuery) (*dto.Page, error) {
	query := s.db.Model(&models.Comment{}).
		Scopes(scopes.NotBannedUsers("commentator_id")).
		Where("blog_id IN (SELECT id FROM blogs WHERE owner_id = ? AND is_banned = ?)", ownerID, false)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}
	var comments []models.Comment
	err := query.Order(pq.Order()).Offset(pq.Offset()).Limit(pq.PageSize).Find(&comments).Error
	if err != nil {
		return nil, err
	}

	views := make([]dto.BloggerCommentView, 0, len(comments))
	for _, c := range comments {
		view, err := s.toView(c, ownerID)
		if err != nil {
			return nil, err
		}
		views = append(views, dto.BloggerCommentView{
			CommentView: view,
			PostInfo: dto.PostInfo{
				ID:       c.PostID,
				Title:    c.PostTitle,
				BlogID:   c.BlogID,
				BlogName: c.BlogName,
			},
		})
	}
	page := dto.NewPage(views, total, pq.PageNumber, pq.PageSize)
	return &page, nil
}

func (s *CommentService) requireOwn(commentID, actorID uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	err := s.db.First(&comment, "id = ?", commentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if comment.CommentatorID != actorID {
		return nil, ErrForbidden
	}
	return &comment, nil
}

func (s *CommentService) toView(c models.Comment, callerID uuid.UUID) (dto.CommentView, error) {
	likesInfo, err := s.likes.InfoFor(c.ID, callerID)
	if err != nil {
		return dto.CommentView{}, err
	}
	return dto.CommentView{
		ID:      c.ID,
		Content: c.Content,
		CommentatorInfo: dto.CommentatorInfo{
			UserID:    c.CommentatorID,
			UserLogin: c.CommentatorLogin,
		},
		CreatedAt: c.CreatedAt,
		LikesInfo: likesInfo,
	}, nil
}
