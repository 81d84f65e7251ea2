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

// LikeService stores votes and recomputes like aggregates at read
// time. Counts are never persisted on posts or comments, so banning or
// unbanning a voter changes every aggregate immediately.
type LikeService struct {
	db *gorm.DB
}

func NewLikeService(db *gorm.DB) *LikeService {
	return &LikeService{db: db}
}

// SetStatus upserts the caller's vote on a parent entity. Setting None
// keeps the row as a tombstone instead of deleting it.
func (s *LikeService) SetStatus(parentID, userID uuid.UUID, login, status string) error {
	var like models.Like
	err := s.db.Where("parent_id = ? AND user_id = ?", parentID, userID).First(&like).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		like = models.Like{
			ParentID: parentID,
			UserID:   userID,
			Login:    login,
			Status:   status,
			AddedAt:  time.Now().UTC(),
		}
		return s.db.Create(&like).Error
	}
	if err != nil {
		return err
	}
	return s.db.Model(&like).Updates(map[string]any{
		"status":   status,
		"added_at": time.Now().UTC(),
	}).Error
}

// InfoFor aggregates a comment's votes for the given caller. A nil
// caller id means anonymous.
func (s *LikeService) InfoFor(parentID, callerID uuid.UUID) (dto.LikesInfo, error) {
	likes, dislikes, err := s.counts(parentID)
	if err != nil {
		return dto.LikesInfo{}, err
	}
	myStatus, err := s.statusFor(parentID, callerID)
	if err != nil {
		return dto.LikesInfo{}, err
	}
	return dto.LikesInfo{LikesCount: likes, DislikesCount: dislikes, MyStatus: myStatus}, nil
}

// ExtendedInfoFor is InfoFor plus the three most recent likes, used for
// posts only.
func (s *LikeService) ExtendedInfoFor(parentID, callerID uuid.UUID) (dto.ExtendedLikesInfo, error) {
	info, err := s.InfoFor(parentID, callerID)
	if err != nil {
		return dto.ExtendedLikesInfo{}, err
	}
	var rows []models.Like
	err = s.db.Scopes(scopes.NotBannedUsers("user_id")).
		Where("parent_id = ? AND status = ?", parentID, models.LikeStatusLike).
		Order("added_at DESC").Limit(3).Find(&rows).Error
	if err != nil {
		return dto.ExtendedLikesInfo{}, err
	}
	newest := make([]dto.NewestLike, 0, len(rows))
	for _, row := range rows {
		newest = append(newest, dto.NewestLike{
			AddedAt: row.AddedAt,
			UserID:  row.UserID,
			Login:   row.Login,
		})
	}
	return dto.ExtendedLikesInfo{LikesInfo: info, NewestLikes: newest}, nil
}

// counts excludes votes cast by currently banned users.
func (s *LikeService) counts(parentID uuid.UUID) (likes, dislikes int64, err error) {
	err = s.db.Model(&models.Like{}).Scopes(scopes.NotBannedUsers("user_id")).
		Where("parent_id = ? AND status = ?", parentID, models.LikeStatusLike).
		Count(&likes).Error
	if err != nil {
		return 0, 0, err
	}
	err = s.db.Model(&models.Like{}).Scopes(scopes.NotBannedUsers("user_id")).
		Where("parent_id = ? AND status = ?", parentID, models.LikeStatusDislike).
		Count(&dislikes).Error
	return likes, dislikes, err
}

// statusFor resolves myStatus. Anonymous callers and banned callers
// both read as None.
func (s *LikeService) statusFor(parentID, callerID uuid.UUID) (string, error) {
	if callerID == uuid.Nil {
		return models.LikeStatusNone, nil
	}
	var banned int64
	err := s.db.Model(&models.User{}).Where("id = ? AND is_banned = ?", callerID, true).
		Count(&banned).Error
	if err != nil {
		return "", err
	}
	if banned > 0 {
		return models.LikeStatusNone, nil
	}
	var like models.Like
	err = s.db.Where("parent_id = ? AND user_id = ?", parentID, callerID).First(&like).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.LikeStatusNone, nil
	}
	if err != nil {
		return "", err
	}
	return like.Status, nil
}
