package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bloghub/internal/models"
)

func TestSetStatusUpsertsSingleRow(t *testing.T) {
	db := newTestDB(t)
	svc := NewLikeService(db)
	user := mustCreateUser(t, db, "alice", "alice@example.com", "pw")
	parentID := uuid.New()

	require.NoError(t, svc.SetStatus(parentID, user.ID, user.Login, models.LikeStatusLike))
	require.NoError(t, svc.SetStatus(parentID, user.ID, user.Login, models.LikeStatusDislike))
	require.NoError(t, svc.SetStatus(parentID, user.ID, user.Login, models.LikeStatusNone))

	// One row per (parent, user) no matter how often the status flips;
	// None keeps the row instead of deleting it.
	var rows []models.Like
	require.NoError(t, db.Where("parent_id = ?", parentID).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, models.LikeStatusNone, rows[0].Status)
}

func TestInfoForCountsAndMyStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewLikeService(db)
	alice := mustCreateUser(t, db, "alice", "alice@example.com", "pw")
	bob := mustCreateUser(t, db, "bob", "bob@example.com", "pw")
	carol := mustCreateUser(t, db, "carol", "carol@example.com", "pw")
	parentID := uuid.New()

	require.NoError(t, svc.SetStatus(parentID, alice.ID, alice.Login, models.LikeStatusLike))
	require.NoError(t, svc.SetStatus(parentID, bob.ID, bob.Login, models.LikeStatusLike))
	require.NoError(t, svc.SetStatus(parentID, carol.ID, carol.Login, models.LikeStatusDislike))
	// Repeating the same status changes nothing.
	require.NoError(t, svc.SetStatus(parentID, alice.ID, alice.Login, models.LikeStatusLike))

	info, err := svc.InfoFor(parentID, alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, info.LikesCount)
	assert.EqualValues(t, 1, info.DislikesCount)
	assert.Equal(t, models.LikeStatusLike, info.MyStatus)

	// Anonymous caller reads None.
	info, err = svc.InfoFor(parentID, uuid.Nil)
	require.NoError(t, err)
	assert.Equal(t, models.LikeStatusNone, info.MyStatus)
}

func TestBanExcludesVotesReversibly(t *testing.T) {
	db := newTestDB(t)
	svc := NewLikeService(db)
	alice := mustCreateUser(t, db, "alice", "alice@example.com", "pw")
	bob := mustCreateUser(t, db, "bob", "bob@example.com", "pw")
	parentID := uuid.New()

	require.NoError(t, svc.SetStatus(parentID, alice.ID, alice.Login, models.LikeStatusLike))
	require.NoError(t, svc.SetStatus(parentID, bob.ID, bob.Login, models.LikeStatusLike))

	require.NoError(t, db.Model(&models.User{}).Where("id = ?", bob.ID).
		Update("is_banned", true).Error)

	info, err := svc.InfoFor(parentID, bob.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, info.LikesCount)
	// A banned caller's own vote reads as None too.
	assert.Equal(t, models.LikeStatusNone, info.MyStatus)

	// Lifting the ban restores the vote without rewriting anything.
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", bob.ID).
		Update("is_banned", false).Error)
	info, err = svc.InfoFor(parentID, bob.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, info.LikesCount)
	assert.Equal(t, models.LikeStatusLike, info.MyStatus)
}

func TestExtendedInfoNewestLikes(t *testing.T) {
	db := newTestDB(t)
	svc := NewLikeService(db)
	parentID := uuid.New()

	logins := []string{"u1", "u2", "u3", "u4"}
	var last *models.User
	for _, login := range logins {
		u := mustCreateUser(t, db, login, login+"@example.com", "pw")
		require.NoError(t, svc.SetStatus(parentID, u.ID, u.Login, models.LikeStatusLike))
		last = u
	}
	// Dislikes and tombstones never show up in newestLikes.
	hater := mustCreateUser(t, db, "hater", "hater@example.com", "pw")
	require.NoError(t, svc.SetStatus(parentID, hater.ID, hater.Login, models.LikeStatusDislike))

	info, err := svc.ExtendedInfoFor(parentID, uuid.Nil)
	require.NoError(t, err)
	assert.EqualValues(t, 4, info.LikesCount)
	require.Len(t, info.NewestLikes, 3)
	assert.Equal(t, last.ID, info.NewestLikes[0].UserID)

	for _, nl := range info.NewestLikes {
		assert.NotEqual(t, "u1", nl.Login)
		assert.NotEqual(t, "hater", nl.Login)
	}
}
