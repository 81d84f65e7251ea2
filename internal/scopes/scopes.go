// Package scopes holds the GORM query scopes that enforce ban
// propagation and ownership. Every read path that must hide banned
// content composes these instead of repeating the subqueries inline.
package scopes

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotBannedUsers excludes rows whose user column points at a banned
// account. Used for like aggregation and comment visibility.
func NotBannedUsers(userColumn string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(userColumn+" NOT IN (SELECT id FROM users WHERE is_banned = ?)", true)
	}
}

// VisibleBlogs excludes banned blogs from public reads.
func VisibleBlogs(db *gorm.DB) *gorm.DB {
	return db.Where("is_banned = ?", false)
}

// VisiblePosts excludes posts whose blog is banned.
func VisiblePosts(db *gorm.DB) *gorm.DB {
	return db.Where("blog_id NOT IN (SELECT id FROM blogs WHERE is_banned = ?)", true)
}

// OwnedBy filters blogs by owner.
func OwnedBy(userID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("owner_id = ?", userID)
	}
}
