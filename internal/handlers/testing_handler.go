package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bloghub/internal/models"
)

// TestingHandler wipes platform data. Mounted only when the testing
// endpoints are enabled in config; never in production.
type TestingHandler struct {
	db *gorm.DB
}

func NewTestingHandler(db *gorm.DB) *TestingHandler {
	return &TestingHandler{db: db}
}

func (h *TestingHandler) DeleteAllData(c *fiber.Ctx) error {
	// Children before parents.
	return h.wipe(c,
		&models.Like{},
		&models.Comment{},
		&models.Post{},
		&models.Blog{},
		&models.Device{},
		&models.DeniedToken{},
		&models.User{},
	)
}

func (h *TestingHandler) DeleteAllBlogs(c *fiber.Ctx) error {
	return h.wipe(c, &models.Comment{}, &models.Post{}, &models.Blog{})
}

func (h *TestingHandler) DeleteAllPosts(c *fiber.Ctx) error {
	return h.wipe(c, &models.Comment{}, &models.Post{})
}

func (h *TestingHandler) DeleteAllComments(c *fiber.Ctx) error {
	return h.wipe(c, &models.Comment{})
}

func (h *TestingHandler) DeleteAllLikes(c *fiber.Ctx) error {
	return h.wipe(c, &models.Like{})
}

func (h *TestingHandler) DeleteAllUsers(c *fiber.Ctx) error {
	return h.wipe(c, &models.Device{}, &models.DeniedToken{}, &models.User{})
}

func (h *TestingHandler) wipe(c *fiber.Ctx, tables ...interface{}) error {
	for _, table := range tables {
		if err := h.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
			return err
		}
	}
	return c.SendStatus(fiber.StatusNoContent)
}
