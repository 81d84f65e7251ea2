package handlers

import (
	"github.com/gofiber/fiber/v2"

	"bloghub/internal/middleware"
	"bloghub/internal/services"
)

// BlogHandler serves the public, read-only blog endpoints.
type BlogHandler struct {
	blogService *services.BlogService
	postService *services.PostService
}

func NewBlogHandler(blogService *services.BlogService, postService *services.PostService) *BlogHandler {
	return &BlogHandler{blogService: blogService, postService: postService}
}

func (h *BlogHandler) List(c *fiber.Ctx) error {
	page, err := h.blogService.FindAll(c.Query("searchNameTerm"), pageQuery(c, blogSortColumns))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

func (h *BlogHandler) Get(c *fiber.Ctx) error {
	blogID, ok := uuidParam(c, "id")
	if !ok {
		return nil
	}
	blog, err := h.blogService.FindByID(blogID)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(blog)
}

func (h *BlogHandler) ListPosts(c *fiber.Ctx) error {
	blogID, ok := uuidParam(c, "blogId")
	if !ok {
		return nil
	}
	// Resolve the blog first so a banned blog 404s instead of returning
	// an empty page.
	if _, err := h.blogService.FindByID(blogID); err != nil {
		return mapServiceError(c, err)
	}
	callerID := middleware.OptionalUserID(c)
	page, err := h.postService.FindAllByBlog(blogID, callerID, pageQuery(c, postSortColumns))
	if err != nil {
		return err
	}
	return c.JSON(page)
}
