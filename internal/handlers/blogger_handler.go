package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"bloghub/internal/dto"
	"bloghub/internal/middleware"
	"bloghub/internal/services"
)

// BloggerHandler serves the blog-owner surface: managing own blogs and
// posts, reading comments across them, and blog-scoped user bans.
type BloggerHandler struct {
	blogService    *services.BlogService
	postService    *services.PostService
	commentService *services.CommentService
	userService    *services.UserService
}

func NewBloggerHandler(
	blogService *services.BlogService,
	postService *services.PostService,
	commentService *services.CommentService,
	userService *services.UserService,
) *BloggerHandler {
	return &BloggerHandler{
		blogService:    blogService,
		postService:    postService,
		commentService: commentService,
		userService:    userService,
	}
}

func (h *BloggerHandler) ListBlogs(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	page, err := h.blogService.FindAllOwned(userID, c.Query("searchNameTerm"), pageQuery(c, blogSortColumns))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

func (h *BloggerHandler) CreateBlog(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	var req dto.BlogCreateRequest
	if !parseBody(c, &req) {
		return nil
	}
	user, err := h.userService.FindModel(userID)
	if err != nil {
		return mapServiceError(c, err)
	}
	blog, err := h.blogService.Create(req, user.ID, user.Login)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(blog)
}

func (h *BloggerHandler) UpdateBlog(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	blogID, ok := uuidParam(c, "id")
	if !ok {
		return nil
	}
	var req dto.BlogUpdateRequest
	if !parseBody(c, &req) {
		return nil
	}
	if err := h.blogService.Update(blogID, userID, req); err != nil {
		return mapServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *BloggerHandler) DeleteBlog(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	blogID, ok := uuidParam(c, "id")
	if !ok {
		return nil
	}
	if err := h.blogService.Delete(blogID, userID); err != nil {
		return mapServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *BloggerHandler) CreatePost(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	blogID, ok := uuidParam(c, "blogId")
	if !ok {
		return nil
	}
	var req dto.PostCreateRequest
	if !parseBody(c, &req) {
		return nil
	}
	if err := h.blogService.RequireOwnership(blogID, userID); err != nil {
		return mapServiceError(c, err)
	}
	post, err := h.postService.Create(blogID, req)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

func (h *BloggerHandler) UpdatePost(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	blogID, ok := uuidParam(c, "blogId")
	if !ok {
		return nil
	}
	postID, ok := uuidParam(c, "postId")
	if !ok {
		return nil
	}
	var req dto.PostUpdateRequest
	if !parseBody(c, &req) {
		return nil
	}
	if err := h.blogService.RequireOwnership(blogID, userID); err != nil {
		return mapServiceError(c, err)
	}
	if err := h.postService.Update(blogID, postID, req); err != nil {
		return mapServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *BloggerHandler) DeletePost(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	blogID, ok := uuidParam(c, "blogId")
	if !ok {
		return nil
	}
	postID, ok := uuidParam(c, "postId")
	if !ok {
		return nil
	}
	if err := h.blogService.RequireOwnership(blogID, userID); err != nil {
		return mapServiceError(c, err)
	}
	if err := h.postService.Delete(blogID, postID); err != nil {
		return mapServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *BloggerHandler) ListComments(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	page, err := h.commentService.FindAllForBlogOwner(userID, pageQuery(c, commentSortColumns))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

// BanUser applies or lifts a blog-scoped ban. Re-applying the current
// state is a no-op, not an error.
func (h *BloggerHandler) BanUser(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	targetID, ok := uuidParam(c, "id")
	if !ok {
		return nil
	}
	var req dto.BloggerBanUserRequest
	if !parseBody(c, &req) {
		return nil
	}

	err = h.userService.SetBlogBan(userID, targetID, req)
	if err != nil && !errors.Is(err, services.ErrAlreadyApplied) {
		return mapServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *BloggerHandler) ListBannedUsers(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	blogID, ok := uuidParam(c, "id")
	if !ok {
		return nil
	}
	page, err := h.userService.FindBannedForBlog(userID, blogID, c.Query("searchLoginTerm"), pageQuery(c, userSortColumns))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(page)
}
