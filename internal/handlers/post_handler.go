package handlers

import (
	"github.com/gofiber/fiber/v2"

	"bloghub/internal/dto"
	"bloghub/internal/middleware"
	"bloghub/internal/services"
)

// PostHandler serves the public post endpoints: reads are open with
// optional identity, commenting and liking require a bearer token.
type PostHandler struct {
	postService    *services.PostService
	commentService *services.CommentService
	likeService    *services.LikeService
	userService    *services.UserService
}

func NewPostHandler(
	postService *services.PostService,
	commentService *services.CommentService,
	likeService *services.LikeService,
	userService *services.UserService,
) *PostHandler {
	return &PostHandler{
		postService:    postService,
		commentService: commentService,
		likeService:    likeService,
		userService:    userService,
	}
}

func (h *PostHandler) List(c *fiber.Ctx) error {
	callerID := middleware.OptionalUserID(c)
	page, err := h.postService.FindAll(callerID, pageQuery(c, postSortColumns))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

func (h *PostHandler) Get(c *fiber.Ctx) error {
	postID, ok := uuidParam(c, "id")
	if !ok {
		return nil
	}
	callerID := middleware.OptionalUserID(c)
	post, err := h.postService.FindByID(postID, callerID)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(post)
}

func (h *PostHandler) ListComments(c *fiber.Ctx) error {
	postID, ok := uuidParam(c, "postId")
	if !ok {
		return nil
	}
	if _, err := h.postService.FindVisibleRaw(postID); err != nil {
		return mapServiceError(c, err)
	}
	callerID := middleware.OptionalUserID(c)
	page, err := h.commentService.FindAllByPost(postID, callerID, pageQuery(c, commentSortColumns))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

func (h *PostHandler) CreateComment(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	postID, ok := uuidParam(c, "postId")
	if !ok {
		return nil
	}
	var req dto.CommentCreateRequest
	if !parseBody(c, &req) {
		return nil
	}

	post, err := h.postService.FindVisibleRaw(postID)
	if err != nil {
		return mapServiceError(c, err)
	}
	author, err := h.userService.FindModel(userID)
	if err != nil {
		return mapServiceError(c, err)
	}

	comment, err := h.commentService.Create(post, author, req.Content)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

func (h *PostHandler) SetLikeStatus(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	postID, ok := uuidParam(c, "postId")
	if !ok {
		return nil
	}
	var req dto.LikeRequest
	if !parseBody(c, &req) {
		return nil
	}

	if _, err := h.postService.FindVisibleRaw(postID); err != nil {
		return mapServiceError(c, err)
	}
	user, err := h.userService.FindModel(userID)
	if err != nil {
		return mapServiceError(c, err)
	}

	if err := h.likeService.SetStatus(postID, user.ID, user.Login, req.LikeStatus); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
