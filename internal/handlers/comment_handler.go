package handlers

import (
	"github.com/gofiber/fiber/v2"

	"bloghub/internal/dto"
	"bloghub/internal/middleware"
	"bloghub/internal/services"
)

type CommentHandler struct {
	commentService *services.CommentService
	likeService    *services.LikeService
	userService    *services.UserService
}

func NewCommentHandler(
	commentService *services.CommentService,
	likeService *services.LikeService,
	userService *services.UserService,
) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		likeService:    likeService,
		userService:    userService,
	}
}

func (h *CommentHandler) Get(c *fiber.Ctx) error {
	commentID, ok := uuidParam(c, "id")
	if !ok {
		return nil
	}
	callerID := middleware.OptionalUserID(c)
	comment, err := h.commentService.FindByID(commentID, callerID)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(comment)
}

func (h *CommentHandler) Update(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	commentID, ok := uuidParam(c, "commentId")
	if !ok {
		return nil
	}
	var req dto.CommentUpdateRequest
	if !parseBody(c, &req) {
		return nil
	}
	if err := h.commentService.Update(commentID, userID, req.Content); err != nil {
		return mapServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	commentID, ok := uuidParam(c, "commentId")
	if !ok {
		return nil
	}
	if err := h.commentService.Delete(commentID, userID); err != nil {
		return mapServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CommentHandler) SetLikeStatus(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	commentID, ok := uuidParam(c, "commentId")
	if !ok {
		return nil
	}
	var req dto.LikeRequest
	if !parseBody(c, &req) {
		return nil
	}

	if _, err := h.commentService.FindByID(commentID, userID); err != nil {
		return mapServiceError(c, err)
	}
	user, err := h.userService.FindModel(userID)
	if err != nil {
		return mapServiceError(c, err)
	}

	if err := h.likeService.SetStatus(commentID, user.ID, user.Login, req.LikeStatus); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
