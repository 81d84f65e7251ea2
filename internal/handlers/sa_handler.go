package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"bloghub/internal/dto"
	"bloghub/internal/services"
)

// SAHandler serves the super-admin surface behind Basic auth: user
// CRUD, platform-wide bans, the full blog list, blog bans and
// blog-to-user binding.
type SAHandler struct {
	userService *services.UserService
	blogService *services.BlogService
}

func NewSAHandler(userService *services.UserService, blogService *services.BlogService) *SAHandler {
	return &SAHandler{userService: userService, blogService: blogService}
}

func (h *SAHandler) ListUsers(c *fiber.Ctx) error {
	banStatus := c.Query("banStatus", services.BanStatusAll)
	page, err := h.userService.FindAll(
		c.Query("searchLoginTerm"), c.Query("searchEmailTerm"), banStatus,
		pageQuery(c, userSortColumns))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

func (h *SAHandler) CreateUser(c *fiber.Ctx) error {
	var req dto.RegistrationRequest
	if !parseBody(c, &req) {
		return nil
	}
	user, err := h.userService.Create(req.Login, req.Email, req.Password)
	switch {
	case errors.Is(err, services.ErrLoginTaken):
		return fieldError(c, fiber.StatusBadRequest, "login already in use", "login")
	case errors.Is(err, services.ErrEmailTaken):
		return fieldError(c, fiber.StatusBadRequest, "email already in use", "email")
	case err != nil:
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

func (h *SAHandler) DeleteUser(c *fiber.Ctx) error {
	userID, ok := uuidParam(c, "id")
	if !ok {
		return nil
	}
	if err := h.userService.Delete(userID); err != nil {
		return mapServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// BanUser applies or lifts a platform-wide ban. Repeating the current
// state reads as 404, same as an unknown user.
func (h *SAHandler) BanUser(c *fiber.Ctx) error {
	userID, ok := uuidParam(c, "id")
	if !ok {
		return nil
	}
	var req dto.BanUserRequest
	if !parseBody(c, &req) {
		return nil
	}

	err := h.userService.SetBan(userID, req.IsBanned, req.BanReason)
	if errors.Is(err, services.ErrAlreadyApplied) {
		return c.SendStatus(fiber.StatusNotFound)
	}
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *SAHandler) ListBlogs(c *fiber.Ctx) error {
	page, err := h.blogService.FindAllForSA(c.Query("searchNameTerm"), pageQuery(c, blogSortColumns))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

func (h *SAHandler) BanBlog(c *fiber.Ctx) error {
	blogID, ok := uuidParam(c, "id")
	if !ok {
		return nil
	}
	var req dto.BanBlogRequest
	if !parseBody(c, &req) {
		return nil
	}

	err := h.blogService.SetBan(blogID, req.IsBanned)
	if errors.Is(err, services.ErrAlreadyApplied) {
		return c.SendStatus(fiber.StatusNotFound)
	}
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *SAHandler) BindBlog(c *fiber.Ctx) error {
	blogID, ok := uuidParam(c, "id")
	if !ok {
		return nil
	}
	userID, ok := uuidParam(c, "userId")
	if !ok {
		return nil
	}

	err := h.blogService.BindToUser(blogID, userID)
	if errors.Is(err, services.ErrAlreadyApplied) {
		return fieldError(c, fiber.StatusBadRequest, "blog is already bound to a user", "blogId")
	}
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
