package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"bloghub/internal/config"
	"bloghub/internal/dto"
	"bloghub/internal/middleware"
	"bloghub/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if !parseBody(c, &req) {
		return nil
	}

	pair, err := h.authService.Login(req.LoginOrEmail, req.Password, c.IP(), c.Get(fiber.HeaderUserAgent, "unknown device"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "invalid login or password",
			})
		}
		return err
	}

	h.setRefreshCookie(c, pair.RefreshToken)
	return c.JSON(dto.LoginResponse{AccessToken: pair.AccessToken})
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	sess, err := middleware.CurrentRefreshSession(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	pair, err := h.authService.Refresh(sess)
	if err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "invalid or expired refresh token",
			})
		}
		return err
	}

	h.setRefreshCookie(c, pair.RefreshToken)
	return c.JSON(dto.LoginResponse{AccessToken: pair.AccessToken})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := middleware.CurrentRefreshSession(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	if err := h.authService.Logout(sess); err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "invalid or expired refresh token",
			})
		}
		return err
	}

	h.clearRefreshCookie(c)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegistrationRequest
	if !parseBody(c, &req) {
		return nil
	}

	err := h.authService.Register(req.Login, req.Email, req.Password)
	switch {
	case errors.Is(err, services.ErrLoginTaken):
		return fieldError(c, fiber.StatusBadRequest, "login already in use", "login")
	case errors.Is(err, services.ErrEmailTaken):
		return fieldError(c, fiber.StatusBadRequest, "email already in use", "email")
	case err != nil:
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AuthHandler) ConfirmRegistration(c *fiber.Ctx) error {
	var req dto.ConfirmationCodeRequest
	if !parseBody(c, &req) {
		return nil
	}
	code, err := uuid.Parse(req.Code)
	if err != nil {
		return fieldError(c, fiber.StatusBadRequest, "code is invalid", "code")
	}

	if err := h.authService.ConfirmRegistration(code); err != nil {
		if errors.Is(err, services.ErrCodeInvalid) {
			return fieldError(c, fiber.StatusBadRequest, "confirmation code is invalid, expired or already applied", "code")
		}
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AuthHandler) ResendConfirmation(c *fiber.Ctx) error {
	var req dto.EmailResendingRequest
	if !parseBody(c, &req) {
		return nil
	}

	err := h.authService.ResendConfirmation(req.Email)
	switch {
	case errors.Is(err, services.ErrEmailUnknown):
		return fieldError(c, fiber.StatusBadRequest, "email is not registered", "email")
	case errors.Is(err, services.ErrCodeInvalid):
		return fieldError(c, fiber.StatusBadRequest, "email is already confirmed", "email")
	case err != nil:
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AuthHandler) RecoverPassword(c *fiber.Ctx) error {
	var req dto.PasswordRecoveryRequest
	if !parseBody(c, &req) {
		return nil
	}
	if err := h.authService.RecoverPassword(req.Email); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AuthHandler) SetNewPassword(c *fiber.Ctx) error {
	var req dto.NewPasswordRequest
	if !parseBody(c, &req) {
		return nil
	}
	code, err := uuid.Parse(req.RecoveryCode)
	if err != nil {
		return fieldError(c, fiber.StatusBadRequest, "recoveryCode is invalid", "recoveryCode")
	}

	if err := h.authService.SetNewPassword(code, req.NewPassword); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	me, err := h.authService.Me(userID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return err
	}
	return c.JSON(me)
}

func (h *AuthHandler) setRefreshCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.RefreshCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.cfg.JWTRefreshExpiry),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
	})
}

func (h *AuthHandler) clearRefreshCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.RefreshCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
	})
}
