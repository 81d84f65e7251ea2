package middleware

import (
	"crypto/subtle"
	"encoding/base64"
	"strings"

	"bloghub/internal/config"
	"bloghub/internal/dto"
	"github.com/gofiber/fiber/v2"
)

// BasicAdmin guards super-admin routes with the fixed Basic credential
// pair from config. The comparison is constant-time; the 401 body uses
// the platform envelope, which is why fiber's basicauth middleware is
// not used here.
func BasicAdmin(cfg *config.Config) fiber.Handler {
	expected := []byte(cfg.AdminLogin + ":" + cfg.AdminPassword)

	return func(c *fiber.Ctx) error {
		auth := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(auth, "Basic ") {
			return unauthorizedBasic(c)
		}
		raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(auth, "Basic "))
		if err != nil {
			return unauthorizedBasic(c)
		}
		if subtle.ConstantTimeCompare(raw, expected) != 1 {
			return unauthorizedBasic(c)
		}
		return c.Next()
	}
}

func unauthorizedBasic(c *fiber.Ctx) error {
	c.Set(fiber.HeaderWWWAuthenticate, `Basic realm="bloghub"`)
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error:   true,
		Message: "Unauthorized",
	})
}
