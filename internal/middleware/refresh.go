package middleware

import (
	"errors"
	"time"

	"bloghub/internal/config"
	"bloghub/internal/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// RefreshCookieName is the httpOnly cookie carrying the refresh token.
const RefreshCookieName = "refreshToken"

// RefreshSession is the verified payload of a presented refresh token.
type RefreshSession struct {
	UserID   uuid.UUID
	DeviceID uuid.UUID
	IssuedAt time.Time
	Token    string
}

// RefreshTokenGuard verifies the refresh cookie against the refresh
// secret and stores the session payload for the handler. Denylist and
// rotation checks stay in the auth service.
func RefreshTokenGuard(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Cookies(RefreshCookieName)
		if raw == "" {
			return unauthorizedRefresh(c)
		}
		session, err := ParseRefreshToken(raw, cfg.JWTRefreshSecret)
		if err != nil {
			return unauthorizedRefresh(c)
		}
		c.Locals("refreshSession", session)
		return c.Next()
	}
}

// CurrentRefreshSession returns the payload stored by RefreshTokenGuard.
func CurrentRefreshSession(c *fiber.Ctx) (*RefreshSession, error) {
	session, ok := c.Locals("refreshSession").(*RefreshSession)
	if !ok {
		return nil, errors.New("no refresh session in context")
	}
	return session, nil
}

// ParseRefreshToken validates a refresh JWT and extracts its payload.
func ParseRefreshToken(raw, secret string) (*RefreshSession, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid refresh token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	userRaw, _ := claims["userId"].(string)
	deviceRaw, _ := claims["deviceId"].(string)
	userID, err := uuid.Parse(userRaw)
	if err != nil {
		return nil, errors.New("missing userId claim")
	}
	deviceID, err := uuid.Parse(deviceRaw)
	if err != nil {
		return nil, errors.New("missing deviceId claim")
	}
	iat, err := claims.GetIssuedAt()
	if err != nil || iat == nil {
		return nil, errors.New("missing iat claim")
	}
	return &RefreshSession{
		UserID:   userID,
		DeviceID: deviceID,
		IssuedAt: iat.Time.UTC(),
		Token:    raw,
	}, nil
}

func unauthorizedRefresh(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error:   true,
		Message: "Unauthorized: invalid or expired refresh token",
	})
}
