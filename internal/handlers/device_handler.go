package handlers

import (
	"github.com/gofiber/fiber/v2"

	"bloghub/internal/middleware"
	"bloghub/internal/services"
)

// DeviceHandler serves the security/devices endpoints. All of them are
// driven by the refresh cookie, not the access token, so a stolen
// access token alone cannot enumerate or kill sessions.
type DeviceHandler struct {
	deviceService *services.DeviceService
}

func NewDeviceHandler(deviceService *services.DeviceService) *DeviceHandler {
	return &DeviceHandler{deviceService: deviceService}
}

func (h *DeviceHandler) List(c *fiber.Ctx) error {
	sess, err := middleware.CurrentRefreshSession(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	devices, err := h.deviceService.ListForUser(sess.UserID)
	if err != nil {
		return err
	}
	return c.JSON(devices)
}

func (h *DeviceHandler) TerminateOthers(c *fiber.Ctx) error {
	sess, err := middleware.CurrentRefreshSession(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	if err := h.deviceService.TerminateOthers(sess.UserID, sess.DeviceID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *DeviceHandler) Terminate(c *fiber.Ctx) error {
	sess, err := middleware.CurrentRefreshSession(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	deviceID, ok := uuidParam(c, "deviceId")
	if !ok {
		return nil
	}
	if err := h.deviceService.Terminate(deviceID, sess.UserID); err != nil {
		return mapServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
