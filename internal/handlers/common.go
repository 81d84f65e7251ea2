package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"bloghub/internal/dto"
	"bloghub/internal/services"
)

// Sort columns a client may ask for, per entity. Anything else falls
// back to createdAt so raw query input never reaches ORDER BY.
var (
	blogSortColumns    = map[string]string{"createdAt": "created_at", "name": "name"}
	postSortColumns    = map[string]string{"createdAt": "created_at", "title": "title", "blogName": "blog_name"}
	commentSortColumns = map[string]string{"createdAt": "created_at"}
	userSortColumns    = map[string]string{"createdAt": "created_at", "login": "login", "email": "email"}
)

// pageQuery normalizes pagination parameters from the query string.
func pageQuery(c *fiber.Ctx, sortColumns map[string]string) dto.PageQuery {
	pageNumber := c.QueryInt("pageNumber", 1)
	if pageNumber < 1 {
		pageNumber = 1
	}
	pageSize := c.QueryInt("pageSize", 10)
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	sortBy, ok := sortColumns[c.Query("sortBy", "createdAt")]
	if !ok {
		sortBy = "created_at"
	}
	return dto.PageQuery{
		PageNumber: pageNumber,
		PageSize:   pageSize,
		SortBy:     sortBy,
		SortDesc:   c.Query("sortDirection", "desc") != "asc",
	}
}

// parseBody decodes and validates a request body. A false return means
// the 400 response has already been written.
func parseBody(c *fiber.Ctx, body interface{}) bool {
	if err := c.BodyParser(body); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.APIErrorResult{
			ErrorsMessages: []dto.FieldError{{Message: "invalid request body", Field: ""}},
		})
		return false
	}
	if fieldErrs := dto.Validate(body); fieldErrs != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.APIErrorResult{ErrorsMessages: fieldErrs})
		return false
	}
	return true
}

// uuidParam parses a path parameter as uuid. An unparsable id is
// indistinguishable from an absent entity.
func uuidParam(c *fiber.Ctx, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		_ = c.SendStatus(fiber.StatusNotFound)
		return uuid.Nil, false
	}
	return id, true
}

// mapServiceError translates the shared sentinel errors; anything
// unrecognized bubbles up to the app-level error handler as a 500.
func mapServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return c.SendStatus(fiber.StatusNotFound)
	case errors.Is(err, services.ErrForbidden):
		return c.SendStatus(fiber.StatusForbidden)
	default:
		return err
	}
}

func fieldError(c *fiber.Ctx, status int, message, field string) error {
	return c.Status(status).JSON(dto.APIErrorResult{
		ErrorsMessages: []dto.FieldError{{Message: message, Field: field}},
	})
}
