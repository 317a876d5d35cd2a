package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lorekeep/lorekeep/internal/repository"
	"github.com/lorekeep/lorekeep/internal/schemas"
	"github.com/lorekeep/lorekeep/internal/utils"
)

// AccountHandler handles profile routes for the authenticated user
type AccountHandler struct {
	Reg *repository.Registry
}

// GetAccount handles GET /api/account
// @Summary Get the requester's profile
// @Tags Account
// @Produce json
// @Success 200 {object} schemas.UserResponse
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /account [get]
func (h *AccountHandler) GetAccount(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return utils.ForbiddenResponse(c, "Not authenticated")
	}
	return c.Status(fiber.StatusOK).JSON(schemas.ExpandUser(user))
}

// PostAccount handles POST /api/account
// @Summary Update the requester's profile
// @Description Update username and email. Password changes go through the auth service and are rejected here.
// @Tags Account
// @Accept json
// @Produce json
// @Param payload body schemas.UserPayload true "Profile fields"
// @Success 200 {object} schemas.UserResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /account [post]
func (h *AccountHandler) PostAccount(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return utils.ForbiddenResponse(c, "Not authenticated")
	}

	var payload schemas.UserPayload
	if err := c.BodyParser(&payload); err != nil {
		return utils.ErrorResponse(c, "Malformed profile payload", fiber.StatusBadRequest, "data.payload")
	}

	// Credentials live with the auth service, not in this record.
	if payload.PasswordCurrent != nil || payload.PasswordNew != nil {
		return utils.ErrorResponse(c, "Password changes are handled by the auth service",
			fiber.StatusBadRequest, "data.payload")
	}

	if payload.Username != nil {
		user.Username = strings.TrimSpace(*payload.Username)
	}
	if payload.Email != nil {
		user.Email = strings.TrimSpace(*payload.Email)
	}

	if !h.Reg.Users.Update(user) {
		return utils.ErrorResponse(c, "Failed to update user profile", fiber.StatusBadRequest, "data.persist")
	}

	return c.Status(fiber.StatusOK).JSON(schemas.ExpandUser(user))
}
