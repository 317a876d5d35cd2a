package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/lorekeep/lorekeep/internal/config"
	"github.com/lorekeep/lorekeep/internal/services"
	"github.com/lorekeep/lorekeep/internal/utils"
)

// AuthHandler handles the signup and login passthrough routes. Credentials
// never touch the local database; both calls forward to the authorizer
// service.
type AuthHandler struct {
	Cfg *config.Config
}

type credentialsPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup handles POST /api/auth/signup
// @Summary Register a new account
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body credentialsPayload true "Credentials"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var payload credentialsPayload
	if err := c.BodyParser(&payload); err != nil || payload.Email == "" || payload.Password == "" {
		return utils.ErrorResponse(c, "Email and password are required", fiber.StatusBadRequest, "auth.payload")
	}

	// These routes sit before the auth middleware, so the first signup on a
	// fresh process must initialize the authorizer client itself.
	if !services.IsAuthorizerInitialized() {
		if err := services.InitAuthorizer(h.Cfg, c.Protocol(), c.Hostname()); err != nil {
			return utils.ErrorResponse(c, fmt.Sprintf("Authorizer unavailable: %v", err),
				fiber.StatusBadRequest, "auth.signup")
		}
	}

	if err := services.Signup(payload.Email, payload.Password); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "auth.signup")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true})
}

// Login handles POST /api/auth/login
// @Summary Authenticate and receive an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body credentialsPayload true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var payload credentialsPayload
	if err := c.BodyParser(&payload); err != nil || payload.Email == "" || payload.Password == "" {
		return utils.ErrorResponse(c, "Email and password are required", fiber.StatusBadRequest, "auth.payload")
	}

	if !services.IsAuthorizerInitialized() {
		if err := services.InitAuthorizer(h.Cfg, c.Protocol(), c.Hostname()); err != nil {
			return utils.ErrorResponse(c, fmt.Sprintf("Authorizer unavailable: %v", err),
				fiber.StatusBadRequest, "auth.login")
		}
	}

	token, err := services.Login(payload.Email, payload.Password)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "auth.login")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true, "access_token": token})
}
