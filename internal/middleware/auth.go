package middleware

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/lorekeep/lorekeep/internal/config"
	"github.com/lorekeep/lorekeep/internal/models"
	"github.com/lorekeep/lorekeep/internal/repository"
	"github.com/lorekeep/lorekeep/internal/services"
	"github.com/lorekeep/lorekeep/internal/store"
	"github.com/lorekeep/lorekeep/internal/types"
)

// AuthUser validates that the request carries a valid user session and
// resolves the local user record, provisioning one on first contact.
func AuthUser(cfg *config.Config, reg *repository.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return authorize(c, cfg, reg, []string{"user"}, "data.authorization.user")
	}
}

// authorize performs the authorization check
func authorize(c *fiber.Ctx, cfg *config.Config, reg *repository.Registry, roles []string, errorType string) error {
	// The authorizer client needs the request host for its redirect URL, so
	// initialization waits for the first authenticated request.
	if !services.IsAuthorizerInitialized() {
		if err := services.InitAuthorizer(cfg, c.Protocol(), c.Hostname()); err != nil {
			return &types.CustomError{
				Code:    fiber.StatusForbidden,
				Message: fmt.Sprintf("Authorizer unavailable: %v", err),
				Type:    errorType,
			}
		}
	}

	// Get session cookie
	session := c.Cookies("cookie_session")
	if session == "" {
		return &types.CustomError{
			Code:    fiber.StatusForbidden,
			Message: "Authorizer cookie \"cookie_session\" not found",
			Type:    errorType,
		}
	}

	// Validate session
	identity, err := services.ValidateSession(session, roles)
	if err != nil {
		return &types.CustomError{
			Code:    fiber.StatusForbidden,
			Message: fmt.Sprintf("Invalid session: %v", err),
			Type:    errorType,
		}
	}

	user, err := resolveUser(reg, identity)
	if err != nil {
		return &types.CustomError{
			Code:    fiber.StatusBadRequest,
			Message: "Failed to resolve user account",
			Type:    errorType,
		}
	}

	c.Locals("user", user)

	return c.Next()
}

// resolveUser loads the local user record matching the identity email, or
// provisions one on first authenticated contact.
func resolveUser(reg *repository.Registry, identity *services.Identity) (*models.User, error) {
	existing := reg.Users.Query([]store.Filter{
		{Field: "email", Op: store.OpEqual, Value: identity.Email},
	}, 1)
	if len(existing) > 0 {
		return existing[0], nil
	}

	user := &models.User{
		Username: identity.Username(),
		Email:    identity.Email,
	}
	id, ok := reg.Users.Add(user)
	if !ok {
		return nil, fmt.Errorf("failed to provision user for %s", identity.Email)
	}
	log.Printf("Provisioned user %s for %s", id, identity.Email)

	return user, nil
}
