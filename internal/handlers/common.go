package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/lorekeep/lorekeep/internal/models"
	"github.com/lorekeep/lorekeep/internal/repository"
	"github.com/lorekeep/lorekeep/internal/schemas"
	"github.com/lorekeep/lorekeep/internal/utils"
)

// entityRecord mirrors the repository's pointer constraint so the generic
// route helpers can operate on any entity family.
type entityRecord[T any] interface {
	*T
	models.Entity
}

// publicReadable is implemented by entities whose settings open them to
// non-owner reads.
type publicReadable interface {
	Public() bool
}

// currentUser returns the authenticated user placed in the request context by
// the auth middleware.
func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals("user").(*models.User)
	return user, ok && user != nil
}

// respondExpanded sends an expanded entity, translating assembler failures.
// A dangling mandatory reference is stored-data corruption, not a bad
// request, and maps to 500 with its own error type.
func respondExpanded(c *fiber.Ctx, resp any, err error, status int) error {
	if err != nil {
		if errors.Is(err, schemas.ErrDanglingReference) {
			return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "data.integrity")
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "data.expand")
	}
	return c.Status(status).JSON(resp)
}

// getEntity serves GET /{entity}/:id. The sentinel id "new" returns the
// default template for the family without persisting anything; any other id
// loads the record, applies the read gate, and expands it.
func getEntity[T any, PT entityRecord[T], R any](
	c *fiber.Ctx,
	repo *repository.Repository[T, PT],
	name string,
	defaultFn func(*models.User) PT,
	expandFn func(PT) (R, error),
) error {
	user, ok := currentUser(c)
	if !ok {
		return utils.ForbiddenResponse(c, "Not authenticated")
	}

	id := c.Params("id")
	if id == models.SentinelNewID {
		resp, err := expandFn(defaultFn(user))
		return respondExpanded(c, resp, err, fiber.StatusOK)
	}

	entity, found := repo.Get(id)
	if !found {
		return utils.NotFoundResponse(c, fmt.Sprintf("%s '%s' not found", name, id))
	}
	if err := readGate(entity, user); err != nil {
		return utils.ForbiddenResponse(c, err.Error())
	}

	resp, err := expandFn(entity)
	return respondExpanded(c, resp, err, fiber.StatusOK)
}

// postEntity serves POST /{entity}/:id. The sentinel id "new" creates a fresh
// record from the family default plus the payload, owned by the requester;
// any other id updates the existing record after the ownership check.
// Immutable fields never come from the payload.
func postEntity[T any, PT entityRecord[T], P any, R any](
	c *fiber.Ctx,
	repo *repository.Repository[T, PT],
	name string,
	defaultFn func(*models.User) PT,
	flattenFn func(*P, PT),
	expandFn func(PT) (R, error),
) error {
	user, ok := currentUser(c)
	if !ok {
		return utils.ForbiddenResponse(c, "Not authenticated")
	}

	var payload P
	if err := c.BodyParser(&payload); err != nil {
		return utils.ErrorResponse(c, fmt.Sprintf("Malformed %s payload: %v", name, err),
			fiber.StatusBadRequest, "data.payload")
	}

	var entity PT
	if c.Params("id") == models.SentinelNewID {
		entity = defaultFn(user)
		flattenFn(&payload, entity)
		if owned, isOwned := any(entity).(models.Owned); isOwned {
			owned.SetOwner(user.ID)
		}
		if _, created := repo.Add(entity); !created {
			return utils.ErrorResponse(c, fmt.Sprintf("Failed to create %s", name),
				fiber.StatusBadRequest, "data.persist")
		}
	} else {
		id := c.Params("id")
		existing, found := repo.Get(id)
		if !found {
			return utils.NotFoundResponse(c, fmt.Sprintf("%s '%s' not found", name, id))
		}
		if owned, isOwned := any(existing).(models.Owned); isOwned && owned.Owner() != user.ID {
			return utils.ForbiddenResponse(c, fmt.Sprintf("Only the creator can modify this %s", name))
		}
		flattenFn(&payload, existing)
		if !repo.Update(existing) {
			return utils.ErrorResponse(c, fmt.Sprintf("Failed to update %s", name),
				fiber.StatusBadRequest, "data.persist")
		}
		entity = existing
	}

	resp, err := expandFn(entity)
	return respondExpanded(c, resp, err, fiber.StatusOK)
}

// readGate rejects direct reads of owner-scoped records by other users
// unless the record is marked public.
func readGate(entity any, user *models.User) error {
	owned, isOwned := entity.(models.Owned)
	if !isOwned || owned.Owner() == user.ID || owned.Owner() == "" {
		return nil
	}
	if p, visible := entity.(publicReadable); visible && p.Public() {
		return nil
	}
	return errors.New("this record is private")
}

// requireParentID reads a mandatory parent-scoping query parameter for the
// list routes of entities that carry no creator.
func requireParentID(c *fiber.Ctx, param string) (string, error) {
	id := c.Query(param)
	if id == "" {
		return "", fmt.Errorf("query parameter '%s' is required", param)
	}
	return id, nil
}
