package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lorekeep/lorekeep/internal/models"
	"github.com/lorekeep/lorekeep/internal/repository"
	"github.com/lorekeep/lorekeep/internal/schemas"
)

// ContextHandler handles lore context routes
type ContextHandler struct {
	Reg *repository.Registry
}

// GetContext handles GET /api/context/:id
// @Summary Get a lore context
// @Tags Library
// @Produce json
// @Param id path string true "Context ID or 'new'"
// @Success 200 {object} schemas.ContextResponse
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /context/{id} [get]
func (h *ContextHandler) GetContext(c *fiber.Ctx) error {
	return getEntity(c, h.Reg.Contexts, "Context",
		func(_ *models.User) *models.Context { return models.DefaultContext() },
		func(ctx *models.Context) (*schemas.ContextResponse, error) {
			return schemas.ExpandContext(ctx), nil
		})
}

// PostContext handles POST /api/context/:id
// @Summary Create or update a lore context
// @Tags Library
// @Accept json
// @Produce json
// @Param id path string true "Context ID or 'new'"
// @Param payload body schemas.ContextPayload true "Context fields"
// @Success 200 {object} schemas.ContextResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /context/{id} [post]
func (h *ContextHandler) PostContext(c *fiber.Ctx) error {
	return postEntity(c, h.Reg.Contexts, "Context",
		func(_ *models.User) *models.Context { return models.DefaultContext() },
		schemas.FlattenContext,
		func(ctx *models.Context) (*schemas.ContextResponse, error) {
			return schemas.ExpandContext(ctx), nil
		})
}
