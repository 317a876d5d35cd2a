package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lorekeep/lorekeep/internal/models"
	"github.com/lorekeep/lorekeep/internal/repository"
	"github.com/lorekeep/lorekeep/internal/schemas"
	"github.com/lorekeep/lorekeep/internal/store"
	"github.com/lorekeep/lorekeep/internal/utils"
)

// WorldHandler handles world routes
type WorldHandler struct {
	Reg *repository.Registry
}

// GetWorld handles GET /api/world/:id
// @Summary Get a world
// @Description Get a world by id, expanded; the id "new" returns an unsaved default template
// @Tags Library
// @Produce json
// @Param id path string true "World ID or 'new'"
// @Success 200 {object} schemas.WorldResponse
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /world/{id} [get]
func (h *WorldHandler) GetWorld(c *fiber.Ctx) error {
	return getEntity(c, h.Reg.Worlds, "World",
		models.DefaultWorld,
		func(w *models.World) (*schemas.WorldResponse, error) {
			return schemas.ExpandWorld(h.Reg, w)
		})
}

// PostWorld handles POST /api/world/:id
// @Summary Create or update a world
// @Description Create a world when id is "new", otherwise update the existing world
// @Tags Library
// @Accept json
// @Produce json
// @Param id path string true "World ID or 'new'"
// @Param payload body schemas.WorldPayload true "World fields"
// @Success 200 {object} schemas.WorldResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /world/{id} [post]
func (h *WorldHandler) PostWorld(c *fiber.Ctx) error {
	return postEntity(c, h.Reg.Worlds, "World",
		models.DefaultWorld,
		schemas.FlattenWorld,
		func(w *models.World) (*schemas.WorldResponse, error) {
			return schemas.ExpandWorld(h.Reg, w)
		})
}

// ListWorlds handles GET /api/worlds
// @Summary List the requester's worlds
// @Tags Library
// @Produce json
// @Success 200 {array} schemas.WorldResponse
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /worlds [get]
func (h *WorldHandler) ListWorlds(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return utils.ForbiddenResponse(c, "Not authenticated")
	}

	worlds := h.Reg.Worlds.Query([]store.Filter{
		{Field: "creator_id", Op: store.OpEqual, Value: user.ID},
	}, 0)

	responses := make([]*schemas.WorldResponse, 0, len(worlds))
	for _, w := range worlds {
		resp, err := schemas.ExpandWorld(h.Reg, w)
		if err != nil {
			return respondExpanded(c, nil, err, fiber.StatusOK)
		}
		responses = append(responses, resp)
	}
	return c.Status(fiber.StatusOK).JSON(responses)
}
