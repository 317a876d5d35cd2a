package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lorekeep/lorekeep/internal/models"
	"github.com/lorekeep/lorekeep/internal/repository"
	"github.com/lorekeep/lorekeep/internal/schemas"
	"github.com/lorekeep/lorekeep/internal/store"
	"github.com/lorekeep/lorekeep/internal/utils"
)

// BlueprintHandler handles blueprint routes
type BlueprintHandler struct {
	Reg *repository.Registry
}

// GetBlueprint handles GET /api/blueprint/:id
// @Summary Get a blueprint
// @Description Get a blueprint by id, expanded; the id "new" returns an unsaved default template
// @Tags Library
// @Produce json
// @Param id path string true "Blueprint ID or 'new'"
// @Success 200 {object} schemas.BlueprintResponse
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /blueprint/{id} [get]
func (h *BlueprintHandler) GetBlueprint(c *fiber.Ctx) error {
	return getEntity(c, h.Reg.Blueprints, "Blueprint",
		models.DefaultBlueprint,
		func(b *models.Blueprint) (*schemas.BlueprintResponse, error) {
			return schemas.ExpandBlueprint(h.Reg, b)
		})
}

// PostBlueprint handles POST /api/blueprint/:id
// @Summary Create or update a blueprint
// @Description Create a blueprint when id is "new", otherwise update the existing blueprint
// @Tags Library
// @Accept json
// @Produce json
// @Param id path string true "Blueprint ID or 'new'"
// @Param payload body schemas.BlueprintPayload true "Blueprint fields"
// @Success 200 {object} schemas.BlueprintResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /blueprint/{id} [post]
func (h *BlueprintHandler) PostBlueprint(c *fiber.Ctx) error {
	return postEntity(c, h.Reg.Blueprints, "Blueprint",
		models.DefaultBlueprint,
		schemas.FlattenBlueprint,
		func(b *models.Blueprint) (*schemas.BlueprintResponse, error) {
			return schemas.ExpandBlueprint(h.Reg, b)
		})
}

// ListBlueprints handles GET /api/blueprints
// @Summary List the requester's blueprints
// @Tags Library
// @Produce json
// @Success 200 {array} schemas.BlueprintResponse
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /blueprints [get]
func (h *BlueprintHandler) ListBlueprints(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return utils.ForbiddenResponse(c, "Not authenticated")
	}

	blueprints := h.Reg.Blueprints.Query([]store.Filter{
		{Field: "creator_id", Op: store.OpEqual, Value: user.ID},
	}, 0)

	responses := make([]*schemas.BlueprintResponse, 0, len(blueprints))
	for _, b := range blueprints {
		resp, err := schemas.ExpandBlueprint(h.Reg, b)
		if err != nil {
			return respondExpanded(c, nil, err, fiber.StatusOK)
		}
		responses = append(responses, resp)
	}
	return c.Status(fiber.StatusOK).JSON(responses)
}

// DeleteBlueprint handles GET /api/blueprint/:id/delete
// @Summary Delete a blueprint and everything instantiated from it
// @Description Detaches the blueprint from every world and campaign listing it, deletes every object instantiated from it, then deletes the blueprint
// @Tags Library
// @Param id path string true "Blueprint ID"
// @Success 204
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /blueprint/{id}/delete [get]
func (h *BlueprintHandler) DeleteBlueprint(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return utils.ForbiddenResponse(c, "Not authenticated")
	}

	id := c.Params("id")
	blueprint, found := h.Reg.Blueprints.Get(id)
	if !found {
		return utils.NotFoundResponse(c, "Blueprint '"+id+"' not found")
	}
	if blueprint.Owner() != user.ID {
		return utils.ForbiddenResponse(c, "Only the creator can delete this Blueprint")
	}

	// Detach from every world and campaign that lists it.
	worlds := h.Reg.Worlds.Query([]store.Filter{
		{Field: "blueprint_ids", Op: store.OpArrayContains, Value: id},
	}, 0)
	for _, w := range worlds {
		w.BlueprintIDs = removeID(w.BlueprintIDs, id)
		if !h.Reg.Worlds.Update(w) {
			return utils.ErrorResponse(c, "Failed to detach blueprint from world "+w.ID,
				fiber.StatusBadRequest, "data.persist")
		}
	}
	campaigns := h.Reg.Campaigns.Query([]store.Filter{
		{Field: "blueprint_ids", Op: store.OpArrayContains, Value: id},
	}, 0)
	for _, cp := range campaigns {
		cp.BlueprintIDs = removeID(cp.BlueprintIDs, id)
		if !h.Reg.Campaigns.Update(cp) {
			return utils.ErrorResponse(c, "Failed to detach blueprint from campaign "+cp.ID,
				fiber.StatusBadRequest, "data.persist")
		}
	}

	// Delete every object instantiated from it.
	objects := h.Reg.Objects.Query([]store.Filter{
		{Field: "blueprint_id", Op: store.OpEqual, Value: id},
	}, 0)
	for _, o := range objects {
		if !h.Reg.Objects.Delete(o.ID) {
			return utils.ErrorResponse(c, "Failed to delete object "+o.ID,
				fiber.StatusBadRequest, "data.persist")
		}
	}

	if !h.Reg.Blueprints.Delete(id) {
		return utils.ErrorResponse(c, "Failed to delete blueprint",
			fiber.StatusBadRequest, "data.persist")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func removeID(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
