package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lorekeep/lorekeep/internal/models"
	"github.com/lorekeep/lorekeep/internal/repository"
	"github.com/lorekeep/lorekeep/internal/schemas"
	"github.com/lorekeep/lorekeep/internal/store"
	"github.com/lorekeep/lorekeep/internal/utils"
)

// ObjectHandler handles object routes
type ObjectHandler struct {
	Reg *repository.Registry
}

// GetObject handles GET /api/object/:id
// @Summary Get an object
// @Description Get an object by id, expanded; the id "new" returns an unsaved default template
// @Tags Library
// @Produce json
// @Param id path string true "Object ID or 'new'"
// @Success 200 {object} schemas.ObjectResponse
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /object/{id} [get]
func (h *ObjectHandler) GetObject(c *fiber.Ctx) error {
	return getEntity(c, h.Reg.Objects, "Object",
		models.DefaultObject,
		func(o *models.Object) (*schemas.ObjectResponse, error) {
			return schemas.ExpandObject(h.Reg, o)
		})
}

// PostObject handles POST /api/object/:id
// @Summary Create or update an object
// @Description Create an object when id is "new", otherwise update the existing object
// @Tags Library
// @Accept json
// @Produce json
// @Param id path string true "Object ID or 'new'"
// @Param payload body schemas.ObjectPayload true "Object fields"
// @Success 200 {object} schemas.ObjectResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /object/{id} [post]
func (h *ObjectHandler) PostObject(c *fiber.Ctx) error {
	return postEntity(c, h.Reg.Objects, "Object",
		models.DefaultObject,
		schemas.FlattenObject,
		func(o *models.Object) (*schemas.ObjectResponse, error) {
			return schemas.ExpandObject(h.Reg, o)
		})
}

// ListObjects handles GET /api/objects
// @Summary List the requester's objects
// @Tags Library
// @Produce json
// @Success 200 {array} schemas.ObjectResponse
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /objects [get]
func (h *ObjectHandler) ListObjects(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return utils.ForbiddenResponse(c, "Not authenticated")
	}

	objects := h.Reg.Objects.Query([]store.Filter{
		{Field: "creator_id", Op: store.OpEqual, Value: user.ID},
	}, 0)

	responses := make([]*schemas.ObjectResponse, 0, len(objects))
	for _, o := range objects {
		resp, err := schemas.ExpandObject(h.Reg, o)
		if err != nil {
			return respondExpanded(c, nil, err, fiber.StatusOK)
		}
		responses = append(responses, resp)
	}
	return c.Status(fiber.StatusOK).JSON(responses)
}
