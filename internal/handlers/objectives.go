package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lorekeep/lorekeep/internal/models"
	"github.com/lorekeep/lorekeep/internal/repository"
	"github.com/lorekeep/lorekeep/internal/schemas"
)

// ObjectiveHandler handles objective routes
type ObjectiveHandler struct {
	Reg *repository.Registry
}

// GetObjective handles GET /api/objective/:id
// @Summary Get an objective
// @Description Get an objective by id with its task tree expanded
// @Tags Narrative
// @Produce json
// @Param id path string true "Objective ID or 'new'"
// @Success 200 {object} schemas.ObjectiveResponse
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /objective/{id} [get]
func (h *ObjectiveHandler) GetObjective(c *fiber.Ctx) error {
	return getEntity(c, h.Reg.Objectives, "Objective",
		func(_ *models.User) *models.Objective { return models.DefaultObjective() },
		func(o *models.Objective) (*schemas.ObjectiveResponse, error) {
			return schemas.ExpandObjective(h.Reg, o)
		})
}

// PostObjective handles POST /api/objective/:id
// @Summary Create or update an objective
// @Tags Narrative
// @Accept json
// @Produce json
// @Param id path string true "Objective ID or 'new'"
// @Param payload body schemas.ObjectivePayload true "Objective fields"
// @Success 200 {object} schemas.ObjectiveResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /objective/{id} [post]
func (h *ObjectiveHandler) PostObjective(c *fiber.Ctx) error {
	return postEntity(c, h.Reg.Objectives, "Objective",
		func(_ *models.User) *models.Objective { return models.DefaultObjective() },
		schemas.FlattenObjective,
		func(o *models.Objective) (*schemas.ObjectiveResponse, error) {
			return schemas.ExpandObjective(h.Reg, o)
		})
}
