package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lorekeep/lorekeep/internal/models"
	"github.com/lorekeep/lorekeep/internal/repository"
	"github.com/lorekeep/lorekeep/internal/schemas"
	"github.com/lorekeep/lorekeep/internal/store"
	"github.com/lorekeep/lorekeep/internal/utils"
)

// ActionHandler handles player action and minigame result routes
type ActionHandler struct {
	Reg *repository.Registry
}

// GetAction handles GET /api/action/:id
// @Summary Get an action
// @Tags Narrative
// @Produce json
// @Param id path string true "Action ID or 'new'"
// @Success 200 {object} schemas.ActionResponse
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /action/{id} [get]
func (h *ActionHandler) GetAction(c *fiber.Ctx) error {
	return getEntity(c, h.Reg.Actions, "Action",
		func(_ *models.User) *models.Action { return models.DefaultAction() },
		func(a *models.Action) (*schemas.ActionResponse, error) {
			return schemas.ExpandAction(h.Reg, a)
		})
}

// PostAction handles POST /api/action/:id
// @Summary Create or update an action
// @Tags Narrative
// @Accept json
// @Produce json
// @Param id path string true "Action ID or 'new'"
// @Param payload body schemas.ActionPayload true "Action fields"
// @Success 200 {object} schemas.ActionResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /action/{id} [post]
func (h *ActionHandler) PostAction(c *fiber.Ctx) error {
	return postEntity(c, h.Reg.Actions, "Action",
		func(_ *models.User) *models.Action { return models.DefaultAction() },
		schemas.FlattenAction,
		func(a *models.Action) (*schemas.ActionResponse, error) {
			return schemas.ExpandAction(h.Reg, a)
		})
}

// ListActions handles GET /api/actions?encounter_id=...
// @Summary List the actions of an encounter
// @Tags Narrative
// @Produce json
// @Param encounter_id query string true "Encounter ID"
// @Success 200 {array} schemas.ActionResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /actions [get]
func (h *ActionHandler) ListActions(c *fiber.Ctx) error {
	if _, ok := currentUser(c); !ok {
		return utils.ForbiddenResponse(c, "Not authenticated")
	}

	encounterID, err := requireParentID(c, "encounter_id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "data.payload")
	}

	actions := h.Reg.Actions.Query([]store.Filter{
		{Field: "encounter_id", Op: store.OpEqual, Value: encounterID},
	}, 0)

	responses := make([]*schemas.ActionResponse, 0, len(actions))
	for _, a := range actions {
		resp, expandErr := schemas.ExpandAction(h.Reg, a)
		if expandErr != nil {
			return respondExpanded(c, nil, expandErr, fiber.StatusOK)
		}
		responses = append(responses, resp)
	}
	return c.Status(fiber.StatusOK).JSON(responses)
}

// GetMinigame handles GET /api/minigame/:id
// @Summary Get a minigame result
// @Tags Narrative
// @Produce json
// @Param id path string true "Minigame result ID or 'new'"
// @Success 200 {object} schemas.MinigameResultResponse
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /minigame/{id} [get]
func (h *ActionHandler) GetMinigame(c *fiber.Ctx) error {
	return getEntity(c, h.Reg.Minigames, "Minigame result",
		func(_ *models.User) *models.MinigameResult { return models.DefaultMinigameResult() },
		func(m *models.MinigameResult) (*schemas.MinigameResultResponse, error) {
			return schemas.ExpandMinigameResult(h.Reg, m)
		})
}

// PostMinigame handles POST /api/minigame/:id
// @Summary Create or update a minigame result
// @Tags Narrative
// @Accept json
// @Produce json
// @Param id path string true "Minigame result ID or 'new'"
// @Param payload body schemas.MinigameResultPayload true "Minigame result fields"
// @Success 200 {object} schemas.MinigameResultResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /minigame/{id} [post]
func (h *ActionHandler) PostMinigame(c *fiber.Ctx) error {
	return postEntity(c, h.Reg.Minigames, "Minigame result",
		func(_ *models.User) *models.MinigameResult { return models.DefaultMinigameResult() },
		schemas.FlattenMinigameResult,
		func(m *models.MinigameResult) (*schemas.MinigameResultResponse, error) {
			return schemas.ExpandMinigameResult(h.Reg, m)
		})
}
