package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lorekeep/lorekeep/internal/models"
	"github.com/lorekeep/lorekeep/internal/repository"
	"github.com/lorekeep/lorekeep/internal/schemas"
	"github.com/lorekeep/lorekeep/internal/store"
	"github.com/lorekeep/lorekeep/internal/utils"
)

// NarrativeHandler handles the era, chapter and encounter routes that make up
// the narrative chain of a campaign.
type NarrativeHandler struct {
	Reg *repository.Registry
}

// GetEra handles GET /api/era/:id
// @Summary Get an era
// @Tags Narrative
// @Produce json
// @Param id path string true "Era ID or 'new'"
// @Success 200 {object} schemas.EraResponse
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /era/{id} [get]
func (h *NarrativeHandler) GetEra(c *fiber.Ctx) error {
	return getEntity(c, h.Reg.Eras, "Era",
		func(_ *models.User) *models.Era { return models.DefaultEra() },
		func(e *models.Era) (*schemas.EraResponse, error) {
			return schemas.ExpandEra(h.Reg, e)
		})
}

// PostEra handles POST /api/era/:id
// @Summary Create or update an era
// @Tags Narrative
// @Accept json
// @Produce json
// @Param id path string true "Era ID or 'new'"
// @Param payload body schemas.EraPayload true "Era fields"
// @Success 200 {object} schemas.EraResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /era/{id} [post]
func (h *NarrativeHandler) PostEra(c *fiber.Ctx) error {
	return postEntity(c, h.Reg.Eras, "Era",
		func(_ *models.User) *models.Era { return models.DefaultEra() },
		schemas.FlattenEra,
		func(e *models.Era) (*schemas.EraResponse, error) {
			return schemas.ExpandEra(h.Reg, e)
		})
}

// ListEras handles GET /api/eras?campaign_id=...
// @Summary List the eras of a campaign
// @Tags Narrative
// @Produce json
// @Param campaign_id query string true "Campaign ID"
// @Success 200 {array} schemas.EraResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /eras [get]
func (h *NarrativeHandler) ListEras(c *fiber.Ctx) error {
	return h.listByParent(c, "campaign_id", func(parentID string) (any, error) {
		eras := h.Reg.Eras.Query([]store.Filter{
			{Field: "campaign_id", Op: store.OpEqual, Value: parentID},
		}, 0)
		responses := make([]*schemas.EraResponse, 0, len(eras))
		for _, e := range eras {
			resp, err := schemas.ExpandEra(h.Reg, e)
			if err != nil {
				return nil, err
			}
			responses = append(responses, resp)
		}
		return responses, nil
	})
}

// GetChapter handles GET /api/chapter/:id
// @Summary Get a chapter
// @Tags Narrative
// @Produce json
// @Param id path string true "Chapter ID or 'new'"
// @Success 200 {object} schemas.ChapterResponse
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /chapter/{id} [get]
func (h *NarrativeHandler) GetChapter(c *fiber.Ctx) error {
	return getEntity(c, h.Reg.Chapters, "Chapter",
		func(_ *models.User) *models.Chapter { return models.DefaultChapter() },
		func(ch *models.Chapter) (*schemas.ChapterResponse, error) {
			return schemas.ExpandChapter(h.Reg, ch)
		})
}

// PostChapter handles POST /api/chapter/:id
// @Summary Create or update a chapter
// @Tags Narrative
// @Accept json
// @Produce json
// @Param id path string true "Chapter ID or 'new'"
// @Param payload body schemas.ChapterPayload true "Chapter fields"
// @Success 200 {object} schemas.ChapterResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /chapter/{id} [post]
func (h *NarrativeHandler) PostChapter(c *fiber.Ctx) error {
	return postEntity(c, h.Reg.Chapters, "Chapter",
		func(_ *models.User) *models.Chapter { return models.DefaultChapter() },
		schemas.FlattenChapter,
		func(ch *models.Chapter) (*schemas.ChapterResponse, error) {
			return schemas.ExpandChapter(h.Reg, ch)
		})
}

// ListChapters handles GET /api/chapters?era_id=...
// @Summary List the chapters of an era
// @Tags Narrative
// @Produce json
// @Param era_id query string true "Era ID"
// @Success 200 {array} schemas.ChapterResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /chapters [get]
func (h *NarrativeHandler) ListChapters(c *fiber.Ctx) error {
	return h.listByParent(c, "era_id", func(parentID string) (any, error) {
		chapters := h.Reg.Chapters.Query([]store.Filter{
			{Field: "era_id", Op: store.OpEqual, Value: parentID},
		}, 0)
		responses := make([]*schemas.ChapterResponse, 0, len(chapters))
		for _, ch := range chapters {
			resp, err := schemas.ExpandChapter(h.Reg, ch)
			if err != nil {
				return nil, err
			}
			responses = append(responses, resp)
		}
		return responses, nil
	})
}

// GetEncounter handles GET /api/encounter/:id
// @Summary Get an encounter
// @Tags Narrative
// @Produce json
// @Param id path string true "Encounter ID or 'new'"
// @Success 200 {object} schemas.EncounterResponse
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /encounter/{id} [get]
func (h *NarrativeHandler) GetEncounter(c *fiber.Ctx) error {
	return getEntity(c, h.Reg.Encounters, "Encounter",
		func(_ *models.User) *models.Encounter { return models.DefaultEncounter() },
		func(enc *models.Encounter) (*schemas.EncounterResponse, error) {
			return schemas.ExpandEncounter(h.Reg, enc)
		})
}

// PostEncounter handles POST /api/encounter/:id
// @Summary Create or update an encounter
// @Tags Narrative
// @Accept json
// @Produce json
// @Param id path string true "Encounter ID or 'new'"
// @Param payload body schemas.EncounterPayload true "Encounter fields"
// @Success 200 {object} schemas.EncounterResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /encounter/{id} [post]
func (h *NarrativeHandler) PostEncounter(c *fiber.Ctx) error {
	return postEntity(c, h.Reg.Encounters, "Encounter",
		func(_ *models.User) *models.Encounter { return models.DefaultEncounter() },
		schemas.FlattenEncounter,
		func(enc *models.Encounter) (*schemas.EncounterResponse, error) {
			return schemas.ExpandEncounter(h.Reg, enc)
		})
}

// ListEncounters handles GET /api/encounters?chapter_id=...
// @Summary List the encounters of a chapter
// @Tags Narrative
// @Produce json
// @Param chapter_id query string true "Chapter ID"
// @Success 200 {array} schemas.EncounterResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /encounters [get]
func (h *NarrativeHandler) ListEncounters(c *fiber.Ctx) error {
	return h.listByParent(c, "chapter_id", func(parentID string) (any, error) {
		encounters := h.Reg.Encounters.Query([]store.Filter{
			{Field: "chapter_id", Op: store.OpEqual, Value: parentID},
		}, 0)
		responses := make([]*schemas.EncounterResponse, 0, len(encounters))
		for _, enc := range encounters {
			resp, err := schemas.ExpandEncounter(h.Reg, enc)
			if err != nil {
				return nil, err
			}
			responses = append(responses, resp)
		}
		return responses, nil
	})
}

func (h *NarrativeHandler) listByParent(c *fiber.Ctx, param string, list func(string) (any, error)) error {
	if _, ok := currentUser(c); !ok {
		return utils.ForbiddenResponse(c, "Not authenticated")
	}

	parentID, err := requireParentID(c, param)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "data.payload")
	}

	responses, err := list(parentID)
	return respondExpanded(c, responses, err, fiber.StatusOK)
}
