package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lorekeep/lorekeep/internal/models"
	"github.com/lorekeep/lorekeep/internal/repository"
	"github.com/lorekeep/lorekeep/internal/schemas"
	"github.com/lorekeep/lorekeep/internal/store"
	"github.com/lorekeep/lorekeep/internal/utils"
)

// CampaignHandler handles campaign routes
type CampaignHandler struct {
	Reg *repository.Registry
}

// GetCampaign handles GET /api/campaign/:id
// @Summary Get a campaign
// @Description Get a campaign by id, expanded; the id "new" returns an unsaved default template
// @Tags Library
// @Produce json
// @Param id path string true "Campaign ID or 'new'"
// @Success 200 {object} schemas.CampaignResponse
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /campaign/{id} [get]
func (h *CampaignHandler) GetCampaign(c *fiber.Ctx) error {
	return getEntity(c, h.Reg.Campaigns, "Campaign",
		models.DefaultCampaign,
		func(cp *models.Campaign) (*schemas.CampaignResponse, error) {
			return schemas.ExpandCampaign(h.Reg, cp)
		})
}

// PostCampaign handles POST /api/campaign/:id
// @Summary Create or update a campaign
// @Description Create a campaign when id is "new", otherwise update the existing campaign
// @Tags Library
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID or 'new'"
// @Param payload body schemas.CampaignPayload true "Campaign fields"
// @Success 200 {object} schemas.CampaignResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /campaign/{id} [post]
func (h *CampaignHandler) PostCampaign(c *fiber.Ctx) error {
	return postEntity(c, h.Reg.Campaigns, "Campaign",
		models.DefaultCampaign,
		schemas.FlattenCampaign,
		func(cp *models.Campaign) (*schemas.CampaignResponse, error) {
			return schemas.ExpandCampaign(h.Reg, cp)
		})
}

// ListCampaigns handles GET /api/campaigns
// @Summary List the requester's campaigns
// @Tags Library
// @Produce json
// @Success 200 {array} schemas.CampaignResponse
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /campaigns [get]
func (h *CampaignHandler) ListCampaigns(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return utils.ForbiddenResponse(c, "Not authenticated")
	}

	campaigns := h.Reg.Campaigns.Query([]store.Filter{
		{Field: "creator_id", Op: store.OpEqual, Value: user.ID},
	}, 0)

	responses := make([]*schemas.CampaignResponse, 0, len(campaigns))
	for _, cp := range campaigns {
		resp, err := schemas.ExpandCampaign(h.Reg, cp)
		if err != nil {
			return respondExpanded(c, nil, err, fiber.StatusOK)
		}
		responses = append(responses, resp)
	}
	return c.Status(fiber.StatusOK).JSON(responses)
}
