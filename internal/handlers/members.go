package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lorekeep/lorekeep/internal/models"
	"github.com/lorekeep/lorekeep/internal/repository"
	"github.com/lorekeep/lorekeep/internal/schemas"
	"github.com/lorekeep/lorekeep/internal/store"
	"github.com/lorekeep/lorekeep/internal/utils"
)

// MemberHandler handles campaign member routes
type MemberHandler struct {
	Reg *repository.Registry
}

// GetMember handles GET /api/member/:id
// @Summary Get a campaign member
// @Tags Campaign
// @Produce json
// @Param id path string true "Member ID or 'new'"
// @Success 200 {object} schemas.MemberResponse
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /member/{id} [get]
func (h *MemberHandler) GetMember(c *fiber.Ctx) error {
	return getEntity(c, h.Reg.Members, "Member",
		func(_ *models.User) *models.Member { return models.DefaultMember() },
		func(m *models.Member) (*schemas.MemberResponse, error) {
			return schemas.ExpandMember(h.Reg, m)
		})
}

// PostMember handles POST /api/member/:id
// @Summary Create or update a campaign member
// @Tags Campaign
// @Accept json
// @Produce json
// @Param id path string true "Member ID or 'new'"
// @Param payload body schemas.MemberPayload true "Member fields"
// @Success 200 {object} schemas.MemberResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /member/{id} [post]
func (h *MemberHandler) PostMember(c *fiber.Ctx) error {
	return postEntity(c, h.Reg.Members, "Member",
		func(_ *models.User) *models.Member { return models.DefaultMember() },
		schemas.FlattenMember,
		func(m *models.Member) (*schemas.MemberResponse, error) {
			return schemas.ExpandMember(h.Reg, m)
		})
}

// ListMembers handles GET /api/members?campaign_id=...
// @Summary List the members of a campaign
// @Tags Campaign
// @Produce json
// @Param campaign_id query string true "Campaign ID"
// @Success 200 {array} schemas.MemberResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /members [get]
func (h *MemberHandler) ListMembers(c *fiber.Ctx) error {
	if _, ok := currentUser(c); !ok {
		return utils.ForbiddenResponse(c, "Not authenticated")
	}

	campaignID, err := requireParentID(c, "campaign_id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "data.payload")
	}

	members := h.Reg.Members.Query([]store.Filter{
		{Field: "campaign_id", Op: store.OpEqual, Value: campaignID},
	}, 0)

	responses := make([]*schemas.MemberResponse, 0, len(members))
	for _, m := range members {
		resp, expandErr := schemas.ExpandMember(h.Reg, m)
		if expandErr != nil {
			return respondExpanded(c, nil, expandErr, fiber.StatusOK)
		}
		responses = append(responses, resp)
	}
	return c.Status(fiber.StatusOK).JSON(responses)
}
