package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lorekeep/lorekeep/internal/repository"
	"github.com/lorekeep/lorekeep/internal/schemas"
	"github.com/lorekeep/lorekeep/internal/store"
	"github.com/lorekeep/lorekeep/internal/utils"
)

// HomeHandler handles the landing page aggregate route
type HomeHandler struct {
	Reg *repository.Registry
}

// GetHome handles GET /api/home
// @Summary Get the landing page data
// @Description The requester's profile plus abbreviated cards for the campaigns they created
// @Tags Account
// @Produce json
// @Success 200 {object} schemas.HomeResponse
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /home [get]
func (h *HomeHandler) GetHome(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return utils.ForbiddenResponse(c, "Not authenticated")
	}

	campaigns := h.Reg.Campaigns.Query([]store.Filter{
		{Field: "creator_id", Op: store.OpEqual, Value: user.ID},
	}, 0)

	resp := schemas.HomeResponse{
		User:      schemas.ExpandUser(user),
		Campaigns: make([]schemas.CampaignCard, 0, len(campaigns)),
	}
	for _, cp := range campaigns {
		resp.Campaigns = append(resp.Campaigns, schemas.CampaignCard{
			ID:          cp.ID,
			Name:        cp.Name,
			Description: cp.Description,
			IsPublic:    cp.Settings.IsPublic,
		})
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}
