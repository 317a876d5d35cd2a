package schemas

import (
	"github.com/lorekeep/lorekeep/internal/models"
	"github.com/lorekeep/lorekeep/internal/types"
)

// Payload shapes accepted by the POST endpoints. Every field is optional;
// absent fields keep the stored or default value. Reference fields accept
// either a bare id string or a nested object with an "id" (types.Ref).
// Immutable fields (id, created_at, creator) are never taken from a payload.

type UserPayload struct {
	Username        *string `json:"username"`
	Email           *string `json:"email"`
	PasswordCurrent *string `json:"password_current"`
	PasswordNew     *string `json:"password_new"`
}

type WorldPayload struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Contexts    types.RefList    `json:"contexts"`
	Blueprints  types.RefList    `json:"blueprints"`
	Objects     types.RefList    `json:"objects"`
	Settings    *models.Settings `json:"settings"`
	IsPublic    *bool            `json:"is_public"`
}

type CampaignPayload struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	World       *types.Ref       `json:"world"`
	Contexts    types.RefList    `json:"contexts"`
	Blueprints  types.RefList    `json:"blueprints"`
	Objects     types.RefList    `json:"objects"`
	Members     types.RefList    `json:"members"`
	Eras        types.RefList    `json:"eras"`
	Settings    *models.Settings `json:"settings"`
	IsPublic    *bool            `json:"is_public"`
}

type MemberPayload struct {
	User     *types.Ref `json:"user"`
	Campaign *types.Ref `json:"campaign"`
	Role     *string    `json:"role"`
	Status   *string    `json:"status"`
	Sleeve   *types.Ref `json:"sleeve"`
}

type ContextPayload struct {
	Name    *string `json:"name"`
	Content *string `json:"content"`
}

type BlueprintPayload struct {
	Name        *string                            `json:"name"`
	Description *string                            `json:"description"`
	IsPublic    *bool                              `json:"is_public"`
	IsDeveloper *bool                              `json:"is_developer"`
	Fields      types.FlexList[models.CustomField] `json:"fields"`
}

type ObjectPayload struct {
	Name        *string                            `json:"name"`
	Description *string                            `json:"description"`
	Blueprint   *types.Ref                         `json:"blueprint"`
	Fields      types.FlexList[models.CustomField] `json:"fields"`
}

type ObjectivePayload struct {
	Name     *string       `json:"name"`
	Task     *string       `json:"task"`
	Progress *int          `json:"progress"`
	Children types.RefList `json:"children"`
	Parent   *types.Ref    `json:"parent"`
}

type EraPayload struct {
	Campaign    *types.Ref    `json:"campaign"`
	Name        *string       `json:"name"`
	Description *string       `json:"description"`
	Objective   *types.Ref    `json:"objective"`
	Chapters    types.RefList `json:"chapters"`
}

type ChapterPayload struct {
	Era         *types.Ref    `json:"era"`
	Name        *string       `json:"name"`
	Description *string       `json:"description"`
	Objective   *types.Ref    `json:"objective"`
	Encounters  types.RefList `json:"encounters"`
}

type EncounterPayload struct {
	Chapter     *types.Ref    `json:"chapter"`
	Name        *string       `json:"name"`
	Description *string       `json:"description"`
	Actions     types.RefList `json:"actions"`
}

type ActionPayload struct {
	Encounter       *types.Ref `json:"encounter"`
	OwnerMember     *types.Ref `json:"owner_member"`
	CharacterObject *types.Ref `json:"character_object"`
	Content         *string    `json:"content"`
	Type            *string    `json:"type"`
	DMResponse      *string    `json:"dm_response"`
	Minigame        *types.Ref `json:"minigame"`
}

type MinigameResultPayload struct {
	Action  *types.Ref      `json:"action"`
	Type    *string         `json:"type"`
	Result  *string         `json:"result"`
	Details *map[string]any `json:"details"`
}
