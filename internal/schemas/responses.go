package schemas

import (
	"time"

	"github.com/lorekeep/lorekeep/internal/models"
)

// Response shapes returned by the API. Reference fields carry the fully
// expanded related records instead of bare ids; every shape is defined here
// in one place because the graph is mutually recursive.

// UserResponse never exposes credentials.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type WorldResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	Creator     *UserResponse        `json:"creator,omitempty"`
	Contexts    []*ContextResponse   `json:"contexts"`
	Blueprints  []*BlueprintResponse `json:"blueprints"`
	Objects     []*ObjectResponse    `json:"objects"`
	Settings    models.Settings      `json:"settings"`
}

type CampaignResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	Creator     *UserResponse        `json:"creator,omitempty"`
	World       *WorldResponse       `json:"world,omitempty"`
	Contexts    []*ContextResponse   `json:"contexts"`
	Blueprints  []*BlueprintResponse `json:"blueprints"`
	Objects     []*ObjectResponse    `json:"objects"`
	Members     []*MemberResponse    `json:"members"`
	Eras        []*EraResponse       `json:"eras"`
	Settings    models.Settings      `json:"settings"`
}

type MemberResponse struct {
	ID       string            `json:"id"`
	User     *UserResponse     `json:"user,omitempty"`
	Campaign *CampaignResponse `json:"campaign,omitempty"`
	Role     string            `json:"role"`
	Status   string            `json:"status"`
	Sleeve   *ObjectResponse   `json:"sleeve,omitempty"`
}

type ContextResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

type BlueprintResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	Creator     *UserResponse        `json:"creator,omitempty"`
	IsPublic    bool                 `json:"is_public"`
	IsDeveloper bool                 `json:"is_developer"`
	Fields      []models.CustomField `json:"fields"`
}

type ObjectResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	Creator     *UserResponse        `json:"creator,omitempty"`
	Blueprint   *BlueprintResponse   `json:"blueprint,omitempty"`
	Fields      []models.CustomField `json:"fields"`
}

type ObjectiveResponse struct {
	ID       string               `json:"id"`
	Name     string               `json:"name"`
	Task     string               `json:"task"`
	Progress int                  `json:"progress"`
	Children []*ObjectiveResponse `json:"children"`
	Parent   *ObjectiveResponse   `json:"parent,omitempty"`
}

type EraResponse struct {
	ID          string             `json:"id"`
	Campaign    *CampaignResponse  `json:"campaign,omitempty"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Objective   *ObjectiveResponse `json:"objective,omitempty"`
	Chapters    []*ChapterResponse `json:"chapters"`
}

type ChapterResponse struct {
	ID          string               `json:"id"`
	Era         *EraResponse         `json:"era,omitempty"`
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	Objective   *ObjectiveResponse   `json:"objective,omitempty"`
	Encounters  []*EncounterResponse `json:"encounters"`
}

type EncounterResponse struct {
	ID          string            `json:"id"`
	Chapter     *ChapterResponse  `json:"chapter,omitempty"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Actions     []*ActionResponse `json:"actions"`
}

type ActionResponse struct {
	ID              string                  `json:"id"`
	Encounter       *EncounterResponse      `json:"encounter,omitempty"`
	OwnerMember     *MemberResponse         `json:"owner_member,omitempty"`
	CharacterObject *ObjectResponse         `json:"character_object,omitempty"`
	Content         string                  `json:"content"`
	Type            string                  `json:"type"`
	DMResponse      string                  `json:"dm_response,omitempty"`
	Minigame        *MinigameResultResponse `json:"minigame,omitempty"`
}

type MinigameResultResponse struct {
	ID          string          `json:"id"`
	Action      *ActionResponse `json:"action,omitempty"`
	Type        string          `json:"type"`
	Result      string          `json:"result"`
	Details     map[string]any  `json:"details"`
	CompletedAt time.Time       `json:"completed_at"`
}

// HomeResponse is the landing page aggregate.
type HomeResponse struct {
	User      *UserResponse  `json:"user"`
	Campaigns []CampaignCard `json:"campaigns"`
}

// CampaignCard is the abbreviated campaign shape on the home page.
type CampaignCard struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsPublic    bool   `json:"is_public"`
}
