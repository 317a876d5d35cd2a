package models

import (
	"fmt"
	"time"
)

// Collection names, one per entity type.
const (
	CollectionUsers      = "users"
	CollectionWorlds     = "worlds"
	CollectionCampaigns  = "campaigns"
	CollectionMembers    = "members"
	CollectionContexts   = "contexts"
	CollectionBlueprints = "blueprints"
	CollectionObjects    = "objects"
	CollectionObjectives = "objectives"
	CollectionEras       = "eras"
	CollectionChapters   = "chapters"
	CollectionEncounters = "encounters"
	CollectionActions    = "actions"
	CollectionMinigames  = "minigames"
)

// Settings gates read visibility at the route layer.
type Settings struct {
	IsPublic bool `json:"is_public"`
}

// FieldType discriminates CustomField values.
type FieldType string

const (
	FieldInt       FieldType = "int"
	FieldStr       FieldType = "str"
	FieldDropdown  FieldType = "dropdown"
	FieldBool      FieldType = "bool"
	FieldBlueprint FieldType = "blueprint"
)

// CustomField is a value object describing one field of a blueprint or an
// object instantiated from it. Value is string-encoded; for FieldBlueprint it
// may hold a blueprint id.
type CustomField struct {
	Name           string    `json:"name"`
	Type           FieldType `json:"type"`
	Value          string    `json:"value"`
	Options        []string  `json:"options,omitempty"`
	LinkedBehavior string    `json:"linked_behavior,omitempty"`
}

// User is an account. The password hash belongs to the auth collaborator and
// is never exposed through the API.
type User struct {
	Base
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
}

// World is a setting that campaigns can take place in.
type World struct {
	Base
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	CreatorID    string   `json:"creator_id"`
	ContextIDs   []string `json:"context_ids"`
	BlueprintIDs []string `json:"blueprint_ids"`
	ObjectIDs    []string `json:"object_ids"`
	Settings     Settings `json:"settings"`
}

func (w *World) Owner() string      { return w.CreatorID }
func (w *World) SetOwner(id string) { w.CreatorID = id }
func (w *World) Public() bool       { return w.Settings.IsPublic }

// Campaign is a playthrough, optionally bound to a world.
type Campaign struct {
	Base
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	CreatorID    string   `json:"creator_id"`
	WorldID      string   `json:"world_id"`
	ContextIDs   []string `json:"context_ids"`
	BlueprintIDs []string `json:"blueprint_ids"`
	ObjectIDs    []string `json:"object_ids"`
	MemberIDs    []string `json:"member_ids"`
	EraIDs       []string `json:"era_ids"`
	Settings     Settings `json:"settings"`
}

func (c *Campaign) Owner() string      { return c.CreatorID }
func (c *Campaign) SetOwner(id string) { c.CreatorID = id }
func (c *Campaign) Public() bool       { return c.Settings.IsPublic }

// Member is a seat in a campaign, optionally held by a user and optionally
// playing a character object (its sleeve).
type Member struct {
	Base
	UserID     string `json:"user_id"`
	CampaignID string `json:"campaign_id"`
	Role       string `json:"role"`
	Status     string `json:"status"`
	SleeveID   string `json:"sleeve_id"`
}

// Context is a free-form lore note attachable to worlds and campaigns.
type Context struct {
	Base
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Blueprint is a customizable entity template.
type Blueprint struct {
	Base
	Name        string        `json:"name"`
	Description string        `json:"description"`
	CreatorID   string        `json:"creator_id"`
	IsPublic    bool          `json:"is_public"`
	IsDeveloper bool          `json:"is_developer"`
	Fields      []CustomField `json:"fields"`
}

func (b *Blueprint) Owner() string      { return b.CreatorID }
func (b *Blueprint) SetOwner(id string) { b.CreatorID = id }
func (b *Blueprint) Public() bool       { return b.IsPublic }

// Object is an instance of a blueprint with concrete field values.
type Object struct {
	Base
	Name        string        `json:"name"`
	Description string        `json:"description"`
	CreatorID   string        `json:"creator_id"`
	BlueprintID string        `json:"blueprint_id"`
	Fields      []CustomField `json:"fields"`
}

func (o *Object) Owner() string      { return o.CreatorID }
func (o *Object) SetOwner(id string) { o.CreatorID = id }

// Objective is a node in a self-referential task tree.
type Objective struct {
	Base
	Name        string   `json:"name"`
	Task        string   `json:"task"`
	Progress    int      `json:"progress"`
	ChildrenIDs []string `json:"children_ids"`
	ParentID    string   `json:"parent_id"`
}

// Era is the top level of the narrative chain of a campaign.
type Era struct {
	Base
	CampaignID  string   `json:"campaign_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ObjectiveID string   `json:"objective_id"`
	ChapterIDs  []string `json:"chapter_ids"`
}

// Chapter groups encounters within an era.
type Chapter struct {
	Base
	EraID        string   `json:"era_id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	ObjectiveID  string   `json:"objective_id"`
	EncounterIDs []string `json:"encounter_ids"`
}

// Encounter groups player actions within a chapter.
type Encounter struct {
	Base
	ChapterID   string   `json:"chapter_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ActionIDs   []string `json:"action_ids"`
}

// Action is a single player move within an encounter.
type Action struct {
	Base
	EncounterID       string `json:"encounter_id"`
	OwnerMemberID     string `json:"owner_member_id"`
	CharacterObjectID string `json:"character_object_id"`
	Content           string `json:"content"`
	Type              string `json:"type"`
	DMResponse        string `json:"dm_response"`
	MinigameID        string `json:"minigame_id"`
}

// MinigameResult records the outcome of a minigame attached to an action.
type MinigameResult struct {
	Base
	ActionID    string         `json:"action_id"`
	Type        string         `json:"type"`
	Result      string         `json:"result"`
	Details     map[string]any `json:"details"`
	CompletedAt time.Time      `json:"completed_at"`
}

// DefaultWorld returns the template served for GET /world/new.
func DefaultWorld(creator *User) *World {
	return &World{
		Name:        "My World",
		Description: fmt.Sprintf("This world was created by %s.", creator.Username),
		CreatorID:   creator.ID,
		Settings:    Settings{IsPublic: true},
	}
}

// DefaultCampaign returns the template served for GET /campaign/new.
func DefaultCampaign(creator *User) *Campaign {
	return &Campaign{
		Name:        "My Campaign",
		Description: fmt.Sprintf("This campaign was created by %s.", creator.Username),
		CreatorID:   creator.ID,
		Settings:    Settings{IsPublic: true},
	}
}

// DefaultBlueprint returns the template served for GET /blueprint/new.
func DefaultBlueprint(creator *User) *Blueprint {
	return &Blueprint{
		Name:      "My Blueprint",
		CreatorID: creator.ID,
		Fields:    []CustomField{},
	}
}

// DefaultObject returns the template served for GET /object/new.
func DefaultObject(creator *User) *Object {
	return &Object{
		Name:      "My Object",
		CreatorID: creator.ID,
		Fields:    []CustomField{},
	}
}

// DefaultContext returns the template served for GET /context/new.
func DefaultContext() *Context {
	return &Context{Name: "New Context"}
}

// DefaultObjective returns the template served for GET /objective/new.
func DefaultObjective() *Objective {
	return &Objective{Name: "New Objective"}
}

// DefaultMember returns the template served for GET /member/new.
func DefaultMember() *Member {
	return &Member{Role: "player", Status: "active"}
}

// DefaultEra returns the template served for GET /era/new.
func DefaultEra() *Era {
	return &Era{Name: "New Era"}
}

// DefaultChapter returns the template served for GET /chapter/new.
func DefaultChapter() *Chapter {
	return &Chapter{Name: "New Chapter"}
}

// DefaultEncounter returns the template served for GET /encounter/new.
func DefaultEncounter() *Encounter {
	return &Encounter{Name: "New Encounter"}
}

// DefaultAction returns the template served for GET /action/new.
func DefaultAction() *Action {
	return &Action{Type: "narrative"}
}

// DefaultMinigameResult returns the template served for GET /minigame/new.
func DefaultMinigameResult() *MinigameResult {
	return &MinigameResult{Details: map[string]any{}}
}
