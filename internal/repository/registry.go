package repository

import (
	"github.com/lorekeep/lorekeep/internal/models"
	"github.com/lorekeep/lorekeep/internal/store"
)

// Registry holds one repository per entity type, constructed once at process
// start and passed into the handlers.
type Registry struct {
	Users      *Repository[models.User, *models.User]
	Worlds     *Repository[models.World, *models.World]
	Campaigns  *Repository[models.Campaign, *models.Campaign]
	Members    *Repository[models.Member, *models.Member]
	Contexts   *Repository[models.Context, *models.Context]
	Blueprints *Repository[models.Blueprint, *models.Blueprint]
	Objects    *Repository[models.Object, *models.Object]
	Objectives *Repository[models.Objective, *models.Objective]
	Eras       *Repository[models.Era, *models.Era]
	Chapters   *Repository[models.Chapter, *models.Chapter]
	Encounters *Repository[models.Encounter, *models.Encounter]
	Actions    *Repository[models.Action, *models.Action]
	Minigames  *Repository[models.MinigameResult, *models.MinigameResult]
}

// NewRegistry wires every repository to the given store.
func NewRegistry(s store.RecordStore) *Registry {
	return &Registry{
		Users:      New[models.User](s, models.CollectionUsers),
		Worlds:     New[models.World](s, models.CollectionWorlds),
		Campaigns:  New[models.Campaign](s, models.CollectionCampaigns),
		Members:    New[models.Member](s, models.CollectionMembers),
		Contexts:   New[models.Context](s, models.CollectionContexts),
		Blueprints: New[models.Blueprint](s, models.CollectionBlueprints),
		Objects:    New[models.Object](s, models.CollectionObjects),
		Objectives: New[models.Objective](s, models.CollectionObjectives),
		Eras:       New[models.Era](s, models.CollectionEras),
		Chapters:   New[models.Chapter](s, models.CollectionChapters),
		Encounters: New[models.Encounter](s, models.CollectionEncounters),
		Actions:    New[models.Action](s, models.CollectionActions),
		Minigames:  New[models.MinigameResult](s, models.CollectionMinigames),
	}
}
