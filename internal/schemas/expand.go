package schemas

import (
	"errors"
	"fmt"

	"github.com/lorekeep/lorekeep/internal/models"
	"github.com/lorekeep/lorekeep/internal/repository"
)

// ErrDanglingReference reports a mandatory foreign key that no longer
// resolves to a record. It signals data inconsistency, not a bad request.
var ErrDanglingReference = errors.New("referenced entity not found")

func danglingErr(collection, id string) error {
	return fmt.Errorf("%w: %s/%s", ErrDanglingReference, collection, id)
}

// expandGuard tracks the collection-qualified ids on the active expansion
// path. Re-entering one means the stored graph has a cycle; the offending
// reference expands to absent instead of recursing.
type expandGuard map[string]struct{}

func (g expandGuard) enter(collection, id string) bool {
	key := collection + "/" + id
	if _, ok := g[key]; ok {
		return false
	}
	g[key] = struct{}{}
	return true
}

func (g expandGuard) leave(collection, id string) {
	delete(g, collection+"/"+id)
}

// Mandatory references follow two rules: an empty id (template instances)
// expands to absent, a non-empty id that does not resolve is a hard
// ErrDanglingReference. Optional references expand to absent in both cases.

// ExpandUser converts a user to its response shape. Users reference nothing.
func ExpandUser(u *models.User) *UserResponse {
	return &UserResponse{ID: u.ID, Username: u.Username, Email: u.Email}
}

// ExpandWorld resolves a world's references into a nested response.
func ExpandWorld(reg *repository.Registry, w *models.World) (*WorldResponse, error) {
	return expandWorld(reg, w, expandGuard{})
}

func expandWorld(reg *repository.Registry, w *models.World, g expandGuard) (*WorldResponse, error) {
	if !g.enter(models.CollectionWorlds, w.ID) {
		return nil, nil
	}
	defer g.leave(models.CollectionWorlds, w.ID)

	creator, err := expandCreator(reg, w.CreatorID)
	if err != nil {
		return nil, err
	}
	blueprints, err := expandBlueprintList(reg, w.BlueprintIDs)
	if err != nil {
		return nil, err
	}
	objects, err := expandObjectList(reg, w.ObjectIDs, g)
	if err != nil {
		return nil, err
	}

	return &WorldResponse{
		ID:          w.ID,
		Name:        w.Name,
		Description: w.Description,
		Creator:     creator,
		Contexts:    expandContextList(reg, w.ContextIDs),
		Blueprints:  blueprints,
		Objects:     objects,
		Settings:    w.Settings,
	}, nil
}

// ExpandCampaign resolves a campaign's references into a nested response.
func ExpandCampaign(reg *repository.Registry, c *models.Campaign) (*CampaignResponse, error) {
	return expandCampaign(reg, c, expandGuard{})
}

func expandCampaign(reg *repository.Registry, c *models.Campaign, g expandGuard) (*CampaignResponse, error) {
	if !g.enter(models.CollectionCampaigns, c.ID) {
		return nil, nil
	}
	defer g.leave(models.CollectionCampaigns, c.ID)

	creator, err := expandCreator(reg, c.CreatorID)
	if err != nil {
		return nil, err
	}

	var world *WorldResponse
	if c.WorldID != "" {
		if w, ok := reg.Worlds.Get(c.WorldID); ok {
			if world, err = expandWorld(reg, w, g); err != nil {
				return nil, err
			}
		}
	}

	blueprints, err := expandBlueprintList(reg, c.BlueprintIDs)
	if err != nil {
		return nil, err
	}
	objects, err := expandObjectList(reg, c.ObjectIDs, g)
	if err != nil {
		return nil, err
	}

	members := make([]*MemberResponse, 0, len(c.MemberIDs))
	for _, id := range c.MemberIDs {
		m, ok := reg.Members.Get(id)
		if !ok {
			continue
		}
		resp, err := expandMember(reg, m, g)
		if err != nil {
			return nil, err
		}
		if resp != nil {
			members = append(members, resp)
		}
	}

	eras := make([]*EraResponse, 0, len(c.EraIDs))
	for _, id := range c.EraIDs {
		e, ok := reg.Eras.Get(id)
		if !ok {
			continue
		}
		resp, err := expandEra(reg, e, g)
		if err != nil {
			return nil, err
		}
		if resp != nil {
			eras = append(eras, resp)
		}
	}

	return &CampaignResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Creator:     creator,
		World:       world,
		Contexts:    expandContextList(reg, c.ContextIDs),
		Blueprints:  blueprints,
		Objects:     objects,
		Members:     members,
		Eras:        eras,
		Settings:    c.Settings,
	}, nil
}

// ExpandMember resolves a member's references into a nested response.
func ExpandMember(reg *repository.Registry, m *models.Member) (*MemberResponse, error) {
	return expandMember(reg, m, expandGuard{})
}

func expandMember(reg *repository.Registry, m *models.Member, g expandGuard) (*MemberResponse, error) {
	if !g.enter(models.CollectionMembers, m.ID) {
		return nil, nil
	}
	defer g.leave(models.CollectionMembers, m.ID)

	resp := &MemberResponse{ID: m.ID, Role: m.Role, Status: m.Status}

	if m.UserID != "" {
		if u, ok := reg.Users.Get(m.UserID); ok {
			resp.User = ExpandUser(u)
		}
	}

	if m.CampaignID != "" {
		c, ok := reg.Campaigns.Get(m.CampaignID)
		if !ok {
			return nil, danglingErr(models.CollectionCampaigns, m.CampaignID)
		}
		campaign, err := expandCampaign(reg, c, g)
		if err != nil {
			return nil, err
		}
		resp.Campaign = campaign
	}

	if m.SleeveID != "" {
		if o, ok := reg.Objects.Get(m.SleeveID); ok {
			sleeve, err := expandObject(reg, o, g)
			if err != nil {
				return nil, err
			}
			resp.Sleeve = sleeve
		}
	}

	return resp, nil
}

// ExpandContext converts a context to its response shape.
func ExpandContext(ctx *models.Context) *ContextResponse {
	return &ContextResponse{ID: ctx.ID, Name: ctx.Name, Content: ctx.Content}
}

// ExpandBlueprint resolves a blueprint's creator into a nested response.
func ExpandBlueprint(reg *repository.Registry, b *models.Blueprint) (*BlueprintResponse, error) {
	creator, err := expandCreator(reg, b.CreatorID)
	if err != nil {
		return nil, err
	}
	return &BlueprintResponse{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Creator:     creator,
		IsPublic:    b.IsPublic,
		IsDeveloper: b.IsDeveloper,
		Fields:      b.Fields,
	}, nil
}

// ExpandObject resolves an object's creator and blueprint into a nested
// response.
func ExpandObject(reg *repository.Registry, o *models.Object) (*ObjectResponse, error) {
	return expandObject(reg, o, expandGuard{})
}

func expandObject(reg *repository.Registry, o *models.Object, g expandGuard) (*ObjectResponse, error) {
	if !g.enter(models.CollectionObjects, o.ID) {
		return nil, nil
	}
	defer g.leave(models.CollectionObjects, o.ID)

	creator, err := expandCreator(reg, o.CreatorID)
	if err != nil {
		return nil, err
	}

	resp := &ObjectResponse{
		ID:          o.ID,
		Name:        o.Name,
		Description: o.Description,
		Creator:     creator,
		Fields:      o.Fields,
	}

	if o.BlueprintID != "" {
		b, ok := reg.Blueprints.Get(o.BlueprintID)
		if !ok {
			return nil, danglingErr(models.CollectionBlueprints, o.BlueprintID)
		}
		blueprint, err := ExpandBlueprint(reg, b)
		if err != nil {
			return nil, err
		}
		resp.Blueprint = blueprint
	}

	return resp, nil
}

// ExpandObjective resolves an objective's children and parent. Malformed
// trees with cycles terminate: a node already on the expansion path expands
// to absent.
func ExpandObjective(reg *repository.Registry, o *models.Objective) (*ObjectiveResponse, error) {
	return expandObjective(reg, o, expandGuard{})
}

func expandObjective(reg *repository.Registry, o *models.Objective, g expandGuard) (*ObjectiveResponse, error) {
	if !g.enter(models.CollectionObjectives, o.ID) {
		return nil, nil
	}
	defer g.leave(models.CollectionObjectives, o.ID)

	resp := &ObjectiveResponse{
		ID:       o.ID,
		Name:     o.Name,
		Task:     o.Task,
		Progress: o.Progress,
		Children: make([]*ObjectiveResponse, 0, len(o.ChildrenIDs)),
	}

	for _, id := range o.ChildrenIDs {
		child, ok := reg.Objectives.Get(id)
		if !ok {
			continue
		}
		expanded, err := expandObjective(reg, child, g)
		if err != nil {
			return nil, err
		}
		if expanded != nil {
			resp.Children = append(resp.Children, expanded)
		}
	}

	if o.ParentID != "" {
		if parent, ok := reg.Objectives.Get(o.ParentID); ok {
			expanded, err := expandObjective(reg, parent, g)
			if err != nil {
				return nil, err
			}
			resp.Parent = expanded
		}
	}

	return resp, nil
}

// ExpandEra resolves an era's campaign, objective and chapters.
func ExpandEra(reg *repository.Registry, e *models.Era) (*EraResponse, error) {
	return expandEra(reg, e, expandGuard{})
}

func expandEra(reg *repository.Registry, e *models.Era, g expandGuard) (*EraResponse, error) {
	if !g.enter(models.CollectionEras, e.ID) {
		return nil, nil
	}
	defer g.leave(models.CollectionEras, e.ID)

	resp := &EraResponse{ID: e.ID, Name: e.Name, Description: e.Description}

	if e.CampaignID != "" {
		c, ok := reg.Campaigns.Get(e.CampaignID)
		if !ok {
			return nil, danglingErr(models.CollectionCampaigns, e.CampaignID)
		}
		campaign, err := expandCampaign(reg, c, g)
		if err != nil {
			return nil, err
		}
		resp.Campaign = campaign
	}

	objective, err := expandObjectiveRef(reg, e.ObjectiveID, g)
	if err != nil {
		return nil, err
	}
	resp.Objective = objective

	resp.Chapters = make([]*ChapterResponse, 0, len(e.ChapterIDs))
	for _, id := range e.ChapterIDs {
		ch, ok := reg.Chapters.Get(id)
		if !ok {
			continue
		}
		expanded, err := expandChapter(reg, ch, g)
		if err != nil {
			return nil, err
		}
		if expanded != nil {
			resp.Chapters = append(resp.Chapters, expanded)
		}
	}

	return resp, nil
}

// ExpandChapter resolves a chapter's era, objective and encounters.
func ExpandChapter(reg *repository.Registry, ch *models.Chapter) (*ChapterResponse, error) {
	return expandChapter(reg, ch, expandGuard{})
}

func expandChapter(reg *repository.Registry, ch *models.Chapter, g expandGuard) (*ChapterResponse, error) {
	if !g.enter(models.CollectionChapters, ch.ID) {
		return nil, nil
	}
	defer g.leave(models.CollectionChapters, ch.ID)

	resp := &ChapterResponse{ID: ch.ID, Name: ch.Name, Description: ch.Description}

	if ch.EraID != "" {
		e, ok := reg.Eras.Get(ch.EraID)
		if !ok {
			return nil, danglingErr(models.CollectionEras, ch.EraID)
		}
		era, err := expandEra(reg, e, g)
		if err != nil {
			return nil, err
		}
		resp.Era = era
	}

	objective, err := expandObjectiveRef(reg, ch.ObjectiveID, g)
	if err != nil {
		return nil, err
	}
	resp.Objective = objective

	resp.Encounters = make([]*EncounterResponse, 0, len(ch.EncounterIDs))
	for _, id := range ch.EncounterIDs {
		enc, ok := reg.Encounters.Get(id)
		if !ok {
			continue
		}
		expanded, err := expandEncounter(reg, enc, g)
		if err != nil {
			return nil, err
		}
		if expanded != nil {
			resp.Encounters = append(resp.Encounters, expanded)
		}
	}

	return resp, nil
}

// ExpandEncounter resolves an encounter's chapter and actions.
func ExpandEncounter(reg *repository.Registry, enc *models.Encounter) (*EncounterResponse, error) {
	return expandEncounter(reg, enc, expandGuard{})
}

func expandEncounter(reg *repository.Registry, enc *models.Encounter, g expandGuard) (*EncounterResponse, error) {
	if !g.enter(models.CollectionEncounters, enc.ID) {
		return nil, nil
	}
	defer g.leave(models.CollectionEncounters, enc.ID)

	resp := &EncounterResponse{ID: enc.ID, Name: enc.Name, Description: enc.Description}

	if enc.ChapterID != "" {
		ch, ok := reg.Chapters.Get(enc.ChapterID)
		if !ok {
			return nil, danglingErr(models.CollectionChapters, enc.ChapterID)
		}
		chapter, err := expandChapter(reg, ch, g)
		if err != nil {
			return nil, err
		}
		resp.Chapter = chapter
	}

	resp.Actions = make([]*ActionResponse, 0, len(enc.ActionIDs))
	for _, id := range enc.ActionIDs {
		a, ok := reg.Actions.Get(id)
		if !ok {
			continue
		}
		expanded, err := expandAction(reg, a, g)
		if err != nil {
			return nil, err
		}
		if expanded != nil {
			resp.Actions = append(resp.Actions, expanded)
		}
	}

	return resp, nil
}

// ExpandAction resolves an action's encounter, owning member, character and
// minigame result.
func ExpandAction(reg *repository.Registry, a *models.Action) (*ActionResponse, error) {
	return expandAction(reg, a, expandGuard{})
}

func expandAction(reg *repository.Registry, a *models.Action, g expandGuard) (*ActionResponse, error) {
	if !g.enter(models.CollectionActions, a.ID) {
		return nil, nil
	}
	defer g.leave(models.CollectionActions, a.ID)

	resp := &ActionResponse{
		ID:         a.ID,
		Content:    a.Content,
		Type:       a.Type,
		DMResponse: a.DMResponse,
	}

	if a.EncounterID != "" {
		enc, ok := reg.Encounters.Get(a.EncounterID)
		if !ok {
			return nil, danglingErr(models.CollectionEncounters, a.EncounterID)
		}
		encounter, err := expandEncounter(reg, enc, g)
		if err != nil {
			return nil, err
		}
		resp.Encounter = encounter
	}

	if a.OwnerMemberID != "" {
		m, ok := reg.Members.Get(a.OwnerMemberID)
		if !ok {
			return nil, danglingErr(models.CollectionMembers, a.OwnerMemberID)
		}
		member, err := expandMember(reg, m, g)
		if err != nil {
			return nil, err
		}
		resp.OwnerMember = member
	}

	if a.CharacterObjectID != "" {
		if o, ok := reg.Objects.Get(a.CharacterObjectID); ok {
			character, err := expandObject(reg, o, g)
			if err != nil {
				return nil, err
			}
			resp.CharacterObject = character
		}
	}

	if a.MinigameID != "" {
		if m, ok := reg.Minigames.Get(a.MinigameID); ok {
			minigame, err := expandMinigameResult(reg, m, g)
			if err != nil {
				return nil, err
			}
			resp.Minigame = minigame
		}
	}

	return resp, nil
}

// ExpandMinigameResult resolves a minigame result's action.
func ExpandMinigameResult(reg *repository.Registry, m *models.MinigameResult) (*MinigameResultResponse, error) {
	return expandMinigameResult(reg, m, expandGuard{})
}

func expandMinigameResult(reg *repository.Registry, m *models.MinigameResult, g expandGuard) (*MinigameResultResponse, error) {
	if !g.enter(models.CollectionMinigames, m.ID) {
		return nil, nil
	}
	defer g.leave(models.CollectionMinigames, m.ID)

	resp := &MinigameResultResponse{
		ID:          m.ID,
		Type:        m.Type,
		Result:      m.Result,
		Details:     m.Details,
		CompletedAt: m.CompletedAt,
	}

	if m.ActionID != "" {
		a, ok := reg.Actions.Get(m.ActionID)
		if !ok {
			return nil, danglingErr(models.CollectionActions, m.ActionID)
		}
		action, err := expandAction(reg, a, g)
		if err != nil {
			return nil, err
		}
		resp.Action = action
	}

	return resp, nil
}

// expandCreator resolves a mandatory creator reference. An empty id is
// absent (template instances); an unresolvable id is a dangling reference.
func expandCreator(reg *repository.Registry, creatorID string) (*UserResponse, error) {
	if creatorID == "" {
		return nil, nil
	}
	u, ok := reg.Users.Get(creatorID)
	if !ok {
		return nil, danglingErr(models.CollectionUsers, creatorID)
	}
	return ExpandUser(u), nil
}

// expandObjectiveRef resolves a mandatory objective reference.
func expandObjectiveRef(reg *repository.Registry, id string, g expandGuard) (*ObjectiveResponse, error) {
	if id == "" {
		return nil, nil
	}
	o, ok := reg.Objectives.Get(id)
	if !ok {
		return nil, danglingErr(models.CollectionObjectives, id)
	}
	return expandObjective(reg, o, g)
}

// expandContextList resolves context references, skipping dangling ids.
func expandContextList(reg *repository.Registry, ids []string) []*ContextResponse {
	contexts := make([]*ContextResponse, 0, len(ids))
	for _, id := range ids {
		if ctx, ok := reg.Contexts.Get(id); ok {
			contexts = append(contexts, ExpandContext(ctx))
		}
	}
	return contexts
}

// expandBlueprintList resolves blueprint references, skipping dangling ids.
func expandBlueprintList(reg *repository.Registry, ids []string) ([]*BlueprintResponse, error) {
	blueprints := make([]*BlueprintResponse, 0, len(ids))
	for _, id := range ids {
		b, ok := reg.Blueprints.Get(id)
		if !ok {
			continue
		}
		expanded, err := ExpandBlueprint(reg, b)
		if err != nil {
			return nil, err
		}
		blueprints = append(blueprints, expanded)
	}
	return blueprints, nil
}

// expandObjectList resolves object references, skipping dangling ids.
func expandObjectList(reg *repository.Registry, ids []string, g expandGuard) ([]*ObjectResponse, error) {
	objects := make([]*ObjectResponse, 0, len(ids))
	for _, id := range ids {
		o, ok := reg.Objects.Get(id)
		if !ok {
			continue
		}
		expanded, err := expandObject(reg, o, g)
		if err != nil {
			return nil, err
		}
		if expanded != nil {
			objects = append(objects, expanded)
		}
	}
	return objects, nil
}
