package schemas

import (
	"github.com/lorekeep/lorekeep/internal/models"
)

// Flatten merges the fields present in a payload onto an entity, in place.
// Absent fields keep the entity's current value. Immutable fields (id,
// created_at, creator_id) have no payload counterpart and are untouched.

func FlattenUser(p *UserPayload, u *models.User) {
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
}

func FlattenWorld(p *WorldPayload, w *models.World) {
	if p.Name != nil {
		w.Name = *p.Name
	}
	if p.Description != nil {
		w.Description = *p.Description
	}
	if p.Contexts != nil {
		w.ContextIDs = p.Contexts.IDs()
	}
	if p.Blueprints != nil {
		w.BlueprintIDs = p.Blueprints.IDs()
	}
	if p.Objects != nil {
		w.ObjectIDs = p.Objects.IDs()
	}
	if p.Settings != nil {
		w.Settings = *p.Settings
	}
	if p.IsPublic != nil {
		w.Settings.IsPublic = *p.IsPublic
	}
}

func FlattenCampaign(p *CampaignPayload, c *models.Campaign) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.World != nil {
		c.WorldID = p.World.String()
	}
	if p.Contexts != nil {
		c.ContextIDs = p.Contexts.IDs()
	}
	if p.Blueprints != nil {
		c.BlueprintIDs = p.Blueprints.IDs()
	}
	if p.Objects != nil {
		c.ObjectIDs = p.Objects.IDs()
	}
	if p.Members != nil {
		c.MemberIDs = p.Members.IDs()
	}
	if p.Eras != nil {
		c.EraIDs = p.Eras.IDs()
	}
	if p.Settings != nil {
		c.Settings = *p.Settings
	}
	if p.IsPublic != nil {
		c.Settings.IsPublic = *p.IsPublic
	}
}

func FlattenMember(p *MemberPayload, m *models.Member) {
	if p.User != nil {
		m.UserID = p.User.String()
	}
	if p.Campaign != nil {
		m.CampaignID = p.Campaign.String()
	}
	if p.Role != nil {
		m.Role = *p.Role
	}
	if p.Status != nil {
		m.Status = *p.Status
	}
	if p.Sleeve != nil {
		m.SleeveID = p.Sleeve.String()
	}
}

func FlattenContext(p *ContextPayload, ctx *models.Context) {
	if p.Name != nil {
		ctx.Name = *p.Name
	}
	if p.Content != nil {
		ctx.Content = *p.Content
	}
}

func FlattenBlueprint(p *BlueprintPayload, b *models.Blueprint) {
	if p.Name != nil {
		b.Name = *p.Name
	}
	if p.Description != nil {
		b.Description = *p.Description
	}
	if p.IsPublic != nil {
		b.IsPublic = *p.IsPublic
	}
	if p.IsDeveloper != nil {
		b.IsDeveloper = *p.IsDeveloper
	}
	if p.Fields != nil {
		b.Fields = p.Fields.Slice()
	}
}

func FlattenObject(p *ObjectPayload, o *models.Object) {
	if p.Name != nil {
		o.Name = *p.Name
	}
	if p.Description != nil {
		o.Description = *p.Description
	}
	if p.Blueprint != nil {
		o.BlueprintID = p.Blueprint.String()
	}
	if p.Fields != nil {
		o.Fields = p.Fields.Slice()
	}
}

func FlattenObjective(p *ObjectivePayload, o *models.Objective) {
	if p.Name != nil {
		o.Name = *p.Name
	}
	if p.Task != nil {
		o.Task = *p.Task
	}
	if p.Progress != nil {
		o.Progress = *p.Progress
	}
	if p.Children != nil {
		o.ChildrenIDs = p.Children.IDs()
	}
	if p.Parent != nil {
		o.ParentID = p.Parent.String()
	}
}

func FlattenEra(p *EraPayload, e *models.Era) {
	if p.Campaign != nil {
		e.CampaignID = p.Campaign.String()
	}
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Objective != nil {
		e.ObjectiveID = p.Objective.String()
	}
	if p.Chapters != nil {
		e.ChapterIDs = p.Chapters.IDs()
	}
}

func FlattenChapter(p *ChapterPayload, ch *models.Chapter) {
	if p.Era != nil {
		ch.EraID = p.Era.String()
	}
	if p.Name != nil {
		ch.Name = *p.Name
	}
	if p.Description != nil {
		ch.Description = *p.Description
	}
	if p.Objective != nil {
		ch.ObjectiveID = p.Objective.String()
	}
	if p.Encounters != nil {
		ch.EncounterIDs = p.Encounters.IDs()
	}
}

func FlattenEncounter(p *EncounterPayload, enc *models.Encounter) {
	if p.Chapter != nil {
		enc.ChapterID = p.Chapter.String()
	}
	if p.Name != nil {
		enc.Name = *p.Name
	}
	if p.Description != nil {
		enc.Description = *p.Description
	}
	if p.Actions != nil {
		enc.ActionIDs = p.Actions.IDs()
	}
}

func FlattenAction(p *ActionPayload, a *models.Action) {
	if p.Encounter != nil {
		a.EncounterID = p.Encounter.String()
	}
	if p.OwnerMember != nil {
		a.OwnerMemberID = p.OwnerMember.String()
	}
	if p.CharacterObject != nil {
		a.CharacterObjectID = p.CharacterObject.String()
	}
	if p.Content != nil {
		a.Content = *p.Content
	}
	if p.Type != nil {
		a.Type = *p.Type
	}
	if p.DMResponse != nil {
		a.DMResponse = *p.DMResponse
	}
	if p.Minigame != nil {
		a.MinigameID = p.Minigame.String()
	}
}

func FlattenMinigameResult(p *MinigameResultPayload, m *models.MinigameResult) {
	if p.Action != nil {
		m.ActionID = p.Action.String()
	}
	if p.Type != nil {
		m.Type = *p.Type
	}
	if p.Result != nil {
		m.Result = *p.Result
	}
	if p.Details != nil {
		m.Details = *p.Details
	}
}
