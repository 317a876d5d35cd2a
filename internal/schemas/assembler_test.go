package schemas

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/lorekeep/lorekeep/internal/models"
	"github.com/lorekeep/lorekeep/internal/repository"
	"github.com/lorekeep/lorekeep/internal/store"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestRegistry creates a registry over an in-memory SQLite database
func setupTestRegistry(t *testing.T) *repository.Registry {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Record{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return repository.NewRegistry(store.NewGormStore(db))
}

func addUser(t *testing.T, reg *repository.Registry, username string) *models.User {
	user := &models.User{Username: username, Email: username + "@example.com"}
	if _, ok := reg.Users.Add(user); !ok {
		t.Fatalf("Failed to add user %s", username)
	}
	return user
}

// TestExpandWorldResolvesReferences tests the basic expansion of a world
func TestExpandWorldResolvesReferences(t *testing.T) {
	reg := setupTestRegistry(t)
	creator := addUser(t, reg, "alice")

	ctx := &models.Context{Name: "History", Content: "Long ago..."}
	reg.Contexts.Add(ctx)

	blueprint := &models.Blueprint{Name: "NPC", CreatorID: creator.ID}
	reg.Blueprints.Add(blueprint)

	world := &models.World{
		Name:         "Arda",
		CreatorID:    creator.ID,
		ContextIDs:   []string{ctx.ID},
		BlueprintIDs: []string{blueprint.ID},
	}
	reg.Worlds.Add(world)

	resp, err := ExpandWorld(reg, world)
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}

	if resp.ID != world.ID {
		t.Errorf("Expected id %s, got %s", world.ID, resp.ID)
	}
	if resp.Creator == nil || resp.Creator.Username != "alice" {
		t.Error("Expected creator to expand")
	}
	if len(resp.Contexts) != 1 || resp.Contexts[0].Name != "History" {
		t.Error("Expected context to expand")
	}
	if len(resp.Blueprints) != 1 || resp.Blueprints[0].Name != "NPC" {
		t.Error("Expected blueprint to expand")
	}
}

// TestFlattenExpandRoundTrip tests that flatten then expand preserves the
// record identity
func TestFlattenExpandRoundTrip(t *testing.T) {
	reg := setupTestRegistry(t)
	creator := addUser(t, reg, "alice")

	world := &models.World{Name: "Arda", CreatorID: creator.ID}
	reg.Worlds.Add(world)

	name := "Renamed"
	FlattenWorld(&WorldPayload{Name: &name}, world)
	reg.Worlds.Update(world)

	resp, err := ExpandWorld(reg, world)
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	if resp.ID != world.ID {
		t.Errorf("Expected id to survive the round trip, got %s", resp.ID)
	}
	if resp.Name != "Renamed" {
		t.Errorf("Expected renamed world, got %s", resp.Name)
	}
	if resp.Creator == nil || resp.Creator.ID != creator.ID {
		t.Error("Expected creator to survive the round trip")
	}
}

// TestFlattenLeavesAbsentFields tests that absent payload fields keep values
func TestFlattenLeavesAbsentFields(t *testing.T) {
	world := &models.World{
		Name:        "Arda",
		Description: "keep me",
		CreatorID:   "u1",
	}

	name := "Renamed"
	FlattenWorld(&WorldPayload{Name: &name}, world)

	if world.Description != "keep me" {
		t.Errorf("Expected description untouched, got %s", world.Description)
	}
	if world.CreatorID != "u1" {
		t.Errorf("Expected creator untouched, got %s", world.CreatorID)
	}
}

// TestFlattenIsPublicShorthand tests the flat is_public payload field
func TestFlattenIsPublicShorthand(t *testing.T) {
	world := &models.World{Settings: models.Settings{IsPublic: false}}

	isPublic := true
	FlattenWorld(&WorldPayload{IsPublic: &isPublic}, world)

	if !world.Settings.IsPublic {
		t.Error("Expected is_public to fold into settings")
	}
}

// TestFlattenRefList tests that reference lists become flat id slices
func TestFlattenRefList(t *testing.T) {
	var payload CampaignPayload
	body := `{"world":{"id":"w1"},"blueprints":["b1",{"id":"b2"}]}`
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		t.Fatalf("Failed to decode payload: %v", err)
	}

	campaign := &models.Campaign{}
	FlattenCampaign(&payload, campaign)

	if campaign.WorldID != "w1" {
		t.Errorf("Expected world id w1, got %s", campaign.WorldID)
	}
	if len(campaign.BlueprintIDs) != 2 || campaign.BlueprintIDs[1] != "b2" {
		t.Errorf("Expected blueprint ids, got %v", campaign.BlueprintIDs)
	}
}

// TestExpandObjectiveCycleTerminates tests that a malformed objective cycle
// does not recurse forever
func TestExpandObjectiveCycleTerminates(t *testing.T) {
	reg := setupTestRegistry(t)

	a := &models.Objective{Name: "A"}
	a.ID = "obj-a"
	b := &models.Objective{Name: "B"}
	b.ID = "obj-b"
	a.ChildrenIDs = []string{b.ID}
	b.ChildrenIDs = []string{a.ID}
	reg.Objectives.Add(a)
	reg.Objectives.Add(b)

	resp, err := ExpandObjective(reg, a)
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	if resp == nil {
		t.Fatal("Expected a response")
	}
	if len(resp.Children) != 1 || resp.Children[0].Name != "B" {
		t.Fatal("Expected child B to expand")
	}
	// The cycle back to A terminates as absent.
	if len(resp.Children[0].Children) != 0 {
		t.Error("Expected cycle re-entry to expand to absent")
	}
}

// TestExpandObjectiveParentChildLoop tests the parent pointer against the
// same guard
func TestExpandObjectiveParentChildLoop(t *testing.T) {
	reg := setupTestRegistry(t)

	parent := &models.Objective{Name: "Parent"}
	parent.ID = "obj-p"
	child := &models.Objective{Name: "Child", ParentID: parent.ID}
	child.ID = "obj-c"
	parent.ChildrenIDs = []string{child.ID}
	reg.Objectives.Add(parent)
	reg.Objectives.Add(child)

	resp, err := ExpandObjective(reg, child)
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	if resp.Parent == nil || resp.Parent.Name != "Parent" {
		t.Fatal("Expected parent to expand")
	}
}

// TestExpandDanglingOptionalIsAbsent tests the graceful path for optional
// references
func TestExpandDanglingOptionalIsAbsent(t *testing.T) {
	reg := setupTestRegistry(t)

	member := &models.Member{Role: "player", Status: "active", SleeveID: "gone"}
	reg.Members.Add(member)

	resp, err := ExpandMember(reg, member)
	if err != nil {
		t.Fatalf("Expected graceful expansion, got %v", err)
	}
	if resp.Sleeve != nil {
		t.Error("Expected dangling sleeve to expand to absent")
	}
}

// TestExpandDanglingMandatoryFails tests the hard failure for mandatory
// references
func TestExpandDanglingMandatoryFails(t *testing.T) {
	reg := setupTestRegistry(t)

	object := &models.Object{Name: "Sword", CreatorID: "u1", BlueprintID: "gone"}
	reg.Objects.Add(object)
	addUserWithID(t, reg, "u1")

	_, err := ExpandObject(reg, object)
	if !errors.Is(err, ErrDanglingReference) {
		t.Errorf("Expected ErrDanglingReference, got %v", err)
	}
}

// TestExpandEmptyMandatoryIsAbsent tests that templates with unset mandatory
// references expand without error
func TestExpandEmptyMandatoryIsAbsent(t *testing.T) {
	reg := setupTestRegistry(t)

	object := &models.Object{Name: "Template"}

	resp, err := ExpandObject(reg, object)
	if err != nil {
		t.Fatalf("Expected template expansion to succeed, got %v", err)
	}
	if resp.Creator != nil || resp.Blueprint != nil {
		t.Error("Expected unset references to expand to absent")
	}
}

// TestExpandListSkipsDangling tests that list references drop missing entries
func TestExpandListSkipsDangling(t *testing.T) {
	reg := setupTestRegistry(t)
	creator := addUser(t, reg, "alice")

	ctx := &models.Context{Name: "Kept"}
	reg.Contexts.Add(ctx)

	world := &models.World{
		Name:       "Arda",
		CreatorID:  creator.ID,
		ContextIDs: []string{ctx.ID, "gone"},
	}
	reg.Worlds.Add(world)

	resp, err := ExpandWorld(reg, world)
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	if len(resp.Contexts) != 1 {
		t.Errorf("Expected 1 context, got %d", len(resp.Contexts))
	}
}

// TestPayloadRefForms tests both wire forms of a single reference field
func TestPayloadRefForms(t *testing.T) {
	for _, body := range []string{
		`{"blueprint":"b1"}`,
		`{"blueprint":{"id":"b1"}}`,
	} {
		var payload ObjectPayload
		if err := json.Unmarshal([]byte(body), &payload); err != nil {
			t.Fatalf("Failed to decode %s: %v", body, err)
		}
		if payload.Blueprint == nil || payload.Blueprint.String() != "b1" {
			t.Errorf("Expected blueprint ref b1 from %s", body)
		}
	}
}

func addUserWithID(t *testing.T, reg *repository.Registry, id string) *models.User {
	user := &models.User{Username: "user-" + id, Email: id + "@example.com"}
	user.ID = id
	if _, ok := reg.Users.Add(user); !ok {
		t.Fatalf("Failed to add user %s", id)
	}
	return user
}
