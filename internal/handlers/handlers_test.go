package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/lorekeep/lorekeep/internal/handlers"
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

// setupTestApp builds a Fiber app with the library routes behind a stub auth
// middleware that injects the given user
func setupTestApp(reg *repository.Registry, user *models.User) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user", user)
		return c.Next()
	})

	worldHandler := &handlers.WorldHandler{Reg: reg}
	app.Get("/api/worlds", worldHandler.ListWorlds)
	app.Get("/api/world/:id", worldHandler.GetWorld)
	app.Post("/api/world/:id", worldHandler.PostWorld)

	blueprintHandler := &handlers.BlueprintHandler{Reg: reg}
	app.Get("/api/blueprint/:id/delete", blueprintHandler.DeleteBlueprint)
	app.Get("/api/blueprint/:id", blueprintHandler.GetBlueprint)
	app.Post("/api/blueprint/:id", blueprintHandler.PostBlueprint)

	campaignHandler := &handlers.CampaignHandler{Reg: reg}
	app.Get("/api/campaigns", campaignHandler.ListCampaigns)
	app.Get("/api/campaign/:id", campaignHandler.GetCampaign)
	app.Post("/api/campaign/:id", campaignHandler.PostCampaign)

	objectHandler := &handlers.ObjectHandler{Reg: reg}
	app.Get("/api/object/:id", objectHandler.GetObject)
	app.Post("/api/object/:id", objectHandler.PostObject)

	accountHandler := &handlers.AccountHandler{Reg: reg}
	app.Get("/api/account", accountHandler.GetAccount)
	app.Post("/api/account", accountHandler.PostAccount)

	homeHandler := &handlers.HomeHandler{Reg: reg}
	app.Get("/api/home", homeHandler.GetHome)

	return app
}

func addTestUser(t *testing.T, reg *repository.Registry, username string) *models.User {
	user := &models.User{Username: username, Email: username + "@example.com"}
	if _, ok := reg.Users.Add(user); !ok {
		t.Fatalf("Failed to add user %s", username)
	}
	return user
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) (*map[string]any, int) {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}

	if resp.StatusCode == fiber.StatusNoContent {
		return nil, resp.StatusCode
	}
	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return &result, resp.StatusCode
}

// TestGetWorldTemplate tests GET /api/world/new
func TestGetWorldTemplate(t *testing.T) {
	reg := setupTestRegistry(t)
	user := addTestUser(t, reg, "alice")
	app := setupTestApp(reg, user)

	result, status := doJSON(t, app, "GET", "/api/world/new", nil)
	if status != 200 {
		t.Fatalf("Expected status 200, got %d", status)
	}

	if (*result)["name"] != "My World" {
		t.Errorf("Expected default name, got %v", (*result)["name"])
	}
	creator, _ := (*result)["creator"].(map[string]any)
	if creator == nil || creator["username"] != "alice" {
		t.Error("Expected requester as template creator")
	}

	// The template is never persisted.
	if got := len(reg.Worlds.List(0)); got != 0 {
		t.Errorf("Expected no persisted worlds, got %d", got)
	}
}

// TestCreateWorldTwiceIsNotIdempotent tests that two POSTs to "new" create
// two distinct records
func TestCreateWorldTwiceIsNotIdempotent(t *testing.T) {
	reg := setupTestRegistry(t)
	user := addTestUser(t, reg, "alice")
	app := setupTestApp(reg, user)

	payload := map[string]any{"name": "Same Name"}

	first, status := doJSON(t, app, "POST", "/api/world/new", payload)
	if status != 200 {
		t.Fatalf("Expected status 200, got %d", status)
	}
	second, status := doJSON(t, app, "POST", "/api/world/new", payload)
	if status != 200 {
		t.Fatalf("Expected status 200, got %d", status)
	}

	if (*first)["id"] == (*second)["id"] {
		t.Error("Expected two distinct world ids")
	}
	if got := len(reg.Worlds.List(0)); got != 2 {
		t.Errorf("Expected 2 persisted worlds, got %d", got)
	}
}

// TestPostWorldSetsCreator tests that creation assigns the requester as owner
func TestPostWorldSetsCreator(t *testing.T) {
	reg := setupTestRegistry(t)
	user := addTestUser(t, reg, "alice")
	app := setupTestApp(reg, user)

	result, status := doJSON(t, app, "POST", "/api/world/new", map[string]any{"name": "Arda"})
	if status != 200 {
		t.Fatalf("Expected status 200, got %d", status)
	}

	creator, _ := (*result)["creator"].(map[string]any)
	if creator == nil || creator["id"] != user.ID {
		t.Error("Expected requester as creator")
	}
}

// TestCreatorImmutableOnUpdate tests that a payload cannot change the creator
func TestCreatorImmutableOnUpdate(t *testing.T) {
	reg := setupTestRegistry(t)
	user := addTestUser(t, reg, "alice")
	app := setupTestApp(reg, user)

	world := &models.World{Name: "Arda", CreatorID: user.ID}
	id, _ := reg.Worlds.Add(world)

	// creator_id is not a payload field; it must be ignored.
	_, status := doJSON(t, app, "POST", "/api/world/"+id, map[string]any{
		"name":       "Renamed",
		"creator_id": "intruder",
	})
	if status != 200 {
		t.Fatalf("Expected status 200, got %d", status)
	}

	stored, found := reg.Worlds.Get(id)
	if !found {
		t.Fatal("Expected world to exist")
	}
	if stored.CreatorID != user.ID {
		t.Errorf("Expected creator unchanged, got %s", stored.CreatorID)
	}
	if stored.Name != "Renamed" {
		t.Errorf("Expected rename to apply, got %s", stored.Name)
	}
}

// TestNonOwnerPostForbidden tests that only the creator can modify a record,
// and that a rejected write leaves the record unchanged
func TestNonOwnerPostForbidden(t *testing.T) {
	reg := setupTestRegistry(t)
	owner := addTestUser(t, reg, "alice")
	intruder := addTestUser(t, reg, "mallory")

	world := &models.World{Name: "Arda", CreatorID: owner.ID}
	id, _ := reg.Worlds.Add(world)

	app := setupTestApp(reg, intruder)
	_, status := doJSON(t, app, "POST", "/api/world/"+id, map[string]any{"name": "Stolen"})
	if status != 403 {
		t.Fatalf("Expected status 403, got %d", status)
	}

	stored, _ := reg.Worlds.Get(id)
	if stored.Name != "Arda" {
		t.Errorf("Expected record unchanged after forbidden write, got %s", stored.Name)
	}
}

// TestNonOwnerGetPrivateForbidden tests the read gate on private records
func TestNonOwnerGetPrivateForbidden(t *testing.T) {
	reg := setupTestRegistry(t)
	owner := addTestUser(t, reg, "alice")
	other := addTestUser(t, reg, "bob")

	private := &models.World{Name: "Hidden", CreatorID: owner.ID}
	privateID, _ := reg.Worlds.Add(private)

	public := &models.World{Name: "Open", CreatorID: owner.ID, Settings: models.Settings{IsPublic: true}}
	publicID, _ := reg.Worlds.Add(public)

	app := setupTestApp(reg, other)
	if _, status := doJSON(t, app, "GET", "/api/world/"+privateID, nil); status != 403 {
		t.Errorf("Expected 403 for private world, got %d", status)
	}
	if _, status := doJSON(t, app, "GET", "/api/world/"+publicID, nil); status != 200 {
		t.Errorf("Expected 200 for public world, got %d", status)
	}
}

// TestGetWorldNotFound tests the 404 path
func TestGetWorldNotFound(t *testing.T) {
	reg := setupTestRegistry(t)
	user := addTestUser(t, reg, "alice")
	app := setupTestApp(reg, user)

	if _, status := doJSON(t, app, "GET", "/api/world/nope", nil); status != 404 {
		t.Errorf("Expected status 404, got %d", status)
	}
}

// TestPostMissingWorldNotFound tests that updates never upsert
func TestPostMissingWorldNotFound(t *testing.T) {
	reg := setupTestRegistry(t)
	user := addTestUser(t, reg, "alice")
	app := setupTestApp(reg, user)

	if _, status := doJSON(t, app, "POST", "/api/world/nope", map[string]any{"name": "Ghost"}); status != 404 {
		t.Errorf("Expected status 404, got %d", status)
	}
	if got := len(reg.Worlds.List(0)); got != 0 {
		t.Errorf("Expected no persisted worlds, got %d", got)
	}
}

// TestListWorldsScopedToCreator tests GET /api/worlds
func TestListWorldsScopedToCreator(t *testing.T) {
	reg := setupTestRegistry(t)
	alice := addTestUser(t, reg, "alice")
	bob := addTestUser(t, reg, "bob")

	reg.Worlds.Add(&models.World{Name: "Alices", CreatorID: alice.ID})
	reg.Worlds.Add(&models.World{Name: "Bobs", CreatorID: bob.ID})

	app := setupTestApp(reg, alice)
	req := httptest.NewRequest("GET", "/api/worlds", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var results []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(results) != 1 || results[0]["name"] != "Alices" {
		t.Errorf("Expected only alice's world, got %v", results)
	}
}

// TestBlueprintCascadeDelete tests that deleting a blueprint removes every
// reference to it
func TestBlueprintCascadeDelete(t *testing.T) {
	reg := setupTestRegistry(t)
	user := addTestUser(t, reg, "alice")
	app := setupTestApp(reg, user)

	blueprint := &models.Blueprint{Name: "NPC", CreatorID: user.ID}
	bpID, _ := reg.Blueprints.Add(blueprint)

	other := &models.Blueprint{Name: "Item", CreatorID: user.ID}
	otherID, _ := reg.Blueprints.Add(other)

	world := &models.World{Name: "Arda", CreatorID: user.ID, BlueprintIDs: []string{bpID, otherID}}
	worldID, _ := reg.Worlds.Add(world)

	campaign := &models.Campaign{Name: "Quest", CreatorID: user.ID, BlueprintIDs: []string{bpID}}
	campaignID, _ := reg.Campaigns.Add(campaign)

	instance := &models.Object{Name: "Goblin", CreatorID: user.ID, BlueprintID: bpID}
	instanceID, _ := reg.Objects.Add(instance)

	unrelated := &models.Object{Name: "Sword", CreatorID: user.ID, BlueprintID: otherID}
	unrelatedID, _ := reg.Objects.Add(unrelated)

	_, status := doJSON(t, app, "GET", "/api/blueprint/"+bpID+"/delete", nil)
	if status != 204 {
		t.Fatalf("Expected status 204, got %d", status)
	}

	if _, found := reg.Blueprints.Get(bpID); found {
		t.Error("Expected blueprint to be deleted")
	}
	if _, found := reg.Objects.Get(instanceID); found {
		t.Error("Expected instantiated object to be deleted")
	}
	if _, found := reg.Objects.Get(unrelatedID); !found {
		t.Error("Expected unrelated object to survive")
	}

	storedWorld, _ := reg.Worlds.Get(worldID)
	if len(storedWorld.BlueprintIDs) != 1 || storedWorld.BlueprintIDs[0] != otherID {
		t.Errorf("Expected blueprint detached from world, got %v", storedWorld.BlueprintIDs)
	}
	storedCampaign, _ := reg.Campaigns.Get(campaignID)
	if len(storedCampaign.BlueprintIDs) != 0 {
		t.Errorf("Expected blueprint detached from campaign, got %v", storedCampaign.BlueprintIDs)
	}
}

// TestBlueprintCascadeDeleteForbidden tests the ownership gate on delete
func TestBlueprintCascadeDeleteForbidden(t *testing.T) {
	reg := setupTestRegistry(t)
	owner := addTestUser(t, reg, "alice")
	intruder := addTestUser(t, reg, "mallory")

	blueprint := &models.Blueprint{Name: "NPC", CreatorID: owner.ID}
	bpID, _ := reg.Blueprints.Add(blueprint)

	app := setupTestApp(reg, intruder)
	if _, status := doJSON(t, app, "GET", "/api/blueprint/"+bpID+"/delete", nil); status != 403 {
		t.Errorf("Expected status 403, got %d", status)
	}
	if _, found := reg.Blueprints.Get(bpID); !found {
		t.Error("Expected blueprint to survive forbidden delete")
	}
}

// TestAccountRejectsPasswordChange tests that password fields are refused
func TestAccountRejectsPasswordChange(t *testing.T) {
	reg := setupTestRegistry(t)
	user := addTestUser(t, reg, "alice")
	app := setupTestApp(reg, user)

	_, status := doJSON(t, app, "POST", "/api/account", map[string]any{
		"password_current": "old",
		"password_new":     "new",
	})
	if status != 400 {
		t.Errorf("Expected status 400, got %d", status)
	}
}

// TestAccountUpdateProfile tests username/email updates
func TestAccountUpdateProfile(t *testing.T) {
	reg := setupTestRegistry(t)
	user := addTestUser(t, reg, "alice")
	app := setupTestApp(reg, user)

	result, status := doJSON(t, app, "POST", "/api/account", map[string]any{
		"username": "  alice2  ",
	})
	if status != 200 {
		t.Fatalf("Expected status 200, got %d", status)
	}
	if (*result)["username"] != "alice2" {
		t.Errorf("Expected trimmed username, got %v", (*result)["username"])
	}

	stored, _ := reg.Users.Get(user.ID)
	if stored.Username != "alice2" {
		t.Errorf("Expected stored username updated, got %s", stored.Username)
	}
}

// TestHomeAggregates tests the landing page aggregate
func TestHomeAggregates(t *testing.T) {
	reg := setupTestRegistry(t)
	user := addTestUser(t, reg, "alice")
	other := addTestUser(t, reg, "bob")

	reg.Campaigns.Add(&models.Campaign{Name: "Mine", CreatorID: user.ID, Settings: models.Settings{IsPublic: true}})
	reg.Campaigns.Add(&models.Campaign{Name: "Theirs", CreatorID: other.ID})

	app := setupTestApp(reg, user)
	result, status := doJSON(t, app, "GET", "/api/home", nil)
	if status != 200 {
		t.Fatalf("Expected status 200, got %d", status)
	}

	userData, _ := (*result)["user"].(map[string]any)
	if userData == nil || userData["username"] != "alice" {
		t.Error("Expected profile in home response")
	}
	campaigns, _ := (*result)["campaigns"].([]any)
	if len(campaigns) != 1 {
		t.Fatalf("Expected 1 campaign card, got %d", len(campaigns))
	}
	card, _ := campaigns[0].(map[string]any)
	if card["name"] != "Mine" || card["is_public"] != true {
		t.Errorf("Unexpected campaign card: %v", card)
	}
}

// TestMalformedPayload tests the 400 path for unparseable bodies
func TestMalformedPayload(t *testing.T) {
	reg := setupTestRegistry(t)
	user := addTestUser(t, reg, "alice")
	app := setupTestApp(reg, user)

	req := httptest.NewRequest("POST", "/api/world/new", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}
}

// TestObjectWithDanglingBlueprintReports500 tests the data integrity surface
func TestObjectWithDanglingBlueprintReports500(t *testing.T) {
	reg := setupTestRegistry(t)
	user := addTestUser(t, reg, "alice")
	app := setupTestApp(reg, user)

	object := &models.Object{Name: "Orphan", CreatorID: user.ID, BlueprintID: "gone"}
	id, _ := reg.Objects.Add(object)

	result, status := doJSON(t, app, "GET", "/api/object/"+id, nil)
	if status != 500 {
		t.Fatalf("Expected status 500, got %d", status)
	}
	if (*result)["type"] != "data.integrity" {
		t.Errorf("Expected data.integrity error type, got %v", (*result)["type"])
	}
}

// TestClearDescriptionPersists tests that an explicit empty-string update
// reaches the stored record, not just the response
func TestClearDescriptionPersists(t *testing.T) {
	reg := setupTestRegistry(t)
	user := addTestUser(t, reg, "alice")
	app := setupTestApp(reg, user)

	created, status := doJSON(t, app, "POST", "/api/world/new", map[string]any{
		"name":        "Fading World",
		"description": "Soon to be forgotten",
	})
	if status != 200 {
		t.Fatalf("Expected status 200, got %d", status)
	}
	id, _ := (*created)["id"].(string)
	if id == "" {
		t.Fatal("Expected created world id")
	}

	if _, status = doJSON(t, app, "POST", "/api/world/"+id, map[string]any{
		"description": "",
	}); status != 200 {
		t.Fatalf("Expected status 200, got %d", status)
	}

	stored, ok := reg.Worlds.Get(id)
	if !ok {
		t.Fatal("Failed to reload world")
	}
	if stored.Description != "" {
		t.Errorf("Expected stored description cleared, got %q", stored.Description)
	}
	if stored.Name != "Fading World" {
		t.Errorf("Absent fields must survive the clear, got name %q", stored.Name)
	}

	fetched, status := doJSON(t, app, "GET", "/api/world/"+id, nil)
	if status != 200 {
		t.Fatalf("Expected status 200, got %d", status)
	}
	if desc, present := (*fetched)["description"]; present && desc != "" {
		t.Errorf("Expected cleared description on re-read, got %v", desc)
	}
}

// TestDetachCampaignWorldPersists tests clearing an optional reference
func TestDetachCampaignWorldPersists(t *testing.T) {
	reg := setupTestRegistry(t)
	user := addTestUser(t, reg, "alice")
	app := setupTestApp(reg, user)

	world := &models.World{Name: "Anchor World", CreatorID: user.ID}
	worldID, _ := reg.Worlds.Add(world)

	created, status := doJSON(t, app, "POST", "/api/campaign/new", map[string]any{
		"name":  "Drifting Campaign",
		"world": worldID,
	})
	if status != 200 {
		t.Fatalf("Expected status 200, got %d", status)
	}
	id, _ := (*created)["id"].(string)
	if attached, _ := (*created)["world"].(map[string]any); attached == nil || attached["id"] != worldID {
		t.Fatalf("Expected world attached on create, got %v", (*created)["world"])
	}

	if _, status = doJSON(t, app, "POST", "/api/campaign/"+id, map[string]any{
		"world": "",
	}); status != 200 {
		t.Fatalf("Expected status 200, got %d", status)
	}

	stored, ok := reg.Campaigns.Get(id)
	if !ok {
		t.Fatal("Failed to reload campaign")
	}
	if stored.WorldID != "" {
		t.Errorf("Expected stored world_id cleared, got %q", stored.WorldID)
	}

	fetched, status := doJSON(t, app, "GET", "/api/campaign/"+id, nil)
	if status != 200 {
		t.Fatalf("Expected status 200, got %d", status)
	}
	if _, present := (*fetched)["world"]; present {
		t.Errorf("Expected no world on detached campaign, got %v", (*fetched)["world"])
	}
}
