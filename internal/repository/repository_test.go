package repository

import (
	"testing"

	"github.com/lorekeep/lorekeep/internal/models"
	"github.com/lorekeep/lorekeep/internal/store"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestRegistry creates a registry over an in-memory SQLite database
func setupTestRegistry(t *testing.T) *Registry {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Record{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return NewRegistry(store.NewGormStore(db))
}

// TestAddGeneratesIdentity tests that Add fills in id and created_at
func TestAddGeneratesIdentity(t *testing.T) {
	reg := setupTestRegistry(t)

	world := &models.World{Name: "Arda"}
	id, ok := reg.Worlds.Add(world)
	if !ok {
		t.Fatal("Failed to add world")
	}
	if id == "" || world.ID != id {
		t.Errorf("Expected generated id on the entity, got %q / %q", id, world.ID)
	}
	if world.CreatedAt.IsZero() {
		t.Error("Expected created_at to be set")
	}
}

// TestAddKeepsProvidedID tests that an explicit id survives Add
func TestAddKeepsProvidedID(t *testing.T) {
	reg := setupTestRegistry(t)

	world := &models.World{Name: "Arda"}
	world.ID = "fixed-id"
	if _, ok := reg.Worlds.Add(world); !ok {
		t.Fatal("Failed to add world")
	}
	if world.ID != "fixed-id" {
		t.Errorf("Expected fixed-id, got %s", world.ID)
	}
}

// TestAddDuplicateFails tests that a second Add with the same id reports not-ok
func TestAddDuplicateFails(t *testing.T) {
	reg := setupTestRegistry(t)

	first := &models.World{Name: "Arda"}
	first.ID = "same"
	if _, ok := reg.Worlds.Add(first); !ok {
		t.Fatal("Failed to add world")
	}

	second := &models.World{Name: "Another"}
	second.ID = "same"
	if _, ok := reg.Worlds.Add(second); ok {
		t.Error("Expected duplicate add to fail")
	}
}

// TestGetRoundTrip tests that a stored entity decodes back with its fields
func TestGetRoundTrip(t *testing.T) {
	reg := setupTestRegistry(t)

	world := &models.World{
		Name:         "Arda",
		Description:  "The world that is",
		CreatorID:    "u1",
		BlueprintIDs: []string{"b1", "b2"},
		Settings:     models.Settings{IsPublic: true},
	}
	id, ok := reg.Worlds.Add(world)
	if !ok {
		t.Fatal("Failed to add world")
	}

	got, found := reg.Worlds.Get(id)
	if !found {
		t.Fatal("Expected world to be found")
	}
	if got.Name != "Arda" || got.CreatorID != "u1" || !got.Settings.IsPublic {
		t.Errorf("Fields did not round-trip: %+v", got)
	}
	if len(got.BlueprintIDs) != 2 {
		t.Errorf("Expected 2 blueprint ids, got %d", len(got.BlueprintIDs))
	}
}

// TestGetAbsent tests the silent not-found contract
func TestGetAbsent(t *testing.T) {
	reg := setupTestRegistry(t)

	if _, found := reg.Worlds.Get("nope"); found {
		t.Error("Expected absent world to report not found")
	}
}

// TestUpdateRefreshesTimestamp tests that Update stamps updated_at
func TestUpdateRefreshesTimestamp(t *testing.T) {
	reg := setupTestRegistry(t)

	world := &models.World{Name: "Arda"}
	id, _ := reg.Worlds.Add(world)

	world.Name = "Renamed"
	if !reg.Worlds.Update(world) {
		t.Fatal("Failed to update world")
	}

	got, found := reg.Worlds.Get(id)
	if !found {
		t.Fatal("Expected world to be found")
	}
	if got.Name != "Renamed" {
		t.Errorf("Expected renamed world, got %s", got.Name)
	}
	if got.UpdatedAt == nil {
		t.Error("Expected updated_at to be set after update")
	}
}

// TestUpdateAbsentFails tests that updating a missing record reports not-ok
func TestUpdateAbsentFails(t *testing.T) {
	reg := setupTestRegistry(t)

	world := &models.World{Name: "Ghost"}
	world.ID = "never-stored"
	if reg.Worlds.Update(world) {
		t.Error("Expected update of absent world to fail")
	}
}

// TestDeleteAndList tests delete plus the list cap
func TestDeleteAndList(t *testing.T) {
	reg := setupTestRegistry(t)

	var ids []string
	for _, name := range []string{"a", "b", "c"} {
		id, ok := reg.Worlds.Add(&models.World{Name: name})
		if !ok {
			t.Fatalf("Failed to add %s", name)
		}
		ids = append(ids, id)
	}

	if !reg.Worlds.Delete(ids[0]) {
		t.Error("Expected delete to succeed")
	}
	if reg.Worlds.Delete(ids[0]) {
		t.Error("Expected second delete to fail")
	}

	if got := len(reg.Worlds.List(0)); got != 2 {
		t.Errorf("Expected 2 worlds, got %d", got)
	}
	if got := len(reg.Worlds.List(1)); got != 1 {
		t.Errorf("Expected limited list of 1, got %d", got)
	}
}
