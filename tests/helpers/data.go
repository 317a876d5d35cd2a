package helpers

import (
	"encoding/json"
	"testing"

	"github.com/lorekeep/lorekeep/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CreateTestRecord inserts a document into the records table, bypassing the
// repository layer. The doc is marshaled as-is, so callers control the exact
// stored shape, dangling references included.
func CreateTestRecord(t *testing.T, db *gorm.DB, collection, id string, doc any) {
	t.Helper()
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal %s/%s: %v", collection, id, err)
	}

	rec := models.Record{
		Collection: collection,
		RecordID:   id,
		Data:       models.JSON{JSON: datatypes.JSON(data)},
	}
	if err := db.Create(&rec).Error; err != nil {
		t.Fatalf("Failed to create record %s/%s: %v", collection, id, err)
	}
}

// CreateTestUser seeds a user record and returns its id.
func CreateTestUser(t *testing.T, db *gorm.DB, username, email string) string {
	t.Helper()
	id := models.NewID()
	CreateTestRecord(t, db, models.CollectionUsers, id, map[string]any{
		"id":       id,
		"username": username,
		"email":    email,
	})
	return id
}

// CreateTestWorld seeds a world record owned by creatorID and returns its id.
func CreateTestWorld(t *testing.T, db *gorm.DB, creatorID, name string, isPublic bool) string {
	t.Helper()
	id := models.NewID()
	CreateTestRecord(t, db, models.CollectionWorlds, id, map[string]any{
		"id":         id,
		"name":       name,
		"creator_id": creatorID,
		"settings":   map[string]any{"is_public": isPublic},
	})
	return id
}
