package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/lorekeep/lorekeep/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GormStore implements RecordStore on the relational database, one JSON
// document per row in the records table.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore returns a RecordStore backed by the given GORM connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// quiet suppresses the record-not-found log noise on read paths.
func (s *GormStore) quiet() *gorm.DB {
	return s.db.Session(&gorm.Session{Logger: s.db.Logger.LogMode(logger.Silent)})
}

// Get returns the document body, or ErrNotFound.
func (s *GormStore) Get(collection, id string) (json.RawMessage, error) {
	var rec models.Record
	err := s.quiet().
		Where("collection = ? AND record_id = ?", collection, id).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return json.RawMessage(rec.Data.JSON), nil
}

// Create stores a new document. Fails with ErrDuplicate if the id exists.
func (s *GormStore) Create(collection, id string, data json.RawMessage) error {
	var count int64
	if err := s.quiet().Model(&models.Record{}).
		Where("collection = ? AND record_id = ?", collection, id).
		Count(&count).Error; err != nil {
		log.Printf("Error checking %s/%s before create: %v", collection, id, err)
		return err
	}
	if count > 0 {
		log.Printf("Refusing to create duplicate %s/%s", collection, id)
		return ErrDuplicate
	}

	rec := models.Record{
		Collection: collection,
		RecordID:   id,
		Data:       models.JSON{JSON: datatypes.JSON(data)},
	}
	if err := s.db.Create(&rec).Error; err != nil {
		log.Printf("Error creating %s/%s: %v", collection, id, err)
		return err
	}
	return nil
}

// Update merges the given fields onto an existing document. Fails with
// ErrNotFound if the id is absent.
func (s *GormStore) Update(collection, id string, data json.RawMessage) error {
	var rec models.Record
	err := s.quiet().
		Where("collection = ? AND record_id = ?", collection, id).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Refusing to update absent %s/%s", collection, id)
			return ErrNotFound
		}
		return err
	}

	merged, err := mergeDocuments(json.RawMessage(rec.Data.JSON), data)
	if err != nil {
		log.Printf("Error merging update for %s/%s: %v", collection, id, err)
		return err
	}

	rec.Data = models.JSON{JSON: datatypes.JSON(merged)}
	if err := s.db.Model(&models.Record{}).
		Where("collection = ? AND record_id = ?", collection, id).
		Update("data", rec.Data).Error; err != nil {
		log.Printf("Error updating %s/%s: %v", collection, id, err)
		return err
	}
	return nil
}

// Delete removes a document by id.
func (s *GormStore) Delete(collection, id string) (bool, error) {
	res := s.db.
		Where("collection = ? AND record_id = ?", collection, id).
		Delete(&models.Record{})
	if res.Error != nil {
		log.Printf("Error deleting %s/%s: %v", collection, id, res.Error)
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// List returns up to limit documents from a collection (0 = all).
func (s *GormStore) List(collection string, limit int) ([]json.RawMessage, error) {
	query := s.quiet().Where("collection = ?", collection)
	if limit > 0 {
		query = query.Limit(limit)
	}

	var recs []models.Record
	if err := query.Find(&recs).Error; err != nil {
		log.Printf("Error listing %s: %v", collection, err)
		return nil, err
	}

	docs := make([]json.RawMessage, 0, len(recs))
	for _, rec := range recs {
		docs = append(docs, json.RawMessage(rec.Data.JSON))
	}
	return docs, nil
}

// Query returns documents matching all filters. Equality filters push down
// to the database as JSON path expressions; array-containment filters
// evaluate over the candidate rows after fetch, since JSON_CONTAINS has no
// portable equivalent across the supported drivers.
func (s *GormStore) Query(collection string, filters []Filter, limit int) ([]json.RawMessage, error) {
	query := s.quiet().Where("collection = ?", collection)

	var contains []Filter
	for _, f := range filters {
		switch f.Op {
		case OpEqual:
			query = query.Where(datatypes.JSONQuery("data").Equals(f.Value, f.Field))
		case OpArrayContains:
			contains = append(contains, f)
		default:
			return nil, fmt.Errorf("unsupported filter operator: %s", f.Op)
		}
	}
	if limit > 0 && len(contains) == 0 {
		query = query.Limit(limit)
	}

	var recs []models.Record
	if err := query.Find(&recs).Error; err != nil {
		log.Printf("Error querying %s with filters %v: %v", collection, filters, err)
		return nil, err
	}

	docs := make([]json.RawMessage, 0, len(recs))
	for _, rec := range recs {
		doc := json.RawMessage(rec.Data.JSON)
		if !matchesContains(doc, contains) {
			continue
		}
		docs = append(docs, doc)
		if limit > 0 && len(docs) == limit {
			break
		}
	}
	return docs, nil
}

// matchesContains reports whether every array-containment filter holds for
// the document.
func matchesContains(doc json.RawMessage, filters []Filter) bool {
	if len(filters) == 0 {
		return true
	}

	var fields map[string]any
	if err := json.Unmarshal(doc, &fields); err != nil {
		return false
	}

	for _, f := range filters {
		arr, ok := fields[f.Field].([]any)
		if !ok {
			return false
		}
		found := false
		want := fmt.Sprintf("%v", f.Value)
		for _, el := range arr {
			if fmt.Sprintf("%v", el) == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// mergeDocuments overlays the fields of patch onto base at the top level.
func mergeDocuments(base, patch json.RawMessage) (json.RawMessage, error) {
	var baseFields, patchFields map[string]json.RawMessage
	if err := json.Unmarshal(base, &baseFields); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(patch, &patchFields); err != nil {
		return nil, err
	}
	for k, v := range patchFields {
		baseFields[k] = v
	}
	return json.Marshal(baseFields)
}
