package repository

import (
	"encoding/json"
	"log"
	"time"

	"github.com/lorekeep/lorekeep/internal/models"
	"github.com/lorekeep/lorekeep/internal/store"
)

// record constrains the pointer type of a repository's entity shape.
type record[T any] interface {
	*T
	models.Entity
}

// Repository binds one collection name and one entity shape over the record
// store. It is a typed passthrough: no entity-specific behavior lives here.
type Repository[T any, PT record[T]] struct {
	store      store.RecordStore
	collection string
}

// New returns a repository for the given collection.
func New[T any, PT record[T]](s store.RecordStore, collection string) *Repository[T, PT] {
	return &Repository[T, PT]{store: s, collection: collection}
}

// Get retrieves an entity by id. Absence and backend errors both report as
// not-ok; read failures never surface to the caller.
func (r *Repository[T, PT]) Get(id string) (PT, bool) {
	data, err := r.store.Get(r.collection, id)
	if err != nil {
		return nil, false
	}
	return r.decode(data)
}

// Add persists a new entity, generating the id and creation timestamp when
// absent. Returns the id, or not-ok if a record with that id already exists
// or the store rejects the write.
func (r *Repository[T, PT]) Add(entity PT) (string, bool) {
	if entity.GetID() == "" {
		entity.SetID(models.NewID())
	}
	if entity.GetCreatedAt().IsZero() {
		entity.SetCreatedAt(time.Now().UTC())
	}

	data, err := json.Marshal(entity)
	if err != nil {
		log.Printf("Error encoding %s/%s: %v", r.collection, entity.GetID(), err)
		return "", false
	}
	if err := r.store.Create(r.collection, entity.GetID(), data); err != nil {
		return "", false
	}
	return entity.GetID(), true
}

// Update merges the entity's fields onto its stored record and refreshes the
// update timestamp. Fails if no record with that id exists.
func (r *Repository[T, PT]) Update(entity PT) bool {
	entity.Touch(time.Now().UTC())

	data, err := json.Marshal(entity)
	if err != nil {
		log.Printf("Error encoding %s/%s: %v", r.collection, entity.GetID(), err)
		return false
	}
	return r.store.Update(r.collection, entity.GetID(), data) == nil
}

// Delete removes an entity by id.
func (r *Repository[T, PT]) Delete(id string) bool {
	ok, err := r.store.Delete(r.collection, id)
	return err == nil && ok
}

// List returns up to limit entities (0 = all).
func (r *Repository[T, PT]) List(limit int) []PT {
	docs, err := r.store.List(r.collection, limit)
	if err != nil {
		return nil
	}
	return r.decodeAll(docs)
}

// Query returns entities matching all filters, up to limit (0 = all).
func (r *Repository[T, PT]) Query(filters []store.Filter, limit int) []PT {
	docs, err := r.store.Query(r.collection, filters, limit)
	if err != nil {
		return nil
	}
	return r.decodeAll(docs)
}

func (r *Repository[T, PT]) decode(data json.RawMessage) (PT, bool) {
	entity := PT(new(T))
	if err := json.Unmarshal(data, entity); err != nil {
		log.Printf("Error decoding record from %s: %v", r.collection, err)
		return nil, false
	}
	return entity, true
}

func (r *Repository[T, PT]) decodeAll(docs []json.RawMessage) []PT {
	entities := make([]PT, 0, len(docs))
	for _, doc := range docs {
		if entity, ok := r.decode(doc); ok {
			entities = append(entities, entity)
		}
	}
	return entities
}
