package store

import (
	"encoding/json"
	"errors"
)

// Operator is a query filter operator. The set mirrors what the API needs:
// equality and array membership, combined with logical AND.
type Operator string

const (
	OpEqual         Operator = "=="
	OpArrayContains Operator = "array-contains"
)

// Filter is one (field, operator, value) query condition on a collection.
type Filter struct {
	Field string
	Op    Operator
	Value any
}

var (
	// ErrNotFound reports a record id absent from its collection.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate reports a create with an id that already exists.
	ErrDuplicate = errors.New("record already exists")
)

// RecordStore is a generic persistent collection of JSON documents keyed by
// id. One implementation is backed by the relational database through GORM;
// anything honoring these semantics can substitute in tests.
type RecordStore interface {
	// Get returns the document body, or ErrNotFound.
	Get(collection, id string) (json.RawMessage, error)
	// Create stores a new document, failing with ErrDuplicate if the id
	// already exists in the collection.
	Create(collection, id string, data json.RawMessage) error
	// Update merges the given fields onto an existing document, failing
	// with ErrNotFound if the id is absent.
	Update(collection, id string, data json.RawMessage) error
	// Delete removes a document. Deleting an absent id is not an error;
	// the bool reports whether a record was removed.
	Delete(collection, id string) (bool, error)
	// List returns up to limit documents from a collection (0 = all).
	List(collection string, limit int) ([]json.RawMessage, error)
	// Query returns documents matching all filters, up to limit (0 = all).
	Query(collection string, filters []Filter, limit int) ([]json.RawMessage, error)
}
