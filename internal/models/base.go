package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// SentinelNewID is the reserved id clients use to request a default template
// or to create a record that does not exist yet. It is never persisted.
const SentinelNewID = "new"

// NewID generates a 32 character hex record id.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Base carries the fields shared by every persisted entity.
type Base struct {
	ID        string     `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// GetID returns the record id.
func (b *Base) GetID() string { return b.ID }

// SetID sets the record id.
func (b *Base) SetID(id string) { b.ID = id }

// GetCreatedAt returns the creation timestamp.
func (b *Base) GetCreatedAt() time.Time { return b.CreatedAt }

// SetCreatedAt sets the creation timestamp.
func (b *Base) SetCreatedAt(t time.Time) { b.CreatedAt = t }

// Touch refreshes the update timestamp.
func (b *Base) Touch(t time.Time) { b.UpdatedAt = &t }

// Entity is implemented by every persisted entity via Base.
type Entity interface {
	GetID() string
	SetID(string)
	GetCreatedAt() time.Time
	SetCreatedAt(time.Time)
	Touch(time.Time)
}

// Owned is implemented by entities with an immutable owning creator.
type Owned interface {
	Owner() string
	SetOwner(string)
}
