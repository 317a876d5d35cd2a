package models

import (
	"time"
)

// Record is the persisted row shape for every collection: one JSON document
// per entity, keyed by collection name and record id.
type Record struct {
	RowID      uint64 `gorm:"primaryKey;autoIncrement"`
	Collection string `gorm:"size:64;not null;index:idx_collection_record,unique"`
	RecordID   string `gorm:"size:64;not null;index:idx_collection_record,unique"`
	Data       JSON   `gorm:"type:json"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName overrides the table name for Record
func (Record) TableName() string {
	return "records"
}
