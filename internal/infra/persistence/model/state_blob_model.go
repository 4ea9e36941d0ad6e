package model

import (
	"time"
)

// StateBlobModel is the GORM-specific struct for the 'state_blobs' table.
// One row per storage key; Data is the JSON snapshot envelope.
type StateBlobModel struct {
	Key       string `gorm:"column:state_key;type:varchar(64);primaryKey"`
	Data      []byte `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StateBlobModel) TableName() string {
	return "state_blobs"
}
