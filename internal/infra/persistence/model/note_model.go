// Package model holds the GORM table mappings.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NoteModel is the GORM-specific struct for the 'notes' table.
// Titles are unique per owner among notes that are not soft deleted.
type NoteModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_notes_owner_title,priority:1,where:deleted_at IS NULL"`
	Title     string    `gorm:"type:varchar(120);not null;uniqueIndex:idx_notes_owner_title,priority:2,where:deleted_at IS NULL"`
	Body      string    `gorm:"type:text;not null;default:''"`
	Tags      []string  `gorm:"type:jsonb;serializer:json;not null"`
	Published bool      `gorm:"not null;default:false;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (NoteModel) TableName() string {
	return "notes"
}
