package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a user note attached to a section or slide.
// Only the author may edit or delete it.
type Comment struct {
	ID        uuid.UUID       `db:"id" json:"id"`
	UnitType  ContentUnitType `db:"unit_type" json:"unitType"`
	UnitID    uuid.UUID       `db:"unit_id" json:"unitId"`
	UserID    uuid.UUID       `db:"user_id" json:"userId"`
	Text      string          `db:"text" json:"text"`
	CreatedAt time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time       `db:"updated_at" json:"updatedAt"`
}
