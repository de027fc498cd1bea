package models

import (
	"time"

	"github.com/google/uuid"
)

// Refinement is one append-only history entry for a content unit:
// the prompt the user sent and the content it produced.
type Refinement struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	UnitType        ContentUnitType `db:"unit_type" json:"unitType"`
	UnitID          uuid.UUID       `db:"unit_id" json:"unitId"`
	UserID          uuid.UUID       `db:"user_id" json:"userId"`
	Prompt          string          `db:"prompt" json:"prompt"`
	PreviousContent *string         `db:"previous_content" json:"previousContent"`
	NewContent      string          `db:"new_content" json:"newContent"`
	CreatedAt       time.Time       `db:"created_at" json:"createdAt"`
}
