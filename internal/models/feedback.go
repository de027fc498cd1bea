package models

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackKind is the reaction a user left on a content unit.
type FeedbackKind string

const (
	FeedbackLike    FeedbackKind = "like"
	FeedbackDislike FeedbackKind = "dislike"
)

// IsValid reports whether k is a known reaction.
func (k FeedbackKind) IsValid() bool {
	return k == FeedbackLike || k == FeedbackDislike
}

// Feedback is a per-user reaction on a section or slide. One row per
// (user, unit); setting a new kind replaces the previous one.
type Feedback struct {
	ID        uuid.UUID       `db:"id" json:"id"`
	UnitType  ContentUnitType `db:"unit_type" json:"unitType"`
	UnitID    uuid.UUID       `db:"unit_id" json:"unitId"`
	UserID    uuid.UUID       `db:"user_id" json:"userId"`
	Kind      FeedbackKind    `db:"kind" json:"kind"`
	CreatedAt time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time       `db:"updated_at" json:"updatedAt"`
}
