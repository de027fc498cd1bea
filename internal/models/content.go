package models

import (
	"time"

	"github.com/google/uuid"
)

// ImagePlacement describes how a sourced image relates to the unit's text.
// Slides use background/foreground, sections use inline/wrapped.
type ImagePlacement string

const (
	PlacementBackground ImagePlacement = "background"
	PlacementForeground ImagePlacement = "foreground"
	PlacementInline     ImagePlacement = "inline"
	PlacementWrapped    ImagePlacement = "wrapped"
)

// Section is one unit of a word project. Content is nil until generated.
type Section struct {
	ID             uuid.UUID       `db:"id" json:"id"`
	ProjectID      uuid.UUID       `db:"project_id" json:"projectId"`
	Header         string          `db:"header" json:"header"`
	Content        *string         `db:"content" json:"content"`
	Position       int             `db:"position" json:"position"`
	ImageURL       *string         `db:"image_url" json:"imageUrl,omitempty"`
	ImagePlacement *ImagePlacement `db:"image_placement" json:"imagePlacement,omitempty"`
	CreatedAt      time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updatedAt"`
}

// Slide is one unit of a powerpoint project. Content is nil until generated.
type Slide struct {
	ID             uuid.UUID       `db:"id" json:"id"`
	ProjectID      uuid.UUID       `db:"project_id" json:"projectId"`
	Title          string          `db:"title" json:"title"`
	Content        *string         `db:"content" json:"content"`
	Position       int             `db:"position" json:"position"`
	ImageURL       *string         `db:"image_url" json:"imageUrl,omitempty"`
	ImagePlacement *ImagePlacement `db:"image_placement" json:"imagePlacement,omitempty"`
	CreatedAt      time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updatedAt"`
}

// ContentUnitType names which collection a content-scoped operation targets.
type ContentUnitType string

const (
	UnitSection ContentUnitType = "section"
	UnitSlide   ContentUnitType = "slide"
)
