package models

import (
	"time"

	"github.com/google/uuid"
)

// ProjectType distinguishes which editor and content collection a project uses.
type ProjectType string

const (
	ProjectTypeWord       ProjectType = "word"
	ProjectTypePowerPoint ProjectType = "powerpoint"
)

// IsValid reports whether t is one of the supported document types.
func (t ProjectType) IsValid() bool {
	return t == ProjectTypeWord || t == ProjectTypePowerPoint
}

// ProjectStatus is the project lifecycle state.
type ProjectStatus string

const (
	StatusConfiguring        ProjectStatus = "configuring"
	StatusGenerating         ProjectStatus = "generating"
	StatusReady              ProjectStatus = "ready"
	StatusPartiallyGenerated ProjectStatus = "partially_generated"
	StatusReadyForRefinement ProjectStatus = "ready_for_refinement"
)

// Screen is the client destination a status routes to.
type Screen string

const (
	ScreenConfiguration Screen = "configuration"
	ScreenEditor        Screen = "editor"
)

// Screen maps a status to its destination screen. The mapping is total:
// any unrecognized status routes to the configuration screen so that a
// stale or future status value never strands the user.
func (s ProjectStatus) Screen() Screen {
	switch s {
	case StatusGenerating, StatusReady, StatusPartiallyGenerated, StatusReadyForRefinement:
		return ScreenEditor
	case StatusConfiguring:
		return ScreenConfiguration
	default:
		return ScreenConfiguration
	}
}

// Project identifies one document-generation effort. Depending on Type it
// owns an ordered list of sections (word) or slides (powerpoint).
type Project struct {
	ID        uuid.UUID     `db:"id" json:"id"`
	UserID    uuid.UUID     `db:"user_id" json:"userId"`
	Name      string        `db:"name" json:"name"`
	Type      ProjectType   `db:"type" json:"type"`
	Topic     string        `db:"topic" json:"topic"`
	Status    ProjectStatus `db:"status" json:"status"`
	CreatedAt time.Time     `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time     `db:"updated_at" json:"updatedAt"`

	Sections []Section `db:"-" json:"sections,omitempty"`
	Slides   []Slide   `db:"-" json:"slides,omitempty"`
}
