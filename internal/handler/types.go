package handler

import (
	"errors"
	"sort"

	"docgen-server/internal/models"
)

// --- Validation limits ---
const (
	maxProjectNameLength = 255
	maxTopicLength       = 5000
	minPasswordLength    = 6
	maxPasswordLength    = 100
)

// projectNameForbiddenChars are rejected so the name can double as an
// export filename on every platform.
const projectNameForbiddenChars = `<>:"/\|?*`

// --- Request structs ---

type registerRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required,max=255"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type createProjectRequest struct {
	Name  string             `json:"name" binding:"required"`
	Type  models.ProjectType `json:"type" binding:"required"`
	Topic string             `json:"topic" binding:"required"`
}

type updateProjectRequest struct {
	Name  string `json:"name" binding:"required"`
	Topic string `json:"topic" binding:"required"`
}

// configurationRequest carries the full replacement structure of a project.
// Exactly one of the two keys must be present; the service rejects a key
// that does not match the project's document type.
type configurationRequest struct {
	Sections []sectionConfig `json:"sections"`
	Slides   []slideConfig   `json:"slides"`
}

type sectionConfig struct {
	Header   string `json:"header"`
	Position int    `json:"position"`
}

type slideConfig struct {
	Title    string `json:"title"`
	Position int    `json:"position"`
}

// payload resolves which kind of structure the request carries and flattens
// it into an ordered item list. Client-sent positions decide the order;
// equal positions keep their array order.
func (r configurationRequest) payload() (models.ContentUnitType, []string, error) {
	switch {
	case r.Sections != nil && r.Slides != nil:
		return "", nil, errors.New("configuration cannot mix sections and slides")
	case r.Sections != nil:
		units := make([]orderedItem, len(r.Sections))
		for i, s := range r.Sections {
			units[i] = orderedItem{text: s.Header, position: s.Position}
		}
		return models.UnitSection, flattenOrdered(units), nil
	case r.Slides != nil:
		units := make([]orderedItem, len(r.Slides))
		for i, s := range r.Slides {
			units[i] = orderedItem{text: s.Title, position: s.Position}
		}
		return models.UnitSlide, flattenOrdered(units), nil
	default:
		return "", nil, errors.New("configuration requires either sections or slides")
	}
}

type orderedItem struct {
	text     string
	position int
}

func flattenOrdered(units []orderedItem) []string {
	sort.SliceStable(units, func(i, j int) bool { return units[i].position < units[j].position })
	items := make([]string, len(units))
	for i, u := range units {
		items[i] = u.text
	}
	return items
}

type templateAcceptRequest struct {
	Items []string `json:"items" binding:"required"`
}

type refineRequest struct {
	Prompt string `json:"prompt" binding:"required,max=2000"`
}

type feedbackRequest struct {
	Kind models.FeedbackKind `json:"kind" binding:"required"`
}

type commentRequest struct {
	Text string `json:"text" binding:"required"`
}

// --- Response structs ---

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type loginResponse struct {
	AccessToken string       `json:"accessToken"`
	User        userResponse `json:"user"`
}

// projectResponse mirrors models.Project plus the screen the client should
// open for the project's current status.
type projectResponse struct {
	*models.Project
	Screen models.Screen `json:"screen"`
}

type templateResponse struct {
	Items []string `json:"items"`
}

func newUserResponse(u *models.User) userResponse {
	return userResponse{ID: u.ID.String(), Email: u.Email, Name: u.Name}
}

func newProjectResponse(p *models.Project) projectResponse {
	return projectResponse{Project: p, Screen: p.Status.Screen()}
}
