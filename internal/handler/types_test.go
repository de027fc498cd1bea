package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"docgen-server/internal/models"
)

func TestConfigurationRequestPayload(t *testing.T) {
	t.Run("sections resolve in position order", func(t *testing.T) {
		req := configurationRequest{Sections: []sectionConfig{
			{Header: "Results", Position: 2},
			{Header: "Introduction", Position: 0},
			{Header: "Methods", Position: 1},
		}}

		kind, items, err := req.payload()

		assert.NoError(t, err)
		assert.Equal(t, models.UnitSection, kind)
		assert.Equal(t, []string{"Introduction", "Methods", "Results"}, items)
	})

	t.Run("slides keep array order on equal positions", func(t *testing.T) {
		req := configurationRequest{Slides: []slideConfig{
			{Title: "Overview"},
			{Title: "Market"},
			{Title: "Roadmap"},
		}}

		kind, items, err := req.payload()

		assert.NoError(t, err)
		assert.Equal(t, models.UnitSlide, kind)
		assert.Equal(t, []string{"Overview", "Market", "Roadmap"}, items)
	})

	t.Run("mixing sections and slides is rejected", func(t *testing.T) {
		req := configurationRequest{
			Sections: []sectionConfig{{Header: "Introduction"}},
			Slides:   []slideConfig{{Title: "Overview"}},
		}

		_, _, err := req.payload()
		assert.Error(t, err)
	})

	t.Run("empty body is rejected", func(t *testing.T) {
		_, _, err := configurationRequest{}.payload()
		assert.Error(t, err)
	})
}
