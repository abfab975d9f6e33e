package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfoliohub/pkg/models"
)

func statsProject() *models.Project {
	return &models.Project{
		ID:          "demo",
		Title:       "Demo",
		Subtitle:    "Stack",
		Description: "About.",
		Credits:     "Year: 2024",
		Sections: []models.Section{
			{ID: "one", Title: "One", Media: []models.MediaItem{
				{Type: "image", Src: "a.png"},
				{Type: "mp4", Src: "b.mp4"},
			}},
			{ID: "two", Title: "Two"},
			{ID: "three", Title: "Three", Media: []models.MediaItem{
				{Type: "image", Src: "c.png"},
			}},
		},
	}
}

func TestAllMedia_OrderAndTags(t *testing.T) {
	got := AllMedia(statsProject())
	require.Len(t, got, 3)

	assert.Equal(t, "a.png", got[0].Src)
	assert.Equal(t, "one", got[0].SectionID)
	assert.Equal(t, "One", got[0].SectionTitle)
	assert.Equal(t, "b.mp4", got[1].Src)
	assert.Equal(t, "c.png", got[2].Src)
	assert.Equal(t, "three", got[2].SectionID)

	assert.Nil(t, AllMedia(nil))
}

func TestMediaByType(t *testing.T) {
	images := MediaByType(statsProject(), "image")
	require.Len(t, images, 2)
	assert.Equal(t, "a.png", images[0].Src)
	assert.Equal(t, "c.png", images[1].Src)

	// exact match only; mp4 is not "video" here
	assert.Empty(t, MediaByType(statsProject(), "video"))
}

func TestFindSection(t *testing.T) {
	p := statsProject()

	sec := FindSection(p, "two")
	require.NotNil(t, sec)
	assert.Equal(t, "Two", sec.Title)

	assert.Nil(t, FindSection(p, "missing"))
	assert.Nil(t, FindSection(nil, "one"))
}

func TestFindSection_FirstMatchWins(t *testing.T) {
	p := &models.Project{Sections: []models.Section{
		{ID: "dup", Title: "first"},
		{ID: "dup", Title: "second"},
	}}
	sec := FindSection(p, "dup")
	require.NotNil(t, sec)
	assert.Equal(t, "first", sec.Title)
}

func TestSectionsWithMedia(t *testing.T) {
	got := SectionsWithMedia(statsProject())
	require.Len(t, got, 2)
	assert.Equal(t, "one", got[0].ID)
	assert.Equal(t, "three", got[1].ID)
}

func TestTotalMediaCount(t *testing.T) {
	assert.Equal(t, 3, TotalMediaCount(statsProject()))
	assert.Equal(t, 0, TotalMediaCount(nil))
	assert.Equal(t, 0, TotalMediaCount(&models.Project{}))
}

func TestValidate(t *testing.T) {
	t.Run("complete sectioned project is valid", func(t *testing.T) {
		report := Validate(statsProject())
		assert.True(t, report.IsValid)
		assert.True(t, report.StructureValid)
		assert.Empty(t, report.MissingFields)
		assert.Equal(t, 3, report.SectionCount)
		assert.Equal(t, 3, report.TotalMediaItems)
		assert.False(t, report.HasHeroImage)
	})

	t.Run("missing fields are named", func(t *testing.T) {
		report := Validate(&models.Project{
			Title:    "Only title",
			Sections: []models.Section{{ID: "s"}},
		})
		assert.False(t, report.IsValid)
		assert.ElementsMatch(t, []string{"subtitle", "description", "credits"}, report.MissingFields)
	})

	t.Run("legacy blob project is structurally valid", func(t *testing.T) {
		report := Validate(&models.Project{
			Title:               "Old",
			Subtitle:            "Stack",
			Description:         "About",
			Credits:             "Year: 2020",
			ExtendedDescription: "the whole story",
		})
		assert.True(t, report.IsValid)
		assert.True(t, report.HasOldStructure)
		assert.False(t, report.HasSections)
	})

	t.Run("neither sections nor legacy blob is invalid", func(t *testing.T) {
		report := Validate(&models.Project{
			Title: "Bare", Subtitle: "s", Description: "d", Credits: "c",
		})
		assert.False(t, report.IsValid)
		assert.False(t, report.StructureValid)
	})

	t.Run("missing fields is never nil", func(t *testing.T) {
		report := Validate(statsProject())
		assert.NotNil(t, report.MissingFields)
	})
}
