package catalog

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfoliohub/pkg/models"
)

func testProjects() []models.Project {
	return []models.Project{
		{
			ID:       "alpha",
			Title:    "Alpha",
			Subtitle: "First",
			HeroImages: []models.HeroImage{
				{Src: "alpha-hero.png"},
			},
			Sections: []models.Section{
				{ID: "overview", Title: "Overview", Media: []models.MediaItem{
					{Type: "image", Src: "a1.png"},
				}},
				{ID: "tech", Title: "Tech"},
			},
		},
		{
			ID:       "beta",
			Title:    "Beta",
			Subtitle: "Second",
			Sections: []models.Section{
				{ID: "overview", Title: "Overview"},
			},
		},
	}
}

func TestNewRepository(t *testing.T) {
	t.Run("preserves insertion order", func(t *testing.T) {
		repo := NewRepository(testProjects())
		assert.Equal(t, []string{"alpha", "beta"}, repo.ListIDs())
	})

	t.Run("first duplicate id wins", func(t *testing.T) {
		repo := NewRepository([]models.Project{
			{ID: "p", Title: "kept"},
			{ID: "p", Title: "dropped"},
		})
		require.Equal(t, 1, repo.Len())
		assert.Equal(t, "kept", repo.Get("p").Title)
	})

	t.Run("empty ids are skipped", func(t *testing.T) {
		repo := NewRepository([]models.Project{{Title: "anonymous"}})
		assert.Equal(t, 0, repo.Len())
	})
}

func TestRepository_Get(t *testing.T) {
	repo := NewRepository(testProjects())

	t.Run("exact match", func(t *testing.T) {
		p := repo.Get("alpha")
		require.NotNil(t, p)
		assert.Equal(t, "Alpha", p.Title)
	})

	t.Run("missing id returns nil without error", func(t *testing.T) {
		assert.Nil(t, repo.Get("gamma"))
	})

	t.Run("returned project is a copy", func(t *testing.T) {
		p := repo.Get("alpha")
		require.NotNil(t, p)
		p.Title = "mutated"
		p.Sections[0].Media[0].Src = "mutated.png"
		p.HeroImages[0].Src = "mutated-hero.png"

		fresh := repo.Get("alpha")
		assert.Equal(t, "Alpha", fresh.Title)
		assert.Equal(t, "a1.png", fresh.Sections[0].Media[0].Src)
		assert.Equal(t, "alpha-hero.png", fresh.HeroImages[0].Src)
	})
}

// Readers traverse section media from Get snapshots while AppendMedia
// grows the backing slices; run with -race.
func TestRepository_ConcurrentReadsAndAppends(t *testing.T) {
	repo := NewRepository(testProjects())
	item := models.MediaItem{Type: "image", Src: "burst.png"}

	const writers, appendsPerWriter = 4, 250

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < appendsPerWriter; j++ {
				repo.AppendMedia("alpha", "overview", item)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < appendsPerWriter; j++ {
				p := repo.Get("alpha")
				_ = AllMedia(p)
				_ = TotalMediaCount(p)
			}
		}()
	}
	wg.Wait()

	// one authored item plus every append
	assert.Equal(t, 1+writers*appendsPerWriter, TotalMediaCount(repo.Get("alpha")))
}

func TestRepository_List(t *testing.T) {
	repo := NewRepository(testProjects())
	list := repo.List()
	require.Len(t, list, 2)

	assert.Equal(t, "alpha", list[0].ID)
	assert.Equal(t, "alpha-hero.png", list[0].Thumbnail)
	assert.Equal(t, 1, list[0].MediaCount)

	assert.Equal(t, "beta", list[1].ID)
	assert.Equal(t, "", list[1].Thumbnail)
	assert.Equal(t, 0, list[1].MediaCount)
}

func TestRepository_AppendMedia(t *testing.T) {
	item := models.MediaItem{Type: "mp4", Src: "new.mp4", Caption: "Added"}

	t.Run("appends to the end of a matching section", func(t *testing.T) {
		repo := NewRepository(testProjects())
		ok := repo.AppendMedia("alpha", "overview", item)
		require.True(t, ok)

		sec := FindSection(repo.Get("alpha"), "overview")
		require.NotNil(t, sec)
		require.Len(t, sec.Media, 2)
		assert.Equal(t, "new.mp4", sec.Media[1].Src)
	})

	t.Run("unknown project is a no-op", func(t *testing.T) {
		repo := NewRepository(testProjects())
		assert.False(t, repo.AppendMedia("gamma", "overview", item))
	})

	t.Run("unknown section is a no-op", func(t *testing.T) {
		repo := NewRepository(testProjects())
		assert.False(t, repo.AppendMedia("alpha", "nope", item))
		assert.Equal(t, 1, TotalMediaCount(repo.Get("alpha")))
	})

	t.Run("project without sections is a no-op", func(t *testing.T) {
		repo := NewRepository([]models.Project{{ID: "legacy", ExtendedDescription: "old"}})
		assert.False(t, repo.AppendMedia("legacy", "overview", item))
	})
}

func TestRepository_ProjectsMissingMedia(t *testing.T) {
	repo := NewRepository(testProjects())
	// beta has neither a hero nor any section media
	assert.Equal(t, []string{"beta"}, repo.ProjectsMissingMedia())
}
