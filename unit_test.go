package punter_test

import (
	"testing"

	"github.com/fwojciec/punter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid unit", func(t *testing.T) {
		t.Parallel()

		u := &punter.Unit{Name: "Engineer"}

		assert.NoError(t, u.Validate())
	})

	t.Run("missing name", func(t *testing.T) {
		t.Parallel()

		u := &punter.Unit{}

		err := u.Validate()

		require.Error(t, err)
		assert.Equal(t, punter.EINVALID, punter.ErrorCode(err))
	})
}

func TestUnitMerge(t *testing.T) {
	t.Parallel()

	t.Run("detail fields fill in the record", func(t *testing.T) {
		t.Parallel()

		u := &punter.Unit{
			Name:  "Engineer",
			Links: punter.Links{Path: "/Engineer"},
		}

		u.Merge(&punter.UnitDetail{
			Name:      "Engineer",
			Abilities: "Click: Gain E.",
			ChangeHistory: map[string][]string{
				"2018-03-01": {"Cost reduced."},
			},
			Links:    punter.Links{Image: "https://img.example.com/e.png"},
			Position: "Middle Far Right",
		})

		assert.Equal(t, "Click: Gain E.", u.Abilities)
		assert.Equal(t, map[string][]string{"2018-03-01": {"Cost reduced."}}, u.ChangeHistory)
		assert.Equal(t, "Middle Far Right", u.Position)
	})

	t.Run("links merge one level deep", func(t *testing.T) {
		t.Parallel()

		u := &punter.Unit{
			Name:  "Engineer",
			Links: punter.Links{Path: "/Engineer"},
		}

		u.Merge(&punter.UnitDetail{
			Links: punter.Links{
				Image: "https://img.example.com/e.png",
				Panel: "https://img.example.com/e_panel.png",
			},
		})

		// Table-sourced path survives the merge.
		assert.Equal(t, "/Engineer", u.Links.Path)
		assert.Equal(t, "https://img.example.com/e.png", u.Links.Image)
		assert.Equal(t, "https://img.example.com/e_panel.png", u.Links.Panel)
	})

	t.Run("nil detail is a no-op", func(t *testing.T) {
		t.Parallel()

		u := &punter.Unit{Name: "Engineer"}

		u.Merge(nil)

		assert.Equal(t, "Engineer", u.Name)
	})
}

func TestUnitSetNames(t *testing.T) {
	t.Parallel()

	s := punter.UnitSet{
		"Wall":     {Name: "Wall"},
		"Drone":    {Name: "Drone"},
		"Engineer": {Name: "Engineer"},
	}

	assert.Equal(t, []string{"Drone", "Engineer", "Wall"}, s.Names())
}

func TestUnitSetFilter(t *testing.T) {
	t.Parallel()

	s := punter.UnitSet{
		"Wall":     {Name: "Wall"},
		"Drone":    {Name: "Drone"},
		"Engineer": {Name: "Engineer"},
	}

	t.Run("empty include selects everything", func(t *testing.T) {
		t.Parallel()

		assert.Len(t, s.Filter(nil), 3)
	})

	t.Run("all sentinel selects everything", func(t *testing.T) {
		t.Parallel()

		assert.Len(t, s.Filter([]string{"Drone", punter.IncludeAll}), 3)
	})

	t.Run("include list selects exactly the named units", func(t *testing.T) {
		t.Parallel()

		filtered := s.Filter([]string{"Drone", "Wall"})

		assert.Equal(t, []string{"Drone", "Wall"}, filtered.Names())
	})

	t.Run("names absent from the source are ignored", func(t *testing.T) {
		t.Parallel()

		filtered := s.Filter([]string{"Drone", "Gauss Cannon"})

		assert.Equal(t, []string{"Drone"}, filtered.Names())
	})
}
