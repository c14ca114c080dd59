package etree_test

import (
	"context"
	"path/filepath"
	"testing"

	beevik "github.com/beevik/etree"
	"github.com/fwojciec/punter"
	"github.com/fwojciec/punter/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUnits() punter.UnitSet {
	return punter.UnitSet{
		"Engineer": {
			Name:      "Engineer",
			Type:      1,
			UnitSpell: "Unit",
			Costs:     punter.Costs{Gold: 2},
			Stats:     punter.Stats{Health: 1},
			Attributes: punter.Attributes{
				Supply:  1,
				Blocker: true,
			},
			Abilities: "Click: Gain E.",
			ChangeHistory: map[string][]string{
				"2018-03-01": {"Cost reduced from 3 to 2."},
			},
			Links:    punter.Links{Path: "/Engineer"},
			Position: "Middle Far Right",
		},
		"Wall": {
			Name:      "Wall",
			Type:      1,
			UnitSpell: "Unit",
			Costs:     punter.Costs{Gold: 5, Blue: 1},
			Stats:     punter.Stats{Health: 10},
			Links:     punter.Links{Path: "/Wall"},
		},
	}
}

func TestXMLWriter_WriteUnits(t *testing.T) {
	t.Parallel()

	t.Run("produces a well-formed document", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "units.xml")

		err := etree.NewXMLWriter(path).WriteUnits(context.Background(), testUnits())
		require.NoError(t, err)

		doc := beevik.NewDocument()
		require.NoError(t, doc.ReadFromFile(path))

		root := doc.SelectElement("units")
		require.NotNil(t, root)

		elements := root.SelectElements("unit")
		require.Len(t, elements, 2)

		// Sorted by unit name.
		assert.Equal(t, "Engineer", elements[0].SelectAttrValue("name", ""))
		assert.Equal(t, "Wall", elements[1].SelectAttrValue("name", ""))

		engineer := elements[0]
		assert.Equal(t, "2", engineer.SelectElement("costs").SelectAttrValue("gold", ""))
		assert.Equal(t, "true", engineer.SelectElement("attributes").SelectAttrValue("blocker", ""))
		assert.Equal(t, "Click: Gain E.", engineer.SelectElement("abilities").Text())

		change := engineer.SelectElement("change_history").SelectElement("change")
		require.NotNil(t, change)
		assert.Equal(t, "2018-03-01", change.SelectAttrValue("date", ""))
	})

	t.Run("omits empty optional elements", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "units.xml")

		err := etree.NewXMLWriter(path).WriteUnits(context.Background(), testUnits())
		require.NoError(t, err)

		doc := beevik.NewDocument()
		require.NoError(t, doc.ReadFromFile(path))

		wall := doc.SelectElement("units").SelectElements("unit")[1]
		assert.Nil(t, wall.SelectElement("abilities"))
		assert.Nil(t, wall.SelectElement("change_history"))
	})

	t.Run("invalid unit fails loudly", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "units.xml")
		units := punter.UnitSet{"": {Name: ""}}

		err := etree.NewXMLWriter(path).WriteUnits(context.Background(), units)

		require.Error(t, err)
		assert.Equal(t, punter.EINVALID, punter.ErrorCode(err))
	})
}
