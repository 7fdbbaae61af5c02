package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testWorld(t *testing.T) *World {
	t.Helper()

	w := NewWorld("CAVE")
	err := w.AddRoom(&Room{
		Label:       "CAVE",
		Name:        "Dripping Cave",
		Description: "Water drips from the ceiling.",
		Exits:       map[string]string{"north": "TUNNEL", "east": "TUNNEL"},
		Items: []*Item{
			{Label: "LANTERN", Name: "lantern"},
		},
	})
	assert.NoError(t, err)
	err = w.AddRoom(&Room{
		Label:       "TUNNEL",
		Name:        "Narrow Tunnel",
		Description: "It is barely wide enough to pass.",
		Exits:       map[string]string{"south": "CAVE"},
	})
	assert.NoError(t, err)
	err = w.AddMob(&Mob{Label: "GOBLIN", Name: "goblin guard", Gender: GenderMale, Room: "CAVE"})
	assert.NoError(t, err)
	return w
}

func Test_World_rooms(t *testing.T) {
	assert := assert.New(t)

	w := testWorld(t)

	assert.Equal("CAVE", w.Start())
	assert.NotNil(w.Room("CAVE"))
	assert.Nil(w.Room("NOWHERE"))

	assert.Error(w.AddRoom(&Room{Label: "CAVE", Name: "dup"}), "duplicate label must be rejected")
}

func Test_World_mobs(t *testing.T) {
	assert := assert.New(t)

	w := testWorld(t)

	assert.NotNil(w.Mob("GOBLIN"))
	assert.Len(w.MobsIn("CAVE"), 1)
	assert.Empty(w.MobsIn("TUNNEL"))

	assert.Error(w.AddMob(&Mob{Label: "GHOST", Name: "ghost", Room: "NOWHERE"}),
		"mobs may not be placed in undefined rooms")

	w.RemoveMob("GOBLIN")
	assert.Nil(w.Mob("GOBLIN"))
	assert.Empty(w.MobsIn("CAVE"))
}

func Test_World_items(t *testing.T) {
	assert := assert.New(t)

	w := testWorld(t)

	assert.Len(w.ItemsIn("CAVE"), 1)
	assert.Empty(w.ItemsIn("TUNNEL"))

	assert.NotNil(w.FindItem("LANTERN"))
	assert.Nil(w.FindItem("SWORD"))
}

func Test_Room(t *testing.T) {
	assert := assert.New(t)

	w := testWorld(t)
	cave := w.Room("CAVE")

	assert.Equal([]string{"east", "north"}, cave.ExitDirections(), "directions are sorted")

	assert.NotNil(cave.FindItem("Lantern"), "item match is case-insensitive")
	assert.Nil(cave.FindItem("sword"))

	cave.RemoveItem("LANTERN")
	assert.Nil(cave.FindItem("lantern"))
}

func Test_Inventory(t *testing.T) {
	assert := assert.New(t)

	inv := Inventory{
		{Label: "SWORD", Name: "rusty sword"},
		{Label: "KEY", Name: "brass key"},
	}

	assert.NotNil(inv.Find("Rusty Sword"))
	assert.Nil(inv.Find("lantern"))

	assert.True(inv.Has("KEY"))
	assert.False(inv.Has("LANTERN"))

	inv = inv.Remove("SWORD")
	assert.Len(inv, 2-1)
	assert.False(inv.Has("SWORD"))
	assert.True(inv.Has("KEY"))

	inv = inv.Remove("NOT_CARRIED")
	assert.Len(inv, 1)
}

func Test_Entity_refsAndPronouns(t *testing.T) {
	assert := assert.New(t)

	it := &Item{Label: "SWORD", Name: "rusty sword"}
	assert.Equal(EntityRef{Kind: KindItem, ID: "SWORD"}, it.Ref())
	assert.False(it.IsCreature())
	assert.Equal(GenderNone, it.PronounGender())

	m := &Mob{Label: "WITCH", Name: "witch", Gender: GenderFemale}
	assert.True(m.IsCreature())
	assert.Equal(GenderFemale, m.PronounGender())

	p := &Player{Name: "Alice", Gender: GenderFemale}
	assert.Equal(EntityRef{Kind: KindPlayer, ID: "ALICE"}, p.Ref(), "player refs use the uppercased name")
	assert.True(p.IsCreature())

	assert.True(EntityRef{}.Zero())
	assert.False(it.Ref().Zero())
}
