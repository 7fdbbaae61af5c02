package parse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkriley/mudlark/internal/game"
)

// fakeView is an in-memory WorldView for binder and parser tests. Everything
// it holds is reported for whatever room is asked about, except players,
// which carry their own room labels.
type fakeView struct {
	players []*game.Player
	mobs    []*game.Mob
	items   []*game.Item
}

func (v *fakeView) OnlinePlayers() []*game.Player { return v.players }

func (v *fakeView) PlayersIn(roomLabel string) []*game.Player {
	var out []*game.Player
	for _, p := range v.players {
		if p.CurrentRoom == roomLabel {
			out = append(out, p)
		}
	}
	return out
}

func (v *fakeView) MobsIn(roomLabel string) []*game.Mob   { return v.mobs }
func (v *fakeView) ItemsIn(roomLabel string) []*game.Item { return v.items }

func (v *fakeView) Lookup(ref game.EntityRef) (game.Entity, bool) {
	switch ref.Kind {
	case game.KindPlayer:
		for _, p := range v.players {
			if strings.EqualFold(p.Name, ref.ID) {
				return p, true
			}
		}
	case game.KindMob:
		for _, m := range v.mobs {
			if m.Label == ref.ID {
				return m, true
			}
		}
	case game.KindItem:
		for _, it := range v.items {
			if it.Label == ref.ID {
				return it, true
			}
		}
		for _, p := range v.players {
			for _, it := range p.Inventory {
				if it.Label == ref.ID {
					return it, true
				}
			}
		}
	}
	return nil, false
}

func Test_Binder_Bind(t *testing.T) {
	actor := &game.Player{
		Name:        "Alice",
		CurrentRoom: "CAVE",
		Inventory: game.Inventory{
			{Label: "SWORD_CARRIED", Name: "sword"},
		},
	}
	bob := &game.Player{Name: "Bob", CurrentRoom: "CAVE"}
	farAway := &game.Player{Name: "Carol", CurrentRoom: "TOWER"}
	view := &fakeView{
		players: []*game.Player{actor, bob, farAway},
		mobs: []*game.Mob{
			{Label: "GOBLIN", Name: "goblin guard", Gender: game.GenderMale, Room: "CAVE"},
		},
		items: []*game.Item{
			{Label: "SWORD_FLOOR", Name: "sword"},
			{Label: "LANTERN", Name: "lantern"},
		},
	}

	testCases := []struct {
		name           string
		span           string
		expectName     string
		expectLabel    string
		expectSentinel Sentinel
		expectNil      bool
	}{
		{
			name:       "online player by exact name",
			span:       "bob",
			expectName: "Bob",
		},
		{
			name:       "player anywhere in the world",
			span:       "carol",
			expectName: "Carol",
		},
		{
			name:        "mob by substring",
			span:        "gob",
			expectLabel: "GOBLIN",
		},
		{
			name:        "carried item beats the one on the floor",
			span:        "sword",
			expectLabel: "SWORD_CARRIED",
		},
		{
			name:        "floor item by exact name",
			span:        "lantern",
			expectLabel: "LANTERN",
		},
		{
			name:           "all sentinel",
			span:           "all",
			expectNil:      true,
			expectSentinel: SentinelAll,
		},
		{
			name:           "treasure sentinel",
			span:           "treasure",
			expectNil:      true,
			expectSentinel: SentinelTreasure,
		},
		{
			name:           "treasure sentinel abbreviated",
			span:           "t",
			expectNil:      true,
			expectSentinel: SentinelTreasure,
		},
		{
			name:      "unknown span binds nothing",
			span:      "unicorn",
			expectNil: true,
		},
		{
			name:      "empty span binds nothing",
			span:      "  ",
			expectNil: true,
		},
	}

	b := NewBinder(nil)

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			ent, sentinel := b.Bind(tc.span, actor, view, NewContext())

			assert.Equal(tc.expectSentinel, sentinel)
			if tc.expectNil {
				assert.Nil(ent)
				return
			}
			if assert.NotNil(ent) {
				if tc.expectName != "" {
					assert.Equal(tc.expectName, ent.DisplayName())
				}
				if tc.expectLabel != "" {
					assert.Equal(tc.expectLabel, ent.Ref().ID)
				}
			}
		})
	}
}

func Test_Binder_Bind_pronouns(t *testing.T) {
	assert := assert.New(t)

	actor := &game.Player{Name: "Alice", CurrentRoom: "CAVE"}
	lantern := &game.Item{Label: "LANTERN", Name: "lantern"}
	view := &fakeView{
		players: []*game.Player{actor},
		items:   []*game.Item{lantern},
	}

	ctx := NewContext()
	ctx.Update("get", lantern, nil)

	b := NewBinder(nil)

	ent, sentinel := b.Bind("it", actor, view, ctx)
	assert.Equal(SentinelNone, sentinel)
	assert.Equal(lantern, ent)

	// a pronoun whose referent is gone stays nil instead of falling through
	// to the entity tiers
	view.items = nil
	ent, _ = b.Bind("it", actor, view, ctx)
	assert.Nil(ent)

	// a pronoun with no referent at all binds nothing even when an entity
	// could have matched the word
	ent, _ = b.Bind("him", actor, view, ctx)
	assert.Nil(ent)
}
