// Package session tracks connected players and exposes the live world view
// that parsing and entity binding run against. Pronoun references resolve
// through here, so an entity that has left the world since it was referred
// to simply fails to look up rather than coming back stale.
package session

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/mkriley/mudlark/internal/game"
	"github.com/mkriley/mudlark/internal/parse"
)

// Session is one connected player together with the per-player parser state.
type Session struct {
	ID     uuid.UUID
	Player *game.Player
	Ctx    *parse.Context
}

// Directory is the set of currently connected sessions. Safe for concurrent
// use.
type Directory struct {
	mtx      sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewDirectory creates an empty Directory.
func NewDirectory() *Directory {
	return &Directory{sessions: make(map[uuid.UUID]*Session)}
}

// Connect registers a player and returns their new session.
func (d *Directory) Connect(p *game.Player) *Session {
	s := &Session{
		ID:     uuid.New(),
		Player: p,
		Ctx:    parse.NewContext(),
	}
	d.mtx.Lock()
	d.sessions[s.ID] = s
	d.mtx.Unlock()
	return s
}

// Disconnect removes a session. Removing an unknown ID is a no-op.
func (d *Directory) Disconnect(id uuid.UUID) {
	d.mtx.Lock()
	delete(d.sessions, id)
	d.mtx.Unlock()
}

// Find returns the session of the named player, matched case-insensitively.
func (d *Directory) Find(name string) (*Session, bool) {
	d.mtx.RLock()
	defer d.mtx.RUnlock()
	for _, s := range d.sessions {
		if strings.EqualFold(s.Player.Name, name) {
			return s, true
		}
	}
	return nil, false
}

// OnlinePlayers returns every connected player.
func (d *Directory) OnlinePlayers() []*game.Player {
	d.mtx.RLock()
	defer d.mtx.RUnlock()
	players := make([]*game.Player, 0, len(d.sessions))
	for _, s := range d.sessions {
		players = append(players, s.Player)
	}
	return players
}

// PlayersIn returns the connected players standing in the given room.
func (d *Directory) PlayersIn(roomLabel string) []*game.Player {
	d.mtx.RLock()
	defer d.mtx.RUnlock()
	var players []*game.Player
	for _, s := range d.sessions {
		if s.Player.CurrentRoom == roomLabel {
			players = append(players, s.Player)
		}
	}
	return players
}

// View joins the static world and the connected sessions into the live view
// the parser binds entities against.
type View struct {
	World    *game.World
	Sessions *Directory
}

var _ parse.WorldView = (*View)(nil)

// OnlinePlayers implements parse.WorldView.
func (v *View) OnlinePlayers() []*game.Player {
	return v.Sessions.OnlinePlayers()
}

// PlayersIn implements parse.WorldView.
func (v *View) PlayersIn(roomLabel string) []*game.Player {
	return v.Sessions.PlayersIn(roomLabel)
}

// MobsIn implements parse.WorldView.
func (v *View) MobsIn(roomLabel string) []*game.Mob {
	return v.World.MobsIn(roomLabel)
}

// ItemsIn implements parse.WorldView.
func (v *View) ItemsIn(roomLabel string) []*game.Item {
	return v.World.ItemsIn(roomLabel)
}

// Lookup resolves a stored entity reference against the current world state.
// It fails when the entity has since disconnected, died, or been picked up
// out of reach, which is exactly when a pronoun should stop resolving.
func (v *View) Lookup(ref game.EntityRef) (game.Entity, bool) {
	switch ref.Kind {
	case game.KindPlayer:
		if s, ok := v.Sessions.Find(ref.ID); ok {
			return s.Player, true
		}
	case game.KindMob:
		if m := v.World.Mob(ref.ID); m != nil {
			return m, true
		}
	case game.KindItem:
		if it := v.World.FindItem(ref.ID); it != nil {
			return it, true
		}
		for _, p := range v.Sessions.OnlinePlayers() {
			for _, it := range p.Inventory {
				if strings.EqualFold(it.Label, ref.ID) {
					return it, true
				}
			}
		}
	}
	return nil, false
}
