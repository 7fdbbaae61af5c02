package game

// File world.go holds the World, the live registry of rooms, mobs, and item
// placement that the binder reads and handlers mutate.

import "fmt"

// World is all rooms and mobs that exist and their current state. It is
// mutated by game handlers and read (without locking) by the parser's binder;
// nothing here blocks or suspends, so parse-time reads see a consistent-
// enough snapshot and handlers re-validate before acting.
type World struct {
	rooms map[string]*Room
	mobs  map[string]*Mob
	start string
}

// NewWorld creates an empty World with the given starting room label.
func NewWorld(start string) *World {
	return &World{
		rooms: make(map[string]*Room),
		mobs:  make(map[string]*Mob),
		start: start,
	}
}

// Start returns the label of the room players begin in.
func (w *World) Start() string {
	return w.start
}

// AddRoom registers a room. A room with a duplicate label is an error.
func (w *World) AddRoom(room *Room) error {
	if _, ok := w.rooms[room.Label]; ok {
		return fmt.Errorf("duplicate room label %q", room.Label)
	}
	w.rooms[room.Label] = room
	return nil
}

// Room returns the room with the given label, or nil.
func (w *World) Room(label string) *Room {
	return w.rooms[label]
}

// AddMob places a mob into the world in its configured room.
func (w *World) AddMob(m *Mob) error {
	if _, ok := w.mobs[m.Label]; ok {
		return fmt.Errorf("duplicate mob label %q", m.Label)
	}
	if _, ok := w.rooms[m.Room]; !ok {
		return fmt.Errorf("mob %q starts in unknown room %q", m.Label, m.Room)
	}
	w.mobs[m.Label] = m
	return nil
}

// Mob returns the live mob with the given label, or nil if it does not exist
// or has been removed.
func (w *World) Mob(label string) *Mob {
	return w.mobs[label]
}

// RemoveMob removes a mob from the world, for instance when it dies. Pronoun
// references to it then resolve to nothing.
func (w *World) RemoveMob(label string) {
	delete(w.mobs, label)
}

// MobsIn returns the mobs currently in the room with the given label.
func (w *World) MobsIn(roomLabel string) []*Mob {
	var out []*Mob
	for _, m := range w.mobs {
		if m.Room == roomLabel {
			out = append(out, m)
		}
	}
	return out
}

// ItemsIn returns the items on the ground in the room with the given label.
func (w *World) ItemsIn(roomLabel string) []*Item {
	room := w.rooms[roomLabel]
	if room == nil {
		return nil
	}
	return room.Items
}

// FindItem returns the item with the given label if it is on the ground in
// any room, or nil. Carried items are tracked by player inventories, not
// here.
func (w *World) FindItem(label string) *Item {
	for _, room := range w.rooms {
		for _, it := range room.Items {
			if it.Label == label {
				return it
			}
		}
	}
	return nil
}
