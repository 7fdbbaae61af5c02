package game

// File room.go includes symbols for holding data on the rooms and the exits
// between them.

import (
	"fmt"
	"sort"
	"strings"
)

// Room is a location in the game. It contains exits that lead to other rooms,
// a description, and the items currently on the ground.
type Room struct {
	// Label is how the room is referred to programmatically. It must be
	// unique from all other rooms.
	Label string

	// Name is used in short descriptions.
	Name string

	// Description is what is shown when the player looks with no arguments.
	Description string

	// Exits maps a direction word to the label of the room it leads to.
	Exits map[string]string

	// Items is the items on the ground. This changes over time.
	Items []*Item
}

func (room *Room) String() string {
	return fmt.Sprintf("Room<%s %q exits: %s>", room.Label, room.Name, strings.Join(room.ExitDirections(), ", "))
}

// ExitDirections returns the directions out of the room in sorted order.
func (room *Room) ExitDirections() []string {
	dirs := make([]string, 0, len(room.Exits))
	for d := range room.Exits {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)
	return dirs
}

// FindItem returns the first item on the ground whose name matches the given
// text case-insensitively, or nil.
func (room *Room) FindItem(name string) *Item {
	for _, it := range room.Items {
		if strings.EqualFold(it.Name, name) {
			return it
		}
	}
	return nil
}

// RemoveItem removes the item with the given label from the ground. If no
// such item is present, no effect occurs.
func (room *Room) RemoveItem(label string) {
	for i, it := range room.Items {
		if it.Label == label {
			room.Items = append(room.Items[:i:i], room.Items[i+1:]...)
			return
		}
	}
}
