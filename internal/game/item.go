package game

// File item.go holds symbols related to items and inventory.

import (
	"fmt"
	"strings"
)

// Item is an object that can be picked up, carried, and acted on. It contains
// a unique label, a short name, and a description.
type Item struct {
	// Label is a name for the item and canonical way to index it
	// programmatically. It should be upper case and MUST be unique within all
	// labels of the world.
	Label string

	// Name is the short name of the item, and what players type to refer to
	// it.
	Name string

	// Description is what is shown when the player looks at the item.
	Description string
}

func (it *Item) Ref() EntityRef { return EntityRef{Kind: KindItem, ID: it.Label} }
func (it *Item) DisplayName() string { return it.Name }
func (it *Item) IsCreature() bool { return false }
func (it *Item) PronounGender() Gender { return GenderNone }
func (it *Item) isEntity() {}

func (it *Item) String() string {
	return fmt.Sprintf("Item<%s %q>", it.Label, it.Name)
}

// Inventory is the set of items a player is carrying.
type Inventory []*Item

// Find returns the first item whose name matches the given text
// case-insensitively, or nil if the player is not carrying one.
func (inv Inventory) Find(name string) *Item {
	for _, it := range inv {
		if strings.EqualFold(it.Name, name) {
			return it
		}
	}
	return nil
}

// Has returns whether an item with the given label is carried.
func (inv Inventory) Has(label string) bool {
	for _, it := range inv {
		if it.Label == label {
			return true
		}
	}
	return false
}

// Remove removes the item with the given label and returns the resulting
// inventory. If no such item is carried, the inventory is unchanged.
func (inv Inventory) Remove(label string) Inventory {
	for i, it := range inv {
		if it.Label == label {
			return append(inv[:i:i], inv[i+1:]...)
		}
	}
	return inv
}
