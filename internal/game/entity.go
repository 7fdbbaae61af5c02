// Package game implements the world model that parsed commands are bound
// against: items, mobs, players, rooms, and the World that holds them.
package game

import "fmt"

// Kind is the variant tag of an Entity. There are exactly three kinds of
// entity in the world; anything that can be the target of a command is one
// of them.
type Kind int

const (
	KindItem Kind = iota
	KindMob
	KindPlayer
)

func (k Kind) String() string {
	switch k {
	case KindItem:
		return "ITEM"
	case KindMob:
		return "MOB"
	case KindPlayer:
		return "PLAYER"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Gender is used for pronoun bookkeeping. Mobs and players may be gendered;
// items never are.
type Gender int

const (
	GenderNone Gender = iota
	GenderMale
	GenderFemale
)

// EntityRef is a non-owning reference to an entity by its variant tag and
// stable ID. A ref stays valid-looking after the entity is gone; holders must
// resolve it against the live world to find out whether it still points at
// anything.
type EntityRef struct {
	Kind Kind
	ID   string
}

// Zero returns whether the ref does not refer to anything at all.
func (r EntityRef) Zero() bool {
	return r.ID == ""
}

func (r EntityRef) String() string {
	return fmt.Sprintf("%s:%s", r.Kind, r.ID)
}

// Entity is something a command span can be bound to. It is a closed union;
// the only implementations are *Item, *Mob, and *Player.
type Entity interface {
	// Ref returns the stable reference for the entity.
	Ref() EntityRef

	// DisplayName returns the name players see and type.
	DisplayName() string

	// IsCreature reports whether the entity is a living thing. Creatures are
	// remembered as "them" (and "him"/"her" when gendered); everything else
	// is remembered as "it".
	IsCreature() bool

	// PronounGender returns the gender used to pick between "him" and "her".
	PronounGender() Gender

	isEntity()
}
