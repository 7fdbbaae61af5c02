package game

// File mob.go contains structs and routines related to mobs (non-player
// creatures).

import "fmt"

// Mob is a non-player creature in the world. Mobs live in rooms and are the
// usual targets of combat commands; the binder matches them by substring so
// that "kill gob" finds "goblin guard".
type Mob struct {
	// Label is a name for the mob and canonical way to index it
	// programmatically. It should be upper case and MUST be unique within all
	// mob labels of the world.
	Label string

	// Name is the short name of the mob shown in rooms and matched against
	// player input.
	Name string

	// Description is the long description given when a player looks at the
	// mob.
	Description string

	// Gender selects which gendered pronoun slot the mob occupies after being
	// targeted.
	Gender Gender

	// Room is the label of the room the mob is currently in.
	Room string
}

func (m *Mob) Ref() EntityRef { return EntityRef{Kind: KindMob, ID: m.Label} }
func (m *Mob) DisplayName() string { return m.Name }
func (m *Mob) IsCreature() bool { return true }
func (m *Mob) PronounGender() Gender { return m.Gender }
func (m *Mob) isEntity() {}

func (m *Mob) String() string {
	return fmt.Sprintf("Mob<%s %q in %s>", m.Label, m.Name, m.Room)
}
