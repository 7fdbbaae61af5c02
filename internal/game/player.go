package game

// File player.go holds the player character state the parser needs: identity,
// inventory, and current location.

import (
	"fmt"
	"strings"
)

// Player is a connected player character. Players are referenced world-wide
// by exact name, which must therefore be unique among online players.
type Player struct {
	// Name is the player's unique name.
	Name string

	// Gender selects which gendered pronoun slot the player occupies after
	// being targeted.
	Gender Gender

	// CurrentRoom is the label of the room the player is in.
	CurrentRoom string

	// Inventory is the items the player is carrying.
	Inventory Inventory
}

func (p *Player) Ref() EntityRef {
	return EntityRef{Kind: KindPlayer, ID: strings.ToUpper(p.Name)}
}

func (p *Player) DisplayName() string { return p.Name }
func (p *Player) IsCreature() bool { return true }
func (p *Player) PronounGender() Gender { return p.Gender }
func (p *Player) isEntity() {}

func (p *Player) String() string {
	return fmt.Sprintf("Player<%s in %s>", p.Name, p.CurrentRoom)
}
