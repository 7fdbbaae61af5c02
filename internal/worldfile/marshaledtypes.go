package worldfile

import (
	"strings"

	"github.com/mkriley/mudlark/internal/game"
)

// topLevelWorldData is the top level structure of a world data file.
type topLevelWorldData struct {
	Format string `toml:"format"`
	Type   string `toml:"type"`
	World  world  `toml:"world"`
	Rooms  []room `toml:"room"`
	Items  []item `toml:"item"`
	Mobs   []mob  `toml:"mob"`
}

type world struct {
	Start string `toml:"start"`
}

type room struct {
	Label       string            `toml:"label"`
	Name        string            `toml:"name"`
	Description string            `toml:"description"`
	Exits       map[string]string `toml:"exits"`
}

func (tr room) toGameRoom() *game.Room {
	exits := make(map[string]string, len(tr.Exits))
	for dir, dest := range tr.Exits {
		exits[strings.ToLower(dir)] = strings.ToUpper(dest)
	}

	return &game.Room{
		Label:       strings.ToUpper(tr.Label),
		Name:        tr.Name,
		Description: tr.Description,
		Exits:       exits,
	}
}

type item struct {
	Label       string `toml:"label"`
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Location    string `toml:"location"`
}

func (ti item) toGameItem() *game.Item {
	return &game.Item{
		Label:       strings.ToUpper(ti.Label),
		Name:        ti.Name,
		Description: ti.Description,
	}
}

type mob struct {
	Label       string `toml:"label"`
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Gender      string `toml:"gender"`
	Room        string `toml:"room"`
}

func (tm mob) toGameMob() *game.Mob {
	return &game.Mob{
		Label:       strings.ToUpper(tm.Label),
		Name:        tm.Name,
		Description: tm.Description,
		Gender:      genderFromName(tm.Gender),
		Room:        strings.ToUpper(tm.Room),
	}
}

func genderFromName(name string) game.Gender {
	switch strings.ToLower(name) {
	case "male":
		return game.GenderMale
	case "female":
		return game.GenderFemale
	default:
		return game.GenderNone
	}
}
