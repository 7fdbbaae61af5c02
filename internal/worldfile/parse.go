package worldfile

import (
	"fmt"
	"strings"

	"github.com/mkriley/mudlark/internal/game"
)

// parseWorldData converts decoded world data into a World, validating it
// first.
func parseWorldData(top topLevelWorldData) (*game.World, error) {
	if top.World.Start == "" {
		return nil, fmt.Errorf("world: must define a 'start' room")
	}
	if len(top.Rooms) < 1 {
		return nil, fmt.Errorf("world: must define at least one room")
	}

	roomLabels := make(map[string]bool, len(top.Rooms))
	for idx, r := range top.Rooms {
		if err := validateRoomDef(r); err != nil {
			return nil, fmt.Errorf("room[%d]: %w", idx, err)
		}
		label := strings.ToUpper(r.Label)
		if roomLabels[label] {
			return nil, fmt.Errorf("room[%d]: duplicate room label %q", idx, label)
		}
		roomLabels[label] = true
	}

	start := strings.ToUpper(top.World.Start)
	if !roomLabels[start] {
		return nil, fmt.Errorf("world: start room %q is not a defined room", top.World.Start)
	}

	w := game.NewWorld(start)

	for idx, r := range top.Rooms {
		for dir, dest := range r.Exits {
			if !roomLabels[strings.ToUpper(dest)] {
				return nil, fmt.Errorf("room[%d]: exit %q leads to undefined room %q", idx, dir, dest)
			}
		}
		if err := w.AddRoom(r.toGameRoom()); err != nil {
			return nil, fmt.Errorf("room[%d]: %w", idx, err)
		}
	}

	itemLabels := make(map[string]bool, len(top.Items))
	for idx, it := range top.Items {
		if err := validateItemDef(it); err != nil {
			return nil, fmt.Errorf("item[%d]: %w", idx, err)
		}
		label := strings.ToUpper(it.Label)
		if itemLabels[label] {
			return nil, fmt.Errorf("item[%d]: duplicate item label %q", idx, label)
		}
		itemLabels[label] = true

		loc := strings.ToUpper(it.Location)
		room := w.Room(loc)
		if room == nil {
			return nil, fmt.Errorf("item[%d]: location %q is not a defined room", idx, it.Location)
		}
		room.Items = append(room.Items, it.toGameItem())
	}

	mobLabels := make(map[string]bool, len(top.Mobs))
	for idx, m := range top.Mobs {
		if err := validateMobDef(m); err != nil {
			return nil, fmt.Errorf("mob[%d]: %w", idx, err)
		}
		label := strings.ToUpper(m.Label)
		if mobLabels[label] {
			return nil, fmt.Errorf("mob[%d]: duplicate mob label %q", idx, label)
		}
		mobLabels[label] = true

		if err := w.AddMob(m.toGameMob()); err != nil {
			return nil, fmt.Errorf("mob[%d]: %w", idx, err)
		}
	}

	return w, nil
}

func validateRoomDef(r room) error {
	if r.Label == "" {
		return fmt.Errorf("must have a 'label' field")
	}
	if r.Name == "" {
		return fmt.Errorf("must have a 'name' field")
	}
	if r.Description == "" {
		return fmt.Errorf("must have a 'description' field")
	}
	return nil
}

func validateItemDef(it item) error {
	if it.Label == "" {
		return fmt.Errorf("must have a 'label' field")
	}
	if it.Name == "" {
		return fmt.Errorf("must have a 'name' field")
	}
	if it.Location == "" {
		return fmt.Errorf("must have a 'location' field")
	}
	return nil
}

func validateMobDef(m mob) error {
	if m.Label == "" {
		return fmt.Errorf("must have a 'label' field")
	}
	if m.Name == "" {
		return fmt.Errorf("must have a 'name' field")
	}
	if m.Room == "" {
		return fmt.Errorf("must have a 'room' field")
	}
	switch strings.ToLower(m.Gender) {
	case "", "male", "female", "none":
	default:
		return fmt.Errorf("gender must be one of 'male', 'female', or 'none', not %q", m.Gender)
	}
	return nil
}
