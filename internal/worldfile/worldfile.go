// Package worldfile has functions for loading game data from world files, a
// TOML-based format that defines the rooms, items, and mobs the engine runs.
package worldfile

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/mkriley/mudlark/internal/game"
)

// CurrentFormat is the format name every world file must declare.
const CurrentFormat = "mudlark"

// FileInfo contains the essential information all world files must contain.
// It can be obtained from a file by reading it into memory and calling
// ScanFileInfo on the bytes.
type FileInfo struct {
	Format string `toml:"format"`
	Type   string `toml:"type"`
}

// ScanFileInfo reads the header fields of a world file without fully
// decoding it.
func ScanFileInfo(data []byte) (FileInfo, error) {
	var info FileInfo
	if err := toml.Unmarshal(data, &info); err != nil {
		return info, fmt.Errorf("scanning file header: %w", err)
	}
	return info, nil
}

// LoadFile loads a world from the world file at the given path.
func LoadFile(path string) (*game.World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading world file: %w", err)
	}

	info, err := ScanFileInfo(data)
	if err != nil {
		return nil, err
	}
	if strings.ToLower(info.Format) != CurrentFormat {
		return nil, fmt.Errorf("file does not appear to be a %s file", CurrentFormat)
	}
	if strings.ToUpper(info.Type) != "WORLD" {
		return nil, fmt.Errorf("file is not a world data file: type is %q", info.Type)
	}

	return Load(data)
}

// Load decodes world data from the given bytes, validates it, and converts
// it into a ready-to-use World.
func Load(data []byte) (*game.World, error) {
	var top topLevelWorldData
	if err := toml.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("decoding world data: %w", err)
	}

	return parseWorldData(top)
}
