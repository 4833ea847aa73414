package levels

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed defaults/levels.yaml
var defaultLevelsYAML []byte

// Load loads a level set.
// Search order: customPath -> ~/.arkanoid/levels.yaml -> ./configs/levels.yaml -> embedded default
func Load(customPath string) (Set, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Set{}, fmt.Errorf("failed to read levels %s: %w", customPath, err)
		}
		set, err := Parse(data)
		if err != nil {
			return Set{}, fmt.Errorf("failed to load levels %s: %w", customPath, err)
		}
		return set, nil
	}

	// Try user directory
	if home, err := os.UserHomeDir(); err == nil {
		if data, err := os.ReadFile(filepath.Join(home, ".arkanoid", "levels.yaml")); err == nil {
			if set, err := Parse(data); err == nil {
				return set, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "levels.yaml")); err == nil {
		if set, err := Parse(data); err == nil {
			return set, nil
		}
	}

	return Builtin()
}

// Builtin returns the embedded default level set.
func Builtin() (Set, error) {
	return Parse(defaultLevelsYAML)
}
