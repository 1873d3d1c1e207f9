package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Overrides is the optional YAML config file. Only fields present in the file
// replace the built-in values.
type Overrides struct {
	Seed       *int64   `yaml:"seed"`
	Scale      *float64 `yaml:"scale"`
	ShowBodies *bool    `yaml:"show_bodies"`
	BombCap    *int     `yaml:"bomb_cap"`
}

// Load reads the override file.
// Search order: customPath -> ~/.starcatch/config.yaml -> ./configs/starcatch.yaml -> built-ins.
// It returns the path that was used, or "" when the built-ins apply.
func Load(customPath string) (Overrides, string, error) {
	var o Overrides

	// A custom path must exist and parse
	if customPath != "" {
		if err := readOverrides(customPath, &o); err != nil {
			return Overrides{}, "", err
		}
		return o, customPath, nil
	}

	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "starcatch.yaml")} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := readOverrides(path, &o); err != nil {
			return Overrides{}, "", err
		}
		return o, path, nil
	}

	return o, "", nil
}

func readOverrides(path string, o *Overrides) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, o); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if o.Scale != nil && *o.Scale <= 0 {
		return fmt.Errorf("invalid config %s: scale must be positive, got %v", path, *o.Scale)
	}
	if o.BombCap != nil && *o.BombCap < 0 {
		return fmt.Errorf("invalid config %s: bomb_cap must not be negative, got %d", path, *o.BombCap)
	}
	return nil
}

// Apply copies the present fields onto the global configuration.
func (o Overrides) Apply() {
	if o.Seed != nil {
		Debug.Seed = *o.Seed
	}
	if o.Scale != nil {
		C.Scale = *o.Scale
	}
	if o.ShowBodies != nil {
		Debug.ShowBodies = *o.ShowBodies
	}
	if o.BombCap != nil {
		Bomb.MaxCount = *o.BombCap
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".starcatch", filename)
}
