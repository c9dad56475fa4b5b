package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// SizeSpec is a pixel extent used by hitboxes and sprite frames.
type SizeSpec struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// PlayerSpec configures the player mobile.
type PlayerSpec struct {
	Name   string   `yaml:"name"`
	Hitbox SizeSpec `yaml:"hitbox"`
	HP     int      `yaml:"hp"`
	// Speed is the horizontal/vertical input velocity in px/tick.
	Speed float64 `yaml:"speed"`
}

// EnemySpec configures a spawned enemy mobile.
type EnemySpec struct {
	Name   string   `yaml:"name"`
	Hitbox SizeSpec `yaml:"hitbox"`
	HP     int      `yaml:"hp"`
	VX     float64  `yaml:"vx"`
	VY     float64  `yaml:"vy"`
}

// TerrainSpec configures a terrain block.
type TerrainSpec struct {
	Name         string   `yaml:"name"`
	Size         SizeSpec `yaml:"size"`
	HP           int      `yaml:"hp"`
	Destructible bool     `yaml:"destructible"`
}

// ProjectileSpec configures the player's shots.
type ProjectileSpec struct {
	Size SizeSpec `yaml:"size"`
	// Damage is carried as the projectile's hp payload.
	Damage        int     `yaml:"damage"`
	VY            float64 `yaml:"vy"`
	CooldownTicks int     `yaml:"cooldown_ticks"`
}

// TuningSpec holds the knobs that don't belong to a single entity.
type TuningSpec struct {
	SpawnScript   string `yaml:"spawn_script"`
	WallThickness int    `yaml:"wall_thickness"`
}

// LoadSpec loads and unmarshals a prefab yaml into T.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}
