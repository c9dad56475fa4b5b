// Package prefabs holds the data-driven entity definitions: yaml specs for
// the player, enemies, terrain blocks, and projectiles, plus the tengo wave
// script that schedules spawns. Everything is embedded; in debug builds the
// on-disk copy wins so specs can be live-reloaded.
package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var prefabsFS embed.FS

//go:embed scripts/*.tengo
var scriptsFS embed.FS

// Load returns the contents of a prefab yaml by name, preferring the on-disk
// copy under prefabs/ so edits show up without a rebuild.
func Load(name string) ([]byte, error) {
	clean := cleanPath(name)
	if data, err := os.ReadFile(filepath.Join("prefabs", filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return prefabsFS.ReadFile(clean)
}

// LoadScript returns an embedded tengo script by name ("waves.tengo" or
// "scripts/waves.tengo").
func LoadScript(name string) ([]byte, error) {
	s := cleanPath(name)
	if !strings.HasPrefix(s, "scripts/") {
		s = "scripts/" + s
	}
	if data, err := os.ReadFile(filepath.Join("prefabs", filepath.FromSlash(s))); err == nil {
		return data, nil
	}
	return scriptsFS.ReadFile(s)
}

func cleanPath(path string) string {
	s := filepath.ToSlash(path)
	return strings.TrimPrefix(s, "prefabs/")
}
