// Package system hosts the scripted wave spawner: a tengo script decides
// when and where enemies and terrain rows enter the world, the game applies
// the resulting commands through the obj spawners.
package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/adamguos/scrollfall/prefabs"
)

// SpawnKind names what a spawn command creates.
const (
	SpawnEnemy   = "enemy"
	SpawnTerrain = "terrain"
)

// SpawnCommand is one spawn request from the wave script, in world pixels.
type SpawnCommand struct {
	Kind string
	X, Y int
}

// the script defines poll(tick, scroll_y, view_w); this trailer invokes it
// with the globals the runtime sets before each run.
const spawnDispatchScript = `
__spawns = poll(__tick, __scroll_y, __view_w)
`

// Spawner compiles the wave script once and evaluates it every tick.
type Spawner struct {
	scriptName string
	compiled   *tengo.Compiled
}

// NewSpawner loads and compiles the named wave script from prefabs.
func NewSpawner(scriptName string) (*Spawner, error) {
	src, err := prefabs.LoadScript(scriptName)
	if err != nil {
		return nil, fmt.Errorf("system: load spawn script %s: %w", scriptName, err)
	}

	script := tengo.NewScript(append(src, []byte(spawnDispatchScript)...))
	_ = script.Add("__tick", 0)
	_ = script.Add("__scroll_y", 0)
	_ = script.Add("__view_w", 0)
	_ = script.Add("__spawns", []any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("system: compile spawn script %s: %w", scriptName, err)
	}

	return &Spawner{scriptName: scriptName, compiled: compiled}, nil
}

// Poll runs the script for one tick and decodes its spawn commands.
func (s *Spawner) Poll(tick, scrollY, viewW int) ([]SpawnCommand, error) {
	if s == nil || s.compiled == nil {
		return nil, fmt.Errorf("system: nil spawner")
	}
	if err := s.compiled.Set("__tick", tick); err != nil {
		return nil, err
	}
	if err := s.compiled.Set("__scroll_y", scrollY); err != nil {
		return nil, err
	}
	if err := s.compiled.Set("__view_w", viewW); err != nil {
		return nil, err
	}
	if err := s.compiled.Run(); err != nil {
		return nil, fmt.Errorf("system: spawn script %s: %w", s.scriptName, err)
	}

	raw := s.compiled.Get("__spawns").Array()
	cmds := make([]SpawnCommand, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		cmd := SpawnCommand{
			Kind: asString(m["kind"]),
			X:    asInt(m["x"]),
			Y:    asInt(m["y"]),
		}
		if cmd.Kind == "" {
			continue
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asInt(v any) int {
	switch n := v.(type) {
	case int64:
		return int(n)
	case int:
		return n
	case float64:
		return int(n)
	}
	return 0
}
