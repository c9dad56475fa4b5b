package obj

import (
	"image"
	"image/color"

	"github.com/adamguos/scrollfall/component"
	"github.com/adamguos/scrollfall/physics"
	"github.com/adamguos/scrollfall/prefabs"
)

// terrain animation states
const (
	terrainStateIdle = iota
	terrainStateHit
)

// NewBlock spawns a terrain block. Projectile impacts fire "hit" on its
// sprite; the flash state retriggers on every impact.
func NewBlock(spec prefabs.TerrainSpec, x, y, tick int) physics.Entity[*physics.Terrain] {
	base := color.RGBA{R: 0x6e, G: 0x5a, B: 0x3c, A: 0xff}
	if !spec.Destructible {
		base = color.RGBA{R: 0x50, G: 0x50, B: 0x5a, A: 0xff}
	}
	w, h := spec.Size.W, spec.Size.H

	idleSheet := sheet(w, h, []color.RGBA{base})
	hitSheet := sheet(w, h, []color.RGBA{shade(base, 96), base, shade(base, 96)})

	sm := component.NewAnimationSM(
		[]*component.Animation{
			terrainStateIdle: component.NewAnimation(idleSheet, w, h, 0, 1, 60, true),
			terrainStateHit:  component.NewAnimation(hitSheet, w, h, 0, 3, 3, false),
		},
		[]component.Transition{
			{From: terrainStateIdle, To: terrainStateHit, Event: "hit"},
			{From: terrainStateHit, To: terrainStateHit, Event: "hit"},
			{From: terrainStateHit, To: terrainStateIdle, Event: "settle"},
		},
		tick, terrainStateIdle,
	)

	return physics.NewEntity[*physics.Terrain](
		component.NewSprite(sm, x, y),
		image.Pt(x, y),
		&physics.Terrain{
			Rect:         physics.Rect{X: x, Y: y, W: w, H: h},
			CreatedAt:    tick,
			Destructible: spec.Destructible,
			HP:           spec.HP,
		},
	)
}
