package obj

import (
	"image"
	"image/color"

	"github.com/adamguos/scrollfall/component"
	"github.com/adamguos/scrollfall/physics"
	"github.com/adamguos/scrollfall/prefabs"
)

// NewEnemy spawns an enemy mobile drifting with the velocity from its spec.
func NewEnemy(spec prefabs.EnemySpec, x, y, tick int) physics.Entity[*physics.Mobile] {
	base := color.RGBA{R: 0xd6, G: 0x4a, B: 0x4a, A: 0xff}
	w, h := spec.Hitbox.W, spec.Hitbox.H

	sm := component.NewAnimationSM(
		[]*component.Animation{
			component.NewAnimation(sheet(w, h, []color.RGBA{base, shade(base, -30)}), w, h, 0, 2, 12, true),
		},
		nil,
		tick, 0,
	)

	return physics.NewEntity[*physics.Mobile](
		component.NewSprite(sm, x, y),
		image.Pt(x, y),
		&physics.Mobile{
			Rect: physics.Rect{X: x, Y: y, W: w, H: h},
			VX:   spec.VX,
			VY:   spec.VY,
			HP:   spec.HP,
		},
	)
}
