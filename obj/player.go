package obj

import (
	"image"
	"image/color"

	"github.com/adamguos/scrollfall/component"
	"github.com/adamguos/scrollfall/physics"
	"github.com/adamguos/scrollfall/prefabs"
)

// player animation states
const (
	playerStateCruise = iota
	playerStateBoost
)

// NewPlayer spawns the player mobile at world pixel (x, y). The sprite has a
// cruise state and a boost state; the input layer fires "move_up" and
// "stop_moving" to switch between them.
func NewPlayer(spec prefabs.PlayerSpec, x, y, tick int) physics.Entity[*physics.Mobile] {
	base := color.RGBA{R: 0x46, G: 0xb4, B: 0xe6, A: 0xff}
	w, h := spec.Hitbox.W, spec.Hitbox.H

	cruiseSheet := sheet(w, h, []color.RGBA{base, shade(base, -24), base, shade(base, 24)})
	boostSheet := sheet(w, h, []color.RGBA{shade(base, 48), shade(base, 72)})

	sm := component.NewAnimationSM(
		[]*component.Animation{
			playerStateCruise: component.NewAnimation(cruiseSheet, w, h, 0, 4, 10, true),
			playerStateBoost:  component.NewAnimation(boostSheet, w, h, 0, 2, 6, true),
		},
		[]component.Transition{
			{From: playerStateCruise, To: playerStateBoost, Event: "move_up"},
			{From: playerStateBoost, To: playerStateCruise, Event: "stop_moving"},
		},
		tick, playerStateCruise,
	)

	return physics.NewEntity[*physics.Mobile](
		component.NewSprite(sm, x, y),
		image.Pt(x, y),
		&physics.Mobile{
			Rect:     physics.Rect{X: x, Y: y, W: w, H: h},
			HP:       spec.HP,
			IsPlayer: true,
		},
	)
}
