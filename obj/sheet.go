// Package obj constructs the game's entities: the player ship, enemies,
// terrain blocks, projectiles, and the boundary walls. Art is procedural;
// each spawner builds a small spritesheet, wires an animation state machine
// over it, and binds the sprite to a collider through physics.NewEntity.
package obj

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// sheet builds a one-row spritesheet with one flat-color frame per entry.
func sheet(frameW, frameH int, colors []color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(frameW*len(colors), frameH)
	for i, c := range colors {
		sub := img.SubImage(image.Rect(i*frameW, 0, (i+1)*frameW, frameH)).(*ebiten.Image)
		sub.Fill(c)
	}
	return img
}

func shade(c color.RGBA, delta int) color.RGBA {
	add := func(v uint8) uint8 {
		n := int(v) + delta
		if n < 0 {
			n = 0
		}
		if n > 255 {
			n = 255
		}
		return uint8(n)
	}
	return color.RGBA{R: add(c.R), G: add(c.G), B: add(c.B), A: c.A}
}
