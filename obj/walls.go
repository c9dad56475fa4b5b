package obj

import (
	"image"

	"github.com/adamguos/scrollfall/physics"
)

// BoundaryWalls builds the four invisible bodies that fence the camera
// window: one strip outside each edge. The window scrolls every tick, so the
// caller re-fences with Refence rather than allocating new walls.
func BoundaryWalls(scroll, view image.Point, thickness int) []physics.Wall {
	walls := make([]physics.Wall, 4)
	refence(walls, scroll, view, thickness)
	return walls
}

// Refence repositions boundary walls around the current camera window.
func Refence(walls []physics.Wall, scroll, view image.Point, thickness int) {
	refence(walls, scroll, view, thickness)
}

func refence(walls []physics.Wall, scroll, view image.Point, t int) {
	if len(walls) != 4 {
		panic("obj: boundary wall pool must hold exactly four walls")
	}
	// left, right, top, bottom
	walls[0] = physics.NewWall(physics.Rect{X: scroll.X - t, Y: scroll.Y - t, W: t, H: view.Y + 2*t})
	walls[1] = physics.NewWall(physics.Rect{X: scroll.X + view.X, Y: scroll.Y - t, W: t, H: view.Y + 2*t})
	walls[2] = physics.NewWall(physics.Rect{X: scroll.X - t, Y: scroll.Y - t, W: view.X + 2*t, H: t})
	walls[3] = physics.NewWall(physics.Rect{X: scroll.X - t, Y: scroll.Y + view.Y, W: view.X + 2*t, H: t})
}
