package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite binds an animation state machine to a world position. Its position
// is normally driven through the owning entity's MovePos so it stays in sync
// with the collider.
type Sprite struct {
	SM   *AnimationSM
	X, Y int
}

// NewSprite creates a sprite at world pixel (x, y).
func NewSprite(sm *AnimationSM, x, y int) *Sprite {
	return &Sprite{SM: sm, X: x, Y: y}
}

// MoveBy shifts the sprite by (dx, dy).
func (s *Sprite) MoveBy(dx, dy int) {
	s.X += dx
	s.Y += dy
}

// SetPos places the sprite at (x, y).
func (s *Sprite) SetPos(x, y int) {
	s.X = x
	s.Y = y
}

// Trigger forwards a named animation event to the state machine.
func (s *Sprite) Trigger(event string, tick int) {
	if s == nil {
		return
	}
	s.SM.Trigger(event, tick)
}

// Draw renders the current frame at the sprite's position relative to the
// camera scroll.
func (s *Sprite) Draw(dst *ebiten.Image, scroll image.Point, tick int) {
	if s == nil || dst == nil {
		return
	}
	frame := s.SM.Frame(tick)
	if frame == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(s.X-scroll.X), float64(s.Y-scroll.Y))
	dst.DrawImage(frame, op)
}
