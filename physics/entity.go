package physics

import "image"

// Sprite is the renderable half of an entity as the simulation core sees it:
// something that can be moved in lock-step with the collider and can receive
// named animation events ("hit", "move_up", ...). The core neither knows nor
// cares how an event maps to frames.
type Sprite interface {
	MoveBy(dx, dy int)
	SetPos(x, y int)
	Trigger(event string, tick int)
}

// Entity binds a sprite, a logical position, and a collider. The three carry
// redundant position state, so NewEntity aligns them once at construction and
// thereafter only MovePos may relocate the entity. Any code path that mutates
// the collider rect or the sprite position directly desynchronizes the
// triple. T is a pointer collider kind, e.g. Entity[*Terrain].
type Entity[T Collider] struct {
	Sprite   Sprite
	Position image.Point
	Collider T
}

// NewEntity constructs an entity and snaps the sprite and collider onto
// position so all three agree.
func NewEntity[T Collider](sprite Sprite, position image.Point, collider T) Entity[T] {
	e := Entity[T]{Sprite: sprite, Position: position, Collider: collider}
	e.align()
	return e
}

// MovePos relocates the entity by (dx, dy). This is the only sanctioned way
// to move an entity; it keeps sprite, position, and collider synchronized.
func (e *Entity[T]) MovePos(dx, dy int) {
	e.Position.X += dx
	e.Position.Y += dy
	if e.Sprite != nil {
		e.Sprite.MoveBy(dx, dy)
	}
	e.Collider.MovePos(dx, dy)
}

func (e *Entity[T]) align() {
	if e.Sprite != nil {
		e.Sprite.SetPos(e.Position.X, e.Position.Y)
	}
	e.Collider.SetPos(e.Position.X, e.Position.Y)
}
