package physics

// Collider is the movable-rectangle capability shared by all four body kinds.
type Collider interface {
	MovePos(dx, dy int)
	SetPos(x, y int)
	Bounds() Rect
}

// Terrain is a static block. It never moves under its own power; the rule
// layer shifts its position directly when the camera scrolls it.
type Terrain struct {
	Rect         Rect
	CreatedAt    int
	Destructible bool
	HP           int
}

// NewTerrain creates a terrain block recorded against the tick it spawned on.
func NewTerrain(rect Rect, createdAt int, destructible bool, hp int) Terrain {
	return Terrain{Rect: rect, CreatedAt: createdAt, Destructible: destructible, HP: hp}
}

func (t *Terrain) MovePos(dx, dy int) {
	t.Rect.X += dx
	t.Rect.Y += dy
}

func (t *Terrain) SetPos(x, y int) {
	t.Rect.X = x
	t.Rect.Y = y
}

func (t *Terrain) Bounds() Rect { return t.Rect }

// Mobile is a free-moving actor. Exactly one Mobile in a pool has IsPlayer
// set, and by convention it occupies index 0.
type Mobile struct {
	Rect     Rect
	VX, VY   float64
	HP       int
	IsPlayer bool
}

// NewEnemy creates a non-player mobile.
func NewEnemy(rect Rect, vx, vy float64, hp int) Mobile {
	return Mobile{Rect: rect, VX: vx, VY: vy, HP: hp}
}

// NewPlayer creates the player mobile at (x, y).
func NewPlayer(x, y, w, h, hp int) Mobile {
	return Mobile{Rect: Rect{X: x, Y: y, W: w, H: h}, HP: hp, IsPlayer: true}
}

func (m *Mobile) MovePos(dx, dy int) {
	m.Rect.X += dx
	m.Rect.Y += dy
}

func (m *Mobile) SetPos(x, y int) {
	m.Rect.X = x
	m.Rect.Y = y
}

func (m *Mobile) Bounds() Rect { return m.Rect }

// Projectile is an unwrapped body: it has no sprite and renders as a plain
// rect. HP doubles as its damage payload; it is consumed (HP -> 0) on the
// first impact regardless of what it hit.
type Projectile struct {
	Rect   Rect
	VX, VY float64
	HP     int
}

// NewProjectile spawns a projectile at the muzzle point of the given mobile:
// horizontally centered, just above its top edge.
func NewProjectile(from *Mobile, w, h int, vy float64, damage int) Projectile {
	return Projectile{
		Rect: Rect{
			X: from.Rect.X + from.Rect.W/2,
			Y: from.Rect.Y - 10,
			W: w,
			H: h,
		},
		VY: vy,
		HP: damage,
	}
}

func (p *Projectile) MovePos(dx, dy int) {
	p.Rect.X += dx
	p.Rect.Y += dy
}

func (p *Projectile) SetPos(x, y int) {
	p.Rect.X = x
	p.Rect.Y = y
}

func (p *Projectile) Bounds() Rect { return p.Rect }

// Wall is a scroll-boundary body. It has no hit points and gameplay never
// destroys it; the caller repositions walls as the camera window moves.
type Wall struct {
	Rect Rect
}

func NewWall(rect Rect) Wall { return Wall{Rect: rect} }

func (w *Wall) MovePos(dx, dy int) {
	w.Rect.X += dx
	w.Rect.Y += dy
}

func (w *Wall) SetPos(x, y int) {
	w.Rect.X = x
	w.Rect.Y = y
}

func (w *Wall) Bounds() Rect { return w.Rect }
