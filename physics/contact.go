package physics

// Kind discriminates which pool a ColliderID indexes into.
type Kind int

const (
	KindTerrain Kind = iota
	KindMobile
	KindProjectile
	KindWall
)

func (k Kind) String() string {
	switch k {
	case KindTerrain:
		return "terrain"
	case KindMobile:
		return "mobile"
	case KindProjectile:
		return "projectile"
	case KindWall:
		return "wall"
	}
	return "unknown"
}

// ColliderID is a tagged index into one of the four pools. IDs are only valid
// within the tick that produced them: pruning reorders the pools at the end
// of every tick, so an ID must never be cached across a pipeline invocation.
type ColliderID struct {
	Kind  Kind
	Index int
}

func TerrainID(i int) ColliderID    { return ColliderID{Kind: KindTerrain, Index: i} }
func MobileID(i int) ColliderID     { return ColliderID{Kind: KindMobile, Index: i} }
func ProjectileID(i int) ColliderID { return ColliderID{Kind: KindProjectile, Index: i} }
func WallID(i int) ColliderID       { return ColliderID{Kind: KindWall, Index: i} }

// Contact records one detected overlap for the current tick. A is always the
// dynamic or attacking side (mobile or projectile) and B the passive side;
// both restitution and rule resolution match on that ordering. MTV carries
// the minimum translation vector for mobile-vs-wall contacts and is zero for
// every other pair.
type Contact struct {
	A, B       ColliderID
	MTVX, MTVY int
}

// GatherContacts runs the five pairwise sweeps and appends one contact per
// overlapping pair to *into. Callers clear the buffer before each tick; the
// generator only appends. Projectiles are never tested against walls or each
// other: they fly through both.
func GatherContacts(
	terrains []Entity[*Terrain],
	mobiles []Entity[*Mobile],
	walls []Wall,
	projs []Projectile,
	into *[]Contact,
) {
	// mobiles against mobiles, upper triangle so each pair appears once
	for ai := range mobiles {
		a := mobiles[ai].Collider.Rect
		for bi := ai + 1; bi < len(mobiles); bi++ {
			b := mobiles[bi].Collider.Rect
			if overlaps(a, b) {
				*into = append(*into, Contact{A: MobileID(ai), B: MobileID(bi)})
			}
		}
	}
	// mobiles against terrains
	for ai := range mobiles {
		a := mobiles[ai].Collider.Rect
		for bi := range terrains {
			if overlaps(a, terrains[bi].Collider.Rect) {
				*into = append(*into, Contact{A: MobileID(ai), B: TerrainID(bi)})
			}
		}
	}
	// mobiles against walls; these are the only contacts that carry an MTV
	for ai := range mobiles {
		a := mobiles[ai].Collider.Rect
		for bi := range walls {
			b := walls[bi].Rect
			if overlaps(a, b) {
				c := Contact{A: MobileID(ai), B: WallID(bi)}
				c.MTVX, c.MTVY, _ = Displacement(a, b)
				*into = append(*into, c)
			}
		}
	}
	// projectiles against mobiles
	for ai := range projs {
		a := projs[ai].Rect
		for bi := range mobiles {
			if overlaps(a, mobiles[bi].Collider.Rect) {
				*into = append(*into, Contact{A: ProjectileID(ai), B: MobileID(bi)})
			}
		}
	}
	// projectiles against terrains
	for ai := range projs {
		a := projs[ai].Rect
		for bi := range terrains {
			if overlaps(a, terrains[bi].Collider.Rect) {
				*into = append(*into, Contact{A: ProjectileID(ai), B: TerrainID(bi)})
			}
		}
	}
}

func overlaps(a, b Rect) bool {
	return !SeparatingAxis(a.X, a.X+a.W, b.X, b.X+b.W) &&
		!SeparatingAxis(a.Y, a.Y+a.H, b.Y, b.Y+b.H)
}
