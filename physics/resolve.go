package physics

import (
	"sort"

	"github.com/adamguos/scrollfall/common"
)

// AmbientScrollVY is the world's constant scroll rate in pixels per tick.
// Restitution biases its vertical signum by this rate so an actor with no
// vertical input still resolves as if drifting with the scroll, and a
// vertically corrected actor keeps pace with the world instead of stalling.
const AmbientScrollVY = -1.0

// mobileMobileDamage is dealt to the higher-hp side of a mobile-vs-mobile
// collision that involves the player; the lower-hp side dies outright.
const mobileMobileDamage = 30

// Restitute pushes mobiles out of walls before the rule pass reads any
// position state, so an actor cannot be pushed back and killed by the same
// overlap. Contacts are sorted in place, largest corrections first: a later
// correction may re-displace an actor an earlier one already nudged, and
// resolving the deepest penetrations first keeps that compounding small.
// Mobile-vs-mobile restitution is deliberately absent; overlapping mobiles
// interact through damage only. The terrain pool is unused by the wall path
// today but stays in the signature for static-vs-dynamic cases.
func Restitute(terrains []Entity[*Terrain], mobiles []Entity[*Mobile], contacts []Contact) {
	_ = terrains

	sort.SliceStable(contacts, func(i, j int) bool {
		return contacts[i].MTVX*contacts[i].MTVX+contacts[i].MTVY*contacts[i].MTVY >
			contacts[j].MTVX*contacts[j].MTVX+contacts[j].MTVY*contacts[j].MTVY
	})

	for _, c := range contacts {
		if c.A.Kind != KindMobile || c.B.Kind != KindWall {
			continue
		}
		m := &mobiles[c.A.Index]
		m.MovePos(
			-c.MTVX*common.Signum(m.Collider.VX),
			-c.MTVY*common.Signum(m.Collider.VY-AmbientScrollVY),
		)
		if c.MTVX != 0 {
			// hit a side wall, horizontal momentum is gone
			m.Collider.VX = 0
		}
		if c.MTVY != 0 {
			m.Collider.VY = AmbientScrollVY
		}
	}
}

// ResolveContacts interprets the contact list as gameplay: damage transfer,
// destruction, player death, and pruning of dead entities. It assumes
// Restitute already ran on the same list this tick. It reports whether the
// player survived the tick and how many mobiles the prune removed (the
// caller's score currency).
//
// The rules, keyed on the (A, B) kind pair:
//
//   - mobile x terrain: the player dies on touch; other mobiles are unharmed.
//   - mobile x mobile: only meaningful when one side is the player. The
//     strictly lower-hp side dies; the other side takes flat damage.
//   - projectile x terrain: destructible terrain absorbs the payload and
//     flashes a "hit" trigger; the projectile is consumed either way.
//   - projectile x mobile: the mobile absorbs the payload; the projectile is
//     consumed.
//
// Damage never underflows: every subtraction floors explicitly at zero, so a
// mobile already at 0 hp that is hit again stays at 0.
func ResolveContacts(
	terrains *[]Entity[*Terrain],
	mobiles *[]Entity[*Mobile],
	projs *[]Projectile,
	contacts []Contact,
) (playerAlive bool, enemiesRemoved int) {
	ts, ms, ps := *terrains, *mobiles, *projs

	for _, c := range contacts {
		switch {
		case c.A.Kind == KindMobile && c.B.Kind == KindTerrain:
			if ms[c.A.Index].Collider.IsPlayer {
				ms[c.A.Index].Collider.HP = 0
			}

		case c.A.Kind == KindMobile && c.B.Kind == KindMobile:
			a, b := ms[c.A.Index].Collider, ms[c.B.Index].Collider
			if !a.IsPlayer && !b.IsPlayer {
				break
			}
			if a.HP > b.HP {
				b.HP = 0
				if a.HP >= mobileMobileDamage {
					a.HP -= mobileMobileDamage
				} else {
					a.HP = 0
				}
			} else {
				a.HP = 0
				if b.HP >= mobileMobileDamage {
					b.HP -= mobileMobileDamage
				} else {
					b.HP = 0
				}
			}

		case c.A.Kind == KindProjectile && c.B.Kind == KindTerrain:
			t := &ts[c.B.Index]
			if t.Collider.Destructible {
				if t.Collider.HP >= ps[c.A.Index].HP {
					t.Collider.HP -= ps[c.A.Index].HP
				} else {
					t.Collider.HP = 0
				}
			}
			// the impact feedback plays whether or not the block can break
			if t.Sprite != nil {
				t.Sprite.Trigger("hit", 0)
			}
			ps[c.A.Index].HP = 0

		case c.A.Kind == KindProjectile && c.B.Kind == KindMobile:
			m := ms[c.B.Index].Collider
			if m.HP >= ps[c.A.Index].HP {
				m.HP -= ps[c.A.Index].HP
			} else {
				m.HP = 0
			}
			ps[c.A.Index].HP = 0
		}
	}

	// The alive flag reflects this tick's damage, read before the prune so
	// the dead player (which is never removed) still reports correctly.
	playerAlive = ms[0].Collider.HP != 0

	*terrains = retainTerrains(ts)
	before := len(ms)
	*mobiles = retainMobiles(ms)
	enemiesRemoved = before - len(*mobiles)
	*projs = retainProjectiles(ps)
	return playerAlive, enemiesRemoved
}

func retainTerrains(ts []Entity[*Terrain]) []Entity[*Terrain] {
	out := ts[:0]
	for _, t := range ts {
		if t.Collider.HP > 0 {
			out = append(out, t)
		}
	}
	return out
}

// retainMobiles drops dead mobiles but always keeps the player, so index 0
// stays a stable player slot and death is observed via the returned flag
// rather than by disappearance.
func retainMobiles(ms []Entity[*Mobile]) []Entity[*Mobile] {
	out := ms[:0]
	for _, m := range ms {
		if m.Collider.HP > 0 || m.Collider.IsPlayer {
			out = append(out, m)
		}
	}
	return out
}

func retainProjectiles(ps []Projectile) []Projectile {
	out := ps[:0]
	for _, p := range ps {
		if p.HP > 0 {
			out = append(out, p)
		}
	}
	return out
}
