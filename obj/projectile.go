package obj

import (
	"github.com/adamguos/scrollfall/physics"
	"github.com/adamguos/scrollfall/prefabs"
)

// NewShot spawns a projectile from the muzzle of the given mobile, usually
// the player. Its hp is the damage payload.
func NewShot(spec prefabs.ProjectileSpec, from *physics.Mobile) physics.Projectile {
	return physics.NewProjectile(from, spec.Size.W, spec.Size.H, spec.VY, spec.Damage)
}
