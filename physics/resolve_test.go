package physics

import (
	"image"
	"testing"
)

func runTick(terrains *[]Entity[*Terrain], mobiles *[]Entity[*Mobile], walls []Wall, projs *[]Projectile) (bool, int) {
	var contacts []Contact
	GatherContacts(*terrains, *mobiles, walls, *projs, &contacts)
	Restitute(*terrains, *mobiles, contacts)
	return ResolveContacts(terrains, mobiles, projs, contacts)
}

func TestRestituteSortsLargestCorrectionFirst(t *testing.T) {
	mobiles := []Entity[*Mobile]{mobileAt(0, 0, 10, 10, 100, true)}
	contacts := []Contact{
		{A: MobileID(0), B: WallID(0), MTVX: 3},
		{A: MobileID(0), B: WallID(1), MTVY: 10},
		{A: MobileID(0), B: MobileID(0)},
	}
	Restitute(nil, mobiles, contacts)

	if contacts[0].MTVY != 10 || contacts[1].MTVX != 3 {
		t.Fatalf("contacts not sorted by descending MTV magnitude: %+v", contacts)
	}
	// magnitude 10 on Y applied before magnitude 3 on X, both against an
	// actor with zero velocity (treated as moving positive / with the scroll)
	m := mobiles[0]
	if m.Position.X != -3 || m.Position.Y != -10 {
		t.Fatalf("mobile at %v, want (-3, -10)", m.Position)
	}
}

func TestRestituteWallScenarios(t *testing.T) {
	cases := []struct {
		name       string
		vx, vy     float64
		mtvx, mtvy int
		wantDX     int
		wantDY     int
		wantVX     float64
		wantVY     float64
	}{
		// moving right into a side wall: pushed left, vx killed, vy untouched
		{"side_wall_moving_right", 3, 0, 5, 0, -5, 0, 0, 0},
		// moving left into a side wall: pushed right
		{"side_wall_moving_left", -3, 0, 5, 0, 5, 0, 0, 0},
		// no vertical input still counts as drifting with the scroll, so a
		// bottom overlap resolves upward and vy snaps to the scroll rate
		{"bottom_wall_idle", 0, 0, 0, 4, 0, -4, 0, AmbientScrollVY},
		// moving up faster than the scroll: resolves downward
		{"top_wall_moving_up", 0, -6, 0, 4, 0, 4, 0, AmbientScrollVY},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := mobileAt(100, 100, 36, 25, 100, true)
			m.Collider.VX = c.vx
			m.Collider.VY = c.vy
			mobiles := []Entity[*Mobile]{m}
			contacts := []Contact{{A: MobileID(0), B: WallID(0), MTVX: c.mtvx, MTVY: c.mtvy}}

			Restitute(nil, mobiles, contacts)

			got := mobiles[0]
			if got.Position.X != 100+c.wantDX || got.Position.Y != 100+c.wantDY {
				t.Fatalf("position %v, want (%d, %d)", got.Position, 100+c.wantDX, 100+c.wantDY)
			}
			if got.Collider.VX != c.wantVX {
				t.Fatalf("vx = %v, want %v", got.Collider.VX, c.wantVX)
			}
			if got.Collider.VY != c.wantVY {
				t.Fatalf("vy = %v, want %v", got.Collider.VY, c.wantVY)
			}
		})
	}
}

func TestRestituteIgnoresMobileMobileContacts(t *testing.T) {
	mobiles := []Entity[*Mobile]{
		mobileAt(0, 0, 10, 10, 100, true),
		mobileAt(5, 5, 10, 10, 50, false),
	}
	contacts := []Contact{{A: MobileID(0), B: MobileID(1)}}
	Restitute(nil, mobiles, contacts)
	if mobiles[0].Position != image.Pt(0, 0) || mobiles[1].Position != image.Pt(5, 5) {
		t.Fatalf("mobile-vs-mobile contact moved an actor: %v %v", mobiles[0].Position, mobiles[1].Position)
	}
}

func TestPlayerDiesOnTerrainTouch(t *testing.T) {
	terrains := []Entity[*Terrain]{terrainAt(0, 8, 10, 10, false, 40)}
	mobiles := []Entity[*Mobile]{mobileAt(0, 0, 10, 10, 100, true)}
	projs := []Projectile{}

	alive, removed := runTick(&terrains, &mobiles, nil, &projs)

	if alive {
		t.Fatalf("player touched terrain but is still alive")
	}
	if removed != 0 {
		t.Fatalf("removed %d mobiles, want 0", removed)
	}
	if len(mobiles) != 1 || !mobiles[0].Collider.IsPlayer {
		t.Fatalf("dead player must keep its slot, pool: %+v", mobiles)
	}
	if mobiles[0].Collider.HP != 0 {
		t.Fatalf("player hp = %d, want 0", mobiles[0].Collider.HP)
	}
}

func TestNonPlayerUnharmedByTerrain(t *testing.T) {
	terrains := []Entity[*Terrain]{terrainAt(20, 8, 10, 10, false, 40)}
	mobiles := []Entity[*Mobile]{
		mobileAt(100, 100, 10, 10, 100, true),
		mobileAt(20, 0, 10, 10, 50, false),
	}
	projs := []Projectile{}

	alive, removed := runTick(&terrains, &mobiles, nil, &projs)

	if !alive || removed != 0 {
		t.Fatalf("alive=%v removed=%d, want true/0", alive, removed)
	}
	if mobiles[1].Collider.HP != 50 {
		t.Fatalf("enemy hp = %d, want 50", mobiles[1].Collider.HP)
	}
}

func TestMobileMobileRules(t *testing.T) {
	cases := []struct {
		name     string
		hpA, hpB int
		playerA  bool
		playerB  bool
		wantHPA  int
		wantHPB  int
	}{
		{"player_outlasts_weaker_enemy", 100, 50, true, false, 70, 0},
		{"weaker_player_dies", 20, 50, true, false, 0, 20},
		{"equal_hp_attacker_dies", 50, 50, true, false, 0, 20},
		{"enemy_vs_enemy_noop", 60, 40, false, false, 60, 40},
		{"damage_floors_at_zero", 100, 10, true, false, 70, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := mobileAt(0, 0, 10, 10, c.hpA, c.playerA)
			b := mobileAt(5, 5, 10, 10, c.hpB, c.playerB)
			mobiles := []Entity[*Mobile]{a, b}
			if !c.playerA && !c.playerB {
				// keep slot 0 a player so the pool is well formed
				mobiles = append([]Entity[*Mobile]{mobileAt(500, 500, 10, 10, 1, true)}, mobiles...)
			}

			var contacts []Contact
			GatherContacts(nil, mobiles, nil, nil, &contacts)
			Restitute(nil, mobiles, contacts)

			terrains := []Entity[*Terrain]{}
			projs := []Projectile{}
			ResolveContacts(&terrains, &mobiles, &projs, contacts)

			if a.Collider.HP != c.wantHPA {
				t.Fatalf("a hp = %d, want %d", a.Collider.HP, c.wantHPA)
			}
			if b.Collider.HP != c.wantHPB {
				t.Fatalf("b hp = %d, want %d", b.Collider.HP, c.wantHPB)
			}
		})
	}
}

func TestMobileMobileLower30Damage(t *testing.T) {
	// the survivor with hp < 30 floors at 0 instead of wrapping
	mobiles := []Entity[*Mobile]{
		mobileAt(0, 0, 10, 10, 25, true),
		mobileAt(5, 5, 10, 10, 10, false),
	}
	terrains := []Entity[*Terrain]{}
	projs := []Projectile{}

	alive, removed := runTick(&terrains, &mobiles, nil, &projs)

	if alive {
		t.Fatalf("player at 25 hp survived a 30 damage hit")
	}
	if removed != 1 {
		t.Fatalf("removed = %d, want 1 (the enemy)", removed)
	}
	if mobiles[0].Collider.HP != 0 {
		t.Fatalf("player hp = %d, want 0", mobiles[0].Collider.HP)
	}
}

func TestTerrainDestructionScenario(t *testing.T) {
	sp := &stubSprite{}
	terrains := []Entity[*Terrain]{NewEntity[*Terrain](sp, image.Pt(0, 0), &Terrain{Rect: Rect{W: 16, H: 16}, Destructible: true, HP: 40})}
	mobiles := []Entity[*Mobile]{mobileAt(300, 300, 36, 25, 100, true)}

	wantHP := []int{30, 20, 10, 0}
	for hit, want := range wantHP {
		projs := []Projectile{{Rect: Rect{X: 2, Y: 2, W: 5, H: 5}, HP: 10}}
		alive, _ := runTick(&terrains, &mobiles, nil, &projs)
		if !alive {
			t.Fatalf("hit %d: player died", hit+1)
		}
		if len(projs) != 0 {
			t.Fatalf("hit %d: projectile not consumed", hit+1)
		}
		if want == 0 {
			if len(terrains) != 0 {
				t.Fatalf("terrain should be removed after hit %d, pool: %+v", hit+1, terrains)
			}
		} else {
			if len(terrains) != 1 || terrains[0].Collider.HP != want {
				t.Fatalf("after hit %d terrain hp = %+v, want %d", hit+1, terrains, want)
			}
		}
		if len(sp.triggers) != hit+1 {
			t.Fatalf("after hit %d got %d hit triggers", hit+1, len(sp.triggers))
		}
	}
	for _, trig := range sp.triggers {
		if trig != "hit" {
			t.Fatalf("unexpected trigger %q", trig)
		}
	}
}

func TestIndestructibleTerrainStillFlashesAndConsumes(t *testing.T) {
	sp := &stubSprite{}
	terrains := []Entity[*Terrain]{NewEntity[*Terrain](sp, image.Pt(0, 0), &Terrain{Rect: Rect{W: 16, H: 16}, Destructible: false, HP: 40})}
	mobiles := []Entity[*Mobile]{mobileAt(300, 300, 36, 25, 100, true)}
	projs := []Projectile{{Rect: Rect{X: 2, Y: 2, W: 5, H: 5}, HP: 10}}

	runTick(&terrains, &mobiles, nil, &projs)

	if terrains[0].Collider.HP != 40 {
		t.Fatalf("indestructible terrain lost hp: %d", terrains[0].Collider.HP)
	}
	if len(sp.triggers) != 1 || sp.triggers[0] != "hit" {
		t.Fatalf("triggers = %v, want one hit", sp.triggers)
	}
	if len(projs) != 0 {
		t.Fatalf("projectile must be consumed on any terrain impact")
	}
}

func TestProjectileDamageFloorsAtZero(t *testing.T) {
	terrains := []Entity[*Terrain]{}
	mobiles := []Entity[*Mobile]{
		mobileAt(300, 300, 36, 25, 100, true),
		mobileAt(0, 0, 10, 10, 3, false),
	}
	projs := []Projectile{{Rect: Rect{X: 2, Y: 2, W: 5, H: 5}, HP: 10}}

	alive, removed := runTick(&terrains, &mobiles, nil, &projs)

	if !alive {
		t.Fatalf("player should be untouched")
	}
	if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}
	if len(mobiles) != 1 {
		t.Fatalf("enemy at 0 hp should be pruned, pool: %+v", mobiles)
	}
}

func TestPlayerSlotStableAcrossPrunes(t *testing.T) {
	terrains := []Entity[*Terrain]{terrainAt(0, 8, 10, 10, false, 40)}
	mobiles := []Entity[*Mobile]{
		mobileAt(0, 0, 10, 10, 100, true),
		mobileAt(200, 200, 10, 10, 50, false),
	}
	projs := []Projectile{{Rect: Rect{X: 202, Y: 202, W: 5, H: 5}, HP: 60}}

	alive, removed := runTick(&terrains, &mobiles, nil, &projs)

	if alive {
		t.Fatalf("player touched terrain, must be dead this same tick")
	}
	if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}
	if len(mobiles) != 1 || !mobiles[0].Collider.IsPlayer || mobiles[0].Collider.HP != 0 {
		t.Fatalf("slot 0 must hold the dead player, pool: %+v", mobiles)
	}
}
