package main

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/adamguos/scrollfall/common"
	"github.com/adamguos/scrollfall/obj"
	"github.com/adamguos/scrollfall/physics"
	"github.com/adamguos/scrollfall/prefabs"
	"github.com/adamguos/scrollfall/system"
	"github.com/adamguos/scrollfall/tiles"
)

// dt is the fixed simulation timestep in seconds. Rendering produces wall
// time, the accumulator consumes it in dt slices, so the simulation rate is
// independent of the display refresh rate.
const dt = 1.0 / 60.0

const pointsPerKill = 100

// Game owns the entity pools, the camera scroll, and the per-tick pipeline.
type Game struct {
	debug bool

	tick    int
	accum   float64
	last    time.Time
	started bool

	scroll image.Point
	view   image.Point

	playerSpec  prefabs.PlayerSpec
	enemySpec   prefabs.EnemySpec
	terrainSpec prefabs.TerrainSpec
	projSpec    prefabs.ProjectileSpec
	tuning      prefabs.TuningSpec

	spawner *system.Spawner
	watcher *prefabs.Watcher

	tileset  *tiles.Tileset
	tilemaps []*tiles.Tilemap
	rng      *rand.Rand

	// the four pools and the transient contact buffer; contacts never
	// survive a tick
	terrains []physics.Entity[*physics.Terrain]
	mobiles  []physics.Entity[*physics.Mobile]
	walls    []physics.Wall
	projs    []physics.Projectile
	contacts []physics.Contact

	input    *Input
	cooldown int
	boosting bool

	score    int
	gameOver bool
	paused   bool
	ui       *ebitenui.UI

	projImg *ebiten.Image
}

// NewGame loads every prefab spec, compiles the wave script, and builds the
// initial world.
func NewGame(debug bool) (*Game, error) {
	g := &Game{
		debug: debug,
		view:  image.Pt(common.BaseWidth, common.BaseHeight),
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		input: NewInput(),
	}

	if err := g.loadSpecs(); err != nil {
		return nil, err
	}

	spawner, err := system.NewSpawner(g.tuning.SpawnScript)
	if err != nil {
		return nil, err
	}
	g.spawner = spawner

	g.tileset = tiles.NewTileset([]color.RGBA{
		{R: 0x18, G: 0x1c, B: 0x28, A: 0xff},
		{R: 0x1c, G: 0x20, B: 0x2e, A: 0xff},
		{R: 0x16, G: 0x1a, B: 0x24, A: 0xff},
	})

	g.projImg = ebiten.NewImage(g.projSpec.Size.W, g.projSpec.Size.H)
	g.projImg.Fill(color.RGBA{R: 0x00, G: 0xc8, B: 0x50, A: 0xff})

	if debug {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("prefab watcher disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	g.reset()
	return g, nil
}

func (g *Game) loadSpecs() error {
	var err error
	if g.playerSpec, err = prefabs.LoadSpec[prefabs.PlayerSpec]("player.yaml"); err != nil {
		return err
	}
	if g.enemySpec, err = prefabs.LoadSpec[prefabs.EnemySpec]("enemy.yaml"); err != nil {
		return err
	}
	if g.terrainSpec, err = prefabs.LoadSpec[prefabs.TerrainSpec]("terrain.yaml"); err != nil {
		return err
	}
	if g.projSpec, err = prefabs.LoadSpec[prefabs.ProjectileSpec]("projectile.yaml"); err != nil {
		return err
	}
	if g.tuning, err = prefabs.LoadSpec[prefabs.TuningSpec]("tuning.yaml"); err != nil {
		return err
	}
	return nil
}

// reset rebuilds the world for a fresh run.
func (g *Game) reset() {
	g.tick = 0
	g.score = 0
	g.scroll = image.Pt(0, 0)
	g.gameOver = false
	g.paused = false
	g.ui = nil
	g.cooldown = 0
	g.boosting = false

	px := (common.BaseWidth - g.playerSpec.Hitbox.W) / 2
	py := common.BaseHeight - 240
	g.terrains = g.terrains[:0]
	g.mobiles = append(g.mobiles[:0], obj.NewPlayer(g.playerSpec, px, py, g.tick))
	g.walls = obj.BoundaryWalls(g.scroll, g.view, g.tuning.WallThickness)
	g.projs = g.projs[:0]
	g.contacts = g.contacts[:0]

	g.tilemaps = g.tilemaps[:0]
	dims := image.Pt(g.view.X/tiles.TileSize, g.view.Y/tiles.TileSize)
	for i := 0; i < 2; i++ {
		ids := make([]int, dims.X*dims.Y)
		g.tilemaps = append(g.tilemaps, tiles.NewTilemap(
			image.Pt(0, -i*g.view.Y), dims, g.tileset, ids,
		))
	}
}

// Update consumes wall time into fixed simulation ticks.
func (g *Game) Update() error {
	now := time.Now()
	if !g.started {
		g.started = true
		g.last = now
	}
	g.accum += now.Sub(g.last).Seconds()
	g.last = now

	g.input.Update()
	g.reloadPrefabs()

	if g.ui != nil {
		g.ui.Update()
	}
	if g.gameOver {
		if g.input.RestartPressed {
			g.reset()
		}
		g.accum = 0
		return nil
	}
	if g.input.PausePressed {
		g.paused = !g.paused
		if g.paused {
			g.ui = NewPauseUI(g)
		} else {
			g.ui = nil
		}
	}
	if g.paused {
		g.accum = 0
		return nil
	}

	for g.accum >= dt {
		g.accum -= dt
		g.step()
		g.tick++
	}
	return nil
}

// step advances the simulation by one tick: scroll, spawn, steer, integrate,
// then the contact pipeline (gather, restitute, resolve, prune).
func (g *Game) step() {
	g.scroll.Y--

	g.applySpawns()
	g.steerPlayer()
	g.fire()

	for i := range g.mobiles {
		m := g.mobiles[i].Collider
		g.mobiles[i].MovePos(int(m.VX), int(m.VY))
	}
	for i := range g.projs {
		g.projs[i].MovePos(int(g.projs[i].VX), int(g.projs[i].VY))
	}

	obj.Refence(g.walls, g.scroll, g.view, g.tuning.WallThickness)

	// contacts are only valid within this tick; the pools get filtered below
	g.contacts = g.contacts[:0]
	physics.GatherContacts(g.terrains, g.mobiles, g.walls, g.projs, &g.contacts)
	physics.Restitute(g.terrains, g.mobiles, g.contacts)
	alive, removed := physics.ResolveContacts(&g.terrains, &g.mobiles, &g.projs, g.contacts)

	g.score += removed * pointsPerKill
	if !alive {
		g.gameOver = true
		g.ui = NewGameOverUI(g, g.score)
		return
	}

	g.cullOffscreen()
	g.tilemaps = tiles.Page(g.tilemaps, g.tileset, g.rng, g.scroll, g.view)
}

func (g *Game) applySpawns() {
	cmds, err := g.spawner.Poll(g.tick, g.scroll.Y, g.view.X)
	if err != nil {
		log.Printf("spawn poll: %v", err)
		return
	}
	for _, c := range cmds {
		switch c.Kind {
		case system.SpawnEnemy:
			g.mobiles = append(g.mobiles, obj.NewEnemy(g.enemySpec, c.X, c.Y, g.tick))
		case system.SpawnTerrain:
			g.terrains = append(g.terrains, obj.NewBlock(g.terrainSpec, c.X, c.Y, g.tick))
		}
	}
}

// steerPlayer maps input to the player's velocity and fires the boost
// animation events on edges.
func (g *Game) steerPlayer() {
	player := g.mobiles[0].Collider
	player.VX = g.input.MoveX * g.playerSpec.Speed
	player.VY = g.input.MoveY * g.playerSpec.Speed

	up := g.input.MoveY < 0
	if up && !g.boosting {
		g.mobiles[0].Sprite.Trigger("move_up", g.tick)
	}
	if !up && g.boosting {
		g.mobiles[0].Sprite.Trigger("stop_moving", g.tick)
	}
	g.boosting = up
}

func (g *Game) fire() {
	if g.cooldown > 0 {
		g.cooldown--
	}
	if !g.input.FireHeld || g.cooldown > 0 {
		return
	}
	g.projs = append(g.projs, obj.NewShot(g.projSpec, g.mobiles[0].Collider))
	g.cooldown = g.projSpec.CooldownTicks
}

// cullOffscreen drops bodies that left the camera window: projectiles past
// the top, terrain scrolled out below. This runs outside the contact
// pipeline, after the per-tick prune.
func (g *Game) cullOffscreen() {
	projs := g.projs[:0]
	for _, p := range g.projs {
		if p.Rect.Y+p.Rect.H >= g.scroll.Y {
			projs = append(projs, p)
		}
	}
	g.projs = projs

	terrains := g.terrains[:0]
	for _, t := range g.terrains {
		if t.Collider.Rect.Y <= g.scroll.Y+g.view.Y {
			terrains = append(terrains, t)
		}
	}
	g.terrains = terrains

	mobiles := g.mobiles[:1]
	for _, m := range g.mobiles[1:] {
		if m.Collider.Rect.Y <= g.scroll.Y+g.view.Y+tiles.TileSize {
			mobiles = append(mobiles, m)
		}
	}
	g.mobiles = mobiles
}

func (g *Game) reloadPrefabs() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("prefab changed: %s", path)
			if err := g.loadSpecs(); err != nil {
				log.Printf("prefab reload: %v", err)
				continue
			}
			if sp, err := system.NewSpawner(g.tuning.SpawnScript); err != nil {
				log.Printf("spawn script reload: %v", err)
			} else {
				g.spawner = sp
			}
		case err := <-g.watcher.Errors:
			log.Printf("prefab watcher: %v", err)
		default:
			return
		}
	}
}

// Draw renders the world relative to the camera scroll, then the HUD and any
// overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x10, G: 0x12, B: 0x1a, A: 0xff})

	for _, m := range g.tilemaps {
		m.Draw(screen, g.scroll)
	}
	for i := range g.terrains {
		drawEntitySprite(screen, g.terrains[i].Sprite, g.scroll, g.tick)
	}
	for i := range g.mobiles {
		drawEntitySprite(screen, g.mobiles[i].Sprite, g.scroll, g.tick)
	}
	for i := range g.projs {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(
			float64(g.projs[i].Rect.X-g.scroll.X),
			float64(g.projs[i].Rect.Y-g.scroll.Y),
		)
		screen.DrawImage(g.projImg, op)
	}

	player := g.mobiles[0].Collider
	drawHUD(screen, g.score, player.HP, g.playerSpec.HP)
	if g.debug {
		drawLabel(screen, fmt.Sprintf("tick %d  mobiles %d  terrains %d  projs %d  contacts %d",
			g.tick, len(g.mobiles), len(g.terrains), len(g.projs), len(g.contacts)), 8, 40)
	}

	if g.ui != nil {
		g.ui.Draw(screen)
	}
}

func drawEntitySprite(screen *ebiten.Image, s physics.Sprite, scroll image.Point, tick int) {
	// entities store their sprite behind the physics-facing interface; only
	// the concrete component sprite knows how to draw
	type drawer interface {
		Draw(dst *ebiten.Image, scroll image.Point, tick int)
	}
	if d, ok := s.(drawer); ok {
		d.Draw(screen, scroll, tick)
	}
}

// Layout fixes the logical resolution.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
