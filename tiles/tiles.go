// Package tiles renders the scrolling background as paged tilemaps. Maps are
// decorative: gameplay collision runs against the physics pools, not tiles.
package tiles

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
)

// TileSize is the pixel edge of one background tile.
const TileSize = 16

// Tile is one tileset entry.
type Tile struct {
	Solid bool
}

// Tileset is a shared palette of tiles used by every tilemap. Tile art is
// procedural: one flat-color image per tile id.
type Tileset struct {
	Tiles []Tile
	// GroundIDs are the tile ids the pager may pick for freshly loaded maps.
	GroundIDs []int

	images []*ebiten.Image
}

// NewTileset builds a tileset with one tile per color. All ids are ground
// candidates.
func NewTileset(colors []color.RGBA) *Tileset {
	ts := &Tileset{}
	for i, c := range colors {
		img := ebiten.NewImage(TileSize, TileSize)
		img.Fill(c)
		ts.images = append(ts.images, img)
		ts.Tiles = append(ts.Tiles, Tile{})
		ts.GroundIDs = append(ts.GroundIDs, i)
	}
	return ts
}

func (ts *Tileset) image(id int) *ebiten.Image {
	if ts == nil || id < 0 || id >= len(ts.images) {
		return nil
	}
	return ts.images[id]
}

// Tilemap is a rectangular block of tile ids positioned in world pixels.
type Tilemap struct {
	Position image.Point
	// Dims is the map extent in tiles.
	Dims    image.Point
	Tileset *Tileset
	IDs     []int
}

// NewTilemap creates a map. The id slice length must match the dimensions;
// a mismatch is a programmer error and panics.
func NewTilemap(position, dims image.Point, ts *Tileset, ids []int) *Tilemap {
	if len(ids) != dims.X*dims.Y {
		panic(fmt.Sprintf("tiles: map %dx%d needs %d ids, got %d", dims.X, dims.Y, dims.X*dims.Y, len(ids)))
	}
	return &Tilemap{Position: position, Dims: dims, Tileset: ts, IDs: ids}
}

// Bounds returns the map's pixel rectangle in world space.
func (t *Tilemap) Bounds() image.Rectangle {
	return image.Rect(
		t.Position.X,
		t.Position.Y,
		t.Position.X+t.Dims.X*TileSize,
		t.Position.Y+t.Dims.Y*TileSize,
	)
}

// IsVisible reports whether any part of the map falls inside the camera
// window at the given scroll.
func (t *Tilemap) IsVisible(scroll, view image.Point) bool {
	window := image.Rect(scroll.X, scroll.Y, scroll.X+view.X, scroll.Y+view.Y)
	return t.Bounds().Overlaps(window)
}

// Draw renders the map relative to the camera scroll.
func (t *Tilemap) Draw(dst *ebiten.Image, scroll image.Point) {
	if t == nil || dst == nil || t.Tileset == nil {
		return
	}
	for ty := 0; ty < t.Dims.Y; ty++ {
		for tx := 0; tx < t.Dims.X; tx++ {
			img := t.Tileset.image(t.IDs[ty*t.Dims.X+tx])
			if img == nil {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(
				float64(t.Position.X+tx*TileSize-scroll.X),
				float64(t.Position.Y+ty*TileSize-scroll.Y),
			)
			dst.DrawImage(img, op)
		}
	}
}

// Page retains the maps still visible at the current scroll and, when no map
// extends above the view yet, loads a fresh one just past the top edge with a
// ground tile picked from the set. It returns the updated map list.
func Page(maps []*Tilemap, ts *Tileset, rng *rand.Rand, scroll, view image.Point) []*Tilemap {
	kept := maps[:0]
	covered := false
	for _, m := range maps {
		if m.IsVisible(scroll, view) {
			kept = append(kept, m)
		}
		if m.Position.Y+TileSize < scroll.Y {
			covered = true
		}
	}

	if !covered && ts != nil && len(ts.GroundIDs) > 0 {
		id := ts.GroundIDs[rng.Intn(len(ts.GroundIDs))]
		dims := image.Pt(view.X/TileSize, view.Y/TileSize)
		ids := make([]int, dims.X*dims.Y)
		for i := range ids {
			ids[i] = id
		}
		kept = append(kept, NewTilemap(
			image.Pt(scroll.X, scroll.Y-view.Y+TileSize),
			dims, ts, ids,
		))
	}
	return kept
}
