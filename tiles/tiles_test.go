package tiles

import (
	"image"
	"math/rand"
	"testing"
)

// a tileset with ids but no images; nothing here draws
func bareTileset() *Tileset {
	return &Tileset{
		Tiles:     []Tile{{}, {}},
		GroundIDs: []int{0, 1},
	}
}

func filledMap(x, y, w, h int) *Tilemap {
	ids := make([]int, w*h)
	return NewTilemap(image.Pt(x, y), image.Pt(w, h), bareTileset(), ids)
}

func TestTilemapVisibility(t *testing.T) {
	view := image.Pt(480, 800)
	cases := []struct {
		name    string
		m       *Tilemap
		scroll  image.Point
		visible bool
	}{
		{"inside", filledMap(0, 0, 30, 50), image.Pt(0, 0), true},
		{"straddles_top", filledMap(0, -400, 30, 50), image.Pt(0, 0), true},
		{"fully_above", filledMap(0, -900, 30, 50), image.Pt(0, 0), false},
		{"fully_below_after_scroll", filledMap(0, 0, 30, 50), image.Pt(0, -1000), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.m.IsVisible(c.scroll, view); got != c.visible {
				t.Fatalf("IsVisible(%v) = %v, want %v", c.scroll, got, c.visible)
			}
		})
	}
}

func TestNewTilemapPanicsOnBadLength(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for mismatched id slice")
		}
	}()
	NewTilemap(image.Pt(0, 0), image.Pt(4, 4), bareTileset(), make([]int, 3))
}

func TestPageDropsInvisibleAndLoadsAhead(t *testing.T) {
	ts := bareTileset()
	rng := rand.New(rand.NewSource(1))
	view := image.Pt(480, 800)
	scroll := image.Pt(0, -1000)

	maps := []*Tilemap{
		filledMap(0, 0, 30, 50),     // scrolled out below
		filledMap(0, -800, 30, 50),  // straddles the view
	}

	got := Page(maps, ts, rng, scroll, view)

	for _, m := range got {
		if !m.IsVisible(scroll, view) && m.Position.Y >= scroll.Y {
			t.Fatalf("kept an off-screen map at %v", m.Position)
		}
	}
	// the straddling map doesn't extend above the view top, so a new map
	// must have been loaded ahead of the scroll
	var above bool
	for _, m := range got {
		if m.Position.Y+TileSize < scroll.Y {
			above = true
		}
	}
	if !above {
		t.Fatalf("no map loaded above the view, got %d maps", len(got))
	}

	// paging again with coverage in place must not load another
	n := len(got)
	got = Page(got, ts, rng, scroll, view)
	if len(got) != n {
		t.Fatalf("second page changed map count %d -> %d", n, len(got))
	}
}
