package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

var hudFace = ebtext.NewGoXFace(basicfont.Face7x13)

// drawHUD renders score and player health in the top-left corner.
func drawHUD(screen *ebiten.Image, score, hp, maxHP int) {
	drawLabel(screen, fmt.Sprintf("SCORE %06d", score), 8, 8)
	drawLabel(screen, fmt.Sprintf("HULL  %d/%d", hp, maxHP), 8, 24)
}

func drawLabel(screen *ebiten.Image, s string, x, y float64) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.White)
	ebtext.Draw(screen, s, hudFace, op)
}
