package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Animation is a frame-based animator over one row of a spritesheet. Frames
// advance every TicksPerFrame simulation ticks, measured from the tick the
// owning state machine entered this animation.
type Animation struct {
	Frames        []*ebiten.Image
	TicksPerFrame int
	Loop          bool
}

// NewAnimation slices `frameCount` frames of size frameW x frameH from the
// given row of the sheet, left to right.
func NewAnimation(sheet *ebiten.Image, frameW, frameH, row, frameCount, ticksPerFrame int, loop bool) *Animation {
	if ticksPerFrame <= 0 {
		ticksPerFrame = 10
	}
	a := &Animation{TicksPerFrame: ticksPerFrame, Loop: loop}
	if sheet == nil || frameW <= 0 || frameH <= 0 || frameCount <= 0 {
		return a
	}
	cols := sheet.Bounds().Dx() / frameW
	if frameCount > cols {
		frameCount = cols
	}
	b := sheet.Bounds()
	for i := 0; i < frameCount; i++ {
		x := b.Min.X + i*frameW
		y := b.Min.Y + row*frameH
		sub := sheet.SubImage(image.Rect(x, y, x+frameW, y+frameH)).(*ebiten.Image)
		a.Frames = append(a.Frames, sub)
	}
	return a
}

// FrameIndex returns which frame to show at tick `now`, given the tick the
// animation started on. Non-looping animations hold their last frame.
func (a *Animation) FrameIndex(start, now int) int {
	if a == nil || len(a.Frames) == 0 {
		return 0
	}
	elapsed := now - start
	if elapsed < 0 {
		elapsed = 0
	}
	idx := elapsed / a.TicksPerFrame
	if a.Loop {
		return idx % len(a.Frames)
	}
	if idx >= len(a.Frames) {
		return len(a.Frames) - 1
	}
	return idx
}

// Frame returns the image for the current frame, or nil for an empty
// animation.
func (a *Animation) Frame(start, now int) *ebiten.Image {
	if a == nil || len(a.Frames) == 0 {
		return nil
	}
	return a.Frames[a.FrameIndex(start, now)]
}
