// Package ebitensurf adapts Ebitengine images to the [surface.Surface]
// interface, so vtxt can draw text directly on game screens.
//
// Ebitengine images can only be drawn on while the game is running,
// so surfaces should be wrapped inside Draw():
//   func (self *Game) Draw(screen *ebiten.Image) {
//       renderer.DrawLine(0, "Hello", ebitensurf.Wrap(screen), 8, 8, white)
//   }
package ebitensurf

import "image"

import "github.com/hajimehoshi/ebiten/v2"

import "github.com/vultureui/vtxt/surface"

var _ surface.Surface = (*Surface)(nil)

// Surface wraps an [*ebiten.Image]. Packed colors use [surface.ARGB8888].
type Surface struct {
	target *ebiten.Image
}

// Wraps the given Ebitengine image.
func Wrap(target *ebiten.Image) *Surface {
	return &Surface{target: target}
}

// Returns the wrapped image.
func (self *Surface) Target() *ebiten.Image { return self.target }

// Satisfies the [surface.Surface] interface.
func (self *Surface) Format() *surface.PixelFormat { return surface.ARGB8888 }

// Satisfies the [surface.Surface] interface.
func (self *Surface) Bounds() image.Rectangle { return self.target.Bounds() }

// Satisfies the [surface.Surface] interface. The source is uploaded to
// a temporary GPU image that is deallocated right after drawing.
func (self *Surface) Blit(src image.Image, at image.Point) {
	srcBounds := src.Bounds()
	if srcBounds.Empty() {
		return
	}
	if srcBounds.Sub(srcBounds.Min).Add(at).Intersect(self.target.Bounds()).Empty() {
		return
	}

	tmp := ebiten.NewImageFromImage(src)
	defer tmp.Deallocate()

	opts := ebiten.DrawImageOptions{}
	opts.GeoM.Translate(float64(at.X), float64(at.Y))
	self.target.DrawImage(tmp, &opts)
}
