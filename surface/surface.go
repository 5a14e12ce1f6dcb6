// Package surface defines the pixel surfaces vtxt draws text onto.
//
// A [Surface] only needs to do two things: describe its [PixelFormat]
// so packed colors can be decomposed, and composite a source image at
// an offset. [Image] adapts any [draw.Image]; the ebitensurf subpackage
// adapts Ebitengine images.
package surface

import "image"
import "image/draw"

// Surface is a destination for text blits.
type Surface interface {
	// Returns the pixel format used to decompose packed colors.
	Format() *PixelFormat

	// Returns the surface bounds.
	Bounds() image.Rectangle

	// Composites src over the surface with src's top-left corner at
	// the given point. The blit rectangle is src's own size, clipped
	// to the surface bounds.
	Blit(src image.Image, at image.Point)
}

var _ Surface = (*Image)(nil)

// Image is a [Surface] backed by a [draw.Image].
type Image struct {
	draw.Image
	format *PixelFormat
}

// Wraps the given image as a surface with the given format. A nil
// format defaults to [ARGB8888].
func Wrap(target draw.Image, format *PixelFormat) *Image {
	if format == nil {
		format = ARGB8888
	}
	return &Image{Image: target, format: format}
}

// Creates an ARGB8888 surface backed by a new [*image.RGBA].
func NewRGBA(width, height int) *Image {
	return Wrap(image.NewRGBA(image.Rect(0, 0, width, height)), ARGB8888)
}

// Satisfies the [Surface] interface.
func (self *Image) Format() *PixelFormat { return self.format }

// Satisfies the [Surface] interface.
func (self *Image) Blit(src image.Image, at image.Point) {
	srcBounds := src.Bounds()
	targetRect := srcBounds.Sub(srcBounds.Min).Add(at)
	if targetRect.Intersect(self.Image.Bounds()).Empty() {
		return
	}
	draw.Draw(self.Image, targetRect, src, srcBounds.Min, draw.Over)
}
