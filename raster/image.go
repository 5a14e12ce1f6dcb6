package raster

import "image"
import "sync"

// Image is a rasterized text line. Images come from a pool owned by
// the engine, so they must be released once they have been composited:
//   img, err := face.Render(text, textColor)
//   if err != nil { return err }
//   defer img.Release()
type Image struct {
	*image.NRGBA

	// Position of the image's top-left corner relative to the text
	// origin. X is negative when the first glyph's ink starts before
	// the origin, like the tail of an italic 'j'.
	Offset image.Point

	pool *imagePool
}

// Returns the image to its pool. Releasing twice is a no-op, and
// the image can't be used after being released.
func (self *Image) Release() {
	if self == nil || self.NRGBA == nil {
		return
	}
	if self.pool != nil {
		self.pool.put(self.NRGBA)
	}
	self.NRGBA = nil
}

// Released reports whether [Image.Release] has already been called.
func (self *Image) Released() bool { return self.NRGBA == nil }

type imagePool struct {
	pool sync.Pool
}

// Returns a cleared image of the requested size.
func (self *imagePool) Get(width, height int) *Image {
	size := 4 * width * height
	rect := image.Rect(0, 0, width, height)
	recycled, _ := self.pool.Get().(*image.NRGBA)
	if recycled == nil || cap(recycled.Pix) < size {
		return &Image{NRGBA: image.NewNRGBA(rect), pool: self}
	}
	recycled.Pix = recycled.Pix[:size]
	clear(recycled.Pix)
	recycled.Stride = 4 * width
	recycled.Rect = rect
	return &Image{NRGBA: recycled, pool: self}
}

func (self *imagePool) put(img *image.NRGBA) {
	self.pool.Put(img)
}
