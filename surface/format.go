package surface

// Pixel is a color packed into 32 bits according to a [PixelFormat].
// Which bits belong to which channel depends entirely on the format
// of the surface the pixel is meant for.
type Pixel uint32

// PixelFormat describes how color channels are packed into a [Pixel].
// Channel values are extracted as (pixel & mask) >> shift.
type PixelFormat struct {
	Rmask, Gmask, Bmask, Amask     uint32
	Rshift, Gshift, Bshift, Ashift uint8
}

// Common pixel formats. The names follow the channel order from the
// most significant bits to the least significant ones.
var (
	ARGB8888 = &PixelFormat{
		Rmask: 0x00FF0000, Gmask: 0x0000FF00, Bmask: 0x000000FF, Amask: 0xFF000000,
		Rshift: 16, Gshift: 8, Bshift: 0, Ashift: 24,
	}
	RGBA8888 = &PixelFormat{
		Rmask: 0xFF000000, Gmask: 0x00FF0000, Bmask: 0x0000FF00, Amask: 0x000000FF,
		Rshift: 24, Gshift: 16, Bshift: 8, Ashift: 0,
	}
	RGB565 = &PixelFormat{
		Rmask: 0xF800, Gmask: 0x07E0, Bmask: 0x001F,
		Rshift: 11, Gshift: 5, Bshift: 0,
	}
)

// Components decomposes the pixel into its red, green and blue channel
// values. Channels narrower than 8 bits are returned unscaled, exactly
// as stored in the pixel. Alpha is ignored.
func (self *PixelFormat) Components(pixel Pixel) (r, g, b uint8) {
	value := uint32(pixel)
	r = uint8((value & self.Rmask) >> self.Rshift)
	g = uint8((value & self.Gmask) >> self.Gshift)
	b = uint8((value & self.Bmask) >> self.Bshift)
	return r, g, b
}

// MapRGB packs the given channel values into a fully opaque pixel.
// Values wider than their channel are truncated by the channel mask.
func (self *PixelFormat) MapRGB(r, g, b uint8) Pixel {
	value := (uint32(r) << self.Rshift) & self.Rmask
	value |= (uint32(g) << self.Gshift) & self.Gmask
	value |= (uint32(b) << self.Bshift) & self.Bmask
	value |= self.Amask
	return Pixel(value)
}
