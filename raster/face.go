package raster

import "errors"
import "image"
import "image/color"
import "image/draw"

import "golang.org/x/image/font"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

import "github.com/vultureui/vtxt/errs"
import "github.com/vultureui/vtxt/internal/logger"

const hintingNone = font.HintingNone

// Point sizes above this are almost certainly a bug in the caller.
const maxPointSize = 1024

var errInvalidSize = errors.New("point size must be in (0, 1024]")

var _ Face = (*sfntFace)(nil)

type sfntFace struct {
	engine  *DefaultEngine
	font    *sfnt.Font
	buffer  sfnt.Buffer
	size    fixed.Int26_6
	ascent  fixed.Int26_6
	descent fixed.Int26_6 // absolute value
	closed  bool
}

// Satisfies the [Face] interface.
func (self *sfntFace) Ascent() int { return self.ascent.Ceil() }

// Satisfies the [Face] interface.
func (self *sfntFace) Size(text string) (int, int) {
	if text == "" || self.closed {
		return 0, 0
	}
	width, err := self.layout(text, nil)
	if err != nil {
		logger.Get().Debug("text measuring failed", "err", err)
		return 0, 0
	}
	return width.Ceil(), self.lineHeight()
}

// Satisfies the [Face] interface.
func (self *sfntFace) Close() error {
	if self.closed {
		return errs.New("raster.Close", errs.KindConfig, errs.ErrClosed)
	}
	self.closed = true
	self.engine.openFaces -= 1
	return nil
}

// Satisfies the [Face] interface.
func (self *sfntFace) Render(text string, textColor color.NRGBA) (*Image, error) {
	const op = "raster.Render"
	if self.closed {
		return nil, errs.New(op, errs.KindConfig, errs.ErrClosed)
	}
	if !self.engine.initialized {
		return nil, errs.New(op, errs.KindConfig, errs.ErrNotInitialized)
	}
	if text == "" {
		return nil, errs.New(op, errs.KindDegenerate, errs.ErrEmptyText)
	}

	height := self.lineHeight()
	minX, maxX, err := self.inkSpan(text)
	if err != nil {
		return nil, errs.New(op, errs.KindResource, errors.Join(errs.ErrRasterize, err))
	}
	width := maxX - minX
	if width <= 0 {
		width = 1 // zero-advance text still produces a blittable image
	}

	// trace all glyph outlines into a single line mask, with the pen
	// shifted right by the left overhang
	rasterizer := self.engine.rasterizer
	rasterizer.Reset(width, height)
	shift := fixed.I(-minX)
	baseline := fixed.I(self.ascent.Ceil())
	_, err = self.layout(text, func(index sfnt.GlyphIndex, x fixed.Int26_6) error {
		outline, err := self.font.LoadGlyph(&self.buffer, index, self.size, nil)
		if err != nil {
			return err
		}
		rasterizer.Trace(outline, fixed.Point26_6{X: x + shift, Y: baseline})
		return nil
	})
	if err != nil {
		return nil, errs.New(op, errs.KindResource, errors.Join(errs.ErrRasterize, err))
	}
	mask := self.engine.alphaMask(width, height)
	rasterizer.Draw(mask)

	// colorize the mask
	img := self.engine.images.Get(width, height)
	img.Offset = image.Pt(minX, 0)
	draw.DrawMask(img.NRGBA, img.Bounds(), image.NewUniform(textColor), image.Point{}, mask, image.Point{}, draw.Src)
	return img, nil
}

// Returns the horizontal pixel span covered by the text, relative to
// the pen origin: the union of the advance box and the ink bounds of
// every glyph. minX is never positive.
func (self *sfntFace) inkSpan(text string) (minX, maxX int, err error) {
	var low, high fixed.Int26_6
	advance, err := self.layout(text, func(index sfnt.GlyphIndex, x fixed.Int26_6) error {
		bounds, _, err := self.font.GlyphBounds(&self.buffer, index, self.size, hintingNone)
		if err != nil {
			return err
		}
		if bounds.Min.X >= bounds.Max.X {
			return nil // no ink, e.g. spaces
		}
		low = min(low, x+bounds.Min.X)
		high = max(high, x+bounds.Max.X)
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	high = max(high, advance)
	return low.Floor(), high.Ceil(), nil
}

// Traverses the glyphs of the text applying advances and kerning,
// calling the given function (if any) with each glyph's pen position.
// Returns the total advance.
func (self *sfntFace) layout(text string, each func(sfnt.GlyphIndex, fixed.Int26_6) error) (fixed.Int26_6, error) {
	var x fixed.Int26_6
	var prevIndex sfnt.GlyphIndex
	lineStart := true
	for _, codePoint := range text {
		index, err := self.font.GlyphIndex(&self.buffer, codePoint)
		if err != nil {
			return x, err
		}

		// apply kerning unless at line start
		if lineStart {
			lineStart = false
		} else {
			kern, err := self.font.Kern(&self.buffer, prevIndex, index, self.size, hintingNone)
			if err == nil {
				x += kern
			} else if err != sfnt.ErrNotFound {
				return x, err
			}
		}

		if each != nil {
			err = each(index, x)
			if err != nil {
				return x, err
			}
		}

		advance, err := self.font.GlyphAdvance(&self.buffer, index, self.size, hintingNone)
		if err != nil {
			return x, err
		}
		x += advance
		prevIndex = index
	}
	return x, nil
}

func (self *sfntFace) lineHeight() int {
	return self.ascent.Ceil() + self.descent.Ceil()
}
