package vtxt

import "errors"
import "image"
import "image/color"

import "github.com/vultureui/vtxt/errs"
import "github.com/vultureui/vtxt/font"
import "github.com/vultureui/vtxt/internal/logger"
import "github.com/vultureui/vtxt/surface"

var errNilSurface = errors.New("nil surface")

// Draws the given text on a single line, with the top-left corner of
// the text's advance box at (x, y - 1). Glyph ink hanging outside the
// advance box, like the tail of an italic 'j', is drawn too. The color
// is decomposed with the destination's pixel format, and alpha is
// ignored.
//
// Line breaks and any other non-printable bytes are drawn as spaces;
// see [Sanitize](). Use [Renderer.DrawMultiline]() for wrapped text.
//
// The returned error is nil on success. Nothing is drawn if the slot
// id is out of range, the slot is empty, the text is empty or the
// rasterization fails.
func (self *Renderer) DrawLine(id int, text string, dst surface.Surface, x, y int, textColor surface.Pixel) error {
	return self.drawLine("vtxt.DrawLine", id, text, dst, x, y, textColor)
}

// Same as [Renderer.DrawLine](), but drawing a shadow copy of the text
// one pixel down and to the right first. Only the result of the main
// draw is reported; shadow failures are logged and discarded.
func (self *Renderer) DrawLineShadow(id int, text string, dst surface.Surface, x, y int, textColor, shadowColor surface.Pixel) error {
	const op = "vtxt.DrawLineShadow"
	shadowErr := self.drawLine(op, id, text, dst, x+1, y+1, shadowColor)
	err := self.drawLine(op, id, text, dst, x, y, textColor)
	if shadowErr != nil && err == nil {
		logger.Get().Warn("text shadow not drawn", "slot", id, "err", shadowErr)
	}
	return err
}

func (self *Renderer) drawLine(op string, id int, text string, dst surface.Surface, x, y int, textColor surface.Pixel) error {
	// preconditions
	if id < 0 || id >= font.MaxFonts {
		return errs.New(op, errs.KindConfig, errs.ErrInvalidSlot)
	}
	face := self.registry.Face(id)
	if face == nil {
		return errs.New(op, errs.KindConfig, errs.ErrEmptySlot)
	}
	if text == "" {
		return errs.New(op, errs.KindDegenerate, errs.ErrEmptyText)
	}
	if dst == nil {
		return errs.New(op, errs.KindConfig, errNilSurface)
	}

	// rasterize and blit
	r, g, b := dst.Format().Components(textColor)
	img, err := face.Render(Sanitize(text), color.NRGBA{R: r, G: g, B: b, A: 255})
	if err != nil {
		return errs.New(op, errs.KindResource, errors.Join(errs.ErrRasterize, err))
	}
	defer img.Release()

	// glyph ink may hang past the origin, see raster.Image.Offset
	dst.Blit(img, image.Pt(x, y-1).Add(img.Offset))
	return nil
}
