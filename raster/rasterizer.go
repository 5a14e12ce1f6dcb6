package raster

import "image"
import "image/draw"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"
import "golang.org/x/image/vector"

// Wrapper around [vector.Rasterizer] that accumulates several glyph
// outlines, each translated to its own pen position, into a single
// line mask.
type outlineRasterizer struct {
	vector *vector.Rasterizer
	offset fixed.Point26_6
	open   bool
}

func (self *outlineRasterizer) Reset(width, height int) {
	self.vector.Reset(width, height)
	self.vector.DrawOp = draw.Src
	self.open = false
}

// Adds the outline to the accumulated mask, translated by origin.
// Glyph outlines use a y-down coordinate system with the baseline
// at y = 0, so origin.Y must be the baseline position.
func (self *outlineRasterizer) Trace(outline sfnt.Segments, origin fixed.Point26_6) {
	self.offset = origin
	processOutline(self, outline)
	self.closeContour()
}

// Draws the accumulated coverage into the given mask, replacing its
// previous contents.
func (self *outlineRasterizer) Draw(mask *image.Alpha) {
	// since the source is a uniform, the sampling point is irrelevant
	self.vector.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
}

func (self *outlineRasterizer) MoveTo(point fixed.Point26_6) {
	self.closeContour()
	x, y := self.toFloat32s(point)
	self.vector.MoveTo(x, y)
	self.open = true
}

func (self *outlineRasterizer) LineTo(point fixed.Point26_6) {
	x, y := self.toFloat32s(point)
	self.vector.LineTo(x, y)
}

func (self *outlineRasterizer) QuadTo(control, target fixed.Point26_6) {
	cx, cy := self.toFloat32s(control)
	tx, ty := self.toFloat32s(target)
	self.vector.QuadTo(cx, cy, tx, ty)
}

func (self *outlineRasterizer) CubeTo(controlA, controlB, target fixed.Point26_6) {
	cax, cay := self.toFloat32s(controlA)
	cbx, cby := self.toFloat32s(controlB)
	tx, ty := self.toFloat32s(target)
	self.vector.CubeTo(cax, cay, cbx, cby, tx, ty)
}

func (self *outlineRasterizer) closeContour() {
	if self.open {
		self.vector.ClosePath()
		self.open = false
	}
}

func (self *outlineRasterizer) toFloat32s(point fixed.Point26_6) (float32, float32) {
	x := point.X + self.offset.X
	y := point.Y + self.offset.Y
	return float32(x) / 64, float32(y) / 64
}

type vectorTracer interface {
	MoveTo(fixed.Point26_6)
	LineTo(fixed.Point26_6)
	QuadTo(fixed.Point26_6, fixed.Point26_6)
	CubeTo(fixed.Point26_6, fixed.Point26_6, fixed.Point26_6)
}

// Calls MoveTo(), LineTo(), QuadTo() and CubeTo() methods on the
// tracer, as corresponding, for each segment in the glyph outline.
func processOutline(tracer vectorTracer, outline sfnt.Segments) {
	for _, segment := range outline {
		switch segment.Op {
		case sfnt.SegmentOpMoveTo:
			tracer.MoveTo(segment.Args[0])
		case sfnt.SegmentOpLineTo:
			tracer.LineTo(segment.Args[0])
		case sfnt.SegmentOpQuadTo:
			tracer.QuadTo(segment.Args[0], segment.Args[1])
		case sfnt.SegmentOpCubeTo:
			tracer.CubeTo(segment.Args[0], segment.Args[1], segment.Args[2])
		default:
			panic("unexpected segment.Op case")
		}
	}
}
