package raster

import "image/color"
import "image"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"
import "golang.org/x/image/vector"

import "github.com/vultureui/vtxt/errs"
import "github.com/vultureui/vtxt/internal/logger"

// Engine is the rasterization backend used by font registries. It
// only has to be initialized once per process (or after a [Engine.Quit]),
// and faces can't be opened while it's not initialized.
//
// Engines are not safe for concurrent use.
type Engine interface {
	// Initializes the engine. Calling Init on an already initialized
	// engine is a no-op.
	Init() error

	// Reports whether the engine is currently initialized.
	WasInit() bool

	// Opens a face for the given font at the given point size. Point
	// sizes are interpreted at 72 DPI, so they match pixel sizes.
	OpenFace(font *sfnt.Font, pointSize float64) (Face, error)

	// Releases all the engine's process-wide state. Faces opened before
	// Quit stop rendering, so they should be closed beforehand.
	Quit()
}

// Face is a font opened at a specific size.
type Face interface {
	// Returns the ascent in whole pixels, rounded up.
	Ascent() int

	// Returns the advance width and the line height of the given text
	// in pixels. Empty text measures (0, 0).
	Size(text string) (width, height int)

	// Rasterizes the text as an anti-aliased image of the given color.
	// The image is at least as wide as the advance width reported by
	// [Face.Size], and grows to include any glyph ink that hangs past
	// the start or the end of the advance; see [Image.Offset].
	// The returned image must be released after use.
	Render(text string, textColor color.NRGBA) (*Image, error)

	// Releases the face. Further renders will fail.
	Close() error
}

var _ Engine = (*DefaultEngine)(nil)

// DefaultEngine is an [Engine] built on [golang.org/x/image/font/sfnt]
// for metrics and outlines, and [golang.org/x/image/vector] for the
// anti-aliased rasterization.
//
// The zero value is valid but uninitialized.
type DefaultEngine struct {
	initialized bool
	openFaces   int
	rasterizer  *outlineRasterizer
	scratch     *image.Alpha
	images      *imagePool
}

// Creates a new, uninitialized [DefaultEngine].
func NewEngine() *DefaultEngine {
	return &DefaultEngine{}
}

// Satisfies the [Engine] interface.
func (self *DefaultEngine) Init() error {
	if self.initialized {
		return nil
	}
	self.rasterizer = &outlineRasterizer{vector: vector.NewRasterizer(0, 0)}
	self.scratch = image.NewAlpha(image.Rectangle{})
	self.images = &imagePool{}
	self.initialized = true
	logger.Get().Debug("raster engine initialized")
	return nil
}

// Satisfies the [Engine] interface.
func (self *DefaultEngine) WasInit() bool { return self.initialized }

// Returns the number of faces opened and not yet closed.
func (self *DefaultEngine) OpenFaces() int { return self.openFaces }

// Satisfies the [Engine] interface.
func (self *DefaultEngine) Quit() {
	if !self.initialized {
		return
	}
	if self.openFaces > 0 {
		logger.Get().Warn("raster engine quit with open faces", "faces", self.openFaces)
	}
	self.rasterizer = nil
	self.scratch = nil
	self.images = nil
	self.initialized = false
	logger.Get().Debug("raster engine shut down")
}

// Satisfies the [Engine] interface.
func (self *DefaultEngine) OpenFace(font *sfnt.Font, pointSize float64) (Face, error) {
	const op = "raster.OpenFace"
	if !self.initialized {
		return nil, errs.New(op, errs.KindConfig, errs.ErrNotInitialized)
	}
	if font == nil {
		return nil, errs.New(op, errs.KindConfig, errs.ErrBadFont)
	}
	if pointSize <= 0 || pointSize > maxPointSize {
		return nil, errs.New(op, errs.KindConfig, errInvalidSize)
	}

	face := &sfntFace{
		engine: self,
		font:   font,
		size:   fixed.Int26_6(pointSize*64 + 0.5),
	}
	metrics, err := font.Metrics(&face.buffer, face.size, hintingNone)
	if err != nil {
		return nil, errs.New(op, errs.KindConfig, err)
	}
	face.ascent = metrics.Ascent
	face.descent = metrics.Descent
	if face.descent < 0 {
		face.descent = -face.descent
	}

	self.openFaces += 1
	logger.Get().Debug("face opened", "size", pointSize, "ascent", face.Ascent())
	return face, nil
}

// Resizes and clears the shared alpha mask used while rendering.
func (self *DefaultEngine) alphaMask(width, height int) *image.Alpha {
	size := width * height
	if cap(self.scratch.Pix) < size {
		self.scratch.Pix = make([]uint8, size)
	} else {
		self.scratch.Pix = self.scratch.Pix[:size]
		clear(self.scratch.Pix)
	}
	self.scratch.Stride = width
	self.scratch.Rect = image.Rect(0, 0, width, height)
	return self.scratch
}
