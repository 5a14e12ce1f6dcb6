package vtxt

// Test doubles shared by the package tests. The fake engine gives
// every face deterministic metrics: 9px per byte minus 3px for the
// final side bearing, and a height of size + size/4.

import "image"
import "image/color"
import "image/draw"
import "testing"

import "golang.org/x/image/font/gofont/goregular"
import "golang.org/x/image/font/sfnt"

import "github.com/vultureui/vtxt/errs"
import "github.com/vultureui/vtxt/font"
import "github.com/vultureui/vtxt/raster"
import "github.com/vultureui/vtxt/surface"

type fakeEngine struct {
	initialized bool
	faces       []*fakeFace
}

func (self *fakeEngine) Init() error   { self.initialized = true; return nil }
func (self *fakeEngine) WasInit() bool { return self.initialized }
func (self *fakeEngine) Quit()         { self.initialized = false }

func (self *fakeEngine) OpenFace(_ *sfnt.Font, pointSize float64) (raster.Face, error) {
	size := int(pointSize)
	face := &fakeFace{ascent: size, height: size + size/4}
	self.faces = append(self.faces, face)
	return face, nil
}

type fakeRender struct {
	text  string
	color color.NRGBA
	image *raster.Image
}

type fakeFace struct {
	ascent     int
	height     int
	closed     bool
	failRender bool
	failColor  *color.NRGBA // fails renders of this color only
	offset     image.Point  // offset given to rendered images
	renders    []fakeRender
}

func (self *fakeFace) Ascent() int { return self.ascent }

func (self *fakeFace) Size(text string) (int, int) {
	if text == "" {
		return 0, 0
	}
	return 9*len(text) - 3, self.height
}

func (self *fakeFace) Render(text string, textColor color.NRGBA) (*raster.Image, error) {
	if self.failRender || (self.failColor != nil && *self.failColor == textColor) {
		return nil, errs.ErrRasterize
	}
	width, height := self.Size(text)
	img := &raster.Image{NRGBA: image.NewNRGBA(image.Rect(0, 0, width, height)), Offset: self.offset}
	draw.Draw(img.NRGBA, img.Bounds(), image.NewUniform(textColor), image.Point{}, draw.Src)
	self.renders = append(self.renders, fakeRender{text: text, color: textColor, image: img})
	return img, nil
}

func (self *fakeFace) Close() error {
	self.closed = true
	return nil
}

func (self *fakeFace) texts() []string {
	texts := make([]string, 0, len(self.renders))
	for _, render := range self.renders {
		texts = append(texts, render.text)
	}
	return texts
}

type blit struct {
	at    image.Point
	size  image.Point
	color color.NRGBA
}

// Surface that only records the blits it receives.
type recordingSurface struct {
	format *surface.PixelFormat
	blits  []blit
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{format: surface.ARGB8888}
}

func (self *recordingSurface) Format() *surface.PixelFormat { return self.format }
func (self *recordingSurface) Bounds() image.Rectangle      { return image.Rect(0, 0, 640, 480) }

func (self *recordingSurface) Blit(src image.Image, at image.Point) {
	bounds := src.Bounds()
	rgba := color.NRGBAModel.Convert(src.At(bounds.Min.X, bounds.Min.Y)).(color.NRGBA)
	self.blits = append(self.blits, blit{at: at, size: bounds.Size(), color: rgba})
}

// Returns a renderer whose registry has slot 0 loaded with a fake
// face at the given size.
func newFakeRenderer(t *testing.T, pointSize float64) (*Renderer, *fakeFace) {
	t.Helper()
	engine := &fakeEngine{}
	registry := font.NewRegistry(engine)
	err := registry.LoadBytes(0, goregular.TTF, 0, pointSize)
	if err != nil {
		t.Fatalf("loading fake font: %s", err)
	}
	t.Cleanup(registry.Shutdown)
	return NewRenderer(registry), engine.faces[len(engine.faces)-1]
}

func newGoRenderer(t *testing.T, pointSize float64) *Renderer {
	t.Helper()
	registry := font.NewRegistry(nil)
	err := registry.LoadBytes(0, goregular.TTF, 0, pointSize)
	if err != nil {
		t.Fatalf("loading goregular: %s", err)
	}
	t.Cleanup(registry.Shutdown)
	return NewRenderer(registry)
}
