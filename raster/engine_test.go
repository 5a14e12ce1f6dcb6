package raster

import "errors"
import "image/color"
import "testing"

import "golang.org/x/image/font/gofont/goitalic"
import "golang.org/x/image/font/gofont/goregular"
import "golang.org/x/image/font/sfnt"

import "github.com/vultureui/vtxt/errs"

func parseTestFont(t *testing.T) *sfnt.Font {
	t.Helper()
	font, err := sfnt.Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("parsing goregular: %s", err)
	}
	return font
}

func TestEngineLifecycle(t *testing.T) {
	engine := NewEngine()
	if engine.WasInit() {
		t.Fatal("new engine shouldn't be initialized")
	}
	_, err := engine.OpenFace(parseTestFont(t), 16)
	if !errors.Is(err, errs.ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}

	if err := engine.Init(); err != nil {
		t.Fatalf("unexpected init error: %s", err)
	}
	if err := engine.Init(); err != nil {
		t.Fatalf("second init should be a no-op, got %s", err)
	}
	if !engine.WasInit() {
		t.Fatal("expected engine to be initialized")
	}

	face, err := engine.OpenFace(parseTestFont(t), 16)
	if err != nil {
		t.Fatalf("unexpected OpenFace error: %s", err)
	}
	if engine.OpenFaces() != 1 {
		t.Fatalf("expected 1 open face, got %d", engine.OpenFaces())
	}
	if err := face.Close(); err != nil {
		t.Fatalf("unexpected close error: %s", err)
	}
	if !errors.Is(face.Close(), errs.ErrClosed) {
		t.Fatal("expected double close to report ErrClosed")
	}
	if engine.OpenFaces() != 0 {
		t.Fatalf("expected 0 open faces, got %d", engine.OpenFaces())
	}

	engine.Quit()
	engine.Quit()
	if engine.WasInit() {
		t.Fatal("engine should be uninitialized after Quit")
	}
}

func TestOpenFaceErrors(t *testing.T) {
	engine := NewEngine()
	_ = engine.Init()
	defer engine.Quit()

	_, err := engine.OpenFace(nil, 16)
	if !errors.Is(err, errs.ErrBadFont) {
		t.Fatalf("expected ErrBadFont, got %v", err)
	}
	for _, size := range []float64{0, -3, 5000} {
		_, err = engine.OpenFace(parseTestFont(t), size)
		if errs.KindOf(err) != errs.KindConfig {
			t.Fatalf("size %f: expected config error, got %v", size, err)
		}
	}
}

func TestFaceMetrics(t *testing.T) {
	engine := NewEngine()
	_ = engine.Init()
	defer engine.Quit()

	face, err := engine.OpenFace(parseTestFont(t), 16)
	if err != nil {
		t.Fatal(err)
	}
	defer face.Close()

	ascent := face.Ascent()
	if ascent < 10 || ascent > 20 {
		t.Fatalf("unexpected ascent %d for a 16pt face", ascent)
	}

	w, h := face.Size("")
	if w != 0 || h != 0 {
		t.Fatalf("expected (0, 0) for empty text, got (%d, %d)", w, h)
	}

	wShort, hShort := face.Size("hey")
	wLong, hLong := face.Size("hey ho")
	if wShort <= 0 || wLong <= wShort {
		t.Fatalf("expected 0 < %d < %d", wShort, wLong)
	}
	if hShort != hLong || hShort < ascent {
		t.Fatalf("expected equal heights >= ascent, got %d and %d", hShort, hLong)
	}

	bigger, err := engine.OpenFace(parseTestFont(t), 32)
	if err != nil {
		t.Fatal(err)
	}
	defer bigger.Close()
	wBig, _ := bigger.Size("hey")
	if wBig <= wShort {
		t.Fatalf("expected 32pt text (%d) to be wider than 16pt text (%d)", wBig, wShort)
	}
}

func TestRender(t *testing.T) {
	engine := NewEngine()
	_ = engine.Init()
	defer engine.Quit()

	face, err := engine.OpenFace(parseTestFont(t), 48)
	if err != nil {
		t.Fatal(err)
	}
	defer face.Close()

	_, err = face.Render("", color.NRGBA{255, 0, 0, 255})
	if errs.KindOf(err) != errs.KindDegenerate {
		t.Fatalf("expected degenerate error for empty text, got %v", err)
	}

	img, err := face.Render("Hello", color.NRGBA{255, 0, 0, 255})
	if err != nil {
		t.Fatalf("unexpected render error: %s", err)
	}
	w, h := face.Size("Hello")
	if img.Bounds().Dx() < w || img.Bounds().Dy() != h {
		t.Fatalf("expected image of at least %dx%d, got %v", w, h, img.Bounds())
	}
	if img.Offset.X > 0 || img.Offset.Y != 0 {
		t.Fatalf("unexpected image offset %v", img.Offset)
	}

	var opaque, partial int
	for i := 0; i < len(img.Pix); i += 4 {
		switch img.Pix[i+3] {
		case 0:
		case 255:
			opaque += 1
			if img.Pix[i] != 255 || img.Pix[i+1] != 0 || img.Pix[i+2] != 0 {
				t.Fatalf("unexpected opaque pixel color %v", img.Pix[i:i+4])
			}
		default:
			partial += 1
		}
	}
	if opaque == 0 {
		t.Fatal("expected some fully covered pixels")
	}
	if partial == 0 {
		t.Fatal("expected anti-aliased edge pixels")
	}

	img.Release()
	img.Release()
	if !img.Released() {
		t.Fatal("expected image to be released")
	}

	// only spaces: nothing visible, but still a valid image
	img, err = face.Render("   ", color.NRGBA{0, 0, 0, 255})
	if err != nil {
		t.Fatalf("unexpected error rendering spaces: %s", err)
	}
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			t.Fatal("expected fully transparent image for spaces")
		}
	}
	img.Release()
}

func TestRenderAfterClose(t *testing.T) {
	engine := NewEngine()
	_ = engine.Init()
	face, err := engine.OpenFace(parseTestFont(t), 12)
	if err != nil {
		t.Fatal(err)
	}

	engine.Quit()
	_, err = face.Render("x", color.NRGBA{A: 255})
	if !errors.Is(err, errs.ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized after Quit, got %v", err)
	}

	_ = face.Close()
	_, err = face.Render("x", color.NRGBA{A: 255})
	if !errors.Is(err, errs.ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
	if w, h := face.Size("x"); w != 0 || h != 0 {
		t.Fatal("closed faces should measure (0, 0)")
	}
}

func TestImagePoolReuse(t *testing.T) {
	pool := &imagePool{}
	img := pool.Get(8, 4)
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 4 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
	img.Pix[0] = 200
	img.Release()

	again := pool.Get(2, 2)
	if again.Stride != 8 || len(again.Pix) != 16 {
		t.Fatalf("unexpected stride/len %d/%d", again.Stride, len(again.Pix))
	}
	for _, value := range again.Pix {
		if value != 0 {
			t.Fatal("recycled images must be cleared")
		}
	}
}

// Returns the number of pixels with some coverage in the columns
// [fromX, toX) of the image, given in pen coordinates.
func inkInColumns(img *Image, fromX, toX int) int {
	count := 0
	bounds := img.Bounds()
	for penX := fromX; penX < toX; penX++ {
		x := penX - img.Offset.X
		if x < bounds.Min.X || x >= bounds.Max.X {
			continue
		}
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			if img.NRGBAAt(x, y).A != 0 {
				count += 1
			}
		}
	}
	return count
}

func TestRenderOverhangs(t *testing.T) {
	engine := NewEngine()
	_ = engine.Init()
	defer engine.Quit()

	italic, err := sfnt.Parse(goitalic.TTF)
	if err != nil {
		t.Fatal(err)
	}
	face, err := engine.OpenFace(italic, 32)
	if err != nil {
		t.Fatal(err)
	}
	defer face.Close()

	// the hook of an italic 'f' hangs past its advance
	advance, _ := face.Size("f")
	img, err := face.Render("f", color.NRGBA{A: 255})
	if err != nil {
		t.Fatal(err)
	}
	if img.Offset.X > 0 || img.Offset.X+img.Bounds().Dx() <= advance {
		t.Fatalf("expected 'f' image to extend past its advance %d, got offset %v and bounds %v", advance, img.Offset, img.Bounds())
	}
	if inkInColumns(img, advance, advance+img.Bounds().Dx()) == 0 {
		t.Fatal("expected ink to the right of the 'f' advance")
	}
	img.Release()

	// the tail of a leading 'j' starts before the origin
	img, err = face.Render("j", color.NRGBA{A: 255})
	if err != nil {
		t.Fatal(err)
	}
	if img.Offset.X >= 0 {
		t.Fatalf("expected negative offset for 'j', got %v", img.Offset)
	}
	if inkInColumns(img, img.Offset.X, 0) == 0 {
		t.Fatal("expected ink to the left of the 'j' origin")
	}
	img.Release()

	// both at once
	advance, _ = face.Size("fj")
	img, err = face.Render("fj", color.NRGBA{A: 255})
	if err != nil {
		t.Fatal(err)
	}
	if img.Offset.X+img.Bounds().Dx() <= advance {
		t.Fatalf("expected 'fj' image to extend past its advance %d, got bounds %v", advance, img.Bounds())
	}
	if inkInColumns(img, advance, advance+img.Bounds().Dx()) == 0 {
		t.Fatal("expected ink to the right of the 'fj' advance")
	}
	img.Release()
}
