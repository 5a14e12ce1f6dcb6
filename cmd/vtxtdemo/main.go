// vtxtdemo draws a wrapped message with a drop shadow, either into a
// PNG file or into an Ebitengine window.
//
// Usage:
//   vtxtdemo [-config vtxt.yaml] [-text "message"] [-width 320] [-out demo.png] [-v]
//
// Without a config file, slot 0 is loaded with the Go regular font at
// 16pt.
package main

import "flag"
import "fmt"
import "image"
import "image/color"
import "image/draw"
import "image/png"
import "log"
import "log/slog"
import "os"
import "path/filepath"

import "golang.org/x/image/font/gofont/goregular"

import "github.com/vultureui/vtxt"
import "github.com/vultureui/vtxt/config"
import "github.com/vultureui/vtxt/font"
import "github.com/vultureui/vtxt/surface"

const defaultText = "You see here a scroll labeled ELBERETH. The kobold zaps a " +
	"wand of digging!\tIt digs a hole through the floor and falls down " +
	"to the level below. Supercalifragilisticexpialidocious."

func main() {
	configPath := flag.String("config", "", "path to a YAML configuration file")
	text := flag.String("text", defaultText, "text to draw")
	width := flag.Int("width", 0, "wrap width in pixels (overrides the config)")
	out := flag.String("out", "", "write a PNG to this path instead of opening a window")
	verbose := flag.Bool("v", false, "log debug information to stderr")
	flag.Parse()

	err := run(*configPath, *text, *width, *out, *verbose)
	if err != nil { log.Fatal(err) }
}

func run(configPath, text string, width int, out string, verbose bool) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	vtxt.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	// load configuration and fonts
	settings := config.Default()
	if configPath != "" {
		var err error
		settings, err = config.Load(configPath)
		if err != nil { return err }
	}
	if width > 0 {
		settings.Text.WrapWidth = width
	}

	registry := font.NewRegistry(nil)
	defer registry.Shutdown()
	if len(settings.Fonts) == 0 {
		err := registry.LoadBytes(0, goregular.TTF, 0, 16)
		if err != nil { return err }
	} else {
		err := settings.LoadFonts(registry)
		if err != nil { return err }
	}

	demo := &demo{
		renderer: vtxt.NewRenderer(registry),
		settings: settings,
		text:     text,
	}
	if out != "" {
		return demo.writePNG(out)
	}
	return runWindow(demo)
}

type demo struct {
	renderer *vtxt.Renderer
	settings *config.Config
	text     string
}

const margin = 8

// Returns the size needed to draw the wrapped text with margins.
func (self *demo) canvasSize() (int, int) {
	lines := self.renderer.WrapLines(0, self.text, self.settings.Text.WrapWidth)
	stride := self.renderer.MeasureHeight(0, self.text)
	width := self.settings.Text.WrapWidth
	for _, line := range lines {
		width = max(width, line.Width)
	}
	return width + 2*margin + 1, len(lines)*stride + 2*margin + 1
}

func (self *demo) draw(target surface.Surface) error {
	textColor, shadowColor, err := self.settings.Colors(target.Format())
	if err != nil { return err }
	self.renderer.DrawMultiline(0, self.text, target, margin, margin, textColor, shadowColor, self.settings.Text.WrapWidth)
	return nil
}

func (self *demo) writePNG(path string) error {
	width, height := self.canvasSize()
	target := surface.NewRGBA(width, height)
	background := image.NewUniform(color.RGBA{40, 44, 52, 255})
	draw.Draw(target, target.Bounds(), background, image.Point{}, draw.Src)
	err := self.draw(target)
	if err != nil { return err }

	filename, err := filepath.Abs(path)
	if err != nil { return err }
	file, err := os.Create(filename)
	if err != nil { return err }
	err = png.Encode(file, target)
	if err != nil {
		_ = file.Close()
		return err
	}
	err = file.Close()
	if err != nil { return err }
	fmt.Printf("Output image: %s\n", filename)
	return nil
}
